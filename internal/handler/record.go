package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/worktracker/internal/domain"
	"github.com/pkordes/worktracker/internal/handler/gen"
)

// CreateRecord handles POST /api/records.
func (s *Server) CreateRecord(ctx context.Context, req gen.CreateRecordRequestObject) (gen.CreateRecordResponseObject, error) {
	in, err := requestToNewRecord(*req.Body)
	if err != nil {
		return gen.CreateRecord422JSONResponse(errorBody(codeValidation, err.Error())), nil
	}

	created, err := s.records.Create(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateRecord422JSONResponse(validationBody(err)), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.CreateRecord409JSONResponse(errorBody(codeConflict, "tag name already exists, retry the request")), nil
		}
		return nil, err
	}

	return gen.CreateRecord201JSONResponse(recordToResponse(created)), nil
}

// ListRecords handles GET /api/records.
// Supports ?skip= and ?limit= (defaults 0 and 100) plus the inclusive
// ?start_date= and ?end_date= bounds.
func (s *Server) ListRecords(ctx context.Context, req gen.ListRecordsRequestObject) (gen.ListRecordsResponseObject, error) {
	filter, err := recordFilter(req.Params.StartDate, req.Params.EndDate)
	if err != nil {
		return gen.ListRecords400JSONResponse(badRequestBody(err)), nil
	}

	records, err := s.records.List(ctx, filter, domain.NewPaginationParams(req.Params.Skip, req.Params.Limit))
	if err != nil {
		return nil, err
	}

	resp := make(gen.ListRecords200JSONResponse, len(records))
	for i, rec := range records {
		resp[i] = recordToResponse(rec)
	}
	return resp, nil
}

// GetRecord handles GET /api/records/{id}.
func (s *Server) GetRecord(ctx context.Context, req gen.GetRecordRequestObject) (gen.GetRecordResponseObject, error) {
	rec, err := s.records.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetRecord404JSONResponse(notFoundBody("record not found")), nil
		}
		return nil, err
	}

	return gen.GetRecord200JSONResponse(recordToResponse(rec)), nil
}

// DeleteRecord handles DELETE /api/records/{id}.
func (s *Server) DeleteRecord(ctx context.Context, req gen.DeleteRecordRequestObject) (gen.DeleteRecordResponseObject, error) {
	deleted, err := s.records.Delete(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return gen.DeleteRecord404JSONResponse(notFoundBody("record not found")), nil
	}

	return gen.DeleteRecord200JSONResponse{Message: "Record deleted"}, nil
}

// GetSummary handles GET /api/records/summary.
func (s *Server) GetSummary(ctx context.Context, req gen.GetSummaryRequestObject) (gen.GetSummaryResponseObject, error) {
	filter, err := recordFilter(req.Params.StartDate, req.Params.EndDate)
	if err != nil {
		return gen.GetSummary400JSONResponse(badRequestBody(err)), nil
	}

	summary, err := s.records.Summary(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := gen.GetSummary200JSONResponse{
		ByTag:  make([]gen.TagSummary, len(summary.ByTag)),
		ByDate: make([]gen.DateSummary, len(summary.ByDate)),
	}
	for i, t := range summary.ByTag {
		resp.ByTag[i] = gen.TagSummary{TagName: t.TagName, TotalDuration: t.TotalDuration}
	}
	for i, d := range summary.ByDate {
		resp.ByDate[i] = gen.DateSummary{Date: d.Date, TotalDuration: d.TotalDuration, RecordCount: d.RecordCount}
	}
	return resp, nil
}

// --- mapping helpers --------------------------------------------------------

// requestToNewRecord converts a CreateRecordRequest into a domain.NewRecord.
// Returns an error if a required field is missing, a timestamp does not
// parse, or duration is negative.
func requestToNewRecord(body gen.CreateRecordRequest) (domain.NewRecord, error) {
	switch {
	case body.StartTime == nil:
		return domain.NewRecord{}, errors.New("start_time is required")
	case body.EndTime == nil:
		return domain.NewRecord{}, errors.New("end_time is required")
	case body.Duration == nil:
		return domain.NewRecord{}, errors.New("duration is required")
	case *body.Duration < 0:
		return domain.NewRecord{}, errors.New("duration must be >= 0")
	}

	start, err := parseISOTime(*body.StartTime)
	if err != nil {
		return domain.NewRecord{}, fmt.Errorf("start_time: %w", err)
	}
	end, err := parseISOTime(*body.EndTime)
	if err != nil {
		return domain.NewRecord{}, fmt.Errorf("end_time: %w", err)
	}

	in := domain.NewRecord{
		StartTime:   start,
		EndTime:     end,
		Duration:    *body.Duration,
		Description: body.Description,
	}
	if body.TagIds != nil {
		in.TagIDs = *body.TagIds
	}
	if body.TagNames != nil {
		in.TagNames = *body.TagNames
	}
	return in, nil
}

// recordToResponse converts a domain.Record to the generated gen.Record type.
// Tags is never nil so it encodes as [].
func recordToResponse(rec domain.Record) gen.Record {
	tags := make([]gen.Tag, len(rec.Tags))
	for i, t := range rec.Tags {
		tags[i] = tagToResponse(t)
	}
	return gen.Record{
		Id:          rec.ID,
		StartTime:   rec.StartTime,
		EndTime:     rec.EndTime,
		Duration:    rec.Duration,
		Description: rec.Description,
		Tags:        tags,
		CreatedAt:   rec.CreatedAt,
	}
}
