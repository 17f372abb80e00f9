package handler

import (
	"context"
	"errors"

	"github.com/pkordes/worktracker/internal/domain"
	"github.com/pkordes/worktracker/internal/handler/gen"
)

// ListTags handles GET /api/tags. Tags come back ordered by name.
func (s *Server) ListTags(ctx context.Context, _ gen.ListTagsRequestObject) (gen.ListTagsResponseObject, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make(gen.ListTags200JSONResponse, len(tags))
	for i, t := range tags {
		resp[i] = tagToResponse(t)
	}
	return resp, nil
}

// GetOrCreateTag handles POST /api/tags.
// Returns the existing tag with that exact name, or creates it.
func (s *Server) GetOrCreateTag(ctx context.Context, req gen.GetOrCreateTagRequestObject) (gen.GetOrCreateTagResponseObject, error) {
	tag, err := s.tags.GetOrCreate(ctx, req.Body.Name)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.GetOrCreateTag422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.GetOrCreateTag200JSONResponse(tagToResponse(tag)), nil
}

// DeleteTag handles DELETE /api/tags/{id}.
// The tag is detached from every record; the records stay.
func (s *Server) DeleteTag(ctx context.Context, req gen.DeleteTagRequestObject) (gen.DeleteTagResponseObject, error) {
	deleted, err := s.tags.Delete(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return gen.DeleteTag404JSONResponse(notFoundBody("tag not found")), nil
	}

	return gen.DeleteTag200JSONResponse{Message: "Tag deleted"}, nil
}

func tagToResponse(t domain.Tag) gen.Tag {
	return gen.Tag{Id: t.ID, Name: t.Name}
}
