package domain

// Default pagination values for record listing.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// PaginationParams carries offset/limit values from the HTTP layer to the repo layer.
// Values are passed through as given; range checking is the caller's job.
type PaginationParams struct {
	// Skip is the number of rows to skip (SQL OFFSET).
	Skip int
	// Limit is the maximum number of rows to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to the defaults (skip=0, limit=100).
func NewPaginationParams(skip, limit *int) PaginationParams {
	p := PaginationParams{Skip: DefaultSkip, Limit: DefaultLimit}
	if skip != nil {
		p.Skip = *skip
	}
	if limit != nil {
		p.Limit = *limit
	}
	return p
}
