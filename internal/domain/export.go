package domain

import "time"

// ExportRow is a single row in the record export.
// It is a flat, denormalized view of one record: Tags holds the names of the
// attached tags, ordered alphabetically. Callers that need a joined string
// (e.g. CSV) should join with "|".
type ExportRow struct {
	RecordID    int64
	StartTime   time.Time
	EndTime     time.Time
	Duration    int64
	Description string // empty when the record has none
	CreatedAt   time.Time
	Tags        []string
}
