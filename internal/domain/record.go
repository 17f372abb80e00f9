// Package domain contains the core data types for the work tracker.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Record is one logged, time-boxed activity.
//
// Duration is in seconds and is supplied by the caller. It is not derived from
// EndTime-StartTime and nothing checks that the two agree, nor that EndTime
// comes after StartTime.
type Record struct {
	ID          int64
	StartTime   time.Time
	EndTime     time.Time
	Duration    int64
	Description *string // nil when no description was given
	CreatedAt   time.Time
	Tags        []Tag // ordered by name
}

// NewRecord carries the input for creating a record.
// TagIDs reference existing tags; unknown ids are ignored.
// TagNames are resolved to existing tags by exact name, or created.
type NewRecord struct {
	StartTime   time.Time
	EndTime     time.Time
	Duration    int64
	Description *string
	TagIDs      []int64
	TagNames    []string
}

// RecordFilter narrows a record query by time bounds. Both bounds are
// optional and inclusive: StartDate applies to Record.StartTime and EndDate
// applies to Record.EndTime.
type RecordFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}
