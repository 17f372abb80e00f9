package domain

// MaxTagNameLength is the longest tag name the tags.name column accepts.
const MaxTagNameLength = 100

// Tag is a named label that can be attached to any number of records.
// Tags are global. Name is unique and compared case-sensitively.
type Tag struct {
	ID   int64
	Name string
}
