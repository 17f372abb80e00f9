package domain

// DateLayout is the calendar-date format used for summary keys.
const DateLayout = "2006-01-02"

// TagSummary is the total duration logged against one tag.
// A record with several tags counts its full duration toward each of them.
type TagSummary struct {
	TagName       string
	TotalDuration int64
}

// DateSummary is the total duration and record count for one calendar day,
// keyed by the UTC date of each record's start time.
type DateSummary struct {
	Date          string // DateLayout
	TotalDuration int64
	RecordCount   int
}

// Summary holds both aggregate views computed over the same record set.
// ByTag is ordered by tag name ascending; ByDate by date descending.
type Summary struct {
	ByTag  []TagSummary
	ByDate []DateSummary
}
