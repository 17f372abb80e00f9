package handler

import (
	"fmt"
	"time"

	"github.com/pkordes/worktracker/internal/domain"
)

// isoLayouts are the ISO-8601 shapes accepted for timestamps: extended
// (2006-01-02T15:04:05) and basic (20060102T150405) dates, "T" or space
// separators, hour, minute or second precision, and an optional Z, ±hh:mm,
// ±hhmm or ±hh offset. Fractional seconds need no layout of their own;
// time.Parse accepts them after the seconds field. Layouts without an
// offset are read as UTC.
var isoLayouts = buildISOLayouts()

func buildISOLayouts() []string {
	forms := []struct {
		date  string
		times []string
	}{
		{"2006-01-02", []string{"15:04:05", "15:04", "15"}},
		{"20060102", []string{"150405", "1504", "15"}},
	}
	zones := []string{"Z07:00", "Z0700", "Z07", ""}

	var layouts []string
	for _, f := range forms {
		for _, sep := range []string{"T", " "} {
			for _, clock := range f.times {
				for _, zone := range zones {
					layouts = append(layouts, f.date+sep+clock+zone)
				}
			}
		}
		layouts = append(layouts, f.date)
	}
	return layouts
}

// parseISOTime parses an ISO-8601 date or date-time into UTC. Years outside
// 0000-9999 after conversion are rejected because they cannot be written
// back out as RFC 3339.
func parseISOTime(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		t = t.UTC()
		if y := t.Year(); y < 0 || y > 9999 {
			return time.Time{}, fmt.Errorf("%q is outside years 0000-9999 in UTC", s)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%q is not an ISO-8601 date or date-time", s)
}

// recordFilter parses the optional start_date and end_date query bounds.
func recordFilter(start, end *string) (domain.RecordFilter, error) {
	var f domain.RecordFilter
	for _, p := range []struct {
		name string
		raw  *string
		dst  **time.Time
	}{
		{"start_date", start, &f.StartDate},
		{"end_date", end, &f.EndDate},
	} {
		if p.raw == nil {
			continue
		}
		t, err := parseISOTime(*p.raw)
		if err != nil {
			return domain.RecordFilter{}, fmt.Errorf("invalid %s format: %w", p.name, err)
		}
		*p.dst = &t
	}
	return f, nil
}
