package service

import (
	"cmp"
	"maps"
	"slices"

	"github.com/pkordes/worktracker/internal/domain"
)

// summarizeByTag totals durations per tag name. A record adds its full
// duration to every tag it carries; durations are not split. Tags without
// records never appear. Rows are ordered by name ascending.
func summarizeByTag(records []domain.Record) []domain.TagSummary {
	totals := make(map[string]int64)
	for _, rec := range records {
		for _, tag := range rec.Tags {
			totals[tag.Name] += rec.Duration
		}
	}

	out := make([]domain.TagSummary, 0, len(totals))
	for _, name := range slices.Sorted(maps.Keys(totals)) {
		out = append(out, domain.TagSummary{TagName: name, TotalDuration: totals[name]})
	}
	return out
}

// summarizeByDate totals durations and counts records per UTC calendar date
// of StartTime. Rows are ordered by date descending.
func summarizeByDate(records []domain.Record) []domain.DateSummary {
	byDate := make(map[string]*domain.DateSummary)
	for _, rec := range records {
		key := rec.StartTime.UTC().Format(domain.DateLayout)
		day, ok := byDate[key]
		if !ok {
			day = &domain.DateSummary{Date: key}
			byDate[key] = day
		}
		day.TotalDuration += rec.Duration
		day.RecordCount++
	}

	out := make([]domain.DateSummary, 0, len(byDate))
	for _, day := range byDate {
		out = append(out, *day)
	}
	// YYYY-MM-DD sorts chronologically as a string.
	slices.SortFunc(out, func(a, b domain.DateSummary) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return out
}
