package feed

import (
	"slices"
	"strings"
	"time"

	"github.com/lysyi3m/ai-digest/app/registry"
)

// Criteria selects and orders items. Zero values disable the matching step.
type Criteria struct {
	Days       int
	Strict     bool
	Categories []registry.Category
	Keyword    string
}

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run applies the date window and ranking, then the category and keyword
// selectors. Each step only narrows the previous result.
func (f *Filterer) Run(items []Item, criteria Criteria, now time.Time) []Item {
	result := f.ByDate(items, criteria.Days, criteria.Strict, now)
	if len(criteria.Categories) > 0 {
		result = f.ByCategory(result, criteria.Categories)
	}
	if criteria.Keyword != "" {
		result = f.Search(result, criteria.Keyword)
	}
	return result
}

// ByDate keeps items published on or after the start of the day that lies
// days before now, then sorts newest first. Undated items survive only when
// the window is wider than one day, and always sort last. Filtering is skipped
// when strict is false or days is zero; sorting is not.
func (f *Filterer) ByDate(items []Item, days int, strict bool, now time.Time) []Item {
	kept := make([]Item, 0, len(items))

	if strict && days > 0 {
		cutoff := startOfDay(Naive(now).AddDate(0, 0, -days))
		for _, item := range items {
			if item.PublishedAt == nil {
				if days > 1 {
					kept = append(kept, item)
				}
				continue
			}
			if !item.PublishedAt.Before(cutoff) {
				kept = append(kept, item)
			}
		}
	} else {
		kept = append(kept, items...)
	}

	slices.SortStableFunc(kept, func(a, b Item) int {
		return b.SortTime().Compare(a.SortTime())
	})

	return kept
}

func (f *Filterer) ByCategory(items []Item, categories []registry.Category) []Item {
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if slices.Contains(categories, item.Category) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Search keeps items whose title or summary contains keyword, ignoring case.
func (f *Filterer) Search(items []Item, keyword string) []Item {
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if f.matchesFilter(item.Title, keyword) || f.matchesFilter(item.Summary, keyword) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (f *Filterer) matchesFilter(value, pattern string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
