package feed

import (
	"time"

	"github.com/lysyi3m/ai-digest/app/registry"
)

const (
	MaxEntriesPerSource = 30
	MaxSummaryLength    = 400
	MaxOrganizations    = 5

	DefaultTitle     = "untitled"
	UnknownPublished = "unknown"
)

// Entry is a single feed entry as delivered by a Fetcher, before normalization.
type Entry struct {
	Title       string
	Link        string
	Description string
	Content     string
	Published   string // feed-native format
	Updated     string
}

type Item struct {
	Title         string            `json:"title"`
	Link          string            `json:"link"`
	Summary       string            `json:"summary"`
	Published     string            `json:"published"`
	PublishedAt   *time.Time        `json:"published_at"` // nil when Published is unparseable
	Source        string            `json:"source"`
	Category      registry.Category `json:"category"`
	Language      string            `json:"language"`
	Organizations []string          `json:"organizations"`
}

// SortTime returns the normalized publish time, or the zero time for undated items.
func (i Item) SortTime() time.Time {
	if i.PublishedAt == nil {
		return time.Time{}
	}
	return *i.PublishedAt
}
