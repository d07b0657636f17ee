package feed

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

// Parser is safe for concurrent use.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Run parses RSS, Atom or JSON Feed data into entries, keeping the feed-native
// timestamp strings untouched.
func (p *Parser) Run(data []byte) ([]Entry, error) {
	// gofeed parsers keep per-parse state, so every call gets its own.
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		entries = append(entries, p.normalizeItem(item))
	}

	return entries, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item) Entry {
	return Entry{
		Title:       strings.TrimSpace(item.Title),
		Link:        strings.TrimSpace(item.Link),
		Description: item.Description,
		Content:     item.Content,
		Published:   strings.TrimSpace(item.Published),
		Updated:     strings.TrimSpace(item.Updated),
	}
}
