package render

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lysyi3m/ai-digest/app/feed"
)

type envelope struct {
	GeneratedAt string      `json:"generated_at"`
	Count       int         `json:"count"`
	Items       []feed.Item `json:"items"`
}

// JSON wraps every item with its enrichment fields in a timestamped envelope.
func JSON(items []feed.Item, now time.Time) (string, error) {
	if items == nil {
		items = []feed.Item{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(envelope{
		GeneratedAt: now.Format(time.RFC3339),
		Count:       len(items),
		Items:       items,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode items: %w", err)
	}

	return buf.String(), nil
}

func Text(items []feed.Item, now time.Time) string {
	var buf bytes.Buffer

	buf.WriteString("AI Daily News\n")
	fmt.Fprintf(&buf, "Date: %s\n", now.Format(time.DateOnly))
	fmt.Fprintf(&buf, "Items: %d\n", len(items))
	buf.WriteString(strings.Repeat("=", 50))
	buf.WriteString("\n\n")

	for i, item := range head(items, ListLimit) {
		orgs := cmp.Or(strings.Join(item.Organizations, ", "), "unknown")

		fmt.Fprintf(&buf, "%d. %s\n", i+1, item.Title)
		fmt.Fprintf(&buf, "   Source: %s | Organizations: %s\n", item.Source, orgs)
		fmt.Fprintf(&buf, "   Link: %s\n\n", item.Link)
	}

	return buf.String()
}
