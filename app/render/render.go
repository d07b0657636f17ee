package render

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/lysyi3m/ai-digest/app/feed"
)

type Output string

const (
	OutputMarkdown Output = "markdown"
	OutputJSON     Output = "json"
	OutputText     Output = "text"
	OutputRSS      Output = "rss"
)

type Style string

const (
	StyleStandard   Style = "standard"
	StyleSummary    Style = "summary"
	StyleNewsletter Style = "newsletter"
)

const (
	DefaultTitle = "🤖 AI Daily Digest"

	NewsletterSummaryLength = 200
	StandardSummaryLength   = 250
	ListLimit               = 20
	MetaOrganizations       = 3
)

var ErrUnknownOutput = errors.New("unknown output format")

type Options struct {
	Title string
	Intro string
}

// Run renders items in the requested output. The markdown style is only
// consulted for markdown output; an empty style means newsletter.
func Run(output Output, style Style, items []feed.Item, now time.Time, opts Options) (string, error) {
	switch output {
	case OutputMarkdown, "":
		switch style {
		case StyleNewsletter, "":
			return Newsletter(items, now, opts), nil
		case StyleStandard:
			return Standard(items, now), nil
		case StyleSummary:
			return Summary(items, now), nil
		default:
			return "", fmt.Errorf("%w: markdown style %q", ErrUnknownOutput, style)
		}
	case OutputJSON:
		return JSON(items, now)
	case OutputText:
		return Text(items, now), nil
	case OutputRSS:
		return RSS(items, now, opts), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOutput, output)
	}
}

// StripTags returns the text content of an HTML fragment. Entities are decoded.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}

// ellipsize cuts s to limit runes and marks the cut with "...".
func ellipsize(s string, limit int) string {
	cut := feed.Truncate(s, limit)
	if cut == s {
		return s
	}
	return cut + "..."
}

// metaLine formats "📰 Source | 🏢 A · 🏢 B" with at most three organizations.
func metaLine(item feed.Item) string {
	meta := "📰 " + item.Source
	if orgs := formatOrganizations(item.Organizations); orgs != "" {
		meta += " | " + orgs
	}
	return meta
}

func formatOrganizations(orgs []string) string {
	if len(orgs) > MetaOrganizations {
		orgs = orgs[:MetaOrganizations]
	}
	tagged := make([]string, 0, len(orgs))
	for _, org := range orgs {
		tagged = append(tagged, "🏢 "+org)
	}
	return strings.Join(tagged, " · ")
}

func head(items []feed.Item, limit int) []feed.Item {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
