package render

import (
	"bytes"
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/lysyi3m/ai-digest/app/feed"
	"github.com/lysyi3m/ai-digest/app/registry"
)

const (
	ReadMoreLabel    = "→ Read more"
	NewsletterFooter = "*💡 This digest was generated automatically*"
)

func Newsletter(items []feed.Item, now time.Time, opts Options) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", cmp.Or(opts.Title, DefaultTitle))
	fmt.Fprintf(&buf, "📅 **%s** | 🤖 %d curated AI stories\n\n", now.Format("January 2, 2006"), len(items))
	if opts.Intro != "" {
		fmt.Fprintf(&buf, "%s\n\n", opts.Intro)
	}
	buf.WriteString("---\n\n")

	for i, item := range items {
		summary := strings.TrimSpace(StripTags(ellipsize(item.Summary, NewsletterSummaryLength)))

		fmt.Fprintf(&buf, "### %d. %s\n\n", i+1, item.Title)
		fmt.Fprintf(&buf, "%s\n\n", summary)
		fmt.Fprintf(&buf, "*%s*\n", metaLine(item))
		fmt.Fprintf(&buf, "[%s](%s)\n\n", ReadMoreLabel, item.Link)
		buf.WriteString("---\n\n")
	}

	buf.WriteString(NewsletterFooter)
	buf.WriteString("\n")

	return buf.String()
}

// Standard groups items under a heading per category, in order of first
// appearance. Summaries keep their markup.
func Standard(items []feed.Item, now time.Time) string {
	var buf bytes.Buffer

	buf.WriteString("# 🤖 AI News Daily\n\n")
	fmt.Fprintf(&buf, "📅 %s | %d items\n\n", now.Format(time.DateOnly), len(items))

	var order []registry.Category
	groups := make(map[registry.Category][]feed.Item)
	for _, item := range items {
		category := cmp.Or(item.Category, registry.CategoryGeneral)
		if _, ok := groups[category]; !ok {
			order = append(order, category)
		}
		groups[category] = append(groups[category], item)
	}

	for _, category := range order {
		fmt.Fprintf(&buf, "## %s\n\n", category.DisplayName())

		for _, item := range groups[category] {
			fmt.Fprintf(&buf, "### %s\n\n", item.Title)
			fmt.Fprintf(&buf, "%s...\n\n", feed.Truncate(item.Summary, StandardSummaryLength))
			fmt.Fprintf(&buf, "*%s* | [Read more](%s)\n\n", metaLine(item), item.Link)
		}
	}

	return buf.String()
}

func Summary(items []feed.Item, now time.Time) string {
	var buf bytes.Buffer

	buf.WriteString("# AI News Summary\n\n")
	fmt.Fprintf(&buf, "*%s - %d items*\n\n", now.Format(time.DateOnly), len(items))

	for _, item := range head(items, ListLimit) {
		fmt.Fprintf(&buf, "• **%s** — *%s*\n", item.Title, metaLine(item))
	}

	return buf.String()
}
