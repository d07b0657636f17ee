package render

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/lysyi3m/ai-digest/app/feed"
)

const (
	rssLink        = "https://github.com/lysyi3m/ai-digest"
	rssDescription = "Curated AI news from research labs, vendors and media"
)

// RSS republishes the digest as an RSS 2.0 channel. Undated items carry no
// pubDate; detected organizations become categories.
func RSS(items []feed.Item, now time.Time, opts Options) string {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">`)
	buf.WriteString("\n  <channel>\n")

	writeElement(&buf, "title", cmp.Or(opts.Title, DefaultTitle), 4)
	writeElement(&buf, "link", rssLink, 4)
	writeElement(&buf, "description", cmp.Or(opts.Intro, rssDescription), 4)

	lastBuildDate := now
	if len(items) > 0 && items[0].PublishedAt != nil {
		lastBuildDate = *items[0].PublishedAt
	}
	writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	writeElement(&buf, "generator", "AI Digest", 4)

	for _, item := range items {
		writeItem(&buf, item)
	}

	buf.WriteString("  </channel>\n</rss>\n")

	return buf.String()
}

func writeItem(buf *bytes.Buffer, item feed.Item) {
	buf.WriteString("    <item>\n")

	writeElement(buf, "title", item.Title, 6)

	if item.Link != "" {
		buf.WriteString(fmt.Sprintf("      <guid isPermaLink=\"%t\">", isURL(item.Link)))
		xml.EscapeText(buf, []byte(item.Link))
		buf.WriteString("</guid>\n")
		writeElement(buf, "link", item.Link, 6)
	}

	summary := StripTags(ellipsize(item.Summary, StandardSummaryLength))
	writeElement(buf, "description", cmp.Or(summary, "No description available"), 6)

	if item.PublishedAt != nil {
		writeElement(buf, "pubDate", item.PublishedAt.Format(time.RFC1123Z), 6)
	}

	writeElement(buf, "dc:creator", item.Source, 6)

	for _, org := range item.Organizations {
		writeElement(buf, "category", org, 6)
	}

	if item.Category != "" {
		buf.WriteString("      <category domain=\"digest\">")
		xml.EscapeText(buf, []byte(item.Category))
		buf.WriteString("</category>\n")
	}

	buf.WriteString("    </item>\n")
}

func writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func isURL(s string) bool {
	return (len(s) > 7 && s[:7] == "http://") || (len(s) > 8 && s[:8] == "https://")
}
