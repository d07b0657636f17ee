package delivery

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/lysyi3m/ai-digest/app/feed"
)

const (
	emailSummaryLength    = 200
	emailMaxOrganizations = 3
	DateLayout            = "January 2, 2006"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var emailTemplate = template.Must(template.ParseFS(templateFS, "templates/email.html.tmpl"))

type emailData struct {
	Date   string
	Count  int
	SentAt string
	Year   int
	Items  []emailItem
}

type emailItem struct {
	Title         string
	URL           string
	Summary       string
	Source        string
	Topic         Topic
	Organizations []organizationTag
}

type organizationTag struct {
	Name  string
	Color template.CSS
}

// RenderEmail builds the full HTML email for the recovered records. now only
// feeds the footer timestamp.
func RenderEmail(records []Record, date string, now time.Time) (string, error) {
	data := emailData{
		Date:   date,
		Count:  len(records),
		SentAt: now.Format("2006-01-02 15:04"),
		Year:   now.Year(),
		Items:  make([]emailItem, 0, len(records)),
	}

	for _, record := range records {
		item := emailItem{
			Title:   record.Title,
			URL:     record.URL,
			Summary: ellipsize(record.Summary, emailSummaryLength),
			Source:  record.Source,
			Topic:   Classify(record.Title),
		}

		orgs := record.Organizations
		if len(orgs) > emailMaxOrganizations {
			orgs = orgs[:emailMaxOrganizations]
		}
		for _, org := range orgs {
			item.Organizations = append(item.Organizations, organizationTag{Name: org, Color: OrganizationColor(org)})
		}

		data.Items = append(data.Items, item)
	}

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email: %w", err)
	}

	return buf.String(), nil
}

// MarkdownToHTML converts a markdown digest into an HTML email, falling back
// to SimpleHTML when no items can be recovered.
func MarkdownToHTML(markdown, date string, now time.Time) (string, error) {
	records := Recover(markdown)
	if len(records) == 0 {
		return SimpleHTML(markdown, date), nil
	}
	return RenderEmail(records, date, now)
}

var (
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldPattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)
)

// SimpleHTML does a literal conversion of headings, bold text and links.
func SimpleHTML(markdown, date string) string {
	var (
		body      strings.Builder
		paragraph []string
	)

	flush := func() {
		if len(paragraph) > 0 {
			fmt.Fprintf(&body, "<p>%s</p>\n", strings.Join(paragraph, "<br>\n"))
			paragraph = nil
		}
	}

	for _, raw := range strings.Split(markdown, "\n") {
		line := inlineHTML(strings.TrimSpace(raw))

		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "### "):
			flush()
			fmt.Fprintf(&body, "<h3>%s</h3>\n", strings.TrimPrefix(line, "### "))
		case strings.HasPrefix(line, "## "):
			flush()
			fmt.Fprintf(&body, "<h2>%s</h2>\n", strings.TrimPrefix(line, "## "))
		case strings.HasPrefix(line, "# "):
			flush()
			fmt.Fprintf(&body, "<h1>%s</h1>\n", strings.TrimPrefix(line, "# "))
		default:
			paragraph = append(paragraph, line)
		}
	}
	flush()

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>AI Daily News - %s</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'PingFang SC', 'Microsoft YaHei', sans-serif; line-height: 1.6; max-width: 600px; margin: 0 auto; padding: 20px; color: #333;">
%s</body>
</html>`, html.EscapeString(date), body.String())
}

func inlineHTML(line string) string {
	line = html.EscapeString(line)
	line = linkPattern.ReplaceAllStringFunc(line, func(link string) string {
		match := linkPattern.FindStringSubmatch(link)
		if !safeLink(match[2]) {
			return match[1]
		}
		return fmt.Sprintf(`<a href="%s">%s</a>`, match[2], match[1])
	})
	line = boldPattern.ReplaceAllString(line, `<strong>$1</strong>`)
	return line
}

// safeLink reports whether target may be used as an href. Anything else, such
// as javascript: URLs, is rendered as plain label text.
func safeLink(target string) bool {
	lower := strings.ToLower(strings.TrimSpace(target))
	for _, scheme := range []string{"http://", "https://", "mailto:"} {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

func ellipsize(s string, limit int) string {
	cut := feed.Truncate(s, limit)
	if cut == s {
		return s
	}
	return cut + "..."
}
