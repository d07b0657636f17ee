package delivery

import (
	"regexp"
	"slices"
	"strings"
)

// Record is a news item recovered from a rendered markdown digest.
type Record struct {
	Title         string   `json:"title"`
	Summary       string   `json:"summary"`
	URL           string   `json:"url"`
	Source        string   `json:"source"`
	Organizations []string `json:"organizations"`
}

var (
	readMorePattern     = regexp.MustCompile(`^\[→[^\]]*\]\((.*)\)\s*$`)
	metaLinkPattern     = regexp.MustCompile(`\[[^\]]*\]\((.*)\)\s*$`)
	sourcePattern       = regexp.MustCompile(`📰\s*([^|·]+)`)
	organizationPattern = regexp.MustCompile(`🏢\s*([^·|]+)`)
	numberPrefix        = regexp.MustCompile(`^\d+\.\s*`)
	emphasisReplacer    = strings.NewReplacer("**", "", "*", "")
)

// Recover scans a markdown digest line by line and rebuilds its items.
// "### " headings start a record; "## " headings do so only in legacy digests
// that have no "### " heading at all, since elsewhere they are category
// sections. "[→ ...](url)" lines set the URL, and italic lines carrying 📰 or
// 🏢 set source and organizations, plus the URL when the line ends in a link.
// Remaining text lines form the summary. It is lossy: anything outside these
// shapes is dropped.
func Recover(markdown string) []Record {
	var (
		records []Record
		current *Record
		summary []string
	)

	lines := strings.Split(markdown, "\n")
	legacy := !slices.ContainsFunc(lines, func(line string) bool {
		return strings.HasPrefix(strings.TrimSpace(line), "### ")
	})

	flush := func() {
		if current == nil {
			return
		}
		current.Summary = strings.TrimSpace(strings.Join(summary, "\n"))
		records = append(records, *current)
		current = nil
		summary = nil
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, "### "):
			flush()
			current = newRecord(strings.TrimPrefix(line, "### "))

		case legacy && strings.HasPrefix(line, "## "):
			flush()
			current = newRecord(strings.TrimPrefix(line, "## "))

		case strings.HasPrefix(line, "#"), current == nil:
			continue

		case strings.HasPrefix(line, "[→"):
			if match := readMorePattern.FindStringSubmatch(line); match != nil {
				current.URL = match[1]
			}

		case strings.HasPrefix(line, "*") && strings.ContainsAny(line, "📰🏢"):
			parseMeta(current, line)

		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "*"):
			continue

		default:
			clean := emphasisReplacer.Replace(line)
			if clean != "" && !strings.HasPrefix(clean, "//") {
				summary = append(summary, clean)
			}
		}
	}
	flush()

	return records
}

func newRecord(heading string) *Record {
	return &Record{
		Title:         numberPrefix.ReplaceAllString(strings.TrimSpace(heading), ""),
		Organizations: []string{},
	}
}

func parseMeta(record *Record, line string) {
	if match := sourcePattern.FindStringSubmatch(line); match != nil {
		record.Source = trimMeta(match[1])
	}

	organizations := []string{}
	for _, match := range organizationPattern.FindAllStringSubmatch(line, -1) {
		if name := trimMeta(match[1]); name != "" {
			organizations = append(organizations, name)
		}
	}
	record.Organizations = organizations

	if record.URL == "" {
		if match := metaLinkPattern.FindStringSubmatch(line); match != nil {
			record.URL = match[1]
		}
	}
}

func trimMeta(s string) string {
	return strings.Trim(s, " \t*")
}
