package translate

import (
	"context"
	"log/slog"

	"github.com/lysyi3m/ai-digest/app/feed"
)

const (
	DefaultSource = "en"
	DefaultTarget = "zh"

	FieldTitle   = "title"
	FieldSummary = "summary"

	cacheKeyLength   = 200
	titleLength      = 200
	summaryLength    = 800
	cjkSkipThreshold = 0.4
)

// Service translates item text with per-run caching. Any translation failure
// leaves the original text in place. It is not safe for concurrent use.
type Service struct {
	translator Translator
	engine     string
	from       string
	to         string
	cache      map[string]string
}

func NewService(translator Translator, engine string) *Service {
	return &Service{
		translator: translator,
		engine:     engine,
		from:       DefaultSource,
		to:         DefaultTarget,
		cache:      make(map[string]string),
	}
}

func (s *Service) Text(ctx context.Context, text string) string {
	if text == "" || mostlyCJK(text) {
		return text
	}

	key := feed.Truncate(text, cacheKeyLength)
	if cached, ok := s.cache[key]; ok {
		return cached
	}

	translated, err := s.translator.Translate(ctx, text, s.from, s.to, s.engine)
	if err != nil {
		slog.Warn("Translation failed", "engine", s.engine, "error", err)
		return text
	}

	s.cache[key] = translated
	return translated
}

// Items translates the given fields of the first limit items and returns a new
// slice. Titles are cut to 200 characters and summaries to 800 before
// translation.
func (s *Service) Items(ctx context.Context, items []feed.Item, fields []string, limit int) []feed.Item {
	result := make([]feed.Item, len(items))
	copy(result, items)

	if limit <= 0 || limit > len(result) {
		limit = len(result)
	}
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldSummary}
	}

	slog.Info("Translating items", "count", limit, "fields", fields)

	for i := range result[:limit] {
		item := &result[i]
		for _, field := range fields {
			switch field {
			case FieldTitle:
				if item.Title != "" {
					item.Title = s.Text(ctx, feed.Truncate(item.Title, titleLength))
				}
			case FieldSummary:
				if item.Summary != "" {
					item.Summary = s.Text(ctx, feed.Truncate(item.Summary, summaryLength))
				}
			default:
				slog.Debug("Skipping unknown translation field", "field", field)
			}
		}
	}

	return result
}

// mostlyCJK reports whether more than 40% of the runes are CJK ideographs.
func mostlyCJK(text string) bool {
	total, cjk := 0, 0
	for _, r := range text {
		total++
		if r >= '\u4e00' && r <= '\u9fff' {
			cjk++
		}
	}
	if total == 0 {
		return false
	}
	return float64(cjk)/float64(total) > cjkSkipThreshold
}
