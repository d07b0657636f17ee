package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lysyi3m/ai-digest/app/cfg"
	"github.com/lysyi3m/ai-digest/app/feed"
	"github.com/lysyi3m/ai-digest/app/registry"
	"github.com/lysyi3m/ai-digest/app/render"
	"github.com/lysyi3m/ai-digest/app/translate"
)

var datePresets = map[string]int{
	"today": 1,
	"week":  7,
	"month": 30,
}

type FetchCommand struct {
	Date         string `long:"date" choice:"today" choice:"week" choice:"month" default:"today" description:"Lookback preset"`
	Days         int    `long:"days" default:"1" description:"Lookback window in days; any value other than 1 overrides --date"`
	Categories   string `long:"categories" description:"Comma-separated categories to keep (releases, research, business, products, community, general)"`
	Search       string `long:"search" description:"Keep items whose title or summary contains this keyword"`
	Output       string `long:"output" choice:"markdown" choice:"json" choice:"text" choice:"rss" default:"markdown" description:"Output format"`
	Format       string `long:"format" choice:"standard" choice:"summary" choice:"newsletter" default:"newsletter" description:"Markdown layout"`
	Sources      string `long:"sources" description:"Comma-separated source ids (defaults to the curated news sites)"`
	SaveTo       string `long:"save-to" description:"Write the digest to this file instead of stdout"`
	MaxItems     int    `long:"max-items" default:"15" description:"Maximum number of items in the digest"`
	Title        string `long:"title" default:"🤖 AI Daily Digest" description:"Newsletter title"`
	Intro        string `long:"intro" description:"Newsletter intro paragraph"`
	NoDateFilter bool   `long:"no-date-filter" description:"Keep items regardless of their publish date"`

	Translate         bool   `long:"translate" description:"Translate items into Chinese"`
	TranslateFields   string `long:"translate-fields" default:"title,summary" description:"Comma-separated item fields to translate"`
	TranslateEngine   string `long:"translate-engine" env:"TRANSLATE_ENGINE" default:"bing" description:"Translation engine passed to the translation service"`
	TranslateEndpoint string `long:"translate-endpoint" env:"TRANSLATE_ENDPOINT" default:"https://libretranslate.com" description:"LibreTranslate compatible endpoint"`
	TranslateKey      string `long:"translate-key" env:"TRANSLATE_API_KEY" description:"API key for the translation service"`

	fetcher    feed.Fetcher
	translator translate.Translator
	stdout     io.Writer
	now        func() time.Time
}

func (c *FetchCommand) Execute(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf := cfg.Get()

	reg, err := loadRegistry(conf.RegistryFile)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	categories, err := c.categories()
	if err != nil {
		return err
	}

	sourceIDs := splitList(c.Sources)
	if len(sourceIDs) == 0 {
		sourceIDs = registry.DefaultSelection
	}

	days := c.days()
	slog.Info("Fetching AI news", "days", days, "sources", len(sourceIDs))

	fetcher := c.fetcher
	if fetcher == nil {
		fetcher = feed.NewHTTPFetcher(nil, feed.NewParser(), conf.UserAgent, conf.Timeout)
	}

	report := feed.NewAggregator(reg, fetcher, conf.Parallel).Run(ctx, sourceIDs)

	now := c.clock()
	items := feed.NewFilterer().Run(report.Items(), feed.Criteria{
		Days:       days,
		Strict:     !c.NoDateFilter,
		Categories: categories,
		Keyword:    c.Search,
	}, now)

	if c.MaxItems > 0 && len(items) > c.MaxItems {
		items = items[:c.MaxItems]
	}

	if c.Translate && len(items) > 0 {
		translator := c.translator
		if translator == nil {
			translator = translate.NewHTTPTranslator(c.TranslateEndpoint, c.TranslateKey, conf.Timeout)
		}
		service := translate.NewService(translator, c.TranslateEngine)
		items = service.Items(ctx, items, splitList(c.TranslateFields), c.MaxItems)
	}

	output, err := render.Run(render.Output(c.Output), render.Style(c.Format), items, now, render.Options{
		Title: c.Title,
		Intro: c.Intro,
	})
	if err != nil {
		return fmt.Errorf("failed to render digest: %w", err)
	}

	slog.Info("Digest ready", "items", len(items), "failed_sources", len(report.Failed()))

	if c.SaveTo != "" {
		if err := writeFile(c.SaveTo, output); err != nil {
			return err
		}
		slog.Info("Digest saved", "path", c.SaveTo)
		return nil
	}

	_, err = fmt.Fprint(c.writer(), output)
	return err
}

// days resolves the lookback window. An explicit --days other than 1 wins
// over the preset.
func (c *FetchCommand) days() int {
	if c.Days != 1 {
		return c.Days
	}
	if days, ok := datePresets[c.Date]; ok {
		return days
	}
	return c.Days
}

func (c *FetchCommand) categories() ([]registry.Category, error) {
	var categories []registry.Category
	for _, name := range splitList(c.Categories) {
		category := registry.Category(name)
		if !category.Valid() {
			return nil, fmt.Errorf("unknown category: %s", name)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (c *FetchCommand) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

func (c *FetchCommand) writer() io.Writer {
	if c.stdout != nil {
		return c.stdout
	}
	return os.Stdout
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
