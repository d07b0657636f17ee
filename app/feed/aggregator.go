package feed

import (
	"cmp"
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lysyi3m/ai-digest/app/registry"
)

const DefaultParallel = 4

// SourceResult is the outcome of fetching one source. Err is set when the
// source failed; Items is then empty.
type SourceResult struct {
	Source   registry.Source
	Items    []Item
	Err      error
	Duration time.Duration
}

type Report struct {
	Results []SourceResult
}

// Items concatenates the items of every source in fetch order.
func (r Report) Items() []Item {
	total := 0
	for _, res := range r.Results {
		total += len(res.Items)
	}
	items := make([]Item, 0, total)
	for _, res := range r.Results {
		items = append(items, res.Items...)
	}
	return items
}

func (r Report) Failed() []SourceResult {
	var failed []SourceResult
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

type Aggregator struct {
	registry *registry.Registry
	fetcher  Fetcher
	tagger   *Tagger
	parallel int
}

func NewAggregator(reg *registry.Registry, fetcher Fetcher, parallel int) *Aggregator {
	if parallel <= 0 {
		parallel = DefaultParallel
	}
	return &Aggregator{
		registry: reg,
		fetcher:  fetcher,
		tagger:   NewTagger(reg.Organizations()),
		parallel: parallel,
	}
}

// Run fetches the given sources with bounded parallelism. Unknown ids are
// skipped. A failing source never aborts the run: its error is logged and kept
// in the report, and results stay in caller order.
func (a *Aggregator) Run(ctx context.Context, sourceIDs []string) Report {
	sources := a.registry.Resolve(sourceIDs)
	results := make([]SourceResult, len(sources))

	var g errgroup.Group
	g.SetLimit(a.parallel)

	for i, src := range sources {
		g.Go(func() error {
			results[i] = a.fetchSource(ctx, src)
			return nil
		})
	}

	_ = g.Wait()

	report := Report{Results: results}

	slog.Info("Aggregation completed",
		"sources", len(sources),
		"failed", len(report.Failed()),
		"items", len(report.Items()))

	return report
}

func (a *Aggregator) fetchSource(ctx context.Context, src registry.Source) SourceResult {
	started := time.Now()
	result := SourceResult{Source: src}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	slog.Debug("Fetching source", "source", src.ID, "url", src.URL)

	entries, err := a.fetcher.Fetch(ctx, src.URL)
	result.Duration = time.Since(started)
	if err != nil {
		slog.Warn("Source fetch failed", "source", src.ID, "error", err)
		result.Err = err
		return result
	}

	if len(entries) > MaxEntriesPerSource {
		entries = entries[:MaxEntriesPerSource]
	}

	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, a.buildItem(src, entry))
	}
	result.Items = items

	slog.Info("Source fetched",
		"source", src.ID,
		"items", len(items),
		"duration", result.Duration)

	return result
}

func (a *Aggregator) buildItem(src registry.Source, entry Entry) Item {
	item := Item{
		Title:     cmp.Or(entry.Title, DefaultTitle),
		Link:      entry.Link,
		Summary:   Truncate(cmp.Or(entry.Description, entry.Content), MaxSummaryLength),
		Published: cmp.Or(entry.Published, entry.Updated, UnknownPublished),
		Source:    src.Name,
		Category:  src.Category,
		Language:  src.Language,
	}

	if published, ok := NormalizeDate(item.Published); ok {
		item.PublishedAt = &published
	}

	item.Organizations = a.tagger.Detect(item.Title + " " + item.Summary)

	return item
}

// Truncate returns at most limit runes of s.
func Truncate(s string, limit int) string {
	if limit < 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
