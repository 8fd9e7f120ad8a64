// Package batch runs the article pipeline over many URLs for mirroring. It
// owns the caller-side concerns the pipeline deliberately excludes: worker
// pooling, per-domain rate limiting, URL deduplication, and persistence of
// outcomes.
package batch

import (
	"context"
	"sync"

	"github.com/pressgate/pressgate"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the worker pool size used when none is configured.
const DefaultConcurrency = 5

// Progress reports the outcome of one URL during a run.
type Progress struct {
	URL       string
	Result    *pressgate.ArticleResult
	Completed int
	Total     int

	// Err is set when persisting or mirroring the outcome failed. Pipeline
	// failures are not errors; they arrive as data inside Result.
	Err error
}

// ProgressFunc is called as URLs are processed. Calls may come from
// multiple workers but are serialized.
type ProgressFunc func(Progress)

// Summary aggregates the outcomes of one run.
type Summary struct {
	Processed int
	Succeeded int
	Paywalled int
	Failed    int
	Skipped   int
}

// Runner fans a URL list out over a worker pool, feeding each URL through
// the pipeline and recording outcomes.
type Runner struct {
	Pipeline pressgate.ArticleFetcher

	// Store persists every outcome; optional.
	Store pressgate.ArticleStore

	// Mirror writes successful articles to a mirror tree; optional.
	Mirror pressgate.ArticleWriter

	// Limiter throttles requests per domain; optional.
	Limiter *DomainLimiter

	// Concurrency is the worker pool size; DefaultConcurrency if <= 0.
	Concurrency int
}

// Run processes the URLs and returns a summary. Duplicate URLs are skipped.
// The run stops early only on context cancellation; individual URL failures
// are reported via progress and counted, never fatal.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) (Summary, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var (
		mu        sync.Mutex
		summary   Summary
		completed int
	)
	dedup := newDeduper()
	total := len(urls)

	report := func(p Progress) {
		if progress == nil {
			return
		}
		progress(p)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, u := range urls {
		if dedup.seen(u) {
			mu.Lock()
			summary.Skipped++
			completed++
			report(Progress{URL: u, Completed: completed, Total: total})
			mu.Unlock()
			continue
		}

		g.Go(func() error {
			if r.Limiter != nil {
				if err := r.Limiter.Wait(ctx, u); err != nil {
					return err
				}
			}

			res := r.Pipeline.FetchArticleContent(ctx, u)
			err := r.record(ctx, u, res)

			mu.Lock()
			defer mu.Unlock()
			summary.Processed++
			switch {
			case res.Success:
				summary.Succeeded++
			case res.PaywallDetected:
				summary.Paywalled++
			default:
				summary.Failed++
			}
			completed++
			report(Progress{URL: u, Result: res, Completed: completed, Total: total, Err: err})
			return nil
		})
	}

	err := g.Wait()
	return summary, err
}

// record persists and mirrors one outcome.
func (r *Runner) record(ctx context.Context, url string, res *pressgate.ArticleResult) error {
	rec := pressgate.NewArticleRecord(url, res)

	if r.Store != nil {
		if err := r.Store.SaveArticle(ctx, rec); err != nil {
			return err
		}
	}
	if r.Mirror != nil && res.Success {
		if err := r.Mirror.WriteArticle(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
