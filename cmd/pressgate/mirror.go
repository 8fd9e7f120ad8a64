package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pressgate/pressgate/batch"
	"github.com/pressgate/pressgate/fs"
	pghttp "github.com/pressgate/pressgate/http"
	"github.com/pressgate/pressgate/pipeline"
	pgslog "github.com/pressgate/pressgate/slog"
)

// Run executes the mirror command.
func (c *MirrorCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.Urls)
	if err != nil {
		return fmt.Errorf("failed to open URL list: %w", err)
	}
	defer f.Close()

	urls, err := readURLList(f)
	if err != nil {
		return fmt.Errorf("failed to read URL list: %w", err)
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs found in %q", c.Urls)
	}

	fetcher := pghttp.NewFetcher()
	defer fetcher.Close()

	runner := &batch.Runner{
		Pipeline:    pgslog.NewPipeline(pipeline.New(fetcher, newExtractor(c.Engine)), deps.Logger),
		Store:       deps.Articles,
		Mirror:      fs.NewWriter(c.Out),
		Limiter:     batch.NewDomainLimiter(c.RPS),
		Concurrency: c.Concurrency,
	}

	summary, err := runner.Run(deps.Ctx, urls, func(p batch.Progress) {
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %v\n", p.Completed, p.Total, p.URL, p.Err)
			return
		}
		fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", p.Completed, p.Total, p.URL)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "processed %d: %d mirrored, %d paywalled, %d failed, %d skipped\n",
		summary.Processed, summary.Succeeded, summary.Paywalled, summary.Failed, summary.Skipped)

	return nil
}

// readURLList parses a URL list: one URL per line, blank lines and
// '#'-prefixed comments ignored.
func readURLList(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}
