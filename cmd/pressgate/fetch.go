package main

import (
	"encoding/json"
	"fmt"

	pghttp "github.com/pressgate/pressgate/http"
	"github.com/pressgate/pressgate/pipeline"
	pgslog "github.com/pressgate/pressgate/slog"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	fetcher := pghttp.NewFetcher()
	defer fetcher.Close()

	p := pgslog.NewPipeline(pipeline.New(fetcher, newExtractor(c.Engine)), deps.Logger)
	res := p.FetchArticleContent(deps.Ctx, c.URL)

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
