package main

import (
	"fmt"

	"github.com/pressgate/pressgate"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pressgate.ArticleFilter{Limit: c.Limit}
	if c.Paywalled {
		paywalled := true
		filter.Paywalled = &paywalled
	}
	if c.Failed {
		success := false
		paywalled := false
		filter.Success = &success
		filter.Paywalled = &paywalled
	}

	records, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pressgate.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No fetch outcomes stored. Use 'pressgate mirror' to fetch some.")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", rec.ID, rec.FetchedAt.Format("2006-01-02"), outcomeLabel(rec), rec.URL)
	}

	return nil
}

func outcomeLabel(rec *pressgate.ArticleRecord) string {
	switch {
	case rec.Success:
		return "ok      "
	case rec.Paywalled:
		return "paywall "
	default:
		return "failed  "
	}
}
