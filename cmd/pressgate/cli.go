package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/pressgate/pressgate"
	"github.com/pressgate/pressgate/readability"
	"github.com/pressgate/pressgate/sqlite"
	"github.com/pressgate/pressgate/trafilatura"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB       *sqlite.DB
	Articles pressgate.ArticleStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch  FetchCmd  `cmd:"" help:"Fetch one URL and print the result as JSON"`
	Mirror MirrorCmd `cmd:"" help:"Fetch a list of URLs, store outcomes, and mirror successful articles"`
	List   ListCmd   `cmd:"" help:"List stored fetch outcomes"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL    string `arg:"" help:"Article URL"`
	Engine string `default:"readability" enum:"readability,trafilatura" help:"Extraction engine"`
}

// MirrorCmd is the "mirror" subcommand.
type MirrorCmd struct {
	Urls        string  `arg:"" help:"Path to a file of URLs, one per line ('#' starts a comment)"`
	Out         string  `short:"o" default:"mirror" help:"Mirror output directory"`
	Engine      string  `default:"readability" enum:"readability,trafilatura" help:"Extraction engine"`
	Concurrency int     `short:"c" default:"5" help:"Concurrent fetch limit"`
	RPS         float64 `default:"1" help:"Requests per second per domain"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Paywalled bool `help:"Only show paywalled outcomes"`
	Failed    bool `help:"Only show failed (non-paywall) outcomes"`
	Limit     int  `default:"50" help:"Maximum records to show"`
}

// newExtractor selects the extraction engine.
func newExtractor(engine string) pressgate.Extractor {
	if engine == "trafilatura" {
		return trafilatura.NewExtractor()
	}
	return readability.NewExtractor()
}
