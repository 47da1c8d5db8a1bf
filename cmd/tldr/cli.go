package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/tldr"
)

// Dependencies holds the services and settings commands run with.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config Config

	Summarizer tldr.Summarizer
	Seen       tldr.URLSet
	Fetcher    tldr.Fetcher
	Extractor  tldr.Extractor
	Converter  tldr.Converter
	Sitemaps   tldr.SitemapService
	History    tldr.HistoryService

	// NewWriter returns the writer used for --out.
	NewWriter func(dir string) tldr.EntryWriter
}

// Globals are flags accepted by every command. Each can also be set through
// its TLDR_* environment variable or the config file.
type Globals struct {
	Config      string        `help:"Config file (default ~/.tldr/config.yaml)" env:"TLDR_CONFIG" type:"path"`
	Verbose     bool          `short:"v" help:"Log requests to stderr" env:"TLDR_VERBOSE"`
	Keep        float64       `short:"k" help:"Fraction of sentences to keep, in (0, 1] (default 0.4)" env:"TLDR_KEEP_RATIO"`
	Timeout     time.Duration `short:"t" help:"Fetch timeout per page (default 10s)" env:"TLDR_TIMEOUT"`
	Concurrency int           `short:"c" help:"Articles summarized at once (default 1)" env:"TLDR_CONCURRENCY"`
	RPS         float64       `name:"rps" help:"Requests per second per site, negative for no limit (default 1)" env:"TLDR_REQUESTS_PER_SECOND"`
	Retries     int           `help:"Retries per failed fetch, negative for none (default 3)" env:"TLDR_RETRIES"`
	Extractor   string        `short:"x" help:"Boilerplate removal: none, readability or trafilatura" env:"TLDR_EXTRACTOR"`
	Browser     bool          `short:"b" help:"Render pages in headless Chrome" env:"TLDR_BROWSER"`
	StopWords   string        `help:"Stop-word list, one word per line" env:"TLDR_STOP_WORDS" type:"path"`
	DB          string        `help:"History database (default ~/.tldr/tldr.db)" env:"TLDR_DB"`
	UserAgent   string        `help:"User-Agent header for requests" env:"TLDR_USER_AGENT"`
}

// Settings returns the config-backed globals as a Config.
func (g *Globals) Settings() Config {
	return Config{
		KeepRatio:         g.Keep,
		Timeout:           g.Timeout,
		Concurrency:       g.Concurrency,
		RequestsPerSecond: g.RPS,
		Retries:           g.Retries,
		Extractor:         g.Extractor,
		Browser:           g.Browser,
		StopWords:         g.StopWords,
		DB:                g.DB,
		UserAgent:         g.UserAgent,
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Globals `embed:""`

	Summarize SummarizeCmd `cmd:"" help:"Summarize articles"`
	Read      ReadCmd      `cmd:"" help:"Print an article as Markdown"`
	Sitemap   SitemapCmd   `cmd:"" help:"Summarize the latest articles listed in a site's sitemap"`
	History   HistoryCmd   `cmd:"" help:"List recorded summaries"`
	Forget    ForgetCmd    `cmd:"" help:"Delete a recorded summary"`
}

// OutputOptions control how summaries are printed and stored.
type OutputOptions struct {
	Format    string `short:"f" enum:"text,markdown" default:"text" help:"Output format: text or markdown"`
	Out       string `short:"o" help:"Also save each summary as Markdown under this directory" type:"path"`
	NoHistory bool   `help:"Do not record summaries in the history database"`
	Unique    bool   `short:"u" help:"Skip URLs already summarized in this run"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URLs []string `arg:"" name:"url" help:"Article URLs; - reads newline-separated URLs from stdin"`
	OutputOptions `embed:""`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	URL string `arg:"" help:"Article URL"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	Site    string   `arg:"" help:"Site URL; a path restricts discovery to that section"`
	Filter  []string `short:"F" help:"Only include URLs matching this regex (repeatable)"`
	Exclude []string `short:"E" help:"Exclude URLs matching this regex (repeatable)"`
	Limit   int      `short:"n" default:"10" help:"Maximum number of articles, newest first"`
	OutputOptions `embed:""`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL    string `help:"Only show entries for this URL"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of entries"`
	Offset int    `help:"Skip this many entries"`
	Full   bool   `help:"Show the summary text"`
}

// ForgetCmd is the "forget" subcommand.
type ForgetCmd struct {
	ID string `arg:"" help:"Entry ID"`
}
