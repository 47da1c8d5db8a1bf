package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tldr"
	"github.com/fwojciec/tldr/bloom"
	"github.com/fwojciec/tldr/fetch"
	"github.com/fwojciec/tldr/fs"
	"github.com/fwojciec/tldr/goquery"
	"github.com/fwojciec/tldr/htmltomarkdown"
	tldrhttp "github.com/fwojciec/tldr/http"
	"github.com/fwojciec/tldr/readability"
	"github.com/fwojciec/tldr/rod"
	tldrslog "github.com/fwojciec/tldr/slog"
	"github.com/fwojciec/tldr/sqlite"
	"github.com/fwojciec/tldr/summarize"
	"github.com/fwojciec/tldr/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A .env file in the working directory may supply TLDR_* variables.
	_ = godotenv.Load()

	m := NewMain()
	err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	_ = m.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Resolved settings, available after Run has parsed the arguments.
	Config Config

	// SQLite database backing the history. Nil when the command does not
	// need it.
	DB *sqlite.DB

	// Fetcher used by the command, closed by Close.
	Fetcher tldr.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close releases the browser and database.
func (m *Main) Close() error {
	var errs []error
	if m.Fetcher != nil {
		errs = append(errs, m.Fetcher.Close())
		m.Fetcher = nil
	}
	if m.DB != nil {
		errs = append(errs, m.DB.Close())
		m.DB = nil
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Run parses args, wires the services the chosen command needs and runs it.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		NewWriter: func(dir string) tldr.EntryWriter {
			return fs.NewWriter(dir)
		},
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tldr"),
		kong.Description("Summarize news articles by word frequency"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tldr --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfgPath, required := cli.Config, true
	if cfgPath == "" {
		cfgPath, required = DefaultConfigPath(), false
	}
	fileCfg, err := LoadConfig(cfgPath, required)
	if err != nil {
		return err
	}
	m.Config = cli.Settings().Merge(fileCfg).Merge(DefaultConfig())
	if err := m.Config.Validate(); err != nil {
		return err
	}
	deps.Config = m.Config

	deps.Logger = slog.New(slog.DiscardHandler)
	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	switch cmd := strings.Fields(kongCtx.Command())[0]; cmd {
	case "summarize", "sitemap":
		opts := cli.Summarize.OutputOptions
		if cmd == "sitemap" {
			opts = cli.Sitemap.OutputOptions
			deps.Sitemaps = m.sitemaps(deps.Logger)
		}
		if err := m.wireSummarizer(deps); err != nil {
			return err
		}
		if opts.Unique {
			deps.Seen = bloom.NewFilter(bloom.DefaultCapacity, bloom.DefaultFalsePositiveRate)
		}
		if !opts.NoHistory {
			if err := m.openHistory(deps); err != nil {
				return err
			}
		}
	case "read":
		if err := m.wireFetcher(deps); err != nil {
			return err
		}
		deps.Extractor = newExtractor(m.Config.Extractor)
		if deps.Extractor == nil {
			deps.Extractor = trafilatura.NewExtractor()
		}
		deps.Converter = htmltomarkdown.NewConverter()
	case "history", "forget":
		if err := m.openHistory(deps); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// wireFetcher builds the fetch chain: retries around a per-site rate limit
// around the logged HTTP or browser fetcher.
func (m *Main) wireFetcher(deps *Dependencies) error {
	cfg := m.Config

	var base tldr.Fetcher
	if cfg.Browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cfg.Timeout))
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		base = f
	} else {
		base = tldrhttp.NewFetcher(
			tldrhttp.WithTimeout(cfg.Timeout),
			tldrhttp.WithUserAgent(cfg.UserAgent),
		)
	}

	var f tldr.Fetcher = tldrslog.NewLoggingFetcher(base, deps.Logger)
	f = fetch.NewLimitedFetcher(f, fetch.NewDomainLimiter(cfg.RequestsPerSecond))
	f = fetch.NewRetryFetcher(f,
		fetch.WithDelays(fetch.RetryDelays(cfg.Retries)),
		fetch.WithRetryLog(func(format string, args ...any) {
			deps.Logger.Warn(fmt.Sprintf(format, args...))
		}),
	)

	m.Fetcher = f
	deps.Fetcher = f
	return nil
}

func (m *Main) wireSummarizer(deps *Dependencies) error {
	stopWords, err := summarize.LoadStopWords(m.Config.StopWords)
	if err != nil {
		return err
	}
	if err := m.wireFetcher(deps); err != nil {
		return err
	}

	var opts []goquery.RetrieverOption
	if e := newExtractor(m.Config.Extractor); e != nil {
		opts = append(opts, goquery.WithExtractor(e))
	}
	retriever := tldrslog.NewLoggingRetriever(goquery.NewRetriever(deps.Fetcher, opts...), deps.Logger)

	s := summarize.NewSummarizer(retriever, stopWords, summarize.WithKeepRatio(m.Config.KeepRatio))
	deps.Summarizer = tldrslog.NewLoggingSummarizer(s, deps.Logger)
	return nil
}

func (m *Main) sitemaps(logger *slog.Logger) tldr.SitemapService {
	client := &nethttp.Client{Timeout: m.Config.Timeout}
	svc := tldrhttp.NewSitemapService(client, tldrhttp.WithUserAgent(m.Config.UserAgent))
	return tldrslog.NewLoggingSitemapService(svc, logger)
}

func (m *Main) openHistory(deps *Dependencies) error {
	path := m.Config.DB
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Set TLDR_DB or --db to use a different database path")
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	deps.History = sqlite.NewHistoryService(m.DB)
	return nil
}

// newExtractor returns nil for ExtractorNone.
func newExtractor(name string) tldr.Extractor {
	switch name {
	case ExtractorReadability:
		return readability.NewExtractor()
	case ExtractorTrafilatura:
		return trafilatura.NewExtractor()
	}
	return nil
}
