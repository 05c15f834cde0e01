package crawler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/inferank/internal/model"
)

// pageSuffix selects the files of a corpus directory.
const pageSuffix = ".html"

// Corpus reads a directory of HTML pages and builds its link graph.
//
// Design decision: We read the whole directory before building the graph
// because out-of-corpus links can only be recognized once every page name
// is known.
type Corpus struct {
	// dir is the corpus directory.
	dir string

	// concurrency limits how many files are parsed at once.
	concurrency int

	// maxFileSize limits how much of each page is read.
	maxFileSize int64

	// parser extracts links from each page.
	parser *Parser

	// logger receives per-page debug output.
	logger *slog.Logger
}

// CorpusOption configures a Corpus.
type CorpusOption func(*Corpus)

// WithConcurrency sets the maximum number of files parsed concurrently.
// Values below 1 are ignored.
func WithConcurrency(n int) CorpusOption {
	return func(c *Corpus) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithMaxFileSize sets the maximum number of bytes read from each page.
func WithMaxFileSize(size int64) CorpusOption {
	return func(c *Corpus) {
		if size > 0 {
			c.maxFileSize = size
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) CorpusOption {
	return func(c *Corpus) {
		c.logger = logger
	}
}

// NewCorpus creates a Corpus for the given directory.
func NewCorpus(dir string, opts ...CorpusOption) *Corpus {
	c := &Corpus{
		dir:         dir,
		concurrency: 4,
		maxFileSize: 10 * 1024 * 1024, // 10MB
		parser:      NewParser(),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dir returns the corpus directory.
func (c *Corpus) Dir() string {
	return c.dir
}

// Pages lists the page file names of the corpus in directory order.
func (c *Corpus) Pages() ([]string, error) {
	info, err := os.Stat(c.dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, c.dir)
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, err
	}

	pages := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), pageSuffix) {
			continue
		}
		pages = append(pages, e.Name())
	}
	return pages, nil
}

// Crawl parses every page of the corpus and returns the raw links of each
// page keyed by page name. Links are not yet filtered; pass the result to
// model.NewLinkGraph.
func (c *Corpus) Crawl(ctx context.Context) (map[string][]string, error) {
	pages, err := c.Pages()
	if err != nil {
		return nil, err
	}

	// Each goroutine writes only its own slot, so no mutex is needed.
	links := make([][]string, len(pages))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, page := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			found, err := c.parsePage(page)
			if err != nil {
				return fmt.Errorf("%s: %w", page, err)
			}
			c.logger.Debug("parsed page", "page", page, "links", len(found))
			links[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	raw := make(map[string][]string, len(pages))
	for i, page := range pages {
		raw[page] = links[i]
	}
	return raw, nil
}

// Graph crawls the corpus and builds its link graph.
func (c *Corpus) Graph(ctx context.Context) (*model.LinkGraph, error) {
	raw, err := c.Crawl(ctx)
	if err != nil {
		return nil, err
	}
	return model.NewLinkGraph(raw), nil
}

// parsePage reads one page, bounded by maxFileSize, and extracts its links.
func (c *Corpus) parsePage(page string) ([]string, error) {
	f, err := os.Open(filepath.Join(c.dir, page)) //nolint:gosec // Page names come from ReadDir
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return c.parser.ParseLinks(io.LimitReader(f, c.maxFileSize))
}
