// Package crawler reads a directory of HTML pages and extracts the links
// between them.
//
// # Components
//
//   - Parser: HTML parser that extracts the href of every <a> element
//   - Corpus: reads every *.html file of a directory and builds the
//     model.LinkGraph used by the pagerank package
//
// # Link normalization
//
// Whitespace, fragments and query strings are stripped. javascript:,
// mailto:, tel: and data: links, bare "#" links and absolute URLs are
// ignored. Self links and links to pages outside the corpus are removed
// later by model.NewLinkGraph.
//
// # Concurrency
//
// Files are parsed concurrently with errgroup under a configurable limit.
// The first failing file cancels the rest.
//
// # Usage
//
//	corpus := crawler.NewCorpus("corpus0", crawler.WithConcurrency(8))
//	graph, err := corpus.Graph(ctx)
package crawler
