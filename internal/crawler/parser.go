package crawler

import (
	"io"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
)

// Parser extracts outbound page links from HTML content.
//
// Design decision: We use golang.org/x/net/html for parsing rather than
// regex because:
//  1. It correctly handles malformed HTML and attribute quoting variants
//  2. Only real <a> elements count; links inside comments or scripts do not
//  3. More maintainable than complex regex patterns
type Parser struct{}

// NewParser creates a new link parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseLinks parses HTML content and returns the normalized href of every
// <a> element, in document order. Duplicates are kept; the link graph
// removes them.
func (p *Parser) ParseLinks(content io.Reader) ([]string, error) {
	doc, err := html.Parse(content)
	if err != nil {
		return nil, err
	}

	links := make([]string, 0)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if link := normalizeLink(getAttr(n, "href")); link != "" {
				links = append(links, link)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links, nil
}

// normalizeLink turns an href into a corpus page name.
// It returns "" for links that can never name a page in the corpus.
//
// Design decision: Corpus pages are flat files addressed by name, so we
// keep only the cleaned path. Absolute URLs with a scheme or host point
// outside the corpus and are dropped here rather than in the link graph.
func normalizeLink(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || href == "#" {
		return ""
	}

	lower := strings.ToLower(href)
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:"} {
		if strings.HasPrefix(lower, prefix) {
			return ""
		}
	}

	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if u.Scheme != "" || u.Host != "" {
		return ""
	}
	if u.Path == "" {
		// Fragment or query only: a link to the page itself.
		return ""
	}

	return path.Clean(u.Path)
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
