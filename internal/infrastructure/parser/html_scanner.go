package parser

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"WahalaIndex/internal/scanner"
)

// headlineSelector lists the tags whose text is treated as a candidate headline.
const headlineSelector = "h1, h2, h3, a"

// SelectorOption is the site option that replaces headlineSelector.
const SelectorOption = "selector"

// HTMLScanner fetches an outlet front page and collects heading and link texts.
type HTMLScanner struct {
	client *http.Client
}

var _ scanner.Scanner = (*HTMLScanner)(nil)

// NewHTMLScanner wires an HTTP client; a nil client gets a 10s timeout.
func NewHTMLScanner(client *http.Client) *HTMLScanner {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTMLScanner{client: client}
}

// Name identifies the strategy inside the registry.
func (h *HTMLScanner) Name() string {
	return "html"
}

// Scan returns the text of every h1/h2/h3/a element in document order. A
// site can narrow that with the "selector" option.
func (h *HTMLScanner) Scan(ctx context.Context, req scanner.Request) ([]string, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("no url provided for site %s", req.SiteName)
	}

	doc, err := h.fetchDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	selector := headlineSelector
	if v := strings.TrimSpace(req.Options[SelectorOption]); v != "" {
		selector = v
	}
	return extractCandidates(doc, selector), nil
}

func (h *HTMLScanner) fetchDocument(ctx context.Context, req scanner.Request) (*goquery.Document, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if req.UserAgent != "" {
		httpReq.Header.Set("User-Agent", req.UserAgent)
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %s", req.SiteName, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

func extractCandidates(doc *goquery.Document, selector string) []string {
	var out []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			if text := strippedText(n); text != "" {
				out = append(out, text)
			}
		}
	})
	return out
}

// strippedText joins every descendant text node, each trimmed, with no
// separator. Script and style bodies are skipped.
func strippedText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(strings.TrimSpace(n.Data))
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
