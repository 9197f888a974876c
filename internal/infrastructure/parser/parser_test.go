package parser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"WahalaIndex/internal/config"
	"WahalaIndex/internal/logging"
	"WahalaIndex/internal/scanner"
)

const frontPage = `<html><head><title>Punch</title><script>var x = "<h2>no</h2>";</script></head>
<body>
  <h1>Breaking News</h1>
  <nav><a href="/">Home</a></nav>
  <article>
    <h2><a href="/story">  Fuel scarcity
      <span> worsens </span>in Lagos</a></h2>
  </article>
  <h3>   </h3>
  <a href="/x"><!-- comment -->Naira<b>falls</b></a>
</body></html>`

func TestStrippedTextMatchesTagOrder(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(frontPage))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	got := extractCandidates(doc, headlineSelector)
	want := []string{
		"Breaking News",
		"Home",
		"Fuel scarcityworsensin Lagos",
		"Fuel scarcityworsensin Lagos",
		"Nairafalls",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected candidates:\n got %q\nwant %q", got, want)
	}
}

func TestHTMLScannerFetches(t *testing.T) {
	t.Parallel()

	agents := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agents <- r.UserAgent()
		_, _ = w.Write([]byte(frontPage))
	}))
	defer srv.Close()

	s := NewHTMLScanner(srv.Client())
	got, err := s.Scan(context.Background(), scanner.Request{SiteName: "Punch", URL: srv.URL, UserAgent: "wahala-test"})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != 5 || got[0] != "Breaking News" {
		t.Fatalf("unexpected candidates: %q", got)
	}
	if gotUA := <-agents; gotUA != "wahala-test" {
		t.Fatalf("expected user agent to be forwarded, got %q", gotUA)
	}
}

func TestHTMLScannerSelectorOption(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(frontPage))
	}))
	defer srv.Close()

	got, err := NewHTMLScanner(srv.Client()).Scan(context.Background(), scanner.Request{
		SiteName: "Punch",
		URL:      srv.URL,
		Options:  map[string]string{SelectorOption: "article h2"},
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if want := []string{"Fuel scarcityworsensin Lagos"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected candidates: %q", got)
	}
}

func TestHTMLScannerRejectsBadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTMLScanner(srv.Client()).Scan(context.Background(), scanner.Request{SiteName: "Vanguard", URL: srv.URL})
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestRSSScannerReadsTitles(t *testing.T) {
	t.Parallel()

	const feed = `<?xml version="1.0"?>
<rss version="2.0"><channel><title>TheCable</title>
  <item><title>Senate passes budget</title></item>
  <item><title>  </title></item>
  <item><title>CBN holds rates</title></item>
</channel></rss>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	got, err := NewRSSScanner(srv.Client()).Scan(context.Background(), scanner.Request{SiteName: "TheCable", URL: srv.URL})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if want := []string{"Senate passes budget", "CBN holds rates"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected titles: %q", got)
	}
}

type fakeScanner struct {
	name string
	out  map[string][]string
}

func (f fakeScanner) Name() string { return f.name }

func (f fakeScanner) Scan(_ context.Context, req scanner.Request) ([]string, error) {
	if out, ok := f.out[req.SiteName]; ok {
		return out, nil
	}
	return nil, context.DeadlineExceeded
}

func TestStrategySourceNeverFails(t *testing.T) {
	t.Parallel()

	reg := scanner.NewRegistry(fakeScanner{name: "html", out: map[string][]string{"Punch": {"a", "b"}}})
	sites := []config.SiteConfig{
		{Name: "Punch", Scanner: "html", URL: "https://punchng.com"},
		{Name: "Vanguard", Scanner: "html", URL: "https://www.vanguardngr.com/"},
		{Name: "Mystery", Scanner: "carrier-pigeon"},
	}

	src := NewStrategySource(reg, sites, "", rate.NewLimiter(rate.Inf, 1), logging.New("error"))
	batches := src.FetchAll(context.Background())

	if len(batches) != 3 {
		t.Fatalf("expected one batch per site, got %d", len(batches))
	}
	if batches[0].Source != "Punch" || len(batches[0].Candidates) != 2 {
		t.Fatalf("unexpected first batch: %+v", batches[0])
	}
	if len(batches[1].Candidates) != 0 || len(batches[2].Candidates) != 0 {
		t.Fatalf("failed sites must yield empty batches: %+v", batches[1:])
	}
}

func TestStrategySourceCancelledContext(t *testing.T) {
	t.Parallel()

	reg := scanner.NewRegistry(fakeScanner{name: "html", out: map[string][]string{"Punch": {"a"}}})
	sites := []config.SiteConfig{{Name: "Punch", Scanner: "html"}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewStrategySource(reg, sites, "", rate.NewLimiter(1, 1), logging.New("error"))
	batches := src.FetchAll(ctx)
	if len(batches) != 1 || len(batches[0].Candidates) != 0 {
		t.Fatalf("expected empty batch on cancelled context, got %+v", batches)
	}
}
