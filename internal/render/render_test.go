package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"WahalaIndex/internal/domain"
)

var day = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

func TestReadingScored(t *testing.T) {
	t.Parallel()

	many := make([]string, 35)
	for i := range many {
		many[i] = fmt.Sprintf("Headline number %02d for the day", i)
	}

	r := domain.Reading{
		Day:        day,
		Status:     domain.StatusScored,
		Score:      4,
		Title:      "😫 4 — Wahala Rising",
		Summary:    "Fuel Scarcity and Forex Crunch dominate the headlines.",
		Tip:        "Stay alert.",
		Meme:       "https://example.org/meme.gif",
		Categories: []domain.CategoryScore{{Name: "Economy", Hits: 2, Heat: 5}},
		Delta:      domain.Delta{Value: 2, Known: true},
		Trend:      []domain.DailyScore{{Date: "2026-10-17", Score: 2}, {Date: "2026-10-18", Score: 4}},
		Sources: []domain.SourceHeadlines{
			{Source: "Punch", Headlines: many},
			{Source: "Vanguard"},
		},
	}

	var buf bytes.Buffer
	if err := Reading(&buf, r); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"2026-10-18", "Wahala Rising", "dominate the headlines", "Stay alert.",
		"meme.gif", "+2", "Economy", "(2 hits)", "2-Day Trend", "No headlines found.",
		"Headline number 29",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Headline number 30") {
		t.Fatalf("per-source list must be capped at %d", HeadlinesPerSource)
	}
}

func TestReadingUndeterminedAndInsufficient(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Reading(&buf, domain.Reading{Day: day, Status: domain.StatusUndetermined, Title: "🧠 Oracle Confused"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(buf.String(), "Category Heat") || !strings.Contains(buf.String(), "Oracle Confused") {
		t.Fatalf("unexpected undetermined output:\n%s", buf.String())
	}

	buf.Reset()
	if err := Reading(&buf, domain.Reading{Day: day, Status: domain.StatusInsufficient, Headlines: 4}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "Try again later") {
		t.Fatalf("unexpected insufficient output:\n%s", buf.String())
	}
}

func TestHistory(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := History(&buf, nil, domain.Delta{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No history yet.") {
		t.Fatalf("unexpected empty history output:\n%s", buf.String())
	}

	buf.Reset()
	rows := []domain.DailyScore{{Date: "2026-10-17", Score: 3}, {Date: "2026-10-18", Score: 1}}
	if err := History(&buf, rows, domain.Delta{Value: -2, Known: true}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "-2") || !strings.Contains(buf.String(), "2026-10-17") {
		t.Fatalf("unexpected history output:\n%s", buf.String())
	}
}

func TestBar(t *testing.T) {
	t.Parallel()

	if got := bar(3); got != "███░░" {
		t.Fatalf("unexpected bar: %q", got)
	}
	if got := bar(0); got != "░░░░░" {
		t.Fatalf("unexpected empty bar: %q", got)
	}
}
