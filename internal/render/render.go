// Package render turns readings into terminal text. It holds no analysis
// logic; every value comes from the Reading.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"WahalaIndex/internal/domain"
)

// HeadlinesPerSource caps the per-outlet list.
const HeadlinesPerSource = 30

const insufficientNotice = "Couldn’t fetch enough headlines across sources. Try again later."

// Reading writes the full report for r.
func Reading(w io.Writer, r domain.Reading) error {
	var blocks []string
	blocks = append(blocks, headerStyle.Render(fmt.Sprintf("Naija Wahala Index · %s", domain.DayKey(r.Day))))

	if r.Status == domain.StatusInsufficient {
		blocks = append(blocks,
			warnStyle.Render(insufficientNotice),
			mutedStyle.Render(fmt.Sprintf("%d headlines collected.", r.Headlines)),
		)
		return write(w, blocks)
	}

	if r.Status == domain.StatusScored {
		blocks = append(blocks, metrics(r), trend(r.Trend), categories(r.Categories))
	}

	blocks = append(blocks, "", titleStyle.Render(r.Title), summaryStyle.Render(r.Summary))
	if r.Tip != "" {
		blocks = append(blocks, mutedStyle.Render(r.Tip))
	}
	if r.Meme != "" {
		blocks = append(blocks, "Meme of the day: "+r.Meme)
	}

	blocks = append(blocks, sources(r.Sources))
	return write(w, blocks)
}

// History writes the stored trend and the newest delta.
func History(w io.Writer, rows []domain.DailyScore, delta domain.Delta) error {
	blocks := []string{headerStyle.Render("Naija Wahala Index · history")}
	if len(rows) == 0 {
		blocks = append(blocks, mutedStyle.Render("No history yet."))
		return write(w, blocks)
	}
	blocks = append(blocks,
		trend(rows),
		labelStyle.Render("Latest change")+" "+delta.String(),
	)
	return write(w, blocks)
}

func metrics(r domain.Reading) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Today’s Reading"),
		labelStyle.Render("Wahala Index")+" "+scoreStyle(r.Score).Render(fmt.Sprintf("%d", r.Score)),
		labelStyle.Render("Vs yesterday")+" "+r.Delta.String(),
	)
}

func trend(rows []domain.DailyScore) string {
	lines := []string{sectionStyle.Render(fmt.Sprintf("%d-Day Trend", len(rows)))}
	if len(rows) == 0 {
		lines = append(lines, mutedStyle.Render("No history yet."))
	}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %s %d",
			labelStyle.Render(row.Date),
			scoreStyle(row.Score).Render(bar(row.Score)),
			row.Score))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func categories(scores []domain.CategoryScore) string {
	lines := []string{sectionStyle.Render("Category Heat (1–5)")}
	for _, c := range scores {
		lines = append(lines, fmt.Sprintf("%s %s %d %s",
			labelStyle.Render(c.Name),
			scoreStyle(c.Heat).Render(bar(c.Heat)),
			c.Heat,
			mutedStyle.Render(fmt.Sprintf("(%d hits)", c.Hits))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sources(list []domain.SourceHeadlines) string {
	lines := []string{sectionStyle.Render("Headlines Analyzed (by source)")}
	for _, s := range list {
		lines = append(lines, "", summaryStyle.Render(s.Source))
		if len(s.Headlines) == 0 {
			lines = append(lines, mutedStyle.Render("  No headlines found."))
			continue
		}
		shown := s.Headlines
		if len(shown) > HeadlinesPerSource {
			shown = shown[:HeadlinesPerSource]
		}
		for _, h := range shown {
			lines = append(lines, "  - "+h)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func bar(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat("█", n) + strings.Repeat("░", max(0, 5-n))
}

func write(w io.Writer, blocks []string) error {
	if _, err := io.WriteString(w, strings.Join(blocks, "\n")+"\n"); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
