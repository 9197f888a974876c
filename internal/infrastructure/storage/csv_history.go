package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"WahalaIndex/internal/domain"
	"WahalaIndex/internal/ports"
)

var historyHeader = []string{"date", "score"}

// CSVHistory keeps the daily score table in a CSV file. Every call re-reads
// the file and every write replaces it; there is no locking.
type CSVHistory struct {
	path   string
	logger *slog.Logger
}

var _ ports.HistoryStore = (*CSVHistory)(nil)

// NewCSVHistory points the store at path; the file is created on first write.
func NewCSVHistory(path string, logger *slog.Logger) *CSVHistory {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVHistory{path: path, logger: logger}
}

// Load returns all rows in file order. A corrupt file is reported as a
// warning and treated as empty.
func (h *CSVHistory) Load(_ context.Context) ([]domain.DailyScore, error) {
	rows, err := readTable(h.path, historyHeader)
	if err != nil {
		h.logger.Warn("history unreadable, starting empty", "path", h.path, "error", err)
		return []domain.DailyScore{}, nil
	}

	out := make([]domain.DailyScore, 0, len(rows))
	for _, row := range rows {
		score, err := strconv.Atoi(row[1])
		if err != nil {
			h.logger.Warn("history unreadable, starting empty", "path", h.path, "error", err)
			return []domain.DailyScore{}, nil
		}
		out = append(out, domain.DailyScore{Date: row[0], Score: score})
	}
	return out, nil
}

// SaveDay replaces any row for day with score and rewrites the table.
func (h *CSVHistory) SaveDay(ctx context.Context, day string, score int) ([]domain.DailyScore, error) {
	current, err := h.Load(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]domain.DailyScore, 0, len(current)+1)
	for _, r := range current {
		if r.Date != day {
			updated = append(updated, r)
		}
	}
	updated = append(updated, domain.DailyScore{Date: day, Score: score})

	rows := make([][]string, 0, len(updated))
	for _, r := range updated {
		rows = append(rows, []string{r.Date, strconv.Itoa(r.Score)})
	}
	if err := writeTable(h.path, historyHeader, rows); err != nil {
		return nil, fmt.Errorf("save history: %w", err)
	}
	return updated, nil
}
