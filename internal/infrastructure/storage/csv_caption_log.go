package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"WahalaIndex/internal/domain"
	"WahalaIndex/internal/ports"
)

var captionHeader = []string{"date", "score", "caption"}

// CSVCaptionLog keeps the append-only caption log in a CSV file.
type CSVCaptionLog struct {
	path   string
	logger *slog.Logger
}

var _ ports.CaptionLog = (*CSVCaptionLog)(nil)

// NewCSVCaptionLog points the log at path; the file is created on first write.
func NewCSVCaptionLog(path string, logger *slog.Logger) *CSVCaptionLog {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVCaptionLog{path: path, logger: logger}
}

// Load returns every logged caption. A corrupt file is treated as empty.
func (c *CSVCaptionLog) Load(_ context.Context) ([]domain.CaptionRecord, error) {
	rows, err := readTable(c.path, captionHeader)
	if err != nil {
		c.logger.Warn("caption log unreadable, starting empty", "path", c.path, "error", err)
		return []domain.CaptionRecord{}, nil
	}

	out := make([]domain.CaptionRecord, 0, len(rows))
	for _, row := range rows {
		score, err := strconv.Atoi(row[1])
		if err != nil {
			c.logger.Warn("caption log unreadable, starting empty", "path", c.path, "error", err)
			return []domain.CaptionRecord{}, nil
		}
		out = append(out, domain.CaptionRecord{Date: row[0], Score: score, Caption: row[2]})
	}
	return out, nil
}

// Save rewrites the whole log.
func (c *CSVCaptionLog) Save(_ context.Context, records []domain.CaptionRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Date, strconv.Itoa(r.Score), r.Caption})
	}
	if err := writeTable(c.path, captionHeader, rows); err != nil {
		return fmt.Errorf("save caption log: %w", err)
	}
	return nil
}
