// Package caption enforces that a caption is shown at most once per day and score.
package caption

import (
	"context"
	"log/slog"

	"WahalaIndex/internal/domain"
	"WahalaIndex/internal/ports"
)

// DefaultCaption is returned when there are no candidates at all.
const DefaultCaption = "Top stories: key issues."

// Picker selects captions against a persisted log. The log is reloaded on
// every call and rewritten in full on every append; concurrent writers from
// other processes are not guarded against.
type Picker struct {
	log    ports.CaptionLog
	logger *slog.Logger
}

// NewPicker wires a caption log.
func NewPicker(log ports.CaptionLog, logger *slog.Logger) *Picker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Picker{log: log, logger: logger}
}

// Pick returns the first candidate not yet logged for (day, score) and logs
// it. When every candidate was already used it returns the first one without
// logging again.
func (p *Picker) Pick(ctx context.Context, day string, score int, candidates []string) string {
	if len(candidates) == 0 {
		return DefaultCaption
	}

	var records []domain.CaptionRecord
	if p.log != nil {
		loaded, err := p.log.Load(ctx)
		if err != nil {
			p.logger.Warn("caption log unreadable, starting empty", "error", err)
		} else {
			records = loaded
		}
	}

	used := map[string]struct{}{}
	for _, r := range records {
		if r.Date == day && r.Score == score {
			used[r.Caption] = struct{}{}
		}
	}

	for _, c := range candidates {
		if _, ok := used[c]; ok {
			continue
		}
		if p.log != nil {
			records = append(records, domain.CaptionRecord{Date: day, Score: score, Caption: c})
			if err := p.log.Save(ctx, records); err != nil {
				p.logger.Warn("persist caption log", "error", err)
			}
		}
		return c
	}

	p.logger.Debug("all captions used today, repeating", "day", day, "score", score)
	return candidates[0]
}
