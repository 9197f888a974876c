package ports

import (
	"context"

	"WahalaIndex/internal/domain"
)

// HeadlineSource pulls raw candidate strings from every configured outlet.
// Implementations never fail: an unreachable outlet yields an empty batch.
type HeadlineSource interface {
	FetchAll(ctx context.Context) []domain.SourceBatch
}

// Oracle turns a prompt into free-form reply text (e.g., an LLM severity guess).
type Oracle interface {
	Score(ctx context.Context, prompt string) (string, error)
}

// HistoryStore persists one score per calendar day.
type HistoryStore interface {
	Load(ctx context.Context) ([]domain.DailyScore, error)
	SaveDay(ctx context.Context, day string, score int) ([]domain.DailyScore, error)
}

// CaptionLog persists which captions were already shown.
type CaptionLog interface {
	Load(ctx context.Context) ([]domain.CaptionRecord, error)
	Save(ctx context.Context, records []domain.CaptionRecord) error
}

// Notifier publishes a rendered reading to Telegram or other channels.
type Notifier interface {
	PublishReading(ctx context.Context, message string) error
}
