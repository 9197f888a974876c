package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"WahalaIndex/internal/caption"
	"WahalaIndex/internal/category"
	"WahalaIndex/internal/config"
	"WahalaIndex/internal/domain"
	"WahalaIndex/internal/headline"
	"WahalaIndex/internal/infrastructure/llm"
	"WahalaIndex/internal/infrastructure/parser"
	"WahalaIndex/internal/infrastructure/storage"
	"WahalaIndex/internal/infrastructure/telegram"
	"WahalaIndex/internal/logging"
	"WahalaIndex/internal/ports"
	"WahalaIndex/internal/scanner"
	"WahalaIndex/internal/severity"
	"WahalaIndex/internal/summary"
	"WahalaIndex/internal/topic"
	"WahalaIndex/internal/usecase"
)

// Application wires configs to use cases and owns adapter lifecycles.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
	notifier *telegram.Notifier
	closers  []io.Closer
	logger   *slog.Logger
	now      func() time.Time
}

// New builds a runnable application instance.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}
	a := &Application{cfg: cfg, logger: baseLogger, now: time.Now}

	httpClient := &http.Client{Timeout: cfg.Fetch.Timeout}
	registry := scanner.NewRegistry(
		parser.NewHTMLScanner(httpClient),
		parser.NewRSSScanner(httpClient),
	)
	source := parser.NewStrategySource(registry, cfg.Sites, cfg.Fetch.UserAgent,
		newLimiter(cfg.Fetch.RequestsPerSecond), baseLogger.With("component", "source"))

	oracle, err := a.buildOracle(ctx)
	if err != nil {
		return nil, err
	}

	history, captions, err := a.buildStores(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.notifier = telegram.NewNotifier(cfg.Notifications.Telegram)

	book := summary.DefaultPhrasebook()
	book.Memes = cfg.Memes

	a.pipeline = usecase.NewPipeline(usecase.PipelineDeps{
		Source:      source,
		Normalizer:  headline.NewNormalizer(headline.DefaultRules()),
		Classifier:  category.NewClassifier(taxonomy(cfg.Categories)),
		Extractor:   topic.NewExtractor(topic.DefaultLexicon(), cfg.Analysis.TopicCandidates),
		Composer:    summary.NewComposer(book, nil),
		Interpreter: severity.NewInterpreter(oracle, cfg.Analysis.PromptHeadlines, baseLogger.With("component", "severity")),
		Captions:    caption.NewPicker(captions, baseLogger.With("component", "caption")),
		History:     history,
		Notifier:    a.notifier,
		Settings: usecase.Settings{
			PerSourceLimit: cfg.Fetch.PerSourceLimit,
			MinHeadlines:   cfg.Analysis.MinHeadlines,
			TrendDays:      cfg.Analysis.TrendDays,
		},
		Logger: baseLogger.With("component", "pipeline"),
	})

	return a, nil
}

// Analyze runs one reading for today in the configured timezone.
func (a *Application) Analyze(ctx context.Context, opts usecase.AnalyzeOptions) (domain.Reading, error) {
	if opts.Tone == "" {
		opts.Tone = domain.ParseTone(a.cfg.Analysis.DefaultTone)
	}
	day := a.now().In(a.cfg.Analysis.Location())
	return a.pipeline.Analyze(ctx, day, opts)
}

// History returns the stored trend for the last days records.
func (a *Application) History(ctx context.Context, days int) ([]domain.DailyScore, domain.Delta, error) {
	if days <= 0 {
		days = a.cfg.Analysis.TrendDays
	}
	return a.pipeline.History(ctx, days)
}

// Publish posts a scored reading to Telegram. A missing bot configuration
// is logged and skipped.
func (a *Application) Publish(ctx context.Context, reading domain.Reading) {
	if !a.notifier.Configured() {
		a.logger.Warn("telegram is not configured, skipping publish")
		return
	}
	if err := a.pipeline.Publish(ctx, reading); err != nil {
		a.logger.Warn("publish failed", "error", err)
	}
}

// Close releases database and API clients.
func (a *Application) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *Application) buildOracle(ctx context.Context) (ports.Oracle, error) {
	switch a.cfg.Oracle.Provider {
	case config.ProviderGemini:
		oracle, err := llm.NewGeminiOracle(ctx, a.cfg.Gemini, a.cfg.Oracle)
		if err != nil {
			return nil, fmt.Errorf("build gemini oracle: %w", err)
		}
		a.closers = append(a.closers, oracle)
		return oracle, nil
	case config.ProviderOpenAI, "":
		if a.cfg.Oracle.APIKey == "" {
			a.logger.Warn("oracle api key is not set, scores will be undetermined")
			return nil, nil
		}
		return llm.NewChatOracle(a.cfg.Oracle), nil
	default:
		return nil, fmt.Errorf("unknown oracle provider %q", a.cfg.Oracle.Provider)
	}
}

func (a *Application) buildStores(ctx context.Context) (ports.HistoryStore, ports.CaptionLog, error) {
	logger := a.logger.With("component", "storage")
	captions := storage.NewCSVCaptionLog(a.cfg.Storage.CaptionLogPath, logger)

	switch a.cfg.Storage.Driver {
	case config.DriverSQLite:
		history, err := storage.OpenSQLiteHistory(ctx, a.cfg.Storage.SQLitePath, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open history: %w", err)
		}
		a.closers = append(a.closers, history)
		return history, captions, nil
	case config.DriverCSV, "":
		return storage.NewCSVHistory(a.cfg.Storage.HistoryPath, logger), captions, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", a.cfg.Storage.Driver)
	}
}

func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

func taxonomy(cfg []config.CategoryConfig) []domain.Category {
	if len(cfg) == 0 {
		return category.DefaultTaxonomy()
	}
	out := make([]domain.Category, 0, len(cfg))
	for _, c := range cfg {
		out = append(out, domain.Category{Name: c.Name, Keywords: c.Keywords})
	}
	return out
}
