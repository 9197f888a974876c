package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"WahalaIndex/internal/caption"
	"WahalaIndex/internal/category"
	"WahalaIndex/internal/domain"
	"WahalaIndex/internal/headline"
	"WahalaIndex/internal/ports"
	"WahalaIndex/internal/severity"
	"WahalaIndex/internal/summary"
	"WahalaIndex/internal/topic"
)

// Fallback texts for a reply that carries no usable digit.
const (
	UndeterminedTitle   = "🧠 Oracle Confused"
	UndeterminedSummary = "Couldn’t decode the vibes from today’s headlines."
	UndeterminedTip     = "Try again soon."
)

// Settings holds the pipeline thresholds.
type Settings struct {
	PerSourceLimit int
	MinHeadlines   int
	TrendDays      int
}

// DefaultSettings mirrors the built-in configuration.
func DefaultSettings() Settings {
	return Settings{PerSourceLimit: 40, MinHeadlines: 10, TrendDays: 7}
}

// PipelineDeps wires all driven adapters and core components into the pipeline.
type PipelineDeps struct {
	Source      ports.HeadlineSource
	Normalizer  *headline.Normalizer
	Classifier  *category.Classifier
	Extractor   *topic.Extractor
	Composer    *summary.Composer
	Interpreter *severity.Interpreter
	Captions    *caption.Picker
	History     ports.HistoryStore
	Notifier    ports.Notifier
	Settings    Settings
	Logger      *slog.Logger
	// NewRunID defaults to uuid.NewString.
	NewRunID func() string
}

// AnalyzeOptions are the per-run user choices.
type AnalyzeOptions struct {
	Tone     domain.Tone
	WithMeme bool
}

// Pipeline implements the daily reading workflow.
type Pipeline struct {
	source      ports.HeadlineSource
	normalizer  *headline.Normalizer
	classifier  *category.Classifier
	extractor   *topic.Extractor
	composer    *summary.Composer
	interpreter *severity.Interpreter
	captions    *caption.Picker
	history     ports.HistoryStore
	notifier    ports.Notifier
	settings    Settings
	logger      *slog.Logger
	newRunID    func() string
}

// NewPipeline constructs the orchestration component. Nil core components
// are replaced with their defaults.
func NewPipeline(deps PipelineDeps) *Pipeline {
	p := &Pipeline{
		source:      deps.Source,
		normalizer:  deps.Normalizer,
		classifier:  deps.Classifier,
		extractor:   deps.Extractor,
		composer:    deps.Composer,
		interpreter: deps.Interpreter,
		captions:    deps.Captions,
		history:     deps.History,
		notifier:    deps.Notifier,
		settings:    deps.Settings,
		logger:      deps.Logger,
		newRunID:    deps.NewRunID,
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.normalizer == nil {
		p.normalizer = headline.NewNormalizer(headline.DefaultRules())
	}
	if p.classifier == nil {
		p.classifier = category.NewClassifier(category.DefaultTaxonomy())
	}
	if p.extractor == nil {
		p.extractor = topic.NewExtractor(topic.DefaultLexicon(), topic.DefaultCandidates)
	}
	if p.composer == nil {
		p.composer = summary.NewComposer(summary.DefaultPhrasebook(), nil)
	}
	if p.interpreter == nil {
		p.interpreter = severity.NewInterpreter(nil, severity.DefaultPromptLimit, p.logger)
	}
	if p.captions == nil {
		p.captions = caption.NewPicker(nil, p.logger)
	}
	if p.newRunID == nil {
		p.newRunID = uuid.NewString
	}

	defaults := DefaultSettings()
	if p.settings.PerSourceLimit <= 0 {
		p.settings.PerSourceLimit = defaults.PerSourceLimit
	}
	if p.settings.MinHeadlines <= 0 {
		p.settings.MinHeadlines = defaults.MinHeadlines
	}
	if p.settings.TrendDays <= 0 {
		p.settings.TrendDays = defaults.TrendDays
	}

	return p
}

// Analyze runs one reading for day. Collaborator failures degrade the
// reading instead of failing it; an error means the pipeline is miswired.
func (p *Pipeline) Analyze(ctx context.Context, day time.Time, opts AnalyzeOptions) (domain.Reading, error) {
	if p.source == nil {
		return domain.Reading{}, fmt.Errorf("headline source is not configured")
	}

	tone := domain.ParseTone(string(opts.Tone))
	dayKey := domain.DayKey(day)
	reading := domain.Reading{
		RunID: p.newRunID(),
		Day:   day,
		Tone:  tone,
	}
	logger := p.logger.With("run_id", reading.RunID, "day", dayKey)

	reading.Sources = p.collect(ctx, logger)
	all := flatten(reading.Sources)
	reading.Headlines = len(all)

	if len(all) < p.settings.MinHeadlines {
		logger.Warn("not enough headlines", "count", len(all), "min", p.settings.MinHeadlines)
		reading.Status = domain.StatusInsufficient
		return reading, nil
	}

	reading.Categories = p.classifier.Score(all)
	reading.Topics = p.extractor.Extract(all)

	assessment := p.interpreter.Assess(ctx, all)
	reading.OracleReply = assessment.Reply

	if !assessment.Known {
		logger.Warn("oracle reply has no score", "reply", assessment.Reply)
		reading.Status = domain.StatusUndetermined
		reading.Title = UndeterminedTitle
		reading.Summary = UndeterminedSummary
		reading.Tip = UndeterminedTip
		return reading, nil
	}

	reading.Status = domain.StatusScored
	reading.Score = assessment.Score
	reading.Title = p.composer.Title(tone, reading.Score)
	reading.Summary = p.captions.Pick(ctx, dayKey, reading.Score, p.composer.Captions(reading.Topics, tone))
	reading.Tip = p.composer.Tip(tone, reading.Score)
	if opts.WithMeme {
		reading.Meme = p.composer.Meme(reading.Score)
	}

	rows := p.saveDay(ctx, logger, dayKey, reading.Score)
	reading.Delta = domain.DeltaFor(rows, dayKey, reading.Score)
	reading.Trend = domain.RecentDays(rows, p.settings.TrendDays)

	logger.Info("reading complete", "score", reading.Score, "headlines", reading.Headlines, "topics", reading.Topics)
	return reading, nil
}

// History returns the last days records and the delta of the newest one.
func (p *Pipeline) History(ctx context.Context, days int) ([]domain.DailyScore, domain.Delta, error) {
	if p.history == nil {
		return nil, domain.Delta{}, fmt.Errorf("history store is not configured")
	}

	rows, err := p.history.Load(ctx)
	if err != nil {
		return nil, domain.Delta{}, fmt.Errorf("load history: %w", err)
	}

	trend := domain.RecentDays(rows, days)
	if len(trend) == 0 {
		return trend, domain.Delta{}, nil
	}
	last := trend[len(trend)-1]
	return trend, domain.DeltaFor(rows, last.Date, last.Score), nil
}

// Publish sends a scored reading to the notifier. Other outcomes are skipped.
func (p *Pipeline) Publish(ctx context.Context, reading domain.Reading) error {
	if p.notifier == nil {
		return fmt.Errorf("notifier is not configured")
	}
	if reading.Status != domain.StatusScored {
		return nil
	}
	if err := p.notifier.PublishReading(ctx, buildDigestMessage(reading)); err != nil {
		return fmt.Errorf("publish reading: %w", err)
	}
	return nil
}

func (p *Pipeline) collect(ctx context.Context, logger *slog.Logger) []domain.SourceHeadlines {
	batches := p.source.FetchAll(ctx)
	out := make([]domain.SourceHeadlines, 0, len(batches))
	for _, b := range batches {
		cleaned := p.normalizer.Clean(b.Candidates, p.settings.PerSourceLimit)
		logger.Debug("source cleaned", "source", b.Source, "raw", len(b.Candidates), "kept", len(cleaned))
		out = append(out, domain.SourceHeadlines{Source: b.Source, Headlines: cleaned})
	}
	return out
}

// saveDay persists the score. A failed write keeps the run going with the
// loaded history plus today's row.
func (p *Pipeline) saveDay(ctx context.Context, logger *slog.Logger, day string, score int) []domain.DailyScore {
	today := domain.DailyScore{Date: day, Score: score}
	if p.history == nil {
		return []domain.DailyScore{today}
	}

	rows, err := p.history.SaveDay(ctx, day, score)
	if err == nil {
		return rows
	}
	logger.Warn("history save failed", "error", err)

	loaded, lerr := p.history.Load(ctx)
	if lerr != nil {
		return []domain.DailyScore{today}
	}
	kept := make([]domain.DailyScore, 0, len(loaded)+1)
	for _, r := range loaded {
		if r.Date != day {
			kept = append(kept, r)
		}
	}
	return append(kept, today)
}

// flatten concatenates per-source headlines and drops duplicates across
// sources.
func flatten(sources []domain.SourceHeadlines) []string {
	var all []string
	for _, s := range sources {
		all = append(all, s.Headlines...)
	}
	return headline.Dedup(all)
}

func buildDigestMessage(r domain.Reading) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Naija Wahala Index for %s: %d/5\n", domain.DayKey(r.Day), r.Score)
	fmt.Fprintf(&b, "%s\n\n%s\n", r.Title, r.Summary)
	if r.Tip != "" {
		fmt.Fprintf(&b, "%s\n", r.Tip)
	}
	if r.Delta.Known {
		fmt.Fprintf(&b, "Change vs yesterday: %s\n", r.Delta)
	}
	if len(r.Categories) > 0 {
		b.WriteString("\nCategory heat:\n")
		for _, c := range r.Categories {
			fmt.Fprintf(&b, "- %s: %d (%d hits)\n", c.Name, c.Heat, c.Hits)
		}
	}
	if r.Meme != "" {
		fmt.Fprintf(&b, "\n%s\n", r.Meme)
	}
	return b.String()
}
