package usecase

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"WahalaIndex/internal/caption"
	"WahalaIndex/internal/domain"
	"WahalaIndex/internal/logging"
	"WahalaIndex/internal/severity"
	"WahalaIndex/internal/summary"
)

type fakeSource struct {
	batches []domain.SourceBatch
}

func (f fakeSource) FetchAll(context.Context) []domain.SourceBatch {
	return f.batches
}

type fakeOracle struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeOracle) Score(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type memoryHistory struct {
	rows  []domain.DailyScore
	saves int
}

func (m *memoryHistory) Load(context.Context) ([]domain.DailyScore, error) {
	return append([]domain.DailyScore(nil), m.rows...), nil
}

func (m *memoryHistory) SaveDay(_ context.Context, day string, score int) ([]domain.DailyScore, error) {
	m.saves++
	kept := m.rows[:0:0]
	for _, r := range m.rows {
		if r.Date != day {
			kept = append(kept, r)
		}
	}
	m.rows = append(kept, domain.DailyScore{Date: day, Score: score})
	return m.Load(context.Background())
}

type memoryCaptions struct {
	records []domain.CaptionRecord
}

func (m *memoryCaptions) Load(context.Context) ([]domain.CaptionRecord, error) {
	return append([]domain.CaptionRecord(nil), m.records...), nil
}

func (m *memoryCaptions) Save(_ context.Context, records []domain.CaptionRecord) error {
	m.records = append([]domain.CaptionRecord(nil), records...)
	return nil
}

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) PublishReading(_ context.Context, message string) error {
	r.messages = append(r.messages, message)
	return nil
}

var testDay = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func sampleBatches() []domain.SourceBatch {
	return []domain.SourceBatch{
		{Source: "Punch", Candidates: []string{
			"Senate Passes Fuel Subsidy Removal Bill After Heated Debate",
			"Naira Slides Further Against Dollar Amid Forex Crunch",
			"Bandits Attack Village In Kaduna State",
			"Fuel scarcity worsens across Lagos filling stations",
			"Home",
			"Sponsored: win big with this weekend promo",
			"Fuel scarcity hits Abuja motorists again",
			"CBN moves to stabilise naira as forex crunch deepens",
		}},
		{Source: "Vanguard", Candidates: []string{
			"Naira slides further against dollar amid forex crunch!",
			"Police arrest suspected kidnappers in Ogun community",
			"Flood displaces hundreds of residents in Kogi",
			"Court adjourns governorship election petition hearing",
			"Fuel queues return as marketers hike pump price",
			"Celebrity wedding trends across social media platforms",
		}},
	}
}

type harness struct {
	pipeline *Pipeline
	oracle   *fakeOracle
	history  *memoryHistory
	captions *memoryCaptions
	notifier *recordingNotifier
}

func newHarness(reply string, batches []domain.SourceBatch) *harness {
	logger := logging.New("error")
	h := &harness{
		oracle:   &fakeOracle{reply: reply},
		history:  &memoryHistory{rows: []domain.DailyScore{{Date: "2026-10-17", Score: 2}}},
		captions: &memoryCaptions{},
		notifier: &recordingNotifier{},
	}
	h.pipeline = NewPipeline(PipelineDeps{
		Source:      fakeSource{batches: batches},
		Composer:    summary.NewComposer(summary.DefaultPhrasebook(), rand.New(rand.NewPCG(1, 2))),
		Interpreter: severity.NewInterpreter(h.oracle, severity.DefaultPromptLimit, logger),
		Captions:    caption.NewPicker(h.captions, logger),
		History:     h.history,
		Notifier:    h.notifier,
		Logger:      logger,
		NewRunID:    func() string { return "run-1" },
	})
	return h
}

func TestAnalyzeScored(t *testing.T) {
	t.Parallel()

	h := newHarness(" 4", sampleBatches())
	reading, err := h.pipeline.Analyze(context.Background(), testDay, AnalyzeOptions{Tone: domain.ToneClassic})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if reading.Status != domain.StatusScored || reading.Score != 4 {
		t.Fatalf("unexpected outcome: %s %d", reading.Status, reading.Score)
	}
	if reading.RunID != "run-1" || reading.OracleReply != "4" {
		t.Fatalf("unexpected run metadata: %q %q", reading.RunID, reading.OracleReply)
	}
	if reading.Headlines != 11 {
		t.Fatalf("expected 11 headlines after cross-source dedup, got %d", reading.Headlines)
	}
	if len(reading.Sources) != 2 || len(reading.Sources[0].Headlines) != 6 || len(reading.Sources[1].Headlines) != 6 {
		t.Fatalf("per-source lists must keep their own duplicates: %+v", reading.Sources)
	}
	if len(reading.Categories) != 5 || reading.Categories[0].Name != "Politics" {
		t.Fatalf("unexpected categories: %+v", reading.Categories)
	}
	if len(reading.Topics) == 0 || len(reading.Topics) > 3 {
		t.Fatalf("unexpected topics: %v", reading.Topics)
	}
	if reading.Summary == "" || reading.Tip == "" || !strings.Contains(reading.Title, "4") {
		t.Fatalf("unexpected texts: %q %q %q", reading.Title, reading.Summary, reading.Tip)
	}
	if reading.Meme != "" {
		t.Fatalf("meme must stay empty when not requested")
	}

	if !reading.Delta.Known || reading.Delta.Value != 2 {
		t.Fatalf("unexpected delta: %+v", reading.Delta)
	}
	if len(reading.Trend) != 2 || reading.Trend[1].Date != "2026-10-18" {
		t.Fatalf("unexpected trend: %+v", reading.Trend)
	}
	if len(h.captions.records) != 1 || h.captions.records[0].Caption != reading.Summary {
		t.Fatalf("expected caption to be logged: %+v", h.captions.records)
	}
	if len(h.oracle.prompts) != 1 || !strings.Contains(h.oracle.prompts[0], "Bandits Attack Village In Kaduna State") {
		t.Fatalf("unexpected prompts: %v", h.oracle.prompts)
	}
}

func TestAnalyzeDoesNotRepeatCaptions(t *testing.T) {
	t.Parallel()

	h := newHarness("3", sampleBatches())
	seen := map[string]struct{}{}
	for i := 0; i < 3; i++ {
		reading, err := h.pipeline.Analyze(context.Background(), testDay, AnalyzeOptions{Tone: domain.TonePidgin})
		if err != nil {
			t.Fatalf("analyze %d: %v", i, err)
		}
		if _, dup := seen[reading.Summary]; dup {
			t.Fatalf("caption repeated on run %d: %q", i, reading.Summary)
		}
		seen[reading.Summary] = struct{}{}
	}
	if h.history.saves != 3 || len(h.history.rows) != 2 {
		t.Fatalf("expected one row per day, got %+v after %d saves", h.history.rows, h.history.saves)
	}
}

func TestAnalyzeUndetermined(t *testing.T) {
	t.Parallel()

	h := newHarness("no clue", sampleBatches())
	reading, err := h.pipeline.Analyze(context.Background(), testDay, AnalyzeOptions{Tone: domain.ToneGenZ, WithMeme: true})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if reading.Status != domain.StatusUndetermined {
		t.Fatalf("unexpected status: %s", reading.Status)
	}
	if reading.Title != UndeterminedTitle || reading.Summary != UndeterminedSummary || reading.Tip != UndeterminedTip {
		t.Fatalf("unexpected fallback texts: %+v", reading)
	}
	if reading.Meme != "" || h.history.saves != 0 || len(h.captions.records) != 0 {
		t.Fatalf("undetermined readings must not write state or pick memes")
	}
}

func TestAnalyzeOracleFailureFoldsIntoReply(t *testing.T) {
	t.Parallel()

	h := newHarness("", sampleBatches())
	h.oracle.err = errors.New("connection refused")

	reading, err := h.pipeline.Analyze(context.Background(), testDay, AnalyzeOptions{})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if reading.Status != domain.StatusUndetermined || !strings.HasPrefix(reading.OracleReply, "Error: ") {
		t.Fatalf("unexpected reading: %s %q", reading.Status, reading.OracleReply)
	}
}

func TestAnalyzeInsufficient(t *testing.T) {
	t.Parallel()

	h := newHarness("5", []domain.SourceBatch{
		{Source: "Punch", Candidates: []string{"Senate passes the budget bill", "Home", "Naira falls against the dollar"}},
		{Source: "Vanguard"},
	})

	reading, err := h.pipeline.Analyze(context.Background(), testDay, AnalyzeOptions{})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if reading.Status != domain.StatusInsufficient || reading.Headlines != 2 {
		t.Fatalf("unexpected reading: %s %d", reading.Status, reading.Headlines)
	}
	if len(h.oracle.prompts) != 0 || h.history.saves != 0 {
		t.Fatalf("insufficient input must not reach the oracle or the stores")
	}
}

func TestAnalyzeRequiresSource(t *testing.T) {
	t.Parallel()

	if _, err := NewPipeline(PipelineDeps{}).Analyze(context.Background(), testDay, AnalyzeOptions{}); err == nil {
		t.Fatalf("expected error without a source")
	}
}

func TestHistoryAndPublish(t *testing.T) {
	t.Parallel()

	h := newHarness("5", sampleBatches())
	reading, err := h.pipeline.Analyze(context.Background(), testDay, AnalyzeOptions{WithMeme: true})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	trend, delta, err := h.pipeline.History(context.Background(), 7)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(trend) != 2 || !delta.Known || delta.Value != 3 {
		t.Fatalf("unexpected history: %+v %+v", trend, delta)
	}

	if err := h.pipeline.Publish(context.Background(), reading); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(h.notifier.messages) != 1 {
		t.Fatalf("expected one message, got %d", len(h.notifier.messages))
	}
	msg := h.notifier.messages[0]
	if !strings.Contains(msg, "2026-10-18: 5/5") || !strings.Contains(msg, "Change vs yesterday: +3") {
		t.Fatalf("unexpected digest:\n%s", msg)
	}

	if err := h.pipeline.Publish(context.Background(), domain.Reading{Status: domain.StatusUndetermined}); err != nil {
		t.Fatalf("publishing a non-scored reading must be a no-op: %v", err)
	}
	if len(h.notifier.messages) != 1 {
		t.Fatalf("non-scored reading must not be sent")
	}
}
