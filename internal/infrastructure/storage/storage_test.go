package storage

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"WahalaIndex/internal/domain"
	"WahalaIndex/internal/logging"
	"WahalaIndex/internal/ports"
)

func TestCSVHistoryLazyCreateAndReplace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "wahala_history.csv")
	h := NewCSVHistory(path, logging.New("error"))

	rows, err := h.Load(ctx)
	if err != nil || len(rows) != 0 {
		t.Fatalf("expected empty history, got %v (%v)", rows, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("load must not create the file")
	}

	exerciseHistory(t, h)

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	if want := "date,score\n2026-10-17,2\n2026-10-18,4\n"; string(raw) != want {
		t.Fatalf("unexpected file contents:\n%s", raw)
	}
}

func TestCSVHistoryCorruptFileIsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.csv")
	if err := os.WriteFile(path, []byte("date,score\n2026-10-17,high\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	h := NewCSVHistory(path, logging.New("error"))
	rows, err := h.Load(ctx)
	if err != nil || len(rows) != 0 {
		t.Fatalf("expected empty history for corrupt file, got %v (%v)", rows, err)
	}

	saved, err := h.SaveDay(ctx, "2026-10-18", 3)
	if err != nil {
		t.Fatalf("save day: %v", err)
	}
	if len(saved) != 1 || saved[0].Score != 3 {
		t.Fatalf("expected corrupt file to be replaced, got %v", saved)
	}
}

func TestCSVCaptionLogRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "caption_log.csv")
	l := NewCSVCaptionLog(path, logging.New("error"))

	records := []domain.CaptionRecord{
		{Date: "2026-10-18", Score: 3, Caption: "Top stories: Fuel, Naira."},
		{Date: "2026-10-18", Score: 3, Caption: `Quote "this", and commas`},
	}
	if err := l.Save(ctx, records); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := l.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Fatalf("unexpected records: %v", got)
	}
}

func TestCSVCaptionLogWrongHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "caption_log.csv")
	if err := os.WriteFile(path, []byte("when,what\nx,y\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	got, err := NewCSVCaptionLog(path, logging.New("error")).Load(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty log, got %v (%v)", got, err)
	}
}

func TestSQLiteHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h, err := OpenSQLiteHistory(ctx, filepath.Join(t.TempDir(), "wahala.db"), logging.New("error"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })

	exerciseHistory(t, h)
}

func exerciseHistory(t *testing.T, h ports.HistoryStore) {
	t.Helper()
	ctx := context.Background()

	if _, err := h.SaveDay(ctx, "2026-10-17", 2); err != nil {
		t.Fatalf("save first day: %v", err)
	}
	if _, err := h.SaveDay(ctx, "2026-10-18", 5); err != nil {
		t.Fatalf("save second day: %v", err)
	}
	rows, err := h.SaveDay(ctx, "2026-10-18", 4)
	if err != nil {
		t.Fatalf("overwrite day: %v", err)
	}

	want := []domain.DailyScore{{Date: "2026-10-17", Score: 2}, {Date: "2026-10-18", Score: 4}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("unexpected rows after save: %v", rows)
	}

	loaded, err := h.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(loaded, want) {
		t.Fatalf("unexpected rows after reload: %v", loaded)
	}
}
