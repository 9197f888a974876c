package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"WahalaIndex/internal/domain"
	"WahalaIndex/internal/ports"
)

const historyTable = "daily_scores"

// SQLiteHistory is the history store backed by a local sqlite file. It keeps
// the same whole-table rewrite contract as the CSV store.
type SQLiteHistory struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ ports.HistoryStore = (*SQLiteHistory)(nil)

// OpenSQLiteHistory opens (or creates) the database at dsn.
func OpenSQLiteHistory(ctx context.Context, dsn string, logger *slog.Logger) (*SQLiteHistory, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	const ddl = `CREATE TABLE IF NOT EXISTS ` + historyTable + ` (
		date  TEXT NOT NULL,
		score INTEGER NOT NULL
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history table: %w", err)
	}

	return &SQLiteHistory{db: db, logger: logger}, nil
}

// Close releases the database handle.
func (s *SQLiteHistory) Close() error {
	return s.db.Close()
}

// Load returns all rows in insertion order. Query failures are logged and
// treated as an empty history.
func (s *SQLiteHistory) Load(ctx context.Context) ([]domain.DailyScore, error) {
	rows, err := sq.Select("date", "score").
		From(historyTable).
		OrderBy("rowid").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		s.logger.Warn("history unreadable, starting empty", "error", err)
		return []domain.DailyScore{}, nil
	}
	defer rows.Close()

	out := []domain.DailyScore{}
	for rows.Next() {
		var r domain.DailyScore
		if err := rows.Scan(&r.Date, &r.Score); err != nil {
			s.logger.Warn("history unreadable, starting empty", "error", err)
			return []domain.DailyScore{}, nil
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		s.logger.Warn("history unreadable, starting empty", "error", err)
		return []domain.DailyScore{}, nil
	}
	return out, nil
}

// SaveDay replaces any row for day with score and rewrites the table.
func (s *SQLiteHistory) SaveDay(ctx context.Context, day string, score int) ([]domain.DailyScore, error) {
	current, err := s.Load(ctx)
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

	if _, err := sq.Delete(historyTable).RunWith(s.db).ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("clear history: %w", err)
	}

	insert := sq.Insert(historyTable).Columns("date", "score")
	for _, r := range updated {
		insert = insert.Values(r.Date, r.Score)
	}
	if _, err := insert.RunWith(s.db).ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("save history: %w", err)
	}

	return updated, nil
}
