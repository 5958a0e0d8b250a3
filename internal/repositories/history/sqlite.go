package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/touchline/internal/models"
	_ "modernc.org/sqlite"
)

const createRecordsTable = `
CREATE TABLE IF NOT EXISTS match_records (
    id TEXT PRIMARY KEY,
    played_at INTEGER NOT NULL,
    team_name TEXT NOT NULL,
    opponent_name TEXT NOT NULL,
    final_score TEXT NOT NULL,
    result TEXT NOT NULL,
    payload TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_match_records_played_at ON match_records (played_at);
`

// SQLiteConfig holds configuration for the SQLite history repository
type SQLiteConfig struct {
	// DB is an open handle using the "sqlite" driver
	DB *sql.DB
}

// sqliteRepository implements the Repository interface on SQLite
type sqliteRepository struct {
	db *sql.DB
}

// OpenSQLite opens a database file with settings suitable for a single writer
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// NewSQLite creates a SQLite-backed history repository, creating its table if needed
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("sql db cannot be nil")
	}

	if _, err := cfg.DB.Exec(createRecordsTable); err != nil {
		return nil, fmt.Errorf("failed to ensure match_records table: %w", err)
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// SaveRecord inserts or replaces a match record
func (r *sqliteRepository) SaveRecord(ctx context.Context, input *SaveRecordInput) error {
	if err := validateRecord(input); err != nil {
		return err
	}
	record := input.Record

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal match record: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO match_records (id, played_at, team_name, opponent_name, final_score, result, payload)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    played_at = excluded.played_at,
    team_name = excluded.team_name,
    opponent_name = excluded.opponent_name,
    final_score = excluded.final_score,
    result = excluded.result,
    payload = excluded.payload`,
		record.ID,
		record.Date.UnixNano(),
		record.TeamName,
		record.OpponentName,
		record.FinalScore,
		string(record.Result),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save match record: %w", err)
	}

	return nil
}

// GetRecord retrieves a match record by ID
func (r *sqliteRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.MatchRecord, error) {
	if input == nil || input.RecordID == "" {
		return nil, errors.New("input and record ID cannot be empty")
	}

	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM match_records WHERE id = ?`, input.RecordID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get match record: %w", err)
	}

	return decodeRecord(payload)
}

// ListRecords returns records newest first
func (r *sqliteRepository) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	limit := -1
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	rows, err := r.db.QueryContext(ctx, `SELECT payload FROM match_records ORDER BY played_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list match records: %w", err)
	}
	defer rows.Close()

	records := []*models.MatchRecord{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan match record: %w", err)
		}
		record, err := decodeRecord(payload)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list match records: %w", err)
	}

	return &ListRecordsOutput{
		Records: records,
	}, nil
}

func decodeRecord(payload string) (*models.MatchRecord, error) {
	var record models.MatchRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match record: %w", err)
	}
	return &record, nil
}
