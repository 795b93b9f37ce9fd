package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"stellium-hq/horarium/pkg/evidence"
)

// SQLiteConfig contains configuration for the SQLite storage backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// MaxOpenConns is the maximum number of open connections to the
	// database.
	// Default: 10
	MaxOpenConns int

	// MaxIdleConns is the maximum number of idle connections.
	// Default: 5
	MaxIdleConns int

	// WALMode enables Write-Ahead Logging mode for better concurrency.
	// Default: true
	WALMode bool

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path:         "data/verdicts.db",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		WALMode:      true,
		BusyTimeout:  5 * time.Second,
	}
}

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	config *SQLiteConfig
	logger *slog.Logger
}

// NewSQLiteStorage creates a new SQLite storage backend.
// It initializes the database schema and enables WAL mode if configured.
func NewSQLiteStorage(config *SQLiteConfig) (*SQLiteStorage, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}

	logger := slog.Default().With("component", "evidence.storage.sqlite")

	db, err := sql.Open("sqlite", config.Path)
	if err != nil {
		return nil, evidence.NewStorageError("sqlite", "open", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	s := &SQLiteStorage{
		db:     db,
		config: config,
		logger: logger,
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("sqlite storage initialized",
		"path", config.Path,
		"wal_mode", config.WALMode,
	)

	return s, nil
}

// initialize applies pragmas and creates the schema.
func (s *SQLiteStorage) initialize() error {
	if s.config.WALMode {
		if _, err := s.db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			return evidence.NewStorageError("sqlite", "pragma", err)
		}
	}

	busyMillis := s.config.BusyTimeout.Milliseconds()
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d", busyMillis)); err != nil {
		return evidence.NewStorageError("sqlite", "pragma", err)
	}

	if _, err := s.db.Exec(Schema); err != nil {
		return evidence.NewStorageError("sqlite", "schema", err)
	}

	if _, err := s.db.Exec(
		"INSERT OR IGNORE INTO schema_version (version) VALUES (?)", SchemaVersion,
	); err != nil {
		return evidence.NewStorageError("sqlite", "schema", err)
	}

	return nil
}

// Store persists a verdict record.
func (s *SQLiteStorage) Store(ctx context.Context, record *evidence.VerdictRecord) error {
	proof, err := json.Marshal(record.Proof)
	if err != nil {
		return evidence.NewStorageError("sqlite", "store", err)
	}
	paths, err := json.Marshal(record.Paths)
	if err != nil {
		return evidence.NewStorageError("sqlite", "store", err)
	}
	rejected, err := json.Marshal(record.RejectedPaths)
	if err != nil {
		return evidence.NewStorageError("sqlite", "store", err)
	}
	blockers, err := json.Marshal(record.Blockers)
	if err != nil {
		return evidence.NewStorageError("sqlite", "store", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO verdicts (
			id, chart_id, question, querent,
			cast_at, evaluated_at, recorded_at,
			verdict, confidence, proof,
			paths, rejected_paths, blockers, retrograde,
			fatal_combustion, evaluation_time
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.ChartID, record.Question, record.Querent,
		record.CastAt, record.EvaluatedAt, record.RecordedAt,
		record.Verdict, record.Confidence, string(proof),
		string(paths), string(rejected), string(blockers), record.Retrograde,
		record.FatalCombustion, int64(record.EvaluationTime),
	)
	if err != nil {
		return evidence.NewStorageError("sqlite", "store", err)
	}

	return nil
}

// Query retrieves verdict records matching the query filters.
func (s *SQLiteStorage) Query(ctx context.Context, query *evidence.Query) ([]*evidence.VerdictRecord, error) {
	where, args := buildWhere(query)

	sb := strings.Builder{}
	sb.WriteString(`SELECT id, chart_id, question, querent,
		cast_at, evaluated_at, recorded_at,
		verdict, confidence, proof,
		paths, rejected_paths, blockers, retrograde,
		fatal_combustion, evaluation_time
		FROM verdicts`)
	sb.WriteString(where)
	sb.WriteString(orderBy(query))

	if query != nil && query.Limit > 0 {
		sb.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, query.Limit, query.Offset)
	} else if query != nil && query.Offset > 0 {
		sb.WriteString(" LIMIT -1 OFFSET ?")
		args = append(args, query.Offset)
	}

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, evidence.NewStorageError("sqlite", "query", err)
	}
	defer rows.Close()

	records := make([]*evidence.VerdictRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, evidence.NewStorageError("sqlite", "query", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, evidence.NewStorageError("sqlite", "query", err)
	}

	return records, nil
}

// Count returns the number of verdict records matching the query filters.
func (s *SQLiteStorage) Count(ctx context.Context, query *evidence.Query) (int64, error) {
	where, args := buildWhere(query)

	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM verdicts"+where, args...).Scan(&count)
	if err != nil {
		return 0, evidence.NewStorageError("sqlite", "count", err)
	}

	return count, nil
}

// Delete removes verdict records matching the query filters.
func (s *SQLiteStorage) Delete(ctx context.Context, query *evidence.Query) (int64, error) {
	where, args := buildWhere(query)

	result, err := s.db.ExecContext(ctx, "DELETE FROM verdicts"+where, args...)
	if err != nil {
		return 0, evidence.NewStorageError("sqlite", "delete", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, evidence.NewStorageError("sqlite", "delete", err)
	}

	return deleted, nil
}

// Close releases the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// buildWhere translates query filters into a WHERE clause and arguments.
func buildWhere(query *evidence.Query) (string, []interface{}) {
	if query == nil {
		return "", nil
	}

	clauses := make([]string, 0, 6)
	args := make([]interface{}, 0, 6)

	if query.StartTime != nil {
		clauses = append(clauses, "evaluated_at >= ?")
		args = append(args, *query.StartTime)
	}
	if query.EndTime != nil {
		clauses = append(clauses, "evaluated_at <= ?")
		args = append(args, *query.EndTime)
	}
	if query.ChartID != "" {
		clauses = append(clauses, "chart_id = ?")
		args = append(args, query.ChartID)
	}
	if query.Querent != "" {
		clauses = append(clauses, "querent = ?")
		args = append(args, query.Querent)
	}
	if query.Verdict != "" {
		clauses = append(clauses, "verdict = ?")
		args = append(args, query.Verdict)
	}
	if query.MinConfidence != nil {
		clauses = append(clauses, "confidence >= ?")
		args = append(args, *query.MinConfidence)
	}
	if query.MaxConfidence != nil {
		clauses = append(clauses, "confidence <= ?")
		args = append(args, *query.MaxConfidence)
	}

	if len(clauses) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

// orderBy translates query sorting into an ORDER BY clause. The default
// order is newest first.
func orderBy(query *evidence.Query) string {
	column := "evaluated_at"
	if query != nil && query.SortBy == "confidence" {
		column = "confidence"
	}

	direction := "DESC"
	if query != nil && query.SortOrder == "asc" {
		direction = "ASC"
	}

	return fmt.Sprintf(" ORDER BY %s %s", column, direction)
}

// scanRecord reads one row into a verdict record.
func scanRecord(rows *sql.Rows) (*evidence.VerdictRecord, error) {
	var (
		record         evidence.VerdictRecord
		proof          string
		paths          string
		rejected       string
		blockers       string
		evaluationTime int64
	)

	err := rows.Scan(
		&record.ID, &record.ChartID, &record.Question, &record.Querent,
		&record.CastAt, &record.EvaluatedAt, &record.RecordedAt,
		&record.Verdict, &record.Confidence, &proof,
		&paths, &rejected, &blockers, &record.Retrograde,
		&record.FatalCombustion, &evaluationTime,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(proof), &record.Proof); err != nil {
		return nil, fmt.Errorf("corrupt proof column: %w", err)
	}
	if err := json.Unmarshal([]byte(paths), &record.Paths); err != nil {
		return nil, fmt.Errorf("corrupt paths column: %w", err)
	}
	if err := json.Unmarshal([]byte(rejected), &record.RejectedPaths); err != nil {
		return nil, fmt.Errorf("corrupt rejected_paths column: %w", err)
	}
	if err := json.Unmarshal([]byte(blockers), &record.Blockers); err != nil {
		return nil, fmt.Errorf("corrupt blockers column: %w", err)
	}
	record.EvaluationTime = time.Duration(evaluationTime)

	return &record, nil
}
