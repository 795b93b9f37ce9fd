package storage

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// Schema contains the SQL statements to create the verdict database schema.
const Schema = `
-- Verdict records table
CREATE TABLE IF NOT EXISTS verdicts (
    id TEXT PRIMARY KEY,
    chart_id TEXT NOT NULL,

    -- Question context
    question TEXT,
    querent TEXT,

    -- Timestamps
    cast_at TIMESTAMP,
    evaluated_at TIMESTAMP NOT NULL,
    recorded_at TIMESTAMP NOT NULL,

    -- Verdict
    verdict TEXT NOT NULL,
    confidence REAL NOT NULL,
    proof TEXT NOT NULL,

    -- Evaluation snapshots (JSON arrays)
    paths TEXT,
    rejected_paths TEXT,
    blockers TEXT,
    retrograde BOOLEAN NOT NULL DEFAULT 0,

    -- Configuration in effect
    fatal_combustion BOOLEAN NOT NULL DEFAULT 1,

    -- Timing (nanoseconds)
    evaluation_time INTEGER
);

-- Indexes for common query patterns
CREATE INDEX IF NOT EXISTS idx_verdicts_evaluated_at ON verdicts(evaluated_at);
CREATE INDEX IF NOT EXISTS idx_verdicts_chart_id ON verdicts(chart_id);
CREATE INDEX IF NOT EXISTS idx_verdicts_verdict ON verdicts(verdict);
CREATE INDEX IF NOT EXISTS idx_verdicts_querent ON verdicts(querent);

-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);
`
