package evidence

import (
	"context"
	"time"
)

// VerdictRecord represents a complete audit trail for a single chart
// evaluation. It captures the question, the verdict, the confidence, and the
// full proof trail, so a judgement can be reconstructed and displayed after
// the fact.
type VerdictRecord struct {
	// Identity
	ID      string `json:"id"`       // UUID v4
	ChartID string `json:"chart_id"` // From the chart

	// Question context
	Question string `json:"question"` // The horary question judged
	Querent  string `json:"querent"`  // Who asked

	// Timestamps
	CastAt      time.Time `json:"cast_at"`      // When the chart was cast
	EvaluatedAt time.Time `json:"evaluated_at"` // When the verdict was produced
	RecordedAt  time.Time `json:"recorded_at"`  // When evidence was recorded

	// Verdict
	Verdict    string   `json:"verdict"`    // "YES" or "NO"
	Confidence float64  `json:"confidence"` // Clamped [0,1], 2 decimal places
	Proof      []string `json:"proof"`      // Ordered rule tokens, as fired

	// Evaluation snapshots
	Paths         []string `json:"paths"`          // Qualifying path types
	RejectedPaths []string `json:"rejected_paths"` // Recognized but non-qualifying
	Blockers      []string `json:"blockers"`       // Blocker kinds present
	Retrograde    bool     `json:"retrograde"`     // Retrograde penalty applied

	// Configuration in effect
	FatalCombustion bool `json:"fatal_combustion"` // Combustion treated as disqualifying

	// Timing
	EvaluationTime time.Duration `json:"evaluation_time"` // Pipeline duration
}

// Query defines filter parameters for querying verdict records.
type Query struct {
	// Time range (on EvaluatedAt)
	StartTime *time.Time `json:"start_time,omitempty"` // Inclusive start time
	EndTime   *time.Time `json:"end_time,omitempty"`   // Inclusive end time

	// Filters
	ChartID string `json:"chart_id,omitempty"` // Filter by chart ID
	Querent string `json:"querent,omitempty"`  // Filter by querent
	Verdict string `json:"verdict,omitempty"`  // "YES" or "NO"

	// Thresholds
	MinConfidence *float64 `json:"min_confidence,omitempty"` // Minimum confidence
	MaxConfidence *float64 `json:"max_confidence,omitempty"` // Maximum confidence

	// Pagination
	Limit  int `json:"limit,omitempty"`  // Max records to return
	Offset int `json:"offset,omitempty"` // Skip N records

	// Sorting
	SortBy    string `json:"sort_by,omitempty"`    // "evaluated_at", "confidence"
	SortOrder string `json:"sort_order,omitempty"` // "asc", "desc"
}

// Storage defines the interface for verdict record storage backends.
// Implementations must be thread-safe and support concurrent access.
type Storage interface {
	// Store persists a verdict record.
	Store(ctx context.Context, record *VerdictRecord) error

	// Query retrieves verdict records matching the query filters.
	// Returns an empty slice if no records match.
	Query(ctx context.Context, query *Query) ([]*VerdictRecord, error)

	// Count returns the number of verdict records matching the query
	// filters.
	Count(ctx context.Context, query *Query) (int64, error)

	// Delete removes verdict records matching the query filters and
	// returns the number of records deleted. Used for retention policy
	// enforcement.
	Delete(ctx context.Context, query *Query) (int64, error)

	// Close releases any resources held by the storage backend.
	Close() error
}
