package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stellium-hq/horarium/pkg/evidence"
)

// Config contains configuration for the retention pruner.
type Config struct {
	// RetentionDays is the number of days to retain verdict records.
	// 0 means keep records forever (no age-based pruning).
	RetentionDays int

	// PruneSchedule is a cron expression for scheduling pruning.
	// Example: "0 3 * * *" (daily at 3 AM). Empty disables the scheduler.
	PruneSchedule string

	// MaxRecords is the maximum number of records to keep.
	// 0 means unlimited.
	MaxRecords int64
}

// DefaultConfig returns the default retention configuration.
func DefaultConfig() *Config {
	return &Config{
		RetentionDays: 90,
		PruneSchedule: "0 3 * * *",
		MaxRecords:    0,
	}
}

// Pruner enforces retention policies on verdict records.
type Pruner struct {
	storage   evidence.Storage
	config    *Config
	logger    *slog.Logger
	scheduler *Scheduler
}

// NewPruner creates a new retention pruner.
func NewPruner(storage evidence.Storage, config *Config) *Pruner {
	if config == nil {
		config = DefaultConfig()
	}

	pruner := &Pruner{
		storage: storage,
		config:  config,
		logger:  slog.Default().With("component", "evidence.retention"),
	}
	pruner.scheduler = NewScheduler(pruner)

	return pruner
}

// Start begins scheduled pruning according to the configured cron
// expression.
func (p *Pruner) Start(ctx context.Context) error {
	return p.scheduler.Start(ctx)
}

// Stop stops scheduled pruning.
func (p *Pruner) Stop() {
	p.scheduler.Stop()
}

// Prune deletes verdict records older than the retention period or exceeding
// the max record count.
//
// Pruning happens in two phases:
//  1. Age-based: delete records evaluated before the retention cutoff
//  2. Count-based: if total records > max_records, delete oldest
//
// Both can run together. Returns the total number of records deleted.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	var totalDeleted int64

	if p.config.RetentionDays > 0 {
		deleted, err := p.pruneByAge(ctx)
		if err != nil {
			return totalDeleted, &evidence.RetentionError{
				RetentionDays: p.config.RetentionDays,
				Cause:         fmt.Errorf("prune by age: %w", err),
			}
		}
		totalDeleted += deleted
		p.logger.Info("pruned records by age",
			"deleted_count", deleted,
			"retention_days", p.config.RetentionDays,
		)
	}

	if p.config.MaxRecords > 0 {
		deleted, err := p.pruneByCount(ctx)
		if err != nil {
			return totalDeleted, &evidence.RetentionError{
				RetentionDays: p.config.RetentionDays,
				Cause:         fmt.Errorf("prune by count: %w", err),
			}
		}
		totalDeleted += deleted
		p.logger.Info("pruned records by count",
			"deleted_count", deleted,
			"max_records", p.config.MaxRecords,
		)
	}

	return totalDeleted, nil
}

// pruneByAge deletes records evaluated before the retention cutoff.
func (p *Pruner) pruneByAge(ctx context.Context) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -p.config.RetentionDays)
	return p.storage.Delete(ctx, &evidence.Query{EndTime: &cutoff})
}

// pruneByCount deletes the oldest records beyond the max record count.
func (p *Pruner) pruneByCount(ctx context.Context) (int64, error) {
	total, err := p.storage.Count(ctx, &evidence.Query{})
	if err != nil {
		return 0, err
	}

	excess := total - p.config.MaxRecords
	if excess <= 0 {
		return 0, nil
	}

	// Find the newest record among the oldest `excess` ones and delete
	// everything up to and including it.
	oldest, err := p.storage.Query(ctx, &evidence.Query{
		Limit:     int(excess),
		SortBy:    "evaluated_at",
		SortOrder: "asc",
	})
	if err != nil {
		return 0, err
	}
	if len(oldest) == 0 {
		return 0, nil
	}

	cutoff := oldest[len(oldest)-1].EvaluatedAt
	return p.storage.Delete(ctx, &evidence.Query{EndTime: &cutoff})
}
