package recorder

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"stellium-hq/horarium/pkg/evidence"
	"stellium-hq/horarium/pkg/horary"
	"stellium-hq/horarium/pkg/horary/engine"
)

// ErrBufferFull indicates the async record buffer was full and the record
// was dropped.
var ErrBufferFull = errors.New("record buffer full")

// Config contains configuration for the verdict recorder.
type Config struct {
	// Enabled enables verdict recording.
	Enabled bool

	// AsyncBuffer is the size of the async write channel buffer.
	// Default: 1000
	AsyncBuffer int

	// WriteTimeout is the timeout for writing a record to storage.
	// Default: 5 seconds
	WriteTimeout time.Duration
}

// DefaultConfig returns the default recorder configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		AsyncBuffer:  1000,
		WriteTimeout: 5 * time.Second,
	}
}

// Recorder records verdict evidence for chart evaluations. Records are
// written asynchronously to avoid blocking the evaluation caller.
type Recorder struct {
	storage    evidence.Storage
	config     *Config
	recordChan chan *evidence.VerdictRecord
	wg         sync.WaitGroup
	done       chan struct{}
	logger     *slog.Logger
}

// NewRecorder creates a new verdict recorder with the provided storage
// backend and configuration.
func NewRecorder(storage evidence.Storage, config *Config) *Recorder {
	if config == nil {
		config = DefaultConfig()
	}

	r := &Recorder{
		storage:    storage,
		config:     config,
		recordChan: make(chan *evidence.VerdictRecord, config.AsyncBuffer),
		done:       make(chan struct{}),
		logger:     slog.Default().With("component", "evidence.recorder"),
	}

	r.wg.Add(1)
	go r.worker()

	r.logger.Info("verdict recorder initialized",
		"async_buffer", config.AsyncBuffer,
		"write_timeout", config.WriteTimeout,
	)

	return r
}

// Record creates a verdict record from a chart and its evaluation result and
// enqueues it for async writing to storage. fatalCombustion is the engine
// configuration that was in effect, captured so the record can be
// interpreted later.
//
// This method returns immediately and does not block on storage writes. If
// the async buffer is full the record is dropped with a warning rather than
// stalling the caller.
func (r *Recorder) Record(ctx context.Context, chart *horary.Chart, result *engine.EvaluationResult, fatalCombustion bool) error {
	if !r.config.Enabled {
		return nil
	}

	record := buildRecord(chart, result, fatalCombustion)

	select {
	case r.recordChan <- record:
		r.logger.Debug("verdict record enqueued",
			"record_id", record.ID,
			"chart_id", record.ChartID,
			"verdict", record.Verdict,
		)
		return nil
	default:
		r.logger.Warn("verdict record dropped, buffer full",
			"record_id", record.ID,
			"chart_id", record.ChartID,
		)
		return &evidence.RecorderError{
			RecordID: record.ID,
			Cause:    ErrBufferFull,
		}
	}
}

// buildRecord assembles an immutable verdict record from the evaluation
// inputs. Slices are copied so later chart mutation cannot alter the record.
func buildRecord(chart *horary.Chart, result *engine.EvaluationResult, fatalCombustion bool) *evidence.VerdictRecord {
	now := time.Now().UTC()

	return &evidence.VerdictRecord{
		ID:              uuid.New().String(),
		ChartID:         chart.ID,
		Question:        chart.Question,
		Querent:         chart.Querent,
		CastAt:          chart.CastAt,
		EvaluatedAt:     now.Add(-result.EvaluationTime),
		RecordedAt:      now,
		Verdict:         string(result.Verdict),
		Confidence:      result.Confidence,
		Proof:           append([]string(nil), result.Proof...),
		Paths:           aspectTypeStrings(chart.Paths),
		RejectedPaths:   aspectTypeStrings(chart.RejectedPaths),
		Blockers:        blockerStrings(chart.Blockers),
		Retrograde:      chart.Retrograde,
		FatalCombustion: fatalCombustion,
		EvaluationTime:  result.EvaluationTime,
	}
}

// worker drains the record channel and writes to storage.
func (r *Recorder) worker() {
	defer r.wg.Done()

	for {
		select {
		case record, ok := <-r.recordChan:
			if !ok {
				return
			}
			r.write(record)
		case <-r.done:
			// Drain remaining records before exiting.
			for {
				select {
				case record := <-r.recordChan:
					r.write(record)
				default:
					return
				}
			}
		}
	}
}

// write persists one record with the configured timeout.
func (r *Recorder) write(record *evidence.VerdictRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.WriteTimeout)
	defer cancel()

	if err := r.storage.Store(ctx, record); err != nil {
		r.logger.Error("failed to store verdict record",
			"record_id", record.ID,
			"error", err,
		)
		return
	}

	r.logger.Debug("verdict record stored", "record_id", record.ID)
}

// Close stops the recorder, draining any buffered records first.
func (r *Recorder) Close() error {
	close(r.done)
	r.wg.Wait()
	return nil
}

func aspectTypeStrings(types []horary.AspectType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func blockerStrings(kinds []horary.BlockerKind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
