// Package evidence provides audit-trail generation and storage for horary
// verdicts. Every evaluation can be captured as an immutable verdict record:
// the question, the verdict and confidence, the full proof trail, and the
// path/blocker snapshots that produced it.
//
// # Architecture
//
// The evidence system consists of three layers:
//
//  1. Verdict Recorder - Creates verdict records from evaluation results
//  2. Storage Backend - Persists records (in-memory for tests, SQLite)
//  3. Retention - Prunes records by age and count on a cron schedule
//
// # Recording Flow
//
// Evidence is recorded asynchronously so evaluation callers never block on
// storage writes:
//
//	Chart + EvaluationResult
//	     ↓
//	Verdict Recorder (async channel)
//	     ↓
//	Storage Backend (SQLite, WAL mode)
//
// # Basic Usage
//
//	store, err := storage.NewSQLiteStorage(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	rec := recorder.NewRecorder(store, nil)
//	defer rec.Close()
//
//	rec.Record(ctx, chart, result, cfg.FatalCombustion)
//
// # Thread Safety
//
// The recorder and both storage backends are safe for concurrent use.
package evidence
