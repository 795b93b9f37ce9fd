// Package engine implements the horary verdict engine: a deterministic,
// rule-based pipeline that judges a chart and produces a YES/NO verdict, a
// clamped confidence score, and an ordered proof trail of every rule that
// fired.
//
// # Evaluation Flow
//
//	Chart
//	  ↓
//	Normalizer        (default missing fields)
//	  ↓
//	Path Finder       (scan timeline for applying paths → baseline, bonus)
//	  ↓
//	Blocker Detector  (prohibition, refranation, combustion → blocked)
//	  ↓
//	Fallback Recorder (proof "no-path" when neither signal)
//	  ↓
//	Confidence Modulator (seed + bonus + weights − retrograde, clamp [0,1])
//	  ↓
//	Verdict Composer  (YES iff path found AND not blocked)
//
// Control flows strictly forward; each phase reads the chart and appends to
// an evaluation accumulator. Blocker detection always runs even when a path
// was found, so a path can be overridden by a blocker. The proof trail is
// append-only across the whole run and is never reordered or deduplicated.
//
// # Basic Usage
//
//	cfg := engine.DefaultEngineConfig().WithFatalCombustion(false)
//	eval, err := engine.NewEvaluator(cfg, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := eval.Evaluate(ctx, chart)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Verdict, result.Confidence, result.Proof)
//
// # Error Handling
//
// The engine never fails on merely unusual input: absent fields are
// defaulted, unrecognized aspect types and blocker kinds are silently
// ignored, and confidence is always clamped to [0, 1]. "No evidence found"
// is a normal outcome (verdict NO, low confidence), not an error. The one
// structural check is on timeline shape: an event carrying neither a type
// nor a status cannot be interpreted at all and yields an *InputShapeError.
//
// # Thread Safety
//
// An Evaluator is safe for concurrent use provided each call owns its chart:
// the engine holds no state across invocations and performs no
// synchronization on the chart itself.
package engine
