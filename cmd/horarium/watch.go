package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"stellium-hq/horarium/pkg/cli"
	"stellium-hq/horarium/pkg/evidence/recorder"
	"stellium-hq/horarium/pkg/evidence/retention"
	"stellium-hq/horarium/pkg/horary"
	"stellium-hq/horarium/pkg/horary/engine"
	"stellium-hq/horarium/pkg/horary/source"
	"stellium-hq/horarium/pkg/telemetry/metrics"
)

var watchFlags struct {
	charts string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a chart directory and evaluate charts as they change",
	Long: `Watch a chart file or directory and re-evaluate charts on every change.

Each created or modified chart is run through the evaluation pipeline.
Verdicts are printed, recorded to the evidence store (if enabled), and
exposed as Prometheus metrics.

Examples:
  # Watch the configured chart directory
  horarium watch

  # Watch a specific directory
  horarium watch --charts ./charts

  # Watch with a custom config
  horarium watch --config /etc/horarium/config.yaml`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchFlags.charts, "charts", "", "chart file or directory (uses config if not specified)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	chartPath := watchFlags.charts
	if chartPath == "" {
		chartPath = cfg.Charts.Path
	}

	engineConfig := engine.DefaultEngineConfig().
		WithFatalCombustion(cfg.Engine.FatalCombustionOrDefault()).
		WithTrace(cfg.Engine.Trace)
	evaluator, err := engine.NewEvaluator(engineConfig, logger)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	// Evidence recording and retention (if enabled)
	var verdictRecorder *recorder.Recorder
	if cfg.Evidence.EnabledOrDefault() {
		store, err := openStorage(cfg)
		if err != nil {
			return cli.NewCommandError("watch", err)
		}
		defer store.Close()

		verdictRecorder = recorder.NewRecorder(store, &recorder.Config{
			Enabled:      true,
			AsyncBuffer:  cfg.Evidence.Recorder.AsyncBuffer,
			WriteTimeout: cfg.Evidence.Recorder.WriteTimeout,
		})
		defer verdictRecorder.Close()

		if cfg.Evidence.Retention.Schedule != "" {
			pruner := retention.NewPruner(store, &retention.Config{
				RetentionDays: cfg.Evidence.Retention.Days,
				PruneSchedule: cfg.Evidence.Retention.Schedule,
				MaxRecords:    cfg.Evidence.Retention.MaxRecords,
			})
			if err := pruner.Start(context.Background()); err != nil {
				logger.Warn("failed to start retention scheduler", "error", err)
			} else {
				defer pruner.Stop()
			}
		}

		fmt.Println("✓ Evidence store initialized")
	}

	// Prometheus metrics (if enabled)
	var evalMetrics *metrics.EvaluationMetrics
	if cfg.Telemetry.Metrics.EnabledOrDefault() {
		evalMetrics = metrics.NewEvaluationMetrics(
			&metrics.Config{Namespace: cfg.Telemetry.Metrics.Namespace},
			prometheus.NewRegistry(),
		)

		mux := http.NewServeMux()
		mux.Handle(cfg.Telemetry.Metrics.Path, evalMetrics.Handler())
		metricsServer := &http.Server{
			Addr:              cfg.Telemetry.Metrics.ListenAddress,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			metricsServer.Shutdown(shutdownCtx)
		}()

		fmt.Printf("✓ Metrics endpoint: http://%s%s\n", cfg.Telemetry.Metrics.ListenAddress, cfg.Telemetry.Metrics.Path)
	}

	ctx := cli.SetupSignalHandler()

	chartSource := source.NewFileSource(chartPath, logger)

	// Evaluate everything already present before watching for changes.
	charts, err := chartSource.LoadCharts(ctx)
	if err != nil {
		return cli.NewCommandError("watch", fmt.Errorf("failed to load charts: %w", err))
	}
	for _, chart := range charts {
		evaluateAndReport(ctx, evaluator, chart, cfg.Engine.FatalCombustionOrDefault(), verdictRecorder, evalMetrics, logger)
	}

	events, err := chartSource.Watch(ctx)
	if err != nil {
		return cli.NewCommandError("watch", fmt.Errorf("failed to watch %s: %w", chartPath, err))
	}

	fmt.Printf("✓ Watching %s\n", chartPath)
	fmt.Println("\nPress Ctrl+C to stop")

	for event := range events {
		if event.Error != nil {
			logger.Warn("watch error", "error", event.Error)
			continue
		}
		if event.Type == source.ChartEventDeleted {
			logger.Info("chart removed", "path", event.Path)
			continue
		}

		eventCharts, err := source.NewFileSource(event.Path, logger).LoadCharts(ctx)
		if err != nil {
			logger.Warn("failed to load changed chart", "path", event.Path, "error", err)
			continue
		}
		for _, chart := range eventCharts {
			evaluateAndReport(ctx, evaluator, chart, cfg.Engine.FatalCombustionOrDefault(), verdictRecorder, evalMetrics, logger)
		}
	}

	fmt.Println("\nShutting down...")
	return nil
}

// evaluateAndReport runs one chart through the pipeline, prints the verdict,
// and feeds the recorder and metrics when they are configured.
func evaluateAndReport(
	ctx context.Context,
	evaluator *engine.Evaluator,
	chart *horary.Chart,
	fatalCombustion bool,
	verdictRecorder *recorder.Recorder,
	evalMetrics *metrics.EvaluationMetrics,
	logger *slog.Logger,
) {
	result, err := evaluator.Evaluate(ctx, chart)
	if err != nil {
		logger.Warn("evaluation failed", "chart_id", chart.ID, "error", err)
		return
	}

	fmt.Printf("%s: %s (confidence %.2f) proof=%v\n", chart.ID, result.Verdict, result.Confidence, result.Proof)

	if verdictRecorder != nil {
		if err := verdictRecorder.Record(ctx, chart, result, fatalCombustion); err != nil {
			logger.Warn("failed to record verdict", "chart_id", chart.ID, "error", err)
		}
	}
	if evalMetrics != nil {
		evalMetrics.RecordEvaluation(result)
	}
}
