package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"stellium-hq/horarium/pkg/cli"
	"stellium-hq/horarium/pkg/horary"
	"stellium-hq/horarium/pkg/horary/engine"
	"stellium-hq/horarium/pkg/horary/source"
)

var evaluateFlags struct {
	charts          string
	fatalCombustion bool
	trace           bool
	format          string
	output          string
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate horary charts",
	Long: `Evaluate one or more horary charts and print the verdict for each.

The --charts flag accepts either a single chart YAML file or a directory
of chart files. Every chart is run through the full evaluation pipeline;
the verdict, confidence, and proof trail are printed for each.

Examples:
  # Evaluate a single chart
  horarium evaluate --charts chart.yaml

  # Evaluate every chart in a directory
  horarium evaluate --charts ./charts

  # Treat combustion as a warning instead of a blocker
  horarium evaluate --charts chart.yaml --fatal-combustion=false

  # Include the step-by-step trace in JSON output
  horarium evaluate --charts chart.yaml --trace --format json`,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVar(&evaluateFlags.charts, "charts", "", "chart file or directory (uses config if not specified)")
	evaluateCmd.Flags().BoolVar(&evaluateFlags.fatalCombustion, "fatal-combustion", true, "treat combustion as a blocker")
	evaluateCmd.Flags().BoolVar(&evaluateFlags.trace, "trace", false, "capture a step-by-step evaluation trace")
	evaluateCmd.Flags().StringVar(&evaluateFlags.format, "format", "text", "output format: text, json")
	evaluateCmd.Flags().StringVarP(&evaluateFlags.output, "output", "o", "", "output file (default: stdout)")
}

// chartVerdict pairs a chart with its evaluation result for output.
type chartVerdict struct {
	ChartID    string                  `json:"chart_id"`
	Question   string                  `json:"question,omitempty"`
	Verdict    engine.Verdict          `json:"verdict"`
	Confidence float64                 `json:"confidence"`
	Proof      []string                `json:"proof"`
	Trace      *engine.EvaluationTrace `json:"trace,omitempty"`
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	chartPath := evaluateFlags.charts
	if chartPath == "" {
		chartPath = cfg.Charts.Path
	}

	fatal := cfg.Engine.FatalCombustionOrDefault()
	if cmd.Flags().Changed("fatal-combustion") {
		fatal = evaluateFlags.fatalCombustion
	}
	trace := cfg.Engine.Trace || evaluateFlags.trace

	engineConfig := engine.DefaultEngineConfig().
		WithFatalCombustion(fatal).
		WithTrace(trace)
	evaluator, err := engine.NewEvaluator(engineConfig, logger)
	if err != nil {
		return cli.NewCommandError("evaluate", err)
	}

	ctx := context.Background()
	charts, err := source.NewFileSource(chartPath, logger).LoadCharts(ctx)
	if err != nil {
		return cli.NewCommandError("evaluate", fmt.Errorf("failed to load charts: %w", err))
	}
	if len(charts) == 0 {
		return fmt.Errorf("no charts found at %s", chartPath)
	}

	// Batch runs report progress on stderr so stdout stays parseable.
	var progress cli.ProgressReporter
	if len(charts) > 1 {
		progress = cli.NewProgressReporter(os.Stderr)
	}

	verdicts, err := evaluateCharts(ctx, evaluator, charts, progress)
	if err != nil {
		return cli.NewCommandError("evaluate", err)
	}

	output := os.Stdout
	if evaluateFlags.output != "" {
		output, err = os.Create(evaluateFlags.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer output.Close()
	}

	switch evaluateFlags.format {
	case "json":
		formatter := cli.NewFormatter(cli.FormatJSON)
		return formatter.FormatTo(output, verdicts)
	default:
		return outputVerdictsText(output, verdicts)
	}
}

// evaluateCharts runs every chart through the evaluator, reporting progress
// when a reporter is supplied. Progress may be nil for single-chart runs.
func evaluateCharts(ctx context.Context, evaluator *engine.Evaluator, charts []*horary.Chart, progress cli.ProgressReporter) ([]chartVerdict, error) {
	if progress != nil {
		progress.Start(int64(len(charts)))
	}

	verdicts := make([]chartVerdict, 0, len(charts))
	for i, chart := range charts {
		result, err := evaluator.Evaluate(ctx, chart)
		if err != nil {
			if progress != nil {
				progress.Error(err)
			}
			return nil, fmt.Errorf("chart %s: %w", chart.ID, err)
		}
		verdicts = append(verdicts, chartVerdict{
			ChartID:    chart.ID,
			Question:   chart.Question,
			Verdict:    result.Verdict,
			Confidence: result.Confidence,
			Proof:      result.Proof,
			Trace:      result.Trace,
		})
		if progress != nil {
			progress.Update(int64(i + 1))
		}
	}

	if progress != nil {
		progress.Finish()
	}
	return verdicts, nil
}

func outputVerdictsText(output *os.File, verdicts []chartVerdict) error {
	for i, v := range verdicts {
		if i > 0 {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "Chart: %s\n", v.ChartID)
		if v.Question != "" {
			fmt.Fprintf(output, "Question: %s\n", v.Question)
		}
		fmt.Fprintf(output, "Verdict: %s (confidence %.2f)\n", v.Verdict, v.Confidence)
		fmt.Fprintf(output, "Proof: %s\n", strings.Join(v.Proof, ", "))
		if v.Trace != nil {
			for _, step := range v.Trace.Steps {
				fmt.Fprintf(output, "  [%s] %s\n", step.Phase, step.Details)
			}
		}
	}
	return nil
}
