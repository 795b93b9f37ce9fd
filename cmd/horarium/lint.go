package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"stellium-hq/horarium/pkg/cli"
	"stellium-hq/horarium/pkg/horary/engine"
	"stellium-hq/horarium/pkg/horary/source"
)

var lintFlags struct {
	file   string
	dir    string
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate chart files",
	Long: `Validate horary chart files for syntax and shape errors.

The lint command parses chart files and performs validation:
  - YAML syntax validation
  - Timeline shape validation (every element needs a type or a status)

Unrecognized aspect types, statuses, blockers, and modulators are not lint
errors; the evaluator skips them silently.

Examples:
  # Lint single file
  horarium lint --file chart.yaml

  # Lint directory
  horarium lint --dir charts/

  # JSON output for CI/CD
  horarium lint --file chart.yaml --format json`,
	RunE: lintCharts,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "chart file to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of chart files")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

// LintResult represents the validation result for a single chart file.
type LintResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func lintCharts(cmd *cobra.Command, args []string) error {
	if lintFlags.file == "" && lintFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}

	var files []string

	if lintFlags.file != "" {
		files = append(files, lintFlags.file)
	}

	if lintFlags.dir != "" {
		matches, err := filepath.Glob(filepath.Join(lintFlags.dir, "*.yaml"))
		if err != nil {
			return fmt.Errorf("failed to list chart files: %w", err)
		}
		ymlMatches, err := filepath.Glob(filepath.Join(lintFlags.dir, "*.yml"))
		if err != nil {
			return fmt.Errorf("failed to list chart files: %w", err)
		}
		files = append(files, matches...)
		files = append(files, ymlMatches...)
	}

	if len(files) == 0 {
		return fmt.Errorf("no chart files found")
	}

	results := make([]LintResult, 0, len(files))
	for _, file := range files {
		results = append(results, lintChartFile(file))
	}

	if lintFlags.format == "json" {
		formatter := cli.NewFormatter(cli.FormatJSON)
		if err := formatter.FormatTo(os.Stdout, results); err != nil {
			return err
		}
	} else {
		for _, result := range results {
			if result.Valid {
				fmt.Printf("✓ %s\n", result.File)
				continue
			}
			fmt.Printf("✗ %s\n", result.File)
			for _, msg := range result.Errors {
				fmt.Printf("    %s\n", msg)
			}
		}
	}

	for _, result := range results {
		if !result.Valid {
			return fmt.Errorf("validation failed for %d of %d files", countInvalid(results), len(results))
		}
	}
	return nil
}

func lintChartFile(path string) LintResult {
	result := LintResult{File: path, Valid: true}

	charts, err := source.NewFileSource(path, nil).LoadCharts(context.Background())
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	evaluator, err := engine.NewEvaluator(nil, nil)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	for _, chart := range charts {
		if _, err := evaluator.Evaluate(context.Background(), chart); err != nil {
			var shapeErr *engine.InputShapeError
			if errors.As(err, &shapeErr) {
				result.Valid = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("chart %s: timeline[%d]: %s", chart.ID, shapeErr.Index, shapeErr.Message))
				continue
			}
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("chart %s: %v", chart.ID, err))
		}
	}

	return result
}

func countInvalid(results []LintResult) int {
	n := 0
	for _, r := range results {
		if !r.Valid {
			n++
		}
	}
	return n
}
