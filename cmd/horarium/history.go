package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"stellium-hq/horarium/pkg/cli"
	"stellium-hq/horarium/pkg/evidence"
)

var historyFlags struct {
	backend       string
	timeRange     string
	chartID       string
	querent       string
	verdict       string
	minConfidence float64
	maxConfidence float64
	limit         int
	offset        int
	format        string
	output        string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Query recorded verdicts",
	Long: `Query verdict records from the evidence store.

Time Range Format:
  RFC3339 interval format: "start/end"
  Example: "2026-08-25T00:00:00Z/2026-08-26T00:00:00Z"

Examples:
  # Query the most recent verdicts
  horarium history --limit 20

  # Query a specific time range
  horarium history --time-range "2026-08-25T00:00:00Z/2026-08-26T00:00:00Z"

  # Filter by querent and verdict
  horarium history --querent "alice" --verdict NO

  # Filter by confidence threshold
  horarium history --min-confidence 0.5

  # Export to JSON
  horarium history --format json --output verdicts.json`,
	RunE: queryHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyFlags.backend, "backend", "", "backend: sqlite, memory (uses config if not specified)")
	historyCmd.Flags().StringVar(&historyFlags.timeRange, "time-range", "", "time range (RFC3339 interval: start/end)")
	historyCmd.Flags().StringVar(&historyFlags.chartID, "chart", "", "filter by chart ID")
	historyCmd.Flags().StringVar(&historyFlags.querent, "querent", "", "filter by querent")
	historyCmd.Flags().StringVar(&historyFlags.verdict, "verdict", "", "filter by verdict (YES, NO)")
	historyCmd.Flags().Float64Var(&historyFlags.minConfidence, "min-confidence", 0, "minimum confidence threshold")
	historyCmd.Flags().Float64Var(&historyFlags.maxConfidence, "max-confidence", 0, "maximum confidence threshold")
	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 100, "max results")
	historyCmd.Flags().IntVar(&historyFlags.offset, "offset", 0, "pagination offset")
	historyCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json")
	historyCmd.Flags().StringVarP(&historyFlags.output, "output", "o", "", "output file (default: stdout)")
}

func queryHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	if historyFlags.backend != "" {
		cfg.Evidence.Backend = historyFlags.backend
	}

	store, err := openStorage(cfg)
	if err != nil {
		return cli.NewCommandError("history", err)
	}
	defer store.Close()

	query := &evidence.Query{
		ChartID: historyFlags.chartID,
		Querent: historyFlags.querent,
		Verdict: historyFlags.verdict,
		Limit:   historyFlags.limit,
		Offset:  historyFlags.offset,
	}

	if historyFlags.timeRange != "" {
		parts := strings.Split(historyFlags.timeRange, "/")
		if len(parts) != 2 {
			return fmt.Errorf("invalid time range format (expected: start/end)")
		}

		startTime, err := time.Parse(time.RFC3339, parts[0])
		if err != nil {
			return fmt.Errorf("invalid start time: %w", err)
		}
		query.StartTime = &startTime

		endTime, err := time.Parse(time.RFC3339, parts[1])
		if err != nil {
			return fmt.Errorf("invalid end time: %w", err)
		}
		query.EndTime = &endTime
	}

	if historyFlags.minConfidence > 0 {
		query.MinConfidence = &historyFlags.minConfidence
	}
	if historyFlags.maxConfidence > 0 {
		query.MaxConfidence = &historyFlags.maxConfidence
	}

	records, err := store.Query(context.Background(), query)
	if err != nil {
		return cli.NewCommandError("history", fmt.Errorf("query failed: %w", err))
	}

	output := os.Stdout
	if historyFlags.output != "" {
		output, err = os.Create(historyFlags.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer output.Close()
	}

	switch historyFlags.format {
	case "json":
		formatter := cli.NewFormatter(cli.FormatJSON)
		return formatter.FormatTo(output, records)
	default:
		return outputHistoryText(output, records, query)
	}
}

func outputHistoryText(output *os.File, records []*evidence.VerdictRecord, query *evidence.Query) error {
	if query.StartTime != nil && query.EndTime != nil {
		fmt.Fprintf(output, "Time range: %s to %s\n",
			query.StartTime.Format(time.RFC3339),
			query.EndTime.Format(time.RFC3339))
	}
	fmt.Fprintf(output, "Total records: %d\n", len(records))
	fmt.Fprintln(output)

	if len(records) == 0 {
		fmt.Fprintln(output, "No records found.")
		return nil
	}

	for i, record := range records {
		if i > 0 {
			fmt.Fprintln(output)
		}

		fmt.Fprintf(output, "Record ID: %s\n", record.ID)
		fmt.Fprintf(output, "Chart: %s\n", record.ChartID)
		if record.Question != "" {
			fmt.Fprintf(output, "Question: %s\n", record.Question)
		}
		if record.Querent != "" {
			fmt.Fprintf(output, "Querent: %s\n", record.Querent)
		}
		fmt.Fprintf(output, "Evaluated: %s\n", record.EvaluatedAt.Format(time.RFC3339))
		fmt.Fprintf(output, "Verdict: %s (confidence %.2f)\n", record.Verdict, record.Confidence)
		fmt.Fprintf(output, "Proof: %s\n", strings.Join(record.Proof, ", "))
	}

	return nil
}
