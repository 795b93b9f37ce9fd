/*
Package cli provides command-line interface utilities for Horarium.

The cli package includes output formatters, progress reporters, and common CLI
helpers used by the horarium command.

Output Formatting:

The cli package supports multiple output formats (text, JSON) for displaying
command results:

	formatter := cli.NewFormatter(cli.FormatJSON)
	data := MyCommandResult{...}
	if err := formatter.FormatTo(os.Stdout, data); err != nil {
		return err
	}

Progress Reporting:

For batch evaluation over large chart directories, use the progress reporter:

	progress := cli.NewProgressReporter(os.Stdout)
	progress.Start(int64(len(charts)))
	for i, chart := range charts {
		// Evaluate chart
		progress.Update(int64(i + 1))
	}
	progress.Finish()

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
