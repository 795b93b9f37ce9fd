// Package retention enforces retention policies on stored verdict records.
// A Pruner deletes records by age and by total count; a Scheduler runs the
// pruner on a cron schedule.
package retention
