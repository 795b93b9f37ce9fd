// Package recorder creates verdict records from evaluation results and
// writes them to an evidence storage backend asynchronously, so evaluation
// callers never block on storage writes.
package recorder
