package source

import (
	"context"

	"stellium-hq/horarium/pkg/horary"
)

// ChartSource provides charts to the evaluation pipeline.
type ChartSource interface {
	// LoadCharts loads all charts from the source.
	LoadCharts(ctx context.Context) ([]*horary.Chart, error)

	// Watch watches for chart changes and sends events on the returned
	// channel. The channel is closed when the context is cancelled.
	Watch(ctx context.Context) (<-chan ChartEvent, error)
}

// ChartEvent represents a chart file change event.
type ChartEvent struct {
	// Type is the event type ("created", "modified", "deleted").
	Type ChartEventType

	// Path is the file path that changed.
	Path string

	// Error is any error that occurred while processing the event.
	Error error
}

// ChartEventType represents the type of chart file event.
type ChartEventType string

const (
	ChartEventCreated  ChartEventType = "created"
	ChartEventModified ChartEventType = "modified"
	ChartEventDeleted  ChartEventType = "deleted"
)
