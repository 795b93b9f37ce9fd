// Package source provides chart sources for the verdict engine. A chart
// source is the chart-construction collaborator: it supplies charts
// conforming to the horary data model, with fields possibly only partially
// populated (the engine's normalizer fills the rest).
//
// FileSource loads charts from YAML files on disk and can watch the path
// with fsnotify so callers can re-evaluate charts as files change.
package source
