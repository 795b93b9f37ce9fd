package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"stellium-hq/horarium/pkg/horary"
)

// FileSource loads charts from YAML files on disk.
type FileSource struct {
	path   string
	logger *slog.Logger
}

// NewFileSource creates a new file-based chart source.
// The path can be either a single file or a directory.
// If it's a directory, all .yaml and .yml files will be loaded.
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{
		path:   path,
		logger: logger,
	}
}

// LoadCharts loads all charts from the configured path.
func (s *FileSource) LoadCharts(ctx context.Context) ([]*horary.Chart, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %q: %w", s.path, err)
	}

	var charts []*horary.Chart

	if info.IsDir() {
		charts, err = s.loadDirectory(ctx)
		if err != nil {
			return nil, err
		}
	} else {
		chart, err := s.loadFile(s.path)
		if err != nil {
			return nil, err
		}
		charts = []*horary.Chart{chart}
	}

	s.logger.Info("loaded charts from source",
		"path", s.path,
		"chart_count", len(charts),
	)

	return charts, nil
}

// loadDirectory loads all chart files from a directory.
func (s *FileSource) loadDirectory(ctx context.Context) ([]*horary.Chart, error) {
	var charts []*horary.Chart

	err := filepath.Walk(s.path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		chart, err := s.loadFile(path)
		if err != nil {
			s.logger.Warn("failed to load chart file, skipping",
				"path", path,
				"error", err,
			)
			return nil // Skip invalid files
		}

		charts = append(charts, chart)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %q: %w", s.path, err)
	}

	return charts, nil
}

// loadFile loads a single chart file.
func (s *FileSource) loadFile(path string) (*horary.Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	var chart horary.Chart
	if err := yaml.Unmarshal(data, &chart); err != nil {
		return nil, fmt.Errorf("failed to parse chart file %q: %w", path, err)
	}

	if chart.ID == "" {
		// Fall back to the file name so records stay traceable.
		chart.ID = filepath.Base(path)
	}

	s.logger.Debug("loaded chart file",
		"path", path,
		"chart_id", chart.ID,
		"timeline_len", len(chart.AspectTimeline),
	)

	return &chart, nil
}

// Watch watches the configured path for file system changes and sends events
// on the returned channel. The channel is closed when the context is
// cancelled.
func (s *FileSource) Watch(ctx context.Context) (<-chan ChartEvent, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	// Watch the directory containing a single file, otherwise the dir
	// itself. fsnotify delivers reliable events at the directory level.
	watchPath := s.path
	if info, err := os.Stat(s.path); err == nil && !info.IsDir() {
		watchPath = filepath.Dir(s.path)
	}

	if err := watcher.Add(watchPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch path %q: %w", watchPath, err)
	}

	eventCh := make(chan ChartEvent)

	go func() {
		defer close(eventCh)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				chartEvent, relevant := s.translateEvent(event)
				if !relevant {
					continue
				}
				select {
				case eventCh <- chartEvent:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case eventCh <- ChartEvent{Error: err}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	s.logger.Info("chart file watcher started", "path", watchPath)

	return eventCh, nil
}

// translateEvent converts an fsnotify event into a chart event, filtering
// out non-YAML files and operations the caller does not care about.
func (s *FileSource) translateEvent(event fsnotify.Event) (ChartEvent, bool) {
	ext := filepath.Ext(event.Name)
	if ext != ".yaml" && ext != ".yml" {
		return ChartEvent{}, false
	}

	switch {
	case event.Op.Has(fsnotify.Create):
		return ChartEvent{Type: ChartEventCreated, Path: event.Name}, true
	case event.Op.Has(fsnotify.Write):
		return ChartEvent{Type: ChartEventModified, Path: event.Name}, true
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		return ChartEvent{Type: ChartEventDeleted, Path: event.Name}, true
	default:
		return ChartEvent{}, false
	}
}
