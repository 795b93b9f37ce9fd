package storage

import (
	"context"
	"sort"
	"sync"

	"stellium-hq/horarium/pkg/evidence"
)

// MemoryStorage implements the Storage interface using an in-memory map.
// This implementation is intended for testing only and should not be used in
// production.
type MemoryStorage struct {
	records map[string]*evidence.VerdictRecord
	mu      sync.RWMutex
}

// NewMemoryStorage creates a new in-memory storage backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		records: make(map[string]*evidence.VerdictRecord),
	}
}

// Store persists a verdict record to memory.
func (s *MemoryStorage) Store(ctx context.Context, record *evidence.VerdictRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy to avoid mutation through the caller's pointer
	recordCopy := *record
	s.records[record.ID] = &recordCopy

	return nil
}

// Query retrieves verdict records matching the query filters.
func (s *MemoryStorage) Query(ctx context.Context, query *evidence.Query) ([]*evidence.VerdictRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*evidence.VerdictRecord, 0)

	for _, record := range s.records {
		if matchesQuery(record, query) {
			recordCopy := *record
			results = append(results, &recordCopy)
		}
	}

	sortRecords(results, query)

	// Apply pagination
	start := query.Offset
	if start > len(results) {
		return []*evidence.VerdictRecord{}, nil
	}

	if query.Limit > 0 {
		end := start + query.Limit
		if end > len(results) {
			end = len(results)
		}
		results = results[start:end]
	} else if start > 0 {
		results = results[start:]
	}

	return results, nil
}

// Count returns the number of verdict records matching the query filters.
func (s *MemoryStorage) Count(ctx context.Context, query *evidence.Query) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, record := range s.records {
		if matchesQuery(record, query) {
			count++
		}
	}

	return count, nil
}

// Delete removes verdict records matching the query filters.
func (s *MemoryStorage) Delete(ctx context.Context, query *evidence.Query) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, record := range s.records {
		if matchesQuery(record, query) {
			delete(s.records, id)
			deleted++
		}
	}

	return deleted, nil
}

// Close releases resources held by the storage backend.
func (s *MemoryStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]*evidence.VerdictRecord)
	return nil
}

// matchesQuery checks if a record matches the query filters.
func matchesQuery(record *evidence.VerdictRecord, query *evidence.Query) bool {
	if query == nil {
		return true
	}

	if query.StartTime != nil && record.EvaluatedAt.Before(*query.StartTime) {
		return false
	}
	if query.EndTime != nil && record.EvaluatedAt.After(*query.EndTime) {
		return false
	}

	if query.ChartID != "" && record.ChartID != query.ChartID {
		return false
	}
	if query.Querent != "" && record.Querent != query.Querent {
		return false
	}
	if query.Verdict != "" && record.Verdict != query.Verdict {
		return false
	}

	if query.MinConfidence != nil && record.Confidence < *query.MinConfidence {
		return false
	}
	if query.MaxConfidence != nil && record.Confidence > *query.MaxConfidence {
		return false
	}

	return true
}

// sortRecords orders results according to the query. The default order is
// newest first.
func sortRecords(records []*evidence.VerdictRecord, query *evidence.Query) {
	asc := query.SortOrder == "asc"

	switch query.SortBy {
	case "confidence":
		sort.Slice(records, func(i, j int) bool {
			if asc {
				return records[i].Confidence < records[j].Confidence
			}
			return records[i].Confidence > records[j].Confidence
		})
	default:
		sort.Slice(records, func(i, j int) bool {
			if asc {
				return records[i].EvaluatedAt.Before(records[j].EvaluatedAt)
			}
			return records[i].EvaluatedAt.After(records[j].EvaluatedAt)
		})
	}
}
