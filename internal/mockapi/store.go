// Package mockapi is the development-grade resource store the client talks
// to: a flat collection-of-records API with single-field equality filters
// and single-field sort, in the style of json-server. It emulates a
// query-capable backend without being one; everything richer than its two
// query forms is deliberately left to the client.
package mockapi

import (
	"context"
	"sync"
)

// Record is one schemaless document in a collection.
type Record = map[string]any

// RecordStore is the persistence behind the mock API. Implementations keep
// insertion order for List, which is what makes client-side stable sorts
// reproducible across requests.
type RecordStore interface {
	List(ctx context.Context, collection string) ([]Record, error)
	Get(ctx context.Context, collection, id string) (Record, bool, error)
	Insert(ctx context.Context, collection, id string, doc Record) (Record, error)
	// Patch shallow-merges partial into the stored record, atomically:
	// a missing record reports ok=false with the store unchanged.
	Patch(ctx context.Context, collection, id string, partial Record) (Record, bool, error)
}

// MemStore keeps every collection in memory, in insertion order.
type MemStore struct {
	mu    sync.RWMutex
	order map[string][]string
	docs  map[string]map[string]Record
}

func NewMemStore() *MemStore {
	return &MemStore{
		order: make(map[string][]string),
		docs:  make(map[string]map[string]Record),
	}
}

func (s *MemStore) List(_ context.Context, collection string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.order[collection]
	out := make([]Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneRecord(s.docs[collection][id]))
	}
	return out, nil
}

func (s *MemStore) Get(_ context.Context, collection, id string) (Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[collection][id]
	if !ok {
		return nil, false, nil
	}
	return cloneRecord(doc), true, nil
}

func (s *MemStore) Insert(_ context.Context, collection, id string, doc Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.docs[collection] == nil {
		s.docs[collection] = make(map[string]Record)
	}
	stored := cloneRecord(doc)
	stored["id"] = id
	if _, exists := s.docs[collection][id]; !exists {
		s.order[collection] = append(s.order[collection], id)
	}
	s.docs[collection][id] = stored
	return cloneRecord(stored), nil
}

func (s *MemStore) Patch(_ context.Context, collection, id string, partial Record) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[collection][id]
	if !ok {
		return nil, false, nil
	}
	merged := cloneRecord(doc)
	for key, value := range partial {
		if key == "id" {
			continue
		}
		merged[key] = value
	}
	s.docs[collection][id] = merged
	return cloneRecord(merged), true, nil
}

func cloneRecord(doc Record) Record {
	out := make(Record, len(doc))
	for key, value := range doc {
		out[key] = value
	}
	return out
}
