package search

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/openvocab/cuisearch/internal/db"
)

// mockStore implements the store interface with injectable behavior.
// ExactMatches probes run concurrently, so recorded calls are guarded.
type mockStore struct {
	mu         sync.Mutex
	tagQueries []*db.TagQuery
	rankedQ    *db.RankedQuery

	searchTagFn    func(q *db.TagQuery) (*db.SearchResult, error)
	searchRankedFn func(q *db.RankedQuery) (*db.SearchResult, error)
}

func (m *mockStore) SearchTag(_ context.Context, q *db.TagQuery) (*db.SearchResult, error) {
	m.mu.Lock()
	m.tagQueries = append(m.tagQueries, q)
	m.mu.Unlock()
	if m.searchTagFn != nil {
		return m.searchTagFn(q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) SearchRanked(_ context.Context, q *db.RankedQuery) (*db.SearchResult, error) {
	m.mu.Lock()
	m.rankedQ = q
	m.mu.Unlock()
	if m.searchRankedFn != nil {
		return m.searchRankedFn(q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) probedFields(t *testing.T) []string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	fields := make([]string, len(m.tagQueries))
	for i, q := range m.tagQueries {
		fields[i] = q.Field
	}
	return fields
}

// docEntry builds a well-formed index entry for the given concept.
func docEntry(t *testing.T, key, cui, name string, score float64) db.SearchEntry {
	t.Helper()
	raw, err := json.Marshal(conceptDoc{
		CUI:            cui,
		PreferredName:  name,
		SearchableText: name,
	})
	if err != nil {
		t.Fatalf("marshal doc: %v", err)
	}
	return db.SearchEntry{
		Key:    key,
		Score:  score,
		Fields: map[string]string{fieldDoc: string(raw)},
	}
}
