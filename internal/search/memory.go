package search

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/recordhub/recordhub/internal/domain"
)

const defaultSearchSize = 10

// MemoryEngine is an in-process domain.SearchEngine for development and tests.
// It understands term queries and field sorts only.
type MemoryEngine struct {
	mu      sync.RWMutex
	indices map[string]*memoryIndex
}

type memoryIndex struct {
	mapping domain.IndexMapping
	docs    []memoryDoc
}

type memoryDoc struct {
	id     string
	source map[string]interface{}
	raw    json.RawMessage
}

func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{indices: make(map[string]*memoryIndex)}
}

func (m *MemoryEngine) CreateIndex(ctx context.Context, name string, mapping domain.IndexMapping) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.indices[name]; exists {
		return fmt.Errorf("create index %s: resource_already_exists_exception", name)
	}
	m.indices[name] = &memoryIndex{mapping: mapping}
	return nil
}

func (m *MemoryEngine) DeleteIndex(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.indices[name]; !exists {
		return fmt.Errorf("delete index %s: %w", name, domain.ErrIndexNotFound)
	}
	delete(m.indices, name)
	return nil
}

func (m *MemoryEngine) Count(ctx context.Context, indices []string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total int64
	for _, name := range indices {
		if idx, ok := m.indices[name]; ok {
			total += int64(len(idx.docs))
		}
	}
	return total, nil
}

func (m *MemoryEngine) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchHits, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type hit struct {
		index string
		doc   memoryDoc
	}

	var matched []hit
	for _, name := range req.Indices {
		idx, ok := m.indices[name]
		if !ok {
			return nil, fmt.Errorf("search %s: %w", name, domain.ErrIndexNotFound)
		}
		for _, doc := range idx.docs {
			if req.Term == nil || fmt.Sprint(doc.source[req.Term.Field]) == req.Term.Value {
				matched = append(matched, hit{index: name, doc: doc})
			}
		}
	}

	if len(req.Sort) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			for _, s := range req.Sort {
				c := compareValues(matched[i].doc.source[s.Field], matched[j].doc.source[s.Field])
				if c == 0 {
					continue
				}
				if s.Desc {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}

	result := &domain.SearchHits{
		Total: domain.SearchTotal{Value: int64(len(matched)), Relation: "eq"},
		Hits:  []domain.SearchHit{},
	}

	// sorted searches carry no score, like Elasticsearch
	var score *float64
	if len(req.Sort) == 0 && len(matched) > 0 {
		one := 1.0
		score = &one
		result.MaxScore = score
	}

	size := req.Size
	if size <= 0 {
		size = defaultSearchSize
	}
	from := req.From
	if from < 0 {
		from = 0
	}
	for i := from; i < len(matched) && i-from < size; i++ {
		h := matched[i]
		result.Hits = append(result.Hits, domain.SearchHit{
			Index:  h.index,
			ID:     h.doc.id,
			Score:  score,
			Source: h.doc.raw,
		})
	}

	return result, nil
}

// IndexDocument stores doc under id, replacing an existing document. An empty id gets a uuid.
func (m *MemoryEngine) IndexDocument(ctx context.Context, index, id string, doc map[string]interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	// round trip so numbers compare the same way they would after a fetch
	var source map[string]interface{}
	if err := json.Unmarshal(raw, &source); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.indices[index]
	if !ok {
		return fmt.Errorf("index document into %s: %w", index, domain.ErrIndexNotFound)
	}

	if id == "" {
		id = uuid.New().String()
	}
	for i := range idx.docs {
		if idx.docs[i].id == id {
			idx.docs[i] = memoryDoc{id: id, source: source, raw: raw}
			return nil
		}
	}
	idx.docs = append(idx.docs, memoryDoc{id: id, source: source, raw: raw})
	return nil
}

// Indices lists existing index names in order
func (m *MemoryEngine) Indices() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.indices))
	for name := range m.indices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mapping returns the mapping an index was created with
func (m *MemoryEngine) Mapping(index string) (domain.IndexMapping, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx, ok := m.indices[index]
	if !ok {
		return domain.IndexMapping{}, false
	}
	return idx.mapping, true
}

func compareValues(a, b interface{}) int {
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		}
	case nil:
		if b == nil {
			return 0
		}
		return -1
	}
	if b == nil {
		return 1
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
