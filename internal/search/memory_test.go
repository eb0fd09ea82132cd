package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordhub/recordhub/internal/domain"
)

func TestMemoryEngine_IndexLifecycle(t *testing.T) {
	ctx := context.Background()
	engine := NewMemoryEngine()

	mapping := domain.IndexMapping{Properties: map[string]domain.FieldMapping{"sku": {Type: "keyword"}}}
	require.NoError(t, engine.CreateIndex(ctx, "orders", mapping))
	assert.Error(t, engine.CreateIndex(ctx, "orders", mapping))

	got, ok := engine.Mapping("orders")
	require.True(t, ok)
	assert.Equal(t, mapping, got)
	assert.Equal(t, []string{"orders"}, engine.Indices())

	require.NoError(t, engine.DeleteIndex(ctx, "orders"))
	err := engine.DeleteIndex(ctx, "orders")
	assert.True(t, errors.Is(err, domain.ErrIndexNotFound))
	assert.Empty(t, engine.Indices())
}

func TestMemoryEngine_Count(t *testing.T) {
	ctx := context.Background()
	engine := NewMemoryEngine()

	require.NoError(t, engine.CreateIndex(ctx, "a", domain.IndexMapping{}))
	require.NoError(t, engine.CreateIndex(ctx, "b", domain.IndexMapping{}))
	require.NoError(t, engine.IndexDocument(ctx, "a", "1", map[string]interface{}{"x": 1}))
	require.NoError(t, engine.IndexDocument(ctx, "b", "1", map[string]interface{}{"x": 1}))
	require.NoError(t, engine.IndexDocument(ctx, "b", "2", map[string]interface{}{"x": 2}))

	count, err := engine.Count(ctx, []string{"a", "b", "missing"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// replacing a document does not add one
	require.NoError(t, engine.IndexDocument(ctx, "b", "2", map[string]interface{}{"x": 3}))
	count, err = engine.Count(ctx, []string{"b"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMemoryEngine_IndexDocumentMissingIndex(t *testing.T) {
	err := NewMemoryEngine().IndexDocument(context.Background(), "nope", "", map[string]interface{}{})
	assert.True(t, errors.Is(err, domain.ErrIndexNotFound))
}

func TestMemoryEngine_Search(t *testing.T) {
	ctx := context.Background()
	engine := NewMemoryEngine()
	require.NoError(t, engine.CreateIndex(ctx, "orders.", domain.IndexMapping{}))

	docs := []map[string]interface{}{
		{domain.RecordIDField: "r1", domain.RecordUpdateTimeField: "2024-01-01T00:00:00Z", "qty": 1},
		{domain.RecordIDField: "r2", domain.RecordUpdateTimeField: "2024-01-03T00:00:00Z", "qty": 2},
		{domain.RecordIDField: "r1", domain.RecordUpdateTimeField: "2024-01-02T00:00:00Z", "qty": 3},
	}
	for _, d := range docs {
		require.NoError(t, engine.IndexDocument(ctx, "orders.", "", d))
	}

	t.Run("term sorted desc", func(t *testing.T) {
		hits, err := engine.Search(ctx, domain.SearchRequest{
			Indices: []string{"orders."},
			Term:    &domain.TermQuery{Field: domain.RecordIDField, Value: "r1"},
			Sort:    []domain.SortField{{Field: domain.RecordUpdateTimeField, Desc: true}},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), hits.Total.Value)
		require.Len(t, hits.Hits, 2)
		assert.Nil(t, hits.MaxScore)
		assert.Contains(t, string(hits.Hits[0].Source), `"qty":3`)
		assert.Contains(t, string(hits.Hits[1].Source), `"qty":1`)
		assert.Equal(t, "orders.", hits.Hits[0].Index)
	})

	t.Run("match all pages", func(t *testing.T) {
		hits, err := engine.Search(ctx, domain.SearchRequest{
			Indices: []string{"orders."},
			Sort:    []domain.SortField{{Field: "qty"}},
			From:    1,
			Size:    1,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), hits.Total.Value)
		require.Len(t, hits.Hits, 1)
		assert.Contains(t, string(hits.Hits[0].Source), `"qty":2`)
	})

	t.Run("negative from starts at the first hit", func(t *testing.T) {
		hits, err := engine.Search(ctx, domain.SearchRequest{
			Indices: []string{"orders."},
			Sort:    []domain.SortField{{Field: "qty"}},
			From:    -16,
			Size:    2,
		})
		require.NoError(t, err)
		require.Len(t, hits.Hits, 2)
		assert.Contains(t, string(hits.Hits[0].Source), `"qty":1`)
	})

	t.Run("no match", func(t *testing.T) {
		hits, err := engine.Search(ctx, domain.SearchRequest{
			Indices: []string{"orders."},
			Term:    &domain.TermQuery{Field: domain.RecordIDField, Value: "zzz"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), hits.Total.Value)
		assert.Empty(t, hits.Hits)
		assert.NotNil(t, hits.Hits)
	})

	t.Run("missing index", func(t *testing.T) {
		_, err := engine.Search(ctx, domain.SearchRequest{Indices: []string{"missing."}})
		assert.True(t, errors.Is(err, domain.ErrIndexNotFound))
	})
}

func TestCompareValues(t *testing.T) {
	assert.Equal(t, -1, compareValues(1.0, 2.0))
	assert.Equal(t, 1, compareValues(3.0, 2.0))
	assert.Equal(t, 0, compareValues(2.0, 2.0))
	assert.Equal(t, -1, compareValues(nil, "a"))
	assert.Equal(t, 1, compareValues("a", nil))
	assert.Equal(t, 0, compareValues(nil, nil))
	assert.Equal(t, -1, compareValues("2024-01-01", "2024-01-02"))
}

func TestMemoryEngineImplementsSearchEngine(t *testing.T) {
	var _ domain.SearchEngine = (*MemoryEngine)(nil)
	var _ domain.SearchEngine = (*ElasticsearchEngine)(nil)
}
