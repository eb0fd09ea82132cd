package search

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/recordhub/recordhub/config"
	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/pkg/logger"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// fakeCluster answers like Elasticsearch for the routes a test registers
type fakeCluster struct {
	t        *testing.T
	mu       sync.Mutex
	requests []recordedRequest
	routes   map[string]func() (int, string)
}

func newFakeCluster(t *testing.T) (*fakeCluster, *ElasticsearchEngine) {
	fc := &fakeCluster{t: t, routes: make(map[string]func() (int, string))}
	server := httptest.NewServer(http.HandlerFunc(fc.serve))
	t.Cleanup(server.Close)

	engine, err := NewElasticsearchEngine(config.SearchConfig{Addresses: []string{server.URL}}, nil, logger.NewTestLogger(t))
	require.NoError(t, err)
	return fc, engine
}

func (fc *fakeCluster) on(method, path string, status int, body string) {
	fc.routes[method+" "+path] = func() (int, string) { return status, body }
}

func (fc *fakeCluster) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	fc.mu.Lock()
	fc.requests = append(fc.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(body)})
	fc.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	route, ok := fc.routes[r.Method+" "+r.URL.Path]
	if !ok {
		fc.t.Logf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}
	status, resp := route()
	w.WriteHeader(status)
	_, _ = w.Write([]byte(resp))
}

func (fc *fakeCluster) last() recordedRequest {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	require.NotEmpty(fc.t, fc.requests)
	return fc.requests[len(fc.requests)-1]
}

func TestElasticsearchEngine_Ping(t *testing.T) {
	fc, engine := newFakeCluster(t)
	fc.on("GET", "/", 200, `{"version":{"number":"8.18.1"}}`)

	require.NoError(t, engine.Ping(context.Background()))
}

func TestElasticsearchEngine_CreateIndex(t *testing.T) {
	fc, engine := newFakeCluster(t)
	fc.on("PUT", "/orders.", 200, `{"acknowledged":true}`)

	mapping := (&domain.Table{Name: "orders", Fields: []domain.TableField{{Name: "sku", Type: domain.FieldTypeString}}}).Mapping()
	require.NoError(t, engine.CreateIndex(context.Background(), "orders.", mapping))

	req := fc.last()
	assert.Equal(t, "keyword", gjson.Get(req.Body, "mappings.properties.sku.type").String())
	assert.Equal(t, "date", gjson.Get(req.Body, `mappings.properties.S-update-time.type`).String())
}

func TestElasticsearchEngine_CreateIndexError(t *testing.T) {
	fc, engine := newFakeCluster(t)
	fc.on("PUT", "/orders", 400, `{"error":{"type":"resource_already_exists_exception","reason":"index [orders] already exists"},"status":400}`)

	err := engine.CreateIndex(context.Background(), "orders", domain.IndexMapping{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resource_already_exists_exception")
}

func TestElasticsearchEngine_DeleteIndex(t *testing.T) {
	fc, engine := newFakeCluster(t)
	fc.on("DELETE", "/orders", 200, `{"acknowledged":true}`)
	fc.on("DELETE", "/missing", 404, `{"error":{"type":"index_not_found_exception","reason":"no such index [missing]"},"status":404}`)
	fc.on("DELETE", "/broken", 500, `{"error":{"type":"exception","reason":"boom"},"status":500}`)

	ctx := context.Background()
	require.NoError(t, engine.DeleteIndex(ctx, "orders"))

	err := engine.DeleteIndex(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrIndexNotFound))

	err = engine.DeleteIndex(ctx, "broken")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrIndexNotFound))
}

func TestElasticsearchEngine_Count(t *testing.T) {
	fc, engine := newFakeCluster(t)
	fc.on("POST", "/orders,orders.,orders../_count", 200, `{"count":3,"_shards":{"total":1}}`)
	fc.on("GET", "/orders,orders.,orders../_count", 200, `{"count":3,"_shards":{"total":1}}`)

	count, err := engine.Count(context.Background(), domain.IndexFamily("orders"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	req := fc.last()
	assert.Contains(t, req.Query, "ignore_unavailable=true")
	assert.Contains(t, req.Query, "allow_no_indices=true")
}

func TestElasticsearchEngine_Search(t *testing.T) {
	fc, engine := newFakeCluster(t)
	fc.on("POST", "/orders./_search", 200, `{
		"took": 1,
		"hits": {
			"total": {"value": 1, "relation": "eq"},
			"max_score": null,
			"hits": [{"_index": "orders.", "_id": "abc", "_score": null, "_source": {"S-data-id": "r1"}, "sort": [1704067200000]}]
		}
	}`)

	hits, err := engine.Search(context.Background(), domain.SearchRequest{
		Indices: []string{"orders."},
		Term:    &domain.TermQuery{Field: domain.RecordIDField, Value: "r1"},
		Sort:    []domain.SortField{{Field: domain.RecordUpdateTimeField, Desc: true}},
		Size:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Total.Value)
	assert.Nil(t, hits.MaxScore)
	require.Len(t, hits.Hits, 1)
	assert.Equal(t, "abc", hits.Hits[0].ID)
	assert.JSONEq(t, `{"S-data-id":"r1"}`, string(hits.Hits[0].Source))

	req := fc.last()
	assert.Equal(t, "r1", gjson.Get(req.Body, `query.term.S-data-id`).String())
	assert.Equal(t, "desc", gjson.Get(req.Body, `sort.0.S-update-time.order`).String())
	assert.Equal(t, int64(5), gjson.Get(req.Body, "size").Int())
}

func TestElasticsearchEngine_SearchMissingIndex(t *testing.T) {
	fc, engine := newFakeCluster(t)
	fc.on("POST", "/gone./_search", 404, `{"error":{"type":"index_not_found_exception","reason":"no such index [gone.]"},"status":404}`)

	_, err := engine.Search(context.Background(), domain.SearchRequest{Indices: []string{"gone."}})
	assert.True(t, errors.Is(err, domain.ErrIndexNotFound))
}

func TestSearchBody(t *testing.T) {
	body := searchBody(domain.SearchRequest{})
	assert.Contains(t, body["query"], "match_all")
	assert.NotContains(t, body, "sort")
	assert.NotContains(t, body, "from")

	body = searchBody(domain.SearchRequest{From: 10, Sort: []domain.SortField{{Field: "x"}}})
	assert.Equal(t, 10, body["from"])
	assert.Len(t, body["sort"], 1)
}
