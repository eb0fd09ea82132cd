package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/tidwall/gjson"

	"github.com/recordhub/recordhub/config"
	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/pkg/logger"
)

// ElasticsearchEngine implements domain.SearchEngine on an Elasticsearch cluster
type ElasticsearchEngine struct {
	client *elasticsearch.Client
	logger logger.Logger
}

// NewElasticsearchEngine creates a client for cfg. transport may be nil.
func NewElasticsearchEngine(cfg config.SearchConfig, transport http.RoundTripper, log logger.Logger) (*ElasticsearchEngine, error) {
	esCfg := elasticsearch.Config{
		Addresses: cfg.Addresses,
		Transport: transport,
	}
	if cfg.Username != "" && cfg.Password != "" {
		esCfg.Username = cfg.Username
		esCfg.Password = cfg.Password
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	return &ElasticsearchEngine{client: client, logger: log}, nil
}

// Ping checks that the cluster answers
func (e *ElasticsearchEngine) Ping(ctx context.Context) error {
	res, err := e.client.Info(e.client.Info.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error connecting to Elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error response from Elasticsearch: %s", res.String())
	}
	return nil
}

func (e *ElasticsearchEngine) CreateIndex(ctx context.Context, name string, mapping domain.IndexMapping) error {
	body, err := json.Marshal(map[string]interface{}{"mappings": mapping})
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	res, err := e.client.Indices.Create(
		name,
		e.client.Indices.Create.WithContext(ctx),
		e.client.Indices.Create.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", name, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return responseError(res, "create index "+name)
	}
	return nil
}

func (e *ElasticsearchEngine) DeleteIndex(ctx context.Context, name string) error {
	res, err := e.client.Indices.Delete(
		[]string{name},
		e.client.Indices.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to delete index %s: %w", name, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return fmt.Errorf("delete index %s: %w", name, domain.ErrIndexNotFound)
	}
	if res.IsError() {
		return responseError(res, "delete index "+name)
	}
	return nil
}

func (e *ElasticsearchEngine) Count(ctx context.Context, indices []string) (int64, error) {
	res, err := e.client.Count(
		e.client.Count.WithContext(ctx),
		e.client.Count.WithIndex(indices...),
		e.client.Count.WithIgnoreUnavailable(true),
		e.client.Count.WithAllowNoIndices(true),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to execute elasticsearch count: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read count response: %w", err)
	}
	if res.IsError() {
		return 0, fmt.Errorf("elasticsearch count error [%d]: %s", res.StatusCode, gjson.GetBytes(body, "error.reason").String())
	}

	count := gjson.GetBytes(body, "count")
	if !count.Exists() {
		return 0, fmt.Errorf("elasticsearch count response has no count")
	}
	return count.Int(), nil
}

func (e *ElasticsearchEngine) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchHits, error) {
	body, err := json.Marshal(searchBody(req))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search body: %w", err)
	}

	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(req.Indices...),
		e.client.Search.WithBody(bytes.NewReader(body)),
		e.client.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to execute elasticsearch search: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("search %s: %w", strings.Join(req.Indices, ","), domain.ErrIndexNotFound)
	}
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch search error [%d]: %s", res.StatusCode, gjson.GetBytes(raw, "error.reason").String())
	}

	hits := gjson.GetBytes(raw, "hits")
	if !hits.Exists() {
		return nil, fmt.Errorf("elasticsearch search response has no hits")
	}

	var result domain.SearchHits
	if err := json.Unmarshal([]byte(hits.Raw), &result); err != nil {
		return nil, fmt.Errorf("failed to decode search hits: %w", err)
	}
	if result.Hits == nil {
		result.Hits = []domain.SearchHit{}
	}
	return &result, nil
}

func searchBody(req domain.SearchRequest) map[string]interface{} {
	query := map[string]interface{}{"match_all": map[string]interface{}{}}
	if req.Term != nil {
		query = map[string]interface{}{
			"term": map[string]interface{}{req.Term.Field: req.Term.Value},
		}
	}

	body := map[string]interface{}{"query": query}

	if len(req.Sort) > 0 {
		sort := make([]map[string]interface{}, 0, len(req.Sort))
		for _, s := range req.Sort {
			order := "asc"
			if s.Desc {
				order = "desc"
			}
			sort = append(sort, map[string]interface{}{s.Field: map[string]string{"order": order}})
		}
		body["sort"] = sort
	}
	if req.From > 0 {
		body["from"] = req.From
	}
	if req.Size > 0 {
		body["size"] = req.Size
	}
	return body
}

func responseError(res *esapi.Response, op string) error {
	raw, _ := io.ReadAll(res.Body)
	errType := gjson.GetBytes(raw, "error.type").String()
	reason := gjson.GetBytes(raw, "error.reason").String()
	if errType == "" {
		return fmt.Errorf("%s: elasticsearch returned %d", op, res.StatusCode)
	}
	return fmt.Errorf("%s: %s: %s", op, errType, reason)
}
