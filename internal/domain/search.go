package domain

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -destination mocks/mock_search_engine.go -package mocks github.com/recordhub/recordhub/internal/domain SearchEngine

// FieldMapping is one property of an index mapping
type FieldMapping struct {
	Type    string `json:"type"`
	Enabled *bool  `json:"enabled,omitempty"`
}

type IndexMapping struct {
	Properties map[string]FieldMapping `json:"properties"`
}

type TermQuery struct {
	Field string
	Value string
}

type SortField struct {
	Field string
	Desc  bool
}

// SearchRequest targets one or more indices. A nil Term matches every document.
type SearchRequest struct {
	Indices []string
	Term    *TermQuery
	Sort    []SortField
	From    int
	Size    int
}

type SearchTotal struct {
	Value    int64  `json:"value"`
	Relation string `json:"relation"`
}

type SearchHit struct {
	Index  string          `json:"_index"`
	ID     string          `json:"_id"`
	Score  *float64        `json:"_score"`
	Source json.RawMessage `json:"_source"`
	Sort   []interface{}   `json:"sort,omitempty"`
}

// SearchHits is the hit set of a search response, returned to callers as is
type SearchHits struct {
	Total    SearchTotal `json:"total"`
	MaxScore *float64    `json:"max_score"`
	Hits     []SearchHit `json:"hits"`
}

// SearchEngine is the boundary to the document store holding table rows
type SearchEngine interface {
	CreateIndex(ctx context.Context, name string, mapping IndexMapping) error
	// DeleteIndex returns ErrIndexNotFound when the index does not exist
	DeleteIndex(ctx context.Context, name string) error
	// Count sums documents across indices, skipping missing ones
	Count(ctx context.Context, indices []string) (int64, error)
	// Search returns ErrIndexNotFound when a requested index does not exist
	Search(ctx context.Context, req SearchRequest) (*SearchHits, error)
}
