package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/pkg/cache"
	"github.com/recordhub/recordhub/pkg/logger"
	"github.com/recordhub/recordhub/pkg/tracing"
)

const defaultTableCacheTTL = 30 * time.Second

// RecordDataService reads the record index of any registered table
type RecordDataService struct {
	tables   domain.TableRepository
	engine   domain.SearchEngine
	cache    cache.Cache[*domain.Table]
	cacheTTL time.Duration
	logger   logger.Logger
	tracer   tracing.Tracer
}

type RecordDataServiceConfig struct {
	Tables   domain.TableRepository
	Engine   domain.SearchEngine
	Cache    cache.Cache[*domain.Table]
	CacheTTL time.Duration
	Logger   logger.Logger
	Tracer   tracing.Tracer
}

func NewRecordDataService(cfg RecordDataServiceConfig) *RecordDataService {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.GetTracer()
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultTableCacheTTL
	}
	return &RecordDataService{
		tables:   cfg.Tables,
		engine:   cfg.Engine,
		cache:    cfg.Cache,
		cacheTTL: ttl,
		logger:   cfg.Logger,
		tracer:   tracer,
	}
}

var _ domain.RecordDataServiceInterface = (*RecordDataService)(nil)

func (s *RecordDataService) registered(ctx context.Context, name string) (*domain.Table, error) {
	if s.cache == nil {
		return s.tables.GetTableByName(ctx, name)
	}
	return s.cache.GetOrLoad(name, s.cacheTTL, func() (*domain.Table, error) {
		return s.tables.GetTableByName(ctx, name)
	})
}

func updateTimeDesc() []domain.SortField {
	return []domain.SortField{{Field: domain.RecordUpdateTimeField, Desc: true}}
}

// List pages through the record index, newest first
func (s *RecordDataService) List(ctx context.Context, tableName string, params domain.PageParams) (*domain.SearchHits, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "RecordDataService", "List")
	defer span.End()

	if _, err := s.registered(ctx, tableName); err != nil {
		return nil, err
	}

	index := domain.RecordIndex(tableName)
	page := params.Normalize()
	hits, err := s.engine.Search(ctx, domain.SearchRequest{
		Indices: []string{index},
		Sort:    updateTimeDesc(),
		From:    page.Offset(),
		Size:    page.PageSize,
	})
	if errors.Is(err, domain.ErrIndexNotFound) {
		return nil, &domain.ErrNotFound{Entity: "index", ID: index, Message: fmt.Sprintf("index %s not found", index)}
	}
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("index", index).WithField("error", err.Error()).Error("Record search failed")
		return nil, err
	}
	return hits, nil
}

// Retrieve returns every version of the row whose S-data-id is id
func (s *RecordDataService) Retrieve(ctx context.Context, tableName, id string) (*domain.SearchHits, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "RecordDataService", "Retrieve")
	defer span.End()

	if _, err := s.registered(ctx, tableName); err != nil {
		return nil, err
	}

	index := domain.RecordIndex(tableName)
	notFound := &domain.ErrNotFound{
		Entity:  "document",
		ID:      id,
		Message: fmt.Sprintf("Document %s was not found in Type data of Index %s", id, index),
	}

	hits, err := s.engine.Search(ctx, domain.SearchRequest{
		Indices: []string{index},
		Term:    &domain.TermQuery{Field: domain.RecordIDField, Value: id},
		Sort:    updateTimeDesc(),
	})
	if errors.Is(err, domain.ErrIndexNotFound) {
		return nil, notFound
	}
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("index", index).WithField("error", err.Error()).Error("Record search failed")
		return nil, err
	}
	if len(hits.Hits) == 0 {
		return nil, notFound
	}
	return hits, nil
}
