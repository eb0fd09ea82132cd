package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/pkg/logger"
)

// IndexProvisioner manages the live, record and deleted indices backing a table
type IndexProvisioner struct {
	engine domain.SearchEngine
	logger logger.Logger
}

func NewIndexProvisioner(engine domain.SearchEngine, log logger.Logger) *IndexProvisioner {
	return &IndexProvisioner{engine: engine, logger: log}
}

// AddTable creates the index family of table when createIndex is set.
// Indices created before a failure are removed again.
func (p *IndexProvisioner) AddTable(ctx context.Context, table *domain.Table, createIndex bool) error {
	if !createIndex {
		return nil
	}

	mapping := table.Mapping()
	family := table.IndexFamily()
	for i, name := range family {
		if err := p.engine.CreateIndex(ctx, name, mapping); err != nil {
			for _, created := range family[:i] {
				if delErr := p.engine.DeleteIndex(ctx, created); delErr != nil {
					p.logger.WithField("index", created).WithField("error", delErr.Error()).Warn("Failed to remove partially provisioned index")
				}
			}
			return fmt.Errorf("failed to create index %s: %w", name, err)
		}
	}

	p.logger.WithField("table", table.Name).Debug("Provisioned index family")
	return nil
}

// DeleteTable removes the index family of table. Missing indices are skipped.
func (p *IndexProvisioner) DeleteTable(ctx context.Context, table *domain.Table) error {
	for _, name := range table.IndexFamily() {
		err := p.engine.DeleteIndex(ctx, name)
		if errors.Is(err, domain.ErrIndexNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to delete index %s: %w", name, err)
		}
	}
	return nil
}

// IsDataRaise returns ErrTableInUse when any index of the family holds a document
func (p *IndexProvisioner) IsDataRaise(ctx context.Context, tableName string) error {
	count, err := p.engine.Count(ctx, domain.IndexFamily(tableName))
	if err != nil {
		return fmt.Errorf("failed to count documents of %s: %w", tableName, err)
	}
	if count > 0 {
		return domain.ErrTableInUse
	}
	return nil
}
