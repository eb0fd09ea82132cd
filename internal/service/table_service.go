package service

import (
	"context"
	"errors"
	"strings"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/pkg/cache"
	"github.com/recordhub/recordhub/pkg/logger"
	"github.com/recordhub/recordhub/pkg/tracing"
)

type TableService struct {
	repo        domain.TableRepository
	provisioner *IndexProvisioner
	cache       cache.Cache[*domain.Table]
	logger      logger.Logger
	tracer      tracing.Tracer
}

type TableServiceConfig struct {
	Repository  domain.TableRepository
	Provisioner *IndexProvisioner
	// Cache holds registered tables by name and is invalidated on every change
	Cache  cache.Cache[*domain.Table]
	Logger logger.Logger
	Tracer tracing.Tracer
}

func NewTableService(cfg TableServiceConfig) *TableService {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.GetTracer()
	}
	return &TableService{
		repo:        cfg.Repository,
		provisioner: cfg.Provisioner,
		cache:       cfg.Cache,
		logger:      cfg.Logger,
		tracer:      tracer,
	}
}

var _ domain.TableServiceInterface = (*TableService)(nil)

func (s *TableService) forget(names ...string) {
	if s.cache == nil {
		return
	}
	for _, name := range names {
		s.cache.Delete(name)
	}
}

func (s *TableService) List(ctx context.Context, params domain.PageParams) ([]*domain.Table, int, error) {
	return s.repo.ListTables(ctx, params)
}

func (s *TableService) Get(ctx context.Context, id string) (*domain.Table, error) {
	return s.repo.GetTableByID(ctx, id)
}

// Create persists the table and provisions its indices
func (s *TableService) Create(ctx context.Context, caller *domain.User, input domain.CreateTableInput) (*domain.Table, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "TableService", "Create")
	defer span.End()

	if !domain.IsAdminOrReadOnly(caller, domain.ActionCreate) {
		return nil, domain.ErrInsufficientPermissions
	}

	table := &domain.Table{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Fields:      input.Fields,
	}
	if table.Fields == nil {
		table.Fields = []domain.TableField{}
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	s.tracer.AddAttribute(ctx, "table.name", table.Name)

	if err := s.repo.CreateTable(ctx, table); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	if err := s.provisioner.AddTable(ctx, table, true); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		log := s.logger.WithField("table", table.Name).WithField("error", err.Error())
		if delErr := s.repo.DeleteTable(ctx, table.ID); delErr != nil {
			log.WithField("compensation_error", delErr.Error()).Error("Index provisioning failed and table row could not be removed")
		} else {
			log.Warn("Index provisioning failed, table row removed")
		}
		return nil, err
	}

	s.forget(table.Name)
	s.logger.WithField("table", table.Name).WithField("table_id", table.ID).Info("Table created")
	return table, nil
}

// Update rebuilds the index family of a table that holds no documents yet
func (s *TableService) Update(ctx context.Context, caller *domain.User, id string, input domain.UpdateTableInput, partial bool) (*domain.Table, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "TableService", "Update")
	defer span.End()

	if !domain.IsAdminOrReadOnly(caller, domain.ActionUpdate) {
		return nil, domain.ErrInsufficientPermissions
	}

	current, err := s.repo.GetTableByID(ctx, id)
	if err != nil {
		return nil, err
	}
	original := *current

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		input.Name = &trimmed
	}
	updated, err := input.Apply(original, partial)
	if err != nil {
		return nil, err
	}

	if err := s.provisioner.IsDataRaise(ctx, original.Name); err != nil {
		return nil, err
	}

	if updated.Name != original.Name {
		_, err := s.repo.GetTableByName(ctx, updated.Name)
		if err == nil {
			return nil, duplicateTableName(updated.Name)
		}
		var notFound *domain.ErrNotFound
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	log := s.logger.WithField("table", original.Name).WithField("table_id", id)

	if err := s.provisioner.DeleteTable(ctx, &original); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	if err := s.repo.UpdateTable(ctx, &updated); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.restoreFamily(ctx, log, &original, err)
		return nil, err
	}

	if err := s.provisioner.AddTable(ctx, &updated, true); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		rollback := original
		if rowErr := s.repo.UpdateTable(ctx, &rollback); rowErr != nil {
			log.WithField("compensation_error", rowErr.Error()).Error("Failed to restore table row after index rebuild failure")
		}
		s.restoreFamily(ctx, log, &original, err)
		s.forget(original.Name, updated.Name)
		return nil, err
	}

	s.forget(original.Name, updated.Name)
	log.WithField("new_name", updated.Name).Info("Table updated")
	return &updated, nil
}

// Delete removes the index family, then the table row
func (s *TableService) Delete(ctx context.Context, caller *domain.User, id string) (err error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "TableService", "Delete")
	defer func() { s.tracer.EndSpan(span, err) }()

	if !domain.IsAdminOrReadOnly(caller, domain.ActionDestroy) {
		return domain.ErrInsufficientPermissions
	}

	table, err := s.repo.GetTableByID(ctx, id)
	if err != nil {
		return err
	}

	log := s.logger.WithField("table", table.Name).WithField("table_id", id)

	if err = s.provisioner.DeleteTable(ctx, table); err != nil {
		return err
	}

	if err = s.repo.DeleteTable(ctx, id); err != nil {
		s.restoreFamily(ctx, log, table, err)
		return err
	}

	s.forget(table.Name)
	log.Info("Table deleted")
	return nil
}

// restoreFamily re-provisions an empty family for a row that still exists
func (s *TableService) restoreFamily(ctx context.Context, log logger.Logger, table *domain.Table, cause error) {
	log = log.WithField("error", cause.Error())
	if err := s.provisioner.AddTable(ctx, table, true); err != nil {
		log.WithField("compensation_error", err.Error()).Error("Failed to restore index family")
		return
	}
	log.Warn("Index family restored after failed table change")
}

func duplicateTableName(name string) error {
	return &domain.ErrConflict{Message: "table with this name already exists: " + name}
}
