package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/pkg/tracing"
)

const tableColumns = "id, name, description, fields, created_at, updated_at"

type tableRepository struct {
	systemDB *sql.DB
}

// NewTableRepository creates a PostgreSQL repository of table metadata
func NewTableRepository(db *sql.DB) domain.TableRepository {
	return &tableRepository{systemDB: db}
}

func scanTable(row rowScanner) (*domain.Table, error) {
	var table domain.Table
	var fields []byte
	if err := row.Scan(&table.ID, &table.Name, &table.Description, &fields, &table.CreatedAt, &table.UpdatedAt); err != nil {
		return nil, err
	}
	table.Fields = []domain.TableField{}
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &table.Fields); err != nil {
			return nil, fmt.Errorf("failed to decode fields of table %s: %w", table.Name, err)
		}
	}
	return &table, nil
}

func marshalFields(fields []domain.TableField) ([]byte, error) {
	if fields == nil {
		fields = []domain.TableField{}
	}
	return json.Marshal(fields)
}

func duplicateTable(name string) error {
	return &domain.ErrConflict{Message: fmt.Sprintf("table with this name already exists: %s", name)}
}

func (r *tableRepository) CreateTable(ctx context.Context, table *domain.Table) error {
	ctx, span := tracing.StartServiceSpan(ctx, "TableRepository", "CreateTable")
	defer span.End()

	if table.ID == "" {
		table.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	table.CreatedAt = now
	table.UpdatedAt = now

	fields, err := marshalFields(table.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode fields: %w", err)
	}

	query := `
		INSERT INTO tables (id, name, description, fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.systemDB.ExecContext(ctx, query,
		table.ID,
		table.Name,
		table.Description,
		fields,
		table.CreatedAt,
		table.UpdatedAt,
	)
	if isUniqueViolation(err) {
		tracing.MarkSpanError(ctx, err)
		return duplicateTable(table.Name)
	}
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

func (r *tableRepository) GetTableByID(ctx context.Context, id string) (*domain.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM tables WHERE id = $1`
	table, err := scanTable(r.systemDB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "table", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	return table, nil
}

func (r *tableRepository) GetTableByName(ctx context.Context, name string) (*domain.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM tables WHERE name = $1`
	table, err := scanTable(r.systemDB.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "table", ID: name, Message: fmt.Sprintf("table %s is not registered", name)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	return table, nil
}

func (r *tableRepository) ListTables(ctx context.Context, params domain.PageParams) ([]*domain.Table, int, error) {
	params = params.Normalize()

	var total int
	if err := r.systemDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM tables`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count tables: %w", err)
	}

	query := `SELECT ` + tableColumns + ` FROM tables ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.systemDB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0, params.PageSize)
	for rows.Next() {
		table, err := scanTable(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan table: %w", err)
		}
		tables = append(tables, table)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating tables: %w", err)
	}

	return tables, total, nil
}

func (r *tableRepository) UpdateTable(ctx context.Context, table *domain.Table) error {
	table.UpdatedAt = time.Now().UTC()

	fields, err := marshalFields(table.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode fields: %w", err)
	}

	query := `
		UPDATE tables
		SET name = $1, description = $2, fields = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := r.systemDB.ExecContext(ctx, query,
		table.Name,
		table.Description,
		fields,
		table.UpdatedAt,
		table.ID,
	)
	if isUniqueViolation(err) {
		return duplicateTable(table.Name)
	}
	if err != nil {
		return fmt.Errorf("failed to update table: %w", err)
	}
	return expectOneRow(result, "table", table.ID)
}

func (r *tableRepository) DeleteTable(ctx context.Context, id string) error {
	result, err := r.systemDB.ExecContext(ctx, `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}
	return expectOneRow(result, "table", id)
}
