package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
)

//go:generate mockgen -destination mocks/mock_table_repository.go -package mocks github.com/recordhub/recordhub/internal/domain TableRepository
//go:generate mockgen -destination mocks/mock_table_service.go -package mocks github.com/recordhub/recordhub/internal/domain TableServiceInterface

// System fields present on every record document
const (
	RecordIDField         = "S-data-id"
	RecordUpdateTimeField = "S-update-time"
)

type FieldType string

const (
	FieldTypeString   FieldType = "string"
	FieldTypeText     FieldType = "text"
	FieldTypeInteger  FieldType = "integer"
	FieldTypeFloat    FieldType = "float"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeJSON     FieldType = "json"
)

// TableField is a schema hint for one column of a table
type TableField struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
}

// Table describes a dynamically defined table whose rows live in a search index family
type Table struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Fields      []TableField `json:"fields"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// IndexFamily returns the live, record and deleted indices of the table
func (t *Table) IndexFamily() []string {
	return IndexFamily(t.Name)
}

// IndexFamily returns name, name. and name..
func IndexFamily(name string) []string {
	return []string{name, name + ".", name + ".."}
}

// RecordIndex is the index the record data handler reads from
func RecordIndex(name string) string {
	return name + "."
}

var tableNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

const fieldsSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"additionalProperties": false,
		"required": ["name", "type"],
		"properties": {
			"name": {"type": "string", "pattern": "^[A-Za-z_][A-Za-z0-9_]{0,63}$"},
			"type": {"enum": ["string", "text", "integer", "float", "boolean", "datetime", "json"]},
			"required": {"type": "boolean"}
		}
	}
}`

var compiledFieldsSchema = mustCompileSchema(fieldsSchema)

func mustCompileSchema(schema string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("invalid table fields schema: %v", err))
	}
	return s
}

// ValidateTableName checks that name is usable as an index name stem
func ValidateTableName(name string) error {
	if !tableNamePattern.MatchString(name) {
		return NewValidationError("name must start with a lowercase letter and contain only lowercase letters, digits and underscores (max 63)")
	}
	return nil
}

// ValidateFields checks field definitions against the fields JSON schema and for duplicates
func ValidateFields(fields []TableField) error {
	if fields == nil {
		fields = []TableField{}
	}

	result, err := compiledFieldsSchema.Validate(gojsonschema.NewGoLoader(fields))
	if err != nil {
		return NewValidationError(fmt.Sprintf("invalid fields: %v", err))
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return NewValidationError("invalid fields: " + strings.Join(msgs, "; "))
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			return NewValidationError(fmt.Sprintf("duplicate field name: %s", f.Name))
		}
		seen[f.Name] = true
	}
	return nil
}

// Validate checks the whole table definition
func (t *Table) Validate() error {
	if err := ValidateTableName(t.Name); err != nil {
		return err
	}
	if len(t.Description) > 1024 {
		return NewValidationError("description must be at most 1024 characters")
	}
	return ValidateFields(t.Fields)
}

// Mapping builds the index mapping for the table's fields plus the system fields
func (t *Table) Mapping() IndexMapping {
	props := make(map[string]FieldMapping, len(t.Fields)+2)
	for _, f := range t.Fields {
		props[f.Name] = fieldMapping(f.Type)
	}
	props[RecordIDField] = FieldMapping{Type: "keyword"}
	props[RecordUpdateTimeField] = FieldMapping{Type: "date"}
	return IndexMapping{Properties: props}
}

func fieldMapping(t FieldType) FieldMapping {
	switch t {
	case FieldTypeString:
		return FieldMapping{Type: "keyword"}
	case FieldTypeText:
		return FieldMapping{Type: "text"}
	case FieldTypeInteger:
		return FieldMapping{Type: "long"}
	case FieldTypeFloat:
		return FieldMapping{Type: "double"}
	case FieldTypeBoolean:
		return FieldMapping{Type: "boolean"}
	case FieldTypeDatetime:
		return FieldMapping{Type: "date"}
	default:
		disabled := false
		return FieldMapping{Type: "object", Enabled: &disabled}
	}
}

type CreateTableInput struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Fields      []TableField `json:"fields"`
}

// UpdateTableInput is a PUT body, or a PATCH body when applied as partial
type UpdateTableInput struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Fields      *[]TableField `json:"fields"`
}

// Apply writes the input onto a copy of t
func (i *UpdateTableInput) Apply(t Table, partial bool) (Table, error) {
	if !partial && i.Name == nil {
		return t, NewValidationError("name is required")
	}
	if i.Name != nil {
		t.Name = *i.Name
	}
	if i.Description != nil {
		t.Description = *i.Description
	} else if !partial {
		t.Description = ""
	}
	if i.Fields != nil {
		t.Fields = append([]TableField(nil), (*i.Fields)...)
	} else if !partial {
		t.Fields = []TableField{}
	}
	return t, t.Validate()
}

type TableServiceInterface interface {
	List(ctx context.Context, params PageParams) ([]*Table, int, error)
	Get(ctx context.Context, id string) (*Table, error)
	Create(ctx context.Context, caller *User, input CreateTableInput) (*Table, error)
	Update(ctx context.Context, caller *User, id string, input UpdateTableInput, partial bool) (*Table, error)
	Delete(ctx context.Context, caller *User, id string) error
}

type TableRepository interface {
	// CreateTable returns ErrConflict when the name is taken
	CreateTable(ctx context.Context, table *Table) error
	GetTableByID(ctx context.Context, id string) (*Table, error)
	GetTableByName(ctx context.Context, name string) (*Table, error)
	ListTables(ctx context.Context, params PageParams) ([]*Table, int, error)
	UpdateTable(ctx context.Context, table *Table) error
	DeleteTable(ctx context.Context, id string) error
}
