package gen

import (
	"github.com/martinc1991/zod-prisma-types/compiler/load"
)

// Field kinds as tagged in the loaded document. The kind is a pass-through
// of the upstream tag, never inferred.
const (
	KindScalar = "scalar"
	KindObject = "object"
	KindEnum   = "enum"
)

// Sentinel type names with generator-specific handling.
const (
	typeJSON    = "Json"
	typeDecimal = "Decimal"
)

// The following types and their exported fields and methods are consumed by
// the renderer to emit the generated schemas.
type (
	// Model represents one model node in the graph: its classified fields,
	// aggregate flags and the import statements its generated code needs.
	Model struct {
		cfg *Config
		def *load.Model
		// Name holds the model name as declared in the schema.
		Name string
		// Names holds the formatted name variants of the model.
		Names NameVariants
		// DBName holds the mapped database name. Empty means no mapping.
		DBName string
		// Fields holds all fields of the model in declaration order.
		Fields []*Field
		// ScalarFields, RelationFields and EnumFields partition Fields by
		// kind, preserving relative declaration order.
		ScalarFields   []*Field
		RelationFields []*Field
		EnumFields     []*Field
		// UniqueFields holds the unique-field groups of the model.
		UniqueFields [][]string
		// PrimaryKey holds the model-level primary key descriptor, if any.
		PrimaryKey *load.PrimaryKey
		// Documentation is the raw documentation with any directive text
		// removed. Empty means the model carries no documentation.
		Documentation string
		fields        map[string]*Field
		imports       *StatementList
	}

	// Field wraps a single model field with its classification metadata.
	Field struct {
		def *load.Field
		typ *Model
		// Name is the field name as declared in the schema.
		Name string
		// Kind is the field kind tag: scalar, object or enum.
		Kind string
		// Type holds the declared type name (e.g. "String", "Json", "User").
		Type string
		// Required indicates the field cannot be null.
		Required bool
		// List indicates a list-valued field.
		List bool
		// Unique indicates the field carries a unique constraint.
		Unique bool
		// ID indicates the field is the model's id field.
		ID bool
	}
)

// NewModel builds a model node and its classified fields from the loaded
// model in a single pass over its field list.
func NewModel(c *Config, def *load.Model) (*Model, error) {
	m := &Model{
		cfg:          c,
		def:          def,
		Name:         def.Name,
		Names:        FormatName(def.Name),
		DBName:       def.DBName,
		UniqueFields: def.UniqueFields,
		PrimaryKey:   def.PrimaryKey,
		Fields:       make([]*Field, 0, len(def.Fields)),
		fields:       make(map[string]*Field, len(def.Fields)),
	}
	dir, cleared, err := c.Parser.Parse(def.Name, def.Documentation)
	if err != nil {
		return nil, err
	}
	m.Documentation = cleared
	for _, f := range def.Fields {
		tf := &Field{
			def:      f,
			typ:      m,
			Name:     f.Name,
			Kind:     f.Kind,
			Type:     f.Type,
			Required: f.IsRequired,
			List:     f.IsList,
			Unique:   f.IsUnique,
			ID:       f.IsID,
		}
		m.Fields = append(m.Fields, tf)
		m.fields[tf.Name] = tf
		switch tf.Kind {
		case KindObject:
			m.RelationFields = append(m.RelationFields, tf)
		case KindEnum:
			m.EnumFields = append(m.EnumFields, tf)
		default:
			m.ScalarFields = append(m.ScalarFields, tf)
		}
	}
	m.imports = m.resolveImports(dir)
	return m, nil
}

// =============================================================================
// Model methods
// =============================================================================

// FieldByName returns the field with the given name, or nil.
func (m *Model) FieldByName(name string) *Field {
	return m.fields[name]
}

// HasRelationFields reports if the model has any relation (object) fields.
func (m *Model) HasRelationFields() bool {
	return len(m.RelationFields) > 0
}

// HasOmitFields reports if any field of the model is omit-eligible.
func (m *Model) HasOmitFields() bool {
	for _, f := range m.Fields {
		if f.IsOmitField() {
			return true
		}
	}
	return false
}

// HasDecimalFields reports if the model declares any decimal-typed field.
func (m *Model) HasDecimalFields() bool {
	for _, f := range m.Fields {
		if f.IsDecimalType() {
			return true
		}
	}
	return false
}

func (m *Model) hasOptionalJSONFields() bool {
	for _, f := range m.Fields {
		if f.IsJSONType() && !f.Required {
			return true
		}
	}
	return false
}

func (m *Model) hasRequiredJSONFields() bool {
	for _, f := range m.Fields {
		if f.IsJSONType() && f.Required {
			return true
		}
	}
	return false
}

// Imports returns the model's deduplicated import statements: directive
// statements first, then the automatic statements, in first-seen order.
func (m *Model) Imports() []string {
	return m.imports.List()
}

// resolveImports computes the model's import set. The automatic statements
// are collected in a fixed order and the directive statements are placed
// ahead of them; the list itself collapses duplicates.
func (m *Model) resolveImports(dir *Directive) *StatementList {
	stmts := NewStatementList()
	if dir != nil {
		stmts.Add(dir.Statements...)
	}
	if m.hasOptionalJSONFields() {
		stmts.Add(m.cfg.nullableJSONImport())
	}
	if m.hasRequiredJSONFields() {
		stmts.Add(m.cfg.inputJSONImport())
	}
	if m.HasDecimalFields() {
		stmts.Add(m.cfg.clientImport())
	}
	for _, f := range m.EnumFields {
		stmts.Add(m.cfg.enumSchemaImport(f.Type))
	}
	return stmts
}
