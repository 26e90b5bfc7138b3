// Package load defines the raw DMMF document shape produced by the Prisma
// engine and decoded as the generator's input.
package load

import (
	"encoding/json"
	"fmt"
)

// Document represents a DMMF document that was produced by the Prisma engine
// and handed to the generator over stdin or a file.
type Document struct {
	Datamodel Datamodel `json:"datamodel"`
	Schema    Schema    `json:"schema"`
}

// Datamodel holds the user-declared models and enums in declaration order.
type Datamodel struct {
	Models []*Model `json:"models,omitempty"`
	Enums  []*Enum  `json:"enums,omitempty"`
}

// Model represents a model block of the Prisma schema.
type Model struct {
	Name          string      `json:"name"`
	DBName        string      `json:"dbName,omitempty"`
	Fields        []*Field    `json:"fields,omitempty"`
	UniqueFields  [][]string  `json:"uniqueFields,omitempty"`
	PrimaryKey    *PrimaryKey `json:"primaryKey,omitempty"`
	Documentation string      `json:"documentation,omitempty"`
}

// PrimaryKey describes a model-level primary key (@@id).
type PrimaryKey struct {
	Name   string   `json:"name,omitempty"`
	Fields []string `json:"fields,omitempty"`
}

// Field represents a single field declaration of a model.
type Field struct {
	Name          string `json:"name"`
	Kind          string `json:"kind"` // "scalar", "object" or "enum"
	Type          string `json:"type"`
	IsRequired    bool   `json:"isRequired,omitempty"`
	IsList        bool   `json:"isList,omitempty"`
	IsUnique      bool   `json:"isUnique,omitempty"`
	IsID          bool   `json:"isId,omitempty"`
	RelationName  string `json:"relationName,omitempty"`
	Documentation string `json:"documentation,omitempty"`
	// Omit marks the field as excludable from generated write-argument
	// types. The policy is decided upstream and passed through as-is.
	Omit bool `json:"omit,omitempty"`
}

// Enum represents an enum block of the Prisma schema.
type Enum struct {
	Name   string      `json:"name"`
	Values []EnumValue `json:"values,omitempty"`
}

// EnumValue is a single member of an enum block.
type EnumValue struct {
	Name   string `json:"name"`
	DBName string `json:"dbName,omitempty"`
}

// Schema holds the generated operation surface of the DMMF document.
type Schema struct {
	OutputObjectTypes OutputObjectTypes `json:"outputObjectTypes"`
}

// OutputObjectTypes groups the engine-generated output types. Only the
// "prisma" namespace carries the Query/Mutation operation containers.
type OutputObjectTypes struct {
	Prisma []*OutputType `json:"prisma,omitempty"`
}

// OutputType is a container of generated operations, e.g. "Query" with one
// OutputField per read operation of every model.
type OutputType struct {
	Name   string         `json:"name"`
	Fields []*OutputField `json:"fields,omitempty"`
}

// OutputField represents one generated operation (e.g. "findManyUser")
// together with its arguments and result type.
type OutputField struct {
	Name       string        `json:"name"`
	Args       []*SchemaArg  `json:"args,omitempty"`
	OutputType OutputTypeRef `json:"outputType"`
}

// OutputTypeRef describes the result type of an operation.
type OutputTypeRef struct {
	Type     string `json:"type"`
	IsList   bool   `json:"isList,omitempty"`
	Location string `json:"location,omitempty"`
}

// SchemaArg represents a single argument accepted by an operation.
type SchemaArg struct {
	Name       string       `json:"name"`
	IsRequired bool         `json:"isRequired,omitempty"`
	IsNullable bool         `json:"isNullable,omitempty"`
	InputTypes []*InputType `json:"inputTypes,omitempty"`
}

// InputType is one of the types an argument accepts. Arguments that accept
// several shapes (e.g. checked and unchecked create input) carry one entry
// per shape.
type InputType struct {
	Type     string `json:"type"`
	IsList   bool   `json:"isList,omitempty"`
	Location string `json:"location,omitempty"`
}

// UnmarshalDocument decodes the given buffer to a loaded DMMF document.
func UnmarshalDocument(buf []byte) (*Document, error) {
	d := &Document{}
	if err := json.Unmarshal(buf, d); err != nil {
		return nil, err
	}
	for _, m := range d.Datamodel.Models {
		if err := m.defaults(); err != nil {
			return nil, err
		}
	}
	for _, t := range d.Schema.OutputObjectTypes.Prisma {
		if err := t.defaults(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (m *Model) defaults() error {
	if m.Name == "" {
		return fmt.Errorf("model name cannot be empty")
	}
	for _, f := range m.Fields {
		if f.Name == "" {
			return fmt.Errorf("model %q: field name cannot be empty", m.Name)
		}
		if f.Kind == "" {
			f.Kind = "scalar"
		}
	}
	return nil
}

func (t *OutputType) defaults() error {
	if t.Name == "" {
		return fmt.Errorf("output type name cannot be empty")
	}
	for _, f := range t.Fields {
		if f.Name == "" {
			return fmt.Errorf("output type %q: operation name cannot be empty", t.Name)
		}
	}
	return nil
}

// Operations returns the generated operations of the Query and Mutation
// containers, in document order. Other containers (model result types,
// aggregate payloads) are not operations and are skipped.
func (s Schema) Operations() []*OutputField {
	var ops []*OutputField
	for _, t := range s.OutputObjectTypes.Prisma {
		if t.Name != "Query" && t.Name != "Mutation" {
			continue
		}
		ops = append(ops, t.Fields...)
	}
	return ops
}
