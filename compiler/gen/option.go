package gen

import (
	"fmt"
	"strings"
)

// Option configures graph construction.
type Option func(*Config) error

// Config holds the settings that shape the emitted import statements.
// A zero Config is usable; Defaults fills the conventional paths.
type Config struct {
	// InputTypePath is the relative import path of the directory holding
	// the generated input-type schemas.
	InputTypePath string
	// ClientPath is the import path of the generated database client.
	ClientPath string
	// Parser extracts documentation directives during model construction.
	Parser DirectiveParser
}

// Defaults fills unset options with their conventional values.
func (c *Config) Defaults() {
	if c.InputTypePath == "" {
		c.InputTypePath = "../inputTypeSchemas"
	}
	if c.ClientPath == "" {
		c.ClientPath = "@prisma/client"
	}
	if c.Parser == nil {
		c.Parser = NewDirectiveParser()
	}
}

// WithInputTypePath sets the relative import path of the input-type schemas
// directory. The path must be relative, matching the layout of the generated
// output tree.
func WithInputTypePath(p string) Option {
	return func(c *Config) error {
		if p == "" {
			return NewConfigError("InputTypePath", nil, "path cannot be empty")
		}
		if !strings.HasPrefix(p, ".") {
			return NewConfigError("InputTypePath", p, "path must be relative")
		}
		c.InputTypePath = strings.TrimSuffix(p, "/")
		return nil
	}
}

// WithClientPath sets the import path of the generated database client.
func WithClientPath(p string) Option {
	return func(c *Config) error {
		if p == "" {
			return NewConfigError("ClientPath", nil, "path cannot be empty")
		}
		c.ClientPath = p
		return nil
	}
}

// WithDirectiveParser replaces the default regex-driven directive parser.
func WithDirectiveParser(p DirectiveParser) Option {
	return func(c *Config) error {
		if p == nil {
			return NewConfigError("Parser", nil, "parser cannot be nil")
		}
		c.Parser = p
		return nil
	}
}

// =============================================================================
// Import statement conventions
// =============================================================================

// nullableJSONImport is emitted for models with optional JSON fields.
func (c *Config) nullableJSONImport() string {
	return c.schemaImport("NullableJsonValue")
}

// inputJSONImport is emitted for models with required JSON fields.
func (c *Config) inputJSONImport() string {
	return c.schemaImport("InputJsonValue")
}

// clientImport is emitted for models with decimal fields, which need the
// generated database client's Decimal type at runtime.
func (c *Config) clientImport() string {
	return fmt.Sprintf("import { Prisma } from '%s'", c.ClientPath)
}

// enumSchemaImport is emitted once per enum-kind field.
func (c *Config) enumSchemaImport(enum string) string {
	return c.schemaImport(enum + "Schema")
}

// includeSchemaImport is emitted for operations that take "include" arguments
// on a model with relation fields.
func (c *Config) includeSchemaImport(model string) string {
	return c.schemaImport(model + "IncludeSchema")
}

// argTypeImport is emitted for every input type an operation argument accepts.
func (c *Config) argTypeImport(typ string) string {
	return c.schemaImport(typ + "Schema")
}

func (c *Config) schemaImport(name string) string {
	return fmt.Sprintf("import { %s } from '%s/%s'", name, c.InputTypePath, name)
}
