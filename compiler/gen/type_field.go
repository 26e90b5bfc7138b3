package gen

// =============================================================================
// Field methods
// =============================================================================

// IsScalar reports if this is a scalar-kind field.
func (f Field) IsScalar() bool { return f.Kind == KindScalar }

// IsRelation reports if this is a relation (object-kind) field.
func (f Field) IsRelation() bool { return f.Kind == KindObject }

// IsEnum reports if this is an enum-kind field.
func (f Field) IsEnum() bool { return f.Kind == KindEnum }

// IsJSONType reports if the field's declared type is the JSON sentinel type.
func (f Field) IsJSONType() bool { return f.Type == typeJSON }

// IsDecimalType reports if the field's declared type is the decimal sentinel
// type, which needs the generated client's Decimal at runtime.
func (f Field) IsDecimalType() bool { return f.Type == typeDecimal }

// IsOmitField reports if the field may be excluded from generated
// write-argument types. The policy is decided upstream and passed through.
func (f Field) IsOmitField() bool { return f.def.Omit }

// Nullable reports if the field can hold null in the generated schema.
// List fields are never null, they decay to an empty list.
func (f Field) Nullable() bool { return !f.Required && !f.List }

// RelationName returns the relation name connecting this field to its
// counterpart, or the empty string for non-relation fields.
func (f Field) RelationName() string { return f.def.RelationName }

// Documentation returns the raw documentation of the field.
func (f Field) Documentation() string { return f.def.Documentation }

// Property returns the camelCase property name used in generated objects.
func (f Field) Property() string { return camel(f.Name) }

// Model returns the model owning this field.
func (f Field) Model() *Model { return f.typ }
