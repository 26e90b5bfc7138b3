package gen

import (
	"regexp"
	"strings"

	"github.com/martinc1991/zod-prisma-types/compiler/load"
)

// orThrowSuffix marks the throwing variants of read and write operations.
const orThrowSuffix = "OrThrow"

// actionVerbs is the closed set of verbs an operation name can contain,
// ordered by specificity: a verb that contains another verb as a substring
// must appear before it (e.g. "aggregateRaw" before "aggregate"). Detection
// is by exact substring containment, first match wins.
var actionVerbs = []string{
	"findUnique",
	"findFirst",
	"findMany",
	"findRaw",
	"createMany",
	"createOne",
	"updateMany",
	"updateOne",
	"upsertOne",
	"deleteMany",
	"deleteOne",
	"aggregateRaw",
	"aggregate",
	"groupBy",
}

// verbArgLabels maps a verb to the label used in the conventional
// argument-type name. Verbs without an entry have no argument type.
var verbArgLabels = map[string]string{
	"findUnique": "FindUnique",
	"findFirst":  "FindFirst",
	"findMany":   "FindMany",
	"createOne":  "Create",
	"createMany": "CreateMany",
	"updateOne":  "Update",
	"updateMany": "UpdateMany",
	"upsertOne":  "Upsert",
	"deleteOne":  "Delete",
	"deleteMany": "DeleteMany",
	"aggregate":  "Aggregate",
	"groupBy":    "GroupBy",
}

var (
	// Write verbs whose operations honor omit-eligible fields.
	writeActionPattern = regexp.MustCompile(`create|upsert|update|delete`)
	// Argument names that carry write payloads and get rewritten when the
	// linked model has omit-eligible fields.
	writeArgPattern = regexp.MustCompile(`create|update|upsert|delete|data`)
	// Batch operations take no "select"/"include" arguments.
	batchActionPattern = regexp.MustCompile(`createMany|updateMany|deleteMany`)
)

type (
	// Action represents one generated operation (e.g. "findManyUser"),
	// bound back to the model it operates on.
	Action struct {
		graph *Graph
		def   *load.OutputField
		// Name is the raw operation name.
		Name string
		// Verb is the matched verb contained in Name.
		Verb string
		// ModelType is Name with the verb and the "OrThrow" suffix
		// stripped, i.e. the name of the type the operation yields.
		ModelType string
		// ArgName is the conventional argument-type name. Empty when the
		// verb has no registered argument label.
		ArgName string
		// Args holds the operation arguments in declaration order.
		Args []*Arg
		// linkedModel indexes the graph's model list; -1 when no model
		// name matched. Actions never own models.
		linkedModel int
		imports     *StatementList
	}

	// Arg is a single operation argument together with the input types it
	// accepts and an optional link to the matching field on the linked model.
	Arg struct {
		def *load.SchemaArg
		// Name is the argument name.
		Name string
		// Required indicates the argument must be present.
		Required bool
		// Nullable indicates the argument accepts null.
		Nullable bool
		// InputTypes holds the accepted input types in declaration order.
		InputTypes []InputType
		// linkedField is the same-named field on the linked model, if any.
		linkedField *Field
	}

	// InputType is one accepted shape of an argument.
	InputType struct {
		// Type is the input type name.
		Type string
		// List indicates a list-valued shape.
		List bool
	}
)

// NewAction binds a generated operation to the graph. The graph's models
// must be fully built before any action is constructed.
func NewAction(g *Graph, def *load.OutputField) (*Action, error) {
	verb := matchVerb(def.Name)
	if verb == "" {
		return nil, NewActionError(def.Name, "name contains no recognized verb")
	}
	a := &Action{
		graph:       g,
		def:         def,
		Name:        def.Name,
		Verb:        verb,
		linkedModel: -1,
	}
	orThrow := strings.Contains(def.Name, orThrowSuffix)
	modelType := strings.Replace(def.Name, verb, "", 1)
	if orThrow {
		modelType = strings.Replace(modelType, orThrowSuffix, "", 1)
	}
	a.ModelType = modelType
	if label, ok := verbArgLabels[verb]; ok {
		if orThrow {
			a.ArgName = modelType + label + orThrowSuffix + "Args"
		} else {
			a.ArgName = modelType + label + "Args"
		}
	}
	// First model whose name is contained in the model type wins. The match
	// is deliberately permissive to tolerate compound and pluralized names;
	// declaration order resolves ambiguous cases like User vs UserProfile.
	for i, m := range g.Nodes {
		if strings.Contains(modelType, m.Name) {
			a.linkedModel = i
			break
		}
	}
	for _, arg := range def.Args {
		ta := &Arg{
			def:      arg,
			Name:     arg.Name,
			Required: arg.IsRequired,
			Nullable: arg.IsNullable,
		}
		for _, t := range arg.InputTypes {
			ta.InputTypes = append(ta.InputTypes, InputType{Type: t.Type, List: t.IsList})
		}
		if lm := a.LinkedModel(); lm != nil {
			ta.linkedField = lm.FieldByName(arg.Name)
		}
		a.Args = append(a.Args, ta)
	}
	a.imports = a.resolveImports()
	return a, nil
}

// matchVerb returns the first verb contained in the operation name, or the
// empty string when none matches.
func matchVerb(name string) string {
	for _, v := range actionVerbs {
		if strings.Contains(name, v) {
			return v
		}
	}
	return ""
}

// =============================================================================
// Action methods
// =============================================================================

// LinkedModel returns the model this operation is bound to, or nil. The
// lookup is by index into the owning graph; absence is a valid result.
func (a *Action) LinkedModel() *Model {
	if a.linkedModel < 0 {
		return nil
	}
	return a.graph.Nodes[a.linkedModel]
}

// OutputType returns the engine-reported result type of the operation.
func (a *Action) OutputType() load.OutputTypeRef {
	return a.def.OutputType
}

// HasOmitFields reports if this is a write operation whose linked model
// carries omit-eligible fields.
func (a *Action) HasOmitFields() bool {
	if !writeActionPattern.MatchString(a.Name) {
		return false
	}
	lm := a.LinkedModel()
	return lm != nil && lm.HasOmitFields()
}

// TakesSelectInclude reports if the operation appears in "select"/"include"
// argument generation. Batch operations do not.
func (a *Action) TakesSelectInclude() bool {
	return !batchActionPattern.MatchString(a.Name)
}

// Imports returns the operation's deduplicated import statements.
func (a *Action) Imports() []string {
	return a.imports.List()
}

// resolveImports computes the operation's import set: the linked model's
// include schema when relations can be included, then one import per
// accepted argument input type. Statements referencing the built-in Int or
// Boolean schemas have no generated counterpart and are filtered out.
func (a *Action) resolveImports() *StatementList {
	stmts := NewStatementList()
	if lm := a.LinkedModel(); lm != nil && a.TakesSelectInclude() && lm.HasRelationFields() {
		stmts.Add(a.graph.cfg.includeSchemaImport(lm.Name))
	}
	for _, arg := range a.Args {
		for _, t := range arg.InputTypes {
			stmts.Add(a.graph.cfg.argTypeImport(t.Type))
		}
	}
	return stmts.Filter(func(s string) bool {
		return !strings.Contains(s, "IntSchema") && !strings.Contains(s, "BooleanSchema")
	})
}

// WriteCustomArg reports if a custom write-argument type must be synthesized
// for this operation: the linked model has omit-eligible fields and at least
// one argument carries a write payload.
func (a *Action) WriteCustomArg() bool {
	if !a.HasOmitFields() {
		return false
	}
	for _, arg := range a.Args {
		if arg.ShouldRewrite() {
			return true
		}
	}
	return false
}

// OmitUnionString returns the union of quoted argument names that the
// synthesized type omits from the generated argument type, e.g.
// `"create" | "update"`.
func (a *Action) OmitUnionString() string {
	var names []string
	for _, arg := range a.Args {
		if arg.ShouldRewrite() {
			names = append(names, `"`+arg.Name+`"`)
		}
	}
	return strings.Join(names, " | ")
}

// CustomArgTypeFields returns the field list of the synthesized type, one
// `name: Type` entry per rewritten argument.
func (a *Action) CustomArgTypeFields() []string {
	var fields []string
	for _, arg := range a.Args {
		if arg.ShouldRewrite() {
			fields = append(fields, arg.Name+": "+arg.TypeString())
		}
	}
	return fields
}

// =============================================================================
// Arg methods
// =============================================================================

// ShouldRewrite reports if the argument carries a write payload and must be
// replaced in the synthesized argument type.
func (arg *Arg) ShouldRewrite() bool {
	return writeArgPattern.MatchString(arg.Name)
}

// LinkedField returns the same-named field on the linked model, or nil.
func (arg *Arg) LinkedField() *Field {
	return arg.linkedField
}

// HasMultipleTypes reports if the argument accepts more than one input type.
func (arg *Arg) HasMultipleTypes() bool {
	return len(arg.InputTypes) > 1
}

// TypeString renders the accepted input types as a TypeScript type
// expression: a single type name, or a `|` union, with an array marker
// appended per list-valued type.
func (arg *Arg) TypeString() string {
	parts := make([]string, 0, len(arg.InputTypes))
	for _, t := range arg.InputTypes {
		name := t.Type
		if t.List {
			name += "[]"
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, " | ")
}
