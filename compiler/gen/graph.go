package gen

import (
	"github.com/martinc1991/zod-prisma-types/compiler/load"
)

// Graph holds the enriched model nodes, enums and bound operations built
// from a loaded DMMF document. A graph is constructed once per generation
// run and is immutable afterwards.
type Graph struct {
	cfg *Config
	// Nodes holds the model nodes in declaration order.
	Nodes []*Model
	// Enums holds the schema enums in declaration order.
	Enums []*Enum
	// Actions holds the bound operations in document order.
	Actions []*Action
}

// Enum represents a schema enum consumed by the renderer.
type Enum struct {
	// Name holds the enum name as declared in the schema.
	Name string
	// Names holds the formatted name variants of the enum.
	Names NameVariants
	// Values holds the member names in declaration order.
	Values []string
}

// NewGraph builds the graph from the loaded document in two phases: all
// models first, then all operations, since operation binding resolves
// against the complete model list. Construction is fail-fast; on error no
// partial graph is returned.
func NewGraph(doc *load.Document, opts ...Option) (*Graph, error) {
	cfg := &Config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	cfg.Defaults()
	g := &Graph{cfg: cfg}
	for _, m := range doc.Datamodel.Models {
		node, err := NewModel(cfg, m)
		if err != nil {
			return nil, err
		}
		g.Nodes = append(g.Nodes, node)
	}
	for _, e := range doc.Datamodel.Enums {
		ge := &Enum{
			Name:  e.Name,
			Names: FormatName(e.Name),
		}
		for _, v := range e.Values {
			ge.Values = append(ge.Values, v.Name)
		}
		g.Enums = append(g.Enums, ge)
	}
	for _, op := range doc.Schema.Operations() {
		a, err := NewAction(g, op)
		if err != nil {
			return nil, err
		}
		g.Actions = append(g.Actions, a)
	}
	return g, nil
}

// Config returns the configuration the graph was built with.
func (g *Graph) Config() *Config {
	return g.cfg
}

// ModelByName returns the model with the given name, or nil.
func (g *Graph) ModelByName(name string) *Model {
	for _, m := range g.Nodes {
		if m.Name == name {
			return m
		}
	}
	return nil
}
