// Package gen builds the enriched generator graph consumed by the renderer.
//
// The graph is built in one synchronous pass over a loaded DMMF document:
//
//	DMMF JSON (Prisma engine)
//	        ↓
//	   load.Document
//	        ↓
//	   Graph (models, enums, bound actions)
//	        ↓
//	   Renderer (external) reads names, flags and import sets
//
// # Key Types
//
//   - Graph: root of the run, holds models, enums and actions
//   - Model: one model node with fields partitioned by kind and its
//     deduplicated import-statement set
//   - Field: a classified field (scalar, relation or enum) with its
//     JSON/decimal/omit markers
//   - Action: one generated operation bound back to its model, with the
//     conventional argument-type name and its own import set
//   - StatementList: insertion-ordered, deduplicating set of import
//     statements
//
// Models are built before actions; action binding resolves model links
// against the complete model list, so the two-phase order is a hard
// sequencing requirement. Construction is fail-fast: a directive with an
// unknown tag or an operation name without a recognized verb aborts the run.
// Everything else (absent documentation, malformed directive elements,
// unmatched model links, verbs without argument labels) resolves to an
// empty or absent value.
package gen
