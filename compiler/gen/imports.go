package gen

// StatementList is an insertion-ordered set of import statements. Statements
// are deduplicated by exact string equality; the first occurrence decides the
// position, which keeps generated output deterministic.
type StatementList struct {
	seen map[string]struct{}
	list []string
}

// NewStatementList creates a statement list seeded with the given statements.
func NewStatementList(stmts ...string) *StatementList {
	l := &StatementList{seen: make(map[string]struct{})}
	l.Add(stmts...)
	return l
}

// Add appends the given statements, skipping any that are already present.
func (l *StatementList) Add(stmts ...string) {
	for _, s := range stmts {
		if _, ok := l.seen[s]; ok {
			continue
		}
		l.seen[s] = struct{}{}
		l.list = append(l.list, s)
	}
}

// Contains reports whether the statement is present in the list.
func (l *StatementList) Contains(stmt string) bool {
	_, ok := l.seen[stmt]
	return ok
}

// Len returns the number of distinct statements.
func (l *StatementList) Len() int {
	return len(l.list)
}

// List returns the statements in insertion order. The returned slice is a
// copy and safe to retain.
func (l *StatementList) List() []string {
	out := make([]string, len(l.list))
	copy(out, l.list)
	return out
}

// Filter returns a new list holding the statements for which keep returns
// true, preserving insertion order.
func (l *StatementList) Filter(keep func(string) bool) *StatementList {
	out := NewStatementList()
	for _, s := range l.list {
		if keep(s) {
			out.Add(s)
		}
	}
	return out
}
