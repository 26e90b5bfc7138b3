package gen

import (
	"regexp"
	"strings"
)

// directiveImport is the only directive tag the generator understands.
const directiveImport = "import"

// Directive is a machine-readable marker extracted from a model's
// documentation, carrying additional import statements for the generated code.
type Directive struct {
	// Tag is the directive tag, always "import" after a successful parse.
	Tag string
	// Statements are the extracted import statements in declaration order.
	Statements []string
}

// DirectiveParser extracts at most one directive from a model's raw
// documentation. Parse returns the directive (nil when the documentation
// carries none) and the documentation with the matched directive substring
// removed. The implementation is regex-driven today; callers depend only on
// this interface so it can be replaced by a real tokenizer.
type DirectiveParser interface {
	Parse(model, doc string) (*Directive, string, error)
}

var (
	// Matches `@zod.<tag>([ ... ])` and captures the tag and the payload
	// between the brackets.
	directivePattern = regexp.MustCompile(`@zod\.(\w+)\(\[([^\]]*)\]\)`)
	// Matches one double-quoted statement element inside the payload.
	statementPattern = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
)

type regexDirectiveParser struct{}

// NewDirectiveParser returns the default regex-driven directive parser.
func NewDirectiveParser() DirectiveParser {
	return regexDirectiveParser{}
}

// Parse extracts the first directive marker from doc. A marker with a tag
// other than "import" is fatal and reports the owning model. Payload elements
// that do not match the statement pattern are dropped silently; a marker with
// no valid elements counts as "no directive", but its text is still removed
// from the returned documentation.
func (regexDirectiveParser) Parse(model, doc string) (*Directive, string, error) {
	if doc == "" {
		return nil, doc, nil
	}
	loc := directivePattern.FindStringSubmatchIndex(doc)
	if loc == nil {
		return nil, doc, nil
	}
	tag := doc[loc[2]:loc[3]]
	if tag != directiveImport {
		return nil, doc, NewDirectiveError(model, tag, "unknown directive tag, expected \"import\"")
	}
	payload := doc[loc[4]:loc[5]]
	cleared := doc[:loc[0]] + doc[loc[1]:]
	var stmts []string
	for _, m := range statementPattern.FindAllStringSubmatch(payload, -1) {
		// Normalize quote characters inside a statement to single quotes.
		stmts = append(stmts, strings.ReplaceAll(m[1], `"`, "'"))
	}
	if len(stmts) == 0 {
		return nil, cleared, nil
	}
	return &Directive{Tag: tag, Statements: stmts}, cleared, nil
}
