package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	rules  = ruleset()
	titler = cases.Title(language.Und, cases.NoLower)
)

// NameVariants holds the formatted variants of a schema name. Entities carry
// this value instead of sharing name-formatting behavior through a base type.
type NameVariants struct {
	// Original is the name exactly as declared in the schema.
	Original string
	// Pascal is the PascalCase form used for generated type names.
	Pascal string
	// Camel is the camelCase form used for generated properties.
	Camel string
	// Plural is the pluralized original, used for list-shaped names.
	Plural string
}

// FormatName derives the formatted variants of the given base name.
func FormatName(name string) NameVariants {
	return NameVariants{
		Original: name,
		Pascal:   pascal(name),
		Camel:    camel(name),
		Plural:   rules.Pluralize(name),
	}
}

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	for _, w := range []string{"ID", "API", "HTTP", "JSON", "SQL", "URL", "UUID"} {
		rules.AddAcronym(w)
	}
	return rules
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// pascal converts the given name to a PascalCase identifier.
func pascal(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(titler.String(w))
	}
	return b.String()
}

// camel converts the given name to a camelCase identifier.
func camel(s string) string {
	p := pascal(s)
	if p == "" {
		return p
	}
	return strings.ToLower(p[:1]) + p[1:]
}
