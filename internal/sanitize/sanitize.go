// Package sanitize turns registry names into constant identifiers.
package sanitize

import (
	"go/token"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NamespacePrefix is stripped from the front of a name before sanitizing.
const NamespacePrefix = "minecraft:"

// Identifier converts a namespace or display name into an upper snake case
// identifier: "minecraft:oak_log" becomes "OAK_LOG", "Stone Bricks" becomes
// "STONE_BRICKS" and "camelCase" becomes "CAMEL_CASE". Runes that cannot
// appear in an identifier are replaced with underscores. Distinct inputs may
// map to the same identifier.
func Identifier(raw string) string {
	s := strings.TrimPrefix(raw, NamespacePrefix)

	var b strings.Builder
	b.Grow(len(s) + 4)

	prev := rune(-1)
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			b.WriteByte('_')
			b.WriteRune(r)
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			// spaces, ':', '/', '.', '-'
			b.WriteByte('_')
		}
		prev = r
	}

	// Casers carry state, so one is made per call.
	return cases.Upper(language.Und).String(b.String())
}

// Valid reports whether ident can be emitted as an exported constant name.
func Valid(ident string) bool {
	return token.IsIdentifier(ident) && token.IsExported(ident)
}
