package codegen

import (
	"strings"
	"unicode"
)

// goKeywords lists identifiers the emitted code must never collide with.
var goKeywords = map[string]struct{}{
	"break": {}, "case": {}, "chan": {}, "const": {}, "continue": {},
	"default": {}, "defer": {}, "else": {}, "fallthrough": {}, "for": {},
	"func": {}, "go": {}, "goto": {}, "if": {}, "import": {},
	"interface": {}, "map": {}, "package": {}, "range": {}, "return": {},
	"select": {}, "struct": {}, "switch": {}, "type": {}, "var": {},
}

// exportedIdent converts a raw key or locale name into an exported Go
// identifier: segments split on '_', '-', '.', and spaces, each capitalized.
// Digits survive but never lead, and anything else is dropped.
func exportedIdent(name string) string {
	var sb strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.' || r == ' ':
			upperNext = true
		case unicode.IsLetter(r):
			if upperNext {
				sb.WriteRune(unicode.ToUpper(r))
				upperNext = false
			} else {
				sb.WriteRune(r)
			}
		case unicode.IsDigit(r):
			if sb.Len() == 0 {
				continue
			}
			sb.WriteRune(r)
			upperNext = true
		}
	}
	return sb.String()
}

// fieldIdent mangles an interpolation key into an exported struct field name.
func fieldIdent(name string) string {
	return exportedIdent(name)
}

// paramIdent mangles an interpolation key into an unexported parameter-safe
// identifier, suffixing keywords rather than renaming them.
func paramIdent(name string) string {
	ident := exportedIdent(name)
	if ident == "" {
		return "_"
	}
	lower := strings.ToLower(ident[:1]) + ident[1:]
	if _, reserved := goKeywords[lower]; reserved {
		return lower + "Arg"
	}
	return lower
}
