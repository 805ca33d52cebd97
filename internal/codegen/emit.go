package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
)

const generatedHeader = "// Code generated by i18ngen. DO NOT EDIT.\n\n"

// emit renders the model into formatted Go source. Emission is purely
// deterministic: the same model always produces the same bytes.
func emit(m *model) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	fmt.Fprintf(&buf, "package %s\n\n", m.packageName)

	writeImports(&buf, m)
	writeLocaleEnum(&buf, m)
	writeScopes(&buf, m)
	writeTables(&buf, m)
	writeHelpers(&buf, m)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: format output: %w", err)
	}
	return src, nil
}

func writeImports(buf *bytes.Buffer, m *model) {
	needsStrconv := len(m.plurals) > 0
	needsStrings := modelHasArgs(m)
	if !needsStrconv && !needsStrings {
		return
	}
	buf.WriteString("import (\n")
	if needsStrconv {
		buf.WriteString("\t\"strconv\"\n")
	}
	if needsStrings {
		buf.WriteString("\t\"strings\"\n")
	}
	buf.WriteString(")\n\n")
}

func writeLocaleEnum(buf *bytes.Buffer, m *model) {
	buf.WriteString("// Locale enumerates the supported locales in configuration order. The\n")
	buf.WriteString("// zero value is the default locale.\n")
	buf.WriteString("type Locale int\n\n")

	buf.WriteString("const (\n")
	for i, locale := range m.locales {
		if i == 0 {
			fmt.Fprintf(buf, "\tLocale%s Locale = iota\n", locale.ident)
			continue
		}
		fmt.Fprintf(buf, "\tLocale%s\n", locale.ident)
	}
	buf.WriteString(")\n\n")

	buf.WriteString("var localeNames = [...]string{")
	for i, locale := range m.locales {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.Quote(locale.name))
	}
	buf.WriteString("}\n\n")

	buf.WriteString("func (l Locale) String() string {\n")
	buf.WriteString("\treturn localeNames[clampLocale(l)]\n")
	buf.WriteString("}\n\n")

	fmt.Fprintf(buf, "// DefaultLocale returns the locale every lookup falls back to.\nfunc DefaultLocale() Locale {\n\treturn Locale%s\n}\n\n", m.locales[0].ident)

	buf.WriteString("// Locales lists every supported locale, default first.\nfunc Locales() []Locale {\n\treturn []Locale{")
	for i, locale := range m.locales {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "Locale%s", locale.ident)
	}
	buf.WriteString("}\n}\n\n")

	buf.WriteString("// ParseLocale maps a locale name back to its Locale. Unknown names report\n")
	buf.WriteString("// false and yield the default locale.\n")
	buf.WriteString("func ParseLocale(name string) (Locale, bool) {\n")
	buf.WriteString("\tfor i, candidate := range localeNames {\n")
	buf.WriteString("\t\tif candidate == name {\n\t\t\treturn Locale(i), true\n\t\t}\n\t}\n")
	buf.WriteString("\treturn DefaultLocale(), false\n}\n\n")

	buf.WriteString("func clampLocale(l Locale) Locale {\n")
	buf.WriteString("\tif l < 0 || int(l) >= len(localeNames) {\n\t\treturn DefaultLocale()\n\t}\n")
	buf.WriteString("\treturn l\n}\n\n")

	buf.WriteString("// Tr returns the typed message surface for the given locale.\n")
	buf.WriteString("func Tr(l Locale) Messages {\n\treturn Messages{locale: clampLocale(l)}\n}\n\n")
}

func writeScopes(buf *bytes.Buffer, m *model) {
	for _, scope := range m.scopes {
		fmt.Fprintf(buf, "type %s struct {\n\tlocale Locale\n}\n\n", scope.typeName)

		for _, child := range scope.children {
			fmt.Fprintf(buf, "// %s descends into the %q subtree.\n", child.method, child.key)
			fmt.Fprintf(buf, "func (s %s) %s() %s {\n\treturn %s{locale: s.locale}\n}\n\n",
				scope.typeName, child.method, child.typeName, child.typeName)
		}

		for _, msg := range scope.messages {
			writeMessage(buf, scope, msg)
		}
	}
}

func writeMessage(buf *bytes.Buffer, scope *scopeModel, msg *messageModel) {
	argsType := argsTypeName(scope, msg)

	var params []string
	if msg.plural {
		params = append(params, "count int")
	}
	if len(msg.args) > 0 {
		params = append(params, "args "+argsType)
	}

	fmt.Fprintf(buf, "// %s resolves the %q message.\n", msg.method, msg.key)
	fmt.Fprintf(buf, "func (s %s) %s(%s) string {\n", scope.typeName, msg.method, strings.Join(params, ", "))
	if msg.plural {
		fmt.Fprintf(buf, "\tout := selectPlural(pluralRules[%d][s.locale], count)\n", msg.pluralIndex)
		buf.WriteString("\tout = strings.ReplaceAll(out, \"{count}\", strconv.Itoa(count))\n")
		if len(msg.args) > 0 {
			writeArgReplacements(buf, msg, "out")
		}
		buf.WriteString("\treturn out\n}\n\n")
	} else if len(msg.args) > 0 {
		fmt.Fprintf(buf, "\tout := literals[s.locale][%d]\n", msg.index)
		writeArgReplacements(buf, msg, "out")
		buf.WriteString("\treturn out\n}\n\n")
	} else {
		fmt.Fprintf(buf, "\treturn literals[s.locale][%d]\n}\n\n", msg.index)
	}

	if len(msg.args) > 0 {
		fmt.Fprintf(buf, "// %s carries the interpolation values for %q.\n", argsType, msg.key)
		fmt.Fprintf(buf, "type %s struct {\n", argsType)
		for _, arg := range msg.args {
			fmt.Fprintf(buf, "\t%s string\n", arg.field)
		}
		buf.WriteString("}\n\n")
	}
}

func writeArgReplacements(buf *bytes.Buffer, msg *messageModel, varName string) {
	for _, arg := range msg.args {
		fmt.Fprintf(buf, "\t%s = strings.ReplaceAll(%s, %s, args.%s)\n",
			varName, varName, strconv.Quote(arg.placeholder), arg.field)
	}
}

func writeTables(buf *bytes.Buffer, m *model) {
	if len(m.literals[0]) > 0 {
		fmt.Fprintf(buf, "var literals = [%d][%d]string{\n", len(m.locales), len(m.literals[0]))
		for i, row := range m.literals {
			buf.WriteString("\t{")
			for j, value := range row {
				if j > 0 {
					buf.WriteString(", ")
				}
				buf.WriteString(strconv.Quote(value))
			}
			fmt.Fprintf(buf, "}, // %s\n", m.locales[i].name)
		}
		buf.WriteString("}\n\n")
	}

	if len(m.plurals) == 0 {
		return
	}

	buf.WriteString("type pluralRule struct {\n")
	buf.WriteString("\texact    int64\n")
	buf.WriteString("\thasExact bool\n")
	buf.WriteString("\tcategory string\n")
	buf.WriteString("\tvalue    string\n")
	buf.WriteString("}\n\n")

	fmt.Fprintf(buf, "var pluralRules = [%d][%d][]pluralRule{\n", len(m.plurals), len(m.locales))
	for _, pm := range m.plurals {
		buf.WriteString("\t{\n")
		for i, rules := range pm.rules {
			fmt.Fprintf(buf, "\t\t{ // %s\n", m.locales[i].name)
			for _, rule := range rules {
				buf.WriteString("\t\t\t{")
				var fields []string
				if rule.hasExact {
					fields = append(fields, fmt.Sprintf("exact: %d", rule.exact), "hasExact: true")
				}
				if rule.category != "" {
					fields = append(fields, fmt.Sprintf("category: %s", strconv.Quote(rule.category)))
				}
				fields = append(fields, fmt.Sprintf("value: %s", strconv.Quote(rule.value)))
				buf.WriteString(strings.Join(fields, ", "))
				buf.WriteString("},\n")
			}
			buf.WriteString("\t\t},\n")
		}
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n\n")
}

func writeHelpers(buf *bytes.Buffer, m *model) {
	if len(m.plurals) == 0 {
		return
	}

	buf.WriteString("func pluralCategory(count int) string {\n")
	buf.WriteString("\tswitch count {\n")
	buf.WriteString("\tcase 0:\n\t\treturn \"zero\"\n")
	buf.WriteString("\tcase 1:\n\t\treturn \"one\"\n")
	buf.WriteString("\tcase 2:\n\t\treturn \"two\"\n")
	buf.WriteString("\t}\n\treturn \"other\"\n}\n\n")

	buf.WriteString("func selectPlural(rules []pluralRule, count int) string {\n")
	buf.WriteString("\tcategory := pluralCategory(count)\n")
	buf.WriteString("\tfallback := \"\"\n")
	buf.WriteString("\thaveFallback := false\n")
	buf.WriteString("\tfor _, rule := range rules {\n")
	buf.WriteString("\t\tswitch {\n")
	buf.WriteString("\t\tcase rule.hasExact:\n")
	buf.WriteString("\t\t\tif rule.exact == int64(count) {\n\t\t\t\treturn rule.value\n\t\t\t}\n")
	buf.WriteString("\t\tcase rule.category != \"\":\n")
	buf.WriteString("\t\t\tif rule.category == category {\n\t\t\t\treturn rule.value\n\t\t\t}\n")
	buf.WriteString("\t\tdefault:\n")
	buf.WriteString("\t\t\tfallback = rule.value\n")
	buf.WriteString("\t\t\thaveFallback = true\n")
	buf.WriteString("\t\t}\n\t}\n")
	buf.WriteString("\tif haveFallback {\n\t\treturn fallback\n\t}\n")
	buf.WriteString("\tif len(rules) > 0 {\n\t\treturn rules[len(rules)-1].value\n\t}\n")
	buf.WriteString("\treturn \"\"\n}\n")
}

func argsTypeName(scope *scopeModel, msg *messageModel) string {
	prefix := strings.TrimSuffix(scope.typeName, "Scope")
	if scope.typeName == "Messages" {
		prefix = ""
	}
	return prefix + msg.method + "Args"
}

func modelHasArgs(m *model) bool {
	for _, scope := range m.scopes {
		for _, msg := range scope.messages {
			if len(msg.args) > 0 {
				return true
			}
		}
	}
	return false
}
