package codegen

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/goliatone/go-i18n-gen/internal/locales"
)

// model is the fully resolved emission plan: every scope, message, and
// per-locale literal laid out in deterministic order before a single byte of
// source is produced. Fallback to the default locale is baked in here, so the
// emitted tables are total and the generated accessors never branch on
// missing entries.
type model struct {
	packageName string
	locales     []localeEntry
	scopes      []*scopeModel
	literals    [][]string
	plurals     []pluralMessage
}

type localeEntry struct {
	name  string
	ident string
}

type scopeModel struct {
	typeName string
	messages []*messageModel
	children []*childRef
}

type childRef struct {
	key      string
	method   string
	typeName string
}

type messageModel struct {
	key         string
	method      string
	plural      bool
	index       int
	pluralIndex int
	args        []argModel
}

type argModel struct {
	name        string
	field       string
	placeholder string
}

// pluralMessage holds one plural leaf's per-locale rule lists, locale order
// matching model.locales.
type pluralMessage struct {
	rules [][]pluralRule
}

type pluralRule struct {
	exact    int64
	hasExact bool
	category string
	value    string
}

type modelBuilder struct {
	res       *locales.Resolution
	localeKey []locales.Key
	model     *model
	typeNames map[string]string
}

func buildModel(res *locales.Resolution, packageName string) (*model, error) {
	if res == nil || res.Keys == nil {
		return nil, ErrNothingToGenerate
	}

	localeList := schemaLocales(res.Keys)
	if len(localeList) == 0 {
		return nil, ErrNothingToGenerate
	}

	b := &modelBuilder{
		res:       res,
		model:     &model{packageName: packageName},
		typeNames: map[string]string{},
	}
	for _, locale := range localeList {
		b.localeKey = append(b.localeKey, locale.Name)
		b.model.locales = append(b.model.locales, localeEntry{
			name:  locale.Name.Name,
			ident: exportedIdent(locale.Name.Name),
		})
	}
	b.model.literals = make([][]string, len(localeList))

	root := &scopeModel{typeName: "Messages"}
	if err := b.claimType(root.typeName, "root scope"); err != nil {
		return nil, err
	}
	b.model.scopes = append(b.model.scopes, root)

	if res.Keys.Namespaced() {
		for _, ns := range res.Keys.Namespaces {
			inner := res.Keys.NamespaceKeys[ns.Key]
			path := locales.NewKeyPath(ns.Key)
			child, err := b.buildScope(inner, path, exportedIdent(ns.Key.Name)+"Scope")
			if err != nil {
				return nil, err
			}
			root.children = append(root.children, &childRef{
				key:      ns.Key.Name,
				method:   exportedIdent(ns.Key.Name),
				typeName: child.typeName,
			})
		}
		sortChildren(root.children)
		return b.model, nil
	}

	path := locales.NewKeyPath(locales.Key{})
	if err := b.fillScope(root, res.Keys.Keys, &path); err != nil {
		return nil, err
	}
	return b.model, nil
}

func (b *modelBuilder) buildScope(inner *locales.BuildersKeysInner, path locales.KeyPath, typeName string) (*scopeModel, error) {
	if err := b.claimType(typeName, path.String()); err != nil {
		return nil, err
	}
	scope := &scopeModel{typeName: typeName}
	b.model.scopes = append(b.model.scopes, scope)
	if err := b.fillScope(scope, inner, &path); err != nil {
		return nil, err
	}
	return scope, nil
}

func (b *modelBuilder) fillScope(scope *scopeModel, inner *locales.BuildersKeysInner, path *locales.KeyPath) error {
	methods := map[string]string{}
	for _, key := range sortedScopeKeys(inner) {
		entry := inner.Get(key)
		method := exportedIdent(key.Name)
		if method == "" {
			return &IdentifierError{Path: pathWith(path, key), Reason: "key mangles to an empty identifier"}
		}
		if prev, taken := methods[method]; taken {
			return &IdentifierError{Path: pathWith(path, key), Reason: fmt.Sprintf("identifier %s already produced by key %q", method, prev)}
		}
		methods[method] = key.Name

		path.Push(key)
		if entry.Kind == locales.EntrySubkeys {
			child, err := b.buildScope(entry.Keys, path.Clone(), scopeTypeName(path))
			if err != nil {
				path.Pop()
				return err
			}
			scope.children = append(scope.children, &childRef{
				key:      key.Name,
				method:   method,
				typeName: child.typeName,
			})
			path.Pop()
			continue
		}

		msg, err := b.buildMessage(key, method, entry, path)
		path.Pop()
		if err != nil {
			return err
		}
		scope.messages = append(scope.messages, msg)
	}

	sortChildren(scope.children)
	sort.Slice(scope.messages, func(i, j int) bool {
		return scope.messages[i].key < scope.messages[j].key
	})
	return nil
}

func (b *modelBuilder) buildMessage(key locales.Key, method string, entry *locales.LocaleValue, path *locales.KeyPath) (*messageModel, error) {
	msg := &messageModel{key: key.Name, method: method}

	defaultValue := b.res.TreeSet.GetValueAt(b.localeKey[0], path.Clone())
	_, msg.plural = defaultValue.(*locales.Plurals)

	for _, name := range entry.Interpolations {
		if msg.plural && name == "count" {
			continue
		}
		msg.args = append(msg.args, argModel{
			name:        name,
			field:       fieldIdent(name),
			placeholder: "{" + name + "}",
		})
	}

	if msg.plural {
		msg.pluralIndex = len(b.model.plurals)
		pm := pluralMessage{rules: make([][]pluralRule, len(b.localeKey))}
		defaultRules := pluralRulesFor(defaultValue)
		for i, locale := range b.localeKey {
			rules := defaultRules
			if i > 0 {
				if own := pluralRulesFor(b.res.TreeSet.GetValueAt(locale, path.Clone())); own != nil {
					rules = own
				}
			}
			pm.rules[i] = rules
		}
		b.model.plurals = append(b.model.plurals, pm)
		return msg, nil
	}

	msg.index = len(b.model.literals[0])
	defaultLiteral := literalFor(defaultValue, "")
	for i, locale := range b.localeKey {
		value := defaultLiteral
		if i > 0 {
			value = literalFor(b.res.TreeSet.GetValueAt(locale, path.Clone()), defaultLiteral)
		}
		b.model.literals[i] = append(b.model.literals[i], value)
	}
	return msg, nil
}

func (b *modelBuilder) claimType(name, owner string) error {
	if prev, taken := b.typeNames[name]; taken {
		return &IdentifierError{Path: owner, Reason: fmt.Sprintf("type %s already produced by %s", name, prev)}
	}
	b.typeNames[name] = owner
	return nil
}

// literalFor flattens a resolved value into the text the literal table holds,
// substituting fallback for anything that inherits from the default locale.
func literalFor(value locales.ParsedValue, fallback string) string {
	switch v := value.(type) {
	case *locales.Literal:
		return v.Value
	case *locales.Plurals:
		// A plain leaf in the schema but plural forms in this locale: the
		// catch-all form is the only one addressable without a count.
		for _, variant := range v.Variants {
			if variant.Count == "" {
				return variant.Value
			}
		}
		if len(v.Variants) > 0 {
			return v.Variants[len(v.Variants)-1].Value
		}
		return fallback
	default:
		return fallback
	}
}

// pluralRulesFor converts a resolved value into ordered selection rules. A
// plain literal in a plural slot behaves as a lone catch-all. Nil means the
// locale supplies nothing and inherits the default rules.
func pluralRulesFor(value locales.ParsedValue) []pluralRule {
	switch v := value.(type) {
	case *locales.Plurals:
		rules := make([]pluralRule, 0, len(v.Variants))
		for _, variant := range v.Variants {
			rule := pluralRule{value: variant.Value}
			switch {
			case variant.Count == "":
			case isPluralCategory(variant.Count):
				rule.category = variant.Count
			default:
				if n, err := strconv.ParseInt(variant.Count, 10, 64); err == nil {
					rule.exact = n
					rule.hasExact = true
				}
			}
			rules = append(rules, rule)
		}
		return rules
	case *locales.Literal:
		return []pluralRule{{value: v.Value}}
	default:
		return nil
	}
}

func isPluralCategory(name string) bool {
	switch name {
	case "zero", "one", "two", "few", "many", "other":
		return true
	}
	return false
}

func schemaLocales(keys *locales.BuildersKeys) []*locales.Locale {
	if keys.Namespaced() {
		if len(keys.Namespaces) == 0 {
			return nil
		}
		return keys.Namespaces[0].Locales
	}
	return keys.Locales
}

func sortedScopeKeys(inner *locales.BuildersKeysInner) []locales.Key {
	out := make([]locales.Key, 0, inner.Len())
	for key := range inner.Keys {
		out = append(out, key)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortChildren(children []*childRef) {
	sort.Slice(children, func(i, j int) bool { return children[i].key < children[j].key })
}

func scopeTypeName(path *locales.KeyPath) string {
	name := exportedIdent(path.Namespace.Name)
	for _, key := range path.Keys {
		name += exportedIdent(key.Name)
	}
	return name + "Scope"
}

func pathWith(path *locales.KeyPath, key locales.Key) string {
	clone := path.Clone()
	clone.Push(key)
	return clone.String()
}
