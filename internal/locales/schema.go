package locales

// EntryKind classifies one schema entry as a plain value or a nested
// subtree.
type EntryKind int

const (
	EntryValue EntryKind = iota
	EntrySubkeys
)

func (k EntryKind) String() string {
	if k == EntrySubkeys {
		return shapeSubtree
	}
	return shapeLeaf
}

// LocaleValue is the classified shape of one schema entry. A leaf carries
// the interpolation keys the default locale's value requires (nil when
// none); a subtree carries its own nested schema plus the per-locale
// subtrees collected during merge, default locale first, so deeper
// diagnostics and literal emission stay possible.
type LocaleValue struct {
	Kind           EntryKind
	Interpolations []string
	Locales        []*Locale
	Keys           *BuildersKeysInner
}

// BuildersKeysInner is the validated schema for one scope: the canonical
// mapping from key to classified shape, derived solely from the default
// locale.
type BuildersKeysInner struct {
	Keys map[Key]*LocaleValue
}

func newBuildersKeysInner() *BuildersKeysInner {
	return &BuildersKeysInner{Keys: make(map[Key]*LocaleValue)}
}

// Len reports the number of entries in this scope.
func (b *BuildersKeysInner) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Keys)
}

// Get returns the classified entry for key, or nil.
func (b *BuildersKeysInner) Get(key Key) *LocaleValue {
	if b == nil {
		return nil
	}
	return b.Keys[key]
}

// BuildersKeys bundles the per-scope schemas with back-references to the
// original per-locale trees, which code generation needs to emit per-locale
// literal values. Exactly one of the namespaced or flat arms is populated.
type BuildersKeys struct {
	Namespaces    []*Namespace
	NamespaceKeys map[Key]*BuildersKeysInner

	Locales []*Locale
	Keys    *BuildersKeysInner
}

// Namespaced reports which arm is populated.
func (b *BuildersKeys) Namespaced() bool {
	return b != nil && b.NamespaceKeys != nil
}

// CheckLocales elects the default locale for every scope, builds the schema
// from it, and merges every remaining locale against that schema. The first
// locale in configuration order is the default for every scope; this is a
// global configuration invariant, not re-derived per namespace. Non-fatal
// drift accumulates in warnings; any fatal diagnostic aborts the whole
// resolution with no partial schema.
func CheckLocales(set *LocaleTreeSet, warnings *Warnings) (*BuildersKeys, error) {
	if set == nil {
		return nil, ErrEmptyTreeSet
	}

	if set.Namespaced() {
		keys := make(map[Key]*BuildersKeysInner, len(set.Namespaces))
		for _, ns := range set.Namespaces {
			inner, err := checkLocalesInner(ns.Locales, ns.Key, warnings)
			if err != nil {
				return nil, err
			}
			keys[ns.Key] = inner
		}
		return &BuildersKeys{Namespaces: set.Namespaces, NamespaceKeys: keys}, nil
	}

	inner, err := checkLocalesInner(set.Locales, Key{}, warnings)
	if err != nil {
		return nil, err
	}
	return &BuildersKeys{Locales: set.Locales, Keys: inner}, nil
}

func checkLocalesInner(localeList []*Locale, namespace Key, warnings *Warnings) (*BuildersKeysInner, error) {
	if len(localeList) == 0 {
		return nil, ErrEmptyTreeSet
	}

	defaultLocale := localeList[0]
	path := NewKeyPath(namespace)

	keys, err := defaultLocale.makeBuilderKeys(&path)
	if err != nil {
		return nil, err
	}

	for _, locale := range localeList[1:] {
		if err := locale.merge(keys, defaultLocale.Name.Name, locale.Name, &path, warnings); err != nil {
			return nil, err
		}
	}

	return keys, nil
}
