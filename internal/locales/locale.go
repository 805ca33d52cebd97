package locales

// Locale is one locale's (or one locale's one namespace's) fully parsed
// translation tree. TopLocale carries the locale identity for the whole file:
// nested subtrees keep it while their own Name tracks the subtree key, so
// diagnostics stay attributable to the file that produced them.
type Locale struct {
	Name      Key
	TopLocale Key
	Keys      map[Key]ParsedValue
}

// GetValueAt resolves the value at the given key path, descending through
// subtrees. It returns nil when the path does not lead to a value.
func (l *Locale) GetValueAt(path []Key) ParsedValue {
	if l == nil || len(path) == 0 {
		return nil
	}
	value, ok := l.Keys[path[0]]
	if !ok {
		return nil
	}
	if len(path) == 1 {
		return value
	}
	subkeys, ok := value.(*Subkeys)
	if !ok {
		return nil
	}
	return subkeys.Tree.GetValueAt(path[1:])
}

// makeBuilderKeys derives the schema for this tree. Values are reduced in
// place before classification. Finding the inherit-from-default marker at any
// depth aborts: this method only ever runs on the default locale, and there
// is nothing for the default to inherit from.
func (l *Locale) makeBuilderKeys(path *KeyPath) (*BuildersKeysInner, error) {
	keys := newBuildersKeysInner()
	for key, value := range l.Keys {
		value = reduceValue(value)
		l.Keys[key] = value

		path.Push(key)
		switch v := value.(type) {
		case *DefaultMarker:
			err := &ExplicitDefaultError{Path: path.Clone()}
			path.Pop()
			return nil, err
		case *Subkeys:
			inner, err := v.Tree.makeBuilderKeys(path)
			if err != nil {
				path.Pop()
				return nil, err
			}
			keys.Keys[key] = &LocaleValue{
				Kind:    EntrySubkeys,
				Locales: []*Locale{v.Tree},
				Keys:    inner,
			}
		default:
			keys.Keys[key] = &LocaleValue{
				Kind:           EntryValue,
				Interpolations: interpolations(value),
			}
		}
		path.Pop()
	}
	return keys, nil
}

// merge reconciles this locale against the already-built schema in two
// passes. The forward pass walks the schema's keys: present keys delegate to
// the value merge, absent ones raise a MissingKey warning. The reverse pass
// walks this locale's own keys and flags anything the schema never declared.
// Warnings accumulate; only a shape mismatch aborts.
func (l *Locale) merge(keys *BuildersKeysInner, defaultLocale string, topLocale Key, path *KeyPath, warnings *Warnings) error {
	for key, entry := range keys.Keys {
		path.Push(key)
		if value, ok := l.Keys[key]; ok {
			if err := mergeValue(value, entry, defaultLocale, topLocale, path, warnings); err != nil {
				path.Pop()
				return err
			}
		} else {
			warnings.emit(Warning{
				Kind:       MissingKey,
				LocaleName: topLocale,
				KeyPath:    path.Clone(),
			})
		}
		path.Pop()
	}

	for key := range l.Keys {
		if _, ok := keys.Keys[key]; ok {
			continue
		}
		path.Push(key)
		warnings.emit(Warning{
			Kind:       SurplusKey,
			LocaleName: topLocale,
			KeyPath:    path.Clone(),
		})
		path.Pop()
	}

	return nil
}

// Namespace is a named partition of the key space: one file per locale.
type Namespace struct {
	Key     Key
	Locales []*Locale
}

// LocaleTreeSet is the whole-project container: either a flat ordered list
// of locales or an ordered list of namespaces. The choice is fixed by
// configuration and never mixed.
type LocaleTreeSet struct {
	Namespaces []*Namespace
	Locales    []*Locale
}

// Namespaced reports whether the project partitions keys into namespaces.
func (ts *LocaleTreeSet) Namespaced() bool {
	return ts != nil && ts.Namespaces != nil
}

// GetValueAt resolves the value for (top locale, key path), honouring the
// path's namespace segment. Used by code generation to emit per-locale
// literals and default fallbacks.
func (ts *LocaleTreeSet) GetValueAt(topLocale Key, path KeyPath) ParsedValue {
	if ts == nil {
		return nil
	}

	var locale *Locale
	switch {
	case ts.Namespaced():
		if path.Namespace.IsZero() {
			return nil
		}
		for _, ns := range ts.Namespaces {
			if ns.Key == path.Namespace {
				locale = findLocale(ns.Locales, topLocale)
				break
			}
		}
	default:
		if !path.Namespace.IsZero() {
			return nil
		}
		locale = findLocale(ts.Locales, topLocale)
	}

	return locale.GetValueAt(path.Keys)
}

func findLocale(list []*Locale, name Key) *Locale {
	for _, locale := range list {
		if locale.Name == name {
			return locale
		}
	}
	return nil
}
