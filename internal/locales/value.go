package locales

import (
	"sort"
	"strconv"
	"strings"
)

// ParsedValue is one parsed translation entry: literal text, a nested
// subtree, a plural-form aggregate, or the explicit "inherit from default
// locale" marker. The set of shapes is closed; every consumer switches
// exhaustively over the concrete types.
type ParsedValue interface {
	shape() string
}

// Literal is a plain text value, possibly containing `{name}` interpolation
// placeholders.
type Literal struct {
	Value string
}

// Subkeys is a nested subtree of translation entries. The nested tree keeps
// the top-level locale identity while its own name tracks the subtree key.
type Subkeys struct {
	Tree *Locale
}

// Plurals is a plural-form aggregate: an ordered list of variants selected by
// an exact count or a plural category, with an optional catch-all entry.
type Plurals struct {
	Variants []PluralVariant
}

// DefaultMarker flags an entry that inherits its value from the default
// locale. It is forbidden anywhere inside the default locale itself.
type DefaultMarker struct{}

func (*Literal) shape() string       { return shapeLeaf }
func (*Plurals) shape() string       { return shapeLeaf }
func (*Subkeys) shape() string       { return shapeSubtree }
func (*DefaultMarker) shape() string { return shapeLeaf }

const (
	shapeLeaf    = "leaf"
	shapeSubtree = "subtree"
)

// PluralVariant is one plural form. Count holds the raw selector: an integer
// literal, a CLDR category name, or empty for the catch-all form.
type PluralVariant struct {
	Count string
	Value string
}

// countInterpolation is the implicit interpolation key every plural leaf
// requires from its caller.
const countInterpolation = "count"

var pluralCategoryOrder = map[string]int{
	"zero":  0,
	"one":   1,
	"two":   2,
	"few":   3,
	"many":  4,
	"other": 5,
}

// reduceValue normalizes a parsed value to its canonical form. The rules are
// deterministic and total: plural variants sort into canonical order and a
// lone catch-all plural collapses into a literal; subtrees reduce in place.
func reduceValue(value ParsedValue) ParsedValue {
	switch v := value.(type) {
	case *Plurals:
		sortPluralVariants(v.Variants)
		if len(v.Variants) == 1 && v.Variants[0].Count == "" {
			return &Literal{Value: v.Variants[0].Value}
		}
		return v
	case *Subkeys:
		if v.Tree != nil {
			for key, child := range v.Tree.Keys {
				v.Tree.Keys[key] = reduceValue(child)
			}
		}
		return v
	default:
		return value
	}
}

// sortPluralVariants orders variants as categories in CLDR order, then exact
// counts ascending, then the catch-all form last.
func sortPluralVariants(variants []PluralVariant) {
	sort.SliceStable(variants, func(i, j int) bool {
		return pluralVariantRank(variants[i]) < pluralVariantRank(variants[j])
	})
}

func pluralVariantRank(v PluralVariant) int64 {
	if v.Count == "" {
		return 1 << 40
	}
	if rank, ok := pluralCategoryOrder[v.Count]; ok {
		return int64(rank)
	}
	if n, err := strconv.ParseInt(v.Count, 10, 32); err == nil {
		return 100 + n
	}
	return 1 << 39
}

// interpolations reports the set of interpolation keys a leaf requires,
// sorted. Nil means the leaf takes no arguments.
func interpolations(value ParsedValue) []string {
	switch v := value.(type) {
	case *Literal:
		return interpolationKeys(v.Value)
	case *Plurals:
		set := map[string]struct{}{countInterpolation: {}}
		for _, variant := range v.Variants {
			for _, key := range interpolationKeys(variant.Value) {
				set[key] = struct{}{}
			}
		}
		return sortedKeySet(set)
	default:
		return nil
	}
}

// interpolationKeys extracts `{name}` placeholders from literal text. `{{`
// and `}}` escape literal braces; anything that is not a well-formed
// identifier placeholder stays plain text.
func interpolationKeys(text string) []string {
	var set map[string]struct{}
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}
		if i+1 < len(text) && text[i+1] == '{' {
			i++
			continue
		}
		end := strings.IndexByte(text[i+1:], '}')
		if end < 0 {
			break
		}
		name := text[i+1 : i+1+end]
		if isIdentifier(name) {
			if set == nil {
				set = make(map[string]struct{})
			}
			set[name] = struct{}{}
		}
		i += end + 1
	}
	if set == nil {
		return nil
	}
	return sortedKeySet(set)
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func sortedKeySet(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// mergeValue reconciles one non-default locale value against the schema's
// classification for the same key. Leaf/subtree divergence is fatal; the
// inherit marker matches any classification because the generated output
// falls back to the default locale's value wholesale.
func mergeValue(value ParsedValue, entry *LocaleValue, defaultLocale string, topLocale Key, path *KeyPath, warnings *Warnings) error {
	switch v := value.(type) {
	case *DefaultMarker:
		return nil
	case *Literal, *Plurals:
		if entry.Kind != EntryValue {
			return &ShapeMismatchError{
				Locale:   topLocale,
				Path:     path.Clone(),
				Expected: shapeSubtree,
				Actual:   shapeLeaf,
			}
		}
		reconcileInterpolations(interpolations(v), entry.Interpolations, topLocale, path, warnings)
		return nil
	case *Subkeys:
		if entry.Kind != EntrySubkeys {
			return &ShapeMismatchError{
				Locale:   topLocale,
				Path:     path.Clone(),
				Expected: shapeLeaf,
				Actual:   shapeSubtree,
			}
		}
		entry.Locales = append(entry.Locales, v.Tree)
		return v.Tree.merge(entry.Keys, defaultLocale, topLocale, path, warnings)
	default:
		return nil
	}
}

// reconcileInterpolations enforces schema authority over interpolation keys:
// a locale may use a subset of the default leaf's placeholders, but a key the
// schema never declared is surplus and will be ignored downstream.
func reconcileInterpolations(actual, declared []string, topLocale Key, path *KeyPath, warnings *Warnings) {
	for _, key := range actual {
		if !containsString(declared, key) {
			warnings.emit(Warning{
				Kind:          SurplusInterpolation,
				LocaleName:    topLocale,
				KeyPath:       path.Clone(),
				Interpolation: key,
			})
		}
	}
}

func containsString(sorted []string, target string) bool {
	idx := sort.SearchStrings(sorted, target)
	return idx < len(sorted) && sorted[idx] == target
}
