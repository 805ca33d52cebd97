package locales

import "strings"

// Key identifies one translation entry or path segment. Keys compare and hash
// by name, so they can be used directly as map keys across every tree in a
// run. The zero value is the absence of a key (no namespace, empty segment).
type Key struct {
	Name string
}

// NewKey builds a key from a raw name with surrounding whitespace removed.
func NewKey(name string) Key {
	return Key{Name: strings.TrimSpace(name)}
}

// IsZero reports whether the key carries no name.
func (k Key) IsZero() bool {
	return k.Name == ""
}

func (k Key) String() string {
	return k.Name
}

// Interner deduplicates key names so every tree in a run shares one backing
// string per distinct name. Locale files repeat the same keys once per
// locale; interning keeps the per-run allocation count proportional to the
// number of distinct keys instead of the number of files.
type Interner struct {
	keys map[string]Key
}

// NewInterner creates an empty intern table.
func NewInterner() *Interner {
	return &Interner{keys: make(map[string]Key)}
}

// Intern returns the canonical Key for name, allocating it on first use.
func (i *Interner) Intern(name string) Key {
	if i == nil {
		return NewKey(name)
	}
	if key, ok := i.keys[name]; ok {
		return key
	}
	key := NewKey(name)
	i.keys[key.Name] = key
	return key
}

// Len reports the number of distinct keys interned so far.
func (i *Interner) Len() int {
	if i == nil {
		return 0
	}
	return len(i.keys)
}

// KeyPath tracks the current position during recursive descent over a locale
// tree. The namespace segment is fixed at construction; key segments follow a
// strict push/pop stack discipline so that at any diagnostic emission point
// the path reflects exactly the current nesting.
type KeyPath struct {
	Namespace Key
	Keys      []Key
}

// NewKeyPath creates a path rooted at the given namespace. Pass the zero Key
// for flat (non-namespaced) projects.
func NewKeyPath(namespace Key) KeyPath {
	return KeyPath{Namespace: namespace}
}

// Push appends a key segment before descending into a child entry.
func (p *KeyPath) Push(key Key) {
	p.Keys = append(p.Keys, key)
}

// Pop removes the most recent segment. Calling Pop on an empty path is a
// programming error and panics like an out-of-range slice access would.
func (p *KeyPath) Pop() {
	p.Keys = p.Keys[:len(p.Keys)-1]
}

// Clone returns a detached copy safe to retain in a diagnostic after the
// cursor keeps moving.
func (p KeyPath) Clone() KeyPath {
	out := KeyPath{Namespace: p.Namespace}
	if len(p.Keys) > 0 {
		out.Keys = append(make([]Key, 0, len(p.Keys)), p.Keys...)
	}
	return out
}

// String renders the path as "namespace:a.b.c", omitting the namespace
// prefix when none is set.
func (p KeyPath) String() string {
	var sb strings.Builder
	if !p.Namespace.IsZero() {
		sb.WriteString(p.Namespace.Name)
		sb.WriteString(":")
	}
	for i, key := range p.Keys {
		if i > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(key.Name)
	}
	return sb.String()
}
