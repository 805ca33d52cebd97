package locales

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-i18n-gen/internal/logging"
	"github.com/goliatone/go-i18n-gen/pkg/interfaces"
)

// Format selects the structured-data format every locale file uses. The
// format is fixed per project, not per file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Valid reports whether the format is one of the supported values.
func (f Format) Valid() bool {
	return f == FormatJSON || f == FormatYAML
}

// Ext returns the file extension the format fixes for every locale file.
func (f Format) Ext() string {
	return string(f)
}

// Loader reads locale trees from disk. One loader performs one complete load
// pass; the shared path buffer it carries is restored around every file so
// sibling loads always observe the base path.
type Loader struct {
	format   Format
	interner *Interner
	logger   interfaces.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLoaderLogger attaches a logger used for per-file debug entries.
func WithLoaderLogger(logger interfaces.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithInterner shares an existing key intern table across load passes.
func WithInterner(interner *Interner) LoaderOption {
	return func(l *Loader) {
		if interner != nil {
			l.interner = interner
		}
	}
}

// NewLoader constructs a loader for the given format.
func NewLoader(format Format, opts ...LoaderOption) (*Loader, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("locales: unsupported file format %q, supported formats are json and yaml", format)
	}
	loader := &Loader{
		format:   format,
		interner: NewInterner(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(loader)
	}
	return loader, nil
}

// Interner exposes the loader's key intern table so configuration keys can
// share the same canonical names as parsed trees.
func (l *Loader) Interner() *Interner {
	return l.interner
}

// LoadTreeSet loads every locale file the configuration names. When
// namespaces is non-empty, files live at {base}/{locale}/{namespace}.{ext};
// otherwise at {base}/{locale}.{ext}. The first locale name is the default
// for every scope.
func (l *Loader) LoadTreeSet(baseDir string, localeNames, namespaces []string) (*LocaleTreeSet, error) {
	if len(localeNames) == 0 {
		return nil, ErrEmptyTreeSet
	}

	buf := newPathBuf(baseDir)

	if len(namespaces) > 0 {
		set := &LocaleTreeSet{Namespaces: make([]*Namespace, 0, len(namespaces))}
		for _, name := range namespaces {
			ns, err := l.loadNamespace(buf, l.interner.Intern(name), localeNames)
			if err != nil {
				return nil, err
			}
			set.Namespaces = append(set.Namespaces, ns)
		}
		return set, nil
	}

	set := &LocaleTreeSet{Locales: make([]*Locale, 0, len(localeNames))}
	for _, name := range localeNames {
		locale := l.interner.Intern(name)
		tree, err := l.loadLocale(buf, locale, Key{}, name+"."+l.format.Ext())
		if err != nil {
			return nil, err
		}
		set.Locales = append(set.Locales, tree)
	}
	return set, nil
}

func (l *Loader) loadNamespace(buf *pathBuf, key Key, localeNames []string) (*Namespace, error) {
	ns := &Namespace{Key: key, Locales: make([]*Locale, 0, len(localeNames))}
	for _, name := range localeNames {
		locale := l.interner.Intern(name)
		tree, err := l.loadLocale(buf, locale, key, name, key.Name+"."+l.format.Ext())
		if err != nil {
			return nil, err
		}
		ns.Locales = append(ns.Locales, tree)
	}
	return ns, nil
}

// loadLocale opens and decodes one locale file. The path segments pushed for
// this file are popped on every exit path, success or error.
func (l *Loader) loadLocale(buf *pathBuf, locale, namespace Key, segments ...string) (*Locale, error) {
	for _, segment := range segments {
		buf.push(segment)
	}
	defer buf.pop(len(segments))

	file := buf.path()
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, &FileNotFoundError{Path: file, Err: err}
	}

	seed := localeSeed{
		name:      locale,
		topLocale: locale,
		path:      NewKeyPath(namespace),
		interner:  l.interner,
		file:      file,
	}
	tree, err := seed.decode(data)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("locales.load.file", "file", file, "locale", locale.Name, "keys", len(tree.Keys))
	return tree, nil
}

// pathBuf is the single mutable path buffer a load pass reuses across files.
type pathBuf struct {
	segments []string
}

func newPathBuf(base string) *pathBuf {
	return &pathBuf{segments: []string{base}}
}

func (p *pathBuf) push(segment string) {
	p.segments = append(p.segments, segment)
}

func (p *pathBuf) pop(n int) {
	p.segments = p.segments[:len(p.segments)-n]
}

func (p *pathBuf) path() string {
	return filepath.Join(p.segments...)
}
