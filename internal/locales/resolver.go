package locales

import (
	"github.com/goliatone/go-i18n-gen/internal/logging"
	"github.com/goliatone/go-i18n-gen/pkg/interfaces"
)

// ResolveOptions describes one load-merge-validate pass.
type ResolveOptions struct {
	// BaseDir is the directory holding locale files.
	BaseDir string
	// Locales lists locale identifiers in configuration order; the first
	// entry is the default locale for every scope.
	Locales []string
	// Namespaces, when non-empty, switches the project into namespaced
	// layout with one file per (locale, namespace) pair.
	Namespaces []string
	// Format fixes the structured-data format for every file.
	Format Format
	// Reporter, when set, observes each warning as it is emitted.
	Reporter interfaces.WarningReporter
	// Logger receives per-file debug entries. Defaults to no-op.
	Logger interfaces.Logger
}

// Resolution is a completed pass: the validated per-scope schemas, the
// original trees, and every non-fatal diagnostic the merge raised.
type Resolution struct {
	Keys     *BuildersKeys
	TreeSet  *LocaleTreeSet
	Warnings []Warning
}

// Resolve runs one complete pass: load every locale file, elect the default,
// build the schema from it, and reconcile every other locale. Every run
// starts from the files on disk and rebuilds from scratch; a fatal
// diagnostic aborts with no partial result.
func Resolve(opts ResolveOptions) (*Resolution, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	loader, err := NewLoader(opts.Format, WithLoaderLogger(logger))
	if err != nil {
		return nil, err
	}

	set, err := loader.LoadTreeSet(opts.BaseDir, opts.Locales, opts.Namespaces)
	if err != nil {
		return nil, err
	}

	warnings := NewWarnings(opts.Reporter)
	keys, err := CheckLocales(set, warnings)
	if err != nil {
		return nil, err
	}

	logger.Info("locales.resolve.completed",
		"locales", len(opts.Locales),
		"namespaces", len(opts.Namespaces),
		"warnings", warnings.Len(),
	)

	return &Resolution{
		Keys:     keys,
		TreeSet:  set,
		Warnings: warnings.All(),
	}, nil
}
