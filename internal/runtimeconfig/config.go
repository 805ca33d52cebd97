package runtimeconfig

import (
	"errors"
	"strings"
)

// ErrLocalesRequired indicates an empty locale list; the first entry doubles
// as the default locale so at least one is mandatory.
var ErrLocalesRequired = errors.New("i18n config: at least one locale is required")

// ErrLocaleNameInvalid indicates an empty or whitespace locale identifier.
var ErrLocaleNameInvalid = errors.New("i18n config: locale identifiers cannot be empty")

// ErrLocaleDuplicate indicates the same locale listed twice.
var ErrLocaleDuplicate = errors.New("i18n config: duplicate locale identifier")

// ErrNamespaceNameInvalid indicates an empty or whitespace namespace identifier.
var ErrNamespaceNameInvalid = errors.New("i18n config: namespace identifiers cannot be empty")

// ErrNamespaceDuplicate indicates the same namespace listed twice.
var ErrNamespaceDuplicate = errors.New("i18n config: duplicate namespace identifier")

var ErrLocalesDirRequired = errors.New("i18n config: locales directory is required")
var ErrFormatInvalid = errors.New("i18n config: file format must be json or yaml")
var ErrOutputPathRequired = errors.New("i18n config: generator output path is required when the generator is enabled")
var ErrPackageNameInvalid = errors.New("i18n config: generated package name must be a valid identifier")
var ErrLoggingLevelInvalid = errors.New("i18n config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("i18n config: logging format is invalid")

// Config aggregates the project settings the resolver and generator consume.
// Fields intentionally use simple types so host applications can construct
// it directly or map it from a configuration document.
type Config struct {
	// Locales lists locale identifiers in priority order; the first entry
	// is the default locale for every scope.
	Locales []string
	// Namespaces, when non-empty, switches the project into namespaced
	// layout: one file per (locale, namespace) pair.
	Namespaces []string
	// LocalesDir is the directory holding the locale files.
	LocalesDir string
	// Format is the structured-data format of every locale file: "json" or
	// "yaml".
	Format    string
	Generator GeneratorConfig
	Logging   LoggingConfig
}

// GeneratorConfig captures code generation settings.
type GeneratorConfig struct {
	Enabled bool
	// OutputPath is the Go source file the generator writes.
	OutputPath string
	// PackageName is the package clause of the generated file.
	PackageName string
	// Manifest toggles writing a build manifest next to the output.
	Manifest bool
}

// LoggingConfig captures logging adapter settings.
type LoggingConfig struct {
	Enabled   bool
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the baseline configuration: flat JSON locale files
// under ./locales, generation into ./i18n/i18n.go with manifest enabled.
func DefaultConfig() Config {
	return Config{
		LocalesDir: "locales",
		Format:     "json",
		Generator: GeneratorConfig{
			Enabled:     true,
			OutputPath:  "i18n/i18n.go",
			PackageName: "i18n",
			Manifest:    true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Format:  "console",
		},
	}
}

// DefaultLocale returns the first configured locale, the sole source of the
// schema's shape.
func (c Config) DefaultLocale() string {
	if len(c.Locales) == 0 {
		return ""
	}
	return c.Locales[0]
}

// Namespaced reports whether the project partitions keys into namespaces.
func (c Config) Namespaced() bool {
	return len(c.Namespaces) > 0
}

// Validate checks internal consistency. It returns the first violated
// sentinel so callers can branch on the failure.
func (c Config) Validate() error {
	if len(c.Locales) == 0 {
		return ErrLocalesRequired
	}
	seen := make(map[string]struct{}, len(c.Locales))
	for _, locale := range c.Locales {
		trimmed := strings.TrimSpace(locale)
		if trimmed == "" {
			return ErrLocaleNameInvalid
		}
		if _, dup := seen[trimmed]; dup {
			return ErrLocaleDuplicate
		}
		seen[trimmed] = struct{}{}
	}

	seenNS := make(map[string]struct{}, len(c.Namespaces))
	for _, ns := range c.Namespaces {
		trimmed := strings.TrimSpace(ns)
		if trimmed == "" {
			return ErrNamespaceNameInvalid
		}
		if _, dup := seenNS[trimmed]; dup {
			return ErrNamespaceDuplicate
		}
		seenNS[trimmed] = struct{}{}
	}

	if strings.TrimSpace(c.LocalesDir) == "" {
		return ErrLocalesDirRequired
	}

	switch strings.ToLower(strings.TrimSpace(c.Format)) {
	case "json", "yaml":
	default:
		return ErrFormatInvalid
	}

	if c.Generator.Enabled {
		if strings.TrimSpace(c.Generator.OutputPath) == "" {
			return ErrOutputPathRequired
		}
		if !isIdentifier(c.Generator.PackageName) {
			return ErrPackageNameInvalid
		}
	}

	if c.Logging.Enabled {
		switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
		case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
		default:
			return ErrLoggingLevelInvalid
		}
		switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
		case "", "json", "console", "pretty":
		default:
			return ErrLoggingFormatInvalid
		}
	}

	return nil
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
