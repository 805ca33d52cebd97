package bootstrap

import (
	"fmt"
	"strings"

	i18ngen "github.com/goliatone/go-i18n-gen"
	"github.com/goliatone/go-i18n-gen/internal/logging"
	"github.com/goliatone/go-i18n-gen/pkg/interfaces"
)

// Options captures configuration for the i18ngen CLI bootstrap. CLI flags
// override whatever the configuration file provides; empty values keep the
// file's (or default) settings.
type Options struct {
	ConfigPath     string
	LocalesDir     string
	Locales        []string
	Namespaces     []string
	Format         string
	OutputPath     string
	PackageName    string
	LogLevel       string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the configured runtime module and its CLI-scoped logger.
type Module struct {
	Module *i18ngen.Module
	Config i18ngen.Config
	Logger interfaces.Logger
}

// BuildModule constructs a runtime module for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := i18ngen.DefaultConfig()
	if trimmed := strings.TrimSpace(opts.ConfigPath); trimmed != "" {
		loaded, err := i18ngen.LoadConfig(trimmed)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if trimmed := strings.TrimSpace(opts.LocalesDir); trimmed != "" {
		cfg.LocalesDir = trimmed
	}
	if len(opts.Locales) > 0 {
		cfg.Locales = cloneStrings(opts.Locales)
	}
	if len(opts.Namespaces) > 0 {
		cfg.Namespaces = cloneStrings(opts.Namespaces)
	}
	if trimmed := strings.TrimSpace(opts.Format); trimmed != "" {
		cfg.Format = trimmed
	}
	if trimmed := strings.TrimSpace(opts.OutputPath); trimmed != "" {
		cfg.Generator.OutputPath = trimmed
	}
	if trimmed := strings.TrimSpace(opts.PackageName); trimmed != "" {
		cfg.Generator.PackageName = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}

	moduleOpts := []i18ngen.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, i18ngen.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := i18ngen.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise i18n module: %w", err)
	}

	return &Module{
		Module: module,
		Config: module.Config(),
		Logger: logging.ModuleLogger(module.LoggerProvider(), "i18n.cli"),
	}, nil
}

// SplitList parses a comma separated value list into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
