package i18ngen

import (
	"context"

	"github.com/goliatone/go-i18n-gen/internal/codegen"
	i18ncmd "github.com/goliatone/go-i18n-gen/internal/commands/i18n"
	"github.com/goliatone/go-i18n-gen/internal/locales"
	"github.com/goliatone/go-i18n-gen/internal/logging"
	"github.com/goliatone/go-i18n-gen/internal/logging/gologger"
	"github.com/goliatone/go-i18n-gen/pkg/interfaces"
)

// Resolution exports the completed resolution pass: the validated per-scope
// schemas, the original locale trees, and every non-fatal diagnostic.
type Resolution = locales.Resolution

// Warning exports one non-fatal merge diagnostic.
type Warning = locales.Warning

// GenerateResult exports the code generation run summary.
type GenerateResult = interfaces.GenerateResult

// GeneratorService exports the code generation contract.
type GeneratorService = codegen.Service

// Module is the top level runtime facade: one configured project with its
// resolution engine and code generator wired to a shared logger provider.
type Module struct {
	cfg       Config
	provider  interfaces.LoggerProvider
	generator codegen.Service
}

// Option customises module construction.
type Option func(*Module)

// WithLoggerProvider overrides the logger provider built from the
// configuration's logging section.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// New constructs a module from a validated configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil && !cfg.Logging.Enabled {
		m.provider = noopProvider{}
	}
	if m.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	if cfg.Generator.Enabled {
		m.generator = codegen.NewService(codegen.Config{
			OutputPath:  cfg.Generator.OutputPath,
			PackageName: cfg.Generator.PackageName,
			Manifest:    cfg.Generator.Manifest,
		}, codegen.WithLogger(logging.CodegenLogger(m.provider)))
	} else {
		m.generator = codegen.NewDisabledService()
	}

	return m, nil
}

// Config returns a copy of the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// LoggerProvider exposes the module's logger provider for host integrations.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil {
		return nil
	}
	return m.provider
}

// Generator returns the configured code generation service. When the
// generator feature is disabled it returns a service whose operations fail
// with codegen.ErrServiceDisabled.
func (m *Module) Generator() GeneratorService {
	if m == nil {
		return nil
	}
	return m.generator
}

// Resolve runs one load-merge-validate pass over the configured locale tree.
func (m *Module) Resolve() (*Resolution, error) {
	logger := logging.LocalesLogger(m.provider)
	return locales.Resolve(locales.ResolveOptions{
		BaseDir:    m.cfg.LocalesDir,
		Locales:    m.cfg.Locales,
		Namespaces: m.cfg.Namespaces,
		Format:     locales.Format(m.cfg.Format),
		Reporter:   locales.LoggerReporter{Logger: logger},
		Logger:     logger,
	})
}

// Generate resolves the configured locale tree and emits the typed accessor
// package. dryRun reports the would-be output without writing anything.
func (m *Module) Generate(ctx context.Context, dryRun bool) (*GenerateResult, error) {
	res, err := m.Resolve()
	if err != nil {
		return nil, err
	}
	return m.generator.Generate(ctx, res, codegen.GenerateOptions{DryRun: dryRun})
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}

// RegisterCommands wires the module's command handlers into the provided
// registry, honouring the generator feature flag.
func (m *Module) RegisterCommands(reg i18ncmd.CommandRegistry, opts ...i18ncmd.Option) (*i18ncmd.HandlerSet, error) {
	gates := i18ncmd.FeatureGates{
		GeneratorEnabled: func() bool { return m.cfg.Generator.Enabled },
	}
	return i18ncmd.RegisterI18nCommands(reg, m.provider, gates, opts...)
}
