package i18ncmd

import (
	"context"
	"errors"

	"github.com/goliatone/go-i18n-gen/internal/codegen"
	"github.com/goliatone/go-i18n-gen/internal/commands"
	"github.com/goliatone/go-i18n-gen/internal/locales"
	"github.com/goliatone/go-i18n-gen/internal/logging"
	"github.com/goliatone/go-i18n-gen/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	resolveOperation  = "locales.resolve"
	generateOperation = "codegen.generate"
)

// ErrGeneratorFeatureDisabled is returned when the generator feature flag is
// disabled at runtime.
var ErrGeneratorFeatureDisabled = errors.New("i18n command: generator feature disabled")

var (
	_ command.Commander[ResolveCommand]  = (*ResolveHandler)(nil)
	_ command.Commander[GenerateCommand] = (*GenerateHandler)(nil)
)

// ResolveFunc runs one load-merge-validate pass. It exists so handlers and
// tests can substitute the resolution engine.
type ResolveFunc func(locales.ResolveOptions) (*locales.Resolution, error)

// GeneratorFactory builds a codegen service for one generation run. The
// output path and package name arrive with each command, so the service is
// constructed per message rather than per handler.
type GeneratorFactory func(codegen.Config) codegen.Service

// ResolveHandler orchestrates locale tree resolution via the shared command
// handler foundation.
type ResolveHandler struct {
	inner *commands.Handler[ResolveCommand]
}

// NewResolveHandler creates a handler bound to the supplied resolve function.
func NewResolveHandler(resolve ResolveFunc, logger interfaces.Logger, opts ...commands.HandlerOption[ResolveCommand]) *ResolveHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}
	if resolve == nil {
		resolve = locales.Resolve
	}

	exec := func(ctx context.Context, msg ResolveCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		res, err := resolve(resolveOptions(msg.LocalesDir, msg.Locales, msg.Namespaces, msg.Format, baseLogger))
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"locale_count":    len(msg.Locales),
			"namespace_count": len(msg.Namespaces),
			"warning_count":   len(res.Warnings),
		}).Info("i18n.command.resolve.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ResolveCommand]{
		commands.WithLogger[ResolveCommand](baseLogger),
		commands.WithOperation[ResolveCommand](resolveOperation),
		commands.WithMessageFields(func(msg ResolveCommand) map[string]any {
			fields := map[string]any{
				"locales_dir": msg.LocalesDir,
				"format":      msg.Format,
			}
			if len(msg.Namespaces) > 0 {
				fields["namespaces"] = len(msg.Namespaces)
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ResolveCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ResolveHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ResolveCommand].
func (h *ResolveHandler) Execute(ctx context.Context, msg ResolveCommand) error {
	return h.inner.Execute(ctx, msg)
}

// GenerateHandler orchestrates resolution plus code emission via the shared
// command handler foundation.
type GenerateHandler struct {
	inner *commands.Handler[GenerateCommand]
}

// NewGenerateHandler creates a handler bound to the supplied resolve function
// and generator factory.
func NewGenerateHandler(resolve ResolveFunc, factory GeneratorFactory, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[GenerateCommand]) *GenerateHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}
	if resolve == nil {
		resolve = locales.Resolve
	}
	if factory == nil {
		factory = func(cfg codegen.Config) codegen.Service {
			return codegen.NewService(cfg, codegen.WithLogger(baseLogger))
		}
	}

	exec := func(ctx context.Context, msg GenerateCommand) error {
		if !gates.generatorEnabled() {
			return ErrGeneratorFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		res, err := resolve(resolveOptions(msg.LocalesDir, msg.Locales, msg.Namespaces, msg.Format, baseLogger))
		if err != nil {
			return err
		}

		generator := factory(codegen.Config{
			OutputPath:  msg.OutputPath,
			PackageName: msg.PackageName,
			Manifest:    msg.Manifest,
		})
		result, err := generator.Generate(ctx, res, codegen.GenerateOptions{DryRun: msg.DryRun})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"output":        result.OutputPath,
				"bytes_written": result.BytesWritten,
				"warning_count": len(result.Warnings),
				"dry_run":       result.DryRun,
			}).Info("i18n.command.generate.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[GenerateCommand]{
		commands.WithLogger[GenerateCommand](baseLogger),
		commands.WithOperation[GenerateCommand](generateOperation),
		commands.WithMessageFields(func(msg GenerateCommand) map[string]any {
			fields := map[string]any{
				"locales_dir": msg.LocalesDir,
				"format":      msg.Format,
				"output":      msg.OutputPath,
				"package":     msg.PackageName,
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[GenerateCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GenerateHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[GenerateCommand].
func (h *GenerateHandler) Execute(ctx context.Context, msg GenerateCommand) error {
	return h.inner.Execute(ctx, msg)
}

func resolveOptions(dir string, localeNames, namespaces []string, format string, logger interfaces.Logger) locales.ResolveOptions {
	return locales.ResolveOptions{
		BaseDir:    dir,
		Locales:    localeNames,
		Namespaces: namespaces,
		Format:     locales.Format(format),
		Reporter:   locales.LoggerReporter{Logger: logger},
		Logger:     logger,
	}
}
