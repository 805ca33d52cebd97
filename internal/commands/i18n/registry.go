package i18ncmd

import (
	"context"

	"github.com/goliatone/go-i18n-gen/internal/commands"
	"github.com/goliatone/go-i18n-gen/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the command handlers produced by RegisterI18nCommands.
type HandlerSet struct {
	Resolve  *ResolveHandler
	Generate *GenerateHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	resolve            ResolveFunc
	factory            GeneratorFactory
	resolveHandlerOpts []commands.HandlerOption[ResolveCommand]
	genHandlerOpts     []commands.HandlerOption[GenerateCommand]
}

// WithResolveFunc substitutes the resolution engine for both handlers.
func WithResolveFunc(resolve ResolveFunc) Option {
	return func(cfg *options) {
		cfg.resolve = resolve
	}
}

// WithGeneratorFactory substitutes the codegen service constructor.
func WithGeneratorFactory(factory GeneratorFactory) Option {
	return func(cfg *options) {
		cfg.factory = factory
	}
}

// WithResolveHandlerOptions forwards options to the ResolveHandler constructor.
func WithResolveHandlerOptions(opts ...commands.HandlerOption[ResolveCommand]) Option {
	return func(cfg *options) {
		cfg.resolveHandlerOpts = append(cfg.resolveHandlerOpts, opts...)
	}
}

// WithGenerateHandlerOptions forwards options to the GenerateHandler constructor.
func WithGenerateHandlerOptions(opts ...commands.HandlerOption[GenerateCommand]) Option {
	return func(cfg *options) {
		cfg.genHandlerOpts = append(cfg.genHandlerOpts, opts...)
	}
}

// RegisterI18nCommands builds the i18n command handlers and registers them
// with the provided registry. A HandlerSet containing the constructed
// handlers is returned so callers can wire additional integrations
// (dispatcher, cron) as needed.
func RegisterI18nCommands(reg CommandRegistry, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "i18n")

	resolveHandler := NewResolveHandler(cfg.resolve, logger, cfg.resolveHandlerOpts...)
	generateHandler := NewGenerateHandler(cfg.resolve, cfg.factory, logger, gates, cfg.genHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(resolveHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(generateHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Resolve:  resolveHandler,
		Generate: generateHandler,
	}, nil
}

// RegisterGenerateCron wires the provided generate handler into a cron
// registrar using the supplied command configuration and message payload.
// The handler is executed with a background context.
func RegisterGenerateCron(reg CronRegistrar, handler *GenerateHandler, cfg command.HandlerConfig, msg GenerateCommand) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
