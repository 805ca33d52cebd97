package i18ncmd

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-i18n-gen/internal/codegen"
	"github.com/goliatone/go-i18n-gen/internal/locales"
	"github.com/goliatone/go-i18n-gen/pkg/interfaces"
)

type resolveCall struct {
	opts locales.ResolveOptions
}

type stubResolver struct {
	calls  []resolveCall
	result *locales.Resolution
	err    error
}

func (s *stubResolver) resolve(opts locales.ResolveOptions) (*locales.Resolution, error) {
	s.calls = append(s.calls, resolveCall{opts: opts})
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return &locales.Resolution{}, nil
}

type generateCall struct {
	res  *locales.Resolution
	opts codegen.GenerateOptions
}

type stubGenerator struct {
	cfg    codegen.Config
	calls  []generateCall
	result *interfaces.GenerateResult
	err    error
}

func (s *stubGenerator) Generate(ctx context.Context, res *locales.Resolution, opts codegen.GenerateOptions) (*interfaces.GenerateResult, error) {
	s.calls = append(s.calls, generateCall{res: res, opts: opts})
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return &interfaces.GenerateResult{OutputPath: s.cfg.OutputPath}, nil
}

func validResolveCommand() ResolveCommand {
	return ResolveCommand{
		LocalesDir: "locales",
		Locales:    []string{"en", "fr"},
		Format:     "json",
	}
}

func validGenerateCommand() GenerateCommand {
	return GenerateCommand{
		LocalesDir:  "locales",
		Locales:     []string{"en", "fr"},
		Format:      "json",
		OutputPath:  "i18n/i18n.go",
		PackageName: "i18n",
	}
}

func TestResolveHandlerInvokesResolver(t *testing.T) {
	resolver := &stubResolver{}
	handler := NewResolveHandler(resolver.resolve, nil)

	if err := handler.Execute(context.Background(), validResolveCommand()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(resolver.calls) != 1 {
		t.Fatalf("expected 1 resolve call, got %d", len(resolver.calls))
	}
	opts := resolver.calls[0].opts
	if opts.BaseDir != "locales" || opts.Format != locales.FormatJSON {
		t.Fatalf("unexpected resolve options: %+v", opts)
	}
	if len(opts.Locales) != 2 || opts.Locales[0] != "en" {
		t.Fatalf("unexpected locale order: %v", opts.Locales)
	}
}

func TestResolveHandlerValidatesMessage(t *testing.T) {
	resolver := &stubResolver{}
	handler := NewResolveHandler(resolver.resolve, nil)

	err := handler.Execute(context.Background(), ResolveCommand{Format: "json"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if len(resolver.calls) != 0 {
		t.Fatal("expected resolver not to run when validation fails")
	}
}

func TestResolveHandlerRejectsUnknownFormat(t *testing.T) {
	resolver := &stubResolver{}
	handler := NewResolveHandler(resolver.resolve, nil)

	cmd := validResolveCommand()
	cmd.Format = "toml"
	if err := handler.Execute(context.Background(), cmd); err == nil {
		t.Fatal("expected unknown format to fail validation")
	}
}

func TestResolveHandlerPropagatesResolutionError(t *testing.T) {
	resolveErr := errors.New("missing file")
	resolver := &stubResolver{err: resolveErr}
	handler := NewResolveHandler(resolver.resolve, nil)

	err := handler.Execute(context.Background(), validResolveCommand())
	if err == nil {
		t.Fatal("expected resolution error")
	}
	if !errors.Is(err, resolveErr) {
		t.Fatalf("expected wrapped resolution error, got %v", err)
	}
}

func TestGenerateHandlerWiresFactoryFromMessage(t *testing.T) {
	resolver := &stubResolver{}
	var generator *stubGenerator
	factory := func(cfg codegen.Config) codegen.Service {
		generator = &stubGenerator{cfg: cfg}
		return generator
	}
	handler := NewGenerateHandler(resolver.resolve, factory, nil, FeatureGates{})

	cmd := validGenerateCommand()
	cmd.DryRun = true
	cmd.Manifest = true
	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if generator == nil {
		t.Fatal("expected factory to be invoked")
	}
	if generator.cfg.OutputPath != "i18n/i18n.go" || generator.cfg.PackageName != "i18n" || !generator.cfg.Manifest {
		t.Fatalf("unexpected generator config: %+v", generator.cfg)
	}
	if len(generator.calls) != 1 || !generator.calls[0].opts.DryRun {
		t.Fatalf("unexpected generate calls: %+v", generator.calls)
	}
	if len(resolver.calls) != 1 {
		t.Fatalf("expected resolution before generation, got %d calls", len(resolver.calls))
	}
}

func TestGenerateHandlerHonoursFeatureGate(t *testing.T) {
	resolver := &stubResolver{}
	factory := func(cfg codegen.Config) codegen.Service {
		t.Fatal("factory should not run when the feature is disabled")
		return nil
	}
	gates := FeatureGates{GeneratorEnabled: func() bool { return false }}
	handler := NewGenerateHandler(resolver.resolve, factory, nil, gates)

	err := handler.Execute(context.Background(), validGenerateCommand())
	if err == nil {
		t.Fatal("expected feature gate error")
	}
	if !errors.Is(err, ErrGeneratorFeatureDisabled) {
		t.Fatalf("expected ErrGeneratorFeatureDisabled, got %v", err)
	}
	if len(resolver.calls) != 0 {
		t.Fatal("expected no resolution when the feature is disabled")
	}
}

func TestGenerateHandlerValidatesMessage(t *testing.T) {
	handler := NewGenerateHandler((&stubResolver{}).resolve, nil, nil, FeatureGates{})

	cmd := validGenerateCommand()
	cmd.OutputPath = "  "
	err := handler.Execute(context.Background(), cmd)
	if err == nil {
		t.Fatal("expected validation error for blank output path")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

type recordingRegistry struct {
	registered []any
	err        error
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	if r.err != nil {
		return r.err
	}
	r.registered = append(r.registered, handler)
	return nil
}

func TestRegisterI18nCommands(t *testing.T) {
	reg := &recordingRegistry{}
	set, err := RegisterI18nCommands(reg, nil, FeatureGates{}, WithResolveFunc((&stubResolver{}).resolve))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if set.Resolve == nil || set.Generate == nil {
		t.Fatal("expected both handlers to be constructed")
	}
	if len(reg.registered) != 2 {
		t.Fatalf("expected 2 registered handlers, got %d", len(reg.registered))
	}
}

func TestRegisterI18nCommandsPropagatesRegistryError(t *testing.T) {
	regErr := errors.New("registry full")
	reg := &recordingRegistry{err: regErr}
	if _, err := RegisterI18nCommands(reg, nil, FeatureGates{}); !errors.Is(err, regErr) {
		t.Fatalf("expected registry error, got %v", err)
	}
}
