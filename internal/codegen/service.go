package codegen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-i18n-gen/internal/locales"
	"github.com/goliatone/go-i18n-gen/internal/logging"
	"github.com/goliatone/go-i18n-gen/pkg/interfaces"
)

var (
	// ErrServiceDisabled indicates the code generation feature is disabled.
	ErrServiceDisabled = errors.New("codegen: service disabled")
	// ErrNothingToGenerate indicates the resolution carried no schema to emit.
	ErrNothingToGenerate = errors.New("codegen: nothing to generate")

	errOutputPathRequired  = errors.New("codegen: output path is required")
	errPackageNameRequired = errors.New("codegen: package name must be a valid Go identifier")
)

// IdentifierError reports a key that cannot be mangled into a usable Go
// identifier, or two keys that mangle into the same one.
type IdentifierError struct {
	Path   string
	Reason string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("codegen: key %q: %s", e.Path, e.Reason)
}

// Service emits the typed accessor package for a completed resolution.
type Service interface {
	Generate(ctx context.Context, res *locales.Resolution, opts GenerateOptions) (*interfaces.GenerateResult, error)
}

// Config captures the fixed emission settings for a service instance.
type Config struct {
	OutputPath  string
	PackageName string
	Manifest    bool
}

// GenerateOptions narrows the scope of a single run.
type GenerateOptions struct {
	DryRun bool
}

// Option customises a Service.
type Option func(*service)

// WithLogger attaches a logger. Defaults to no-op.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the timestamp source for manifest entries.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRunID overrides the run identifier source for manifest entries.
func WithRunID(newID func() uuid.UUID) Option {
	return func(s *service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewService wires a code generation implementation with the provided
// configuration.
func NewService(cfg Config, opts ...Option) Service {
	s := &service{
		cfg:    cfg,
		logger: logging.NoOp(),
		now:    time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDisabledService returns a Service that fails all operations with
// ErrServiceDisabled.
func NewDisabledService() Service {
	return disabledService{}
}

type service struct {
	cfg    Config
	logger interfaces.Logger
	now    func() time.Time
	newID  func() uuid.UUID
}

type disabledService struct{}

func (disabledService) Generate(context.Context, *locales.Resolution, GenerateOptions) (*interfaces.GenerateResult, error) {
	return nil, ErrServiceDisabled
}

func (s *service) Generate(ctx context.Context, res *locales.Resolution, opts GenerateOptions) (*interfaces.GenerateResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.cfg.OutputPath == "" {
		return nil, errOutputPathRequired
	}
	if !isGoIdentifier(s.cfg.PackageName) {
		return nil, errPackageNameRequired
	}

	m, err := buildModel(res, s.cfg.PackageName)
	if err != nil {
		return nil, err
	}

	src, err := emit(m)
	if err != nil {
		return nil, err
	}

	result := &interfaces.GenerateResult{
		OutputPath:   s.cfg.OutputPath,
		BytesWritten: len(src),
		Warnings:     collectWarnings(res),
		DryRun:       opts.DryRun,
	}

	if opts.DryRun {
		s.logger.Info("codegen.generate.dry_run",
			"output", s.cfg.OutputPath,
			"bytes", len(src),
			"locales", len(m.locales),
		)
		return result, nil
	}

	if err := s.writeOutput(src); err != nil {
		return nil, err
	}
	if s.cfg.Manifest {
		if err := s.writeManifest(src, m); err != nil {
			return nil, err
		}
	}

	s.logger.Info("codegen.generate.completed",
		"output", s.cfg.OutputPath,
		"bytes", len(src),
		"locales", len(m.locales),
		"messages", messageCount(m),
	)
	return result, nil
}

func (s *service) writeOutput(src []byte) error {
	dir := filepath.Dir(s.cfg.OutputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("codegen: create output directory %q: %w", dir, err)
	}
	if err := os.WriteFile(s.cfg.OutputPath, src, 0o644); err != nil {
		return fmt.Errorf("codegen: write output %q: %w", s.cfg.OutputPath, err)
	}
	return nil
}

func (s *service) writeManifest(src []byte, m *model) error {
	path := filepath.Join(filepath.Dir(s.cfg.OutputPath), manifestFileName)

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("codegen: read manifest %q: %w", path, err)
	}
	manifest, err := parseManifest(existing)
	if err != nil {
		return err
	}
	manifest.RunID = s.newID().String()
	manifest.GeneratedAt = s.now().UTC()
	manifest.setOutput(manifestOutput{
		Path:     filepath.Base(s.cfg.OutputPath),
		Package:  s.cfg.PackageName,
		Checksum: checksum(src),
		Size:     int64(len(src)),
		Locales:  len(m.locales),
		Messages: messageCount(m),
	})

	data, err := manifest.marshal()
	if err != nil {
		return fmt.Errorf("codegen: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("codegen: write manifest %q: %w", path, err)
	}
	return nil
}

func collectWarnings(res *locales.Resolution) []interfaces.Warning {
	if res == nil || len(res.Warnings) == 0 {
		return nil
	}
	out := make([]interfaces.Warning, 0, len(res.Warnings))
	for i := range res.Warnings {
		out = append(out, res.Warnings[i])
	}
	return out
}

func messageCount(m *model) int {
	total := len(m.plurals)
	if len(m.literals) > 0 {
		total += len(m.literals[0])
	}
	return total
}

func isGoIdentifier(name string) bool {
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
	_, reserved := goKeywords[name]
	return !reserved
}
