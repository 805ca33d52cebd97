package i18ngen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-i18n-gen/internal/codegen"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return dir
}

func projectConfig(t *testing.T) Config {
	t.Helper()
	dir := writeProject(t, map[string]string{
		"locales/en.json": `{"greeting": "Hello {name}", "nested": {"ok": "OK"}}`,
		"locales/fr.json": `{"greeting": "Bonjour {name}", "nested": {"ok": "OK"}}`,
	})
	cfg := DefaultConfig()
	cfg.Locales = []string{"en", "fr"}
	cfg.LocalesDir = filepath.Join(dir, "locales")
	cfg.Generator.OutputPath = filepath.Join(dir, "i18n", "i18n.go")
	cfg.Logging.Enabled = false
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Locales = nil
	if _, err := New(cfg); err == nil {
		t.Fatal("expected configuration validation to fail")
	}
}

func TestModuleResolve(t *testing.T) {
	module, err := New(projectConfig(t))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	res, err := module.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Keys == nil || res.Keys.Keys.Len() != 2 {
		t.Fatalf("expected 2 schema entries, got %+v", res.Keys)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("expected clean resolution, got warnings %v", res.Warnings)
	}
}

func TestModuleGenerateWritesOutput(t *testing.T) {
	cfg := projectConfig(t)
	module, err := New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	result, err := module.Generate(context.Background(), false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	data, err := os.ReadFile(cfg.Generator.OutputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) != result.BytesWritten {
		t.Fatalf("BytesWritten = %d, want %d", result.BytesWritten, len(data))
	}
}

func TestModuleGenerateDryRun(t *testing.T) {
	cfg := projectConfig(t)
	module, err := New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	result, err := module.Generate(context.Background(), true)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !result.DryRun {
		t.Fatal("expected dry run result")
	}
	if _, err := os.Stat(cfg.Generator.OutputPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("dry run wrote output: %v", err)
	}
}

func TestModuleDisabledGenerator(t *testing.T) {
	cfg := projectConfig(t)
	cfg.Generator.Enabled = false
	module, err := New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	if _, err := module.Generate(context.Background(), false); !errors.Is(err, codegen.ErrServiceDisabled) {
		t.Fatalf("expected ErrServiceDisabled, got %v", err)
	}
}

type recordingRegistry struct {
	registered []any
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	r.registered = append(r.registered, handler)
	return nil
}

func TestModuleRegisterCommands(t *testing.T) {
	module, err := New(projectConfig(t))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	reg := &recordingRegistry{}
	set, err := module.RegisterCommands(reg)
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}
	if set.Resolve == nil || set.Generate == nil {
		t.Fatal("expected both handlers")
	}
	if len(reg.registered) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(reg.registered))
	}
}
