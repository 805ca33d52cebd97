package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-i18n-gen/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	if fields == nil {
		fields = map[string]any{}
	}
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "i18n.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	// Ensure WithContext does not panic.
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	logger := ModuleLogger(provider, localesModule)

	if len(provider.requested) != 1 || provider.requested[0] != localesModule {
		t.Fatalf("expected module %s, got %v", localesModule, provider.requested)
	}
	if len(rec.fields) != 1 {
		t.Fatalf("expected module fields to be applied once, got %d", len(rec.fields))
	}
	if got, ok := rec.fields[0]["module"]; !ok || got != localesModule {
		t.Fatalf("expected module field %s, got %v", localesModule, rec.fields[0]["module"])
	}

	logger.Info("with provider")
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
	if rec.fields[0]["module"] != rootModule {
		t.Fatalf("expected module field %s, got %v", rootModule, rec.fields[0]["module"])
	}
}

func TestScopedLoggersRequestTheirModules(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = LocalesLogger(provider)
	_ = CodegenLogger(provider)
	if len(provider.requested) != 2 || provider.requested[0] != localesModule || provider.requested[1] != codegenModule {
		t.Fatalf("unexpected module requests: %v", provider.requested)
	}
}

func TestWithLocaleContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}

	_ = WithLocaleContext(rec, "fr", "", " locales/fr.json ")

	if len(rec.fields) != 1 {
		t.Fatalf("expected one fields application, got %d", len(rec.fields))
	}
	fields := rec.fields[0]
	if fields[fieldLocale] != "fr" {
		t.Fatalf("expected locale field, got %v", fields)
	}
	if _, ok := fields[fieldKeyPath]; ok {
		t.Fatalf("empty key path should be omitted, got %v", fields)
	}
	if fields[fieldFile] != "locales/fr.json" {
		t.Fatalf("expected trimmed file field, got %v", fields)
	}
}

func TestWithFieldsFallsBackToWrapper(t *testing.T) {
	base := plainLogger{}
	logger := WithFields(base, map[string]any{"a": 1})
	if logger == nil {
		t.Fatal("expected wrapped logger")
	}
	logger.Info("does not panic")
}

type plainLogger struct{}

func (plainLogger) Trace(string, ...any) {}
func (plainLogger) Debug(string, ...any) {}
func (plainLogger) Info(string, ...any)  {}
func (plainLogger) Warn(string, ...any)  {}
func (plainLogger) Error(string, ...any) {}
func (plainLogger) Fatal(string, ...any) {}
func (p plainLogger) WithContext(context.Context) interfaces.Logger {
	return p
}
