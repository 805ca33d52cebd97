package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-i18n-gen/pkg/interfaces"
)

const (
	rootModule     = "i18n"
	localesModule  = "i18n.locales"
	codegenModule  = "i18n.codegen"
	commandsModule = "i18n.commands"
)

const (
	fieldLocale  = "locale"
	fieldKeyPath = "key_path"
	fieldFile    = "file"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// LocalesLogger returns the logger namespace reserved for locale resolution.
func LocalesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, localesModule)
}

// CodegenLogger returns the logger namespace reserved for code generation.
func CodegenLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, codegenModule)
}

// WithLocaleContext enriches the provided logger with common resolution
// fields such as locale, key path, and source file. Empty values are ignored.
func WithLocaleContext(logger interfaces.Logger, locale, keyPath, file string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields[fieldLocale] = trimmed
	}
	if trimmed := strings.TrimSpace(keyPath); trimmed != "" {
		fields[fieldKeyPath] = trimmed
	}
	if trimmed := strings.TrimSpace(file); trimmed != "" {
		fields[fieldFile] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
