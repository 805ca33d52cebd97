package i18ngen

import "github.com/goliatone/go-i18n-gen/internal/runtimeconfig"

// Config exports the runtime configuration for consumers of the package.
type Config = runtimeconfig.Config

// GeneratorConfig exports the code generation settings.
type GeneratorConfig = runtimeconfig.GeneratorConfig

// LoggingConfig exports the logging adapter settings.
type LoggingConfig = runtimeconfig.LoggingConfig

// DefaultConfig returns the baseline configuration callers amend before
// constructing a module.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads, validates, and maps a JSON or YAML configuration file.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.LoadFile(path)
}
