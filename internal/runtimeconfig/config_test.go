package runtimeconfig

import (
	"errors"
	"testing"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Locales = []string{"en", "fr"}
	return cfg
}

func TestDefaultConfigValidatesWithLocales(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	if cfg.DefaultLocale() != "en" {
		t.Fatalf("expected default locale en, got %q", cfg.DefaultLocale())
	}
	if cfg.Namespaced() {
		t.Fatalf("expected flat layout by default")
	}
}

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"no locales", func(c *Config) { c.Locales = nil }, ErrLocalesRequired},
		{"blank locale", func(c *Config) { c.Locales = []string{"en", "  "} }, ErrLocaleNameInvalid},
		{"duplicate locale", func(c *Config) { c.Locales = []string{"en", "en"} }, ErrLocaleDuplicate},
		{"blank namespace", func(c *Config) { c.Namespaces = []string{""} }, ErrNamespaceNameInvalid},
		{"duplicate namespace", func(c *Config) { c.Namespaces = []string{"a", "a"} }, ErrNamespaceDuplicate},
		{"missing dir", func(c *Config) { c.LocalesDir = " " }, ErrLocalesDirRequired},
		{"bad format", func(c *Config) { c.Format = "toml" }, ErrFormatInvalid},
		{"missing output", func(c *Config) { c.Generator.OutputPath = "" }, ErrOutputPathRequired},
		{"bad package", func(c *Config) { c.Generator.PackageName = "1pkg" }, ErrPackageNameInvalid},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, ErrLoggingLevelInvalid},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, ErrLoggingFormatInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDisabledGeneratorSkipsGeneratorChecks(t *testing.T) {
	cfg := validConfig()
	cfg.Generator.Enabled = false
	cfg.Generator.OutputPath = ""
	cfg.Generator.PackageName = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled generator should not be validated, got %v", err)
	}
}
