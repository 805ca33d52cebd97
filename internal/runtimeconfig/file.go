package runtimeconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-i18n-gen/internal/validation"
)

// LoadFile reads a project configuration document (JSON or YAML, selected by
// extension), validates it against the embedded schema, and maps it onto a
// Config seeded from DefaultConfig. Absent fields keep their defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("i18n config: read %q: %w", path, err)
	}

	doc := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return Config{}, fmt.Errorf("i18n config: decode %q: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Config{}, fmt.Errorf("i18n config: decode %q: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("i18n config: unsupported config extension %q", filepath.Ext(path))
	}

	if err := validation.ValidateConfigDocument(doc); err != nil {
		return Config{}, err
	}

	cfg := fromDocument(doc)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromDocument(doc map[string]any) Config {
	cfg := DefaultConfig()

	cfg.Locales = stringSlice(doc["locales"])
	cfg.Namespaces = stringSlice(doc["namespaces"])
	if dir, ok := doc["locales_dir"].(string); ok {
		cfg.LocalesDir = dir
	}
	if format, ok := doc["format"].(string); ok {
		cfg.Format = format
	}

	if gen, ok := doc["generator"].(map[string]any); ok {
		if enabled, ok := gen["enabled"].(bool); ok {
			cfg.Generator.Enabled = enabled
		}
		if out, ok := gen["output_path"].(string); ok {
			cfg.Generator.OutputPath = out
		}
		if pkg, ok := gen["package_name"].(string); ok {
			cfg.Generator.PackageName = pkg
		}
		if manifest, ok := gen["manifest"].(bool); ok {
			cfg.Generator.Manifest = manifest
		}
	}

	if log, ok := doc["logging"].(map[string]any); ok {
		if enabled, ok := log["enabled"].(bool); ok {
			cfg.Logging.Enabled = enabled
		}
		if level, ok := log["level"].(string); ok {
			cfg.Logging.Level = level
		}
		if format, ok := log["format"].(string); ok {
			cfg.Logging.Format = format
		}
		if addSource, ok := log["add_source"].(bool); ok {
			cfg.Logging.AddSource = addSource
		}
	}

	return cfg
}

func stringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
