package validation

import (
	"errors"
	"testing"
)

func TestValidateConfigDocumentAcceptsFullDocument(t *testing.T) {
	doc := map[string]any{
		"locales":     []any{"en", "fr"},
		"namespaces":  []any{"common"},
		"locales_dir": "locales",
		"format":      "yaml",
		"generator": map[string]any{
			"enabled":      true,
			"output_path":  "i18n/i18n.go",
			"package_name": "i18n",
			"manifest":     true,
		},
		"logging": map[string]any{
			"enabled": true,
			"level":   "debug",
			"format":  "console",
		},
	}

	if err := ValidateConfigDocument(doc); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
}

func TestValidateConfigDocumentRequiresLocales(t *testing.T) {
	err := ValidateConfigDocument(map[string]any{"locales_dir": "locales"})
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected config invalid error, got %v", err)
	}
	if len(Issues(err)) == 0 {
		t.Fatalf("expected validation issues")
	}
}

func TestValidateConfigDocumentRejectsUnknownFields(t *testing.T) {
	err := ValidateConfigDocument(map[string]any{
		"locales": []any{"en"},
		"typo":    true,
	})
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected config invalid error, got %v", err)
	}
}

func TestValidateConfigDocumentRejectsBadFormat(t *testing.T) {
	err := ValidateConfigDocument(map[string]any{
		"locales": []any{"en"},
		"format":  "toml",
	})
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected config invalid error, got %v", err)
	}
}

func TestValidateConfigDocumentNormalizesYAMLValues(t *testing.T) {
	// YAML decoding yields map[string]any with native ints and []any
	// values; the validator must accept them after normalization.
	doc := map[string]any{
		"locales": []any{"en"},
		"logging": map[string]any{"enabled": true, "add_source": false},
	}
	if err := ValidateConfigDocument(doc); err != nil {
		t.Fatalf("expected normalized document to validate, got %v", err)
	}
}
