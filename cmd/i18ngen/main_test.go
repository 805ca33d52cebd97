package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestRunGeneratesFromFlags(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "locales/en.json", `{"greeting": "Hello"}`)
	writeFixture(t, dir, "locales/fr.json", `{"greeting": "Bonjour"}`)
	outPath := filepath.Join(dir, "gen", "i18n.go")

	err := run([]string{
		"-locales-dir", filepath.Join(dir, "locales"),
		"-locales", "en,fr",
		"-format", "json",
		"-out", outPath,
		"-package", "i18n",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "package i18n") {
		t.Fatalf("unexpected output:\n%s", data)
	}
}

func TestRunResolveOnlyWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "locales/en.json", `{"greeting": "Hello"}`)
	outPath := filepath.Join(dir, "gen", "i18n.go")

	err := run([]string{
		"-locales-dir", filepath.Join(dir, "locales"),
		"-locales", "en",
		"-format", "json",
		"-out", outPath,
		"-resolve-only",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(outPath); err == nil {
		t.Fatal("resolve-only run should not write output")
	}
}

func TestRunLoadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "locales/en.json", `{"greeting": "Hello"}`)
	outPath := filepath.Join(dir, "gen", "i18n.go")
	configPath := writeFixture(t, dir, "i18n.yaml", strings.Join([]string{
		"locales:",
		"  - en",
		"locales_dir: " + filepath.Join(dir, "locales"),
		"format: json",
		"generator:",
		"  output_path: " + outPath,
		"  package_name: translations",
	}, "\n"))

	if err := run([]string{"-config", configPath}); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "package translations") {
		t.Fatalf("unexpected output:\n%s", data)
	}
}

func TestRunFailsOnShapeMismatch(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "locales/en.json", `{"greeting": "Hello"}`)
	writeFixture(t, dir, "locales/fr.json", `{"greeting": {"formal": "Bonjour"}}`)

	err := run([]string{
		"-locales-dir", filepath.Join(dir, "locales"),
		"-locales", "en,fr",
		"-format", "json",
		"-out", filepath.Join(dir, "gen", "i18n.go"),
	})
	if err == nil {
		t.Fatal("expected shape mismatch to fail the run")
	}
}
