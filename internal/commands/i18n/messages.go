package i18ncmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	resolveMessageType  = "i18n.locales.resolve"
	generateMessageType = "i18n.codegen.generate"
)

// ResolveCommand triggers a full locale tree resolution: load every locale
// file under LocalesDir, elect the first configured locale as the schema
// authority, and reconcile the rest against it.
type ResolveCommand struct {
	// LocalesDir selects the directory holding locale files.
	LocalesDir string `json:"locales_dir"`
	// Locales lists locale identifiers in configuration order; the first is the default.
	Locales []string `json:"locales"`
	// Namespaces, when present, switches the project into namespaced layout.
	Namespaces []string `json:"namespaces,omitempty"`
	// Format fixes the structured-data format for every locale file.
	Format string `json:"format"`
}

// Type implements command.Message.
func (ResolveCommand) Type() string { return resolveMessageType }

// Validate ensures resolution inputs are present before handlers execute.
func (cmd ResolveCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.LocalesDir, validation.Required, validation.By(nonBlank("i18n.locales.resolve.locales_dir_required", "locales directory is required"))),
		validation.Field(&cmd.Locales, validation.Required, validation.Length(1, 0)),
		validation.Field(&cmd.Format, validation.Required, validation.In("json", "yaml")),
	)
}

// GenerateCommand runs a resolution and emits the typed accessor package for
// the resulting schema.
type GenerateCommand struct {
	// LocalesDir selects the directory holding locale files.
	LocalesDir string `json:"locales_dir"`
	// Locales lists locale identifiers in configuration order; the first is the default.
	Locales []string `json:"locales"`
	// Namespaces, when present, switches the project into namespaced layout.
	Namespaces []string `json:"namespaces,omitempty"`
	// Format fixes the structured-data format for every locale file.
	Format string `json:"format"`
	// OutputPath is the Go source file the generator writes.
	OutputPath string `json:"output_path"`
	// PackageName names the emitted package.
	PackageName string `json:"package_name"`
	// Manifest toggles writing the build manifest next to the output.
	Manifest bool `json:"manifest,omitempty"`
	// DryRun reports the would-be output without writing anything.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (GenerateCommand) Type() string { return generateMessageType }

// Validate ensures generation inputs are present before handlers execute.
func (cmd GenerateCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.LocalesDir, validation.Required, validation.By(nonBlank("i18n.codegen.generate.locales_dir_required", "locales directory is required"))),
		validation.Field(&cmd.Locales, validation.Required, validation.Length(1, 0)),
		validation.Field(&cmd.Format, validation.Required, validation.In("json", "yaml")),
		validation.Field(&cmd.OutputPath, validation.Required, validation.By(nonBlank("i18n.codegen.generate.output_path_required", "output path is required"))),
		validation.Field(&cmd.PackageName, validation.Required, validation.By(nonBlank("i18n.codegen.generate.package_name_required", "package name is required"))),
	)
}

func nonBlank(code, message string) func(value any) error {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
