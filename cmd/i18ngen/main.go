package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-i18n-gen/cmd/i18ngen/internal/bootstrap"
	i18ncmd "github.com/goliatone/go-i18n-gen/internal/commands/i18n"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("i18ngen: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("i18ngen", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to a JSON or YAML project configuration file")
	localesDir := fs.String("locales-dir", "", "Directory holding locale files (overrides config)")
	localeList := fs.String("locales", "", "Comma separated locale list, default locale first (overrides config)")
	namespaces := fs.String("namespaces", "", "Comma separated namespace list (overrides config)")
	format := fs.String("format", "", "Locale file format, json or yaml (overrides config)")
	out := fs.String("out", "", "Output path for the generated Go source (overrides config)")
	pkg := fs.String("package", "", "Package name for the generated source (overrides config)")
	dryRun := fs.Bool("dry-run", false, "Report the would-be output without writing files")
	resolveOnly := fs.Bool("resolve-only", false, "Validate locale files without generating code")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, or error")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ConfigPath:  *configPath,
		LocalesDir:  *localesDir,
		Locales:     bootstrap.SplitList(*localeList),
		Namespaces:  bootstrap.SplitList(*namespaces),
		Format:      *format,
		OutputPath:  *out,
		PackageName: *pkg,
		LogLevel:    *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handlers, err := module.Module.RegisterCommands(nil)
	if err != nil {
		return fmt.Errorf("wire command handlers: %w", err)
	}

	ctx := context.Background()
	cfg := module.Config

	if *resolveOnly {
		cmd := i18ncmd.ResolveCommand{
			LocalesDir: cfg.LocalesDir,
			Locales:    cfg.Locales,
			Namespaces: cfg.Namespaces,
			Format:     cfg.Format,
		}
		if err := handlers.Resolve.Execute(ctx, cmd); err != nil {
			return fmt.Errorf("execute resolve command: %w", err)
		}
		fmt.Fprintln(os.Stdout, "locale tree resolved successfully")
		return nil
	}

	cmd := i18ncmd.GenerateCommand{
		LocalesDir:  cfg.LocalesDir,
		Locales:     cfg.Locales,
		Namespaces:  cfg.Namespaces,
		Format:      cfg.Format,
		OutputPath:  cfg.Generator.OutputPath,
		PackageName: cfg.Generator.PackageName,
		Manifest:    cfg.Generator.Manifest,
		DryRun:      *dryRun,
	}
	if err := handlers.Generate.Execute(ctx, cmd); err != nil {
		return fmt.Errorf("execute generate command: %w", err)
	}
	if *dryRun {
		fmt.Fprintln(os.Stdout, "generation previewed successfully (dry run)")
		return nil
	}
	fmt.Fprintf(os.Stdout, "generated %s\n", cfg.Generator.OutputPath)
	return nil
}
