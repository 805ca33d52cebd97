package interfaces

// Warning describes a non-fatal diagnostic raised while reconciling a locale
// tree against the default-locale schema. Implementations carry the locale
// identity and the key path the diagnostic points at.
type Warning interface {
	Locale() string
	Path() string
	String() string
}

// WarningReporter receives non-fatal diagnostics as they are emitted. The
// resolution engine still returns the full warning set as values; a reporter
// only adds a side channel (logging, build output, IDE surfacing).
type WarningReporter interface {
	Report(warning Warning)
}

// GenerateResult summarises one code generation run.
type GenerateResult struct {
	OutputPath   string
	BytesWritten int
	Warnings     []Warning
	DryRun       bool
}
