package locales

import (
	"fmt"

	"github.com/goliatone/go-i18n-gen/pkg/interfaces"
)

// WarningKind enumerates the non-fatal diagnostics the merge pass can raise.
type WarningKind int

const (
	// MissingKey flags a locale that lacks a key the schema declares. The
	// generated output falls back to the default locale's value.
	MissingKey WarningKind = iota
	// SurplusKey flags a locale that declares a key the schema never did.
	// The extra value is ignored.
	SurplusKey
	// SurplusInterpolation flags a leaf using an interpolation placeholder
	// the default locale's leaf never declared.
	SurplusInterpolation
)

func (k WarningKind) String() string {
	switch k {
	case MissingKey:
		return "missing key"
	case SurplusKey:
		return "surplus key"
	case SurplusInterpolation:
		return "surplus interpolation"
	default:
		return "unknown"
	}
}

// Warning is one non-fatal diagnostic. Warnings never abort a merge pass;
// they accumulate so every drift in a locale is reported in a single run.
type Warning struct {
	Kind          WarningKind
	LocaleName    Key
	KeyPath       KeyPath
	Interpolation string
}

var _ interfaces.Warning = Warning{}

// Locale reports the identity of the locale the diagnostic points at.
func (w Warning) Locale() string {
	return w.LocaleName.Name
}

// Path renders the key path the diagnostic points at.
func (w Warning) Path() string {
	return w.KeyPath.String()
}

func (w Warning) String() string {
	switch w.Kind {
	case MissingKey:
		return fmt.Sprintf("locale %q is missing key %q, the default locale value will be used", w.Locale(), w.Path())
	case SurplusKey:
		return fmt.Sprintf("locale %q declares key %q which the default locale does not, it will be ignored", w.Locale(), w.Path())
	case SurplusInterpolation:
		return fmt.Sprintf("locale %q uses interpolation %q at %q which the default locale does not declare, it will be ignored", w.Locale(), w.Interpolation, w.Path())
	default:
		return fmt.Sprintf("locale %q: unknown warning at %q", w.Locale(), w.Path())
	}
}

// Warnings is the append-only sink a whole resolution pass shares. A
// reporter, when set, additionally observes each warning as it is emitted.
type Warnings struct {
	list     []Warning
	reporter interfaces.WarningReporter
}

// NewWarnings creates a sink. reporter may be nil.
func NewWarnings(reporter interfaces.WarningReporter) *Warnings {
	return &Warnings{reporter: reporter}
}

func (w *Warnings) emit(warning Warning) {
	if w == nil {
		return
	}
	w.list = append(w.list, warning)
	if w.reporter != nil {
		w.reporter.Report(warning)
	}
}

// All returns the accumulated warnings in emission order.
func (w *Warnings) All() []Warning {
	if w == nil || len(w.list) == 0 {
		return nil
	}
	out := make([]Warning, len(w.list))
	copy(out, w.list)
	return out
}

// Len reports how many warnings have been emitted so far.
func (w *Warnings) Len() int {
	if w == nil {
		return 0
	}
	return len(w.list)
}

// LoggerReporter adapts a module logger into a WarningReporter so merge
// drift surfaces in build output as it is found.
type LoggerReporter struct {
	Logger interfaces.Logger
}

// Report implements interfaces.WarningReporter.
func (r LoggerReporter) Report(warning interfaces.Warning) {
	if r.Logger == nil {
		return
	}
	r.Logger.Warn("locales.merge.drift",
		"locale", warning.Locale(),
		"key_path", warning.Path(),
		"detail", warning.String(),
	)
}
