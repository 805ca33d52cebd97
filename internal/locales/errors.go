package locales

import (
	"errors"
	"fmt"
)

var (
	ErrLocaleFileNotFound       = errors.New("locales: locale file not found")
	ErrLocaleFileDeser          = errors.New("locales: locale file is malformed")
	ErrExplicitDefaultInDefault = errors.New("locales: default locale cannot inherit from itself")
	ErrShapeMismatch            = errors.New("locales: value shape does not match the schema")
	ErrEmptyTreeSet             = errors.New("locales: no locales configured")
)

// FileNotFoundError reports a locale or namespace file missing at its
// derived path.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	if e == nil {
		return ErrLocaleFileNotFound.Error()
	}
	return fmt.Sprintf("%s: %s: %v", ErrLocaleFileNotFound.Error(), e.Path, e.Err)
}

func (e *FileNotFoundError) Unwrap() error {
	if e != nil && e.Err != nil {
		return e.Err
	}
	return ErrLocaleFileNotFound
}

// Is lets callers match the sentinel while the wrapped OS error stays
// reachable through Unwrap.
func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrLocaleFileNotFound
}

// DeserError reports content that did not decode into a well-formed mapping
// of keys to values. Line and Column point into the offending file; Locale
// and Path say where in the logical tree decoding stopped.
type DeserError struct {
	File   string
	Locale Key
	Path   KeyPath
	Line   int
	Column int
	Err    error
}

func (e *DeserError) Error() string {
	if e == nil {
		return ErrLocaleFileDeser.Error()
	}
	location := ""
	if e.Line > 0 {
		location = fmt.Sprintf(" (line %d, column %d)", e.Line, e.Column)
	}
	at := ""
	if path := e.Path.String(); path != "" {
		at = " at " + path
	}
	return fmt.Sprintf("%s: %s%s%s: %v", ErrLocaleFileDeser.Error(), e.File, location, at, e.Err)
}

func (e *DeserError) Unwrap() error {
	if e != nil && e.Err != nil {
		return e.Err
	}
	return ErrLocaleFileDeser
}

func (e *DeserError) Is(target error) bool {
	return target == ErrLocaleFileDeser
}

// ExplicitDefaultError reports an inherit-from-default marker found inside
// the default locale's own tree.
type ExplicitDefaultError struct {
	Path KeyPath
}

func (e *ExplicitDefaultError) Error() string {
	if e == nil {
		return ErrExplicitDefaultInDefault.Error()
	}
	return fmt.Sprintf("%s: at %s", ErrExplicitDefaultInDefault.Error(), e.Path.String())
}

func (e *ExplicitDefaultError) Unwrap() error {
	return ErrExplicitDefaultInDefault
}

// ShapeMismatchError reports a non-default locale whose value kind diverges
// from the schema's classification at the same key path.
type ShapeMismatchError struct {
	Locale   Key
	Path     KeyPath
	Expected string
	Actual   string
}

func (e *ShapeMismatchError) Error() string {
	if e == nil {
		return ErrShapeMismatch.Error()
	}
	return fmt.Sprintf("%s: locale %q at %s: schema expects a %s, found a %s",
		ErrShapeMismatch.Error(), e.Locale.Name, e.Path.String(), e.Expected, e.Actual)
}

func (e *ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}
