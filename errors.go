package i18ngen

import (
	"github.com/goliatone/go-i18n-gen/internal/codegen"
	"github.com/goliatone/go-i18n-gen/internal/locales"
	"github.com/goliatone/go-i18n-gen/internal/runtimeconfig"
)

// Fatal resolution errors. Use errors.Is against the sentinels; the richer
// detail (path, key path, shapes) is available with errors.As on the
// structured types in the resolution error chain.
var (
	ErrLocaleFileNotFound       = locales.ErrLocaleFileNotFound
	ErrLocaleFileDeser          = locales.ErrLocaleFileDeser
	ErrExplicitDefaultInDefault = locales.ErrExplicitDefaultInDefault
	ErrShapeMismatch            = locales.ErrShapeMismatch
	ErrEmptyTreeSet             = locales.ErrEmptyTreeSet
)

// Generator state errors.
var (
	ErrGeneratorDisabled = codegen.ErrServiceDisabled
	ErrNothingToGenerate = codegen.ErrNothingToGenerate
)

// Configuration validation errors.
var (
	ErrLocalesRequired    = runtimeconfig.ErrLocalesRequired
	ErrLocalesDirRequired = runtimeconfig.ErrLocalesDirRequired
	ErrFormatInvalid      = runtimeconfig.ErrFormatInvalid
	ErrOutputPathRequired = runtimeconfig.ErrOutputPathRequired
)
