package i18n

import "errors"

var (
	// ErrEmptyLanguage is returned when a language code is required but empty.
	ErrEmptyLanguage = errors.New("i18n: language cannot be empty")

	// ErrEmptyNamespace is returned when a namespace is required but empty.
	ErrEmptyNamespace = errors.New("i18n: namespace cannot be empty")

	// ErrInvalidFile is returned when a translation file cannot be parsed
	// or does not follow the {lang}/{namespace} layout.
	ErrInvalidFile = errors.New("i18n: invalid translation file")
)
