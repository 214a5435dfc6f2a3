// Package i18n provides the widget's translation store and locale-specific
// display formatting.
//
// Translations are nested key-value structures flattened to dot paths and
// addressed as lang:namespace:key. Lookup of a missing path is silent: it
// reports absence instead of erroring, so the embedding page keeps its
// fallback-language text untouched.
//
// LocaleFormat reproduces the fixed display conventions of the two
// supported currencies literally. The Swiss-franc style ("CHF 11'546.–")
// and the Euro style ("11.546 €") are golden-tested punctuation, not
// derived from generic currency formatting.
//
// A Bundle is immutable after construction and safe for concurrent use.
package i18n
