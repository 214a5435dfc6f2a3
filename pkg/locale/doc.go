// Package locale resolves the widget's language, country, currency, and
// default prices from the embedding site's hostname plus optional explicit
// overrides.
//
// Resolution is a pure function of its arguments: identical inputs always
// yield the identical Info, and every branch converges to the German/Swiss
// default, so no input can fail to resolve.
package locale
