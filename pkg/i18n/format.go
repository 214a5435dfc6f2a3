package i18n

import (
	"math"
	"strconv"
	"strings"
)

// DisplayCeiling caps values at formatting time. Arithmetic results above it
// are clamped for display only, never before computation.
const DisplayCeiling = 999_999_999_999

// LocaleFormat holds the fixed display conventions for one currency and
// language combination. It is immutable after creation and safe for
// concurrent use.
type LocaleFormat struct {
	decimalSeparator  string
	thousandSeparator string
	currencyPrefix    string
	currencySuffix    string
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a LocaleFormat with the given options. Without
// options it defaults to the Swiss-franc convention.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		decimalSeparator:  ".",
		thousandSeparator: "'",
		currencyPrefix:    "CHF ",
		currencySuffix:    ".–",
	}

	for _, opt := range opts {
		opt(lf)
	}

	return lf
}

// WithDecimalSeparator sets the decimal separator character.
func WithDecimalSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.decimalSeparator = sep
	}
}

// WithThousandSeparator sets the grouping separator character.
func WithThousandSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.thousandSeparator = sep
	}
}

// WithCurrencyPrefix sets the text placed before a currency amount.
func WithCurrencyPrefix(prefix string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.currencyPrefix = prefix
	}
}

// WithCurrencySuffix sets the text placed after a currency amount.
func WithCurrencySuffix(suffix string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.currencySuffix = suffix
	}
}

// FormatCurrency rounds to the nearest whole unit, clamps to the display
// ceiling, groups the digits, and applies the currency's prefix/suffix.
// The Swiss style yields "CHF 11'546.–", the Euro style "11.546 €".
func (lf *LocaleFormat) FormatCurrency(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}

	n := int64(math.Round(math.Min(v, DisplayCeiling)))
	result := lf.currencyPrefix + lf.groupDigits(n) + lf.currencySuffix

	if negative {
		result = "-" + result
	}
	return result
}

// FormatNumber clamps to the display ceiling and formats with a fixed
// number of decimal places and the locale's separators.
func (lf *LocaleFormat) FormatNumber(v float64, decimals int) string {
	negative := v < 0
	if negative {
		v = -v
	}

	v = math.Min(v, DisplayCeiling)

	s := strconv.FormatFloat(v, 'f', decimals, 64)
	intStr, decStr, _ := strings.Cut(s, ".")

	intPart, _ := strconv.ParseInt(intStr, 10, 64)
	result := lf.groupDigits(intPart)
	if decimals > 0 {
		result += lf.decimalSeparator + decStr
	}

	if negative {
		result = "-" + result
	}
	return result
}

func (lf *LocaleFormat) groupDigits(n int64) string {
	str := strconv.FormatInt(n, 10)
	if n < 1000 {
		return str
	}

	var groups []string
	for i := len(str); i > 0; i -= 3 {
		start := max(0, i-3)
		groups = append([]string{str[start:i]}, groups...)
	}
	return strings.Join(groups, lf.thousandSeparator)
}
