package i18n

// FormatCHF returns the Swiss-franc display convention: apostrophe
// grouping, "CHF" prefix, and the ".–" marker in place of decimal digits.
func FormatCHF() *LocaleFormat {
	return NewLocaleFormat()
}

// FormatEUR returns the Euro display convention for the given widget
// language: trailing "€" with language-appropriate grouping. Unknown
// languages get the German grouping, matching the widget's default.
func FormatEUR(lang string) *LocaleFormat {
	switch lang {
	case "fr":
		return NewLocaleFormat(
			WithDecimalSeparator(","),
			WithThousandSeparator(" "),
			WithCurrencyPrefix(""),
			WithCurrencySuffix(" €"),
		)
	case "en":
		return NewLocaleFormat(
			WithDecimalSeparator("."),
			WithThousandSeparator(","),
			WithCurrencyPrefix(""),
			WithCurrencySuffix(" €"),
		)
	default: // de, it
		return NewLocaleFormat(
			WithDecimalSeparator(","),
			WithThousandSeparator("."),
			WithCurrencyPrefix(""),
			WithCurrencySuffix(" €"),
		)
	}
}

// FormatFor selects the display convention for a currency code and widget
// language. CHF formatting is fixed regardless of language.
func FormatFor(currency, lang string) *LocaleFormat {
	if currency == "CHF" {
		return FormatCHF()
	}
	return FormatEUR(lang)
}
