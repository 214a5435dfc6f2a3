package locale

import "strings"

// Language is a supported widget language code.
type Language string

const (
	German  Language = "de"
	English Language = "en"
	French  Language = "fr"
	Italian Language = "it"
)

// Country is a supported market country code.
type Country string

const (
	Switzerland Country = "CH"
	Austria     Country = "AT"
	Germany     Country = "DE"
	France      Country = "FR"
	Italy       Country = "IT"
)

// Currency is the display currency for a resolved country.
type Currency string

const (
	CHF Currency = "CHF"
	EUR Currency = "EUR"
)

// Info is the resolved locale for one widget session. It is immutable;
// callers cache it and re-resolve only on an explicit override.
type Info struct {
	Language      Language
	Country       Country
	Currency      Currency
	DefaultPrices Prices
}

// Overrides carries explicit language/country selections (query parameters
// or container attributes). Unsupported values are ignored, falling through
// to hostname detection.
type Overrides struct {
	Language string
	Country  string
}

// hostRule maps a hostname shape to a language. Rules are ordered; the
// first match wins. Matching is on prefix/suffix like the host router's
// wildcard handling, which is all the real site layout needs.
type hostRule struct {
	prefix string
	suffix string
	lang   Language
}

var languageRules = []hostRule{
	{prefix: "en.", lang: English},
	{prefix: "fr.", lang: French},
	{suffix: ".fr", lang: French},
	{prefix: "it.", lang: Italian},
	{suffix: ".it", lang: Italian},
}

var countryByTLD = map[string]Country{
	".at": Austria,
	".de": Germany,
	".fr": France,
	".it": Italy,
}

// Resolve determines the locale for the given hostname and overrides.
// Language and country are resolved independently; currency derives from
// country alone (CHF for Switzerland, EUR otherwise).
func Resolve(hostname string, o Overrides) Info {
	host := normalizeHost(hostname)

	lang, ok := parseLanguage(o.Language)
	if !ok {
		lang, ok = LanguageFromHost(host)
		if !ok {
			lang = German
		}
	}

	country, ok := parseCountry(o.Country)
	if !ok {
		country, ok = CountryFromHost(host)
		if !ok {
			country = Switzerland
		}
	}

	currency := EUR
	if country == Switzerland {
		currency = CHF
	}

	return Info{
		Language:      lang,
		Country:       country,
		Currency:      currency,
		DefaultPrices: defaultPrices[country],
	}
}

// LanguageFromHost applies the ordered hostname rules. The second return is
// false when no rule matched and the German default applies.
func LanguageFromHost(host string) (Language, bool) {
	host = normalizeHost(host)
	for _, rule := range languageRules {
		if rule.prefix != "" && strings.HasPrefix(host, rule.prefix) {
			return rule.lang, true
		}
		if rule.suffix != "" && strings.HasSuffix(host, rule.suffix) {
			return rule.lang, true
		}
	}
	return German, false
}

// CountryFromHost derives the country from the hostname's TLD. The second
// return is false when the TLD is unknown and the Swiss default applies.
func CountryFromHost(host string) (Country, bool) {
	host = normalizeHost(host)
	for tld, country := range countryByTLD {
		if strings.HasSuffix(host, tld) {
			return country, true
		}
	}
	return Switzerland, false
}

func parseLanguage(raw string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(raw))) {
	case German:
		return German, true
	case English:
		return English, true
	case French:
		return French, true
	case Italian:
		return Italian, true
	}
	return "", false
}

func parseCountry(raw string) (Country, bool) {
	switch Country(strings.ToUpper(strings.TrimSpace(raw))) {
	case Switzerland:
		return Switzerland, true
	case Austria:
		return Austria, true
	case Germany:
		return Germany, true
	case France:
		return France, true
	case Italy:
		return Italy, true
	}
	return "", false
}

// normalizeHost strips the port and lowercases the host so rules match the
// bare hostname.
func normalizeHost(host string) string {
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		if !strings.Contains(host[idx:], "]") {
			host = host[:idx]
		}
	}
	return strings.ToLower(strings.TrimSpace(host))
}
