package i18n

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// DefaultLang is the fallback language when none is configured. The widget
// ships on Swiss sites first, so it is German rather than English.
const DefaultLang = "de"

// Bundle holds all translations for every supported language, flattened for
// O(1) dot-path lookups. It is immutable after construction.
type Bundle struct {
	// Key format: "lang:namespace:key.path"
	translations map[string]string

	// Optional handler called when a lookup misses in every language.
	// Useful for monitoring translation gaps; lookup itself stays silent.
	missingKeyHandler func(lang, namespace, key string)

	defaultLang string
	languages   []string
}

// Option configures the Bundle during construction.
type Option func(*Bundle) error

// New creates a Bundle from the given options. All configuration happens at
// construction, keeping the instance immutable and safe for concurrent use.
func New(opts ...Option) (*Bundle, error) {
	b := &Bundle{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if b.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	if len(b.languages) == 0 {
		b.languages = b.collectLanguages()
	}

	return b, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(b *Bundle) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		b.defaultLang = lang
		return nil
	}
}

// WithTranslations loads translations for a language and namespace. Nested
// maps are flattened to dot paths internally.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(b *Bundle) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		for key, value := range flatten(translations, "") {
			b.translations[buildKey(lang, namespace, key)] = value
		}
		return nil
	}
}

// WithMissingKeyHandler sets a handler invoked when a key is absent in every
// language, including the default.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(b *Bundle) error {
		b.missingKeyHandler = handler
		return nil
	}
}

// Lookup retrieves a translation by dot path for exactly the given language.
// A miss is reported via ok=false, never an error; the caller keeps its
// current text in that case.
func (b *Bundle) Lookup(lang, namespace, key string) (string, bool) {
	v, ok := b.translations[buildKey(lang, namespace, key)]
	return v, ok
}

// T retrieves a translation, falling back to the default language and
// finally to the key itself so the widget never renders an empty label.
func (b *Bundle) T(lang, namespace, key string) string {
	if v, ok := b.Lookup(lang, namespace, key); ok {
		return v
	}
	if lang != b.defaultLang {
		if v, ok := b.Lookup(b.defaultLang, namespace, key); ok {
			return v
		}
	}
	if b.missingKeyHandler != nil {
		b.missingKeyHandler(lang, namespace, key)
	}
	return key
}

// Tn retrieves a pluralized translation for the given count, selecting
// key.one or key.other by the language's plural rule.
func (b *Bundle) Tn(lang, namespace, key string, n int) string {
	form := pluralForm(lang, n)
	if v, ok := b.Lookup(lang, namespace, key+"."+form); ok {
		return v
	}
	if form != pluralOther {
		if v, ok := b.Lookup(lang, namespace, key+"."+pluralOther); ok {
			return v
		}
	}
	if lang != b.defaultLang {
		return b.Tn(b.defaultLang, namespace, key, n)
	}
	if b.missingKeyHandler != nil {
		b.missingKeyHandler(lang, namespace, key)
	}
	return key
}

// Strings returns a copy of all flattened translations for one language and
// namespace, keyed by dot path. The widget fetches this once at bootstrap.
func (b *Bundle) Strings(lang, namespace string) map[string]string {
	prefix := buildKey(lang, namespace, "")
	out := make(map[string]string)
	for k, v := range b.translations {
		if strings.HasPrefix(k, prefix) {
			out[strings.TrimPrefix(k, prefix)] = v
		}
	}
	return out
}

// Languages returns the sorted list of languages present in the bundle,
// with the default language first.
func (b *Bundle) Languages() []string {
	return b.languages
}

// DefaultLanguage returns the fallback language.
func (b *Bundle) DefaultLanguage() string {
	return b.defaultLang
}

func (b *Bundle) collectLanguages() []string {
	seen := make(map[string]bool)
	for k := range b.translations {
		if lang, _, ok := strings.Cut(k, ":"); ok {
			seen[lang] = true
		}
	}
	delete(seen, b.defaultLang)

	others := make([]string, 0, len(seen))
	for lang := range seen {
		others = append(others, lang)
	}
	sort.Strings(others)

	return append([]string{b.defaultLang}, others...)
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flatten(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flatten(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
