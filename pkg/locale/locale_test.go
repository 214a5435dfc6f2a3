package locale_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tecblu/savings-widget/pkg/locale"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("bare root domain defaults to German Swiss", func(t *testing.T) {
		t.Parallel()
		info := locale.Resolve("tecblu.ch", locale.Overrides{})

		require.Equal(t, locale.German, info.Language)
		require.Equal(t, locale.Switzerland, info.Country)
		require.Equal(t, locale.CHF, info.Currency)
		require.InDelta(t, 1.95, info.DefaultPrices.DieselPerLiter, 1e-9)
		require.InDelta(t, 1.35, info.DefaultPrices.HeatingPerLiter, 1e-9)
	})

	t.Run("english subdomain on italian TLD", func(t *testing.T) {
		t.Parallel()
		info := locale.Resolve("en.tecblu.it", locale.Overrides{})

		require.Equal(t, locale.English, info.Language)
		require.Equal(t, locale.Italy, info.Country)
		require.Equal(t, locale.EUR, info.Currency)
	})

	t.Run("language and country resolve independently", func(t *testing.T) {
		t.Parallel()
		info := locale.Resolve("fr.tecblu.de", locale.Overrides{})

		require.Equal(t, locale.French, info.Language)
		require.Equal(t, locale.Germany, info.Country)
		require.Equal(t, locale.EUR, info.Currency)
	})

	t.Run("overrides win over hostname", func(t *testing.T) {
		t.Parallel()
		info := locale.Resolve("en.tecblu.it", locale.Overrides{Language: "de", Country: "AT"})

		require.Equal(t, locale.German, info.Language)
		require.Equal(t, locale.Austria, info.Country)
		require.Equal(t, locale.EUR, info.Currency)
	})

	t.Run("unsupported overrides fall through to hostname", func(t *testing.T) {
		t.Parallel()
		info := locale.Resolve("it.tecblu.ch", locale.Overrides{Language: "es", Country: "US"})

		require.Equal(t, locale.Italian, info.Language)
		require.Equal(t, locale.Switzerland, info.Country)
	})

	t.Run("override case is normalized", func(t *testing.T) {
		t.Parallel()
		info := locale.Resolve("tecblu.ch", locale.Overrides{Language: "FR", Country: "it"})

		require.Equal(t, locale.French, info.Language)
		require.Equal(t, locale.Italy, info.Country)
	})

	t.Run("unknown TLD defaults to Switzerland", func(t *testing.T) {
		t.Parallel()
		info := locale.Resolve("tecblu.com", locale.Overrides{})

		require.Equal(t, locale.Switzerland, info.Country)
		require.Equal(t, locale.CHF, info.Currency)
	})

	t.Run("port is stripped before matching", func(t *testing.T) {
		t.Parallel()
		info := locale.Resolve("en.tecblu.it:8443", locale.Overrides{})

		require.Equal(t, locale.English, info.Language)
		require.Equal(t, locale.Italy, info.Country)
	})

	t.Run("empty hostname converges to default", func(t *testing.T) {
		t.Parallel()
		info := locale.Resolve("", locale.Overrides{})

		require.Equal(t, locale.German, info.Language)
		require.Equal(t, locale.Switzerland, info.Country)
		require.Equal(t, locale.CHF, info.Currency)
	})

	t.Run("identical inputs yield identical Info", func(t *testing.T) {
		t.Parallel()
		a := locale.Resolve("fr.tecblu.at", locale.Overrides{Country: "DE"})
		b := locale.Resolve("fr.tecblu.at", locale.Overrides{Country: "DE"})

		require.Equal(t, a, b)
	})
}

func TestLanguageFromHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		host    string
		want    locale.Language
		matched bool
	}{
		{"tecblu.ch", locale.German, false},
		{"en.tecblu.ch", locale.English, true},
		{"en.tecblu.de", locale.English, true},
		{"fr.tecblu.ch", locale.French, true},
		{"tecblu.fr", locale.French, true},
		{"it.tecblu.ch", locale.Italian, true},
		{"tecblu.it", locale.Italian, true},
		{"EN.TECBLU.IT", locale.English, true},
	}

	for _, tc := range cases {
		lang, ok := locale.LanguageFromHost(tc.host)
		require.Equal(t, tc.want, lang, "host %s", tc.host)
		require.Equal(t, tc.matched, ok, "host %s", tc.host)
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	t.Run("matches supported language", func(t *testing.T) {
		t.Parallel()
		lang, ok := locale.MatchAcceptLanguage("fr-CH, fr;q=0.9, en;q=0.8")
		require.True(t, ok)
		require.Equal(t, locale.French, lang)
	})

	t.Run("regional variant maps to base language", func(t *testing.T) {
		t.Parallel()
		lang, ok := locale.MatchAcceptLanguage("it-IT")
		require.True(t, ok)
		require.Equal(t, locale.Italian, lang)
	})

	t.Run("empty header does not match", func(t *testing.T) {
		t.Parallel()
		_, ok := locale.MatchAcceptLanguage("")
		require.False(t, ok)
	})

	t.Run("garbage header does not match", func(t *testing.T) {
		t.Parallel()
		_, ok := locale.MatchAcceptLanguage(";;;")
		require.False(t, ok)
	})
}
