package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/tecblu/savings-widget/pkg/i18n"
)

func TestWithJSONDir(t *testing.T) {
	t.Parallel()

	t.Run("loads lang directories", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"de/widget.json": &fstest.MapFile{Data: []byte(`{"tabs":{"diesel":"Diesel"},"cta":{"path":"/offerte"}}`)},
			"en/widget.json": &fstest.MapFile{Data: []byte(`{"tabs":{"diesel":"Diesel fuel"}}`)},
		}

		b, err := i18n.New(i18n.WithJSONDir(fsys))
		require.NoError(t, err)

		v, ok := b.Lookup("de", "widget", "cta.path")
		require.True(t, ok)
		require.Equal(t, "/offerte", v)

		require.Equal(t, "Diesel fuel", b.T("en", "widget", "tabs.diesel"))
		require.Equal(t, []string{"de", "en"}, b.Languages())
	})

	t.Run("file outside language directory fails", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"widget.json": &fstest.MapFile{Data: []byte(`{}`)},
		}

		_, err := i18n.New(i18n.WithJSONDir(fsys))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})

	t.Run("malformed JSON fails", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"de/widget.json": &fstest.MapFile{Data: []byte(`{broken`)},
		}

		_, err := i18n.New(i18n.WithJSONDir(fsys))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})
}

func TestWithYAMLDir(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"fr/widget.yaml": &fstest.MapFile{Data: []byte("tabs:\n  heating: Mazout\n")},
		"it/widget.yml":  &fstest.MapFile{Data: []byte("tabs:\n  heating: Gasolio\n")},
	}

	b, err := i18n.New(i18n.WithYAMLDir(fsys))
	require.NoError(t, err)

	v, ok := b.Lookup("fr", "widget", "tabs.heating")
	require.True(t, ok)
	require.Equal(t, "Mazout", v)

	v, ok = b.Lookup("it", "widget", "tabs.heating")
	require.True(t, ok)
	require.Equal(t, "Gasolio", v)
}
