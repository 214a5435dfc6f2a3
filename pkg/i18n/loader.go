package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithJSONDir returns an Option that loads translations from JSON files in
// an fs.FS. The root must contain language directories directly, following
// the {lang}/{namespace}.json convention:
//
//	de/widget.json
//	en/widget.json
func WithJSONDir(fsys fs.FS) Option {
	return func(b *Bundle) error {
		return loadDir(b, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLDir returns an Option that loads translations from YAML files in
// an fs.FS, following {lang}/{namespace}.yaml (or .yml).
func WithYAMLDir(fsys fs.FS) Option {
	return func(b *Bundle) error {
		return loadDir(b, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

func loadDir(b *Bundle, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))
		if ext == ".yaml" {
			if fileExt != ".yaml" && fileExt != ".yml" {
				return nil
			}
		} else if fileExt != ext {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
		}

		lang := path.Base(dir)
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var translations map[string]any
		if err := unmarshal(data, &translations); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		for key, value := range flatten(translations, "") {
			b.translations[buildKey(lang, namespace, key)] = value
		}

		return nil
	})
}
