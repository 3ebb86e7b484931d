package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// LoadFS reads translation catalog files from fsys, laid out as
//
//	<root>/<locale>/<namespace>.json
//	<root>/<locale>/<namespace>.yaml (or .yml)
//	<root>/<locale>/<namespace>.toml
//
// and returns the WithTranslations options for everything that loaded.
// Files that fail to read, parse, or validate are skipped and reported in
// the joined error; one broken namespace never prevents the others from
// loading. Directories are walked in sorted order, so repeated loads are
// deterministic.
func LoadFS(fsys fs.FS, root string) ([]Option, error) {
	dirs, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("i18n: read catalog root %q: %w", root, err)
	}

	var opts []Option
	var errs []error

	for _, dir := range dirs {
		if !dir.IsDir() || strings.HasPrefix(dir.Name(), ".") {
			continue
		}
		locale := dir.Name()

		files, err := fs.ReadDir(fsys, path.Join(root, locale))
		if err != nil {
			errs = append(errs, fmt.Errorf("i18n: read locale dir %q: %w", locale, err))
			continue
		}

		for _, file := range files {
			if file.IsDir() || strings.HasPrefix(file.Name(), ".") {
				continue
			}
			namespace, tree, err := loadCatalogFile(fsys, path.Join(root, locale, file.Name()))
			if err != nil {
				if !errors.Is(err, errSkipFile) {
					errs = append(errs, err)
				}
				continue
			}
			opts = append(opts, WithTranslations(locale, namespace, tree))
		}
	}

	if len(opts) == 0 && len(errs) == 0 {
		return nil, ErrNoCatalogFiles
	}
	return opts, errors.Join(errs...)
}

// LoadDir is a convenience wrapper over LoadFS for an OS directory.
func LoadDir(dir string) ([]Option, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// errSkipFile marks files with extensions the loader does not handle.
var errSkipFile = errors.New("i18n: unsupported catalog file")

func loadCatalogFile(fsys fs.FS, name string) (namespace string, tree map[string]any, err error) {
	ext := strings.ToLower(path.Ext(name))
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	if base == "" {
		return "", nil, errSkipFile
	}

	var unmarshal func([]byte, any) error
	switch ext {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = func(data []byte, v any) error { return yaml.Unmarshal(data, v) }
	case ".toml":
		unmarshal = func(data []byte, v any) error { return toml.Unmarshal(data, v) }
	default:
		return "", nil, errSkipFile
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", nil, fmt.Errorf("i18n: read %q: %w", name, err)
	}

	tree = make(map[string]any)
	if err := unmarshal(data, &tree); err != nil {
		return "", nil, fmt.Errorf("i18n: parse %q: %w", name, err)
	}
	if err := validateTree(tree); err != nil {
		return "", nil, fmt.Errorf("i18n: validate %q: %w", name, err)
	}

	return base, tree, nil
}
