package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"brutalist/data"
)

var (
	ErrNoFiles           = errors.New("no dataset files matched")
	ErrUnsupportedFormat = errors.New("unsupported dataset file format")
)

// Sources names the files a dataset is loaded from. Entries may be plain
// paths or doublestar globs. When both lists are empty the bundled dataset
// is used.
type Sources struct {
	Buildings   []string
	Collections []string
}

func (s Sources) Empty() bool {
	return len(s.Buildings) == 0 && len(s.Collections) == 0
}

// Load reads every building and collection file named by src, concatenating
// records in lexical file order within each pattern.
func Load(ctx context.Context, src Sources) (*Dataset, error) {
	if src.Empty() {
		return Bundled()
	}

	buildings, err := loadAll[Building](ctx, src.Buildings)
	if err != nil {
		return nil, fmt.Errorf("loading buildings: %w", err)
	}
	collections, err := loadAll[Collection](ctx, src.Collections)
	if err != nil {
		return nil, fmt.Errorf("loading collections: %w", err)
	}
	return New(buildings, collections), nil
}

// Bundled returns the dataset compiled into the binary.
func Bundled() (*Dataset, error) {
	return LoadFS(data.FS, data.BuildingsFile, data.CollectionsFile)
}

// LoadFS reads a single buildings file and a single collections file from fsys.
func LoadFS(fsys fs.FS, buildingsPath, collectionsPath string) (*Dataset, error) {
	raw, err := fs.ReadFile(fsys, buildingsPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", buildingsPath, err)
	}
	buildings, err := decode[Building](buildingsPath, raw)
	if err != nil {
		return nil, err
	}

	raw, err = fs.ReadFile(fsys, collectionsPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", collectionsPath, err)
	}
	collections, err := decode[Collection](collectionsPath, raw)
	if err != nil {
		return nil, err
	}
	return New(buildings, collections), nil
}

func loadAll[T any](ctx context.Context, patterns []string) ([]T, error) {
	var out []T
	for _, pattern := range patterns {
		files, err := expand(pattern)
		if err != nil {
			return nil, err
		}
		for _, path := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", path, err)
			}
			records, err := decode[T](path, raw)
			if err != nil {
				return nil, err
			}
			out = append(out, records...)
		}
	}
	return out, nil
}

func expand(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

func decode[T any](path string, raw []byte) ([]T, error) {
	var records []T
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return records, nil
}
