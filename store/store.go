// Package store persists chip definitions and layouts for the logicsim
// engine: one text file per chip in a flat directory, a msgpack cache of
// parsed records, and the logicsim.toml workspace manifest.
//
package store

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"logicsim"
)

// FS stores chip definitions as text files under a root directory. It
// implements logicsim.Storage. Definition files end in logicsim.ChipFileExt,
// wire layouts in logicsim.LayoutFileExt.
//
type FS struct {
	root string
}

// NewFS opens (creating if needed) a chip store rooted at dir.
//
func NewFS(dir string) (*FS, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create chip store %q", dir)
	}
	return &FS{root: dir}, nil
}

// Root returns the store's root directory.
//
func (f *FS) Root() string { return f.root }

// ChipPaths returns the sorted relative paths of every chip definition in the
// store. Layout files are not definitions and are excluded.
//
func (f *FS) ChipPaths() ([]string, error) {
	ents, err := os.ReadDir(f.root)
	if err != nil {
		return nil, errors.Wrapf(err, "read chip store %q", f.root)
	}
	var paths []string
	for _, e := range ents {
		name := e.Name()
		if e.IsDir() || strings.HasSuffix(name, logicsim.LayoutFileExt) ||
			!strings.HasSuffix(name, logicsim.ChipFileExt) {
			continue
		}
		paths = append(paths, name)
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadChip returns the full text of the file at path.
//
func (f *FS) ReadChip(path string) (string, error) {
	b, err := os.ReadFile(filepath.Join(f.root, path))
	if err != nil {
		return "", errors.Wrapf(err, "read chip %q", path)
	}
	return string(b), nil
}

// WriteChip atomically replaces the file at path with text, going through a
// temp file and a rename so a crash never leaves a half-written definition.
//
func (f *FS) WriteChip(path, text string) error {
	full := filepath.Join(f.root, path)
	tmp, err := os.CreateTemp(filepath.Dir(full), "tmp-*")
	if err != nil {
		return errors.Wrapf(err, "write chip %q", path)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write chip %q", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "write chip %q", path)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return errors.Wrapf(err, "write chip %q", path)
	}
	return nil
}

// ReadAllChips reads every chip definition concurrently and returns the paths
// and their texts, index-aligned and in ChipPaths order. Reading is the only
// parallel stage of a load: record order is irrelevant here because the
// loader sorts by creation index before building.
//
func (f *FS) ReadAllChips(ctx context.Context) (paths, texts []string, err error) {
	paths, err = f.ChipPaths()
	if err != nil {
		return nil, nil, err
	}
	texts = make([]string, len(paths))
	g, _ := errgroup.WithContext(ctx)
	for i := range paths {
		i := i
		g.Go(func() error {
			t, err := f.ReadChip(paths[i])
			if err != nil {
				return err
			}
			texts[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return paths, texts, nil
}

// ReadLayout returns the saved wire layout for the named chip, or ok=false if
// none was ever saved.
//
func (f *FS) ReadLayout(chip string) (string, bool, error) {
	b, err := os.ReadFile(filepath.Join(f.root, chip+logicsim.LayoutFileExt))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "read layout for %q", chip)
	}
	return string(b), true, nil
}
