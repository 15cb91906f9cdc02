package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/natefinch/atomic"
)

// DeckExt is the only file extension served or accepted as a deck.
const DeckExt = ".csv"

// DeckStore is a directory of deck files. Every name passed in is checked so
// that it resolves to a file directly inside the directory.
type DeckStore struct {
	dir string
}

// NewDeckStore returns a store rooted at dir. The directory is not created
// until the first write.
func NewDeckStore(dir string) *DeckStore {
	return &DeckStore{dir: dir}
}

// Dir returns the store's root directory.
func (s *DeckStore) Dir() string {
	return s.dir
}

// List returns the sorted names of the .csv files in the store.
// Subdirectories and other files are ignored.
func (s *DeckStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDataDirNotFound, s.dir)
		}
		return nil, fmt.Errorf("list decks: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !hasDeckExt(entry.Name()) {
			continue
		}
		// Stat follows symlinks, so a link to a deck file is listed.
		info, err := os.Stat(filepath.Join(s.dir, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Open opens a deck file for reading.
func (s *DeckStore) Open(name string) (*os.File, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrDeckNotFound, name)
		}
		return nil, fmt.Errorf("stat deck %q: %w", name, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %q", ErrNotAFile, name)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck %q: %w", name, err)
	}
	return f, nil
}

// Exists reports whether a deck with this name is present.
func (s *DeckStore) Exists(name string) bool {
	path, err := s.resolve(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Write atomically replaces (or creates) a deck file.
func (s *DeckStore) Write(name string, data []byte) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create deck directory: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write deck %q: %w", name, err)
	}
	return nil
}

// resolve maps a deck name to a path inside the store, rejecting anything
// that could escape it: separators, "..", absolute paths and symlinks that
// point outside.
func (s *DeckStore) resolve(name string) (string, error) {
	if err := ValidateFilename(name); err != nil {
		return "", err
	}

	base, err := filepath.Abs(s.dir)
	if err != nil {
		return "", fmt.Errorf("resolve deck directory: %w", err)
	}
	path := filepath.Join(base, name)

	// Follow symlinks when the target exists, then re-check containment.
	if real, err := filepath.EvalSymlinks(path); err == nil {
		realBase, err := filepath.EvalSymlinks(base)
		if err != nil {
			realBase = base
		}
		if !within(realBase, real) {
			return "", fmt.Errorf("%w: %q resolves outside the deck directory", ErrInvalidFilename, name)
		}
	}

	return path, nil
}

// ValidateFilename rejects names that are empty or are not a single plain
// path element.
func ValidateFilename(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidFilename)
	case strings.Contains(name, ".."):
		return fmt.Errorf("%w: %q: directory traversal not allowed", ErrInvalidFilename, name)
	case strings.ContainsAny(name, `/\`) || filepath.IsAbs(name):
		return fmt.Errorf("%w: %q: paths not allowed", ErrInvalidFilename, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	return nil
}

func within(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func hasDeckExt(name string) bool {
	return strings.EqualFold(filepath.Ext(name), DeckExt)
}

// readAllFrom reads deck text from f and closes it.
func readAllFrom(f io.ReadCloser, limit int64) (string, int64, error) {
	defer f.Close()
	return ReadDeckText(f, limit)
}
