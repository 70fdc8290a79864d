package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
)

// emptyCollection is what a freshly created file contains.
var emptyCollection = []byte("[]\n")

// Store reads and writes record collections as JSON files inside a single
// data directory. Every save rewrites the file in full.
type Store struct {
	dir    string
	logger *slog.Logger
}

// New returns a store rooted at dir.
func New(dir string, logger *slog.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

// Load decodes the named collection into out, which must be a pointer to a
// slice. A missing file is created as an empty collection. A file that
// fails to decode is logged and treated as empty; it is rewritten on the
// next save, so corruption never propagates as a hard failure.
func (s *Store) Load(name string, out any) error {
	path := filepath.Join(s.dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if werr := os.WriteFile(path, emptyCollection, 0o644); werr != nil {
				return fmt.Errorf("create %s: %w", name, werr)
			}
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}

	// Decode into a scratch value so a file that breaks halfway through
	// cannot leave out partially filled.
	dst := reflect.ValueOf(out).Elem()
	scratch := reflect.New(dst.Type())
	if err := json.Unmarshal(raw, scratch.Interface()); err != nil {
		s.logger.Warn("collection corrupt, starting empty",
			slog.String("file", name),
			slog.Any("error", err))
		return nil
	}
	dst.Set(scratch.Elem())
	return nil
}

// Save rewrites the named collection with stable 4-space indentation. HTML
// escaping is off so non-ASCII text survives round trips readably.
func (s *Store) Save(name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
