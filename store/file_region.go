package store

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileRegion persists each slot as a JSON file under a directory.
// Writes go to a temp file followed by a rename, so a slot is always
// either its old or its new content, never a torn write. Intended for
// local development where no Redis is available.
type FileRegion struct {
	dir string
	mu  sync.Mutex
}

func NewFileRegion(dir string) (*FileRegion, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileRegion{dir: dir}, nil
}

// path maps a slot name to a file. Slot names contain ":" separators
// and user-supplied ids, so anything outside a safe set is hex-escaped.
func (f *FileRegion) path(slot string) string {
	var b strings.Builder
	for i := 0; i < len(slot); i++ {
		c := slot[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			b.WriteByte(c)
		case c == ':':
			b.WriteByte('.')
		default:
			b.WriteByte('%')
			b.WriteString(hex.EncodeToString([]byte{c}))
		}
	}
	return filepath.Join(f.dir, b.String()+".json")
}

func (f *FileRegion) Read(_ context.Context, slot string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(slot))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (f *FileRegion) Write(_ context.Context, slot string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.path(slot)
	tmp, err := os.CreateTemp(f.dir, ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (f *FileRegion) Delete(_ context.Context, slot string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path(slot))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
