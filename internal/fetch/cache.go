package fetch

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/interlinear/core/errors"
)

// Cache is a disk cache for fetched translation payloads, keyed by the
// BLAKE3 digest of the request. Blobs live at <dir>/<first2>/<digest>,
// so repeated generation runs for the same passage work offline. A nil
// Cache disables caching.
type Cache struct {
	dir string
}

// NewCache creates a response cache rooted at dir.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.NewIO("create", dir, err)
	}
	return &Cache{dir: dir}, nil
}

// Key derives the cache key for a request description.
func Key(parts ...string) string {
	sum := blake3.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key[:2], key)
}

// Get returns the cached payload for a key, if present.
func (c *Cache) Get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Put stores a payload under a key. Writes go through a temp file so a
// crashed run never leaves a truncated blob behind.
func (c *Cache) Put(key string, data []byte) error {
	if c == nil {
		return nil
	}
	dir := filepath.Dir(c.path(key))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewIO("create", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".blob-*")
	if err != nil {
		return errors.NewIO("write", dir, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.NewIO("write", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.NewIO("write", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), c.path(key)); err != nil {
		os.Remove(tmp.Name())
		return errors.NewIO("write", c.path(key), err)
	}
	return nil
}
