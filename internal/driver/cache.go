package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when cachePayload format changes.
const cacheSchemaVersion uint16 = 1

// cachePayload stores the rendered outcome of linting one file.
type cachePayload struct {
	Schema      uint16
	Rendered    string
	Errors      int
	Warnings    int
	Conventions int
}

// Cache keeps lint results on disk keyed by content digest, so unchanged
// files are not re-analyzed. Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// OpenCache initializes and returns a disk cache at the standard location.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// OpenCacheDir is OpenCache at an explicit directory, used by tests.
func OpenCacheDir(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// cacheKey folds the file content and the effective check set into one
// digest, so toggling checks never serves stale results.
func cacheKey(data []byte, disable []string) [sha256.Size]byte {
	h := sha256.New()
	h.Write(data)
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(disable, ",")))
	var key [sha256.Size]byte
	copy(key[:], h.Sum(nil))
	return key
}

func (c *Cache) pathFor(key [sha256.Size]byte) string {
	return filepath.Join(c.dir, "docs", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and atomically writes a payload to the disk cache.
func (c *Cache) Put(key [sha256.Size]byte, payload *cachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *Cache) Get(key [sha256.Size]byte, out *cachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}
