package store

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"logicsim"
)

// Bump when the cached payload format changes so stale entries miss instead
// of decoding garbage.
const cacheSchemaVersion uint16 = 1

// A Digest keys a cache entry by the content of the raw definition texts.
type Digest [sha256.Size]byte

// DigestTexts hashes the raw record texts, in order, into a cache key.
//
func DigestTexts(texts []string) Digest {
	h := sha256.New()
	for _, t := range texts {
		h.Write([]byte(t))
		h.Write([]byte{0})
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

type cachePayload struct {
	Schema  uint16
	Records []logicsim.ChipRecord
}

// A Cache keeps parsed, normalized chip records on disk keyed by a digest of
// the raw definition texts, so reopening an unchanged workspace skips record
// parsing. A nil *Cache is a valid no-op cache.
//
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// OpenCache initializes a record cache at the standard user cache location.
//
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

// OpenCacheAt initializes a record cache in an explicit directory.
//
func OpenCacheAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "lib", hex.EncodeToString(key[:])+".mp")
}

// Put serializes the records under key, atomically.
//
func (c *Cache) Put(key Digest, records []logicsim.ChipRecord) error {
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
	if err := msgpack.NewEncoder(f).Encode(&cachePayload{
		Schema:  cacheSchemaVersion,
		Records: records,
	}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get returns the records cached under key, or ok=false on a miss or a
// schema mismatch.
//
func (c *Cache) Get(key Digest) (records []logicsim.ChipRecord, ok bool, err error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()
	var p cachePayload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, false, errors.Wrap(err, "decode record cache")
	}
	if p.Schema != cacheSchemaVersion {
		return nil, false, nil
	}
	return p.Records, true, nil
}

// DropAll invalidates the whole cache.
//
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "lib"))
}
