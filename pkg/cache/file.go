package cache

import (
	"context"
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// headerSize is the length of the expiry stamp that precedes every entry.
const headerSize = 8

// FileCache keeps entries under a directory, one file per key, grouped by
// key kind:
//
//	<dir>/plan/3f/3fa9...c1
//	<dir>/artifact/07/07be...9d
//
// Each file is an 8-byte big-endian expiry (unix nanoseconds, 0 for none)
// followed by the raw value, so rendered PNG and XLSX bytes are stored as is.
type FileCache struct {
	dir string
	now func() time.Time
}

// NewFileCache opens a cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir, now: time.Now}, nil
}

// Dir returns the cache root.
func (c *FileCache) Dir() string { return c.dir }

// Get implements Cache. Unreadable or expired entries are removed and
// reported as misses.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	data, ok := c.decode(raw)
	if !ok {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return data, true, nil
}

// Set implements Cache. The entry is written to a temp file and renamed
// into place so readers never observe a partial value.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	var expires int64
	if ttl > 0 {
		expires = c.now().Add(ttl).UnixNano()
	}
	buf := make([]byte, headerSize+len(data))
	binary.BigEndian.PutUint64(buf, uint64(expires))
	copy(buf[headerSize:], data)

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf); err != nil {
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

// Delete implements Cache.
func (c *FileCache) Delete(_ context.Context, key string) error {
	err := os.Remove(c.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Clear removes every entry but keeps the root directory.
func (c *FileCache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Close implements Cache.
func (c *FileCache) Close() error { return nil }

// KindStats summarizes the entries of one key kind.
type KindStats struct {
	Kind    string
	Entries int
	Bytes   int64
}

// Stats walks the cache and reports entry counts and sizes per kind,
// sorted by kind.
func (c *FileCache) Stats() ([]KindStats, error) {
	byKind := make(map[string]*KindStats)
	err := filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".tmp-") {
			return nil
		}
		rel, err := filepath.Rel(c.dir, path)
		if err != nil {
			return err
		}
		kind, _, _ := strings.Cut(filepath.ToSlash(rel), "/")
		info, err := d.Info()
		if err != nil {
			return err
		}
		ks := byKind[kind]
		if ks == nil {
			ks = &KindStats{Kind: kind}
			byKind[kind] = ks
		}
		ks.Entries++
		ks.Bytes += info.Size() - headerSize
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]KindStats, 0, len(byKind))
	for _, ks := range byKind {
		out = append(out, *ks)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out, nil
}

func (c *FileCache) decode(raw []byte) ([]byte, bool) {
	if len(raw) < headerSize {
		return nil, false
	}
	expires := int64(binary.BigEndian.Uint64(raw))
	if expires != 0 && c.now().UnixNano() > expires {
		return nil, false
	}
	return raw[headerSize:], true
}

// path maps a key to <dir>/<kind>/<h[:2]>/<h>. The kind is the key segment
// just before the final one, so scoped keys such as "staging:plan:ab12"
// land under plan/.
func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, keyKind(key), h[:2], h)
}

func keyKind(key string) string {
	parts := strings.Split(key, ":")
	if len(parts) < 2 {
		return "misc"
	}
	kind := parts[len(parts)-2]
	if kind == "" || strings.ContainsAny(kind, `/\.`) {
		return "misc"
	}
	return kind
}

var _ Cache = (*FileCache)(nil)
