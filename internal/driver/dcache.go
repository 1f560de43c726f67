package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"lyra/internal/diag"
	"lyra/internal/source"
	"lyra/internal/sourcemap"
)

// Bump when the payload format changes; stale entries are treated as misses.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores compile results keyed by a digest of (options, source).
// Thread-safe for concurrent access from the CLI's parallel compiles.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedDiagnostic is the flat msgpack shape of one diagnostic.
type cachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Start    uint32
	End      uint32
	Message  string
	Hint     string
	DocURL   string
}

// diskPayload is the msgpack envelope for one cached compile.
type diskPayload struct {
	Schema      uint16
	Code        string
	HasMap      bool
	Mappings    string
	MapFile     string
	Diagnostics []cachedDiagnostic
	A11yErrors  int
	Transformed bool
}

// OpenDiskCache initializes the cache at the standard location, or at dir
// when it is non-empty.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "lyra")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Key digests everything that affects a compile's output.
func Key(opts Options) [32]byte {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%t\x00%t\x00%d\x00", opts.Filename, opts.A11y, opts.SourceMap, opts.Dev, opts.MaxDiagnostics)
	h.Write([]byte(opts.Source))
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "mods", hex.EncodeToString(key[:])+".bin")
}

// Load returns the cached result for key, or ok=false on miss, corruption,
// or schema mismatch. The restored Result carries a fresh FileSet so spans
// still resolve.
func (c *DiskCache) Load(key [32]byte, opts Options) (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	raw, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return Result{}, false
	}
	var p diskPayload
	if err := msgpack.Unmarshal(raw, &p); err != nil {
		return Result{}, false
	}
	if p.Schema != diskCacheSchemaVersion {
		return Result{}, false
	}

	fs := source.NewFileSet()
	fileID := fs.AddVirtual(opts.Filename, []byte(opts.Source))

	diags := make([]diag.Diagnostic, 0, len(p.Diagnostics))
	for _, cd := range p.Diagnostics {
		diags = append(diags, diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: fileID, Start: cd.Start, End: cd.End},
			Hint:     cd.Hint,
			DocURL:   cd.DocURL,
		})
	}

	var m *sourcemap.Map
	if p.HasMap {
		m = &sourcemap.Map{
			Version:        3,
			File:           p.MapFile,
			Sources:        []string{opts.Filename},
			SourcesContent: []string{opts.Source},
			Mappings:       p.Mappings,
		}
	}

	return Result{
		Code:        p.Code,
		Map:         m,
		Diagnostics: diags,
		Meta: Meta{
			A11yErrors:  p.A11yErrors,
			Transformed: p.Transformed,
			Symbols:     []string{},
		},
		FileSet: fs,
	}, true
}

// Store persists a compile result under key. Write errors are returned but
// callers may treat them as non-fatal: the cache is an optimization.
func (c *DiskCache) Store(key [32]byte, res Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := diskPayload{
		Schema:      diskCacheSchemaVersion,
		Code:        res.Code,
		A11yErrors:  res.Meta.A11yErrors,
		Transformed: res.Meta.Transformed,
	}
	if res.Map != nil {
		p.HasMap = true
		p.Mappings = res.Map.Mappings
		p.MapFile = res.Map.File
	}
	for i := range res.Diagnostics {
		d := &res.Diagnostics[i]
		p.Diagnostics = append(p.Diagnostics, cachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
			Hint:     d.Hint,
			DocURL:   d.DocURL,
		})
	}

	raw, err := msgpack.Marshal(&p)
	if err != nil {
		return err
	}

	path := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Clear removes every cached entry.
func (c *DiskCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := os.RemoveAll(filepath.Join(c.dir, "mods"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
