package quotedb

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/quotefeed/stooqsync/internal/observ"
)

// Store reads and writes the per-symbol cache file and its sidecar metadata
// under a single database root. All writes assemble the full target buffer
// before touching disk, so a reader of the same file never observes a partial
// state from a completed call.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

// CachePath returns the cache file path for symbol.
func (s *Store) CachePath(symbol string) string {
	return filepath.Join(s.root, symbol+".csv")
}

// MetaPath returns the metadata file path for symbol.
func (s *Store) MetaPath(symbol string) string {
	return filepath.Join(s.root, symbol+".config")
}

// Load returns every line of the symbol's cache file in file order. A missing
// file is legitimate initial state and yields no lines.
func (s *Store) Load(symbol string) ([]string, error) {
	b, err := os.ReadFile(s.CachePath(symbol))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load cache for %s: %w", symbol, err)
	}
	return splitFileLines(string(b)), nil
}

// Save overwrites the symbol's cache file with exactly lines, then records the
// download timestamp and the newest date key in the metadata.
func (s *Store) Save(symbol string, lines []string, meta Metadata, now time.Time) error {
	if meta == nil {
		meta = Metadata{}
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("save cache for %s: %w", symbol, err)
	}

	buf := strings.Join(lines, "\n")
	if buf != "" {
		buf += "\n"
	}
	if err := os.WriteFile(s.CachePath(symbol), []byte(buf), 0o644); err != nil {
		return fmt.Errorf("save cache for %s: %w", symbol, err)
	}

	meta.Set(MetaLastDownloadRun, now.Format(runStampLayout))
	meta.Set(MetaLastEntryInFile, lastDate(lines))

	if err := s.SaveMeta(symbol, meta); err != nil {
		return err
	}

	observ.Log("cache_saved", map[string]any{
		"symbol": symbol,
		"lines":  len(lines),
	})
	return nil
}

// LoadMeta reads the symbol's metadata file. A missing file yields an empty
// record; lines without a separator are ignored.
func (s *Store) LoadMeta(symbol string) (Metadata, error) {
	meta := Metadata{}

	b, err := os.ReadFile(s.MetaPath(symbol))
	if err != nil {
		if os.IsNotExist(err) {
			return meta, nil
		}
		return nil, fmt.Errorf("load metadata for %s: %w", symbol, err)
	}
	for _, line := range splitFileLines(string(b)) {
		k, v, ok := strings.Cut(line, "=")
		if !ok || k == "" {
			continue
		}
		meta[k] = v
	}
	return meta, nil
}

// SaveMeta persists the metadata record, stripping the in-memory identity
// keys. Keys are written in sorted order so repeated saves are byte-stable.
func (s *Store) SaveMeta(symbol string, meta Metadata) error {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		if k == metaTicker || k == metaTickerFile || k == metaConfigFile {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(meta[k])
		b.WriteString("\n")
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("save metadata for %s: %w", symbol, err)
	}
	if err := os.WriteFile(s.MetaPath(symbol), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("save metadata for %s: %w", symbol, err)
	}
	return nil
}

// lastDate returns the first field of the last non-empty line, scanning from
// the end. Empty when no non-empty line exists.
func lastDate(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i] == "" {
			continue
		}
		field := lines[i]
		if j := strings.IndexByte(field, ','); j >= 0 {
			field = field[:j]
		}
		return field
	}
	return ""
}

// splitFileLines splits file content on line boundaries, tolerating CRLF and
// dropping the empty tail a trailing newline would produce.
func splitFileLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
