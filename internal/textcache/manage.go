package textcache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"spdxdiff/internal/logging"
)

// Entry describes one cached license text.
type Entry struct {
	ID         string
	Path       string
	SizeBytes  int64
	ModifiedAt time.Time
}

// Stats summarizes cache usage.
type Stats struct {
	Dir        string
	Entries    int
	TotalBytes int64
}

// List returns every cached text sorted by identifier.
func (c *Cache) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache directory: %w", err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if !de.Type().IsRegular() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, textExt) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue // removed underneath us
		}
		entries = append(entries, Entry{
			ID:         strings.TrimSuffix(name, textExt),
			Path:       filepath.Join(c.dir, name),
			SizeBytes:  info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// Stats returns entry count and total size.
func (c *Cache) Stats() (Stats, error) {
	entries, err := c.List()
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{Dir: c.dir, Entries: len(entries)}
	for _, entry := range entries {
		stats.TotalBytes += entry.SizeBytes
	}
	return stats, nil
}

// Clear removes every cached text and returns how many were removed.
func (c *Cache) Clear() (int, error) {
	entries, err := c.List()
	if err != nil {
		return 0, err
	}
	removed, err := removeEntries(entries)
	c.logger.Debug("cleared license text cache", logging.Int("removed", removed))
	return removed, err
}

// removeEntries deletes each entry's file. Files already gone are not
// counted.
func removeEntries(entries []Entry) (int, error) {
	removed := 0
	for _, entry := range entries {
		err := os.Remove(entry.Path)
		switch {
		case err == nil:
			removed++
		case errors.Is(err, fs.ErrNotExist):
		default:
			return removed, fmt.Errorf("remove %s: %w", entry.Path, err)
		}
	}
	return removed, nil
}
