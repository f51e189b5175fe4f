package counter

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"sort"
)

// Snapshot returns a map of relative path to SHA-256 content hash for every
// qualifying file under root. It shares the walk policy of Count, so a
// snapshot and a count taken back to back describe the same file set.
func (c *Counter) Snapshot(root string) (map[string]string, error) {
	files := make(map[string]string)
	var skipped int
	err := c.scan(root, func(path string, data []byte) {
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			// Single-file project: the root itself is the counted file.
			rel = filepath.Base(path)
		}
		sum := sha256.Sum256(data)
		files[filepath.ToSlash(rel)] = hex.EncodeToString(sum[:])
	}, &skipped)
	if err != nil {
		return nil, err
	}
	return files, nil
}

// DiffSnapshots compares two snapshots taken at session boundaries and
// classifies each path as created, modified, or deleted. Results are sorted.
func DiffSnapshots(before, after map[string]string) (created, modified, deleted []string) {
	for path, hash := range after {
		prev, ok := before[path]
		switch {
		case !ok:
			created = append(created, path)
		case prev != hash:
			modified = append(modified, path)
		}
	}
	for path := range before {
		if _, ok := after[path]; !ok {
			deleted = append(deleted, path)
		}
	}
	sort.Strings(created)
	sort.Strings(modified)
	sort.Strings(deleted)
	return created, modified, deleted
}
