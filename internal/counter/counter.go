package counter

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidPath means the root is neither a directory nor a regular file.
	ErrInvalidPath = errors.New("path is neither a directory nor a regular file")
)

// binarySniffLen is how many leading bytes are inspected for a NUL byte.
const binarySniffLen = 8192

// Totals holds the aggregate result of one scan. Per-file breakdowns are not
// retained; counting is a commutative sum, so traversal order never matters.
type Totals struct {
	Files   int   `json:"files"`
	Lines   int64 `json:"lines"`
	Chars   int64 `json:"chars"`
	Skipped int   `json:"skipped"`
}

// Counter scans a directory tree and counts physical lines (and runes) across
// all files whose extension is recognized.
type Counter struct {
	extensions map[string]struct{}
}

// New creates a counter using the default extension set.
func New() *Counter {
	return &Counter{extensions: DefaultExtensions}
}

// WithExtensions adds extra recognized extensions on top of the default set.
// Entries may be given with or without a leading dot.
func (c *Counter) WithExtensions(exts []string) *Counter {
	if len(exts) == 0 {
		return c
	}
	merged := make(map[string]struct{}, len(DefaultExtensions)+len(exts))
	for ext := range c.extensions {
		merged[ext] = struct{}{}
	}
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		merged[ext] = struct{}{}
	}
	c.extensions = merged
	return c
}

// Count returns the totals for the tree rooted at root. A regular file is
// treated as a single-file project. Unreadable or binary files are skipped
// with a warning; only a dead root fails the scan.
func (c *Counter) Count(root string) (Totals, error) {
	var totals Totals
	err := c.scan(root, func(path string, data []byte) {
		totals.Files++
		totals.Lines += countLines(data)
		totals.Chars += int64(utf8.RuneCount(data))
	}, &totals.Skipped)
	if err != nil {
		return Totals{}, err
	}
	return totals, nil
}

// scan walks root and invokes visit with the content of every qualifying,
// readable, non-binary file. Skipped files are tallied into skipped.
func (c *Counter) scan(root string, visit func(path string, data []byte), skipped *int) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat %s: %w", root, err)
	}

	if info.Mode().IsRegular() {
		if c.recognized(root) {
			c.visitFile(root, visit, skipped)
		}
		return nil
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", root, ErrInvalidPath)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Permission errors or races inside the tree are recoverable.
			slog.Warn("skipping unreadable entry", "path", path, "error", err)
			*skipped++
			return nil
		}
		if d.IsDir() {
			// Hidden directories (.git, editor caches) are pruned. The root
			// itself is exempt so a hidden project directory still scans.
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		// Symlinks are never followed; only regular files count.
		if !d.Type().IsRegular() {
			return nil
		}
		if !c.recognized(path) {
			return nil
		}
		c.visitFile(path, visit, skipped)
		return nil
	})
}

func (c *Counter) visitFile(path string, visit func(path string, data []byte), skipped *int) {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("skipping unreadable file", "path", path, "error", err)
		*skipped++
		return
	}
	if isBinary(data) {
		slog.Warn("skipping binary file", "path", path)
		*skipped++
		return
	}
	visit(path, data)
}

// recognized reports whether the file's extension is in the recognized set.
// Matching is case-insensitive.
func (c *Counter) recognized(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	_, ok := c.extensions[ext]
	return ok
}

// countLines counts line-terminator-delimited segments. An unterminated
// final segment counts as one line when non-empty.
func countLines(data []byte) int64 {
	if len(data) == 0 {
		return 0
	}
	n := int64(bytes.Count(data, []byte{'\n'}))
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}

// isBinary sniffs the leading bytes for a NUL, which never appears in text.
func isBinary(data []byte) bool {
	if len(data) > binarySniffLen {
		data = data[:binarySniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}
