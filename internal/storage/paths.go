// internal/storage/paths.go
package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"mediabridge/internal/shared"
)

// CheckWithinRoots returns shared.ErrInvalidPath unless path, once cleaned,
// lies strictly inside one of roots. An empty roots list allows any path.
// The path itself is not rewritten: index lookups match it verbatim.
func CheckWithinRoots(path string, roots []string) error {
	if len(roots) == 0 {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%w: not absolute: %s", shared.ErrInvalidPath, path)
	}

	// --- SECURITY: Prevent Path Traversal ---
	cleaned := filepath.Clean(path)
	for _, root := range roots {
		cleanedRoot := filepath.Clean(root)
		if cleaned == cleanedRoot {
			continue
		}
		prefix := cleanedRoot
		if !strings.HasSuffix(prefix, string(filepath.Separator)) {
			prefix += string(filepath.Separator)
		}
		if strings.HasPrefix(cleaned, prefix) {
			return nil
		}
	}
	return fmt.Errorf("%w: outside media roots: %s", shared.ErrInvalidPath, path)
}
