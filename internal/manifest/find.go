package manifest

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFindDepth bounds how many directories FindUp inspects.
const DefaultFindDepth = 5

// FindUp looks for a package.json in start and up to maxDepth-1 of its
// ancestors and returns the first path found.
//
// This is only meant for locating rpc's own metadata next to its
// installation. User scripts are always read with Load.
func FindUp(start string, maxDepth int) (string, error) {
	dir := start
	for i := 0; i < maxDepth; i++ {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%w in %s or its parents", ErrNotFound, start)
}

// ReadVersion returns the version field of the manifest at path.
func ReadVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	m, err := parseMetadata(data)
	if err != nil {
		return "", err
	}
	if m.Version == "" {
		return "", fmt.Errorf("%w: %s has no version", ErrInvalid, path)
	}
	return m.Version, nil
}
