package testhelper

import (
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strings"
)

// Pattern for test directories: 3 digits followed by a name
var acceptanceDirPattern = regexp.MustCompile(`^[0-9]{3}.*$`)

// GetAcceptanceTestDirs returns the acceptance test directories under root, sorted.
func GetAcceptanceTestDirs(fsys fs.FS, root string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s directory: %w", root, err)
	}

	var dirs []string

	for _, entry := range entries {
		if entry.IsDir() && acceptanceDirPattern.MatchString(entry.Name()) {
			dirs = append(dirs, path.Join(root, entry.Name()))
		}
	}

	slices.Sort(dirs)

	return dirs, nil
}

// ReadTestFile reads a file of an acceptance test directory
func ReadTestFile(fsys fs.FS, dir, name string) ([]byte, error) {
	return fs.ReadFile(fsys, path.Join(dir, name))
}

// IsErrorTest checks if a test is an error test
func IsErrorTest(testPath string) bool {
	return strings.HasSuffix(path.Base(testPath), "_err")
}
