package analyzer

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"create-endpoint/internal/utils"
)

// ScanRoutes walks apiRoot and returns every file named routeFile.
// Private folders ("_lib") and directories matched by exclude are skipped.
// A missing apiRoot yields no files.
func ScanRoutes(apiRoot, routeFile string, exclude func(path string) bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(apiRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == apiRoot && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipDir
			}
			return err
		}

		if d.IsDir() {
			if path == apiRoot {
				return nil
			}
			// Skip VCS metadata always
			if d.Name() == ".git" || d.Name() == ".svn" {
				return filepath.SkipDir
			}
			if utils.IsPrivateFolder(d.Name()) {
				return filepath.SkipDir
			}
			if exclude != nil && exclude(filepath.ToSlash(path)) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Name() == routeFile {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	sort.Strings(files)
	return files, nil
}
