package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ScanOptions configures the directory walk
type ScanOptions struct {
	// ExcludeFile reports whether a file path should be left out (nil keeps all)
	ExcludeFile func(path string) bool
}

// ScanResult contains the results of a directory walk
type ScanResult struct {
	// Files holds the kept file paths, rooted at the walked directory
	Files []string
	// Excluded counts files dropped by ExcludeFile
	Excluded int
	// Errors contains non-fatal errors encountered while walking
	Errors []error
}

// ScanDirectory lists every regular file under dir
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			if d != nil && d.IsDir() && path != dir {
				return filepath.SkipDir
			}
			return nil // Continue walking
		}

		if d.IsDir() {
			return nil
		}

		if !isRegularFile(path, d) {
			return nil
		}

		if opts.ExcludeFile != nil && opts.ExcludeFile(path) {
			result.Excluded++
			return nil
		}

		result.Files = append(result.Files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return result, nil
}

// isRegularFile accepts regular files and symlinks that resolve to one
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	target, err := os.Stat(path)
	return err == nil && target.Mode().IsRegular()
}
