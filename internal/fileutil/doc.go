// Package fileutil enumerates the files under a scan root.
//
// ScanDirectory walks a directory tree and returns every regular file beneath
// it, in lexical walk order. Callers decide which files to drop through the
// ExcludeFile predicate; directories are always descended into and are never
// passed to the predicate.
//
// Walking is error tolerant: an unreadable subdirectory or a broken symlink is
// recorded in ScanResult.Errors and the walk continues. Only a root that does
// not exist or is not a directory is a fatal error.
//
// Symlinks are not followed into directories. A symlink that resolves to a
// regular file is listed like the file itself.
//
//	result, err := fileutil.ScanDirectory(root, fileutil.ScanOptions{
//	    ExcludeFile: func(path string) bool { return ignore.Matches(spec, path, root) },
//	})
//	if err != nil {
//	    return err
//	}
//	for _, path := range result.Files {
//	    ...
//	}
package fileutil
