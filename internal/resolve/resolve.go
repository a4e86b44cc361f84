// Package resolve turns a user supplied path into the canonical directory
// the explorer operates on.
package resolve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrResolve wraps every failure to produce a usable directory.
	ErrResolve = errors.New("cannot resolve directory")
	// ErrNotDirectory is returned when the path exists but is not a directory.
	ErrNotDirectory = fmt.Errorf("%w: not a directory", ErrResolve)
)

// Directory returns the absolute, symlink-free form of path and checks that it
// names an existing directory. An empty path means the working directory.
//
// ".." is applied to the real location after symlinks are followed, so
// "link/.." names the parent of the link's target.
func Directory(path string) (string, error) {
	if path == "" {
		path = "."
	}

	abs, err := absolute(path)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrResolve, path, err)
	}

	// EvalSymlinks also fails on missing components, so existence is checked here.
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrResolve, path, err)
	}

	fi, err := os.Stat(canonical)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrResolve, path, err)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, canonical)
	}

	return canonical, nil
}

// absolute anchors path at the working directory without cleaning it.
// filepath.Abs would collapse "x/.." lexically before links are resolved.
func absolute(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	if filepath.VolumeName(path) != "" {
		// Drive-relative Windows paths such as "C:dir".
		return filepath.Abs(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return wd + string(filepath.Separator) + path, nil
}
