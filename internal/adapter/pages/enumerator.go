// Package pages finds page files on the local filesystem.
package pages

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/m-zajac/ghcontributors/internal/app"
)

// Enumerator expands page patterns into file paths.
// This struct is an adapter for app.PageEnumerator.
type Enumerator struct{}

var _ app.PageEnumerator = &Enumerator{}

// NewEnumerator creates new Enumerator instance.
func NewEnumerator() *Enumerator {
	return &Enumerator{}
}

// Expand returns sorted, absolute paths of files matching patterns.
//
// Relative patterns are resolved against workDir. A pattern pointing to an existing directory
// is expanded to all files below it with one of the extensions (all files when extensions are empty).
// A pattern pointing to an existing file is taken as is. Anything else is treated as a glob,
// supporting ** for recursive matching.
func (e *Enumerator) Expand(ctx context.Context, workDir string, patterns []string, extensions []string) ([]string, error) {
	found := make(map[string]struct{})
	for _, pattern := range patterns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		abs := pattern
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, pattern)
		}
		abs, err := filepath.Abs(abs)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", pattern, err)
		}

		paths, err := e.expandPattern(abs, extensions)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		for _, p := range paths {
			found[p] = struct{}{}
		}
	}

	result := make([]string, 0, len(found))
	for p := range found {
		result = append(result, p)
	}
	sort.Strings(result)

	return result, nil
}

func (e *Enumerator) expandPattern(abs string, extensions []string) ([]string, error) {
	info, err := os.Stat(abs)
	switch {
	case err == nil && info.IsDir():
		return glob(abs, directoryPattern(extensions))
	case err == nil:
		return []string{filepath.Clean(abs)}, nil
	}

	base, pattern := doublestar.SplitPattern(filepath.ToSlash(abs))
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	if _, err := os.Stat(filepath.FromSlash(base)); err != nil {
		// Nothing to match in a missing directory.
		return nil, nil
	}

	return glob(filepath.FromSlash(base), pattern)
}

func glob(dir string, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(dir, filepath.FromSlash(m)))
	}

	return paths, nil
}

// directoryPattern returns glob matching files with given extensions in a directory tree.
func directoryPattern(extensions []string) string {
	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			exts = append(exts, ext)
		}
	}

	switch len(exts) {
	case 0:
		return "**/*"
	case 1:
		return "**/*." + exts[0]
	default:
		return "**/*.{" + strings.Join(exts, ",") + "}"
	}
}
