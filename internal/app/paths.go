package app

import (
	"path"
	"strings"
)

// ResolvePagePath converts local file path into the repository relative path used for querying github history.
//
// workDir prefix is stripped from file, the rest is joined with root.
// Separators are always converted to forward slashes, and a single leading slash is removed.
// Input isn't validated: wrong root gives a well formed but wrong path.
func ResolvePagePath(workDir, root, file string) string {
	file = cleanSlash(file)
	workDir = strings.TrimSuffix(cleanSlash(workDir), "/")

	rel := file
	if workDir != "" && (file == workDir || strings.HasPrefix(file, workDir+"/")) {
		rel = strings.TrimPrefix(file, workDir)
	}

	p := path.Join(toSlash(root), rel)
	if p == "." {
		return ""
	}

	return strings.TrimPrefix(p, "/")
}

func cleanSlash(p string) string {
	if p == "" {
		return ""
	}
	return path.Clean(toSlash(p))
}

// toSlash replaces windows separators regardless of the current platform.
func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
