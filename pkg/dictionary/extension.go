package dictionary

import (
	"io/fs"
	"strings"
)

// splitPaths breaks a ';'-separated location list into trimmed entries.
// A single leading '/' marks a path relative to the extension root and is
// dropped.
func splitPaths(value string) []string {
	var paths []string
	for _, p := range strings.Split(value, ";") {
		p = strings.TrimSpace(p)
		p = strings.TrimPrefix(p, "/")
		p = strings.TrimRight(p, "/")
		if p == "" {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}

// extFiles resolves the locations listed under key into word-list files on
// the extension root. Directories are walked recursively and contribute every
// regular file below them. Entries that are malformed or missing are logged
// and skipped.
func (l *loader) extFiles(key string) []string {
	if key == "" || l.source == nil {
		return nil
	}
	value, ok := l.source.Lookup(key)
	if !ok {
		return nil
	}

	var files []string
	for _, p := range splitPaths(value) {
		if !fs.ValidPath(p) {
			l.log.Errorf("[Ext Loading] malformed path %q under %s", p, key)
			continue
		}
		if l.ext == nil {
			l.log.Errorf("[Ext Loading] %s not found: no extension root configured", p)
			continue
		}
		info, err := fs.Stat(l.ext, p)
		if err != nil {
			l.log.Errorf("[Ext Loading] %s not found: %v", p, err)
			continue
		}
		switch {
		case info.Mode().IsRegular():
			files = append(files, p)
		case info.IsDir():
			files = append(files, l.walk(p)...)
		default:
			l.log.Warnf("[Ext Loading] %s is not a file or directory", p)
		}
	}
	return files
}

func (l *loader) walk(dir string) []string {
	var files []string
	err := fs.WalkDir(l.ext, dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			l.log.Errorf("[Ext Loading] listing %s: %v", name, err)
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, name)
		}
		return nil
	})
	if err != nil {
		l.log.Errorf("[Ext Loading] listing %s: %v", dir, err)
	}
	return files
}
