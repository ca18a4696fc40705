package utils

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// PathResolver finds resource directories named in configuration.
// Relative names are tried against the config file's directory, the
// executable's directory and the working directory, in that order.
type PathResolver struct {
	baseDir       string
	executableDir string
}

// NewPathResolver creates a resolver anchored at baseDir, usually the
// directory holding the config file. An empty baseDir is skipped.
func NewPathResolver(baseDir string) *PathResolver {
	execDir, err := GetExecutableDir()
	if err != nil {
		log.Debugf("Could not determine executable dir: %v", err)
	}
	return &PathResolver{
		baseDir:       baseDir,
		executableDir: execDir,
	}
}

// ResolveDir returns the first candidate directory for userPath that
// contains marker (any existing directory when marker is empty). If none
// qualifies the first candidate is returned so later reads report the
// missing files against a meaningful path.
func (pr *PathResolver) ResolveDir(userPath, marker string) string {
	candidates := pr.candidates(userPath)
	for _, dir := range candidates {
		if pr.isValidDir(dir, marker) {
			log.Debugf("Resolved %s to %s", userPath, dir)
			return dir
		}
		log.Debugf("Directory candidate not valid: %s", dir)
	}
	return candidates[0]
}

// ResolveFile resolves a file path the same way, without requiring it to exist.
func (pr *PathResolver) ResolveFile(userPath string) string {
	candidates := pr.candidates(userPath)
	for _, path := range candidates {
		if FileExists(path) {
			return path
		}
	}
	return candidates[0]
}

func (pr *PathResolver) candidates(userPath string) []string {
	if filepath.IsAbs(userPath) {
		return []string{userPath}
	}

	var candidates []string
	if pr.baseDir != "" {
		candidates = append(candidates, filepath.Join(pr.baseDir, userPath))
	}
	if pr.executableDir != "" {
		candidates = append(candidates, filepath.Join(pr.executableDir, userPath))
	}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, userPath))
	}
	if len(candidates) == 0 {
		candidates = append(candidates, userPath)
	}
	return candidates
}

func (pr *PathResolver) isValidDir(path, marker string) bool {
	if !DirExists(path) {
		return false
	}
	if marker == "" {
		return true
	}
	return FileExists(filepath.Join(path, marker))
}
