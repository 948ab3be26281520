package themes

import (
	"os"
	"path/filepath"
)

// ThemeSearchPaths returns user theme directories in precedence order,
// followed by any extra directories from configuration.
func ThemeSearchPaths(projectDir string, extra ...string) []string {
	paths := make([]string, 0, 3+len(extra))
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".designkit", "themes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "designkit", "themes"))
	}

	for _, dir := range extra {
		if dir != "" {
			paths = append(paths, dir)
		}
	}
	return paths
}

// LoadThemesFromSearchPaths loads user themes with first-hit precedence on
// key collisions between directories.
func LoadThemesFromSearchPaths(paths []string) ([]*Config, error) {
	seen := make(map[string]bool)
	resolved := make([]*Config, 0)

	for _, path := range paths {
		themes, err := LoadThemesFromDir(path)
		if err != nil {
			return nil, err
		}
		for _, theme := range themes {
			if seen[theme.Key] {
				continue
			}
			seen[theme.Key] = true
			resolved = append(resolved, theme)
		}
	}

	return resolved, nil
}
