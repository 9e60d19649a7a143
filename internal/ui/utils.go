package ui

import (
	"os"
	"path/filepath"
	"strings"
)

// ShortenPath replaces the home directory with ~ and abbreviates the parent
// directories, e.g. /home/jo/.config/bitgrid/config.json -> ~/.c/b/config.json
func ShortenPath(path string) string {
	path = filepath.Clean(path)
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		if rel, err := filepath.Rel(home, path); err == nil && !strings.HasPrefix(rel, "..") {
			path = filepath.Join("~", rel)
		}
	}

	parts := strings.Split(path, string(filepath.Separator))
	if len(parts) <= 2 {
		return path
	}

	// Keep the last part and abbreviate the rest
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "" || parts[i] == "~" {
			continue
		}
		if parts[i][0] == '.' && len(parts[i]) > 1 {
			parts[i] = parts[i][:2]
		} else {
			parts[i] = parts[i][:1]
		}
	}

	return strings.Join(parts, string(filepath.Separator))
}
