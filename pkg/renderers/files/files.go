// Package files writes generated tabs to a directory.
package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-formforge/pkg/codegen"
)

// Write stores each tab under dir using its file name and returns the written
// paths in tab order. The directory is created when missing.
func Write(dir string, tabs []codegen.Tab) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("files: output directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("files: create %s: %w", dir, err)
	}

	paths := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		name := tab.FileName
		if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
			return paths, fmt.Errorf("files: invalid file name %q for tab %s", name, tab.ID)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(tab.Content), 0o644); err != nil {
			return paths, fmt.Errorf("files: write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
