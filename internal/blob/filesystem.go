package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Filesystem stores each blob as a file under a root directory. Intended for
// local development without cloud credentials.
type Filesystem struct {
	root string
}

// NewFilesystem constructs a filesystem-backed store rooted at root, creating
// the directory if needed.
func NewFilesystem(root string) (*Filesystem, error) {
	if root == "" {
		root = "./blobdata"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root %s: %w", root, err)
	}
	return &Filesystem{root: root}, nil
}

func (f *Filesystem) path(name string) (string, error) {
	// Blob names are flat; reject anything that would escape the root.
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid blob name %q", name)
	}
	return filepath.Join(f.root, name), nil
}

func (f *Filesystem) ReadText(_ context.Context, name string) (string, error) {
	p, err := f.path(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f *Filesystem) WriteText(_ context.Context, name string, content string) error {
	p, err := f.path(name)
	if err != nil {
		return err
	}
	// Write-then-rename keeps readers from observing a half-written CSV.
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}
