// Package uploads keeps a copy of every leaf image submitted for diagnosis.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidKey = errors.New("invalid upload key")

type Archive interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error
}

// NewKey builds "<user_id>/<uuid><ext>" for an upload.
func NewKey(userID string, extension string) string {
	extension = strings.ToLower(strings.TrimSpace(extension))
	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	owner := strings.TrimSpace(userID)
	if owner == "" {
		owner = "anonymous"
	}
	return owner + "/" + uuid.NewString() + extension
}

type LocalArchive struct {
	root string
}

func NewLocalArchive(root string) *LocalArchive {
	return &LocalArchive{root: root}
}

func (archive *LocalArchive) Put(_ context.Context, key string, _ string, data []byte) error {
	path, err := archive.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write upload %s: %w", key, err)
	}
	return nil
}

func (archive *LocalArchive) resolve(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(strings.TrimSpace(key)))
	if cleaned == "." || filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(archive.root, cleaned), nil
}
