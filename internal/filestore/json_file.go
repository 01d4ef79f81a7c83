// Package filestore keeps each record set in its own JSON file and rewrites
// the whole file on every mutation.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

var ErrCorruptFile = errors.New("corrupt record file")

type jsonFile[T any] struct {
	path string
	mu   sync.Mutex
}

func newJSONFile[T any](path string) *jsonFile[T] {
	return &jsonFile[T]{path: path}
}

func (file *jsonFile[T]) read() (T, error) {
	file.mu.Lock()
	defer file.mu.Unlock()
	return file.loadLocked()
}

// mutate loads the collection, lets apply change it and writes it back. The
// file is left untouched when apply returns an error or reports no change.
func (file *jsonFile[T]) mutate(apply func(*T) (bool, error)) error {
	file.mu.Lock()
	defer file.mu.Unlock()

	value, err := file.loadLocked()
	if err != nil {
		return err
	}
	changed, err := apply(&value)
	if err != nil || !changed {
		return err
	}
	return file.saveLocked(value)
}

func (file *jsonFile[T]) loadLocked() (T, error) {
	var value T

	content, err := os.ReadFile(file.path)
	if errors.Is(err, fs.ErrNotExist) {
		return value, nil
	}
	if err != nil {
		return value, fmt.Errorf("read %s: %w", file.path, err)
	}
	if len(content) == 0 {
		return value, nil
	}

	if err := json.Unmarshal(content, &value); err != nil {
		return value, fmt.Errorf("%w: %s: %v", ErrCorruptFile, file.path, err)
	}
	return value, nil
}

func (file *jsonFile[T]) saveLocked(value T) error {
	content, err := json.MarshalIndent(value, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", file.path, err)
	}

	dir := filepath.Dir(file.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, filepath.Base(file.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", file.path, err)
	}
	tempPath := temp.Name()
	defer os.Remove(tempPath)

	if _, err := temp.Write(content); err != nil {
		_ = temp.Close()
		return fmt.Errorf("write %s: %w", tempPath, err)
	}
	if err := temp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tempPath, err)
	}
	if err := os.Rename(tempPath, file.path); err != nil {
		return fmt.Errorf("replace %s: %w", file.path, err)
	}
	return nil
}
