package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileStore keeps each slot as <dir>/<slot>.json.
type FileStore struct {
	dir string
}

var _ SaveStore = (*FileStore)(nil)

// NewFileStore creates the save directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating save directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Put(ctx context.Context, slot string, data []byte) error {
	path, err := s.slotPath(slot)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing save %s: %w", slot, err)
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, slot string) ([]byte, error) {
	path, err := s.slotPath(slot)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading save %s: %w", slot, err)
	}
	return data, nil
}

func (s *FileStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing saves: %w", err)
	}
	var slots []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		slots = append(slots, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(slots)
	return slots, nil
}

func (s *FileStore) Delete(ctx context.Context, slot string) error {
	path, err := s.slotPath(slot)
	if err != nil {
		return err
	}
	if err := os.Remove(path); os.IsNotExist(err) {
		return ErrNotFound
	} else if err != nil {
		return fmt.Errorf("deleting save %s: %w", slot, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// slotPath rejects names that escape the save directory.
func (s *FileStore) slotPath(slot string) (string, error) {
	if slot == "" || strings.ContainsAny(slot, `/\`) || slot != filepath.Base(slot) {
		return "", fmt.Errorf("invalid slot name %q", slot)
	}
	return filepath.Join(s.dir, slot+".json"), nil
}
