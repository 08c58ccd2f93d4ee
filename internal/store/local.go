package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/JonMunkholm/pharmacatalog/internal/core"
)

// LocalKey names the local catalog slot.
const LocalKey = "anand-pharma-products"

// LocalStore keeps the whole catalog as one JSON array in a file under dir.
// It is only written when no primary store is configured, and it is read
// before the primary store, so a locally uploaded batch wins.
type LocalStore struct {
	path string
}

// NewLocalStore returns a store for <dir>/anand-pharma-products.json,
// creating dir if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create local storage dir: %w", err)
	}
	return &LocalStore{path: filepath.Join(dir, LocalKey+".json")}, nil
}

// Path returns the file backing the slot.
func (l *LocalStore) Path() string {
	return l.path
}

// Load returns the cached catalog. A missing slot is an empty catalog.
func (l *LocalStore) Load() ([]core.Product, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read local catalog: %w", err)
	}

	var products []core.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse local catalog: %w", err)
	}
	return products, nil
}

// Save overwrites the slot with products. The file is replaced by rename
// so readers never observe a half-written catalog.
func (l *LocalStore) Save(products []core.Product) error {
	stripped := make([]core.Product, len(products))
	for i, p := range products {
		p.ID = ""
		stripped[i] = p
	}

	data, err := json.Marshal(stripped)
	if err != nil {
		return fmt.Errorf("encode local catalog: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(l.path), LocalKey+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write local catalog: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write local catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write local catalog: %w", err)
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		return fmt.Errorf("write local catalog: %w", err)
	}
	return nil
}

// Clear removes the slot, so reads fall through to the primary store.
func (l *LocalStore) Clear() error {
	if err := os.Remove(l.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear local catalog: %w", err)
	}
	return nil
}
