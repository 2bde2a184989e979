// Package fs provides file-based output for inventories and exported pages.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/sitecensus"
	json "github.com/goccy/go-json"
)

// Ensure InventoryWriter implements sitecensus.InventoryWriter at compile time.
var _ sitecensus.InventoryWriter = (*InventoryWriter)(nil)

// InventoryWriter writes an inventory as an indented JSON file.
// The file is replaced on every write; nothing is merged.
type InventoryWriter struct {
	path string
}

// NewInventoryWriter creates a new InventoryWriter targeting path.
func NewInventoryWriter(path string) *InventoryWriter {
	return &InventoryWriter{path: path}
}

// Path returns the output file path.
func (w *InventoryWriter) Path() string {
	return w.path
}

// WriteInventory encodes inv and atomically replaces the output file.
func (w *InventoryWriter) WriteInventory(inv *sitecensus.Inventory) error {
	data, err := MarshalInventory(inv)
	if err != nil {
		return fmt.Errorf("encode inventory: %w", err)
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// MarshalInventory encodes inv as JSON with two-space indentation.
func MarshalInventory(inv *sitecensus.Inventory) ([]byte, error) {
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
