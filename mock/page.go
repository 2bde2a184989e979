package mock

import (
	"context"

	"github.com/fwojciec/sitecensus"
)

// Compile-time interface verification.
var (
	_ sitecensus.PageStore       = (*PageStore)(nil)
	_ sitecensus.InventoryWriter = (*InventoryWriter)(nil)
)

// PageStore is a mock implementation of sitecensus.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *sitecensus.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *sitecensus.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}

// InventoryWriter is a mock implementation of sitecensus.InventoryWriter.
type InventoryWriter struct {
	WriteInventoryFn func(inv *sitecensus.Inventory) error
}

func (w *InventoryWriter) WriteInventory(inv *sitecensus.Inventory) error {
	return w.WriteInventoryFn(inv)
}
