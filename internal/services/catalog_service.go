// internal/services/catalog_service.go
package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/beatbazaar/beatbazaar/internal/config"
	"github.com/beatbazaar/beatbazaar/internal/models"
)

// CatalogService is the sole owner of the session's product collection.
// A single goroutine owns the backing slice and applies queued operations
// in arrival order; callers only ever see snapshot copies. Products are
// immutable once added and there are no remove or update operations.
type CatalogService struct {
	cfg       config.CatalogConfig
	ops       chan func(products *[]models.Product)
	loading   atomic.Bool
	closeOnce sync.Once
}

func NewCatalogService(cfg config.CatalogConfig) *CatalogService {
	s := &CatalogService{
		cfg: cfg,
		ops: make(chan func(products *[]models.Product), 16),
	}
	go s.run()
	return s
}

// run is the owner goroutine. All reads and writes of the collection happen
// here, in the order operations were queued.
func (s *CatalogService) run() {
	products := make([]models.Product, 0)
	for op := range s.ops {
		op(&products)
	}
}

// Close stops the owner goroutine. Queued operations submitted before Close
// are still applied; submitting afterwards panics, so Close belongs at
// shutdown only.
func (s *CatalogService) Close() {
	s.closeOnce.Do(func() { close(s.ops) })
}

// LoadInitial replaces the collection with a freshly generated mock batch
// after a simulated fetch latency. The loading flag is visible to readers
// for the duration. Intended to be run fire-and-forget.
func (s *CatalogService) LoadInitial(ctx context.Context) {
	s.loading.Store(true)
	defer s.loading.Store(false)

	select {
	case <-time.After(time.Duration(s.cfg.SeedDelayMs) * time.Millisecond):
	case <-ctx.Done():
		return
	}
	// A zero-delay timer can win the select against an already-canceled
	// context; re-check so cancellation always wins.
	if ctx.Err() != nil {
		return
	}

	batch := MockCatalogBatch(s.cfg.InitialCount)

	done := make(chan struct{})
	s.ops <- func(products *[]models.Product) {
		*products = batch
		close(done)
	}
	<-done

	logrus.WithField("count", len(batch)).Info("Catalog seeded with mock products")
}

// Add prepends one product: newest first. No de-duplication and no
// validation here; the form and synthesis paths validate before handoff.
func (s *CatalogService) Add(product models.Product) {
	done := make(chan struct{})
	s.ops <- func(products *[]models.Product) {
		*products = append([]models.Product{product}, *products...)
		close(done)
	}
	<-done
}

// List returns a snapshot copy of the collection, newest first.
func (s *CatalogService) List() []models.Product {
	reply := make(chan []models.Product, 1)
	s.ops <- func(products *[]models.Product) {
		snapshot := make([]models.Product, len(*products))
		copy(snapshot, *products)
		reply <- snapshot
	}
	return <-reply
}

func (s *CatalogService) Len() int {
	return len(s.List())
}

// Loading reports whether an initial load is in flight.
func (s *CatalogService) Loading() bool {
	return s.loading.Load()
}
