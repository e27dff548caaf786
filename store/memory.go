// Package store provides the in-memory item store for the inventory ledger.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"inventory_ledger/domain"
)

// InMemoryStore is a thread-safe in-memory domain.ItemStore.
//
// A single RWMutex guards the item map, the insertion order and the id
// counter. Transact and View hand that same lock to callers that need several
// steps to appear atomic, such as the sales ledger.
type InMemoryStore struct {
	mu     sync.RWMutex
	items  map[uint64]domain.Item
	order  []uint64
	nextID uint64
}

// NewInMemoryStore constructs a new InMemoryStore
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		items:  make(map[uint64]domain.Item),
		nextID: 1,
	}
}

// compile-time assertion that InMemoryStore implements domain.ItemStore
var _ domain.ItemStore = (*InMemoryStore)(nil)

// Add validates an item, trims its name and stores it under the next id.
func (s *InMemoryStore) Add(ctx context.Context, name string, quantity uint64, price float64) (uint64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	item, err := domain.ValidateItem(domain.Item{Name: name, Quantity: quantity, Price: price})
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextID
	s.nextID++
	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	return item.ID, nil
}

// Get returns the item with the given id.
func (s *InMemoryStore) Get(ctx context.Context, id uint64) (domain.Item, error) {
	select {
	case <-ctx.Done():
		return domain.Item{}, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return domain.Item{}, domain.NewItemNotFoundError(id)
	}
	return item, nil
}

// Update applies the provided fields of update to an existing item. Nothing
// changes unless every provided field is valid.
func (s *InMemoryStore) Update(ctx context.Context, id uint64, update domain.ItemUpdate) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return domain.NewItemNotFoundError(id)
	}
	updated, err := update.Apply(item)
	if err != nil {
		return err
	}
	s.items[id] = updated
	return nil
}

// Remove deletes an item. Its id is not handed out again.
func (s *InMemoryStore) Remove(ctx context.Context, id uint64) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return domain.NewItemNotFoundError(id)
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns every item in insertion order.
func (s *InMemoryStore) List(ctx context.Context) ([]domain.Item, error) {
	return s.filter(ctx, func(domain.Item) bool { return true })
}

// Search returns the items whose name contains substr, ignoring case.
func (s *InMemoryStore) Search(ctx context.Context, substr string) ([]domain.Item, error) {
	needle := strings.ToLower(substr)
	return s.filter(ctx, func(item domain.Item) bool {
		return strings.Contains(strings.ToLower(item.Name), needle)
	})
}

// ReorderSuggestions returns the items with fewer than threshold units in stock.
func (s *InMemoryStore) ReorderSuggestions(ctx context.Context, threshold uint64) ([]domain.Item, error) {
	return s.filter(ctx, func(item domain.Item) bool {
		return item.Quantity < threshold
	})
}

func (s *InMemoryStore) filter(ctx context.Context, keep func(domain.Item) bool) ([]domain.Item, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(keep), nil
}

// collect walks items in insertion order. Callers hold s.mu.
func (s *InMemoryStore) collect(keep func(domain.Item) bool) []domain.Item {
	out := make([]domain.Item, 0, len(s.order))
	for _, id := range s.order {
		if item := s.items[id]; keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// BulkImport validates every entry with the Add rules and adds the valid ones
// in input order, so ids and insertion order follow the input; incoming IDs
// are ignored. Entries that fail are reported together and do not stop the
// others. A canceled context stops the import before the next entry.
func (s *InMemoryStore) BulkImport(ctx context.Context, items []domain.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for i, entry := range items {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}
		item, err := domain.ValidateItem(domain.Item{Name: entry.Name, Quantity: entry.Quantity, Price: entry.Price})
		if err != nil {
			errs = append(errs, fmt.Errorf("entry=%d: %w", i, err))
			continue
		}
		item.ID = s.nextID
		s.nextID++
		s.items[item.ID] = item
		s.order = append(s.order, item.ID)
	}
	return errors.Join(errs...)
}
