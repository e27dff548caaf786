package store

import (
	"context"
	"errors"

	"inventory_ledger/domain"
)

// ErrReadOnly is returned when a View callback tries to change stock.
var ErrReadOnly = errors.New("store: read-only transaction")

// Tx is the view of the store passed to Transact and View callbacks. It is
// only valid for the duration of the callback.
type Tx struct {
	s        *InMemoryStore
	writable bool
	undo     []domain.Item
}

// Get looks up an item as it is at this point of the transaction.
func (tx *Tx) Get(id uint64) (domain.Item, bool) {
	item, ok := tx.s.items[id]
	return item, ok
}

// Items returns every item in insertion order.
func (tx *Tx) Items() []domain.Item {
	return tx.s.collect(func(domain.Item) bool { return true })
}

// Decrement takes quantity units out of an item's stock and returns the item
// as it was before the change. It fails without touching the item when the id
// is unknown or the stock is too low.
func (tx *Tx) Decrement(id, quantity uint64) (domain.Item, error) {
	if !tx.writable {
		return domain.Item{}, ErrReadOnly
	}
	item, ok := tx.s.items[id]
	if !ok {
		return domain.Item{}, domain.NewItemNotFoundError(id)
	}
	if item.Quantity < quantity {
		return domain.Item{}, domain.NewInsufficientStockError(item, quantity)
	}
	tx.undo = append(tx.undo, item)
	next := item
	next.Quantity -= quantity
	tx.s.items[id] = next
	return item, nil
}

// rollback restores every item touched by Decrement, newest first.
func (tx *Tx) rollback() {
	for i := len(tx.undo) - 1; i >= 0; i-- {
		prev := tx.undo[i]
		tx.s.items[prev.ID] = prev
	}
	tx.undo = nil
}

// Transact runs fn while holding the store's write lock. If fn returns an
// error, every Decrement it made is undone before the lock is released, so
// other callers never see a partial change.
func (s *InMemoryStore) Transact(ctx context.Context, fn func(tx *Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Tx{s: s, writable: true}
	if err := fn(tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

// View runs fn while holding the store's read lock.
func (s *InMemoryStore) View(ctx context.Context, fn func(tx *Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(&Tx{s: s})
}
