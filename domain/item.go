// Package domain defines core business types and interfaces.
package domain

import (
	"context"
	"math"
	"strings"
)

// Item represents a stocked product
type Item struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Quantity uint64  `json:"quantity"`
	Price    float64 `json:"price"`
}

// ItemUpdate carries the fields to change on an item; nil fields are left as they are
type ItemUpdate struct {
	Name     *string
	Quantity *uint64
	Price    *float64
}

// Empty reports whether the update changes nothing.
func (u ItemUpdate) Empty() bool {
	return u.Name == nil && u.Quantity == nil && u.Price == nil
}

// ValidateName trims name and rejects it when nothing is left.
func ValidateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", NewInvalidItemError("name", "cannot be empty", name)
	}
	return trimmed, nil
}

// ValidateQuantity rejects a zero stock quantity.
func ValidateQuantity(quantity uint64) error {
	if quantity == 0 {
		return NewInvalidItemError("quantity", "must be positive", quantity)
	}
	return nil
}

// ValidatePrice rejects zero, negative, NaN and infinite prices.
func ValidatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return NewInvalidItemError("price", "must be a finite number", price)
	}
	if price <= 0 {
		return NewInvalidItemError("price", "must be positive", price)
	}
	return nil
}

// ValidateItem applies the add rules to every field of an item and returns it
// with its name trimmed.
func ValidateItem(item Item) (Item, error) {
	name, err := ValidateName(item.Name)
	if err != nil {
		return Item{}, err
	}
	if err := ValidateQuantity(item.Quantity); err != nil {
		return Item{}, err
	}
	if err := ValidatePrice(item.Price); err != nil {
		return Item{}, err
	}
	item.Name = name
	return item, nil
}

// Apply validates every provided field of u and returns item with them applied.
// item itself is not modified, so a failed validation leaves no trace.
func (u ItemUpdate) Apply(item Item) (Item, error) {
	if u.Name != nil {
		name, err := ValidateName(*u.Name)
		if err != nil {
			return Item{}, err
		}
		item.Name = name
	}
	if u.Quantity != nil {
		if err := ValidateQuantity(*u.Quantity); err != nil {
			return Item{}, err
		}
		item.Quantity = *u.Quantity
	}
	if u.Price != nil {
		if err := ValidatePrice(*u.Price); err != nil {
			return Item{}, err
		}
		item.Price = *u.Price
	}
	return item, nil
}

// ItemStore defines the storage interface for items
type ItemStore interface {
	Add(ctx context.Context, name string, quantity uint64, price float64) (uint64, error)
	Get(ctx context.Context, id uint64) (Item, error)
	Update(ctx context.Context, id uint64, update ItemUpdate) error
	Remove(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]Item, error)
	Search(ctx context.Context, substr string) ([]Item, error)
	ReorderSuggestions(ctx context.Context, threshold uint64) ([]Item, error)
	BulkImport(ctx context.Context, items []Item) error
}
