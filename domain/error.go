// Package domain defines error types for the inventory ledger.
package domain

import (
	"errors"
	"fmt"
)

// ItemNotFoundError is returned when an item with the given ID does not exist
type ItemNotFoundError struct {
	ItemID uint64
}

// Error implements the error interface for ItemNotFoundError
func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item not found: id=%d", e.ItemID)
}

// Is allows proper error type checking with errors.Is()
func (e *ItemNotFoundError) Is(target error) bool {
	_, ok := target.(*ItemNotFoundError)
	return ok
}

// InvalidItemError is returned when caller input fails validation
type InvalidItemError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for InvalidItemError
func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid item: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidItemError) Is(target error) bool {
	_, ok := target.(*InvalidItemError)
	return ok
}

// InsufficientStockError is returned when a sale line asks for more units than are in stock
type InsufficientStockError struct {
	ItemID    uint64
	Name      string
	Requested uint64
	Available uint64
}

// Error implements the error interface for InsufficientStockError
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item: %s (requested=%d, available=%d)", e.Name, e.Requested, e.Available)
}

// Is allows proper error type checking with errors.Is()
func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

// Helper functions for creating errors with context

// NewItemNotFoundError creates a new ItemNotFoundError
func NewItemNotFoundError(itemID uint64) error {
	return &ItemNotFoundError{ItemID: itemID}
}

// NewInvalidItemError creates a new InvalidItemError
func NewInvalidItemError(field, reason string, value interface{}) error {
	return &InvalidItemError{
		Field:  field,
		Reason: reason,
		Value:  value,
	}
}

// NewInsufficientStockError creates a new InsufficientStockError
func NewInsufficientStockError(item Item, requested uint64) error {
	return &InsufficientStockError{
		ItemID:    item.ID,
		Name:      item.Name,
		Requested: requested,
		Available: item.Quantity,
	}
}

// Type assertion helpers for use with errors.As()

// IsItemNotFoundError checks if an error is an ItemNotFoundError
func IsItemNotFoundError(err error) bool {
	var inf *ItemNotFoundError
	return errors.As(err, &inf)
}

// IsInvalidItemError checks if an error is an InvalidItemError
func IsInvalidItemError(err error) bool {
	var iie *InvalidItemError
	return errors.As(err, &iie)
}

// IsInsufficientStockError checks if an error is an InsufficientStockError
func IsInsufficientStockError(err error) bool {
	var ise *InsufficientStockError
	return errors.As(err, &ise)
}
