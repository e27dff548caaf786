// Package util provides utility functions for the inventory ledger.
package util

import "github.com/google/uuid"

// NewReceiptID returns a random RFC 4122 version 4 UUID string used to
// identify a committed sale outside the ledger.
func NewReceiptID() string {
	return uuid.NewString()
}

// ValidReceiptID reports whether s parses as a UUID.
func ValidReceiptID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
