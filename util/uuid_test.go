package util

import (
	"regexp"
	"testing"
)

func TestNewReceiptID_Format(t *testing.T) {
	u := NewReceiptID()
	if u == "" {
		t.Fatal("expected non-empty receipt id")
	}
	// simple regex for UUID v4 format
	r := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	if !r.MatchString(u) {
		t.Fatalf("receipt id %s does not match v4 format", u)
	}
	if !ValidReceiptID(u) {
		t.Fatalf("ValidReceiptID rejected %s", u)
	}
}

func TestNewReceiptID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		u := NewReceiptID()
		if seen[u] {
			t.Fatalf("duplicate receipt id %s", u)
		}
		seen[u] = true
	}
}

func TestValidReceiptID_Rejects(t *testing.T) {
	if ValidReceiptID("not-a-uuid") {
		t.Fatal("expected invalid id to be rejected")
	}
}
