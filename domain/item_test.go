package domain

import (
	"context"
	"math"
	"testing"
)

func TestValidateItem(t *testing.T) {
	tests := []struct {
		name        string
		item        Item
		expectError bool
		errField    string
	}{
		{
			name:        "valid item",
			item:        Item{Name: "Widget", Quantity: 10, Price: 2.5},
			expectError: false,
		},
		{
			name:        "empty name",
			item:        Item{Name: "", Quantity: 1, Price: 1},
			expectError: true,
			errField:    "name",
		},
		{
			name:        "whitespace name",
			item:        Item{Name: " \t ", Quantity: 1, Price: 1},
			expectError: true,
			errField:    "name",
		},
		{
			name:        "zero quantity",
			item:        Item{Name: "Pen", Quantity: 0, Price: 1},
			expectError: true,
			errField:    "quantity",
		},
		{
			name:        "zero price",
			item:        Item{Name: "Book", Quantity: 1, Price: 0},
			expectError: true,
			errField:    "price",
		},
		{
			name:        "negative price",
			item:        Item{Name: "Book", Quantity: 1, Price: -1},
			expectError: true,
			errField:    "price",
		},
		{
			name:        "NaN price",
			item:        Item{Name: "Book", Quantity: 1, Price: math.NaN()},
			expectError: true,
			errField:    "price",
		},
		{
			name:        "infinite price",
			item:        Item{Name: "Book", Quantity: 1, Price: math.Inf(1)},
			expectError: true,
			errField:    "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateItem(tt.item)

			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}

				iie, ok := err.(*InvalidItemError)
				if !ok {
					t.Fatalf("expected InvalidItemError, got %T", err)
				}

				if iie.Field != tt.errField {
					t.Fatalf(
						"expected error field %q, got %q",
						tt.errField,
						iie.Field,
					)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateItem_TrimsName(t *testing.T) {
	got, err := ValidateItem(Item{Name: "  Widget ", Quantity: 1, Price: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Widget" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}
}

func TestItemUpdateApply(t *testing.T) {
	base := Item{ID: 3, Name: "Widget", Quantity: 10, Price: 2.5}
	name := "Gizmo"
	qty := uint64(4)
	zero := uint64(0)
	price := 9.0
	badPrice := -1.0

	t.Run("empty update keeps item", func(t *testing.T) {
		u := ItemUpdate{}
		if !u.Empty() {
			t.Fatal("expected empty update")
		}
		got, err := u.Apply(base)
		if err != nil || got != base {
			t.Fatalf("expected unchanged item, got %+v, %v", got, err)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		got, err := ItemUpdate{Quantity: &qty}.Apply(base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Quantity != 4 || got.Name != "Widget" || got.Price != 2.5 {
			t.Fatalf("unexpected item: %+v", got)
		}
	})

	t.Run("full update", func(t *testing.T) {
		got, err := ItemUpdate{Name: &name, Quantity: &qty, Price: &price}.Apply(base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Item{ID: 3, Name: "Gizmo", Quantity: 4, Price: 9}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("one bad field rejects whole update", func(t *testing.T) {
		if _, err := (ItemUpdate{Name: &name, Price: &badPrice}).Apply(base); !IsInvalidItemError(err) {
			t.Fatalf("expected InvalidItemError, got %v", err)
		}
		if _, err := (ItemUpdate{Quantity: &zero}).Apply(base); !IsInvalidItemError(err) {
			t.Fatalf("expected InvalidItemError for zero quantity, got %v", err)
		}
	})
}

// ---- Interface compile-time test ----

// mockItemStore ensures ItemStore interface stays stable
type mockItemStore struct{}

func (m *mockItemStore) Add(ctx context.Context, name string, quantity uint64, price float64) (uint64, error) {
	return 0, nil
}

func (m *mockItemStore) Get(ctx context.Context, id uint64) (Item, error) {
	return Item{}, nil
}

func (m *mockItemStore) Update(ctx context.Context, id uint64, u ItemUpdate) error {
	return nil
}

func (m *mockItemStore) Remove(ctx context.Context, id uint64) error {
	return nil
}

func (m *mockItemStore) List(ctx context.Context) ([]Item, error) {
	return nil, nil
}

func (m *mockItemStore) Search(ctx context.Context, substr string) ([]Item, error) {
	return nil, nil
}

func (m *mockItemStore) ReorderSuggestions(ctx context.Context, threshold uint64) ([]Item, error) {
	return nil, nil
}

func (m *mockItemStore) BulkImport(ctx context.Context, items []Item) error {
	return nil
}

// compile-time assertion
var _ ItemStore = (*mockItemStore)(nil)
