package domain

import (
	"context"
	"time"
)

// SaleRequestLine is one (item, quantity) pair of a proposed sale
type SaleRequestLine struct {
	ItemID   uint64 `json:"item_id"`
	Quantity uint64 `json:"quantity"`
}

// SaleLine is the snapshot of one item's part in a committed sale. Name and
// UnitPrice are copied from the item at commit time and do not follow later
// changes to it.
type SaleLine struct {
	ItemID    uint64  `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  uint64  `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Subtotal returns quantity times unit price.
func (l SaleLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// SaleRecord is an append-only ledger entry
type SaleRecord struct {
	Seq         uint64     `json:"seq"`
	ID          string     `json:"id"`
	Timestamp   time.Time  `json:"timestamp"`
	Lines       []SaleLine `json:"items"`
	TotalAmount float64    `json:"total_amount"`
}

// Clone returns a copy of r that shares no memory with it.
func (r SaleRecord) Clone() SaleRecord {
	lines := make([]SaleLine, len(r.Lines))
	copy(lines, r.Lines)
	r.Lines = lines
	return r
}

// FinancialOverview is the result of a valuation query
type FinancialOverview struct {
	TotalSales     float64 `json:"total_sales"`
	InventoryValue float64 `json:"inventory_value"`
}

// TopSeller is the cumulative quantity sold under one item name
type TopSeller struct {
	Name     string `json:"name"`
	Quantity uint64 `json:"quantity"`
}

// Ledger defines the sale-recording and reporting interface
type Ledger interface {
	RecordSale(ctx context.Context, lines []SaleRequestLine) (SaleRecord, error)
	Sales(ctx context.Context) ([]SaleRecord, error)
	Len(ctx context.Context) (int, error)
	FinancialOverview(ctx context.Context) (FinancialOverview, error)
	TopSellingItems(ctx context.Context, n int) ([]TopSeller, error)
}
