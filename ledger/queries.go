package ledger

import (
	"context"
	"sort"

	"inventory_ledger/domain"
	"inventory_ledger/store"
)

// Sales returns every committed record in append order.
func (l *SalesLedger) Sales(ctx context.Context) ([]domain.SaleRecord, error) {
	var out []domain.SaleRecord
	err := l.store.View(ctx, func(*store.Tx) error {
		out = make([]domain.SaleRecord, len(l.records))
		for i, r := range l.records {
			out[i] = r.Clone()
		}
		return nil
	})
	return out, err
}

// Len returns the number of committed records.
func (l *SalesLedger) Len(ctx context.Context) (int, error) {
	var n int
	err := l.store.View(ctx, func(*store.Tx) error {
		n = len(l.records)
		return nil
	})
	return n, err
}

// FinancialOverview sums the stored totals of all sales and values the current
// stock at current prices, both from the same snapshot.
func (l *SalesLedger) FinancialOverview(ctx context.Context) (domain.FinancialOverview, error) {
	var fo domain.FinancialOverview
	err := l.store.View(ctx, func(tx *store.Tx) error {
		for _, r := range l.records {
			fo.TotalSales += r.TotalAmount
		}
		for _, item := range tx.Items() {
			fo.InventoryValue += float64(item.Quantity) * item.Price
		}
		return nil
	})
	return fo, err
}

// TopSellingItems returns at most n names ranked by cumulative quantity sold.
// Lines are grouped by the name captured at sale time, so different items
// sold under one name count together. Equal quantities keep the order in
// which the names first appear in the ledger.
func (l *SalesLedger) TopSellingItems(ctx context.Context, n int) ([]domain.TopSeller, error) {
	var ranked []domain.TopSeller
	err := l.store.View(ctx, func(*store.Tx) error {
		index := make(map[string]int)
		for _, r := range l.records {
			for _, line := range r.Lines {
				i, ok := index[line.Name]
				if !ok {
					i = len(ranked)
					index[line.Name] = i
					ranked = append(ranked, domain.TopSeller{Name: line.Name})
				}
				ranked[i].Quantity += line.Quantity
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if n <= 0 {
		return []domain.TopSeller{}, nil
	}
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	if ranked == nil {
		ranked = []domain.TopSeller{}
	}
	return ranked, nil
}
