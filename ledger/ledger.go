// Package ledger records multi-item sales against the item store and answers
// reporting queries over the resulting append-only ledger.
package ledger

import (
	"context"
	"time"

	"inventory_ledger/domain"
	"inventory_ledger/store"
	"inventory_ledger/util"
)

// SalesLedger applies sales to an InMemoryStore and keeps the committed records.
//
// records is only read or written inside store.Transact and store.View, so the
// store's lock guards it together with the items it describes.
type SalesLedger struct {
	store   *store.InMemoryStore
	records []domain.SaleRecord

	now   func() time.Time
	newID func() string
}

// NewSalesLedger creates an empty ledger over s.
func NewSalesLedger(s *store.InMemoryStore) *SalesLedger {
	return &SalesLedger{
		store: s,
		now:   time.Now,
		newID: util.NewReceiptID,
	}
}

// compile-time assertion that SalesLedger implements domain.Ledger
var _ domain.Ledger = (*SalesLedger)(nil)

// RecordSale takes stock for every line in order and appends one SaleRecord.
// Either every line is applied or none is: the first unknown item or short
// stock aborts the sale and undoes the lines already taken. A later line for
// the same item sees the stock left by the earlier ones. An empty request
// commits a record with no lines and a zero total.
func (l *SalesLedger) RecordSale(ctx context.Context, lines []domain.SaleRequestLine) (domain.SaleRecord, error) {
	var record domain.SaleRecord
	err := l.store.Transact(ctx, func(tx *store.Tx) error {
		sold := make([]domain.SaleLine, 0, len(lines))
		var total float64
		for _, line := range lines {
			item, err := tx.Decrement(line.ItemID, line.Quantity)
			if err != nil {
				return err
			}
			sl := domain.SaleLine{
				ItemID:    item.ID,
				Name:      item.Name,
				Quantity:  line.Quantity,
				UnitPrice: item.Price,
			}
			sold = append(sold, sl)
			total += sl.Subtotal()
		}

		record = domain.SaleRecord{
			Seq:         uint64(len(l.records)) + 1,
			ID:          l.newID(),
			Timestamp:   l.now(),
			Lines:       sold,
			TotalAmount: total,
		}
		l.records = append(l.records, record)
		return nil
	})
	if err != nil {
		return domain.SaleRecord{}, err
	}
	return record.Clone(), nil
}
