// model/courtesy.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CourtesyItem is a catalog entry (e.g. decoration, extra hour). UnitPrice is
// the current price; grants snapshot it.
type CourtesyItem struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Courtesy is a grant on a rental. It is an operational cost, not a discount:
// it reduces the net amount owed but leaves the contracted gross value alone.
// UnitPrice is the catalog price snapshotted at grant time.
type Courtesy struct {
	ID        int64           `json:"id"`
	RentalID  int64           `json:"rental_id"`
	ItemID    int64           `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
}

// TotalValue is quantity times the snapshotted unit price.
func (c Courtesy) TotalValue() decimal.Decimal {
	return c.UnitPrice.Mul(decimal.NewFromInt(c.Quantity))
}
