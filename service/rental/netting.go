package rental

import (
	"github.com/guburchardt/kingsystem-backoffice/model"
	"github.com/shopspring/decimal"
)

// NetAmount is the amount still billable on a rental: gross contracted value
// minus the cost of every courtesy granted on it, floored at zero. Courtesies
// beyond the contract value are not refundable, so the result never goes
// negative. The caller recomputes this whenever the gross value or the grant
// set changes; it is never stored.
func NetAmount(gross decimal.Decimal, courtesies []model.Courtesy) decimal.Decimal {
	total := decimal.Zero
	for _, c := range courtesies {
		total = total.Add(c.TotalValue())
	}
	net := gross.Sub(total)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}
