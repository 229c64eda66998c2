package rental

import (
	"time"

	"github.com/guburchardt/kingsystem-backoffice/model"
	"github.com/guburchardt/kingsystem-backoffice/util/dates"
)

// Category is the single visual status a rental carries on the monthly agenda.
// Exactly one category holds for any snapshot.
type Category string

const (
	CategoryPast             Category = "past"
	CategoryOverdue          Category = "overdue"
	CategoryLimoSettled      Category = "limo_settled"
	CategoryVanSettled       Category = "van_settled"
	CategoryFullyPaid        Category = "fully_paid"
	CategoryLimoPending      Category = "limo_pending"
	CategoryVanPending       Category = "van_pending"
	CategoryHasPendency      Category = "has_pendency"
	CategoryAwaitingApproval Category = "awaiting_approval"

	// CategoryAll is a filter value only, never a classification result.
	CategoryAll Category = "all"
)

// Categories lists every classification result in precedence order.
var Categories = []Category{
	CategoryPast,
	CategoryOverdue,
	CategoryLimoSettled,
	CategoryVanSettled,
	CategoryFullyPaid,
	CategoryLimoPending,
	CategoryVanPending,
	CategoryHasPendency,
	CategoryAwaitingApproval,
}

// Classify resolves a rental snapshot to its one agenda category. Rules are
// evaluated in strict precedence order, first match wins:
//
//	 1. past          event day before today
//	 2. overdue       aggregate payment status overdue
//	 3. limo_settled  limo, paid
//	 4. van_settled   van, paid
//	 5. fully_paid    paid, any vehicle
//	 6. limo_pending  limo, has pendency
//	 7. van_pending   van, has pendency
//	 8. has_pendency  any vehicle with a pendency
//	 9. awaiting_approval  approval still pending, and the fallback
//
// A pendency is approved-but-unpaid, or the operator-set pending-issues flag.
// Classify is total: a missing event date just fails rule 1, and unknown
// status values fall through to awaiting_approval so the agenda mis-sorts a
// bad row instead of breaking on it.
func Classify(r model.Rental, today time.Time) Category {
	if r.EventDate != nil && dates.BeforeDay(*r.EventDate, today) {
		return CategoryPast
	}
	if r.PaymentStatus == model.PaymentOverdue {
		return CategoryOverdue
	}

	vt := model.DeriveVehicleType(r.VehicleCategory)
	paid := r.PaymentStatus == model.PaymentPaid

	if paid {
		switch vt {
		case model.VehicleLimo:
			return CategoryLimoSettled
		case model.VehicleVan:
			return CategoryVanSettled
		}
		return CategoryFullyPaid
	}

	pendency := (r.ApprovalStatus == model.ApprovalApproved && r.PaymentStatus == model.PaymentPending) ||
		r.HasPendingIssues
	if pendency {
		switch vt {
		case model.VehicleLimo:
			return CategoryLimoPending
		case model.VehicleVan:
			return CategoryVanPending
		}
		return CategoryHasPendency
	}

	return CategoryAwaitingApproval
}
