// model/rental.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApprovalStatus string

const (
	ApprovalPending   ApprovalStatus = "pending"
	ApprovalApproved  ApprovalStatus = "approved"
	ApprovalCompleted ApprovalStatus = "completed"
	ApprovalCancelled ApprovalStatus = "cancelled"
)

// PaymentStatus is the rental-level aggregate. It is always derived from the
// rental's installments (see service/payment.ResolveStatus); the column on the
// rentals table is a cache, never independent truth.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// Situation is informational only (postponed / rescheduled); it never affects
// classification.
type Situation string

const (
	SituationAdiado    Situation = "adiado"
	SituationRemarcado Situation = "remarcado"
)

type Rental struct {
	ID               int64           `json:"id"`
	ClientID         int64           `json:"client_id"`
	VehicleID        int64           `json:"vehicle_id"`
	VehicleCategory  string          `json:"vehicle_category"`
	EventDate        *time.Time      `json:"event_date,omitempty"`
	ApprovalStatus   ApprovalStatus  `json:"approval_status"`
	PaymentStatus    PaymentStatus   `json:"payment_status"`
	HasPendingIssues bool            `json:"has_pending_issues"`
	Situation        *Situation      `json:"situation,omitempty"`
	GrossValue       decimal.Decimal `json:"gross_value"`
	Notes            *string         `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}
