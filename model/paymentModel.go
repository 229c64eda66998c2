// model/payment.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentStatus is the fine-grained, persisted state of one installment.
// It is a different vocabulary from the rental-level PaymentStatus aggregate:
// pendente means a receipt was submitted and is awaiting an admin decision,
// it never auto-transitions to paid.
type InstallmentStatus string

const (
	InstallmentAwaiting InstallmentStatus = "a_receber"
	InstallmentOverdue  InstallmentStatus = "atrasado"
	InstallmentPending  InstallmentStatus = "pendente"
	InstallmentPaid     InstallmentStatus = "paid"
)

type Installment struct {
	ID           int64             `json:"id"`
	RentalID     int64             `json:"rental_id"`
	Amount       decimal.Decimal   `json:"amount"`
	DueDate      time.Time         `json:"due_date"`
	Status       InstallmentStatus `json:"status"`
	ReceiptURL   *string           `json:"receipt_url,omitempty"`
	RejectReason *string           `json:"reject_reason,omitempty"`
	PaidAt       *time.Time        `json:"paid_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}
