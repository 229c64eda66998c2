package paymentsvc

import (
	"time"

	"github.com/guburchardt/kingsystem-backoffice/model"
	"github.com/guburchardt/kingsystem-backoffice/util/dates"
)

// ResolveStatus derives the rental-level payment aggregate from its
// installments:
//
//	paid     every installment is paid
//	overdue  some unpaid installment is past its due date (calendar day)
//	pending  everything else, including no installments at all
//
// The fine-grained installment states (a_receber, atrasado, pendente) collapse
// to "unpaid" here; a submitted receipt does not count as payment until an
// admin confirms it.
func ResolveStatus(installments []model.Installment, today time.Time) model.PaymentStatus {
	if len(installments) == 0 {
		return model.PaymentPending
	}

	allPaid := true
	overdue := false
	for _, in := range installments {
		if in.Status == model.InstallmentPaid {
			continue
		}
		allPaid = false
		if dates.BeforeDay(in.DueDate, today) {
			overdue = true
		}
	}

	switch {
	case allPaid:
		return model.PaymentPaid
	case overdue:
		return model.PaymentOverdue
	default:
		return model.PaymentPending
	}
}
