package paymentsvc_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/guburchardt/kingsystem-backoffice/model"
	paymentsvc "github.com/guburchardt/kingsystem-backoffice/service/payment"
)

var today = time.Date(2026, time.March, 15, 9, 0, 0, 0, time.Local)

func installment(due time.Time, status model.InstallmentStatus) model.Installment {
	return model.Installment{Amount: decimal.NewFromInt(100), DueDate: due, Status: status}
}

func TestResolveStatus(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)
	nextWeek := today.AddDate(0, 0, 7)

	cases := []struct {
		name string
		ins  []model.Installment
		want model.PaymentStatus
	}{
		{"no installments", nil, model.PaymentPending},
		{
			"all paid",
			[]model.Installment{installment(yesterday, model.InstallmentPaid)},
			model.PaymentPaid,
		},
		{
			"unpaid past due is overdue",
			[]model.Installment{installment(yesterday, model.InstallmentAwaiting)},
			model.PaymentOverdue,
		},
		{
			"atrasado past due is overdue",
			[]model.Installment{installment(yesterday, model.InstallmentOverdue)},
			model.PaymentOverdue,
		},
		{
			"receipt submitted does not count as paid",
			[]model.Installment{installment(yesterday, model.InstallmentPending)},
			model.PaymentOverdue,
		},
		{
			"future installments pending",
			[]model.Installment{installment(nextWeek, model.InstallmentAwaiting)},
			model.PaymentPending,
		},
		{
			"due today is not yet overdue",
			[]model.Installment{installment(today, model.InstallmentAwaiting)},
			model.PaymentPending,
		},
		{
			"mixed: one paid one future unpaid",
			[]model.Installment{
				installment(yesterday, model.InstallmentPaid),
				installment(nextWeek, model.InstallmentAwaiting),
			},
			model.PaymentPending,
		},
		{
			"mixed: one paid one past unpaid",
			[]model.Installment{
				installment(yesterday.AddDate(0, 0, -10), model.InstallmentPaid),
				installment(yesterday, model.InstallmentAwaiting),
			},
			model.PaymentOverdue,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, paymentsvc.ResolveStatus(tc.ins, today))
		})
	}
}

func TestResolveStatus_Idempotent(t *testing.T) {
	ins := []model.Installment{
		installment(today.AddDate(0, 0, -2), model.InstallmentAwaiting),
		installment(today.AddDate(0, 0, 2), model.InstallmentAwaiting),
	}
	first := paymentsvc.ResolveStatus(ins, today)
	second := paymentsvc.ResolveStatus(ins, today)
	assert.Equal(t, first, second)
}
