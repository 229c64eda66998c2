package paymentsvc

import (
	"context"
	"time"

	paymentrepo "github.com/guburchardt/kingsystem-backoffice/repository/payment"
)

type Sweeper interface {
	MarkOverdue(ctx context.Context) (int64, error)
}

type sweeper struct {
	p paymentrepo.Repo
}

func NewSweeper(p paymentrepo.Repo) Sweeper { return &sweeper{p: p} }

// MarkOverdue moves every past-due a_receber installment to atrasado.
// Installments already pendente keep their state: the receipt decision still
// belongs to an admin.
func (s *sweeper) MarkOverdue(ctx context.Context) (int64, error) {
	return s.p.MarkOverdueBatch(ctx, time.Now())
}
