package paymentsvc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/guburchardt/kingsystem-backoffice/model"
	paymentrepo "github.com/guburchardt/kingsystem-backoffice/repository/payment"
	rentalrepo "github.com/guburchardt/kingsystem-backoffice/repository/rental"
	"github.com/guburchardt/kingsystem-backoffice/util/dates"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound      ErrCode = "NOT_FOUND"
	ErrNotPendente   ErrCode = "NOT_PENDENTE"
	ErrMissingReason ErrCode = "MISSING_REASON"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	ListByRental(ctx context.Context, rentalID int64) ([]model.Installment, error)

	// Confirm: admin accepts a submitted receipt, pendente -> paid.
	Confirm(ctx context.Context, id int64) error

	// Reject: admin refuses a submitted receipt, pendente -> a_receber or
	// atrasado depending on the due date, with the reason recorded.
	Reject(ctx context.Context, id int64, reason string) error
}

// ----- Service implementation -----

type service struct {
	db  *sql.DB
	p   paymentrepo.Repo
	r   rentalrepo.Repo
	now func() time.Time
}

func New(db *sql.DB, p paymentrepo.Repo, r rentalrepo.Repo) Service {
	return &service{db: db, p: p, r: r, now: time.Now}
}

func NewWithNow(db *sql.DB, p paymentrepo.Repo, r rentalrepo.Repo, now func() time.Time) Service {
	return &service{db: db, p: p, r: r, now: now}
}

func (s *service) ListByRental(ctx context.Context, rentalID int64) ([]model.Installment, error) {
	return s.p.ListByRental(ctx, rentalID)
}

func (s *service) Confirm(ctx context.Context, id int64) error {
	rentalID, err := s.transition(ctx, id, func(tx *sql.Tx, in *model.Installment) error {
		return s.p.MarkPaid(ctx, tx, in.ID)
	})
	if err != nil {
		return err
	}
	return s.refreshAggregate(ctx, rentalID)
}

func (s *service) Reject(ctx context.Context, id int64, reason string) error {
	if reason == "" {
		return makeErr(ErrMissingReason)
	}
	today := s.now()
	rentalID, err := s.transition(ctx, id, func(tx *sql.Tx, in *model.Installment) error {
		back := model.InstallmentAwaiting
		if dates.BeforeDay(in.DueDate, today) {
			back = model.InstallmentOverdue
		}
		return s.p.MarkRejected(ctx, tx, in.ID, back, reason)
	})
	if err != nil {
		return err
	}
	return s.refreshAggregate(ctx, rentalID)
}

// transition applies fn to a pendente installment under row lock. Only
// pendente installments have an open admin decision.
func (s *service) transition(ctx context.Context, id int64, fn func(tx *sql.Tx, in *model.Installment) error) (rentalID int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	in, err := s.p.GetForUpdate(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, makeErr(ErrNotFound)
		}
		return 0, err
	}
	if in.Status != model.InstallmentPending {
		return 0, makeErr(ErrNotPendente)
	}

	if err = fn(tx, in); err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return in.RentalID, nil
}

func (s *service) refreshAggregate(ctx context.Context, rentalID int64) error {
	installments, err := s.p.ListByRental(ctx, rentalID)
	if err != nil {
		return err
	}
	return s.r.UpdatePaymentStatus(ctx, rentalID, ResolveStatus(installments, s.now()))
}
