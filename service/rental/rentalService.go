package rental

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/guburchardt/kingsystem-backoffice/model"
	courtesyrepo "github.com/guburchardt/kingsystem-backoffice/repository/courtesy"
	paymentrepo "github.com/guburchardt/kingsystem-backoffice/repository/payment"
	rrepo "github.com/guburchardt/kingsystem-backoffice/repository/rental"
	paymentsvc "github.com/guburchardt/kingsystem-backoffice/service/payment"
	"github.com/shopspring/decimal"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound             ErrCode = "NOT_FOUND"
	ErrNotPendingApproval   ErrCode = "NOT_PENDING_APPROVAL"
	ErrInsufficientCoverage ErrCode = "INSUFFICIENT_COVERAGE"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// CoverageError rejects an approval whose installments do not cover the gross
// value; Shortfall is the missing amount.
type CoverageError struct {
	Shortfall decimal.Decimal
}

func (e CoverageError) Error() string {
	return fmt.Sprintf("installments short of gross value by %s", e.Shortfall.StringFixed(2))
}
func (e CoverageError) Code() ErrCode { return ErrInsufficientCoverage }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// dto

type AgendaEntry struct {
	model.Rental
	Category Category `json:"category"`
}

type AgendaView struct {
	Year    int           `json:"year"`
	Month   time.Month    `json:"month"`
	Totals  Totals        `json:"totals"`
	Rentals []AgendaEntry `json:"rentals"`
}

type RentalDetail struct {
	model.Rental
	Category        Category        `json:"category"`
	TotalCourtesies decimal.Decimal `json:"total_courtesies"`
	NetAmount       decimal.Decimal `json:"net_amount"`
}

type Service interface {
	// Agenda: month-scoped classified rentals with counters.
	Agenda(ctx context.Context, year int, month time.Month, filter Category) (*AgendaView, error)

	// Detail: one rental with live-derived payment status, category and net amount.
	Detail(ctx context.Context, id int64) (*RentalDetail, error)

	// ToggleStatus: one-way pending -> approved; rejected when installments
	// do not cover the gross value.
	ToggleStatus(ctx context.Context, id int64) error

	// SetPendingIssues: operator flag, independent of payment state.
	SetPendingIssues(ctx context.Context, id int64, flag bool) error

	// RecalculatePayment: re-derive and persist the payment aggregate.
	RecalculatePayment(ctx context.Context, id int64) (model.PaymentStatus, error)
}

// ----- Service implementation -----

type service struct {
	db  *sql.DB
	r   rrepo.Repo
	p   paymentrepo.Repo
	c   courtesyrepo.Repo
	now func() time.Time
}

func New(db *sql.DB, r rrepo.Repo, p paymentrepo.Repo, c courtesyrepo.Repo) Service {
	return &service{db: db, r: r, p: p, c: c, now: time.Now}
}

// NewWithNow pins the clock; the classifier and resolver take today as data.
func NewWithNow(db *sql.DB, r rrepo.Repo, p paymentrepo.Repo, c courtesyrepo.Repo, now func() time.Time) Service {
	return &service{db: db, r: r, p: p, c: c, now: now}
}

func (s *service) Agenda(ctx context.Context, year int, month time.Month, filter Category) (*AgendaView, error) {
	rentals, err := s.r.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	today := s.now()
	totals, filtered := Aggregate(rentals, year, month, today, filter)

	entries := make([]AgendaEntry, 0, len(filtered))
	for _, r := range filtered {
		entries = append(entries, AgendaEntry{Rental: r, Category: Classify(r, today)})
	}

	return &AgendaView{Year: year, Month: month, Totals: totals, Rentals: entries}, nil
}

func (s *service) Detail(ctx context.Context, id int64) (*RentalDetail, error) {
	r, err := s.r.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}

	installments, err := s.p.ListByRental(ctx, id)
	if err != nil {
		return nil, err
	}
	courtesies, err := s.c.ListByRental(ctx, id)
	if err != nil {
		return nil, err
	}

	today := s.now()
	// Detail derives the aggregate live; the stored column is only a cache.
	r.PaymentStatus = paymentsvc.ResolveStatus(installments, today)

	total := decimal.Zero
	for _, c := range courtesies {
		total = total.Add(c.TotalValue())
	}

	return &RentalDetail{
		Rental:          *r,
		Category:        Classify(*r, today),
		TotalCourtesies: total,
		NetAmount:       NetAmount(r.GrossValue, courtesies),
	}, nil
}

func (s *service) ToggleStatus(ctx context.Context, id int64) (err error) {
	installments, err := s.p.ListByRental(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	status, gross, err := s.r.GetApprovalForUpdate(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	if status != model.ApprovalPending {
		return makeErr(ErrNotPendingApproval)
	}

	covered := decimal.Zero
	for _, in := range installments {
		covered = covered.Add(in.Amount)
	}
	if covered.LessThan(gross) {
		return CoverageError{Shortfall: gross.Sub(covered)}
	}

	if err = s.r.Approve(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) SetPendingIssues(ctx context.Context, id int64, flag bool) error {
	if _, err := s.r.Detail(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	return s.r.SetPendingIssues(ctx, id, flag)
}

func (s *service) RecalculatePayment(ctx context.Context, id int64) (model.PaymentStatus, error) {
	installments, err := s.p.ListByRental(ctx, id)
	if err != nil {
		return "", err
	}
	status := paymentsvc.ResolveStatus(installments, s.now())
	if err := s.r.UpdatePaymentStatus(ctx, id, status); err != nil {
		return "", err
	}
	return status, nil
}
