// repository/payment/repo.go
package paymentrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/guburchardt/kingsystem-backoffice/model"
)

type Repo interface {
	ListByRental(ctx context.Context, rentalID int64) ([]model.Installment, error)
	GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*model.Installment, error)

	MarkPaid(ctx context.Context, tx *sql.Tx, id int64) error
	MarkRejected(ctx context.Context, tx *sql.Tx, id int64, status model.InstallmentStatus, reason string) error

	// MarkOverdueBatch moves past-due a_receber installments to atrasado.
	MarkOverdueBatch(ctx context.Context, before time.Time) (int64, error)
}

type repo struct {
	db *sql.DB
}

func New(db *sql.DB) Repo { return &repo{db: db} }

const installmentColumns = `
	id, rental_id, amount, due_date, status,
	receipt_url, reject_reason, paid_at, created_at`

func (r *repo) ListByRental(ctx context.Context, rentalID int64) ([]model.Installment, error) {
	const q = `
		SELECT` + installmentColumns + `
		FROM installments
		WHERE rental_id = $1
		ORDER BY due_date, id`
	rows, err := r.db.QueryContext(ctx, q, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Installment
	for rows.Next() {
		var in model.Installment
		if err := rows.Scan(
			&in.ID, &in.RentalID, &in.Amount, &in.DueDate, &in.Status,
			&in.ReceiptURL, &in.RejectReason, &in.PaidAt, &in.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func (r *repo) GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*model.Installment, error) {
	const q = `
		SELECT` + installmentColumns + `
		FROM installments
		WHERE id = $1
		FOR UPDATE`
	var in model.Installment
	if err := tx.QueryRowContext(ctx, q, id).Scan(
		&in.ID, &in.RentalID, &in.Amount, &in.DueDate, &in.Status,
		&in.ReceiptURL, &in.RejectReason, &in.PaidAt, &in.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *repo) MarkPaid(ctx context.Context, tx *sql.Tx, id int64) error {
	const q = `
		UPDATE installments
		SET status = 'paid',
			paid_at = NOW(),
			reject_reason = NULL
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id)
	return err
}

func (r *repo) MarkRejected(ctx context.Context, tx *sql.Tx, id int64, status model.InstallmentStatus, reason string) error {
	const q = `
		UPDATE installments
		SET status = $2,
			reject_reason = $3,
			receipt_url = NULL
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id, status, reason)
	return err
}

func (r *repo) MarkOverdueBatch(ctx context.Context, before time.Time) (int64, error) {
	const q = `
		UPDATE installments
		SET status = 'atrasado'
		WHERE status = 'a_receber'
		  AND due_date < $1`
	res, err := r.db.ExecContext(ctx, q, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
