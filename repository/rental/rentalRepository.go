// repository/rental/repo.go
package rental

import (
	"context"
	"database/sql"
	"time"

	"github.com/guburchardt/kingsystem-backoffice/model"
	"github.com/shopspring/decimal"
)

type Repo interface {
	// Month agenda
	ListByMonth(ctx context.Context, year int, month time.Month) ([]model.Rental, error)

	// Single rental
	Detail(ctx context.Context, id int64) (*model.Rental, error)
	GetApprovalForUpdate(ctx context.Context, tx *sql.Tx, id int64) (status model.ApprovalStatus, gross decimal.Decimal, err error)

	// State transitions
	Approve(ctx context.Context, tx *sql.Tx, id int64) error
	SetPendingIssues(ctx context.Context, id int64, flag bool) error
	UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) error
}

type repo struct {
	db *sql.DB
}

func New(db *sql.DB) Repo { return &repo{db: db} }

const rentalColumns = `
	r.id, r.client_id, r.vehicle_id, COALESCE(v.category,''),
	r.event_date, r.approval_status, r.payment_status, r.has_pending_issues,
	r.situation, r.gross_value, r.notes, r.created_at`

func (r *repo) ListByMonth(ctx context.Context, year int, month time.Month) ([]model.Rental, error) {
	const q = `
		SELECT` + rentalColumns + `
		FROM rentals r
		LEFT JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.event_date >= make_date($1, $2, 1)
		  AND r.event_date <  make_date($1, $2, 1) + INTERVAL '1 month'
		ORDER BY r.event_date, r.id`
	rows, err := r.db.QueryContext(ctx, q, year, int(month))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Rental
	for rows.Next() {
		m, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Rental, error) {
	const q = `
		SELECT` + rentalColumns + `
		FROM rentals r
		LEFT JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.id = $1`
	m, err := scanRental(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repo) GetApprovalForUpdate(ctx context.Context, tx *sql.Tx, id int64) (model.ApprovalStatus, decimal.Decimal, error) {
	const q = `
		SELECT approval_status, gross_value
		FROM rentals
		WHERE id = $1
		FOR UPDATE`
	var status model.ApprovalStatus
	var gross decimal.Decimal
	err := tx.QueryRowContext(ctx, q, id).Scan(&status, &gross)
	return status, gross, err
}

func (r *repo) Approve(ctx context.Context, tx *sql.Tx, id int64) error {
	const q = `
		UPDATE rentals
		SET approval_status = 'approved'
		WHERE id = $1
		  AND approval_status = 'pending'`
	_, err := tx.ExecContext(ctx, q, id)
	return err
}

func (r *repo) SetPendingIssues(ctx context.Context, id int64, flag bool) error {
	const q = `
		UPDATE rentals
		SET has_pending_issues = $2
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, flag)
	return err
}

func (r *repo) UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) error {
	const q = `
		UPDATE rentals
		SET payment_status = $2
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, status)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRental(row rowScanner) (model.Rental, error) {
	var m model.Rental
	var situation sql.NullString
	err := row.Scan(
		&m.ID, &m.ClientID, &m.VehicleID, &m.VehicleCategory,
		&m.EventDate, &m.ApprovalStatus, &m.PaymentStatus, &m.HasPendingIssues,
		&situation, &m.GrossValue, &m.Notes, &m.CreatedAt,
	)
	if err != nil {
		return model.Rental{}, err
	}
	if situation.Valid {
		s := model.Situation(situation.String)
		m.Situation = &s
	}
	return m, nil
}
