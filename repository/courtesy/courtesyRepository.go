// repository/courtesy/repo.go
package courtesyrepo

import (
	"context"
	"database/sql"

	"github.com/guburchardt/kingsystem-backoffice/model"
	"github.com/shopspring/decimal"
)

type Repo interface {
	ListItems(ctx context.Context) ([]model.CourtesyItem, error)
	GetItem(ctx context.Context, itemID int64) (*model.CourtesyItem, error)

	ListByRental(ctx context.Context, rentalID int64) ([]model.Courtesy, error)
	Insert(ctx context.Context, rentalID, itemID, quantity int64, unitPrice decimal.Decimal) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type repo struct {
	db *sql.DB
}

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) ListItems(ctx context.Context) ([]model.CourtesyItem, error) {
	const q = `
		SELECT id, name, unit_price
		FROM courtesy_items
		ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CourtesyItem
	for rows.Next() {
		var it model.CourtesyItem
		if err := rows.Scan(&it.ID, &it.Name, &it.UnitPrice); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *repo) GetItem(ctx context.Context, itemID int64) (*model.CourtesyItem, error) {
	const q = `
		SELECT id, name, unit_price
		FROM courtesy_items
		WHERE id = $1`
	var it model.CourtesyItem
	if err := r.db.QueryRowContext(ctx, q, itemID).Scan(&it.ID, &it.Name, &it.UnitPrice); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *repo) ListByRental(ctx context.Context, rentalID int64) ([]model.Courtesy, error) {
	const q = `
		SELECT c.id, c.rental_id, c.item_id, i.name, c.quantity, c.unit_price, c.created_at
		FROM rental_courtesies c
		JOIN courtesy_items i ON i.id = c.item_id
		WHERE c.rental_id = $1
		ORDER BY c.id`
	rows, err := r.db.QueryContext(ctx, q, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Courtesy
	for rows.Next() {
		var c model.Courtesy
		if err := rows.Scan(&c.ID, &c.RentalID, &c.ItemID, &c.ItemName, &c.Quantity, &c.UnitPrice, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) Insert(ctx context.Context, rentalID, itemID, quantity int64, unitPrice decimal.Decimal) (int64, error) {
	// unit_price is a snapshot: courtesy cost must not move when the catalog
	// price changes later.
	const q = `
		INSERT INTO rental_courtesies (rental_id, item_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, rentalID, itemID, quantity, unitPrice).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `
		DELETE FROM rental_courtesies
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
