// repository/vehicle/repo.go
package vehiclerepo

import (
	"context"
	"database/sql"

	"github.com/guburchardt/kingsystem-backoffice/model"
)

type Repo interface {
	Create(ctx context.Context, name, category, plate string, seats int64) (int64, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	Detail(ctx context.Context, id int64) (*model.Vehicle, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, name, category, plate string, seats int64) (int64, error) {
	const q = `
INSERT INTO vehicles (name, category, plate, seats)
VALUES ($1,$2,$3,$4)
RETURNING id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, name, category, plate, seats).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) List(ctx context.Context) ([]model.Vehicle, error) {
	const q = `
	SELECT id, name, category, seats, plate
	FROM vehicles
	ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Vehicle
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Category, &v.Seats, &v.Plate); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Vehicle, error) {
	const q = `
SELECT id, name, category, seats, plate
FROM vehicles
WHERE id=$1`
	var v model.Vehicle
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&v.ID, &v.Name, &v.Category, &v.Seats, &v.Plate); err != nil {
		return nil, err
	}
	return &v, nil
}
