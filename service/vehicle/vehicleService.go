package vehiclesvc

import (
	"context"
	"errors"

	"github.com/guburchardt/kingsystem-backoffice/model"
)

type Repo interface {
	Create(ctx context.Context, name, category, plate string, seats int64) (int64, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	Detail(ctx context.Context, id int64) (*model.Vehicle, error)
}

type Service interface {
	Create(ctx context.Context, name, category, plate string, seats int64) (int64, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	Detail(ctx context.Context, id int64) (*model.Vehicle, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, name, category, plate string, seats int64) (int64, error) {
	if name == "" {
		return 0, errors.New("name required")
	}
	if category == "" {
		return 0, errors.New("category required")
	}
	if seats <= 0 {
		return 0, errors.New("seats must be > 0")
	}
	return s.r.Create(ctx, name, category, plate, seats)
}

func (s *service) List(ctx context.Context) ([]model.Vehicle, error) { return s.r.List(ctx) }

func (s *service) Detail(ctx context.Context, id int64) (*model.Vehicle, error) {
	return s.r.Detail(ctx, id)
}
