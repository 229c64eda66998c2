package courtesysvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/guburchardt/kingsystem-backoffice/model"
	courtesyrepo "github.com/guburchardt/kingsystem-backoffice/repository/courtesy"
	rentalrepo "github.com/guburchardt/kingsystem-backoffice/repository/rental"
	rentalsvc "github.com/guburchardt/kingsystem-backoffice/service/rental"
	"github.com/shopspring/decimal"
)

// errors used by controllers

type ErrCode string

const (
	ErrRentalNotFound ErrCode = "RENTAL_NOT_FOUND"
	ErrItemNotFound   ErrCode = "ITEM_NOT_FOUND"
	ErrGrantNotFound  ErrCode = "GRANT_NOT_FOUND"
	ErrBadQuantity    ErrCode = "BAD_QUANTITY"
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

// Summary is the courtesy view of one rental: the grants plus the derived
// figures. Gross never changes because of courtesies; only the net does.
type Summary struct {
	RentalID        int64            `json:"rental_id"`
	Courtesies      []model.Courtesy `json:"courtesies"`
	GrossValue      decimal.Decimal  `json:"gross_value"`
	TotalCourtesies decimal.Decimal  `json:"total_courtesies"`
	NetAmount       decimal.Decimal  `json:"net_amount"`
}

type Service interface {
	Items(ctx context.Context) ([]model.CourtesyItem, error)
	ByRental(ctx context.Context, rentalID int64) (*Summary, error)

	// Grant snapshots the catalog unit price at grant time.
	Grant(ctx context.Context, rentalID, itemID, quantity int64) (*Summary, error)
	Revoke(ctx context.Context, rentalID, grantID int64) (*Summary, error)
}

// ----- Service implementation -----

type service struct {
	c courtesyrepo.Repo
	r rentalrepo.Repo
}

func New(c courtesyrepo.Repo, r rentalrepo.Repo) Service {
	return &service{c: c, r: r}
}

func (s *service) Items(ctx context.Context) ([]model.CourtesyItem, error) {
	return s.c.ListItems(ctx)
}

func (s *service) ByRental(ctx context.Context, rentalID int64) (*Summary, error) {
	return s.summary(ctx, rentalID)
}

func (s *service) Grant(ctx context.Context, rentalID, itemID, quantity int64) (*Summary, error) {
	if quantity <= 0 {
		return nil, makeErr(ErrBadQuantity)
	}
	if _, err := s.r.Detail(ctx, rentalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrRentalNotFound)
		}
		return nil, err
	}

	item, err := s.c.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrItemNotFound)
		}
		return nil, err
	}

	if _, err := s.c.Insert(ctx, rentalID, itemID, quantity, item.UnitPrice); err != nil {
		return nil, err
	}
	return s.summary(ctx, rentalID)
}

func (s *service) Revoke(ctx context.Context, rentalID, grantID int64) (*Summary, error) {
	n, err := s.c.Delete(ctx, grantID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, makeErr(ErrGrantNotFound)
	}
	return s.summary(ctx, rentalID)
}

func (s *service) summary(ctx context.Context, rentalID int64) (*Summary, error) {
	r, err := s.r.Detail(ctx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrRentalNotFound)
		}
		return nil, err
	}
	courtesies, err := s.c.ListByRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, c := range courtesies {
		total = total.Add(c.TotalValue())
	}

	return &Summary{
		RentalID:        rentalID,
		Courtesies:      courtesies,
		GrossValue:      r.GrossValue,
		TotalCourtesies: total,
		NetAmount:       rentalsvc.NetAmount(r.GrossValue, courtesies),
	}, nil
}
