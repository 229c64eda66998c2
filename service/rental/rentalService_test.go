// service/rental/rental_service_test.go
package rental_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guburchardt/kingsystem-backoffice/model"
	rentalsvc "github.com/guburchardt/kingsystem-backoffice/service/rental"
)

type rentalRepoMock struct {
	listByMonthFn          func(ctx context.Context, year int, month time.Month) ([]model.Rental, error)
	detailFn               func(ctx context.Context, id int64) (*model.Rental, error)
	getApprovalForUpdateFn func(ctx context.Context, tx *sql.Tx, id int64) (model.ApprovalStatus, decimal.Decimal, error)
	approveFn              func(ctx context.Context, tx *sql.Tx, id int64) error
	setPendingIssuesFn     func(ctx context.Context, id int64, flag bool) error
	updatePaymentStatusFn  func(ctx context.Context, id int64, status model.PaymentStatus) error
}

func (m *rentalRepoMock) ListByMonth(ctx context.Context, year int, month time.Month) ([]model.Rental, error) {
	return m.listByMonthFn(ctx, year, month)
}
func (m *rentalRepoMock) Detail(ctx context.Context, id int64) (*model.Rental, error) {
	return m.detailFn(ctx, id)
}
func (m *rentalRepoMock) GetApprovalForUpdate(ctx context.Context, tx *sql.Tx, id int64) (model.ApprovalStatus, decimal.Decimal, error) {
	return m.getApprovalForUpdateFn(ctx, tx, id)
}
func (m *rentalRepoMock) Approve(ctx context.Context, tx *sql.Tx, id int64) error {
	return m.approveFn(ctx, tx, id)
}
func (m *rentalRepoMock) SetPendingIssues(ctx context.Context, id int64, flag bool) error {
	return m.setPendingIssuesFn(ctx, id, flag)
}
func (m *rentalRepoMock) UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) error {
	return m.updatePaymentStatusFn(ctx, id, status)
}

type paymentRepoMock struct {
	listByRentalFn func(ctx context.Context, rentalID int64) ([]model.Installment, error)
}

func (m *paymentRepoMock) ListByRental(ctx context.Context, rentalID int64) ([]model.Installment, error) {
	return m.listByRentalFn(ctx, rentalID)
}
func (m *paymentRepoMock) GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*model.Installment, error) {
	panic("not used")
}
func (m *paymentRepoMock) MarkPaid(ctx context.Context, tx *sql.Tx, id int64) error {
	panic("not used")
}
func (m *paymentRepoMock) MarkRejected(ctx context.Context, tx *sql.Tx, id int64, status model.InstallmentStatus, reason string) error {
	panic("not used")
}
func (m *paymentRepoMock) MarkOverdueBatch(ctx context.Context, before time.Time) (int64, error) {
	panic("not used")
}

type courtesyRepoMock struct {
	listByRentalFn func(ctx context.Context, rentalID int64) ([]model.Courtesy, error)
}

func (m *courtesyRepoMock) ListItems(ctx context.Context) ([]model.CourtesyItem, error) {
	panic("not used")
}
func (m *courtesyRepoMock) GetItem(ctx context.Context, itemID int64) (*model.CourtesyItem, error) {
	panic("not used")
}
func (m *courtesyRepoMock) ListByRental(ctx context.Context, rentalID int64) ([]model.Courtesy, error) {
	return m.listByRentalFn(ctx, rentalID)
}
func (m *courtesyRepoMock) Insert(ctx context.Context, rentalID, itemID, quantity int64, unitPrice decimal.Decimal) (int64, error) {
	panic("not used")
}
func (m *courtesyRepoMock) Delete(ctx context.Context, id int64) (int64, error) {
	panic("not used")
}

func fixedNow() time.Time { return today }

func installments(amounts ...int64) []model.Installment {
	out := make([]model.Installment, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, model.Installment{
			Amount:  decimal.NewFromInt(a),
			DueDate: today.AddDate(0, 0, 30),
			Status:  model.InstallmentAwaiting,
		})
	}
	return out
}

func TestToggleStatus_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	approved := false
	r := &rentalRepoMock{
		getApprovalForUpdateFn: func(ctx context.Context, tx *sql.Tx, id int64) (model.ApprovalStatus, decimal.Decimal, error) {
			return model.ApprovalPending, decimal.NewFromInt(1000), nil
		},
		approveFn: func(ctx context.Context, tx *sql.Tx, id int64) error {
			approved = true
			return nil
		},
	}
	p := &paymentRepoMock{
		listByRentalFn: func(ctx context.Context, rentalID int64) ([]model.Installment, error) {
			return installments(600, 400), nil
		},
	}

	s := rentalsvc.NewWithNow(db, r, p, &courtesyRepoMock{}, fixedNow)
	require.NoError(t, s.ToggleStatus(context.Background(), 7))
	assert.True(t, approved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleStatus_InsufficientCoverage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	r := &rentalRepoMock{
		getApprovalForUpdateFn: func(ctx context.Context, tx *sql.Tx, id int64) (model.ApprovalStatus, decimal.Decimal, error) {
			return model.ApprovalPending, decimal.NewFromInt(1000), nil
		},
		approveFn: func(ctx context.Context, tx *sql.Tx, id int64) error {
			t.Fatal("must not approve an uncovered rental")
			return nil
		},
	}
	p := &paymentRepoMock{
		listByRentalFn: func(ctx context.Context, rentalID int64) ([]model.Installment, error) {
			return installments(500, 250), nil
		},
	}

	s := rentalsvc.NewWithNow(db, r, p, &courtesyRepoMock{}, fixedNow)
	err = s.ToggleStatus(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, rentalsvc.ErrInsufficientCoverage, rentalsvc.Code(err))
	assert.Contains(t, err.Error(), "250.00", "error must name the shortfall")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleStatus_OneWay(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	r := &rentalRepoMock{
		getApprovalForUpdateFn: func(ctx context.Context, tx *sql.Tx, id int64) (model.ApprovalStatus, decimal.Decimal, error) {
			return model.ApprovalApproved, decimal.NewFromInt(1000), nil
		},
	}
	p := &paymentRepoMock{
		listByRentalFn: func(ctx context.Context, rentalID int64) ([]model.Installment, error) {
			return installments(1000), nil
		},
	}

	s := rentalsvc.NewWithNow(db, r, p, &courtesyRepoMock{}, fixedNow)
	err = s.ToggleStatus(context.Background(), 7)
	assert.Equal(t, rentalsvc.ErrNotPendingApproval, rentalsvc.Code(err))
}

func TestRecalculatePayment_PersistsDerivedStatus(t *testing.T) {
	var persisted model.PaymentStatus
	r := &rentalRepoMock{
		updatePaymentStatusFn: func(ctx context.Context, id int64, status model.PaymentStatus) error {
			persisted = status
			return nil
		},
	}
	p := &paymentRepoMock{
		listByRentalFn: func(ctx context.Context, rentalID int64) ([]model.Installment, error) {
			return []model.Installment{{
				Amount:  decimal.NewFromInt(100),
				DueDate: today.AddDate(0, 0, -1),
				Status:  model.InstallmentAwaiting,
			}}, nil
		},
	}

	s := rentalsvc.NewWithNow(nil, r, p, &courtesyRepoMock{}, fixedNow)
	status, err := s.RecalculatePayment(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentOverdue, status)
	assert.Equal(t, model.PaymentOverdue, persisted)
}

func TestAgenda_ClassifiesAndFilters(t *testing.T) {
	r := &rentalRepoMock{
		listByMonthFn: func(ctx context.Context, year int, month time.Month) ([]model.Rental, error) {
			return marchRentals(), nil
		},
	}

	s := rentalsvc.NewWithNow(nil, r, &paymentRepoMock{}, &courtesyRepoMock{}, fixedNow)
	view, err := s.Agenda(context.Background(), 2026, time.March, rentalsvc.CategoryLimoSettled)
	require.NoError(t, err)

	assert.Equal(t, int64(4), view.Totals.All)
	require.Len(t, view.Rentals, 1)
	assert.EqualValues(t, 2, view.Rentals[0].ID)
	assert.Equal(t, rentalsvc.CategoryLimoSettled, view.Rentals[0].Category)
}

func TestDetail_DerivesStatusAndNet(t *testing.T) {
	r := &rentalRepoMock{
		detailFn: func(ctx context.Context, id int64) (*model.Rental, error) {
			return &model.Rental{
				ID:              id,
				VehicleCategory: "Limousine",
				EventDate:       datePtr(today.AddDate(0, 0, 10)),
				ApprovalStatus:  model.ApprovalApproved,
				// stale cache on purpose: Detail must re-derive
				PaymentStatus: model.PaymentPending,
				GrossValue:    decimal.NewFromInt(1000),
			}, nil
		},
	}
	p := &paymentRepoMock{
		listByRentalFn: func(ctx context.Context, rentalID int64) ([]model.Installment, error) {
			return []model.Installment{{
				Amount:  decimal.NewFromInt(1000),
				DueDate: today.AddDate(0, 0, -5),
				Status:  model.InstallmentPaid,
			}}, nil
		},
	}
	c := &courtesyRepoMock{
		listByRentalFn: func(ctx context.Context, rentalID int64) ([]model.Courtesy, error) {
			return []model.Courtesy{{Quantity: 2, UnitPrice: decimal.NewFromInt(150)}}, nil
		},
	}

	s := rentalsvc.NewWithNow(nil, r, p, c, fixedNow)
	out, err := s.Detail(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, model.PaymentPaid, out.PaymentStatus)
	assert.Equal(t, rentalsvc.CategoryLimoSettled, out.Category)
	assert.True(t, out.TotalCourtesies.Equal(decimal.NewFromInt(300)), "got %s", out.TotalCourtesies)
	assert.True(t, out.NetAmount.Equal(decimal.NewFromInt(700)), "got %s", out.NetAmount)
}
