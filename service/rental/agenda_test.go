package rental_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guburchardt/kingsystem-backoffice/model"
	rentalsvc "github.com/guburchardt/kingsystem-backoffice/service/rental"
)

// fixture month: March 2026, today = March 15.
func marchRentals() []model.Rental {
	return []model.Rental{
		// past event (march 10)
		{ID: 1, EventDate: datePtr(time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)), ApprovalStatus: model.ApprovalApproved, PaymentStatus: model.PaymentPaid},
		// today, paid limo
		{ID: 2, EventDate: datePtr(time.Date(2026, 3, 15, 20, 0, 0, 0, time.Local)), VehicleCategory: "Limousine", ApprovalStatus: model.ApprovalApproved, PaymentStatus: model.PaymentPaid},
		// future, overdue
		{ID: 3, EventDate: datePtr(time.Date(2026, 3, 20, 0, 0, 0, 0, time.Local)), ApprovalStatus: model.ApprovalApproved, PaymentStatus: model.PaymentOverdue},
		// future, awaiting approval
		{ID: 4, EventDate: datePtr(time.Date(2026, 3, 25, 0, 0, 0, 0, time.Local)), ApprovalStatus: model.ApprovalPending, PaymentStatus: model.PaymentPending},
		// other month, must be out of scope
		{ID: 5, EventDate: datePtr(time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local)), ApprovalStatus: model.ApprovalPending, PaymentStatus: model.PaymentPending},
		// no event date, out of scope
		{ID: 6, EventDate: nil, ApprovalStatus: model.ApprovalPending, PaymentStatus: model.PaymentPending},
	}
}

func TestAggregate_CountsAndScope(t *testing.T) {
	totals, filtered := rentalsvc.Aggregate(marchRentals(), 2026, time.March, today, rentalsvc.CategoryAll)

	assert.Equal(t, int64(4), totals.All)
	assert.Equal(t, int64(1), totals.EventsToday)
	assert.Equal(t, int64(1), totals.Concluded)

	assert.Equal(t, int64(1), totals.Counts[rentalsvc.CategoryPast])
	assert.Equal(t, int64(1), totals.Counts[rentalsvc.CategoryLimoSettled])
	assert.Equal(t, int64(1), totals.Counts[rentalsvc.CategoryOverdue])
	assert.Equal(t, int64(1), totals.Counts[rentalsvc.CategoryAwaitingApproval])
	assert.Equal(t, int64(0), totals.Counts[rentalsvc.CategoryVanSettled])

	require.Len(t, filtered, 4)
	for _, r := range filtered {
		assert.NotEqualValues(t, 5, r.ID, "april rental leaked into march scope")
		assert.NotEqualValues(t, 6, r.ID, "date-less rental leaked into scope")
	}
}

func TestAggregate_EveryCategoryCounterPresent(t *testing.T) {
	totals, _ := rentalsvc.Aggregate(nil, 2026, time.March, today, rentalsvc.CategoryAll)
	for _, c := range rentalsvc.Categories {
		_, ok := totals.Counts[c]
		assert.True(t, ok, "missing counter for %s", c)
	}
}

func TestAggregate_FilterDoesNotChangeCounts(t *testing.T) {
	all, _ := rentalsvc.Aggregate(marchRentals(), 2026, time.March, today, rentalsvc.CategoryAll)
	byOverdue, filtered := rentalsvc.Aggregate(marchRentals(), 2026, time.March, today, rentalsvc.CategoryOverdue)

	assert.Equal(t, all, byOverdue, "counts must be computed over the unfiltered scope")
	require.Len(t, filtered, 1)
	assert.EqualValues(t, 3, filtered[0].ID)
}

func TestAggregate_Idempotent(t *testing.T) {
	rentals := marchRentals()
	t1, f1 := rentalsvc.Aggregate(rentals, 2026, time.March, today, rentalsvc.CategoryOverdue)
	t2, f2 := rentalsvc.Aggregate(rentals, 2026, time.March, today, rentalsvc.CategoryOverdue)
	assert.Equal(t, t1, t2)
	assert.Equal(t, f1, f2)
}

func TestAggregate_EmptyMonth(t *testing.T) {
	totals, filtered := rentalsvc.Aggregate(marchRentals(), 2026, time.December, today, rentalsvc.CategoryAll)
	assert.Equal(t, int64(0), totals.All)
	assert.Empty(t, filtered)
}
