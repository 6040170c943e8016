package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	model "sekolahku_backend/internals/features/finance/fees/model"
)

var (
	testStudentID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testCategoryID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	testNow        = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
)

func testObligation(amountSen int64) model.FeeObligationModel {
	return model.FeeObligationModel{
		FeeObligationID:        uuid.New(),
		FeeObligationStudentID: testStudentID,
		FeeObligationAmountSen: amountSen,
		FeeObligationStatus:    model.FeeObligationStatusPending,
	}
}

func testWaiver(status model.FeeWaiverStatus, pct *float64, amountSen int64) model.FeeWaiverModel {
	sid, cid := testStudentID, testCategoryID
	return model.FeeWaiverModel{
		FeeWaiverID:         uuid.New(),
		FeeWaiverStudentID:  &sid,
		FeeWaiverCategoryID: &cid,
		FeeWaiverType:       model.FeeWaiverTypeDiscount,
		FeeWaiverPercentage: pct,
		FeeWaiverAmountSen:  amountSen,
		FeeWaiverStartDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		FeeWaiverEndDate:    time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		FeeWaiverStatus:     status,
	}
}

func pctPtr(v float64) *float64 { return &v }

func TestResolveDiscount_NoWaivers(t *testing.T) {
	ob := testObligation(300000)
	res := ResolveDiscount(ob, testCategoryID, nil, testNow)

	assert.Equal(t, int64(300000), res.OriginalSen)
	assert.Equal(t, int64(0), res.DiscountSen)
	assert.Equal(t, res.OriginalSen, res.FinalSen)
	assert.Empty(t, res.Applied)
}

// RM3000.00: biasiswa 25% + potongan tetap RM500.00 → diskon RM1250.00, final RM1750.00
func TestResolveDiscount_StackedPercentageAndFixed(t *testing.T) {
	ob := testObligation(300000)
	scholarship := testWaiver(model.FeeWaiverStatusApproved, pctPtr(25), 0)
	scholarship.FeeWaiverType = model.FeeWaiverTypeScholarship
	fixed := testWaiver(model.FeeWaiverStatusApproved, nil, 50000)

	res := ResolveDiscount(ob, testCategoryID, []model.FeeWaiverModel{scholarship, fixed}, testNow)

	assert.Equal(t, int64(300000), res.OriginalSen)
	assert.Equal(t, int64(125000), res.DiscountSen)
	assert.Equal(t, int64(175000), res.FinalSen)
	assert.Len(t, res.Applied, 2)
	assert.Equal(t, int64(75000), res.Applied[0].DiscountSen)
	assert.Equal(t, int64(50000), res.Applied[1].DiscountSen)
}

// waiver pending tidak boleh ikut — hasil identik dengan kasus di atas
func TestResolveDiscount_PendingWaiverExcluded(t *testing.T) {
	ob := testObligation(300000)
	scholarship := testWaiver(model.FeeWaiverStatusApproved, pctPtr(25), 0)
	fixed := testWaiver(model.FeeWaiverStatusApproved, nil, 50000)
	pending := testWaiver(model.FeeWaiverStatusPending, nil, 100000)

	res := ResolveDiscount(ob, testCategoryID, []model.FeeWaiverModel{scholarship, fixed, pending}, testNow)

	assert.Equal(t, int64(125000), res.DiscountSen)
	assert.Equal(t, int64(175000), res.FinalSen)
	assert.Len(t, res.Applied, 2)
}

func TestResolveDiscount_RejectedAndExpiredExcluded(t *testing.T) {
	ob := testObligation(100000)
	rejected := testWaiver(model.FeeWaiverStatusRejected, nil, 10000)
	expired := testWaiver(model.FeeWaiverStatusExpired, nil, 10000)

	res := ResolveDiscount(ob, testCategoryID, []model.FeeWaiverModel{rejected, expired}, testNow)

	assert.Equal(t, int64(0), res.DiscountSen)
	assert.Equal(t, int64(100000), res.FinalSen)
}

func TestResolveDiscount_OutOfWindowExcluded(t *testing.T) {
	ob := testObligation(100000)

	past := testWaiver(model.FeeWaiverStatusApproved, nil, 10000)
	past.FeeWaiverStartDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	past.FeeWaiverEndDate = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	future := testWaiver(model.FeeWaiverStatusApproved, nil, 10000)
	future.FeeWaiverStartDate = time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	future.FeeWaiverEndDate = time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC)

	res := ResolveDiscount(ob, testCategoryID, []model.FeeWaiverModel{past, future}, testNow)
	assert.Equal(t, int64(0), res.DiscountSen)
}

// window inklusif di kedua ujung
func TestResolveDiscount_WindowBoundsInclusive(t *testing.T) {
	ob := testObligation(100000)
	w := testWaiver(model.FeeWaiverStatusApproved, nil, 10000)
	w.FeeWaiverStartDate = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	w.FeeWaiverEndDate = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	res := ResolveDiscount(ob, testCategoryID, []model.FeeWaiverModel{w}, testNow)
	assert.Equal(t, int64(10000), res.DiscountSen)
}

func TestResolveDiscount_NilStudentOrCategorySkipped(t *testing.T) {
	ob := testObligation(100000)

	noStudent := testWaiver(model.FeeWaiverStatusApproved, nil, 10000)
	noStudent.FeeWaiverStudentID = nil

	noCategory := testWaiver(model.FeeWaiverStatusApproved, nil, 10000)
	noCategory.FeeWaiverCategoryID = nil

	res := ResolveDiscount(ob, testCategoryID, []model.FeeWaiverModel{noStudent, noCategory}, testNow)
	assert.Equal(t, int64(0), res.DiscountSen)
	assert.Empty(t, res.Applied)
}

func TestResolveDiscount_OtherStudentOrCategorySkipped(t *testing.T) {
	ob := testObligation(100000)

	otherStudent := testWaiver(model.FeeWaiverStatusApproved, nil, 10000)
	oid := uuid.New()
	otherStudent.FeeWaiverStudentID = &oid

	otherCategory := testWaiver(model.FeeWaiverStatusApproved, nil, 10000)
	ocid := uuid.New()
	otherCategory.FeeWaiverCategoryID = &ocid

	res := ResolveDiscount(ob, testCategoryID, []model.FeeWaiverModel{otherStudent, otherCategory}, testNow)
	assert.Equal(t, int64(0), res.DiscountSen)
}

// Perilaku berjalan: TIDAK ada clamping — final bisa negatif kalau total
// diskon melebihi nominal. Test ini memagari perilaku itu, bukan merestuinya.
func TestResolveDiscount_NoClampingBelowZero(t *testing.T) {
	ob := testObligation(100000)
	big := testWaiver(model.FeeWaiverStatusApproved, nil, 150000)

	res := ResolveDiscount(ob, testCategoryID, []model.FeeWaiverModel{big}, testNow)
	assert.Equal(t, int64(150000), res.DiscountSen)
	assert.Equal(t, int64(-50000), res.FinalSen)
}

func TestResolveDiscount_TotalIsSumOfContributions(t *testing.T) {
	ob := testObligation(240000)
	ws := []model.FeeWaiverModel{
		testWaiver(model.FeeWaiverStatusApproved, pctPtr(10), 0),
		testWaiver(model.FeeWaiverStatusApproved, pctPtr(5), 0),
		testWaiver(model.FeeWaiverStatusApproved, nil, 1234),
	}

	res := ResolveDiscount(ob, testCategoryID, ws, testNow)

	var sum int64
	for _, a := range res.Applied {
		sum += a.DiscountSen
	}
	assert.Equal(t, sum, res.DiscountSen)
	assert.Equal(t, res.OriginalSen-res.DiscountSen, res.FinalSen)
}

func TestEffectiveStatus_PendingPastDueIsOverdue(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ob := testObligation(100000)
	ob.FeeObligationDueDate = &due

	assert.Equal(t, model.FeeObligationStatusOverdue, ob.EffectiveStatus(testNow))

	// paid tetap paid walau due lewat (terminal)
	ob.FeeObligationStatus = model.FeeObligationStatusPaid
	assert.Equal(t, model.FeeObligationStatusPaid, ob.EffectiveStatus(testNow))
}

func TestEffectiveStatus_PendingBeforeDueStaysPending(t *testing.T) {
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	ob := testObligation(100000)
	ob.FeeObligationDueDate = &due

	assert.Equal(t, model.FeeObligationStatusPending, ob.EffectiveStatus(testNow))

	// due hari ini belum overdue
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	ob.FeeObligationDueDate = &today
	assert.Equal(t, model.FeeObligationStatusPending, ob.EffectiveStatus(testNow))
}
