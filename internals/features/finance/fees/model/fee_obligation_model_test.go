// file: internals/features/finance/fees/model/fee_obligation_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatus_PaidIsTerminal(t *testing.T) {
	due := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	paidAt := due.AddDate(0, 0, 3)
	ob := FeeObligationModel{
		FeeObligationStatus:  FeeObligationStatusPaid,
		FeeObligationDueDate: &due,
		FeeObligationPaidAt:  &paidAt,
	}

	// paid tidak pernah mundur ke overdue, walau due sudah jauh lewat
	assert.Equal(t, FeeObligationStatusPaid, ob.EffectiveStatus(due.AddDate(1, 0, 0)))
}

func TestEffectiveStatus_DueTodayStillPending(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ob := FeeObligationModel{
		FeeObligationStatus:  FeeObligationStatusPending,
		FeeObligationDueDate: &due,
	}

	// hari-H belum tertunggak — overdue mulai keesokan harinya
	sameDayEvening := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, FeeObligationStatusPending, ob.EffectiveStatus(sameDayEvening))

	nextDay := time.Date(2026, 3, 2, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, FeeObligationStatusOverdue, ob.EffectiveStatus(nextDay))
}

func TestEffectiveStatus_NoDueDateNeverOverdue(t *testing.T) {
	ob := FeeObligationModel{FeeObligationStatus: FeeObligationStatusPending}
	assert.Equal(t, FeeObligationStatusPending, ob.EffectiveStatus(time.Now().AddDate(10, 0, 0)))
}

func TestIsOutstanding(t *testing.T) {
	assert.True(t, FeeObligationModel{FeeObligationStatus: FeeObligationStatusPending}.IsOutstanding())
	assert.True(t, FeeObligationModel{FeeObligationStatus: FeeObligationStatusOverdue}.IsOutstanding())
	assert.False(t, FeeObligationModel{FeeObligationStatus: FeeObligationStatusPaid}.IsOutstanding())
}
