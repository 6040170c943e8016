// file: internals/features/finance/fees/model/fee_obligation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — status fee obligation
// =========================================================

type FeeObligationStatus string

const (
	FeeObligationStatusPending FeeObligationStatus = "pending"
	FeeObligationStatusOverdue FeeObligationStatus = "overdue"
	FeeObligationStatusPaid    FeeObligationStatus = "paid" // terminal
)

// =========================================================
// MODEL
// =========================================================

// FeeObligationModel: instance per-pelajar dari sebuah FeeStructure,
// dengan nominal & due date sendiri. Nominal TIDAK pernah dimutasi oleh
// diskon — diskon dihitung read-only oleh DiscountResolver.
type FeeObligationModel struct {
	// PK
	FeeObligationID uuid.UUID `gorm:"column:fee_obligation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_obligation_id"`

	// Tenant
	FeeObligationSchoolID uuid.UUID `gorm:"column:fee_obligation_school_id;type:uuid;not null;index" json:"fee_obligation_school_id"`

	// FK → students, fee_structures
	FeeObligationStudentID   uuid.UUID `gorm:"column:fee_obligation_student_id;type:uuid;not null;index;uniqueIndex:uniq_obligation_structure_student,priority:2" json:"fee_obligation_student_id"`
	FeeObligationStructureID uuid.UUID `gorm:"column:fee_obligation_structure_id;type:uuid;not null;index;uniqueIndex:uniq_obligation_structure_student,priority:1" json:"fee_obligation_structure_id"`

	// Amount nominal (salinan dari struktur saat generate; boleh di-override manual)
	FeeObligationAmountSen int64 `gorm:"column:fee_obligation_amount_sen;not null;check:fee_obligation_amount_sen>=0" json:"fee_obligation_amount_sen"`

	FeeObligationDueDate *time.Time          `gorm:"column:fee_obligation_due_date;type:date;index" json:"fee_obligation_due_date,omitempty"`
	FeeObligationStatus  FeeObligationStatus `gorm:"column:fee_obligation_status;type:varchar(20);not null;default:'pending';index" json:"fee_obligation_status"`
	FeeObligationPaidAt  *time.Time          `gorm:"column:fee_obligation_paid_at" json:"fee_obligation_paid_at,omitempty"`
	FeeObligationNote    *string             `gorm:"column:fee_obligation_note;type:text" json:"fee_obligation_note,omitempty"`

	// Timestamps (eksplisit)
	FeeObligationCreatedAt time.Time      `gorm:"column:fee_obligation_created_at;not null;default:now()" json:"fee_obligation_created_at"`
	FeeObligationUpdatedAt time.Time      `gorm:"column:fee_obligation_updated_at;not null;default:now()" json:"fee_obligation_updated_at"`
	FeeObligationDeletedAt gorm.DeletedAt `gorm:"column:fee_obligation_deleted_at;index" json:"-"`

	// Relations
	Structure *FeeStructureModel `gorm:"foreignKey:FeeObligationStructureID;references:FeeStructureID" json:"structure,omitempty"`
}

func (FeeObligationModel) TableName() string { return "fee_obligations" }

// EffectiveStatus: pending yang lewat due date ditampilkan sebagai overdue.
// Murni & idempotent — boleh dihitung di setiap read; sweep scheduler
// mem-persist hasilnya secara lazy supaya agregat SQL ikut benar.
func (m FeeObligationModel) EffectiveStatus(at time.Time) FeeObligationStatus {
	if m.FeeObligationStatus == FeeObligationStatusPending &&
		m.FeeObligationDueDate != nil &&
		m.FeeObligationDueDate.Before(truncateToDate(at)) {
		return FeeObligationStatusOverdue
	}
	return m.FeeObligationStatus
}

// IsOutstanding: masih muncul di daftar "yuran semasa" pelajar.
func (m FeeObligationModel) IsOutstanding() bool {
	return m.FeeObligationStatus != FeeObligationStatusPaid
}

func truncateToDate(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}

// =========================================================
// HOOKS — set timestamps eksplisit
// =========================================================

func (m *FeeObligationModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeeObligationCreatedAt.IsZero() {
		m.FeeObligationCreatedAt = now
	}
	m.FeeObligationUpdatedAt = now
	return nil
}

func (m *FeeObligationModel) BeforeUpdate(tx *gorm.DB) error {
	m.FeeObligationUpdatedAt = time.Now()
	return nil
}
