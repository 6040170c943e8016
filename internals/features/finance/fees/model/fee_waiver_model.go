// file: internals/features/finance/fees/model/fee_waiver_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — jenis & status waiver
// =========================================================

type FeeWaiverType string

const (
	FeeWaiverTypeScholarship FeeWaiverType = "scholarship"
	FeeWaiverTypeDiscount    FeeWaiverType = "discount"
	FeeWaiverTypeWaiver      FeeWaiverType = "waiver"
)

type FeeWaiverStatus string

const (
	FeeWaiverStatusPending  FeeWaiverStatus = "pending"
	FeeWaiverStatusApproved FeeWaiverStatus = "approved"
	FeeWaiverStatusRejected FeeWaiverStatus = "rejected"
	FeeWaiverStatusExpired  FeeWaiverStatus = "expired"
)

// =========================================================
// MODEL
// =========================================================

// FeeWaiverModel: satu grant diskon/biasiswa/pengecualian untuk
// (pelajar, kategori yuran) dengan window berlaku & status approval.
// Student/category nullable mengikuti data lama — baris seperti itu
// dianggap "tidak berlaku", bukan error.
type FeeWaiverModel struct {
	// PK
	FeeWaiverID uuid.UUID `gorm:"column:fee_waiver_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_waiver_id"`

	// Tenant
	FeeWaiverSchoolID uuid.UUID `gorm:"column:fee_waiver_school_id;type:uuid;not null;index" json:"fee_waiver_school_id"`

	// Target (nullable — lihat catatan di atas)
	FeeWaiverStudentID  *uuid.UUID `gorm:"column:fee_waiver_student_id;type:uuid;index" json:"fee_waiver_student_id,omitempty"`
	FeeWaiverCategoryID *uuid.UUID `gorm:"column:fee_waiver_category_id;type:uuid;index" json:"fee_waiver_category_id,omitempty"`

	FeeWaiverType FeeWaiverType `gorm:"column:fee_waiver_type;type:varchar(20);not null;default:'discount'" json:"fee_waiver_type"`

	// Persentase ATAU potongan tetap (sen). Persentase menang kalau keduanya terisi.
	FeeWaiverPercentage *float64 `gorm:"column:fee_waiver_percentage;type:numeric(5,2);check:fee_waiver_percentage>=0" json:"fee_waiver_percentage,omitempty"`
	FeeWaiverAmountSen  int64    `gorm:"column:fee_waiver_amount_sen;not null;default:0;check:fee_waiver_amount_sen>=0" json:"fee_waiver_amount_sen"`

	// Window berlaku (inklusif)
	FeeWaiverStartDate time.Time `gorm:"column:fee_waiver_start_date;type:date;not null" json:"fee_waiver_start_date"`
	FeeWaiverEndDate   time.Time `gorm:"column:fee_waiver_end_date;type:date;not null" json:"fee_waiver_end_date"`

	FeeWaiverStatus FeeWaiverStatus `gorm:"column:fee_waiver_status;type:varchar(20);not null;default:'pending';index" json:"fee_waiver_status"`
	FeeWaiverReason *string         `gorm:"column:fee_waiver_reason;type:text" json:"fee_waiver_reason,omitempty"`

	// Approval trail
	FeeWaiverDecidedBy *uuid.UUID `gorm:"column:fee_waiver_decided_by;type:uuid" json:"fee_waiver_decided_by,omitempty"`
	FeeWaiverDecidedAt *time.Time `gorm:"column:fee_waiver_decided_at" json:"fee_waiver_decided_at,omitempty"`

	// Timestamps
	FeeWaiverCreatedAt time.Time      `gorm:"column:fee_waiver_created_at;autoCreateTime" json:"fee_waiver_created_at"`
	FeeWaiverUpdatedAt time.Time      `gorm:"column:fee_waiver_updated_at;autoUpdateTime" json:"fee_waiver_updated_at"`
	FeeWaiverDeletedAt gorm.DeletedAt `gorm:"column:fee_waiver_deleted_at;index" json:"-"`
}

func (FeeWaiverModel) TableName() string { return "fee_waivers" }

// IsActiveAt: hanya approved DAN start<=at<=end yang menyumbang diskon.
// Status lain / di luar window bukan error — sekadar tidak dihitung.
func (m FeeWaiverModel) IsActiveAt(at time.Time) bool {
	if m.FeeWaiverStatus != FeeWaiverStatusApproved {
		return false
	}
	day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	return !day.Before(m.FeeWaiverStartDate) && !day.After(m.FeeWaiverEndDate)
}
