// file: internals/features/finance/fees/model/individual_fee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IndividualStudentFeeModel: yuran ad-hoc satu pelajar, di luar siklus
// FeeObligation (punya is_paid sendiri).
type IndividualStudentFeeModel struct {
	// PK
	IndividualFeeID uuid.UUID `gorm:"column:individual_fee_id;type:uuid;default:gen_random_uuid();primaryKey" json:"individual_fee_id"`

	// Tenant
	IndividualFeeSchoolID uuid.UUID `gorm:"column:individual_fee_school_id;type:uuid;not null;index" json:"individual_fee_school_id"`

	// FK → students, fee_categories (kategori bertipe individual)
	IndividualFeeStudentID  uuid.UUID  `gorm:"column:individual_fee_student_id;type:uuid;not null;index" json:"individual_fee_student_id"`
	IndividualFeeCategoryID *uuid.UUID `gorm:"column:individual_fee_category_id;type:uuid" json:"individual_fee_category_id,omitempty"`

	IndividualFeeTitle     string `gorm:"column:individual_fee_title;type:varchar(100);not null" json:"individual_fee_title"`
	IndividualFeeAmountSen int64  `gorm:"column:individual_fee_amount_sen;not null;check:individual_fee_amount_sen>=0" json:"individual_fee_amount_sen"`

	IndividualFeeDueDate *time.Time `gorm:"column:individual_fee_due_date;type:date" json:"individual_fee_due_date,omitempty"`

	IndividualFeeIsPaid bool       `gorm:"column:individual_fee_is_paid;not null;default:false;index" json:"individual_fee_is_paid"`
	IndividualFeePaidAt *time.Time `gorm:"column:individual_fee_paid_at" json:"individual_fee_paid_at,omitempty"`

	// Timestamps
	IndividualFeeCreatedAt time.Time      `gorm:"column:individual_fee_created_at;autoCreateTime" json:"individual_fee_created_at"`
	IndividualFeeUpdatedAt time.Time      `gorm:"column:individual_fee_updated_at;autoUpdateTime" json:"individual_fee_updated_at"`
	IndividualFeeDeletedAt gorm.DeletedAt `gorm:"column:individual_fee_deleted_at;index" json:"-"`
}

func (IndividualStudentFeeModel) TableName() string { return "individual_student_fees" }
