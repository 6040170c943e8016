// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM payment_status -----------------------------------------------------
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// --- ENUM payment_method -----------------------------------------------------
type PaymentMethod string

const (
	PaymentMethodGateway PaymentMethod = "gateway" // midtrans snap
	PaymentMethodCash    PaymentMethod = "cash"    // dicatat manual oleh admin
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// PaymentModel: satu pembayaran atas satu FeeObligation. completed bersifat
// immutable kecuali koreksi administratif.
type PaymentModel struct {
	// PK
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	// Tenant
	PaymentSchoolID uuid.UUID `gorm:"column:payment_school_id;type:uuid;not null;index" json:"payment_school_id"`

	// FK → students, fee_obligations
	PaymentStudentID    uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`
	PaymentObligationID uuid.UUID `gorm:"column:payment_obligation_id;type:uuid;not null;index" json:"payment_obligation_id"`

	PaymentAmountSen int64         `gorm:"column:payment_amount_sen;not null;check:payment_amount_sen>=0" json:"payment_amount_sen"`
	PaymentMethod    PaymentMethod `gorm:"column:payment_method;type:varchar(20);not null;default:'gateway'" json:"payment_method"`
	PaymentStatus    PaymentStatus `gorm:"column:payment_status;type:varchar(20);not null;default:'pending';index" json:"payment_status"`

	// Midtrans
	PaymentOrderID   string  `gorm:"column:payment_order_id;type:varchar(64);uniqueIndex" json:"payment_order_id"`
	PaymentSnapToken *string `gorm:"column:payment_snap_token;type:text" json:"payment_snap_token,omitempty"`

	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	// Timestamps
	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"-"`
}

func (PaymentModel) TableName() string { return "payments" }
