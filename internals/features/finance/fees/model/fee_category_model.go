// file: internals/features/finance/fees/model/fee_category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM fee_category_type --------------------------------------------------
// "general"   → berlaku untuk struktur yuran satu level penuh
// "individual" → one-off per pelajar (tidak lewat FeeStructure)
type FeeCategoryType string

const (
	FeeCategoryTypeGeneral    FeeCategoryType = "general"
	FeeCategoryTypeIndividual FeeCategoryType = "individual"
)

type FeeCategoryModel struct {
	// PK
	FeeCategoryID uuid.UUID `gorm:"column:fee_category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_category_id"`

	// Tenant
	FeeCategorySchoolID uuid.UUID `gorm:"column:fee_category_school_id;type:uuid;not null;index" json:"fee_category_school_id"`

	FeeCategoryName string          `gorm:"column:fee_category_name;type:varchar(60);not null" json:"fee_category_name"`
	FeeCategoryType FeeCategoryType `gorm:"column:fee_category_type;type:varchar(20);not null;default:'general'" json:"fee_category_type"`

	FeeCategoryDescription *string `gorm:"column:fee_category_description;type:text" json:"fee_category_description,omitempty"`

	// Timestamps
	FeeCategoryCreatedAt time.Time      `gorm:"column:fee_category_created_at;autoCreateTime" json:"fee_category_created_at"`
	FeeCategoryUpdatedAt time.Time      `gorm:"column:fee_category_updated_at;autoUpdateTime" json:"fee_category_updated_at"`
	FeeCategoryDeletedAt gorm.DeletedAt `gorm:"column:fee_category_deleted_at;index" json:"-"`
}

func (FeeCategoryModel) TableName() string { return "fee_categories" }
