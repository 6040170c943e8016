// file: internals/features/finance/fees/model/fee_structure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "sekolahku_backend/internals/features/school/students/model"
)

// --- ENUM fee_frequency ------------------------------------------------------
type FeeFrequency string

const (
	FeeFrequencyMonthly  FeeFrequency = "monthly"
	FeeFrequencyTermly   FeeFrequency = "termly"
	FeeFrequencyAnnually FeeFrequency = "annually"
	FeeFrequencyOnce     FeeFrequency = "once"
)

// FeeStructureModel: definisi yuran satu level — semua pelajar aktif di level
// yang sama melihat nominal yang sama untuk struktur yang sama.
type FeeStructureModel struct {
	// PK
	FeeStructureID uuid.UUID `gorm:"column:fee_structure_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_structure_id"`

	// Tenant
	FeeStructureSchoolID uuid.UUID `gorm:"column:fee_structure_school_id;type:uuid;not null;index:idx_fee_structures_school_level,priority:1" json:"fee_structure_school_id"`

	// FK → fee_categories
	FeeStructureCategoryID uuid.UUID `gorm:"column:fee_structure_category_id;type:uuid;not null;index" json:"fee_structure_category_id"`

	// Level ternormalisasi (lihat students/model/level.go)
	FeeStructureLevel studentModel.Level `gorm:"column:fee_structure_level;type:smallint;not null;index:idx_fee_structures_school_level,priority:2" json:"fee_structure_level"`

	FeeStructureTitle     string       `gorm:"column:fee_structure_title;type:varchar(100);not null" json:"fee_structure_title"`
	FeeStructureAmountSen int64        `gorm:"column:fee_structure_amount_sen;not null;check:fee_structure_amount_sen>=0" json:"fee_structure_amount_sen"`
	FeeStructureFrequency FeeFrequency `gorm:"column:fee_structure_frequency;type:varchar(20);not null;default:'monthly'" json:"fee_structure_frequency"`

	FeeStructureDueDate *time.Time `gorm:"column:fee_structure_due_date;type:date" json:"fee_structure_due_date,omitempty"`
	FeeStructureNote    *string    `gorm:"column:fee_structure_note;type:text" json:"fee_structure_note,omitempty"`

	// Timestamps
	FeeStructureCreatedAt time.Time      `gorm:"column:fee_structure_created_at;autoCreateTime" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time      `gorm:"column:fee_structure_updated_at;autoUpdateTime" json:"fee_structure_updated_at"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;index" json:"-"`

	// Relations
	Category *FeeCategoryModel `gorm:"foreignKey:FeeStructureCategoryID;references:FeeCategoryID" json:"category,omitempty"`
}

func (FeeStructureModel) TableName() string { return "fee_structures" }
