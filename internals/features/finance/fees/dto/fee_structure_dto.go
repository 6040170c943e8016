// file: internals/features/finance/fees/dto/fee_structure_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/finance/fees/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

/* =============== REQUESTS =============== */

type CreateFeeStructureRequest struct {
	FeeStructureCategoryID uuid.UUID `json:"fee_structure_category_id" validate:"required"`

	// Level menerima kedua format historis ("3" atau "Form 3")
	FeeStructureLevel string `json:"fee_structure_level" validate:"required"`

	FeeStructureTitle     string `json:"fee_structure_title" validate:"required,min=3,max=100"`
	FeeStructureAmountSen int64  `json:"fee_structure_amount_sen" validate:"required,gte=0"`
	FeeStructureFrequency string `json:"fee_structure_frequency" validate:"omitempty,oneof=monthly termly annually once"`

	FeeStructureDueDate *time.Time `json:"fee_structure_due_date" validate:"omitempty"`
	FeeStructureNote    *string    `json:"fee_structure_note" validate:"omitempty"`
}

// ToModel menormalkan level di tepi ingest; level tak terparse → (nil, false).
func (r CreateFeeStructureRequest) ToModel(schoolID uuid.UUID) (*m.FeeStructureModel, bool) {
	lv, ok := studentModel.ParseLevel(r.FeeStructureLevel)
	if !ok {
		return nil, false
	}
	freq := m.FeeFrequencyMonthly
	if r.FeeStructureFrequency != "" {
		freq = m.FeeFrequency(r.FeeStructureFrequency)
	}
	return &m.FeeStructureModel{
		FeeStructureSchoolID:   schoolID,
		FeeStructureCategoryID: r.FeeStructureCategoryID,
		FeeStructureLevel:      lv,
		FeeStructureTitle:      r.FeeStructureTitle,
		FeeStructureAmountSen:  r.FeeStructureAmountSen,
		FeeStructureFrequency:  freq,
		FeeStructureDueDate:    r.FeeStructureDueDate,
		FeeStructureNote:       r.FeeStructureNote,
	}, true
}

type UpdateFeeStructureRequest struct {
	FeeStructureTitle     *string    `json:"fee_structure_title" validate:"omitempty,min=3,max=100"`
	FeeStructureAmountSen *int64     `json:"fee_structure_amount_sen" validate:"omitempty,gte=0"`
	FeeStructureFrequency *string    `json:"fee_structure_frequency" validate:"omitempty,oneof=monthly termly annually once"`
	FeeStructureDueDate   *time.Time `json:"fee_structure_due_date" validate:"omitempty"`
	FeeStructureNote      *string    `json:"fee_structure_note" validate:"omitempty"`
}

func (r UpdateFeeStructureRequest) ApplyTo(mo *m.FeeStructureModel) {
	if r.FeeStructureTitle != nil {
		mo.FeeStructureTitle = *r.FeeStructureTitle
	}
	if r.FeeStructureAmountSen != nil {
		mo.FeeStructureAmountSen = *r.FeeStructureAmountSen
	}
	if r.FeeStructureFrequency != nil {
		mo.FeeStructureFrequency = m.FeeFrequency(*r.FeeStructureFrequency)
	}
	if r.FeeStructureDueDate != nil {
		mo.FeeStructureDueDate = r.FeeStructureDueDate
	}
	if r.FeeStructureNote != nil {
		mo.FeeStructureNote = r.FeeStructureNote
	}
}

/* =============== QUERY =============== */

type ListFeeStructureQuery struct {
	CategoryID *uuid.UUID `query:"category_id" validate:"omitempty"`
	Level      *string    `query:"level" validate:"omitempty"`
	Q          *string    `query:"q" validate:"omitempty"`
}
