// file: internals/features/finance/fees/dto/individual_fee_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/finance/fees/model"
)

type CreateIndividualFeeRequest struct {
	IndividualFeeStudentID  uuid.UUID  `json:"individual_fee_student_id" validate:"required"`
	IndividualFeeCategoryID *uuid.UUID `json:"individual_fee_category_id" validate:"omitempty"`
	IndividualFeeTitle      string     `json:"individual_fee_title" validate:"required,min=3,max=100"`
	IndividualFeeAmountSen  int64      `json:"individual_fee_amount_sen" validate:"required,gte=0"`
	IndividualFeeDueDate    *time.Time `json:"individual_fee_due_date" validate:"omitempty"`
}

func (r CreateIndividualFeeRequest) ToModel(schoolID uuid.UUID) *m.IndividualStudentFeeModel {
	return &m.IndividualStudentFeeModel{
		IndividualFeeSchoolID:   schoolID,
		IndividualFeeStudentID:  r.IndividualFeeStudentID,
		IndividualFeeCategoryID: r.IndividualFeeCategoryID,
		IndividualFeeTitle:      r.IndividualFeeTitle,
		IndividualFeeAmountSen:  r.IndividualFeeAmountSen,
		IndividualFeeDueDate:    r.IndividualFeeDueDate,
	}
}

type UpdateIndividualFeeRequest struct {
	IndividualFeeTitle     *string    `json:"individual_fee_title" validate:"omitempty,min=3,max=100"`
	IndividualFeeAmountSen *int64     `json:"individual_fee_amount_sen" validate:"omitempty,gte=0"`
	IndividualFeeDueDate   *time.Time `json:"individual_fee_due_date" validate:"omitempty"`
}

func (r UpdateIndividualFeeRequest) ApplyTo(mo *m.IndividualStudentFeeModel) {
	if r.IndividualFeeTitle != nil {
		mo.IndividualFeeTitle = *r.IndividualFeeTitle
	}
	if r.IndividualFeeAmountSen != nil {
		mo.IndividualFeeAmountSen = *r.IndividualFeeAmountSen
	}
	if r.IndividualFeeDueDate != nil {
		mo.IndividualFeeDueDate = r.IndividualFeeDueDate
	}
}
