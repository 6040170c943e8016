// file: internals/features/finance/fees/dto/fee_category_dto.go
package dto

import (
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/finance/fees/model"
)

/* =============== REQUESTS =============== */

type CreateFeeCategoryRequest struct {
	FeeCategoryName        string  `json:"fee_category_name" validate:"required,min=2,max=60"`
	FeeCategoryType        string  `json:"fee_category_type" validate:"omitempty,oneof=general individual"`
	FeeCategoryDescription *string `json:"fee_category_description" validate:"omitempty"`
}

func (r CreateFeeCategoryRequest) ToModel(schoolID uuid.UUID) *m.FeeCategoryModel {
	t := m.FeeCategoryTypeGeneral
	if r.FeeCategoryType != "" {
		t = m.FeeCategoryType(r.FeeCategoryType)
	}
	return &m.FeeCategoryModel{
		FeeCategorySchoolID:    schoolID,
		FeeCategoryName:        r.FeeCategoryName,
		FeeCategoryType:        t,
		FeeCategoryDescription: r.FeeCategoryDescription,
	}
}

type UpdateFeeCategoryRequest struct {
	FeeCategoryName        *string `json:"fee_category_name" validate:"omitempty,min=2,max=60"`
	FeeCategoryType        *string `json:"fee_category_type" validate:"omitempty,oneof=general individual"`
	FeeCategoryDescription *string `json:"fee_category_description" validate:"omitempty"`
}

func (r UpdateFeeCategoryRequest) ApplyTo(mo *m.FeeCategoryModel) {
	if r.FeeCategoryName != nil {
		mo.FeeCategoryName = *r.FeeCategoryName
	}
	if r.FeeCategoryType != nil {
		mo.FeeCategoryType = m.FeeCategoryType(*r.FeeCategoryType)
	}
	if r.FeeCategoryDescription != nil {
		mo.FeeCategoryDescription = r.FeeCategoryDescription
	}
}
