// file: internals/features/finance/fees/dto/fee_waiver_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/finance/fees/model"
)

/* =============== REQUESTS =============== */

type CreateFeeWaiverRequest struct {
	FeeWaiverStudentID  uuid.UUID `json:"fee_waiver_student_id" validate:"required"`
	FeeWaiverCategoryID uuid.UUID `json:"fee_waiver_category_id" validate:"required"`

	FeeWaiverType string `json:"fee_waiver_type" validate:"required,oneof=scholarship discount waiver"`

	// Salah satu: percentage ATAU amount_sen
	FeeWaiverPercentage *float64 `json:"fee_waiver_percentage" validate:"omitempty,gte=0,lte=100"`
	FeeWaiverAmountSen  int64    `json:"fee_waiver_amount_sen" validate:"omitempty,gte=0"`

	FeeWaiverStartDate time.Time `json:"fee_waiver_start_date" validate:"required"`
	FeeWaiverEndDate   time.Time `json:"fee_waiver_end_date" validate:"required,gtefield=FeeWaiverStartDate"`

	FeeWaiverReason *string `json:"fee_waiver_reason" validate:"omitempty"`
}

func (r CreateFeeWaiverRequest) ToModel(schoolID uuid.UUID) *m.FeeWaiverModel {
	sid, cid := r.FeeWaiverStudentID, r.FeeWaiverCategoryID
	return &m.FeeWaiverModel{
		FeeWaiverSchoolID:   schoolID,
		FeeWaiverStudentID:  &sid,
		FeeWaiverCategoryID: &cid,
		FeeWaiverType:       m.FeeWaiverType(r.FeeWaiverType),
		FeeWaiverPercentage: r.FeeWaiverPercentage,
		FeeWaiverAmountSen:  r.FeeWaiverAmountSen,
		FeeWaiverStartDate:  r.FeeWaiverStartDate,
		FeeWaiverEndDate:    r.FeeWaiverEndDate,
		FeeWaiverStatus:     m.FeeWaiverStatusPending,
		FeeWaiverReason:     r.FeeWaiverReason,
	}
}

type UpdateFeeWaiverRequest struct {
	FeeWaiverType       *string    `json:"fee_waiver_type" validate:"omitempty,oneof=scholarship discount waiver"`
	FeeWaiverPercentage *float64   `json:"fee_waiver_percentage" validate:"omitempty,gte=0,lte=100"`
	FeeWaiverAmountSen  *int64     `json:"fee_waiver_amount_sen" validate:"omitempty,gte=0"`
	FeeWaiverStartDate  *time.Time `json:"fee_waiver_start_date" validate:"omitempty"`
	FeeWaiverEndDate    *time.Time `json:"fee_waiver_end_date" validate:"omitempty"`
	FeeWaiverReason     *string    `json:"fee_waiver_reason" validate:"omitempty"`
}

func (r UpdateFeeWaiverRequest) ApplyTo(mo *m.FeeWaiverModel) {
	if r.FeeWaiverType != nil {
		mo.FeeWaiverType = m.FeeWaiverType(*r.FeeWaiverType)
	}
	if r.FeeWaiverPercentage != nil {
		mo.FeeWaiverPercentage = r.FeeWaiverPercentage
	}
	if r.FeeWaiverAmountSen != nil {
		mo.FeeWaiverAmountSen = *r.FeeWaiverAmountSen
	}
	if r.FeeWaiverStartDate != nil {
		mo.FeeWaiverStartDate = *r.FeeWaiverStartDate
	}
	if r.FeeWaiverEndDate != nil {
		mo.FeeWaiverEndDate = *r.FeeWaiverEndDate
	}
	if r.FeeWaiverReason != nil {
		mo.FeeWaiverReason = r.FeeWaiverReason
	}
}

/* =============== QUERY =============== */

type ListFeeWaiverQuery struct {
	StudentID  *uuid.UUID `query:"student_id" validate:"omitempty"`
	CategoryID *uuid.UUID `query:"category_id" validate:"omitempty"`
	Status     *string    `query:"status" validate:"omitempty,oneof=pending approved rejected expired"`
}
