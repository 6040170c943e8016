// file: internals/features/finance/fees/dto/fee_obligation_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/finance/fees/model"
	service "sekolahku_backend/internals/features/finance/fees/service"
)

/* =============== REQUESTS =============== */

// Create manual oleh admin (di luar batch generate)
type CreateFeeObligationRequest struct {
	FeeObligationStudentID   uuid.UUID  `json:"fee_obligation_student_id" validate:"required"`
	FeeObligationStructureID uuid.UUID  `json:"fee_obligation_structure_id" validate:"required"`
	FeeObligationAmountSen   *int64     `json:"fee_obligation_amount_sen" validate:"omitempty,gte=0"` // default: nominal struktur
	FeeObligationDueDate     *time.Time `json:"fee_obligation_due_date" validate:"omitempty"`
	FeeObligationNote        *string    `json:"fee_obligation_note" validate:"omitempty"`
}

type UpdateFeeObligationRequest struct {
	FeeObligationAmountSen *int64     `json:"fee_obligation_amount_sen" validate:"omitempty,gte=0"`
	FeeObligationDueDate   *time.Time `json:"fee_obligation_due_date" validate:"omitempty"`
	FeeObligationNote      *string    `json:"fee_obligation_note" validate:"omitempty"`
}

func (r UpdateFeeObligationRequest) ApplyTo(mo *m.FeeObligationModel) {
	if r.FeeObligationAmountSen != nil {
		mo.FeeObligationAmountSen = *r.FeeObligationAmountSen
	}
	if r.FeeObligationDueDate != nil {
		mo.FeeObligationDueDate = r.FeeObligationDueDate
	}
	if r.FeeObligationNote != nil {
		mo.FeeObligationNote = r.FeeObligationNote
	}
}

/* =============== QUERY =============== */

type ListFeeObligationQuery struct {
	StudentID   *uuid.UUID `query:"student_id" validate:"omitempty"`
	StructureID *uuid.UUID `query:"structure_id" validate:"omitempty"`
	Status      *string    `query:"status" validate:"omitempty,oneof=pending overdue paid"`
	DueFrom     *time.Time `query:"due_from" validate:"omitempty"`
	DueTo       *time.Time `query:"due_to" validate:"omitempty"`
}

/* =============== RESPONSES =============== */

// FeeObligationResponse: baris obligation + hasil DiscountResolver.
// Status yang dikirim adalah EffectiveStatus (pending lewat due → overdue).
type FeeObligationResponse struct {
	FeeObligationID        uuid.UUID  `json:"fee_obligation_id"`
	FeeObligationStudentID uuid.UUID  `json:"fee_obligation_student_id"`
	FeeObligationStructureID uuid.UUID `json:"fee_obligation_structure_id"`
	FeeObligationDueDate   *time.Time `json:"fee_obligation_due_date,omitempty"`
	FeeObligationStatus    string     `json:"fee_obligation_status"`
	FeeObligationPaidAt    *time.Time `json:"fee_obligation_paid_at,omitempty"`

	OriginalSen int64                   `json:"original_sen"`
	DiscountSen int64                   `json:"discount_sen"`
	FinalSen    int64                   `json:"final_sen"`
	Applied     []service.AppliedWaiver `json:"applied_waivers"`
}

func FromObligationWithResolution(ob m.FeeObligationModel, res service.FeeResolution, at time.Time) FeeObligationResponse {
	return FeeObligationResponse{
		FeeObligationID:          ob.FeeObligationID,
		FeeObligationStudentID:   ob.FeeObligationStudentID,
		FeeObligationStructureID: ob.FeeObligationStructureID,
		FeeObligationDueDate:     ob.FeeObligationDueDate,
		FeeObligationStatus:      string(ob.EffectiveStatus(at)),
		FeeObligationPaidAt:      ob.FeeObligationPaidAt,
		OriginalSen:              res.OriginalSen,
		DiscountSen:              res.DiscountSen,
		FinalSen:                 res.FinalSen,
		Applied:                  res.Applied,
	}
}
