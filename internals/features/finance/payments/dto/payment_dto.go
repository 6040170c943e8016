// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	ObligationID uuid.UUID `json:"obligation_id" validate:"required"`
}

type CheckoutResponse struct {
	PaymentID        uuid.UUID `json:"payment_id"`
	PaymentOrderID   string    `json:"payment_order_id"`
	PaymentAmountSen int64     `json:"payment_amount_sen"`
	SnapToken        string    `json:"snap_token"`
}

// RecordCashRequest: admin mencatat pembayaran tunai/transfer manual.
type RecordCashRequest struct {
	ObligationID uuid.UUID `json:"obligation_id" validate:"required"`
	AmountSen    int64     `json:"amount_sen" validate:"required,gte=0"`
	Method       string    `json:"method" validate:"required,oneof=cash transfer"`
}

type ListPaymentQuery struct {
	StudentID *uuid.UUID `query:"student_id" validate:"omitempty"`
	Status    *string    `query:"status" validate:"omitempty,oneof=pending completed failed"`
	PaidFrom  *time.Time `query:"paid_from" validate:"omitempty"`
	PaidTo    *time.Time `query:"paid_to" validate:"omitempty"`
}
