package dto

import "github.com/google/uuid"

type CreateDonationRequest struct {
	SchoolID  uuid.UUID `json:"school_id" validate:"required"`
	Name      string    `json:"name" validate:"required,min=2,max=50"`
	Email     string    `json:"email" validate:"required,email"`
	AmountSen int64     `json:"amount_sen" validate:"required,gt=0"`
	Message   string    `json:"message" validate:"omitempty,max=500"`
}
