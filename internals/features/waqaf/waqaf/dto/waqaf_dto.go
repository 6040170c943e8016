// file: internals/features/waqaf/waqaf/dto/waqaf_dto.go
package dto

import (
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/waqaf/waqaf/model"
)

type CreateWaqafAssetRequest struct {
	WaqafAssetName        string  `json:"waqaf_asset_name" validate:"required,min=3,max=100"`
	WaqafAssetDescription *string `json:"waqaf_asset_description" validate:"omitempty,max=2000"`
	WaqafAssetTargetSen   int64   `json:"waqaf_asset_target_sen" validate:"required,gt=0"`
}

func (r CreateWaqafAssetRequest) ToModel(schoolID uuid.UUID) *m.WaqafAssetModel {
	return &m.WaqafAssetModel{
		WaqafAssetSchoolID:    schoolID,
		WaqafAssetName:        r.WaqafAssetName,
		WaqafAssetDescription: r.WaqafAssetDescription,
		WaqafAssetTargetSen:   r.WaqafAssetTargetSen,
		WaqafAssetStatus:      m.WaqafAssetStatusOpen,
	}
}

type UpdateWaqafAssetRequest struct {
	WaqafAssetName        *string `json:"waqaf_asset_name" validate:"omitempty,min=3,max=100"`
	WaqafAssetDescription *string `json:"waqaf_asset_description" validate:"omitempty,max=2000"`
	WaqafAssetTargetSen   *int64  `json:"waqaf_asset_target_sen" validate:"omitempty,gt=0"`
	WaqafAssetStatus      *string `json:"waqaf_asset_status" validate:"omitempty,oneof=open fulfilled closed"`
}

func (r UpdateWaqafAssetRequest) ApplyTo(mo *m.WaqafAssetModel) {
	if r.WaqafAssetName != nil {
		mo.WaqafAssetName = *r.WaqafAssetName
	}
	if r.WaqafAssetDescription != nil {
		mo.WaqafAssetDescription = r.WaqafAssetDescription
	}
	if r.WaqafAssetTargetSen != nil {
		mo.WaqafAssetTargetSen = *r.WaqafAssetTargetSen
	}
	if r.WaqafAssetStatus != nil {
		mo.WaqafAssetStatus = m.WaqafAssetStatus(*r.WaqafAssetStatus)
	}
}

type ContributeRequest struct {
	SchoolID  uuid.UUID `json:"school_id" validate:"required"`
	AssetID   uuid.UUID `json:"asset_id" validate:"required"`
	Name      string    `json:"name" validate:"required,min=2,max=50"`
	Email     string    `json:"email" validate:"required,email"`
	AmountSen int64     `json:"amount_sen" validate:"required,gt=0"`
}
