// file: internals/features/waqaf/waqaf/model/waqaf_contribution_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaqafContributionModel: sumbangan satu penyumbang atas satu aset waqaf.
// paid → berhak atas sijil (certificate PDF).
type WaqafContributionModel struct {
	WaqafContributionID uuid.UUID `gorm:"column:waqaf_contribution_id;type:uuid;default:gen_random_uuid();primaryKey" json:"waqaf_contribution_id"`

	WaqafContributionSchoolID uuid.UUID `gorm:"column:waqaf_contribution_school_id;type:uuid;not null;index" json:"waqaf_contribution_school_id"`
	WaqafContributionAssetID  uuid.UUID `gorm:"column:waqaf_contribution_asset_id;type:uuid;not null;index" json:"waqaf_contribution_asset_id"`

	WaqafContributionUserID *uuid.UUID `gorm:"column:waqaf_contribution_user_id;type:uuid" json:"waqaf_contribution_user_id,omitempty"`

	WaqafContributionName      string `gorm:"column:waqaf_contribution_name;type:varchar(50);not null" json:"waqaf_contribution_name"`
	WaqafContributionAmountSen int64  `gorm:"column:waqaf_contribution_amount_sen;not null;check:waqaf_contribution_amount_sen>0" json:"waqaf_contribution_amount_sen"`

	WaqafContributionStatus  string `gorm:"column:waqaf_contribution_status;type:varchar(20);default:'pending'" json:"waqaf_contribution_status"`
	WaqafContributionOrderID string `gorm:"column:waqaf_contribution_order_id;type:varchar(100);not null;unique" json:"waqaf_contribution_order_id"`

	WaqafContributionSnapToken string     `gorm:"column:waqaf_contribution_snap_token;type:text" json:"waqaf_contribution_snap_token"`
	WaqafContributionPaidAt    *time.Time `gorm:"column:waqaf_contribution_paid_at" json:"waqaf_contribution_paid_at,omitempty"`

	WaqafContributionCreatedAt time.Time      `gorm:"column:waqaf_contribution_created_at;autoCreateTime" json:"waqaf_contribution_created_at"`
	WaqafContributionUpdatedAt time.Time      `gorm:"column:waqaf_contribution_updated_at;autoUpdateTime" json:"waqaf_contribution_updated_at"`
	WaqafContributionDeletedAt gorm.DeletedAt `gorm:"column:waqaf_contribution_deleted_at;index" json:"-"`

	Asset *WaqafAssetModel `gorm:"foreignKey:WaqafContributionAssetID;references:WaqafAssetID" json:"asset,omitempty"`
}

func (WaqafContributionModel) TableName() string { return "waqaf_contributions" }
