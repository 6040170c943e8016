// file: internals/features/waqaf/waqaf/model/waqaf_asset_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM waqaf_asset_status -------------------------------------------------
type WaqafAssetStatus string

const (
	WaqafAssetStatusOpen      WaqafAssetStatus = "open"      // masih menerima sumbangan
	WaqafAssetStatusFulfilled WaqafAssetStatus = "fulfilled" // target tercapai
	WaqafAssetStatusClosed    WaqafAssetStatus = "closed"
)

// WaqafAssetModel: satu aset/projek waqaf sekolah dengan target dana.
type WaqafAssetModel struct {
	WaqafAssetID uuid.UUID `gorm:"column:waqaf_asset_id;type:uuid;default:gen_random_uuid();primaryKey" json:"waqaf_asset_id"`

	WaqafAssetSchoolID uuid.UUID `gorm:"column:waqaf_asset_school_id;type:uuid;not null;index" json:"waqaf_asset_school_id"`

	WaqafAssetName        string  `gorm:"column:waqaf_asset_name;type:varchar(100);not null" json:"waqaf_asset_name"`
	WaqafAssetDescription *string `gorm:"column:waqaf_asset_description;type:text" json:"waqaf_asset_description,omitempty"`

	WaqafAssetTargetSen    int64 `gorm:"column:waqaf_asset_target_sen;not null;check:waqaf_asset_target_sen>0" json:"waqaf_asset_target_sen"`
	WaqafAssetCollectedSen int64 `gorm:"column:waqaf_asset_collected_sen;not null;default:0" json:"waqaf_asset_collected_sen"`

	WaqafAssetStatus WaqafAssetStatus `gorm:"column:waqaf_asset_status;type:varchar(20);not null;default:'open'" json:"waqaf_asset_status"`

	WaqafAssetCreatedAt time.Time      `gorm:"column:waqaf_asset_created_at;autoCreateTime" json:"waqaf_asset_created_at"`
	WaqafAssetUpdatedAt time.Time      `gorm:"column:waqaf_asset_updated_at;autoUpdateTime" json:"waqaf_asset_updated_at"`
	WaqafAssetDeletedAt gorm.DeletedAt `gorm:"column:waqaf_asset_deleted_at;index" json:"-"`
}

func (WaqafAssetModel) TableName() string { return "waqaf_assets" }
