// file: internals/features/users/activity_logs/model/activity_log_model.go
package model

import (
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLogModel: jejak mutasi finansial (siapa, aksi apa, entitas mana).
// Append-only — tidak ada update/delete.
type ActivityLogModel struct {
	ActivityLogID uuid.UUID `gorm:"column:activity_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_log_id"`

	ActivityLogSchoolID uuid.UUID `gorm:"column:activity_log_school_id;type:uuid;not null;index" json:"activity_log_school_id"`
	ActivityLogUserID   uuid.UUID `gorm:"column:activity_log_user_id;type:uuid;not null;index" json:"activity_log_user_id"`

	ActivityLogAction     string         `gorm:"column:activity_log_action;type:varchar(64);not null;index" json:"activity_log_action"`
	ActivityLogEntityType string         `gorm:"column:activity_log_entity_type;type:varchar(64);not null" json:"activity_log_entity_type"`
	ActivityLogEntityID   uuid.UUID      `gorm:"column:activity_log_entity_id;type:uuid;not null;index" json:"activity_log_entity_id"`
	ActivityLogMetadata   datatypes.JSON `gorm:"column:activity_log_metadata;type:jsonb" json:"activity_log_metadata,omitempty"`

	ActivityLogCreatedAt time.Time `gorm:"column:activity_log_created_at;autoCreateTime" json:"activity_log_created_at"`
}

func (ActivityLogModel) TableName() string { return "activity_logs" }

// Record menulis satu baris log. Best-effort: kegagalan log tidak boleh
// menggagalkan mutasi utamanya.
func Record(db *gorm.DB, schoolID, userID uuid.UUID, action, entityType string, entityID uuid.UUID, metadata map[string]interface{}) {
	var meta datatypes.JSON
	if metadata != nil {
		if b, err := sonic.Marshal(metadata); err == nil {
			meta = datatypes.JSON(b)
		}
	}
	row := ActivityLogModel{
		ActivityLogSchoolID:   schoolID,
		ActivityLogUserID:     userID,
		ActivityLogAction:     action,
		ActivityLogEntityType: entityType,
		ActivityLogEntityID:   entityID,
		ActivityLogMetadata:   meta,
	}
	if err := db.Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal menulis activity log:", err)
	}
}
