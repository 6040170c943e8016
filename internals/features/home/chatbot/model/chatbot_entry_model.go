// file: internals/features/home/chatbot/model/chatbot_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ChatbotEntryModel: satu jawaban chatbot berbasis kata kunci. Tabel ini
// adalah DATA — menambah jawaban tidak perlu menyentuh kode provider.
type ChatbotEntryModel struct {
	ChatbotEntryID uuid.UUID `gorm:"column:chatbot_entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"chatbot_entry_id"`

	ChatbotEntrySchoolID uuid.UUID `gorm:"column:chatbot_entry_school_id;type:uuid;not null;index" json:"chatbot_entry_school_id"`

	// Topik untuk provider sadar-sesi ("fees", "donation", "waqaf", ...)
	ChatbotEntryTopic string `gorm:"column:chatbot_entry_topic;type:varchar(50);not null;index" json:"chatbot_entry_topic"`

	ChatbotEntryKeywords    pq.StringArray `gorm:"column:chatbot_entry_keywords;type:text[];not null" json:"chatbot_entry_keywords"`
	ChatbotEntryAnswer      string         `gorm:"column:chatbot_entry_answer;type:text;not null" json:"chatbot_entry_answer"`
	ChatbotEntrySuggestions pq.StringArray `gorm:"column:chatbot_entry_suggestions;type:text[]" json:"chatbot_entry_suggestions"`

	ChatbotEntryIsActive bool `gorm:"column:chatbot_entry_is_active;not null;default:true" json:"chatbot_entry_is_active"`

	ChatbotEntryCreatedAt time.Time      `gorm:"column:chatbot_entry_created_at;autoCreateTime" json:"chatbot_entry_created_at"`
	ChatbotEntryUpdatedAt time.Time      `gorm:"column:chatbot_entry_updated_at;autoUpdateTime" json:"chatbot_entry_updated_at"`
	ChatbotEntryDeletedAt gorm.DeletedAt `gorm:"column:chatbot_entry_deleted_at;index" json:"-"`
}

func (ChatbotEntryModel) TableName() string { return "chatbot_entries" }
