package chatbot

import (
	"encoding/json"
	"log"
	"os"

	"sekolahku_backend/internals/features/home/chatbot/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatbotEntrySeed struct {
	SchoolID    uuid.UUID `json:"school_id"`
	Topic       string    `json:"topic"`
	Keywords    []string  `json:"keywords"`
	Answer      string    `json:"answer"`
	Suggestions []string  `json:"suggestions"`
}

func SeedChatbotEntriesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file entri chatbot:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []ChatbotEntrySeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.ChatbotEntryModel
		if err := db.
			Where("chatbot_entry_school_id = ? AND chatbot_entry_answer = ?", data.SchoolID, data.Answer).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Entri chatbot topik '%s' sudah ada, dilewati.", data.Topic)
			continue
		}

		entry := model.ChatbotEntryModel{
			ChatbotEntrySchoolID:    data.SchoolID,
			ChatbotEntryTopic:       data.Topic,
			ChatbotEntryKeywords:    data.Keywords,
			ChatbotEntryAnswer:      data.Answer,
			ChatbotEntrySuggestions: data.Suggestions,
			ChatbotEntryIsActive:    true,
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Printf("❌ Gagal insert entri chatbot topik '%s': %v", data.Topic, err)
			continue
		}
		log.Printf("✅ Entri chatbot topik '%s' berhasil dibuat.", data.Topic)
	}
}
