package fees

import (
	"encoding/json"
	"log"
	"os"

	"sekolahku_backend/internals/features/finance/fees/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeeCategorySeed struct {
	SchoolID    uuid.UUID `json:"school_id"`
	Name        string    `json:"fee_category_name"`
	Type        string    `json:"fee_category_type"`
	Description *string   `json:"fee_category_description"`
}

func SeedFeeCategoriesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file kategori yuran:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []FeeCategorySeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.FeeCategoryModel
		if err := db.
			Where("fee_category_school_id = ? AND fee_category_name = ?", data.SchoolID, data.Name).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Kategori '%s' sudah ada, dilewati.", data.Name)
			continue
		}

		category := model.FeeCategoryModel{
			FeeCategorySchoolID:    data.SchoolID,
			FeeCategoryName:        data.Name,
			FeeCategoryType:        model.FeeCategoryType(data.Type),
			FeeCategoryDescription: data.Description,
		}
		if err := db.Create(&category).Error; err != nil {
			log.Printf("❌ Gagal insert kategori '%s': %v", data.Name, err)
			continue
		}
		log.Printf("✅ Kategori '%s' berhasil dibuat.", data.Name)
	}
}
