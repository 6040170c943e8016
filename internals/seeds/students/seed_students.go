package students

import (
	"encoding/json"
	"log"
	"os"

	"sekolahku_backend/internals/features/school/students/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentSeed struct {
	SchoolID uuid.UUID `json:"school_id"`
	Code     string    `json:"student_code"`
	Name     string    `json:"student_name"`
	NRIC     string    `json:"student_nric"`
	// Level sengaja ditulis dalam dua format ("3" dan "Form 3") —
	// normalisasi terjadi di hook BeforeCreate.
	LevelRaw string `json:"student_level_raw"`
}

func SeedStudentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file pelajar:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []StudentSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.StudentModel
		if err := db.
			Where("student_school_id = ? AND student_code = ?", data.SchoolID, data.Code).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Pelajar '%s' sudah ada, dilewati.", data.Code)
			continue
		}

		student := model.StudentModel{
			StudentSchoolID: data.SchoolID,
			StudentCode:     data.Code,
			StudentName:     data.Name,
			StudentNRIC:     data.NRIC,
			StudentLevelRaw: data.LevelRaw,
			StudentIsActive: true,
		}
		if err := db.Create(&student).Error; err != nil {
			log.Printf("❌ Gagal insert pelajar '%s': %v", data.Code, err)
			continue
		}
		log.Printf("✅ Pelajar '%s' (%s) berhasil dibuat.", data.Code, data.LevelRaw)
	}
}
