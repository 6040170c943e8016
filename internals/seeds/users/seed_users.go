package users

import (
	"encoding/json"
	"log"
	"os"

	"sekolahku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserSeed struct {
	SchoolID        uuid.UUID `json:"school_id"`
	UserName        string    `json:"user_name"`
	Email           string    `json:"email"`
	Password        string    `json:"password"`
	Role            string    `json:"role"`
	LevelAssignment *string   `json:"level_assignment"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		user := model.UserModel{
			SchoolID:        data.SchoolID,
			UserName:        data.UserName,
			Email:           data.Email,
			Password:        string(hashed),
			Role:            data.Role,
			LevelAssignment: data.LevelAssignment,
			IsActive:        true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ User '%s' (%s) berhasil dibuat.", data.Email, data.Role)
	}
}
