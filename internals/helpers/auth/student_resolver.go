// file: internals/helpers/auth/student_resolver.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "sekolahku_backend/internals/helpers"
)

// GetStudentIDFromDB mencari rekod pelajar milik user pada satu sekolah.
// uuid.Nil tanpa error = user ini memang belum terhubung ke pelajar manapun
// (pembeda "belum terhubung" vs "error query" penting untuk ErrNoStudentRecord).
func GetStudentIDFromDB(c *fiber.Ctx, db *gorm.DB, schoolID uuid.UUID) (uuid.UUID, error) {
	if db == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "DB context tidak tersedia")
	}
	if schoolID == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "school_id wajib")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan pada token")
	}

	var sidStr string
	if err := db.WithContext(c.Context()).
		Table("students").
		Where("student_school_id = ?", schoolID).
		Where("student_user_id = ?", userID).
		Where("student_deleted_at IS NULL").
		Limit(1).
		Pluck("student_id", &sidStr).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil students: "+err.Error())
	}

	sidStr = strings.TrimSpace(sidStr)
	if sidStr == "" {
		return uuid.Nil, nil
	}

	sid, perr := uuid.Parse(sidStr)
	if perr != nil {
		// data di DB korup → mending 500 biar ketahuan
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "student_id invalid di database")
	}
	return sid, nil
}

// GetStudentIDSmart: coba dari token dulu, fallback ke DB.
func GetStudentIDSmart(c *fiber.Ctx, db *gorm.DB, schoolID uuid.UUID) (uuid.UUID, error) {
	if sid := helper.GetStudentIDFromToken(c); sid != uuid.Nil {
		return sid, nil
	}
	return GetStudentIDFromDB(c, db, schoolID)
}
