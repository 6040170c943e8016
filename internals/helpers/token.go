// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Nama-nama Locals yang diisi oleh middleware JWT. HARUS seragam.
const (
	LocUserID    = "user_id"
	LocSchoolID  = "school_id"
	LocRole      = "role"
	LocLevel     = "level"      // khusus school_fees_level_admin (string mentah dari provisioning)
	LocStudentID = "student_id" // khusus role student (boleh kosong → profil belum terhubung)
)

func localsUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v, ok := c.Locals(key).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ditemukan pada token")
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" pada token tidak valid")
	}
	return id, nil
}

// GetUserIDFromToken mengambil user_id hasil verifikasi JWT.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, LocUserID)
}

// GetSchoolIDFromToken mengambil tenant (school_id) dari token.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, LocSchoolID)
}

// GetRoleFromToken mengambil role flat ("student", "admin", dst).
// Role kosong dianggap unauthenticated → caller dapat string kosong.
func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return ""
}

// GetLevelFromToken mengambil level yang di-assign ke level admin
// (format historis bisa "3" atau "Form 3" — normalisasi di VisibilityFilter).
func GetLevelFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocLevel).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// GetStudentIDFromToken mengambil student_id untuk role student.
// uuid.Nil = token valid tapi tidak ada record pelajar yang terhubung.
func GetStudentIDFromToken(c *fiber.Ctx) uuid.UUID {
	v, ok := c.Locals(LocStudentID).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil
	}
	return id
}
