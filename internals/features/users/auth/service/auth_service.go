package service

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helpers "sekolahku_backend/internals/helpers"
)

/* ==========================
   Const & Types
========================== */

const (
	accessTTLDefault = 24 * time.Hour
)

var validate = validator.New()

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	SchoolID string `json:"school_id" validate:"required,uuid"`
	Role     string `json:"role" validate:"omitempty,oneof=superuser admin school_fees_admin school_fees_level_admin donation_admin waqaf_admin student"`

	// Role student: nombor pelajar untuk tautan eksplisit ke rekod pelajar.
	StudentCode *string `json:"student_code" validate:"omitempty,max=30"`

	// Role school_fees_level_admin: level yang di-assign ("3" atau "Form 3").
	LevelAssignment *string `json:"level_assignment" validate:"omitempty,max=20"`

	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* ==========================
   Register
========================== */

// Register: user → profile → tautan pelajar dalam SATU transaksi eksplisit.
// Tidak ada hook tersembunyi — kalau student_code tidak ketemu, seluruh
// registrasi dibatalkan supaya tidak lahir akun student yatim.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	schoolID, err := uuid.Parse(req.SchoolID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "school_id tidak valid")
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = constants.RoleStudent
	}
	if role == constants.RoleSchoolFeesLevelAdmin && req.LevelAssignment == nil {
		return fiber.NewError(fiber.StatusBadRequest, "level_assignment wajib untuk level admin")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	var created userModel.UserModel
	txErr := db.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			SchoolID:        schoolID,
			UserName:        req.UserName,
			Email:           strings.ToLower(strings.TrimSpace(req.Email)),
			Password:        string(hashed),
			Role:            role,
			LevelAssignment: req.LevelAssignment,
		}
		if err := tx.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}

		profile := userModel.UserProfileModel{
			UserProfileUserID:   user.ID,
			UserProfileFullName: req.FullName,
			UserProfilePhone:    req.Phone,
		}

		// Tautan eksplisit ke rekod pelajar (role student saja)
		if role == constants.RoleStudent && req.StudentCode != nil {
			var s studentModel.StudentModel
			if err := tx.
				Where("student_school_id = ? AND student_code = ?", schoolID, *req.StudentCode).
				First(&s).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusBadRequest, "student_code tidak ditemukan di sekolah ini")
				}
				return err
			}
			profile.UserProfileStudentID = &s.StudentID
			if err := tx.Model(&studentModel.StudentModel{}).
				Where("student_id = ?", s.StudentID).
				Update("student_user_id", user.ID).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		created = user
		return nil
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Registrasi gagal")
	}

	created.Password = ""
	return helpers.JsonCreated(c, "Registrasi berhasil", created)
}

/* ==========================
   Login
========================== */

// Login: verifikasi bcrypt lalu terbitkan access token yang membawa
// school_id, role, level assignment, dan student_id (kalau terhubung).
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := db.
		Where("email = ? AND is_active = TRUE", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, exp, err := issueAccessToken(db, user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}

	user.Password = ""
	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"expires_at":   exp,
		"user":         user,
	})
}

func issueAccessToken(db *gorm.DB, user userModel.UserModel) (string, time.Time, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", time.Time{}, errors.New("JWT_SECRET belum diset")
	}

	exp := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"school_id": user.SchoolID.String(),
		"role":      user.Role,
		"exp":       exp.Unix(),
		"iat":       time.Now().Unix(),
	}
	if user.LevelAssignment != nil {
		claims["level"] = *user.LevelAssignment
	}
	if user.Role == constants.RoleStudent {
		// uuid kosong tetap dikirim kosong → VisibilityFilter menandai
		// akun belum terhubung, bukan error login
		var profile userModel.UserProfileModel
		if err := db.
			Where("user_profile_user_id = ?", user.ID).
			First(&profile).Error; err == nil && profile.UserProfileStudentID != nil {
			claims["student_id"] = profile.UserProfileStudentID.String()
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	return signed, exp, err
}

/* ==========================
   Logout
========================== */

// Logout memasukkan token aktif ke blacklist sampai kedaluwarsa alaminya.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	auth := c.Get("Authorization")
	raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	if raw == "" {
		raw = c.Cookies("access_token")
	}
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Token tidak ditemukan")
	}

	expiredAt := time.Now().Add(accessTTLDefault)
	if tok, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok {
			if v, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(v), 0)
			}
		}
	}

	entry := authModel.TokenBlacklist{Token: raw, ExpiredAt: expiredAt}
	if err := db.Create(&entry).Error; err != nil {
		// token sudah pernah di-blacklist — anggap sukses
		return helpers.JsonOK(c, "Logout berhasil", nil)
	}
	return helpers.JsonOK(c, "Logout berhasil", nil)
}
