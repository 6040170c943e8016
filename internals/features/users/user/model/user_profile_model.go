package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfileModel: data pelengkap user + tautan eksplisit ke rekod pelajar.
// Tautan dibuat di dalam transaksi registrasi, TIDAK ada hook implisit.
type UserProfileModel struct {
	UserProfileID     uuid.UUID  `gorm:"column:user_profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_profile_id"`
	UserProfileUserID uuid.UUID  `gorm:"column:user_profile_user_id;type:uuid;not null;uniqueIndex" json:"user_profile_user_id"`

	// uuid kosong = user bukan pelajar / belum terhubung
	UserProfileStudentID *uuid.UUID `gorm:"column:user_profile_student_id;type:uuid;index" json:"user_profile_student_id,omitempty"`

	UserProfileFullName *string `gorm:"column:user_profile_full_name;size:100" json:"user_profile_full_name,omitempty"`
	UserProfilePhone    *string `gorm:"column:user_profile_phone;size:20" json:"user_profile_phone,omitempty"`

	UserProfileCreatedAt time.Time      `gorm:"column:user_profile_created_at;autoCreateTime" json:"user_profile_created_at"`
	UserProfileUpdatedAt time.Time      `gorm:"column:user_profile_updated_at;autoUpdateTime" json:"user_profile_updated_at"`
	UserProfileDeletedAt gorm.DeletedAt `gorm:"column:user_profile_deleted_at;index" json:"-"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }
