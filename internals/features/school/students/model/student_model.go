// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	// Tenant
	StudentSchoolID uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index:idx_students_school_level,priority:1;uniqueIndex:uniq_student_code_school,priority:1" json:"student_school_id"`

	// Link ke akun (nullable: pelajar bisa terdaftar sebelum punya akun portal)
	StudentUserID *uuid.UUID `gorm:"column:student_user_id;type:uuid;index" json:"student_user_id,omitempty"`

	// Identitas
	StudentCode string `gorm:"column:student_code;type:varchar(30);not null;uniqueIndex:uniq_student_code_school,priority:2" json:"student_code"`
	StudentName string `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	StudentNRIC string `gorm:"column:student_nric;type:varchar(20);not null" json:"student_nric"`

	// Level: raw dipertahankan untuk audit, normalized dipakai untuk query
	StudentLevelRaw string `gorm:"column:student_level_raw;type:varchar(20);not null" json:"student_level_raw"`
	StudentLevel    Level  `gorm:"column:student_level;type:smallint;not null;index:idx_students_school_level,priority:2" json:"student_level"`

	// Soft-deactivate (bukan delete) saat pelajar keluar
	StudentIsActive bool `gorm:"column:student_is_active;not null;default:true;index" json:"student_is_active"`

	// Timestamps
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }

// NormalizeLevel mengisi kolom ternormalisasi dari raw. Dipanggil di hook
// supaya tidak ada jalur tulis yang lolos tanpa normalisasi.
func (m *StudentModel) NormalizeLevel() {
	if lv, ok := ParseLevel(m.StudentLevelRaw); ok {
		m.StudentLevel = lv
	} else {
		m.StudentLevel = LevelUnknown
	}
}

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	m.NormalizeLevel()
	return nil
}

func (m *StudentModel) BeforeUpdate(tx *gorm.DB) error {
	m.NormalizeLevel()
	return nil
}
