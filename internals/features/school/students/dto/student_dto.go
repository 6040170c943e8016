// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/students/model"
)

type CreateStudentRequest struct {
	StudentCode     string `json:"student_code" validate:"required,min=3,max=30"`
	StudentName     string `json:"student_name" validate:"required,min=3,max=100"`
	StudentNRIC     string `json:"student_nric" validate:"required,min=6,max=20"`
	StudentLevelRaw string `json:"student_level" validate:"required,max=20"` // "3" atau "Form 3"
}

// ToModel: normalisasi level terjadi di hook model, di sini cukup validasi
// formatnya bisa diparse.
func (r CreateStudentRequest) ToModel(schoolID uuid.UUID) (*m.StudentModel, bool) {
	if _, ok := m.ParseLevel(r.StudentLevelRaw); !ok {
		return nil, false
	}
	return &m.StudentModel{
		StudentSchoolID: schoolID,
		StudentCode:     r.StudentCode,
		StudentName:     r.StudentName,
		StudentNRIC:     r.StudentNRIC,
		StudentLevelRaw: r.StudentLevelRaw,
		StudentIsActive: true,
	}, true
}

type UpdateStudentRequest struct {
	StudentName     *string `json:"student_name" validate:"omitempty,min=3,max=100"`
	StudentNRIC     *string `json:"student_nric" validate:"omitempty,min=6,max=20"`
	StudentLevelRaw *string `json:"student_level" validate:"omitempty,max=20"`
	StudentIsActive *bool   `json:"student_is_active" validate:"omitempty"`
}

func (r UpdateStudentRequest) ApplyTo(mo *m.StudentModel) bool {
	if r.StudentLevelRaw != nil {
		if _, ok := m.ParseLevel(*r.StudentLevelRaw); !ok {
			return false
		}
		mo.StudentLevelRaw = *r.StudentLevelRaw
	}
	if r.StudentName != nil {
		mo.StudentName = *r.StudentName
	}
	if r.StudentNRIC != nil {
		mo.StudentNRIC = *r.StudentNRIC
	}
	if r.StudentIsActive != nil {
		mo.StudentIsActive = *r.StudentIsActive
	}
	return true
}

type ListStudentQuery struct {
	Level    *string `query:"level" validate:"omitempty,max=20"`
	IsActive *bool   `query:"is_active" validate:"omitempty"`
	Q        *string `query:"q" validate:"omitempty,max=100"`
}
