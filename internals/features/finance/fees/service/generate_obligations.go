// file: internals/features/finance/fees/service/generate_obligations.go
package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/finance/fees/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

// GenerateObligationsForStructure membuat FeeObligation untuk SEMUA pelajar
// aktif di level struktur tsb, dalam SATU transaksi. Pelajar yang sudah punya
// obligation untuk struktur ini dilewati (ON CONFLICT DO NOTHING).
// Mengembalikan jumlah baris baru.
func GenerateObligationsForStructure(tx *gorm.DB, fs model.FeeStructureModel) (int64, error) {
	if fs.FeeStructureID == uuid.Nil {
		return 0, fmt.Errorf("fee structure belum tersimpan")
	}

	res := tx.Exec(`
		INSERT INTO fee_obligations
			(fee_obligation_school_id, fee_obligation_structure_id, fee_obligation_student_id,
			 fee_obligation_amount_sen, fee_obligation_due_date, fee_obligation_status)
		SELECT
			s.student_school_id, ?, s.student_id, ?, ?, 'pending'
		FROM students s
		WHERE s.student_school_id = ?
		  AND s.student_level = ?
		  AND s.student_is_active = TRUE
		  AND s.student_deleted_at IS NULL
		ON CONFLICT (fee_obligation_structure_id, fee_obligation_student_id) DO NOTHING
	`, fs.FeeStructureID, fs.FeeStructureAmountSen, fs.FeeStructureDueDate,
		fs.FeeStructureSchoolID, fs.FeeStructureLevel)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// GenerateObligationsForStudent dipakai saat enrolment: materialisasi semua
// struktur level pelajar tsb. Best-effort per struktur (dipakai juga oleh
// skrip seeding) — kegagalan satu struktur di-log lalu lanjut.
func GenerateObligationsForStudent(db *gorm.DB, st studentModel.StudentModel) int {
	var structures []model.FeeStructureModel
	if err := db.
		Where("fee_structure_school_id = ? AND fee_structure_level = ?", st.StudentSchoolID, st.StudentLevel).
		Find(&structures).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil fee_structures utk pelajar %s: %v", st.StudentID, err)
		return 0
	}

	created := 0
	for _, fs := range structures {
		ob := model.FeeObligationModel{
			FeeObligationSchoolID:    st.StudentSchoolID,
			FeeObligationStructureID: fs.FeeStructureID,
			FeeObligationStudentID:   st.StudentID,
			FeeObligationAmountSen:   fs.FeeStructureAmountSen,
			FeeObligationDueDate:     fs.FeeStructureDueDate,
			FeeObligationStatus:      model.FeeObligationStatusPending,
		}
		if err := db.
			Where("fee_obligation_structure_id = ? AND fee_obligation_student_id = ?", fs.FeeStructureID, st.StudentID).
			FirstOrCreate(&ob).Error; err != nil {
			log.Printf("[ERROR] Gagal buat obligation (struktur %s, pelajar %s): %v", fs.FeeStructureID, st.StudentID, err)
			continue
		}
		created++
	}
	return created
}

// SweepOverdue mem-persist pending→overdue yang sudah lewat due date.
// Idempotent; EffectiveStatus tetap jadi sumber kebenaran di jalur read.
func SweepOverdue(db *gorm.DB, at time.Time) (int64, error) {
	res := db.Model(&model.FeeObligationModel{}).
		Where("fee_obligation_status = ?", model.FeeObligationStatusPending).
		Where("fee_obligation_due_date IS NOT NULL AND fee_obligation_due_date < ?", at.Format("2006-01-02")).
		Update("fee_obligation_status", model.FeeObligationStatusOverdue)
	return res.RowsAffected, res.Error
}
