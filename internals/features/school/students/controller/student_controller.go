// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/students/dto"
	model "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
	authHelper "sekolahku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m, ok := req.ToModel(schoolID)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Format level tidak dikenali (contoh: '3' atau 'Form 3')")
	}
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusConflict, "Nombor pelajar sudah terdaftar di sekolah ini")
	}
	return helper.JsonCreated(c, "Pelajar berhasil didaftarkan", m)
}

/* ======================== LIST ======================== */
// GET /api/a/students?level=&is_active=&q= — dibatasi VisibilityFilter
// (level admin hanya melihat level-nya sendiri).
func (h *StudentController) List(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromContext(c)
	if err != nil {
		return err
	}
	scope, err := authHelper.ScopeStudents(actor)
	if err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	var q dto.ListStudentQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.StudentModel{}).Scopes(scope)
	if q.Level != nil {
		lv, ok := model.ParseLevel(*q.Level)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Format level tidak dikenali")
		}
		base = base.Where("student_level = ?", lv)
	}
	if q.IsActive != nil {
		base = base.Where("student_is_active = ?", *q.IsActive)
	}
	if q.Q != nil {
		like := "%" + *q.Q + "%"
		base = base.Where("student_name ILIKE ? OR student_code ILIKE ?", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.StudentModel
	if err := base.
		Order("student_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromContext(c)
	if err != nil {
		return err
	}
	scope, err := authHelper.ScopeStudents(actor)
	if err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	var row model.StudentModel
	if err := h.DB.Scopes(scope).
		Where("student_id = ?", c.Params("id")).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", row)
}

/* ======================== UPDATE ======================== */
// PUT /api/a/students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if !req.ApplyTo(&row) {
		return fiber.NewError(fiber.StatusBadRequest, "Format level tidak dikenali (contoh: '3' atau 'Form 3')")
	}
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update pelajar")
	}
	return helper.JsonUpdated(c, "Pelajar berhasil diupdate", row)
}

/* ======================== DEACTIVATE / DELETE ======================== */
// POST /api/a/students/:id/deactivate — pelajar keluar: nonaktif, bukan hapus
func (h *StudentController) Deactivate(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.Model(&model.StudentModel{}).
		Where("student_id = ? AND student_school_id = ?", c.Params("id"), schoolID).
		Update("student_is_active", false)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Pelajar dinonaktifkan", fiber.Map{"student_id": c.Params("id")})
}

// DELETE /api/a/students/:id (soft delete — jalur koreksi data salah input)
func (h *StudentController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("student_id = ? AND student_school_id = ?", c.Params("id"), schoolID).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Pelajar berhasil dihapus", fiber.Map{"student_id": c.Params("id")})
}
