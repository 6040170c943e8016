// file: internals/features/finance/fees/controller/fee_structure_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/finance/fees/dto"
	model "sekolahku_backend/internals/features/finance/fees/model"
	service "sekolahku_backend/internals/features/finance/fees/service"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type FeeStructureController struct {
	DB *gorm.DB
}

func NewFeeStructureController(db *gorm.DB) *FeeStructureController {
	return &FeeStructureController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/fee-structures
func (h *FeeStructureController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m, ok := req.ToModel(schoolID)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "fee_structure_level tidak dikenali (pakai '3' atau 'Form 3')")
	}

	// pastikan kategori milik tenant yang sama
	var cat model.FeeCategoryModel
	if err := h.DB.
		Where("fee_category_id = ? AND fee_category_school_id = ?", m.FeeStructureCategoryID, schoolID).
		First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Kategori yuran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Struktur yuran untuk kombinasi (kategori, level) sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat struktur yuran")
	}
	return helper.JsonCreated(c, "Struktur yuran berhasil dibuat", m)
}

/* ======================== GET BY ID ======================== */
// GET /api/a/fee-structures/:id
func (h *FeeStructureController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.FeeStructureModel
	if err := h.DB.
		Preload("Category").
		Where("fee_structure_id = ? AND fee_structure_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", row)
}

/* ======================== LIST ======================== */
// GET /api/a/fee-structures?category_id=&level=&q=
func (h *FeeStructureController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListFeeStructureQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.FeeStructureModel{}).
		Where("fee_structure_school_id = ?", schoolID)
	if q.CategoryID != nil {
		base = base.Where("fee_structure_category_id = ?", *q.CategoryID)
	}
	if q.Level != nil {
		lv, ok := studentModel.ParseLevel(*q.Level)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "level tidak dikenali")
		}
		base = base.Where("fee_structure_level = ?", lv)
	}
	if q.Q != nil && strings.TrimSpace(*q.Q) != "" {
		base = base.Where("fee_structure_title ILIKE ?", "%"+strings.TrimSpace(*q.Q)+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.FeeStructureModel
	if err := base.
		Preload("Category").
		Order("fee_structure_level ASC, fee_structure_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/fee-structures/:id
func (h *FeeStructureController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.FeeStructureModel
	if err := h.DB.
		Where("fee_structure_id = ? AND fee_structure_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update struktur yuran")
	}
	return helper.JsonUpdated(c, "Struktur yuran berhasil diupdate", row)
}

/* ======================== DELETE ======================== */
// DELETE /api/a/fee-structures/:id (soft delete)
func (h *FeeStructureController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("fee_structure_id = ? AND fee_structure_school_id = ?", c.Params("id"), schoolID).
		Delete(&model.FeeStructureModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Struktur yuran berhasil dihapus", fiber.Map{"fee_structure_id": c.Params("id")})
}

/* ======================== GENERATE ======================== */
// POST /api/a/fee-structures/:id/generate-obligations
// Materialisasi obligation per pelajar aktif level struktur ini (batch, 1 tx).
func (h *FeeStructureController) GenerateObligations(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var fs model.FeeStructureModel
	if err := h.DB.
		Where("fee_structure_id = ? AND fee_structure_school_id = ?", c.Params("id"), schoolID).
		First(&fs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Struktur yuran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	created, err := service.GenerateObligationsForStructure(tx, fs)
	if err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal generate obligation: "+err.Error())
	}
	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Obligation berhasil digenerate", fiber.Map{
		"fee_structure_id": fs.FeeStructureID,
		"created":          created,
	})
}
