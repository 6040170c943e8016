// file: internals/features/finance/fees/controller/fee_category_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/finance/fees/dto"
	model "sekolahku_backend/internals/features/finance/fees/model"
	helper "sekolahku_backend/internals/helpers"
)

type FeeCategoryController struct {
	DB *gorm.DB
}

func NewFeeCategoryController(db *gorm.DB) *FeeCategoryController {
	return &FeeCategoryController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/fee-categories
func (h *FeeCategoryController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateFeeCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kategori yuran")
	}
	return helper.JsonCreated(c, "Kategori yuran berhasil dibuat", m)
}

/* ======================== LIST ======================== */
// GET /api/a/fee-categories
func (h *FeeCategoryController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.FeeCategoryModel{}).
		Where("fee_category_school_id = ?", schoolID)
	if t := c.Query("type"); t != "" {
		base = base.Where("fee_category_type = ?", t)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.FeeCategoryModel
	if err := base.
		Order("fee_category_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/fee-categories/:id
func (h *FeeCategoryController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.FeeCategoryModel
	if err := h.DB.
		Where("fee_category_id = ? AND fee_category_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateFeeCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update kategori yuran")
	}
	return helper.JsonUpdated(c, "Kategori yuran berhasil diupdate", row)
}

/* ======================== DELETE ======================== */
// DELETE /api/a/fee-categories/:id (soft delete)
func (h *FeeCategoryController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("fee_category_id = ? AND fee_category_school_id = ?", c.Params("id"), schoolID).
		Delete(&model.FeeCategoryModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kategori yuran berhasil dihapus", fiber.Map{"fee_category_id": c.Params("id")})
}
