// file: internals/features/finance/fees/controller/individual_fee_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/finance/fees/dto"
	model "sekolahku_backend/internals/features/finance/fees/model"
	activityModel "sekolahku_backend/internals/features/users/activity_logs/model"
	helper "sekolahku_backend/internals/helpers"
	authHelper "sekolahku_backend/internals/helpers/auth"
)

type IndividualFeeController struct {
	DB *gorm.DB
}

func NewIndividualFeeController(db *gorm.DB) *IndividualFeeController {
	return &IndividualFeeController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/individual-fees — yuran ad-hoc satu pelajar
func (h *IndividualFeeController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateIndividualFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat yuran individu")
	}
	return helper.JsonCreated(c, "Yuran individu berhasil dibuat", m)
}

/* ======================== LIST ======================== */
// GET /api/a/individual-fees?student_id=&is_paid=
func (h *IndividualFeeController) List(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromContext(c)
	if err != nil {
		return err
	}
	scope, err := authHelper.ScopeIndividualFees(actor, false)
	if err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.IndividualStudentFeeModel{}).Scopes(scope)
	if sid := c.Query("student_id"); sid != "" {
		base = base.Where("individual_fee_student_id = ?", sid)
	}
	if paid := c.Query("is_paid"); paid != "" {
		base = base.Where("individual_fee_is_paid = ?", paid == "true")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.IndividualStudentFeeModel
	if err := base.
		Order("individual_fee_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/individual-fees/:id
func (h *IndividualFeeController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.IndividualStudentFeeModel
	if err := h.DB.
		Where("individual_fee_id = ? AND individual_fee_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if row.IndividualFeeIsPaid {
		return fiber.NewError(fiber.StatusConflict, "Yuran yang sudah dibayar tidak bisa diubah")
	}

	var req dto.UpdateIndividualFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update yuran individu")
	}
	return helper.JsonUpdated(c, "Yuran individu berhasil diupdate", row)
}

/* ======================== MARK PAID ======================== */
// POST /api/a/individual-fees/:id/mark-paid
func (h *IndividualFeeController) MarkPaid(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.IndividualStudentFeeModel
	if err := h.DB.
		Where("individual_fee_id = ? AND individual_fee_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if row.IndividualFeeIsPaid {
		return fiber.NewError(fiber.StatusConflict, "Yuran sudah ditandai lunas")
	}

	now := time.Now()
	row.IndividualFeeIsPaid = true
	row.IndividualFeePaidAt = &now
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menandai lunas")
	}

	activityModel.Record(h.DB, schoolID, userID, "individual_fee.mark_paid", "individual_fee", row.IndividualFeeID, map[string]interface{}{
		"individual_fee_amount_sen": row.IndividualFeeAmountSen,
	})
	return helper.JsonUpdated(c, "Yuran individu ditandai lunas", row)
}

/* ======================== DELETE ======================== */
// DELETE /api/a/individual-fees/:id (soft delete)
func (h *IndividualFeeController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("individual_fee_id = ? AND individual_fee_school_id = ?", c.Params("id"), schoolID).
		Delete(&model.IndividualStudentFeeModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Yuran individu berhasil dihapus", fiber.Map{"individual_fee_id": c.Params("id")})
}
