// file: internals/features/finance/fees/controller/fee_waiver_controller.go
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
)

type FeeWaiverController struct {
	DB *gorm.DB
}

func NewFeeWaiverController(db *gorm.DB) *FeeWaiverController {
	return &FeeWaiverController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/fee-waivers — masuk sebagai pending, butuh approval
func (h *FeeWaiverController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateFeeWaiverRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.FeeWaiverPercentage == nil && req.FeeWaiverAmountSen == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Isi fee_waiver_percentage atau fee_waiver_amount_sen")
	}

	m := req.ToModel(schoolID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat waiver")
	}
	return helper.JsonCreated(c, "Waiver berhasil diajukan (pending)", m)
}

/* ======================== LIST ======================== */
// GET /api/a/fee-waivers?student_id=&category_id=&status=
func (h *FeeWaiverController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListFeeWaiverQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.FeeWaiverModel{}).
		Where("fee_waiver_school_id = ?", schoolID)
	if q.StudentID != nil {
		base = base.Where("fee_waiver_student_id = ?", *q.StudentID)
	}
	if q.CategoryID != nil {
		base = base.Where("fee_waiver_category_id = ?", *q.CategoryID)
	}
	if q.Status != nil {
		base = base.Where("fee_waiver_status = ?", *q.Status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.FeeWaiverModel
	if err := base.
		Order("fee_waiver_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/fee-waivers/:id — hanya selama masih pending
func (h *FeeWaiverController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.FeeWaiverModel
	if err := h.DB.
		Where("fee_waiver_id = ? AND fee_waiver_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if row.FeeWaiverStatus != model.FeeWaiverStatusPending {
		return fiber.NewError(fiber.StatusConflict, "Waiver yang sudah diputuskan tidak bisa diubah")
	}

	var req dto.UpdateFeeWaiverRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update waiver")
	}
	return helper.JsonUpdated(c, "Waiver berhasil diupdate", row)
}

/* ======================== APPROVE / REJECT ======================== */
// POST /api/a/fee-waivers/:id/approve
func (h *FeeWaiverController) Approve(c *fiber.Ctx) error {
	return h.decide(c, model.FeeWaiverStatusApproved, "Waiver disetujui")
}

// POST /api/a/fee-waivers/:id/reject
func (h *FeeWaiverController) Reject(c *fiber.Ctx) error {
	return h.decide(c, model.FeeWaiverStatusRejected, "Waiver ditolak")
}

func (h *FeeWaiverController) decide(c *fiber.Ctx, status model.FeeWaiverStatus, msg string) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.FeeWaiverModel
	if err := h.DB.
		Where("fee_waiver_id = ? AND fee_waiver_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if row.FeeWaiverStatus != model.FeeWaiverStatusPending {
		return fiber.NewError(fiber.StatusConflict, "Waiver sudah diputuskan")
	}

	now := time.Now()
	row.FeeWaiverStatus = status
	row.FeeWaiverDecidedBy = &userID
	row.FeeWaiverDecidedAt = &now
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan keputusan waiver")
	}

	activityModel.Record(h.DB, schoolID, userID, "fee_waiver."+string(status), "fee_waiver", row.FeeWaiverID, map[string]interface{}{
		"fee_waiver_type":   string(row.FeeWaiverType),
		"fee_waiver_status": string(status),
	})
	return helper.JsonUpdated(c, msg, row)
}

/* ======================== DELETE ======================== */
// DELETE /api/a/fee-waivers/:id (soft delete)
func (h *FeeWaiverController) Delete(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("fee_waiver_id = ? AND fee_waiver_school_id = ?", c.Params("id"), schoolID).
		Delete(&model.FeeWaiverModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Waiver berhasil dihapus", fiber.Map{"fee_waiver_id": c.Params("id")})
}
