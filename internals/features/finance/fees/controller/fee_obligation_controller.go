// file: internals/features/finance/fees/controller/fee_obligation_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/finance/fees/dto"
	model "sekolahku_backend/internals/features/finance/fees/model"
	service "sekolahku_backend/internals/features/finance/fees/service"
	authHelper "sekolahku_backend/internals/helpers/auth"
	helper "sekolahku_backend/internals/helpers"
)

type FeeObligationController struct {
	DB *gorm.DB
}

func NewFeeObligationController(db *gorm.DB) *FeeObligationController {
	return &FeeObligationController{DB: db}
}

/* ======================= CREATE (manual) ======================= */
// POST /api/a/fee-obligations — di luar batch generate
func (h *FeeObligationController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateFeeObligationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var fs model.FeeStructureModel
	if err := h.DB.
		Where("fee_structure_id = ? AND fee_structure_school_id = ?", req.FeeObligationStructureID, schoolID).
		First(&fs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Struktur yuran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	amount := fs.FeeStructureAmountSen
	if req.FeeObligationAmountSen != nil {
		amount = *req.FeeObligationAmountSen
	}
	due := fs.FeeStructureDueDate
	if req.FeeObligationDueDate != nil {
		due = req.FeeObligationDueDate
	}

	m := model.FeeObligationModel{
		FeeObligationSchoolID:    schoolID,
		FeeObligationStudentID:   req.FeeObligationStudentID,
		FeeObligationStructureID: req.FeeObligationStructureID,
		FeeObligationAmountSen:   amount,
		FeeObligationDueDate:     due,
		FeeObligationStatus:      model.FeeObligationStatusPending,
		FeeObligationNote:        req.FeeObligationNote,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusConflict, "Obligation untuk (struktur, pelajar) ini sudah ada")
	}
	return helper.JsonCreated(c, "Obligation berhasil dibuat", m)
}

/* ======================== LIST ======================== */
// GET /api/a/fee-obligations?student_id=&structure_id=&status=&due_from=&due_to=
// Hasil dibatasi VisibilityFilter (level admin hanya lihat level-nya).
func (h *FeeObligationController) List(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromContext(c)
	if err != nil {
		return err
	}
	scope, err := authHelper.ScopeObligations(actor, authHelper.ViewHistory)
	if err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	var q dto.ListFeeObligationQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.FeeObligationModel{}).Scopes(scope)
	if q.StudentID != nil {
		base = base.Where("fee_obligation_student_id = ?", *q.StudentID)
	}
	if q.StructureID != nil {
		base = base.Where("fee_obligation_structure_id = ?", *q.StructureID)
	}
	if q.Status != nil {
		base = base.Where("fee_obligation_status = ?", *q.Status)
	}
	if q.DueFrom != nil {
		base = base.Where("fee_obligation_due_date >= ?", *q.DueFrom)
	}
	if q.DueTo != nil {
		base = base.Where("fee_obligation_due_date <= ?", *q.DueTo)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.FeeObligationModel
	if err := base.
		Preload("Structure").
		Order("fee_obligation_due_date ASC NULLS LAST, fee_obligation_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out, err := h.resolveRows(actor.SchoolID, rows)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/fee-obligations/:id
func (h *FeeObligationController) GetByID(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromContext(c)
	if err != nil {
		return err
	}
	scope, err := authHelper.ScopeObligations(actor, authHelper.ViewHistory)
	if err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	var row model.FeeObligationModel
	if err := h.DB.Scopes(scope).
		Preload("Structure").
		Where("fee_obligation_id = ?", c.Params("id")).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out, err := h.resolveRows(actor.SchoolID, []model.FeeObligationModel{row})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", out[0])
}

/* ======================== UPDATE ======================== */
// PATCH /api/a/fee-obligations/:id — koreksi administratif (amount/due/note)
func (h *FeeObligationController) Update(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.FeeObligationModel
	if err := h.DB.
		Where("fee_obligation_id = ? AND fee_obligation_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if row.FeeObligationStatus == model.FeeObligationStatusPaid {
		return fiber.NewError(fiber.StatusConflict, "Obligation yang sudah paid bersifat final")
	}

	var req dto.UpdateFeeObligationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update obligation")
	}
	return helper.JsonUpdated(c, "Obligation berhasil diupdate", row)
}

/* ======================== INTERNAL ======================== */

// resolveRows: jalankan DiscountResolver per baris. Waiver di-load sekali
// untuk semua pelajar pada halaman ini, bukan per baris.
func (h *FeeObligationController) resolveRows(schoolID uuid.UUID, rows []model.FeeObligationModel) ([]dto.FeeObligationResponse, error) {
	now := time.Now()
	out := make([]dto.FeeObligationResponse, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	studentIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		studentIDs = append(studentIDs, r.FeeObligationStudentID)
	}

	var waivers []model.FeeWaiverModel
	if err := h.DB.
		Where("fee_waiver_school_id = ?", schoolID).
		Where("fee_waiver_student_id IN ?", studentIDs).
		Find(&waivers).Error; err != nil {
		return nil, err
	}

	byStudent := make(map[uuid.UUID][]model.FeeWaiverModel, len(studentIDs))
	for _, w := range waivers {
		if w.FeeWaiverStudentID == nil {
			continue
		}
		byStudent[*w.FeeWaiverStudentID] = append(byStudent[*w.FeeWaiverStudentID], w)
	}

	for _, r := range rows {
		categoryID := uuid.Nil
		if r.Structure != nil {
			categoryID = r.Structure.FeeStructureCategoryID
		}
		res := service.ResolveDiscount(r, categoryID, byStudent[r.FeeObligationStudentID], now)
		out = append(out, dto.FromObligationWithResolution(r, res, now))
	}
	return out, nil
}
