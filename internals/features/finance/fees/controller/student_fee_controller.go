// file: internals/features/finance/fees/controller/student_fee_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/finance/fees/dto"
	model "sekolahku_backend/internals/features/finance/fees/model"
	service "sekolahku_backend/internals/features/finance/fees/service"
	helper "sekolahku_backend/internals/helpers"
	authHelper "sekolahku_backend/internals/helpers/auth"
)

// StudentFeeController: endpoint /api/u/fees/* untuk role student.
// Semua query lewat VisibilityFilter; akun student yang belum terhubung ke
// rekod pelajar mendapat respons tersendiri, BUKAN list kosong.
type StudentFeeController struct {
	DB *gorm.DB
}

func NewStudentFeeController(db *gorm.DB) *StudentFeeController {
	return &StudentFeeController{DB: db}
}

// jsonNoStudentRecord: state khusus provisioning belum lengkap.
func jsonNoStudentRecord(c *fiber.Ctx) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"success": false,
		"code":    "NO_STUDENT_RECORD",
		"message": "Akun Anda belum terhubung ke rekod pelajar. Hubungi pihak sekolah.",
	})
}

/* ======================== CURRENT ======================== */
// GET /api/u/fees/current — pending+overdue saja, diskon sudah diresolve,
// plus yuran individu yang belum lunas.
func (h *StudentFeeController) Current(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromContext(c)
	if err != nil {
		return err
	}

	obScope, err := authHelper.ScopeObligations(actor, authHelper.ViewCurrent)
	if err != nil {
		if errors.Is(err, authHelper.ErrNoStudentRecord) {
			return jsonNoStudentRecord(c)
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	indScope, err := authHelper.ScopeIndividualFees(actor, true)
	if err != nil {
		if errors.Is(err, authHelper.ErrNoStudentRecord) {
			return jsonNoStudentRecord(c)
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var obligations []model.FeeObligationModel
	if err := h.DB.Scopes(obScope).
		Preload("Structure").
		Order("fee_obligation_due_date ASC NULLS LAST").
		Find(&obligations).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var individuals []model.IndividualStudentFeeModel
	if err := h.DB.Scopes(indScope).
		Order("individual_fee_due_date ASC NULLS LAST").
		Find(&individuals).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resolved, totalDueSen, err := h.resolveForStudent(actor, obligations)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	for _, f := range individuals {
		totalDueSen += f.IndividualFeeAmountSen
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"obligations":     resolved,
		"individual_fees": individuals,
		"total_due_sen":   totalDueSen,
	})
}

/* ======================== HISTORY ======================== */
// GET /api/u/fees/history — semua status, termasuk paid.
func (h *StudentFeeController) History(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromContext(c)
	if err != nil {
		return err
	}
	scope, err := authHelper.ScopeObligations(actor, authHelper.ViewHistory)
	if err != nil {
		if errors.Is(err, authHelper.ErrNoStudentRecord) {
			return jsonNoStudentRecord(c)
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.FeeObligationModel{}).Scopes(scope)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.FeeObligationModel
	if err := base.
		Preload("Structure").
		Order("fee_obligation_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resolved, _, err := h.resolveForStudent(actor, rows)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", resolved, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== MY WAIVERS ======================== */
// GET /api/u/fees/waivers — waiver milik pelajar sendiri (semua status).
func (h *StudentFeeController) MyWaivers(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromContext(c)
	if err != nil {
		return err
	}
	if actor.StudentID == uuid.Nil {
		return jsonNoStudentRecord(c)
	}

	var rows []model.FeeWaiverModel
	if err := h.DB.
		Where("fee_waiver_school_id = ? AND fee_waiver_student_id = ?", actor.SchoolID, actor.StudentID).
		Order("fee_waiver_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ======================== INTERNAL ======================== */

// resolveForStudent: DiscountResolver per baris + total final_sen untuk
// baris yang masih outstanding.
func (h *StudentFeeController) resolveForStudent(actor authHelper.Actor, rows []model.FeeObligationModel) ([]dto.FeeObligationResponse, int64, error) {
	now := time.Now()
	out := make([]dto.FeeObligationResponse, 0, len(rows))
	if len(rows) == 0 {
		return out, 0, nil
	}

	var waivers []model.FeeWaiverModel
	if err := h.DB.
		Where("fee_waiver_school_id = ? AND fee_waiver_student_id = ?", actor.SchoolID, actor.StudentID).
		Find(&waivers).Error; err != nil {
		return nil, 0, err
	}

	var totalDueSen int64
	for _, r := range rows {
		categoryID := uuid.Nil
		if r.Structure != nil {
			categoryID = r.Structure.FeeStructureCategoryID
		}
		res := service.ResolveDiscount(r, categoryID, waivers, now)
		if r.IsOutstanding() {
			totalDueSen += res.FinalSen
		}
		out = append(out, dto.FromObligationWithResolution(r, res, now))
	}
	return out, totalDueSen, nil
}
