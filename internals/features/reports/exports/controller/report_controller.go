// file: internals/features/reports/exports/controller/report_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feeModel "sekolahku_backend/internals/features/finance/fees/model"
	feeService "sekolahku_backend/internals/features/finance/fees/service"
	paymentModel "sekolahku_backend/internals/features/finance/payments/model"
	reportService "sekolahku_backend/internals/features/reports/exports/service"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	authHelper "sekolahku_backend/internals/helpers/auth"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

/* ======================= RECEIPT ======================= */
// GET /api/u/reports/payments/:id/receipt — resit PDF; pelajar hanya bisa
// mengunduh resit pembayarannya sendiri (lewat ScopePayments).
func (h *ReportController) PaymentReceipt(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromContext(c)
	if err != nil {
		return err
	}
	scope, err := authHelper.ScopePayments(actor)
	if err != nil {
		if errors.Is(err, authHelper.ErrNoStudentRecord) {
			return fiber.NewError(fiber.StatusConflict, authHelper.ErrNoStudentRecord.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var payment paymentModel.PaymentModel
	if err := h.DB.Scopes(scope).
		Where("payment_id = ?", c.Params("id")).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if payment.PaymentStatus != paymentModel.PaymentStatusCompleted {
		return fiber.NewError(fiber.StatusConflict, "Resit hanya tersedia untuk pembayaran yang selesai")
	}

	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_id = ?", payment.PaymentStudentID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	structureTitle := ""
	var ob feeModel.FeeObligationModel
	if err := h.DB.Preload("Structure").
		First(&ob, "fee_obligation_id = ?", payment.PaymentObligationID).Error; err == nil && ob.Structure != nil {
		structureTitle = ob.Structure.FeeStructureTitle
	}

	pdfBytes, err := reportService.GenerateReceiptPDF(payment, student, structureTitle)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat resit")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resit-`+payment.PaymentOrderID+`.pdf"`)
	return c.Send(pdfBytes)
}

/* ======================= REMINDER ======================= */
// GET /api/a/reports/obligations/:id/reminder — surat peringatan PDF untuk
// obligation yang tertunggak (EffectiveStatus == overdue).
func (h *ReportController) OverdueReminder(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromContext(c)
	if err != nil {
		return err
	}
	scope, err := authHelper.ScopeObligations(actor, authHelper.ViewHistory)
	if err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	var ob feeModel.FeeObligationModel
	if err := h.DB.Scopes(scope).
		Preload("Structure").
		Where("fee_obligation_id = ?", c.Params("id")).
		First(&ob).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Obligation tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	if ob.EffectiveStatus(now) != feeModel.FeeObligationStatusOverdue {
		return fiber.NewError(fiber.StatusConflict, "Surat peringatan hanya untuk yuran tertunggak")
	}

	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_id = ?", ob.FeeObligationStudentID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var waivers []feeModel.FeeWaiverModel
	if err := h.DB.
		Where("fee_waiver_school_id = ? AND fee_waiver_student_id = ?", actor.SchoolID, ob.FeeObligationStudentID).
		Find(&waivers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	categoryID := uuid.Nil
	structureTitle := ""
	if ob.Structure != nil {
		categoryID = ob.Structure.FeeStructureCategoryID
		structureTitle = ob.Structure.FeeStructureTitle
	}
	res := feeService.ResolveDiscount(ob, categoryID, waivers, now)

	pdfBytes, err := reportService.GenerateReminderPDF(ob, student, structureTitle, res.FinalSen)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat surat peringatan")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="peringatan-`+ob.FeeObligationID.String()+`.pdf"`)
	return c.Send(pdfBytes)
}

/* ======================= LEVEL EXCEL ======================= */
// GET /api/a/reports/fees/level?level=Form%203 — laporan Excel yuran satu
// level. Level admin hanya bisa memilih level-nya sendiri (scope menolak
// baris lain secara otomatis).
func (h *ReportController) LevelFeeReport(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromContext(c)
	if err != nil {
		return err
	}
	scope, err := authHelper.ScopeObligations(actor, authHelper.ViewHistory)
	if err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	level, ok := studentModel.ParseLevel(c.Query("level"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Format level tidak dikenali (contoh: '3' atau 'Form 3')")
	}

	var obligations []feeModel.FeeObligationModel
	if err := h.DB.Scopes(scope).
		Preload("Structure").
		Where("fee_obligation_student_id IN (?)",
			h.DB.Session(&gorm.Session{NewDB: true}).
				Table("students").
				Select("student_id").
				Where("student_school_id = ? AND student_level = ? AND student_deleted_at IS NULL", actor.SchoolID, level)).
		Order("fee_obligation_due_date ASC NULLS LAST").
		Find(&obligations).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Load pelajar + waiver sekali untuk seluruh laporan
	studentIDs := make([]uuid.UUID, 0, len(obligations))
	for _, ob := range obligations {
		studentIDs = append(studentIDs, ob.FeeObligationStudentID)
	}
	students := map[uuid.UUID]studentModel.StudentModel{}
	if len(studentIDs) > 0 {
		var rows []studentModel.StudentModel
		if err := h.DB.Where("student_id IN ?", studentIDs).Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		for _, s := range rows {
			students[s.StudentID] = s
		}
	}
	waiversByStudent := map[uuid.UUID][]feeModel.FeeWaiverModel{}
	if len(studentIDs) > 0 {
		var ws []feeModel.FeeWaiverModel
		if err := h.DB.
			Where("fee_waiver_school_id = ? AND fee_waiver_student_id IN ?", actor.SchoolID, studentIDs).
			Find(&ws).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		for _, w := range ws {
			if w.FeeWaiverStudentID != nil {
				waiversByStudent[*w.FeeWaiverStudentID] = append(waiversByStudent[*w.FeeWaiverStudentID], w)
			}
		}
	}

	now := time.Now()
	reportRows := make([]reportService.FeeReportRow, 0, len(obligations))
	for _, ob := range obligations {
		categoryID := uuid.Nil
		structureTitle := ""
		if ob.Structure != nil {
			categoryID = ob.Structure.FeeStructureCategoryID
			structureTitle = ob.Structure.FeeStructureTitle
		}
		res := feeService.ResolveDiscount(ob, categoryID, waiversByStudent[ob.FeeObligationStudentID], now)

		s := students[ob.FeeObligationStudentID]
		due := ""
		if ob.FeeObligationDueDate != nil {
			due = ob.FeeObligationDueDate.Format("02/01/2006")
		}
		reportRows = append(reportRows, reportService.FeeReportRow{
			StudentCode:    s.StudentCode,
			StudentName:    s.StudentName,
			StructureTitle: structureTitle,
			OriginalSen:    res.OriginalSen,
			DiscountSen:    res.DiscountSen,
			FinalSen:       res.FinalSen,
			Status:         string(ob.EffectiveStatus(now)),
			DueDate:        due,
		})
	}

	xlsxBytes, err := reportService.GenerateLevelFeeReportXLSX(level, reportRows)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat laporan")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="laporan-yuran.xlsx"`)
	return c.Send(xlsxBytes)
}
