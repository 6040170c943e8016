// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feeModel "sekolahku_backend/internals/features/finance/fees/model"
	feeService "sekolahku_backend/internals/features/finance/fees/service"
	"sekolahku_backend/internals/features/finance/payments/dto"
	"sekolahku_backend/internals/features/finance/payments/model"
	"sekolahku_backend/internals/features/finance/payments/service"
	activityModel "sekolahku_backend/internals/features/users/activity_logs/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	authHelper "sekolahku_backend/internals/helpers/auth"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ======================= CHECKOUT ======================= */
// POST /api/u/payments/checkout — pelajar membayar satu obligation miliknya.
// Nominal yang ditagihkan adalah hasil DiscountResolver, bukan nominal asli.
func (h *PaymentController) Checkout(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	scope, err := authHelper.ScopeObligations(actor, authHelper.ViewCurrent)
	if err != nil {
		if errors.Is(err, authHelper.ErrNoStudentRecord) {
			return fiber.NewError(fiber.StatusConflict, authHelper.ErrNoStudentRecord.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var ob feeModel.FeeObligationModel
	if err := h.DB.Scopes(scope).
		Preload("Structure").
		Where("fee_obligation_id = ?", req.ObligationID).
		First(&ob).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Obligation tidak ditemukan atau sudah lunas")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Resolve diskon aktif saat checkout
	var waivers []feeModel.FeeWaiverModel
	if err := h.DB.
		Where("fee_waiver_school_id = ? AND fee_waiver_student_id = ?", actor.SchoolID, ob.FeeObligationStudentID).
		Find(&waivers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	categoryID := uuid.Nil
	if ob.Structure != nil {
		categoryID = ob.Structure.FeeStructureCategoryID
	}
	res := feeService.ResolveDiscount(ob, categoryID, waivers, time.Now())
	if res.FinalSen <= 0 {
		return fiber.NewError(fiber.StatusConflict, "Nominal akhir tidak bisa ditagihkan lewat gateway")
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", actor.UserID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "User tidak ditemukan")
	}

	payment := model.PaymentModel{
		PaymentSchoolID:     actor.SchoolID,
		PaymentStudentID:    ob.FeeObligationStudentID,
		PaymentObligationID: ob.FeeObligationID,
		PaymentAmountSen:    res.FinalSen,
		PaymentMethod:       model.PaymentMethodGateway,
		PaymentStatus:       model.PaymentStatusPending,
		PaymentOrderID:      service.NewOrderID("FEE"),
	}
	if err := h.DB.Create(&payment).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat payment")
	}

	snapToken, err := service.GenerateSnapToken(payment, user.UserName, user.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi midtrans")
	}
	payment.PaymentSnapToken = &snapToken
	if err := h.DB.Save(&payment).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan snap token")
	}

	return helper.JsonCreated(c, "Checkout berhasil", dto.CheckoutResponse{
		PaymentID:        payment.PaymentID,
		PaymentOrderID:   payment.PaymentOrderID,
		PaymentAmountSen: payment.PaymentAmountSen,
		SnapToken:        snapToken,
	})
}

/* ======================= MY PAYMENTS ======================= */
// GET /api/u/payments — riwayat pembayaran pelajar sendiri (semua status).
func (h *PaymentController) MyPayments(c *fiber.Ctx) error {
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

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.PaymentModel{}).Scopes(scope)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PaymentModel
	if err := base.
		Order("payment_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= ADMIN LIST ======================= */
// GET /api/a/payments?student_id=&status=&paid_from=&paid_to=
func (h *PaymentController) List(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromContext(c)
	if err != nil {
		return err
	}
	scope, err := authHelper.ScopePayments(actor)
	if err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	var q dto.ListPaymentQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.PaymentModel{}).Scopes(scope)
	if q.StudentID != nil {
		base = base.Where("payment_student_id = ?", *q.StudentID)
	}
	if q.Status != nil {
		base = base.Where("payment_status = ?", *q.Status)
	}
	if q.PaidFrom != nil {
		base = base.Where("payment_paid_at >= ?", *q.PaidFrom)
	}
	if q.PaidTo != nil {
		base = base.Where("payment_paid_at <= ?", *q.PaidTo)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PaymentModel
	if err := base.
		Order("payment_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= RECORD CASH ======================= */
// POST /api/a/payments/record — pembayaran tunai/transfer dicatat admin,
// langsung settle (payment completed + obligation paid, satu transaksi).
func (h *PaymentController) RecordCash(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RecordCashRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var ob feeModel.FeeObligationModel
	if err := h.DB.
		Where("fee_obligation_id = ? AND fee_obligation_school_id = ?", req.ObligationID, schoolID).
		First(&ob).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Obligation tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if ob.FeeObligationStatus == feeModel.FeeObligationStatusPaid {
		return fiber.NewError(fiber.StatusConflict, "Obligation sudah lunas")
	}

	payment := model.PaymentModel{
		PaymentSchoolID:     schoolID,
		PaymentStudentID:    ob.FeeObligationStudentID,
		PaymentObligationID: ob.FeeObligationID,
		PaymentAmountSen:    req.AmountSen,
		PaymentMethod:       model.PaymentMethod(req.Method),
		PaymentStatus:       model.PaymentStatusPending,
		PaymentOrderID:      service.NewOrderID("MANUAL"),
	}
	if err := h.DB.Create(&payment).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat payment")
	}
	if err := service.SettlePayment(h.DB, &payment); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal settle payment")
	}

	activityModel.Record(h.DB, schoolID, userID, "payment.record_cash", "payment", payment.PaymentID, map[string]interface{}{
		"obligation_id": ob.FeeObligationID,
		"amount_sen":    req.AmountSen,
		"method":        req.Method,
	})

	return helper.JsonCreated(c, "Pembayaran manual tercatat dan lunas", payment)
}

/* ======================= WEBHOOK ======================= */
// POST /api/payments/notification — endpoint notifikasi Midtrans (tanpa auth,
// di-skip oleh middleware JWT).
func (h *PaymentController) Webhook(c *fiber.Ctx) error {
	raw := c.Body()

	var body map[string]interface{}
	if err := sonic.Unmarshal(raw, &body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := service.HandlePaymentWebhook(h.DB, body, raw); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", nil)
}
