// 📁 controller/donation_controller.go
package controller

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/donations/donations/dto"
	"sekolahku_backend/internals/features/donations/donations/model"
	donationService "sekolahku_backend/internals/features/donations/donations/service"
	paymentService "sekolahku_backend/internals/features/finance/payments/service"
	helper "sekolahku_backend/internals/helpers"
)

type DonationController struct {
	DB *gorm.DB
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/public/donations — bisa tanpa login (guest) maupun dengan login.
func (ctrl *DonationController) CreateDonation(c *fiber.Ctx) error {
	var body dto.CreateDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// 🔐 Jika pengguna login, ambil user ID dari token (opsional)
	var userUUID *uuid.UUID
	if userIDRaw := c.Locals("user_id"); userIDRaw != nil {
		if userIDStr, ok := userIDRaw.(string); ok && userIDStr != "" {
			if parsed, err := uuid.Parse(userIDStr); err == nil {
				userUUID = &parsed
			}
		}
	}

	orderID := fmt.Sprintf("DONATION-%d", time.Now().UnixNano())

	donation := model.Donation{
		DonationSchoolID:       body.SchoolID,
		DonationUserID:         userUUID,
		DonationName:           body.Name,
		DonationAmountSen:      body.AmountSen,
		DonationMessage:        body.Message,
		DonationStatus:         "pending",
		DonationOrderID:        orderID,
		DonationPaymentGateway: "midtrans",
	}

	if err := ctrl.DB.Create(&donation).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	token, err := donationService.GenerateSnapToken(&paymentService.SnapClient, donation, body.Name, body.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat token pembayaran")
	}

	donation.DonationPaymentToken = token
	if err := ctrl.DB.Save(&donation).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan token pembayaran")
	}

	return helper.JsonCreated(c, "Donasi berhasil dibuat. Silakan lanjutkan pembayaran.", fiber.Map{
		"order_id":   donation.DonationOrderID,
		"snap_token": token,
	})
}

/* ======================= WEBHOOK ======================= */
// POST /api/public/donations/notification
func (ctrl *DonationController) Webhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := sonic.Unmarshal(c.Body(), &body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := donationService.HandleDonationStatusWebhook(ctrl.DB, body); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", nil)
}

/* ======================= ADMIN LIST ======================= */
// GET /api/a/donations?status=
func (ctrl *DonationController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.Donation{}).
		Where("donation_school_id = ?", schoolID)
	if v := c.Query("status"); v != "" {
		base = base.Where("donation_status = ?", v)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.Donation
	if err := base.
		Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= MY DONATIONS ======================= */
// GET /api/u/donations — donasi milik user login.
func (ctrl *DonationController) MyDonations(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.Donation
	if err := ctrl.DB.
		Where("donation_user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}
