// file: internals/features/waqaf/waqaf/controller/waqaf_controller.go
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentService "sekolahku_backend/internals/features/finance/payments/service"
	"sekolahku_backend/internals/features/waqaf/waqaf/dto"
	"sekolahku_backend/internals/features/waqaf/waqaf/model"
	waqafService "sekolahku_backend/internals/features/waqaf/waqaf/service"
	helper "sekolahku_backend/internals/helpers"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type WaqafController struct {
	DB *gorm.DB
}

func NewWaqafController(db *gorm.DB) *WaqafController {
	return &WaqafController{DB: db}
}

/* ======================= ASSET CRUD ======================= */
// POST /api/a/waqaf-assets
func (h *WaqafController) CreateAsset(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateWaqafAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat aset waqaf")
	}
	return helper.JsonCreated(c, "Aset waqaf berhasil dibuat", m)
}

// GET /api/public/waqaf-assets?school_id= — daftar aset open untuk publik
func (h *WaqafController) ListOpenAssets(c *fiber.Ctx) error {
	schoolID := c.Query("school_id")
	if schoolID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "school_id wajib diisi")
	}

	var rows []model.WaqafAssetModel
	if err := h.DB.
		Where("waqaf_asset_school_id = ? AND waqaf_asset_status = ?", schoolID, model.WaqafAssetStatusOpen).
		Order("waqaf_asset_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /api/a/waqaf-assets — semua status, untuk waqaf_admin
func (h *WaqafController) ListAssets(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.WaqafAssetModel{}).
		Where("waqaf_asset_school_id = ?", schoolID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.WaqafAssetModel
	if err := base.
		Order("waqaf_asset_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PUT /api/a/waqaf-assets/:id
func (h *WaqafController) UpdateAsset(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.WaqafAssetModel
	if err := h.DB.
		Where("waqaf_asset_id = ? AND waqaf_asset_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateWaqafAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update aset waqaf")
	}
	return helper.JsonUpdated(c, "Aset waqaf berhasil diupdate", row)
}

// DELETE /api/a/waqaf-assets/:id (soft delete)
func (h *WaqafController) DeleteAsset(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("waqaf_asset_id = ? AND waqaf_asset_school_id = ?", c.Params("id"), schoolID).
		Delete(&model.WaqafAssetModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Aset waqaf berhasil dihapus", fiber.Map{"waqaf_asset_id": c.Params("id")})
}

/* ======================= CONTRIBUTE ======================= */
// POST /api/public/waqaf/contribute — guest atau user login.
func (h *WaqafController) Contribute(c *fiber.Ctx) error {
	var req dto.ContributeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var asset model.WaqafAssetModel
	if err := h.DB.
		Where("waqaf_asset_id = ? AND waqaf_asset_school_id = ?", req.AssetID, req.SchoolID).
		First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Aset waqaf tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if asset.WaqafAssetStatus != model.WaqafAssetStatusOpen {
		return fiber.NewError(fiber.StatusConflict, "Aset waqaf sudah tidak menerima sumbangan")
	}

	var userUUID *uuid.UUID
	if userIDRaw := c.Locals("user_id"); userIDRaw != nil {
		if userIDStr, ok := userIDRaw.(string); ok && userIDStr != "" {
			if parsed, err := uuid.Parse(userIDStr); err == nil {
				userUUID = &parsed
			}
		}
	}

	contrib := model.WaqafContributionModel{
		WaqafContributionSchoolID:  req.SchoolID,
		WaqafContributionAssetID:   req.AssetID,
		WaqafContributionUserID:    userUUID,
		WaqafContributionName:      req.Name,
		WaqafContributionAmountSen: req.AmountSen,
		WaqafContributionStatus:    "pending",
		WaqafContributionOrderID:   fmt.Sprintf("WAQAF-%d", time.Now().UnixNano()),
	}
	if err := h.DB.Create(&contrib).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan sumbangan")
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  contrib.WaqafContributionOrderID,
			GrossAmt: contrib.WaqafContributionAmountSen / 100,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.Name,
			Email: req.Email,
		},
	}
	resp, err := paymentService.SnapClient.CreateTransaction(snapReq)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat token pembayaran")
	}

	contrib.WaqafContributionSnapToken = resp.Token
	if err := h.DB.Save(&contrib).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan token pembayaran")
	}

	return helper.JsonCreated(c, "Sumbangan berhasil dibuat. Silakan lanjutkan pembayaran.", fiber.Map{
		"order_id":   contrib.WaqafContributionOrderID,
		"snap_token": resp.Token,
	})
}

/* ======================= WEBHOOK ======================= */
// POST /api/public/waqaf/notification
func (h *WaqafController) Webhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := sonic.Unmarshal(c.Body(), &body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := waqafService.HandleWaqafStatusWebhook(h.DB, body); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", nil)
}

/* ======================= CERTIFICATE ======================= */
// GET /api/public/waqaf/contributions/:order_id/certificate — sijil PDF,
// hanya untuk sumbangan yang sudah paid.
func (h *WaqafController) Certificate(c *fiber.Ctx) error {
	var contrib model.WaqafContributionModel
	if err := h.DB.
		Preload("Asset").
		Where("waqaf_contribution_order_id = ?", c.Params("order_id")).
		First(&contrib).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sumbangan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if contrib.WaqafContributionStatus != "paid" {
		return fiber.NewError(fiber.StatusConflict, "Sijil hanya tersedia untuk sumbangan yang sudah dibayar")
	}

	assetName := ""
	if contrib.Asset != nil {
		assetName = contrib.Asset.WaqafAssetName
	}
	pdfBytes, err := waqafService.GenerateCertificatePDF(contrib, assetName, c.Query("school_name", "Sekolah"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat sijil")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sijil-waqaf.pdf"`)
	return c.Send(pdfBytes)
}

/* ======================= ADMIN LIST ======================= */
// GET /api/a/waqaf-contributions?asset_id=&status=
func (h *WaqafController) ListContributions(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.WaqafContributionModel{}).
		Where("waqaf_contribution_school_id = ?", schoolID)
	if v := c.Query("asset_id"); v != "" {
		base = base.Where("waqaf_contribution_asset_id = ?", v)
	}
	if v := c.Query("status"); v != "" {
		base = base.Where("waqaf_contribution_status = ?", v)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.WaqafContributionModel
	if err := base.
		Order("waqaf_contribution_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
