// file: internals/features/home/chatbot/controller/chatbot_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/features/home/chatbot/dto"
	"sekolahku_backend/internals/features/home/chatbot/model"
	"sekolahku_backend/internals/features/home/chatbot/service"
	helper "sekolahku_backend/internals/helpers"
)

type ChatbotController struct {
	DB *gorm.DB
}

func NewChatbotController(db *gorm.DB) *ChatbotController {
	return &ChatbotController{DB: db}
}

/* ======================= MESSAGE ======================= */
// POST /api/public/chatbot/message — satu loop dispatch atas rantai provider;
// provider terakhir selalu menjawab.
func (h *ChatbotController) Message(c *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	ctx := c.UserContext()
	sess := service.LoadSession(ctx, configs.RedisClient, sessionID)

	dispatcher := service.NewDispatcher(
		&service.SessionResponder{DB: h.DB, RDB: configs.RedisClient},
		&service.KeywordResponder{DB: h.DB, RDB: configs.RedisClient, SchoolID: req.SchoolID},
		service.FallbackResponder{},
	)
	reply := dispatcher.Dispatch(ctx, sess, req.Message)

	return helper.JsonOK(c, "OK", fiber.Map{
		"session_id":  sessionID,
		"message":     reply.Message,
		"suggestions": reply.Suggestions,
		"type":        reply.Type,
	})
}

/* ======================= ADMIN CRUD ======================= */
// POST /api/a/chatbot-entries
func (h *ChatbotController) CreateEntry(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateChatbotEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat entri chatbot")
	}
	return helper.JsonCreated(c, "Entri chatbot berhasil dibuat", m)
}

// GET /api/a/chatbot-entries?topic=
func (h *ChatbotController) ListEntries(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 50, 200)

	base := h.DB.Model(&model.ChatbotEntryModel{}).
		Where("chatbot_entry_school_id = ?", schoolID)
	if v := c.Query("topic"); v != "" {
		base = base.Where("chatbot_entry_topic = ?", v)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ChatbotEntryModel
	if err := base.
		Order("chatbot_entry_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PUT /api/a/chatbot-entries/:id
func (h *ChatbotController) UpdateEntry(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.ChatbotEntryModel
	if err := h.DB.
		Where("chatbot_entry_id = ? AND chatbot_entry_school_id = ?", c.Params("id"), schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateChatbotEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update entri chatbot")
	}
	return helper.JsonUpdated(c, "Entri chatbot berhasil diupdate", row)
}

// DELETE /api/a/chatbot-entries/:id (soft delete)
func (h *ChatbotController) DeleteEntry(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("chatbot_entry_id = ? AND chatbot_entry_school_id = ?", c.Params("id"), schoolID).
		Delete(&model.ChatbotEntryModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Entri chatbot berhasil dihapus", fiber.Map{"chatbot_entry_id": c.Params("id")})
}
