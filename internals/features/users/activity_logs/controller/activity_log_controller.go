// file: internals/features/users/activity_logs/controller/activity_log_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/users/activity_logs/model"
	helper "sekolahku_backend/internals/helpers"
)

type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

/* ======================== LIST ======================== */
// GET /api/a/activity-logs?action=&entity_type=&user_id=
func (h *ActivityLogController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 50, 200)

	base := h.DB.Model(&model.ActivityLogModel{}).
		Where("activity_log_school_id = ?", schoolID)
	if v := c.Query("action"); v != "" {
		base = base.Where("activity_log_action = ?", v)
	}
	if v := c.Query("entity_type"); v != "" {
		base = base.Where("activity_log_entity_type = ?", v)
	}
	if v := c.Query("user_id"); v != "" {
		base = base.Where("activity_log_user_id = ?", v)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ActivityLogModel
	if err := base.
		Order("activity_log_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
