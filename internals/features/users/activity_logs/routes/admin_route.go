// internals/features/users/activity_logs/routes/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	logCtl "sekolahku_backend/internals/features/users/activity_logs/controller"
)

func ActivityLogAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := logCtl.NewActivityLogController(db)

	logs := r.Group("/activity-logs")
	logs.Get("/", ctl.List)
}
