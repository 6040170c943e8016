// internals/features/finance/fees/routes/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeCtl "sekolahku_backend/internals/features/finance/fees/controller"
)

// Dipasang di bawah /api/u (role student).
func FeeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := feeCtl.NewStudentFeeController(db)

	fees := r.Group("/fees")
	fees.Get("/current", ctl.Current)
	fees.Get("/history", ctl.History)
	fees.Get("/waivers", ctl.MyWaivers)
}
