// internals/features/reports/exports/routes/all_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportCtl "sekolahku_backend/internals/features/reports/exports/controller"
)

// ReportUserRoutes: resit pembayaran milik sendiri.
func ReportUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportCtl.NewReportController(db)

	rep := r.Group("/reports")
	rep.Get("/payments/:id/receipt", ctl.PaymentReceipt)
}

// ReportAdminRoutes: surat peringatan + laporan Excel per level.
func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportCtl.NewReportController(db)

	rep := r.Group("/reports")
	rep.Get("/payments/:id/receipt", ctl.PaymentReceipt)
	rep.Get("/obligations/:id/reminder", ctl.OverdueReminder)
	rep.Get("/fees/level", ctl.LevelFeeReport)
}
