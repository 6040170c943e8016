// internals/features/finance/payments/routes/all_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	payCtl "sekolahku_backend/internals/features/finance/payments/controller"
)

// PaymentPublicRoutes: webhook midtrans, tanpa token.
func PaymentPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := payCtl.NewPaymentController(db)

	r.Post("/payments/notification", ctl.Webhook)
}

// PaymentUserRoutes: pelajar checkout + riwayat sendiri.
func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := payCtl.NewPaymentController(db)

	pay := r.Group("/payments")
	pay.Post("/checkout", ctl.Checkout)
	pay.Get("/", ctl.MyPayments)
}

// PaymentAdminRoutes: listing + pencatatan manual.
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := payCtl.NewPaymentController(db)

	pay := r.Group("/payments")
	pay.Get("/", ctl.List)
	pay.Post("/record", ctl.RecordCash)
}
