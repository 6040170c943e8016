// file: internals/route/details/public_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationRoute "sekolahku_backend/internals/features/donations/donations/routes"
	paymentRoute "sekolahku_backend/internals/features/finance/payments/routes"
	chatbotRoute "sekolahku_backend/internals/features/home/chatbot/routes"
	waqafRoute "sekolahku_backend/internals/features/waqaf/waqaf/routes"
	"sekolahku_backend/internals/middlewares"
)

// PublicRoutes: endpoint tanpa token — chatbot, donasi/waqaf guest,
// dan webhook Midtrans.
func PublicRoutes(app *fiber.App, db *gorm.DB) {
	public := app.Group("/api/public")

	public.Use("/chatbot", middlewares.ChatbotRateLimiter())
	chatbotRoute.ChatbotPublicRoutes(public, db)

	donationRoute.DonationPublicRoutes(public, db)
	waqafRoute.WaqafPublicRoutes(public, db)

	// webhook yuran dipasang di /api/payments/notification (bukan /api/public)
	// supaya kompatibel dengan konfigurasi notifikasi gateway yang sudah ada
	api := app.Group("/api")
	paymentRoute.PaymentPublicRoutes(api, db)
}
