// file: internals/route/details/user_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationRoute "sekolahku_backend/internals/features/donations/donations/routes"
	feeRoute "sekolahku_backend/internals/features/finance/fees/routes"
	paymentRoute "sekolahku_backend/internals/features/finance/payments/routes"
	reportRoute "sekolahku_backend/internals/features/reports/exports/routes"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
)

// UserRoutes: /api/u — semua user login; data yang tampil dibatasi
// VisibilityFilter, bukan route.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AuthUserRoutes(r, db)
	feeRoute.FeeUserRoutes(r, db)
	paymentRoute.PaymentUserRoutes(r, db)
	donationRoute.DonationUserRoutes(r, db)
	reportRoute.ReportUserRoutes(r, db)
}
