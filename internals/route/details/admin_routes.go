// file: internals/route/details/admin_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	donationRoute "sekolahku_backend/internals/features/donations/donations/routes"
	feeRoute "sekolahku_backend/internals/features/finance/fees/routes"
	paymentRoute "sekolahku_backend/internals/features/finance/payments/routes"
	chatbotRoute "sekolahku_backend/internals/features/home/chatbot/routes"
	reportRoute "sekolahku_backend/internals/features/reports/exports/routes"
	studentRoute "sekolahku_backend/internals/features/school/students/routes"
	activityRoute "sekolahku_backend/internals/features/users/activity_logs/routes"
	waqafRoute "sekolahku_backend/internals/features/waqaf/waqaf/routes"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

// AdminRoutes: /api/a — gerbang role kasar per modul; pembatasan baris
// (level admin, tenant) tetap urusan VisibilityFilter di controller.
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	// ---------- Yuran (fees staff, termasuk level admin) ----------
	fees := r.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorFeesStaff("yuran"), constants.FeesStaff...),
	)
	studentRoute.StudentAdminRoutes(fees, db)
	feeRoute.FeeAdminRoutes(fees, db)
	paymentRoute.PaymentAdminRoutes(fees, db)
	reportRoute.ReportAdminRoutes(fees, db)

	// ---------- Donasi ----------
	donations := r.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("donasi"), constants.DonationStaff...),
	)
	donationRoute.DonationAdminRoutes(donations, db)

	// ---------- Waqaf ----------
	waqaf := r.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("waqaf"), constants.WaqafStaff...),
	)
	waqafRoute.WaqafAdminRoutes(waqaf, db)

	// ---------- Chatbot & audit (admin sekolah) ----------
	adminOnly := r.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("administrasi"), constants.AdminOnly...),
	)
	chatbotRoute.ChatbotAdminRoutes(adminOnly, db)
	activityRoute.ActivityLogAdminRoutes(adminOnly, db)
}
