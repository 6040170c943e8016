// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	routeDetails "sekolahku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	// Tanpa token: auth, chatbot, donasi/waqaf guest, webhook gateway.
	log.Println("[INFO] Setting up PUBLIC group...")
	routeDetails.AuthRoutes(app, db)
	routeDetails.PublicRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	// /api/u — semua role login (pelajar memakai ini).
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	routeDetails.UserRoutes(private, db)

	// ===================== ADMIN =====================
	// /api/a — gerbang role per modul ada di masing-masing details.
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))
	routeDetails.AdminRoutes(admin, db)

	// ===================== UPTIME =====================
	app.Get("/api/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"uptime": time.Since(startTime).String(),
		})
	})
}
