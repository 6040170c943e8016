// file: internals/route/details/auth_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "sekolahku_backend/internals/features/users/auth/route"
	"sekolahku_backend/internals/middlewares"
)

// AuthRoutes: register/login publik dengan limiter ketat.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	auth := app.Group("/api/auth")
	auth.Use("/login", middlewares.LoginRateLimiter())
	auth.Use("/register", middlewares.RegisterRateLimiter())

	authRoute.AuthPublicRoutes(auth, db)
}
