// internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "sekolahku_backend/internals/features/users/auth/controller"
)

// AuthPublicRoutes: register/login tanpa token, di-mount di /api/auth.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	r.Post("/register", ctl.Register)
	r.Post("/login", ctl.Login)
}

// AuthUserRoutes: butuh token, di-mount di /api/u.
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	r.Get("/me", ctl.Me)
	r.Post("/logout", ctl.Logout)
}
