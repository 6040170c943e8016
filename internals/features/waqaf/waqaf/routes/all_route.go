// internals/features/waqaf/waqaf/routes/all_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	waqafCtl "sekolahku_backend/internals/features/waqaf/waqaf/controller"
)

// WaqafPublicRoutes: daftar aset open, sumbangan guest, webhook, sijil.
func WaqafPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := waqafCtl.NewWaqafController(db)

	r.Get("/waqaf-assets", ctl.ListOpenAssets)

	wq := r.Group("/waqaf")
	wq.Post("/contribute", ctl.Contribute)
	wq.Post("/notification", ctl.Webhook)
	wq.Get("/contributions/:order_id/certificate", ctl.Certificate)
}

// WaqafAdminRoutes: CRUD aset + listing sumbangan untuk waqaf_admin.
func WaqafAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := waqafCtl.NewWaqafController(db)

	assets := r.Group("/waqaf-assets")
	assets.Post("/", ctl.CreateAsset)
	assets.Get("/", ctl.ListAssets)
	assets.Put("/:id", ctl.UpdateAsset)
	assets.Delete("/:id", ctl.DeleteAsset)

	r.Get("/waqaf-contributions", ctl.ListContributions)
}
