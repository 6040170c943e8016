// internals/features/finance/fees/routes/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeCtl "sekolahku_backend/internals/features/finance/fees/controller"
)

// Dipasang di bawah /api/a (role staf yuran — lihat route/details).
func FeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	catCtl := feeCtl.NewFeeCategoryController(db)
	structCtl := feeCtl.NewFeeStructureController(db)
	obCtl := feeCtl.NewFeeObligationController(db)
	waiverCtl := feeCtl.NewFeeWaiverController(db)
	indCtl := feeCtl.NewIndividualFeeController(db)

	cat := r.Group("/fee-categories")
	cat.Post("/", catCtl.Create)
	cat.Get("/", catCtl.List)
	cat.Put("/:id", catCtl.Update)
	cat.Delete("/:id", catCtl.Delete)

	fs := r.Group("/fee-structures")
	fs.Post("/", structCtl.Create)
	fs.Get("/", structCtl.List)
	fs.Get("/:id", structCtl.GetByID)
	fs.Put("/:id", structCtl.Update)
	fs.Delete("/:id", structCtl.Delete)
	fs.Post("/:id/generate-obligations", structCtl.GenerateObligations)

	ob := r.Group("/fee-obligations")
	ob.Post("/", obCtl.Create)
	ob.Get("/", obCtl.List)
	ob.Get("/:id", obCtl.GetByID)
	ob.Patch("/:id", obCtl.Update)

	wv := r.Group("/fee-waivers")
	wv.Post("/", waiverCtl.Create)
	wv.Get("/", waiverCtl.List)
	wv.Put("/:id", waiverCtl.Update)
	wv.Post("/:id/approve", waiverCtl.Approve)
	wv.Post("/:id/reject", waiverCtl.Reject)
	wv.Delete("/:id", waiverCtl.Delete)

	ind := r.Group("/individual-fees")
	ind.Post("/", indCtl.Create)
	ind.Get("/", indCtl.List)
	ind.Put("/:id", indCtl.Update)
	ind.Post("/:id/mark-paid", indCtl.MarkPaid)
	ind.Delete("/:id", indCtl.Delete)
}
