// internals/features/school/students/routes/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "sekolahku_backend/internals/features/school/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	st := r.Group("/students")
	st.Post("/", ctl.Create)
	st.Get("/", ctl.List)
	st.Get("/:id", ctl.GetByID)
	st.Put("/:id", ctl.Update)
	st.Post("/:id/deactivate", ctl.Deactivate)
	st.Delete("/:id", ctl.Delete)
}
