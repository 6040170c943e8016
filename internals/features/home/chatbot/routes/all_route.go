// internals/features/home/chatbot/routes/all_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chatbotCtl "sekolahku_backend/internals/features/home/chatbot/controller"
)

// ChatbotPublicRoutes: endpoint percakapan, tanpa token.
func ChatbotPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := chatbotCtl.NewChatbotController(db)

	r.Post("/chatbot/message", ctl.Message)
}

// ChatbotAdminRoutes: CRUD entri jawaban.
func ChatbotAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := chatbotCtl.NewChatbotController(db)

	entries := r.Group("/chatbot-entries")
	entries.Post("/", ctl.CreateEntry)
	entries.Get("/", ctl.ListEntries)
	entries.Put("/:id", ctl.UpdateEntry)
	entries.Delete("/:id", ctl.DeleteEntry)
}
