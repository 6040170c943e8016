package seeds

import (
	chatbot "sekolahku_backend/internals/seeds/chatbot"
	fees "sekolahku_backend/internals/seeds/fees"
	students "sekolahku_backend/internals/seeds/students"
	users "sekolahku_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data awal untuk lingkungan dev/demo. Semua seed
// idempotent: baris yang sudah ada dilewati, jadi aman dijalankan berulang.
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	students.SeedStudentsFromJSON(db, "internals/seeds/students/data_students.json")
	fees.SeedFeeCategoriesFromJSON(db, "internals/seeds/fees/data_fee_categories.json")
	chatbot.SeedChatbotEntriesFromJSON(db, "internals/seeds/chatbot/data_chatbot_entries.json")
}
