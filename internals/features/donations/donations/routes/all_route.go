// internals/features/donations/donations/routes/all_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationCtl "sekolahku_backend/internals/features/donations/donations/controller"
)

// DonationPublicRoutes: checkout guest + webhook midtrans.
func DonationPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := donationCtl.NewDonationController(db)

	don := r.Group("/donations")
	don.Post("/", ctl.CreateDonation)
	don.Post("/notification", ctl.Webhook)
}

// DonationUserRoutes: riwayat donasi user login.
func DonationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := donationCtl.NewDonationController(db)

	r.Get("/donations", ctl.MyDonations)
}

// DonationAdminRoutes: listing untuk donation_admin.
func DonationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := donationCtl.NewDonationController(db)

	r.Get("/donations", ctl.List)
}
