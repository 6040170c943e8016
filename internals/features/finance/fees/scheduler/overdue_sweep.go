// file: internals/features/finance/fees/scheduler/overdue_sweep.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	service "sekolahku_backend/internals/features/finance/fees/service"
)

// StartOverdueSweepScheduler menjalankan sweep pending→overdue secara
// berkala. Transisinya murni & idempotent, jadi aman diulang kapan pun.
func StartOverdueSweepScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		// jalankan sekali saat boot supaya agregat langsung benar
		runSweep(db)
		for range ticker.C {
			runSweep(db)
		}
	}()
	log.Println("⏱ Overdue sweep scheduler aktif (interval 1 jam)")
}

func runSweep(db *gorm.DB) {
	n, err := service.SweepOverdue(db, time.Now())
	if err != nil {
		log.Printf("[ERROR] Overdue sweep gagal: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[INFO] Overdue sweep: %d obligation ditandai overdue", n)
	}
}
