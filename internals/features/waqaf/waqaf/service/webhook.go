package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"sekolahku_backend/internals/features/waqaf/waqaf/model"
)

// HandleWaqafStatusWebhook: notifikasi Midtrans untuk sumbangan waqaf.
// settlement menambah collected aset dan menandai fulfilled saat target
// tercapai — dalam satu transaksi.
func HandleWaqafStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var contrib model.WaqafContributionModel
	if err := db.Where("waqaf_contribution_order_id = ?", orderID).First(&contrib).Error; err != nil {
		log.Println("[ERROR] Sumbangan waqaf tidak ditemukan:", err)
		return fmt.Errorf("waqaf contribution with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		if contrib.WaqafContributionStatus == "paid" {
			return nil // notifikasi ulang — idempoten
		}
		now := time.Now()
		return db.Transaction(func(tx *gorm.DB) error {
			contrib.WaqafContributionStatus = "paid"
			contrib.WaqafContributionPaidAt = &now
			if err := tx.Save(&contrib).Error; err != nil {
				return err
			}

			var asset model.WaqafAssetModel
			if err := tx.
				Where("waqaf_asset_id = ?", contrib.WaqafContributionAssetID).
				First(&asset).Error; err != nil {
				return err
			}
			asset.WaqafAssetCollectedSen += contrib.WaqafContributionAmountSen
			if asset.WaqafAssetCollectedSen >= asset.WaqafAssetTargetSen {
				asset.WaqafAssetStatus = model.WaqafAssetStatusFulfilled
			}
			return tx.Save(&asset).Error
		})

	case "expire":
		contrib.WaqafContributionStatus = "expired"
	case "cancel", "deny":
		contrib.WaqafContributionStatus = "canceled"
	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	if err := db.Save(&contrib).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status sumbangan:", err)
		return err
	}
	return nil
}
