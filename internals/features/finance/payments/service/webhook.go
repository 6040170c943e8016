package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	feeModel "sekolahku_backend/internals/features/finance/fees/model"
	"sekolahku_backend/internals/features/finance/payments/model"
)

// HandlePaymentWebhook dipanggil saat menerima notifikasi dari Midtrans.
// settlement/capture menandai payment completed DAN obligation paid dalam
// SATU transaksi — ini satu-satunya jalur pending/overdue → paid.
func HandlePaymentWebhook(db *gorm.DB, body map[string]interface{}, raw []byte) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	// Jejak mentah dulu, apapun hasil pemrosesan
	event := model.PaymentGatewayEventModel{
		GatewayEventOrderID: orderID,
		GatewayEventStatus:  status,
		GatewayEventPayload: datatypes.JSON(raw),
	}
	if err := db.Create(&event).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan gateway event:", err)
	}

	var payment model.PaymentModel
	if err := db.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		log.Println("[ERROR] Payment tidak ditemukan:", err)
		return fmt.Errorf("payment with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		if payment.PaymentStatus == model.PaymentStatusCompleted {
			// notifikasi ulang midtrans — idempoten
			return nil
		}
		return SettlePayment(db, &payment)

	case "expire", "cancel", "deny":
		payment.PaymentStatus = model.PaymentStatusFailed
		if err := db.Save(&payment).Error; err != nil {
			log.Println("[ERROR] Gagal menyimpan status payment:", err)
			return err
		}

	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	return nil
}

// SettlePayment: payment → completed dan obligation → paid, satu transaksi.
func SettlePayment(db *gorm.DB, payment *model.PaymentModel) error {
	now := time.Now()
	return db.Transaction(func(tx *gorm.DB) error {
		payment.PaymentStatus = model.PaymentStatusCompleted
		payment.PaymentPaidAt = &now
		if err := tx.Save(payment).Error; err != nil {
			return err
		}

		res := tx.Model(&feeModel.FeeObligationModel{}).
			Where("fee_obligation_id = ? AND fee_obligation_school_id = ?", payment.PaymentObligationID, payment.PaymentSchoolID).
			Where("fee_obligation_status <> ?", feeModel.FeeObligationStatusPaid).
			Updates(map[string]interface{}{
				"fee_obligation_status":  feeModel.FeeObligationStatusPaid,
				"fee_obligation_paid_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// sudah paid oleh jalur lain — biarkan, payment tetap tercatat
			log.Println("[INFO] Obligation sudah paid sebelumnya:", payment.PaymentObligationID)
		}
		return nil
	})
}
