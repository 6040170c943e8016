// file: internals/features/finance/payments/model/gateway_event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentGatewayEventModel: jejak mentah setiap notifikasi gateway, disimpan
// sebelum diproses supaya webhook bisa di-replay saat debugging.
type PaymentGatewayEventModel struct {
	GatewayEventID uuid.UUID `gorm:"column:gateway_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gateway_event_id"`

	GatewayEventOrderID string         `gorm:"column:gateway_event_order_id;type:varchar(64);index" json:"gateway_event_order_id"`
	GatewayEventStatus  string         `gorm:"column:gateway_event_status;type:varchar(32)" json:"gateway_event_status"`
	GatewayEventPayload datatypes.JSON `gorm:"column:gateway_event_payload;type:jsonb" json:"gateway_event_payload"`

	GatewayEventCreatedAt time.Time `gorm:"column:gateway_event_created_at;autoCreateTime" json:"gateway_event_created_at"`
}

func (PaymentGatewayEventModel) TableName() string { return "payment_gateway_events" }
