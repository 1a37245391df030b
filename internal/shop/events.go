package shop

import (
	"encoding/json"
	"time"
)

const (
	EventOrderConfirmed      = "OrderConfirmed"
	EventOrderStatusAdvanced = "OrderStatusAdvanced"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order id
	Payload       json.RawMessage `json:"payload"`
}

type OrderConfirmedPayload struct {
	OrderID string     `json:"order_id"`
	Payment Payment    `json:"payment"`
	Items   []CartItem `json:"items"`
	Total   Money      `json:"total"`
	Address string     `json:"address"`
}

type OrderStatusAdvancedPayload struct {
	OrderID string `json:"order_id"`
	From    Status `json:"from"`
	To      Status `json:"to"`
}
