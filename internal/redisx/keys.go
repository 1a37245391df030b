package redisx

import "time"

const (
	// Latest known order status: order_status:{order_id} -> {"status": "...", "updated_at": "..."}
	KeyOrderStatus = "order_status:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLStatusCache = 24 * time.Hour
	TTLDedup       = 48 * time.Hour
)
