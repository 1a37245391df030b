package kafka

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Ms-Rodri1k/Projeto-integrador/internal/shop"
)

const eventVersion = 1

// Publisher is the part of Producer the order publisher needs.
type Publisher interface {
	Publish(key, value []byte, headers ...kafka.Header)
}

// OrderPublisher turns storefront order changes into envelopes on the orders topic.
type OrderPublisher struct {
	Producer Publisher
	Service  string
	Now      func() time.Time
}

func (p *OrderPublisher) OrderConfirmed(o shop.Order) {
	p.publish(o.ID, shop.EventOrderConfirmed, shop.OrderConfirmedPayload{
		OrderID: o.ID,
		Payment: o.Payment,
		Items:   o.Items,
		Total:   o.Total,
		Address: o.Address,
	})
}

func (p *OrderPublisher) OrderStatusAdvanced(o shop.Order, from shop.Status) {
	p.publish(o.ID, shop.EventOrderStatusAdvanced, shop.OrderStatusAdvancedPayload{
		OrderID: o.ID,
		From:    from,
		To:      o.Status,
	})
}

func (p *OrderPublisher) publish(orderID, eventType string, payload any) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	ev := shop.Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  eventVersion,
		OccurredAt:    now().UTC(),
		Producer:      p.Service,
		CorrelationID: orderID,
		Payload:       MustMarshal(payload),
	}
	p.Producer.Publish(shop.PartitionKey(orderID), MustMarshal(ev),
		kafka.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafka.Header{Key: "x-event-version", Value: []byte(strconv.Itoa(eventVersion))},
	)
}
