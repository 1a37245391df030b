package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ms-Rodri1k/Projeto-integrador/internal/shop"
)

type sent struct {
	key     string
	value   []byte
	headers map[string]string
}

type fakePublisher struct{ msgs []sent }

func (f *fakePublisher) Publish(key, value []byte, headers ...kafka.Header) {
	h := map[string]string{}
	for _, hd := range headers {
		h[hd.Key] = string(hd.Value)
	}
	f.msgs = append(f.msgs, sent{key: string(key), value: value, headers: h})
}

func TestOrderPublisher_OrderConfirmed(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("BRT", -3*3600))
	fake := &fakePublisher{}
	p := &OrderPublisher{Producer: fake, Service: "storefront", Now: func() time.Time { return now }}

	order := shop.Order{
		ID:      "PD1",
		Status:  shop.StatusReceived,
		Payment: shop.PaymentPix,
		Items:   []shop.CartItem{{ID: "tilapia", Name: "Tilápia", Price: shop.NewMoney("29.9"), Qty: 2}},
		Total:   shop.NewMoney("59.8"),
		Address: "Rua A",
	}
	p.OrderConfirmed(order)

	require.Len(t, fake.msgs, 1)
	m := fake.msgs[0]
	assert.Equal(t, "PD1", m.key)
	assert.Equal(t, shop.EventOrderConfirmed, m.headers["x-event-type"])
	assert.Equal(t, "1", m.headers["x-event-version"])

	var env shop.Envelope
	require.NoError(t, json.Unmarshal(m.value, &env))
	assert.NotEmpty(t, env.EventID)
	assert.Equal(t, "storefront", env.Producer)
	assert.Equal(t, "PD1", env.CorrelationID)
	assert.True(t, env.OccurredAt.Equal(now))

	payload, err := UnwrapPayload[shop.OrderConfirmedPayload](env.Payload)
	require.NoError(t, err)
	assert.Equal(t, "Rua A", payload.Address)
	assert.True(t, order.Total.Equal(payload.Total.Decimal))
	require.Len(t, payload.Items, 1)
	assert.Equal(t, 2, payload.Items[0].Qty)
}

func TestOrderPublisher_StatusAdvancedAndUniqueIDs(t *testing.T) {
	fake := &fakePublisher{}
	p := &OrderPublisher{Producer: fake, Service: "storefront"}

	o := shop.Order{ID: "PD2", Status: shop.StatusPreparing}
	p.OrderStatusAdvanced(o, shop.StatusReceived)
	o.Status = shop.StatusOutForDelivery
	p.OrderStatusAdvanced(o, shop.StatusPreparing)

	require.Len(t, fake.msgs, 2)
	var ids []string
	for _, m := range fake.msgs {
		var env shop.Envelope
		require.NoError(t, json.Unmarshal(m.value, &env))
		assert.Equal(t, shop.EventOrderStatusAdvanced, env.EventType)
		ids = append(ids, env.EventID)
	}
	assert.NotEqual(t, ids[0], ids[1])

	var env shop.Envelope
	require.NoError(t, json.Unmarshal(fake.msgs[1].value, &env))
	payload, err := UnwrapPayload[shop.OrderStatusAdvancedPayload](env.Payload)
	require.NoError(t, err)
	assert.Equal(t, shop.OrderStatusAdvancedPayload{OrderID: "PD2", From: shop.StatusPreparing, To: shop.StatusOutForDelivery}, payload)
}

func TestProducer_PublishDropsWhenInboxFull(t *testing.T) {
	p := NewProducer([]string{"127.0.0.1:1"}, "t", 1, nil)

	assert.NotPanics(t, func() {
		p.Publish([]byte("a"), []byte("1"))
		p.Publish([]byte("b"), []byte("2"))
	})
	assert.Len(t, p.inbox, 1)
}

func TestProducer_PublishAfterCloseIsDropped(t *testing.T) {
	p := NewProducer([]string{"127.0.0.1:1"}, "t", 4, nil)
	p.Close()

	assert.NotPanics(t, func() {
		p.Publish([]byte("late"), []byte("1"))
		p.Close()
	})
	_, open := <-p.inbox
	assert.False(t, open)
}
