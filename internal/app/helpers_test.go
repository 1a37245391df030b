package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Ms-Rodri1k/Projeto-integrador/internal/shop"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/store"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/view"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

// countingBackend wraps Memory and counts writes.
type countingBackend struct {
	*store.Memory
	mu     sync.Mutex
	writes map[string]int
}

func newCountingBackend() *countingBackend {
	return &countingBackend{Memory: store.NewMemory(), writes: map[string]int{}}
}

func (c *countingBackend) Set(ctx context.Context, key string, value []byte) error {
	c.mu.Lock()
	c.writes[key]++
	c.mu.Unlock()
	return c.Memory.Set(ctx, key, value)
}

func (c *countingBackend) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.writes {
		n += v
	}
	return n
}

type recordedEvents struct {
	confirmed []shop.Order
	advanced  []shop.Status
}

func (r *recordedEvents) OrderConfirmed(o shop.Order) { r.confirmed = append(r.confirmed, o) }

func (r *recordedEvents) OrderStatusAdvanced(o shop.Order, from shop.Status) {
	r.advanced = append(r.advanced, from, o.Status)
}

type harness struct {
	sess    *Session
	backend *countingBackend
	store   *store.Store
	events  *recordedEvents
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessOn(t, newCountingBackend())
}

func newHarnessOn(t *testing.T, b *countingBackend) *harness {
	t.Helper()
	st := store.New(b)
	ev := &recordedEvents{}
	sess := NewSession("s1", Options{
		Store:  st,
		Events: ev,
		Now:    func() time.Time { return fixedNow },
		Pick:   func(int) int { return 1 },
	})
	return &harness{sess: sess, backend: b, store: st, events: ev}
}

// marker finds the bound id of the first marker of kind (and value, when given)
// in the current frame.
func (h *harness) marker(t *testing.T, kind, value string) string {
	t.Helper()
	for _, m := range view.Markers(h.sess.Frame().Root) {
		if m.Kind == kind && (value == "" || m.Value == value) {
			require.NotEmpty(t, m.ID, "marker %s not bound", kind)
			return m.ID
		}
	}
	t.Fatalf("no %s marker for %q on route %s", kind, value, h.sess.Route())
	return ""
}

func (h *harness) fire(t *testing.T, kind, value string, fields map[string]string) Outcome {
	t.Helper()
	out := h.sess.Dispatch(h.marker(t, kind, value), Event{Fields: fields})
	require.True(t, out.Handled)
	return out
}

func (h *harness) login(t *testing.T) {
	t.Helper()
	h.sess.Navigate("login")
	h.fire(t, MarkProfileSubmit, "", map[string]string{
		"name": "Ana Souza", "phone": "9", "address": "Rua B", "password": "x",
	})
}

func (h *harness) storedCart(t *testing.T) shop.Cart {
	t.Helper()
	r := store.Lookup[shop.Cart](h.store, store.KeyCart)
	require.True(t, r.Found, "cart not persisted: %v", r.Err)
	return r.Value
}

func (h *harness) text(id string) string {
	return view.TextContent(view.FindID(h.sess.Frame().Root, id))
}

func findID(h *harness, id string) *view.Node {
	return view.FindID(h.sess.Frame().Root, id)
}

// textOfClass returns the text of the first node carrying class.
func textOfClass(h *harness, class string) string {
	var found *view.Node
	view.Walk(h.sess.Frame().Root, func(n *view.Node) {
		if v, ok := n.Get("class"); ok && v == class && found == nil {
			found = n
		}
	})
	return view.TextContent(found)
}

func disabled(n *view.Node) bool {
	_, ok := n.Get("disabled")
	return ok
}
