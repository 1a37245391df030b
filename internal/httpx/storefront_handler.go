package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Ms-Rodri1k/Projeto-integrador/internal/app"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/redisx"
)

const SessionCookie = "pd_session"

// StatusReader is the Redis read the order status endpoint needs.
type StatusReader interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type StorefrontHandler struct {
	Sessions  *Sessions
	Status    StatusReader // optional
	StaticDir string       // optional
	Log       *zap.Logger
	Now       func() time.Time
}

func (h *StorefrontHandler) Register(r chi.Router) {
	if h.StaticDir != "" {
		fs := http.FileServer(http.Dir(h.StaticDir))
		r.Handle("/static/*", http.StripPrefix("/static/", fs))
		r.Handle("/images/*", fs)
	}
	r.Get("/api/frame", h.frame)
	r.Get("/api/orders/{id}/status", h.orderStatus)
	r.Post("/events/{marker}", h.event)
	r.Get("/", h.page)
	// route names only; anything else (favicon.ico, robots.txt) must not render
	r.Get("/{route:[a-z]+}", h.page)
}

func (h *StorefrontHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *StorefrontHandler) log() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}

// session resolves the browser's session, issuing a new id when the cookie is
// missing or malformed.
func (h *StorefrontHandler) session(w http.ResponseWriter, r *http.Request) *app.Session {
	id := ""
	if c, err := r.Cookie(SessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			id = c.Value
		}
	}
	if id == "" {
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return h.Sessions.Open(id)
}

func (h *StorefrontHandler) page(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	f := sess.Navigate(chi.URLParam(r, "route"))
	h.render(w, http.StatusOK, f)
}

func (h *StorefrontHandler) render(w http.ResponseWriter, code int, f app.Frame) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := writePage(w, f, h.now().Year()); err != nil {
		h.log().Warn("write page", zap.Error(err))
	}
}

// event runs the handler bound to a marker of the current frame, then sends
// the browser to the session's route. A frame carrying a notice is served
// directly so the notice is seen exactly once.
func (h *StorefrontHandler) event(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	fields := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		fields[k] = r.PostForm.Get(k)
	}

	marker := chi.URLParam(r, "marker")
	out := sess.Dispatch(marker, app.Event{Fields: fields})
	if !out.Handled {
		h.log().Debug("stale or unknown marker", zap.String("session", sess.ID()), zap.String("marker", marker))
	}
	if out.Rendered && out.Frame.Notice != nil {
		h.render(w, http.StatusOK, out.Frame)
		return
	}
	http.Redirect(w, r, "/"+sess.Route(), http.StatusSeeOther)
}

func (h *StorefrontHandler) frame(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	f := sess.Frame()
	if f.Root == nil {
		f = sess.Navigate(sess.Route())
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *StorefrontHandler) orderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing id"})
		return
	}

	// only the session that placed the order may see it
	snap := h.session(w, r).Snapshot()
	if snap.Order == nil || snap.Order.ID != orderID {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	// tracker cache first, then the session's own copy
	if h.Status != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		key := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
		if s, err := h.Status.Get(ctx, key).Result(); err == nil && s != "" {
			writeJSON(w, http.StatusOK, json.RawMessage(s))
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": snap.Order.Status})
}
