package public

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/geo"
	"github.com/platanus-hack/platanus-hack-25-team-41/pkg/e"
)

// User-facing messages stay in Spanish, matching the reporting flow the
// site and the Telegram bot present to reporters.
const (
	msgNoDog           = "Las imágenes no parecen mostrar un perro. Por favor, sube imágenes claras de un perro."
	msgEmptySearch     = "Debes proporcionar al menos una foto o descripción"
	msgReunionReceived = "Tu reporte ha sido enviado. Lo revisaremos pronto y te contactaremos."
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrNoDogDetected):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": msgNoDog})
	case errors.Is(err, e.ErrEmptySearch):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": msgEmptySearch})
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidCoordinates):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	case errors.Is(err, e.ErrConflict):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "conflict"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseBounds picks up the viewport only when all four corners arrive.
func parseBounds(qs url.Values) (*geo.Bounds, bool) {
	minLat, ok1 := parseFloat(qs.Get("min_lat"))
	maxLat, ok2 := parseFloat(qs.Get("max_lat"))
	minLng, ok3 := parseFloat(qs.Get("min_lng"))
	maxLng, ok4 := parseFloat(qs.Get("max_lng"))
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, false
	}
	return &geo.Bounds{
		MinLat: minLat,
		MaxLat: maxLat,
		MinLng: minLng,
		MaxLng: maxLng,
	}, true
}
