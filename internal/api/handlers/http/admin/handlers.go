package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AdminSightings interface {
	List(ctx context.Context, page, limit int) ([]*domain.Sighting, int64, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateSightingRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Import(ctx context.Context, req domain.ImportSightingsRequest) (domain.ImportSightingsResponse, error)
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.SightingStats, error)
}

type AdminReunions interface {
	ListReunions(ctx context.Context, status string, page, limit int) ([]domain.ReunionReport, int64, error)
	ValidateReunion(ctx context.Context, id uuid.UUID, req domain.ValidateReunionRequest) error
}

type Handler struct {
	logger   *slog.Logger
	Admin    AdminSightings
	Stats    StatsGetter
	Reunions AdminReunions
}

func NewHandler(logger *slog.Logger, admin AdminSightings, stats StatsGetter, reunions AdminReunions) *Handler {
	return &Handler{
		logger:   logger,
		Admin:    admin,
		Stats:    stats,
		Reunions: reunions,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminSightingList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminSightingList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		l.Warn("limit capped", slog.Int("requested", limit))
		limit = 100
	}

	sightings, total, err := h.Admin.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("sightings listed", slog.Int("count", len(sightings)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"sightings": sightings,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

func (h *Handler) AdminSightingUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminSightingUpdate", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateSightingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Admin.Update(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminSightingDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminSightingDelete", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Admin.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminSightingImport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminSightingImport", slog.String("remote", r.RemoteAddr))

	var req domain.ImportSightingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("importing raw records", slog.Int("records", len(req.Records)))

	resp, err := h.Admin.Import(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("records imported", slog.Int("imported", resp.Imported))
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) AdminReunionList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminReunionList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	qs := r.URL.Query()
	page := parseInt(qs.Get("page"), 1)
	limit := parseInt(qs.Get("limit"), 20)
	if limit > 100 {
		l.Warn("limit capped", slog.Int("requested", limit))
		limit = 100
	}

	reports, total, err := h.Reunions.ListReunions(r.Context(), qs.Get("status"), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("reunions listed", slog.Int("count", len(reports)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"reunions": reports,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

func (h *Handler) AdminReunionValidate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminReunionValidate", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.ValidateReunionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Reunions.ValidateReunion(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("reunion resolved", slog.String("id", id.String()), slog.String("status", string(req.Status)))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	minutesStr := r.URL.Query().Get("minutes")
	if minutesStr == "" {
		minutesStr = "60"
	}

	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes <= 0 || minutes > 1440 {
		l.Warn("invalid minutes", slog.String("minutes", minutesStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "minutes must be 1-1440"})
		return
	}

	stats, err := h.Stats.GetStats(r.Context(), domain.StatsRequest{Minutes: minutes})
	if err != nil {
		l.Error("Stats.GetStats failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	l.Info("stats success", slog.Int("minutes", minutes))
	h.writeJSON(w, http.StatusOK, stats)
}
