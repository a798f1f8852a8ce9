package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/geo"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/service"
	"github.com/platanus-hack/platanus-hack-25-team-41/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PublicSightings interface {
	MapSightings(ctx context.Context, q service.MapQuery) (domain.MapSightingsResponse, error)
	RecentSightings(ctx context.Context, q service.RecentQuery) (domain.RecentSightingsResponse, error)
	GetSighting(ctx context.Context, id uuid.UUID) (*domain.Sighting, error)
	SightingRadii(ctx context.Context, id uuid.UUID) (geo.Radii, error)
	CreateSighting(ctx context.Context, req domain.CreateSightingRequest) (*domain.Sighting, error)
}

type Searcher interface {
	Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error)
}

type ReunionReporter interface {
	CreateReunion(ctx context.Context, req domain.CreateReunionRequest) (*domain.ReunionReport, error)
}

type Handler struct {
	logger    *slog.Logger
	Sightings PublicSightings
	Searcher  Searcher
	Reunions  ReunionReporter
}

func NewHandler(logger *slog.Logger, sightings PublicSightings, searcher Searcher, reunions ReunionReporter) *Handler {
	return &Handler{
		logger:    logger,
		Sightings: sightings,
		Searcher:  searcher,
		Reunions:  reunions,
	}
}

func (h *Handler) MapSightings(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("MapSightings", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	qs := r.URL.Query()

	q := service.MapQuery{
		Status: qs.Get("status"),
	}

	lat, latOK := parseFloat(qs.Get("lat"))
	lng, lngOK := parseFloat(qs.Get("lng"))
	if latOK && lngOK {
		q.UserLocation = &geo.Coordinate{Lat: lat, Lng: lng}
		if radius, ok := parseFloat(qs.Get("radius_km")); ok && radius > 0 {
			q.RadiusKm = &radius
		}
	}

	if bounds, ok := parseBounds(qs); ok {
		q.Viewport = bounds
	}

	resp, err := h.Sightings.MapSightings(r.Context(), q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("map sightings listed", slog.Int("count", len(resp.Sightings)))
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) RecentSightings(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("RecentSightings", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	qs := r.URL.Query()

	limit := parseInt(qs.Get("limit"), 12)
	if limit > 100 {
		l.Warn("limit capped", slog.Int("requested", limit))
		limit = 100
	}

	q := service.RecentQuery{
		Limit:        limit,
		Offset:       parseInt(qs.Get("offset"), 0),
		Neighborhood: qs.Get("neighborhood"),
		Status:       qs.Get("status"),
	}

	resp, err := h.Sightings.RecentSightings(r.Context(), q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SightingGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SightingGet", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	sighting, err := h.Sightings.GetSighting(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, sighting)
}

func (h *Handler) SightingRadii(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SightingRadii", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	radii, err := h.Sightings.SightingRadii(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, radii)
}

func (h *Handler) SightingCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SightingCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateSightingRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("creating sighting",
		slog.Int("images", len(req.Images)),
		slog.String("neighborhood", req.Neighborhood),
	)

	sighting, err := h.Sightings.CreateSighting(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("sighting created", slog.String("id", sighting.ID.String()))
	h.writeJSON(w, http.StatusCreated, sighting)
}

func (h *Handler) ReunionCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ReunionCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateReunionRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	rep, err := h.Reunions.CreateReunion(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("reunion reported", slog.String("id", rep.ID.String()))
	h.writeJSON(w, http.StatusCreated, domain.CreateReunionResponse{
		ID:      rep.ID.String(),
		Status:  rep.Status,
		Message: msgReunionReceived,
	})
}

func (h *Handler) SightingSearch(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("SightingSearch", slog.String("remote", r.RemoteAddr))

	var req domain.SearchRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.Searcher.Search(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("search completed",
		slog.Int("results", resp.TotalResults),
		slog.Any("attributes", resp.SearchAttributes),
	)
	h.writeJSON(w, http.StatusOK, resp)
}
