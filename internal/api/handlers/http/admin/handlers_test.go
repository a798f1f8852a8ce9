package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/api/handlers/http/admin"
	mock_admin "github.com/platanus-hack/platanus-hack-25-team-41/internal/api/handlers/http/admin/mocks"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestAdminSightingList_Defaults_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminSvc := mock_admin.NewMockAdminSightings(ctrl)
	h := admin.NewHandler(newTestLogger(), adminSvc, mock_admin.NewMockStatsGetter(ctrl), mock_admin.NewMockAdminReunions(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/sightings/", nil)
	rr := httptest.NewRecorder()

	adminSvc.EXPECT().
		List(gomock.Any(), 1, 20).
		Return([]*domain.Sighting{}, int64(0), nil).
		Times(1)

	h.AdminSightingList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	resp := decodeJSON[map[string]any](t, rr)
	if int(resp["page"].(float64)) != 1 || int(resp["limit"].(float64)) != 20 {
		t.Fatalf("unexpected pagination: %+v", resp)
	}
}

func TestAdminSightingList_LimitClampedTo100(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminSvc := mock_admin.NewMockAdminSightings(ctrl)
	h := admin.NewHandler(newTestLogger(), adminSvc, mock_admin.NewMockStatsGetter(ctrl), mock_admin.NewMockAdminReunions(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/sightings/?page=2&limit=500", nil)
	rr := httptest.NewRecorder()

	adminSvc.EXPECT().
		List(gomock.Any(), 2, 100).
		Return([]*domain.Sighting{}, int64(0), nil).
		Times(1)

	h.AdminSightingList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestAdminSightingList_LimitCapWarnsRequestedValue(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	adminSvc := mock_admin.NewMockAdminSightings(ctrl)
	h := admin.NewHandler(logger, adminSvc, mock_admin.NewMockStatsGetter(ctrl), mock_admin.NewMockAdminReunions(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/sightings/?limit=500", nil)
	rr := httptest.NewRecorder()

	adminSvc.EXPECT().
		List(gomock.Any(), 1, 100).
		Return([]*domain.Sighting{}, int64(0), nil).
		Times(1)

	h.AdminSightingList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if !strings.Contains(logBuf.String(), "requested=500") {
		t.Fatalf("expected warning with the requested limit, log=%s", logBuf.String())
	}
}

func TestAdminSightingUpdate_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(),
		mock_admin.NewMockAdminSightings(ctrl),
		mock_admin.NewMockStatsGetter(ctrl),
		mock_admin.NewMockAdminReunions(ctrl),
	)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/sightings/bad/", bytes.NewBufferString(`{}`))
	req = addChiURLParam(req, "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.AdminSightingUpdate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminSightingUpdate_OK_204(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminSvc := mock_admin.NewMockAdminSightings(ctrl)
	h := admin.NewHandler(newTestLogger(), adminSvc, mock_admin.NewMockStatsGetter(ctrl), mock_admin.NewMockAdminReunions(ctrl))

	id := uuid.New()
	body := `{"status":"rescatado"}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/sightings/"+id.String()+"/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	st := domain.StatusRescued
	adminSvc.EXPECT().
		Update(gomock.Any(), id, domain.UpdateSightingRequest{Status: &st}).
		Return(nil).
		Times(1)

	h.AdminSightingUpdate(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got=%q", rr.Body.String())
	}
}

func TestAdminSightingUpdate_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminSvc := mock_admin.NewMockAdminSightings(ctrl)
	h := admin.NewHandler(newTestLogger(), adminSvc, mock_admin.NewMockStatsGetter(ctrl), mock_admin.NewMockAdminReunions(ctrl))

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/sightings/"+id.String()+"/", bytes.NewBufferString(`{}`))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	adminSvc.EXPECT().
		Update(gomock.Any(), id, domain.UpdateSightingRequest{}).
		Return(e.ErrNotFound).
		Times(1)

	h.AdminSightingUpdate(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestAdminSightingDelete_OK_204(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminSvc := mock_admin.NewMockAdminSightings(ctrl)
	h := admin.NewHandler(newTestLogger(), adminSvc, mock_admin.NewMockStatsGetter(ctrl), mock_admin.NewMockAdminReunions(ctrl))

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/sightings/"+id.String()+"/", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	adminSvc.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

	h.AdminSightingDelete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestAdminSightingImport_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminSvc := mock_admin.NewMockAdminSightings(ctrl)
	h := admin.NewHandler(newTestLogger(), adminSvc, mock_admin.NewMockStatsGetter(ctrl), mock_admin.NewMockAdminReunions(ctrl))

	body := `{"records":[{"name":"Firulais","latitude":-33.43,"longitude":-70.65}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/sightings/import", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	adminSvc.EXPECT().
		Import(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got domain.ImportSightingsRequest) (domain.ImportSightingsResponse, error) {
			if len(got.Records) != 1 || got.Records[0].Name != "Firulais" {
				t.Fatalf("unexpected request: %+v", got)
			}
			return domain.ImportSightingsResponse{Imported: 1, IDs: []string{uuid.NewString()}}, nil
		}).
		Times(1)

	h.AdminSightingImport(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.ImportSightingsResponse](t, rr)
	if got.Imported != 1 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestAdminSightingImport_EmptyBatch_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(),
		mock_admin.NewMockAdminSightings(ctrl),
		mock_admin.NewMockStatsGetter(ctrl),
		mock_admin.NewMockAdminReunions(ctrl),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/sightings/import", bytes.NewBufferString(`{"records":[]}`))
	rr := httptest.NewRecorder()

	h.AdminSightingImport(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminReunionList_StatusFilter_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reunionSvc := mock_admin.NewMockAdminReunions(ctrl)
	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockAdminSightings(ctrl), mock_admin.NewMockStatsGetter(ctrl), reunionSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/reunions/?status=pending", nil)
	rr := httptest.NewRecorder()

	reports := []domain.ReunionReport{
		{ID: uuid.New(), SightingID: uuid.New(), Status: domain.ReunionPending},
	}
	reunionSvc.EXPECT().
		ListReunions(gomock.Any(), "pending", 1, 20).
		Return(reports, int64(1), nil).
		Times(1)

	h.AdminReunionList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	resp := decodeJSON[map[string]any](t, rr)
	if int(resp["total"].(float64)) != 1 {
		t.Fatalf("unexpected total: %+v", resp)
	}
}

func TestAdminReunionValidate_OK_204(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reunionSvc := mock_admin.NewMockAdminReunions(ctrl)
	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockAdminSightings(ctrl), mock_admin.NewMockStatsGetter(ctrl), reunionSvc)

	id := uuid.New()
	body := `{"status":"validated","validated_by":"admin@example.com","notes":"foto coincide"}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/reunions/"+id.String(), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	reunionSvc.EXPECT().
		ValidateReunion(gomock.Any(), id, domain.ValidateReunionRequest{
			Status:      domain.ReunionValidated,
			ValidatedBy: "admin@example.com",
			Notes:       "foto coincide",
		}).
		Return(nil).
		Times(1)

	h.AdminReunionValidate(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestAdminReunionValidate_UnknownStatus_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(),
		mock_admin.NewMockAdminSightings(ctrl),
		mock_admin.NewMockStatsGetter(ctrl),
		mock_admin.NewMockAdminReunions(ctrl),
	)

	id := uuid.New()
	body := `{"status":"maybe","validated_by":"admin@example.com"}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/reunions/"+id.String(), bytes.NewBufferString(body))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.AdminReunionValidate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminReunionValidate_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reunionSvc := mock_admin.NewMockAdminReunions(ctrl)
	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockAdminSightings(ctrl), mock_admin.NewMockStatsGetter(ctrl), reunionSvc)

	id := uuid.New()
	body := `{"status":"rejected","validated_by":"admin@example.com"}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/reunions/"+id.String(), bytes.NewBufferString(body))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	reunionSvc.EXPECT().
		ValidateReunion(gomock.Any(), id, gomock.Any()).
		Return(e.ErrNotFound).
		Times(1)

	h.AdminReunionValidate(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestAdminStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statsSvc := mock_admin.NewMockStatsGetter(ctrl)
	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockAdminSightings(ctrl), statsSvc, mock_admin.NewMockAdminReunions(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats?minutes=60", nil)
	rr := httptest.NewRecorder()

	want := &domain.SightingStats{ReportCount: 42, Minutes: 60}
	statsSvc.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 60}).
		Return(want, nil).
		Times(1)

	h.AdminStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.SightingStats](t, rr)
	if got.ReportCount != 42 {
		t.Fatalf("expected report_count=42 got=%d", got.ReportCount)
	}
}

func TestAdminStats_InvalidMinutes_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(),
		mock_admin.NewMockAdminSightings(ctrl),
		mock_admin.NewMockStatsGetter(ctrl),
		mock_admin.NewMockAdminReunions(ctrl),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats?minutes=5000", nil)
	rr := httptest.NewRecorder()

	h.AdminStats(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminStats_ServiceError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statsSvc := mock_admin.NewMockStatsGetter(ctrl)
	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockAdminSightings(ctrl), statsSvc, mock_admin.NewMockAdminReunions(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rr := httptest.NewRecorder()

	statsSvc.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 60}).
		Return(nil, errors.New("boom")).
		Times(1)

	h.AdminStats(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}
