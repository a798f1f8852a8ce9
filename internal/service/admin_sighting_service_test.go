package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/service"
	"github.com/platanus-hack/platanus-hack-25-team-41/pkg/e"

	mock_service "github.com/platanus-hack/platanus-hack-25-team-41/internal/service/mocks"
)

func TestAdminList_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSightingRepository(ctrl)
	svc := service.NewAdminSightingService(repo, newTestLogger())

	repo.EXPECT().
		List(gomock.Any(), 2, 50).
		Return([]*domain.Sighting{{ID: uuid.New()}}, int64(101), nil).
		Times(1)

	recs, total, err := svc.List(context.Background(), 2, 50)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 1 || total != 101 {
		t.Fatalf("unexpected result: recs=%d total=%d", len(recs), total)
	}
}

func TestAdminUpdate_StatusAndCoordinate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSightingRepository(ctrl)
	svc := service.NewAdminSightingService(repo, newTestLogger())

	id := uuid.New()
	existing := &domain.Sighting{ID: id, Status: domain.StatusPending}

	lat, lng := -33.43, -70.65
	status := domain.StatusRescued
	req := domain.UpdateSightingRequest{Latitude: &lat, Longitude: &lng, Status: &status}

	repo.EXPECT().Get(gomock.Any(), id).Return(existing, nil).Times(1)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.Sighting) error {
			if rec.Status != domain.StatusRescued {
				t.Errorf("expected status rescatado, got %q", rec.Status)
			}
			if rec.Coordinate == nil || rec.Coordinate.Lat != lat || rec.Coordinate.Lng != lng {
				t.Errorf("expected coordinate updated, got %+v", rec.Coordinate)
			}
			return nil
		}).
		Times(1)

	if err := svc.Update(context.Background(), id, req); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAdminUpdate_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSightingRepository(ctrl)
	svc := service.NewAdminSightingService(repo, newTestLogger())

	id := uuid.New()
	repo.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound).Times(1)

	if err := svc.Update(context.Background(), id, domain.UpdateSightingRequest{}); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminDelete_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSightingRepository(ctrl)
	svc := service.NewAdminSightingService(repo, newTestLogger())

	id := uuid.New()
	repo.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAdminImport_AllRecords(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSightingRepository(ctrl)
	svc := service.NewAdminSightingService(repo, newTestLogger())

	req := domain.ImportSightingsRequest{
		Records: []domain.RawRecord{
			{Description: "Perro grande café. Visto en la plaza", Attributes: []string{"grande", "café"}},
			{Name: "Firulais", Status: "urgente"},
		},
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	resp, err := svc.Import(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.Imported != 2 || len(resp.IDs) != 2 {
		t.Fatalf("expected 2 imports, got %+v", resp)
	}
}

func TestAdminImport_FailedInsertSkippedNotFatal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSightingRepository(ctrl)
	svc := service.NewAdminSightingService(repo, newTestLogger())

	req := domain.ImportSightingsRequest{
		Records: []domain.RawRecord{
			{Name: "uno"},
			{Name: "dos"},
			{Name: "tres"},
		},
	}

	calls := 0
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.Sighting) error {
			calls++
			if calls == 2 {
				return e.ErrUniqueViolation
			}
			return nil
		}).
		Times(3)

	resp, err := svc.Import(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.Imported != 2 {
		t.Fatalf("expected 2 of 3 imported, got %+v", resp)
	}
}
