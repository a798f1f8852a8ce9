package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/api/handlers/http/admin"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/api/handlers/http/public"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/api/handlers/http/system"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/config"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/middleware"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, deps map[string]system.Pinger) *Server {
	adminHandler := admin.NewHandler(logger, svc.AdminSightingService, svc.StatsService, svc.ReunionService)
	publicHandler := public.NewHandler(logger, svc.PublicSightingService, svc.SearchService, svc.ReunionService)
	systemHandler := system.NewHandler(logger, deps)

	r := InitRouter(cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)

			ar.Route("/sightings", func(sr chi.Router) {
				sr.Get("/", adminHandler.AdminSightingList)
				sr.Post("/import", adminHandler.AdminSightingImport)

				sr.Route("/{id}", func(rr chi.Router) {
					rr.Put("/", adminHandler.AdminSightingUpdate)
					rr.Delete("/", adminHandler.AdminSightingDelete)
				})
			})

			ar.Route("/reunions", func(rr chi.Router) {
				rr.Get("/", adminHandler.AdminReunionList)
				rr.Put("/{id}", adminHandler.AdminReunionValidate)
			})
		})

		// PUBLIC
		api.Route("/map", func(mr chi.Router) {
			mr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			mr.Get("/sightings", publicHandler.MapSightings)
		})

		api.Route("/sightings", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			pr.Get("/recent", publicHandler.RecentSightings)
			pr.Post("/", publicHandler.SightingCreate)
			pr.Post("/search", publicHandler.SightingSearch)

			pr.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", publicHandler.SightingGet)
				rr.Get("/radii", publicHandler.SightingRadii)
			})
		})

		api.Route("/reunions", func(rr chi.Router) {
			rr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			rr.Post("/", publicHandler.ReunionCreate)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
