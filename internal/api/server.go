package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/habitmon/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = time.Second * 10

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	profileService service.ProfileServiceI
	sharedService  service.SharedHabitsServiceI
	jwtService     JWTServiceI
}

type ServicesList struct {
	UserService         service.UserServiceI
	ProfileService      service.ProfileServiceI
	SharedHabitsService service.SharedHabitsServiceI
	JwtService          JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		profileService: servicesOptions.ProfileService,
		sharedService:  servicesOptions.SharedHabitsService,
		jwtService:     servicesOptions.JwtService,
	}
	s.mountEndpoints()
	return s
}

func (s *Server) mountEndpoints() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MetricsMiddleware, middleware.Recoverer)
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/account", s.DeleteAccount)

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", s.GetProfile)
				r.Get("/level", s.GetLevel)
				r.Post("/habits", s.AddHabit)
				r.Delete("/habits/{id}", s.RemoveHabit)
				r.Post("/habits/{id}/complete", s.CompleteHabit)
				r.Post("/habits/{id}/progressions", s.AddProgressionHabit)
				r.Put("/boost", s.SetBoostedHabit)
				r.Put("/avatar", s.SetAvatar)
				r.Post("/capture", s.Capture)
				r.Post("/streaks/claim", s.ClaimStreakRewards)
				r.Post("/sync", s.SyncProfile)
				r.Post("/pull", s.PullProfile)
			})

			r.Route("/shared-habits", func(r chi.Router) {
				r.Get("/", s.ListSharedHabits)
				r.Post("/", s.InviteSharedHabit)
				r.Post("/{id}/respond", s.RespondSharedHabit)
				r.Post("/{id}/cancel", s.CancelSharedHabit)
				r.Post("/{id}/archive", s.ArchiveSharedHabit)
				r.Post("/{id}/complete", s.CompleteSharedHabit)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on address until ctx is cancelled, then shuts server down gracefully
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: time.Second * 5,
	}
	errs := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		errs <- srv.ListenAndServe()
	}()
	select {
	case err := <-errs:
		return errors.New("serving error: " + err.Error())
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("shutting down server error: " + err.Error())
	}
	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.New("serving error: " + err.Error())
	}
	slog.Info("server stopped")
	return nil
}
