package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error

	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	JumpTo(ctx context.Context, id string, index int) (*entity.Game, error)
	ToggleHistoryOrder(ctx context.Context, id string) (*entity.Game, error)
}

type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

func New(logger *slog.Logger, port string, games gameUseCase) *Server {
	return &Server{
		logger: logger.With("component", "http"),
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      NewRouter(logger, games),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

// NewRouter - wires the HTML pages and the JSON API.
func NewRouter(logger *slog.Logger, games gameUseCase) http.Handler {
	h := &handlers{
		logger: logger.With("component", "handlers"),
		games:  games,
		tpl:    loadTemplates(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/ping", PingHandler)

	r.Get("/", h.index)
	r.Post("/game", h.create)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Get("/", h.view)
		r.Post("/play", h.play)
		r.Post("/jump", h.jump)
		r.Post("/reverse", h.reverse)
	})

	r.Route("/api/games", func(r chi.Router) {
		r.Post("/", h.apiCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.apiGet)
			r.Delete("/", h.apiDelete)
			r.Post("/play", h.apiPlay)
			r.Post("/jump", h.apiJump)
			r.Post("/reverse", h.apiReverse)
		})
	})

	return r
}

// Start - blocks until the server stops. A graceful Shutdown is not reported as an error.
func (that *Server) Start() error {
	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	log := logger.With("component", "http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Debug("request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"requestID", middleware.GetReqID(r.Context()),
			)
		})
	}
}
