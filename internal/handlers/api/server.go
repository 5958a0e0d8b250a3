package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/KirkDiggler/touchline/internal/common/uuid"
	"github.com/KirkDiggler/touchline/internal/services/match"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// Config holds the configuration for the HTTP API
type Config struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// AllowedOrigins is passed to the CORS handler; empty allows any origin
	AllowedOrigins []string

	MatchService match.Service
	Logger       logrus.FieldLogger
}

// Server exposes the match service over JSON and streams state over a websocket
type Server struct {
	matchService match.Service
	hub          *Hub
	upgrader     websocket.Upgrader
	handler      http.Handler
	httpServer   *http.Server
	log          logrus.FieldLogger

	unsubscribe func()
}

// New creates the API server and subscribes its hub to match changes
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.MatchService == nil {
		return nil, errors.New("match service cannot be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("component", "api")

	s := &Server{
		matchService: cfg.MatchService,
		hub:          NewHub(log),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log: log,
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
		s.upgrader.CheckOrigin = func(*http.Request) bool { return true }
	} else {
		c := cors.New(cors.Options{AllowedOrigins: origins})
		s.upgrader.CheckOrigin = c.OriginAllowed
	}

	s.handler = cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(s.routes())

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.unsubscribe = cfg.MatchService.Subscribe(s.hub.Publish)

	return s, nil
}

func (s *Server) routes() *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	m := api.PathPrefix("/match").Subrouter()
	m.HandleFunc("", s.handleGetState).Methods(http.MethodGet)
	m.HandleFunc("", s.handleBeginMatch).Methods(http.MethodPost)
	m.HandleFunc("", s.handleDiscardMatch).Methods(http.MethodDelete)
	m.HandleFunc("/resume", s.handleCheckResume).Methods(http.MethodGet)
	m.HandleFunc("/resume", s.handleResumeMatch).Methods(http.MethodPost)
	m.HandleFunc("/metrics", s.handleGetMetrics).Methods(http.MethodGet)
	m.HandleFunc("/timeline", s.handleGetTimeline).Methods(http.MethodGet)

	m.HandleFunc("/clock/start", s.handleStartClock).Methods(http.MethodPost)
	m.HandleFunc("/clock/stop", s.handleStopClock).Methods(http.MethodPost)

	m.HandleFunc("/context/confirm", s.handleConfirmContext).Methods(http.MethodPost)
	m.HandleFunc("/context/skip", s.handleSkipContext).Methods(http.MethodPost)
	m.HandleFunc("/context/cancel", s.handleCancelContext).Methods(http.MethodPost)

	m.HandleFunc("/eligible-for-card", s.handleEligibleForCard).Methods(http.MethodGet)

	p := m.PathPrefix("/players/{id}").Subrouter()
	p.Use(s.requirePlayerID)
	p.HandleFunc("", s.handleUpdatePlayer).Methods(http.MethodPatch)
	p.HandleFunc("/stats", s.handleApplyStat).Methods(http.MethodPost)
	p.HandleFunc("/big-play", s.handleBigPlay).Methods(http.MethodPost)
	p.HandleFunc("/card", s.handleIssueCard).Methods(http.MethodPost)
	p.HandleFunc("/card", s.handleOverrideCard).Methods(http.MethodPut)
	p.HandleFunc("/card", s.handleClearCard).Methods(http.MethodDelete)
	p.HandleFunc("/toggle", s.handleToggleField).Methods(http.MethodPost)

	m.HandleFunc("/sets/complete", s.handleCompleteSet).Methods(http.MethodPost)
	m.HandleFunc("/sets/fail", s.handleFailSet).Methods(http.MethodPost)
	m.HandleFunc("/score/opponent", s.handleOpponentScore).Methods(http.MethodPost)
	m.HandleFunc("/score/home", s.handleHomeScore).Methods(http.MethodPost)

	m.HandleFunc("/period/end", s.handleRequestEndPeriod).Methods(http.MethodPost)
	m.HandleFunc("/period/confirm", s.handleConfirmEndPeriod).Methods(http.MethodPost)
	m.HandleFunc("/period/cancel", s.handleCancelEndPeriod).Methods(http.MethodPost)
	m.HandleFunc("/finish", s.handleFinishMatch).Methods(http.MethodPost)

	router.HandleFunc("/ws", s.handleWebSocket)

	return router
}

// requirePlayerID rejects player routes whose id is not a UUID
func (s *Server) requirePlayerID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !uuid.IsValid(mux.Vars(r)["id"]) {
			writeJSON(w, http.StatusBadRequest, &errorResponse{Error: "invalid player id"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Handler returns the CORS wrapped router
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go s.hub.Run(hubCtx)

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.httpServer.Addr).Info("http server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.unsubscribe()
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.unsubscribe()
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}
