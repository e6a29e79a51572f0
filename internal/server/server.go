package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/coinlens/cls/internal/application/usecases"
	"github.com/coinlens/cls/internal/server/handlers"
	"github.com/coinlens/cls/internal/server/middleware"
	"github.com/coinlens/cls/pkg/config"
)

type Server struct {
	FetchExchanges      usecases.FetchExchangesUseCase
	FetchExchangeDetail usecases.FetchExchangeDetailUseCase
	FetchCurrencies     usecases.FetchCurrenciesUseCase
	Cfg                 *config.Config
	Logger              zerolog.Logger
	Router              *gin.Engine
	httpServer          *http.Server
}

func New(
	cfg *config.Config,
	fetchExchanges usecases.FetchExchangesUseCase,
	fetchExchangeDetail usecases.FetchExchangeDetailUseCase,
	fetchCurrencies usecases.FetchCurrenciesUseCase,
	logger zerolog.Logger,
) *Server {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Server{
		Cfg:                 cfg,
		FetchExchanges:      fetchExchanges,
		FetchExchangeDetail: fetchExchangeDetail,
		FetchCurrencies:     fetchCurrencies,
		Logger:              logger,
		Router:              gin.New(),
	}
}

func (s *Server) SetupRouter() {
	mw := middleware.NewMiddleware(s.Logger)
	mw.SetupMiddleware(s.Router)

	handler := handlers.New(
		s.FetchExchanges,
		s.FetchExchangeDetail,
		s.FetchCurrencies,
		s.Logger,
		s.Cfg,
	)
	handler.SetupHandlers(s.Router)
}

func (s *Server) Start() {
	s.SetupRouter()

	s.httpServer = &http.Server{
		Addr:         s.Cfg.Server.Host + ":" + s.Cfg.Server.Port,
		Handler:      s.Router,
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	s.Logger.Info().Msgf("Starting server on %s", s.httpServer.Addr)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-stopChan
	s.Logger.Info().Msg("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.Logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	s.Logger.Info().Msg("Server exited gracefully")
}
