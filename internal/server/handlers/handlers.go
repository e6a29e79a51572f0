package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/coinlens/cls/internal/application/usecases"
	"github.com/coinlens/cls/pkg/config"
)

type Handlers struct {
	FetchExchanges      usecases.FetchExchangesUseCase
	FetchExchangeDetail usecases.FetchExchangeDetailUseCase
	FetchCurrencies     usecases.FetchCurrenciesUseCase
	Logger              zerolog.Logger
	Config              *config.Config
}

func New(
	fetchExchanges usecases.FetchExchangesUseCase,
	fetchExchangeDetail usecases.FetchExchangeDetailUseCase,
	fetchCurrencies usecases.FetchCurrenciesUseCase,
	logger zerolog.Logger,
	config *config.Config,
) *Handlers {
	return &Handlers{
		FetchExchanges:      fetchExchanges,
		FetchExchangeDetail: fetchExchangeDetail,
		FetchCurrencies:     fetchCurrencies,
		Logger:              logger,
		Config:              config,
	}
}

func (h *Handlers) SetupHandlers(router *gin.Engine) {
	exchangeHandler := NewExchangeHandler(h.FetchExchanges, h.FetchExchangeDetail, h.FetchCurrencies, h.Logger)
	healthHandler := NewHealthHandler()

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	v1 := router.Group("/v1")
	{
		exchangesGroup := v1.Group("/exchanges")
		{
			exchangesGroup.GET("", exchangeHandler.ListExchanges)
			exchangesGroup.GET("/:id", exchangeHandler.GetExchangeDetail)
			exchangesGroup.GET("/:id/currencies", exchangeHandler.ListCurrencies)
		}
	}
}
