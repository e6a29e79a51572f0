package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/coinlens/cls/internal/application/exchanges"
	"github.com/coinlens/cls/internal/application/usecases"
	"github.com/coinlens/cls/internal/domain"
	"github.com/coinlens/cls/internal/presentation"
)

type ExchangeHandler struct {
	fetchExchanges      usecases.FetchExchangesUseCase
	fetchExchangeDetail usecases.FetchExchangeDetailUseCase
	fetchCurrencies     usecases.FetchCurrenciesUseCase
	logger              zerolog.Logger
}

func NewExchangeHandler(
	fetchExchanges usecases.FetchExchangesUseCase,
	fetchExchangeDetail usecases.FetchExchangeDetailUseCase,
	fetchCurrencies usecases.FetchCurrenciesUseCase,
	logger zerolog.Logger,
) *ExchangeHandler {
	return &ExchangeHandler{
		fetchExchanges:      fetchExchanges,
		fetchExchangeDetail: fetchExchangeDetail,
		fetchCurrencies:     fetchCurrencies,
		logger:              logger.With().Str("component", "exchange_handler").Logger(),
	}
}

// ListExchanges serves the exchange list. The optional q parameter derives a
// filtered projection of the fetched list; the authoritative list itself is
// never mutated or cached.
func (h *ExchangeHandler) ListExchanges(c *gin.Context) {
	list, err := h.fetchExchanges.Execute(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	list = exchanges.Filter(list, c.Query("q"))
	c.JSON(http.StatusOK, presentation.PresentExchanges(list))
}

func (h *ExchangeHandler) GetExchangeDetail(c *gin.Context) {
	id, ok := h.exchangeID(c)
	if !ok {
		return
	}

	detail, err := h.fetchExchangeDetail.Execute(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, presentation.PresentExchangeDetail(*detail))
}

func (h *ExchangeHandler) ListCurrencies(c *gin.Context) {
	id, ok := h.exchangeID(c)
	if !ok {
		return
	}

	currencies, err := h.fetchCurrencies.Execute(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, presentation.PresentCurrencies(currencies))
}

func (h *ExchangeHandler) exchangeID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exchange id"})
		return 0, false
	}
	return id, true
}

func (h *ExchangeHandler) respondError(c *gin.Context, err error) {
	h.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Upstream fetch failed")
	c.JSON(statusForError(err), gin.H{"error": presentation.ErrorMessage(err)})
}

// statusForError maps upstream failure kinds to our own status codes: missing
// data is a 404, upstream trouble is a 502, everything else a 500.
func statusForError(err error) int {
	if domain.IsNoData(err) {
		return http.StatusNotFound
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
