package exchanges

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/coinlens/cls/internal/domain"
	"github.com/coinlens/cls/internal/domain/interfaces"
	"github.com/coinlens/cls/internal/domain/models"
)

// PlanLimitedNotice replaces the exchange description when detail data is
// behind a higher plan tier.
const PlanLimitedNotice = "Detailed information is not available with your current API plan. Please upgrade to access full exchange details."

type exchangeService struct {
	client interfaces.MarketDataClient
	logger zerolog.Logger
}

func NewExchangeService(client interfaces.MarketDataClient, logger zerolog.Logger) IExchangeService {
	return &exchangeService{
		client: client,
		logger: logger.With().Str("component", "exchange_service").Logger(),
	}
}

// FetchExchanges tries the listings endpoint and, when the plan does not
// support it, falls back to the exchange map exactly once. Map rows carry no
// volume or launch date, so sentinel values dominate the degraded result.
// Any other failure propagates unchanged.
func (s *exchangeService) FetchExchanges(ctx context.Context) ([]domain.Exchange, error) {
	response, err := s.client.ExchangeListings(ctx)
	if err != nil {
		if !domain.IsPlanLimited(err) {
			return nil, err
		}
		s.logger.Warn().Msg("Plan does not support exchange listings, falling back to exchange map")
		response, err = s.client.ExchangeMap(ctx)
		if err != nil {
			return nil, err
		}
	}

	return normalizeExchanges(response), nil
}

// FetchExchangeDetail collapses the info endpoint's single-entry keyed mapping
// to one detail. On a plan limitation it degrades to the map row for the id,
// with a fixed notice in place of the description and no premium fields.
func (s *exchangeService) FetchExchangeDetail(ctx context.Context, id int) (*domain.ExchangeDetail, error) {
	response, err := s.client.ExchangeInfo(ctx, id)
	if err != nil {
		if !domain.IsPlanLimited(err) {
			return nil, err
		}
		s.logger.Warn().Int("exchange_id", id).Msg("Plan does not support exchange info, falling back to exchange map")
		return s.fetchBasicExchangeDetail(ctx, id)
	}

	for _, dto := range response.Data {
		detail := dto.ToDomain()
		return &detail, nil
	}
	return nil, domain.NewNoDataError()
}

func (s *exchangeService) fetchBasicExchangeDetail(ctx context.Context, id int) (*domain.ExchangeDetail, error) {
	response, err := s.client.ExchangeMapByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, dto := range response.Data {
		if dto.ID != id {
			continue
		}
		exchange := dto.ToDomain()
		return &domain.ExchangeDetail{
			ID:            exchange.ID,
			Name:          exchange.Name,
			Slug:          exchange.Slug,
			LogoURL:       exchange.LogoURL,
			SpotVolumeUSD: exchange.SpotVolumeUSD,
			DateLaunched:  exchange.DateLaunched,
			Description:   PlanLimitedNotice,
		}, nil
	}
	return nil, domain.NewNoDataError()
}

// FetchCurrencies maps each market pair's base currency, injecting the pair's
// USD quote price when present.
func (s *exchangeService) FetchCurrencies(ctx context.Context, exchangeID int) ([]domain.Currency, error) {
	response, err := s.client.MarketPairs(ctx, exchangeID)
	if err != nil {
		if domain.IsPlanLimited(err) {
			s.logger.Warn().Int("exchange_id", exchangeID).Msg("Plan does not support market pairs, returning empty currency list")
			return []domain.Currency{}, nil
		}
		return nil, err
	}

	currencies := make([]domain.Currency, 0, len(response.Data.MarketPairs))
	for _, pair := range response.Data.MarketPairs {
		var priceUSD *float64
		if pair.Quote != nil && pair.Quote.USD != nil {
			priceUSD = pair.Quote.USD.Price
		}
		currencies = append(currencies, pair.BaseCurrency.ToDomain(priceUSD))
	}
	return currencies, nil
}

func normalizeExchanges(response *models.ExchangeListResponse) []domain.Exchange {
	exchanges := make([]domain.Exchange, 0, len(response.Data))
	for _, dto := range response.Data {
		exchanges = append(exchanges, dto.ToDomain())
	}
	return exchanges
}
