package interfaces

import (
	"context"

	"github.com/coinlens/cls/internal/domain/models"
)

// MarketDataClient is the transport boundary to the CoinMarketCap API. Every
// method performs exactly one GET and returns either a decoded envelope or a
// *domain.APIError describing the failure.
type MarketDataClient interface {
	// ExchangeListings fetches the top exchanges sorted by 24h volume.
	ExchangeListings(ctx context.Context) (*models.ExchangeListResponse, error)

	// ExchangeMap fetches the active-exchange id map, sorted by id. It is the
	// lower-capability fallback for ExchangeListings.
	ExchangeMap(ctx context.Context) (*models.ExchangeListResponse, error)

	// ExchangeMapByID fetches a single exchange's map row.
	ExchangeMapByID(ctx context.Context, id int) (*models.ExchangeListResponse, error)

	// ExchangeInfo fetches exchange metadata keyed by stringified id.
	ExchangeInfo(ctx context.Context, id int) (*models.ExchangeInfoResponse, error)

	// MarketPairs fetches the market pairs listed on an exchange.
	MarketPairs(ctx context.Context, id int) (*models.MarketPairsResponse, error)
}
