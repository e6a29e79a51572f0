package exchanges

import (
	"context"

	"github.com/coinlens/cls/internal/domain"
)

// IExchangeService exposes the three read operations the client screens need.
type IExchangeService interface {
	// FetchExchanges lists the top exchanges, degrading to the id map when the
	// plan lacks listings access.
	FetchExchanges(ctx context.Context) ([]domain.Exchange, error)

	// FetchExchangeDetail loads one exchange's metadata, synthesizing a
	// reduced detail from the id map when the plan lacks info access.
	FetchExchangeDetail(ctx context.Context, id int) (*domain.ExchangeDetail, error)

	// FetchCurrencies lists the base currencies traded on an exchange.
	// Currencies are an optional enrichment: a plan limitation yields an empty
	// list, not an error.
	FetchCurrencies(ctx context.Context, exchangeID int) ([]domain.Currency, error)
}
