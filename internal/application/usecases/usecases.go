package usecases

import (
	"context"

	"github.com/coinlens/cls/internal/application/exchanges"
	"github.com/coinlens/cls/internal/domain"
)

// Each use case binds exactly one service operation to one named capability.
// They add no behavior; they exist so callers depend on a single-method
// contract that test doubles can stand in for.

type FetchExchangesUseCase interface {
	Execute(ctx context.Context) ([]domain.Exchange, error)
}

type FetchExchangeDetailUseCase interface {
	Execute(ctx context.Context, id int) (*domain.ExchangeDetail, error)
}

type FetchCurrenciesUseCase interface {
	Execute(ctx context.Context, exchangeID int) ([]domain.Currency, error)
}

type fetchExchanges struct {
	service exchanges.IExchangeService
}

func NewFetchExchanges(service exchanges.IExchangeService) FetchExchangesUseCase {
	return &fetchExchanges{service: service}
}

func (u *fetchExchanges) Execute(ctx context.Context) ([]domain.Exchange, error) {
	return u.service.FetchExchanges(ctx)
}

type fetchExchangeDetail struct {
	service exchanges.IExchangeService
}

func NewFetchExchangeDetail(service exchanges.IExchangeService) FetchExchangeDetailUseCase {
	return &fetchExchangeDetail{service: service}
}

func (u *fetchExchangeDetail) Execute(ctx context.Context, id int) (*domain.ExchangeDetail, error) {
	return u.service.FetchExchangeDetail(ctx, id)
}

type fetchCurrencies struct {
	service exchanges.IExchangeService
}

func NewFetchCurrencies(service exchanges.IExchangeService) FetchCurrenciesUseCase {
	return &fetchCurrencies{service: service}
}

func (u *fetchCurrencies) Execute(ctx context.Context, exchangeID int) ([]domain.Currency, error) {
	return u.service.FetchCurrencies(ctx, exchangeID)
}
