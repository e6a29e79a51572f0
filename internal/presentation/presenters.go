package presentation

import (
	"fmt"

	"github.com/coinlens/cls/internal/domain"
	"github.com/coinlens/cls/pkg/markdown"
)

// PresentExchanges maps a fetched exchange list to its display form.
func PresentExchanges(list []domain.Exchange) ExchangeListViewModel {
	rows := make([]ExchangeRowViewModel, 0, len(list))
	for _, exchange := range list {
		rows = append(rows, ExchangeRowViewModel{
			ID:           exchange.ID,
			Name:         exchange.Name,
			LogoURL:      exchange.LogoURL,
			Volume:       FormatVolume(exchange.SpotVolumeUSD),
			DateLaunched: FormatDate(exchange.DateLaunched),
		})
	}
	return ExchangeListViewModel{Exchanges: rows}
}

// PresentExchangeDetail maps one exchange's metadata to its display form,
// flattening the markdown description to plain text.
func PresentExchangeDetail(detail domain.ExchangeDetail) ExchangeDetailViewModel {
	vm := ExchangeDetailViewModel{
		ID:           detail.ID,
		Name:         detail.Name,
		LogoURL:      detail.LogoURL,
		Volume:       FormatVolume(detail.SpotVolumeUSD),
		DateLaunched: FormatDate(detail.DateLaunched),
		Description:  markdown.ToPlainText(detail.Description),
		MakerFee:     formatFee(detail.MakerFee),
		TakerFee:     formatFee(detail.TakerFee),
	}
	if detail.WebsiteURL != nil {
		vm.WebsiteURL = *detail.WebsiteURL
	}
	return vm
}

// PresentCurrencies maps the traded-currency list to its display form.
func PresentCurrencies(currencies []domain.Currency) CurrencyListViewModel {
	rows := make([]CurrencyViewModel, 0, len(currencies))
	for _, currency := range currencies {
		rows = append(rows, CurrencyViewModel{
			ID:       currency.ID,
			Name:     currency.Name,
			Symbol:   currency.Symbol,
			LogoURL:  currency.LogoURL,
			PriceUSD: FormatPrice(currency.PriceUSD),
		})
	}
	return CurrencyListViewModel{Currencies: rows}
}

func formatFee(fee *float64) string {
	if fee == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f%%", *fee)
}
