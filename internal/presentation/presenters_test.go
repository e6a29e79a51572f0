package presentation

import (
	"testing"
	"time"

	"github.com/coinlens/cls/internal/domain"
)

func TestPresentExchanges(t *testing.T) {
	t.Run("formats volume and launch date per row", func(t *testing.T) {
		list := []domain.Exchange{
			{
				ID:            270,
				Name:          "Binance",
				LogoURL:       "https://s2.coinmarketcap.com/static/img/exchanges/64x64/270.png",
				SpotVolumeUSD: 1234567.0,
				DateLaunched:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			{ID: 16, Name: "Poloniex", LogoURL: "x"},
		}

		vm := PresentExchanges(list)
		if len(vm.Exchanges) != 2 {
			t.Fatalf("len = %d, want 2", len(vm.Exchanges))
		}

		first := vm.Exchanges[0]
		if first.Volume != "$1.23M" {
			t.Errorf("Volume = %q, want %q", first.Volume, "$1.23M")
		}
		if first.DateLaunched == NotAvailable || first.DateLaunched == "" {
			t.Errorf("DateLaunched = %q, want a rendered date", first.DateLaunched)
		}

		degraded := vm.Exchanges[1]
		if degraded.Volume != NotAvailable || degraded.DateLaunched != NotAvailable {
			t.Errorf("sentinel row not rendered as N/A: %+v", degraded)
		}
	})

	t.Run("empty list yields an empty view-model", func(t *testing.T) {
		vm := PresentExchanges(nil)
		if vm.Exchanges == nil || len(vm.Exchanges) != 0 {
			t.Errorf("got %+v, want empty non-nil slice", vm.Exchanges)
		}
	})
}

func TestPresentExchangeDetail(t *testing.T) {
	website := "https://binance.com"
	maker, taker := 0.1, 0.2
	detail := domain.ExchangeDetail{
		ID:            270,
		Name:          "Binance",
		LogoURL:       "logo",
		SpotVolumeUSD: 2_500_000_000,
		DateLaunched:  time.Date(2017, 7, 14, 0, 0, 0, 0, time.UTC),
		Description:   "## About\n\n**Binance** is a [crypto exchange](https://binance.com).",
		WebsiteURL:    &website,
		MakerFee:      &maker,
		TakerFee:      &taker,
	}

	vm := PresentExchangeDetail(detail)
	if vm.Volume != "$2.50B" {
		t.Errorf("Volume = %q", vm.Volume)
	}
	if vm.DateLaunched != "Jul 14, 2017" {
		t.Errorf("DateLaunched = %q", vm.DateLaunched)
	}
	if vm.Description != "About\n\nBinance is a crypto exchange." {
		t.Errorf("Description = %q, want markdown flattened", vm.Description)
	}
	if vm.WebsiteURL != website {
		t.Errorf("WebsiteURL = %q", vm.WebsiteURL)
	}
	if vm.MakerFee != "0.10%" || vm.TakerFee != "0.20%" {
		t.Errorf("fees = %q / %q", vm.MakerFee, vm.TakerFee)
	}
}

func TestPresentExchangeDetail_DegradedFields(t *testing.T) {
	vm := PresentExchangeDetail(domain.ExchangeDetail{ID: 16, Name: "Poloniex"})
	if vm.Volume != NotAvailable || vm.DateLaunched != NotAvailable {
		t.Errorf("sentinels not rendered: %+v", vm)
	}
	if vm.MakerFee != NotAvailable || vm.TakerFee != NotAvailable {
		t.Errorf("nil fees should render as N/A: %+v", vm)
	}
	if vm.WebsiteURL != "" {
		t.Errorf("WebsiteURL = %q, want empty", vm.WebsiteURL)
	}
}

func TestPresentCurrencies(t *testing.T) {
	price := 43000.5
	currencies := []domain.Currency{
		{ID: 1, Name: "Bitcoin", Symbol: "BTC", LogoURL: "btc.png", PriceUSD: &price},
		{ID: 1027, Name: "Ethereum", Symbol: "ETH", LogoURL: "eth.png"},
	}

	vm := PresentCurrencies(currencies)
	if len(vm.Currencies) != 2 {
		t.Fatalf("len = %d, want 2", len(vm.Currencies))
	}
	if vm.Currencies[0].PriceUSD != "$43000.50" {
		t.Errorf("PriceUSD = %q", vm.Currencies[0].PriceUSD)
	}
	if vm.Currencies[1].PriceUSD != NotAvailable {
		t.Errorf("missing price should render as N/A, got %q", vm.Currencies[1].PriceUSD)
	}
}
