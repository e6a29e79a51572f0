package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/coinlens/cls/internal/domain"
	"github.com/coinlens/cls/pkg/timeutil"
)

// cdnHost prefixes relative logo paths; constructed logo URLs follow the CDN's
// fixed layout of https://s2.coinmarketcap.com/static/img/{kind}/64x64/{id}.png.
const cdnHost = "https://s2.coinmarketcap.com"

// Normalization is pure and never fails: malformed optional fields degrade to
// sentinel values (zero volume, zero launch time), not to errors.

// ToDomain maps a listing or map row to an Exchange. The nested USD quote
// volume wins when the quote object carries a USD entry; only when there is no
// USD quote at all does the flat spot_volume_usd field apply.
func (d ExchangeDTO) ToDomain() domain.Exchange {
	return domain.Exchange{
		ID:            d.ID,
		Name:          d.Name,
		Slug:          d.Slug,
		LogoURL:       logoURL(d.Logo, "exchanges", d.ID),
		SpotVolumeUSD: d.spotVolume(),
		DateLaunched:  launchDate(d.DateLaunched, d.LastUpdated),
	}
}

func (d ExchangeDTO) spotVolume() float64 {
	if d.Quote != nil && d.Quote.USD != nil {
		if v := d.Quote.USD.SpotVolumeUSD; v != nil {
			return *v
		}
		return 0
	}
	if d.SpotVolumeUSD != nil {
		return *d.SpotVolumeUSD
	}
	return 0
}

// ToDomain maps an info-endpoint entry to an ExchangeDetail. Unlike the list
// row there is no last_updated fallback: the info payload does not carry one.
func (d ExchangeDetailDTO) ToDomain() domain.ExchangeDetail {
	volume := 0.0
	if d.SpotVolumeUSD != nil {
		volume = *d.SpotVolumeUSD
	}

	var websiteURL *string
	if d.URLs != nil && len(d.URLs.Website) > 0 {
		websiteURL = &d.URLs.Website[0]
	}

	return domain.ExchangeDetail{
		ID:            d.ID,
		Name:          d.Name,
		Slug:          d.Slug,
		LogoURL:       logoURL(d.Logo, "exchanges", d.ID),
		SpotVolumeUSD: volume,
		DateLaunched:  launchDate(d.DateLaunched, ""),
		Description:   d.Description,
		WebsiteURL:    websiteURL,
		MakerFee:      d.MakerFee,
		TakerFee:      d.TakerFee,
	}
}

// ToDomain maps a base-currency sub-object to a Currency. priceUSD comes from
// the sibling market-pair quote, never from the currency object itself. A
// missing or unparseable date_added defaults to the current time; the exchange
// entities use the zero time instead, and the asymmetry is intentional.
func (d CurrencyDTO) ToDomain(priceUSD *float64) domain.Currency {
	dateAdded, ok := timeutil.ParseISO8601(d.DateAdded)
	if !ok {
		dateAdded = time.Now()
	}

	return domain.Currency{
		ID:        d.ID,
		Name:      d.Name,
		Symbol:    d.Symbol,
		Slug:      d.Slug,
		LogoURL:   logoURL(d.Logo, "coins", d.ID),
		DateAdded: dateAdded,
		PriceUSD:  priceUSD,
	}
}

func logoURL(logo, kind string, id int) string {
	if logo != "" {
		if strings.HasPrefix(logo, "http") {
			return logo
		}
		return cdnHost + logo
	}
	return fmt.Sprintf("%s/static/img/%s/64x64/%d.png", cdnHost, kind, id)
}

func launchDate(dateLaunched, lastUpdated string) time.Time {
	if t, ok := timeutil.ParseISO8601(dateLaunched); ok {
		return t
	}
	// last_updated is a data-freshness timestamp, not a launch date; it is an
	// accepted lossy stand-in when date_launched is missing or unparseable.
	if t, ok := timeutil.ParseISO8601(lastUpdated); ok {
		return t
	}
	return time.Time{}
}
