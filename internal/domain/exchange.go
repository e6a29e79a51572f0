package domain

import "time"

// Exchange is one row of the exchange list. LogoURL is never empty: it is
// either taken from the API or constructed from the exchange ID.
//
// SpotVolumeUSD == 0 means "no data", not a true zero-volume reading; a zero
// DateLaunched means the launch date is unknown. Formatting code special-cases
// both sentinels.
type Exchange struct {
	ID            int
	Name          string
	Slug          string
	LogoURL       string
	SpotVolumeUSD float64
	DateLaunched  time.Time
}

// ExchangeDetail extends Exchange with the fields the info endpoint exposes.
// MakerFee and TakerFee are percentages as decimals (0.1 == 0.10%) and are nil
// when the caller's plan does not surface them.
type ExchangeDetail struct {
	ID            int
	Name          string
	Slug          string
	LogoURL       string
	SpotVolumeUSD float64
	DateLaunched  time.Time
	Description   string
	WebsiteURL    *string
	MakerFee      *float64
	TakerFee      *float64
}

// Currency is a base currency traded on an exchange. DateAdded defaults to the
// time of normalization when the upstream omits it, unlike Exchange which uses
// the zero time; the two missing-data policies are intentionally different.
// PriceUSD is present only when derived from a market-pair quote.
type Currency struct {
	ID        int
	Name      string
	Symbol    string
	Slug      string
	LogoURL   string
	DateAdded time.Time
	PriceUSD  *float64
}
