package models

// Raw response shapes for the CoinMarketCap exchange endpoints. Every payload
// arrives wrapped in an envelope carrying a status block; a non-zero
// status.error_code marks an application-level failure even on HTTP 200.

type Status struct {
	Timestamp    string `json:"timestamp"`
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

type ErrorEnvelope struct {
	Status Status `json:"status"`
}

// ExchangeListResponse covers both /v1/exchange/listings/latest and
// /v1/exchange/map: the two endpoints return the same array shape but differ
// in where the spot volume lives (nested quote vs. flat field).
type ExchangeListResponse struct {
	Data   []ExchangeDTO `json:"data"`
	Status Status        `json:"status"`
}

type ExchangeDTO struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Logo          string    `json:"logo"`
	DateLaunched  string    `json:"date_launched"`
	LastUpdated   string    `json:"last_updated"`
	SpotVolumeUSD *float64  `json:"spot_volume_usd"`
	Quote         *QuoteDTO `json:"quote"`
}

type QuoteDTO struct {
	USD *USDQuoteDTO `json:"USD"`
}

type USDQuoteDTO struct {
	SpotVolumeUSD *float64 `json:"spot_volume_usd"`
	Price         *float64 `json:"price"`
}

// ExchangeInfoResponse is the /v1/exchange/info envelope. Data is keyed by
// the stringified exchange id; a single entry is expected.
type ExchangeInfoResponse struct {
	Data   map[string]ExchangeDetailDTO `json:"data"`
	Status Status                       `json:"status"`
}

type ExchangeDetailDTO struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Logo          string           `json:"logo"`
	DateLaunched  string           `json:"date_launched"`
	SpotVolumeUSD *float64         `json:"spot_volume_usd"`
	Description   string           `json:"description"`
	URLs          *ExchangeURLsDTO `json:"urls"`
	MakerFee      *float64         `json:"maker_fee"`
	TakerFee      *float64         `json:"taker_fee"`
}

type ExchangeURLsDTO struct {
	Website []string `json:"website"`
}

// MarketPairsResponse is the /v1/exchange/market-pairs/latest envelope.
type MarketPairsResponse struct {
	Data   MarketPairsDataDTO `json:"data"`
	Status Status             `json:"status"`
}

type MarketPairsDataDTO struct {
	MarketPairs []MarketPairDTO `json:"market_pairs"`
}

type MarketPairDTO struct {
	BaseCurrency CurrencyDTO `json:"base_currency"`
	Quote        *QuoteDTO   `json:"quote"`
}

type CurrencyDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Slug      string `json:"slug"`
	Logo      string `json:"logo"`
	DateAdded string `json:"date_added"`
}
