package presentation

// View-models carry only display-ready strings (plus identifiers for
// navigation); all formatting decisions are made before they leave this
// package.

type ExchangeRowViewModel struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	LogoURL      string `json:"logo_url"`
	Volume       string `json:"volume"`
	DateLaunched string `json:"date_launched"`
}

type ExchangeListViewModel struct {
	Exchanges []ExchangeRowViewModel `json:"exchanges"`
}

type ExchangeDetailViewModel struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	LogoURL      string `json:"logo_url"`
	Volume       string `json:"volume"`
	DateLaunched string `json:"date_launched"`
	Description  string `json:"description"`
	WebsiteURL   string `json:"website_url,omitempty"`
	MakerFee     string `json:"maker_fee"`
	TakerFee     string `json:"taker_fee"`
}

type CurrencyViewModel struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	LogoURL  string `json:"logo_url"`
	PriceUSD string `json:"price_usd"`
}

type CurrencyListViewModel struct {
	Currencies []CurrencyViewModel `json:"currencies"`
}
