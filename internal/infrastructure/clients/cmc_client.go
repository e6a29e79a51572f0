package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/coinlens/cls/internal/domain"
	"github.com/coinlens/cls/internal/domain/models"
	"github.com/coinlens/cls/pkg/config"
)

const apiKeyHeader = "X-CMC_PRO_API_KEY"

// CMCClient talks to the CoinMarketCap pro API. All calls are plain GETs with
// the API key in a header; responses are decoded per the envelope contract in
// checkEnvelope.
type CMCClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewCMCClient(cfg *config.CoinMarketCapConfig, logger zerolog.Logger) *CMCClient {
	return &CMCClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		logger: logger.With().Str("component", "cmc_client").Logger(),
	}
}

func (c *CMCClient) ExchangeListings(ctx context.Context) (*models.ExchangeListResponse, error) {
	query := url.Values{}
	query.Set("sort", "volume_24h")
	query.Set("limit", "100")

	var response models.ExchangeListResponse
	if err := c.get(ctx, "/v1/exchange/listings/latest", query, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *CMCClient) ExchangeMap(ctx context.Context) (*models.ExchangeListResponse, error) {
	query := url.Values{}
	query.Set("listing_status", "active")
	query.Set("sort", "id")

	var response models.ExchangeListResponse
	if err := c.get(ctx, "/v1/exchange/map", query, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *CMCClient) ExchangeMapByID(ctx context.Context, id int) (*models.ExchangeListResponse, error) {
	query := url.Values{}
	query.Set("id", strconv.Itoa(id))

	var response models.ExchangeListResponse
	if err := c.get(ctx, "/v1/exchange/map", query, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *CMCClient) ExchangeInfo(ctx context.Context, id int) (*models.ExchangeInfoResponse, error) {
	query := url.Values{}
	query.Set("id", strconv.Itoa(id))
	query.Set("aux", "urls,logo,description,date_launched,notice,status")

	var response models.ExchangeInfoResponse
	if err := c.get(ctx, "/v1/exchange/info", query, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *CMCClient) MarketPairs(ctx context.Context, id int) (*models.MarketPairsResponse, error) {
	query := url.Values{}
	query.Set("id", strconv.Itoa(id))

	var response models.MarketPairsResponse
	if err := c.get(ctx, "/v1/exchange/market-pairs/latest", query, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// get issues one GET and decodes the body into out. Returned errors are
// always *domain.APIError.
func (c *CMCClient) get(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return domain.NewInvalidResponseError()
	}
	u.Path = path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.NewNetworkError(err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewNetworkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewNetworkError(err)
	}
	if len(body) == 0 {
		return domain.NewNoDataError()
	}

	if err := c.checkEnvelope(path, resp.StatusCode, body); err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Debug().Err(err).Str("path", path).Msg("Failed to decode response payload")
		return domain.NewDecodingError(err)
	}

	return nil
}

// checkEnvelope inspects the status envelope before the payload is decoded.
// The API reports application failures with a non-zero status.error_code even
// under HTTP 200, so that check comes first; only then is the HTTP status
// range validated.
func (c *CMCClient) checkEnvelope(path string, statusCode int, body []byte) error {
	var envelope models.ErrorEnvelope
	envelopeOK := json.Unmarshal(body, &envelope) == nil

	if envelopeOK && envelope.Status.ErrorCode != 0 {
		message := envelope.Status.ErrorMessage
		if message == "" {
			message = "unknown API error"
		}
		c.logger.Warn().
			Str("path", path).
			Int("error_code", envelope.Status.ErrorCode).
			Str("error_message", message).
			Msg("API returned error status")
		return domain.NewAPIError(envelope.Status.ErrorCode, message)
	}

	if statusCode < 200 || statusCode > 299 {
		c.logger.Warn().Str("path", path).Int("status_code", statusCode).Msg("Received non-2xx status")
		// json.Unmarshal fills missing keys with zero values, so require an
		// actual status block before trusting the envelope here.
		if envelopeOK && envelope.Status.Timestamp != "" {
			message := envelope.Status.ErrorMessage
			if message == "" {
				message = "HTTP " + strconv.Itoa(statusCode)
			}
			return domain.NewAPIError(envelope.Status.ErrorCode, message)
		}
		return domain.NewHTTPStatusError(statusCode)
	}

	return nil
}
