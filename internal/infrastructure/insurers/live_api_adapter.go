package insurers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"broker_quotes/internal/domain/entities"
	"broker_quotes/internal/usecase/interfaces"
	logx "broker_quotes/pkg/logger"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

const (
	defaultQuotePath      = "/quotes"
	defaultRetryDelay     = 200 * time.Millisecond
	maxResponseSizeBytes  = 1 << 20
	idempotencyKeyHeader  = "Idempotency-Key"
	unsupportedProductErr = "unsupported_product"
)

// LiveAPICredentials is the typed view of a live-API connection's credentials.
type LiveAPICredentials struct {
	BaseURL   string `mapstructure:"base_url"`
	APIKey    string `mapstructure:"api_key"`
	QuotePath string `mapstructure:"quote_path"`
	Currency  string `mapstructure:"currency"`
}

func DecodeLiveAPICredentials(raw entities.Credentials) (LiveAPICredentials, error) {
	var creds LiveAPICredentials
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &creds,
	})
	if err != nil {
		return LiveAPICredentials{}, err
	}
	if err := dec.Decode(map[string]any(raw)); err != nil {
		return LiveAPICredentials{}, err
	}

	creds.BaseURL = strings.TrimRight(strings.TrimSpace(creds.BaseURL), "/")
	creds.APIKey = strings.TrimSpace(creds.APIKey)
	if creds.BaseURL == "" {
		return LiveAPICredentials{}, errors.New("base_url is required")
	}
	if creds.APIKey == "" {
		return LiveAPICredentials{}, errors.New("api_key is required")
	}
	if creds.QuotePath = strings.TrimSpace(creds.QuotePath); creds.QuotePath == "" {
		creds.QuotePath = defaultQuotePath
	} else if !strings.HasPrefix(creds.QuotePath, "/") {
		creds.QuotePath = "/" + creds.QuotePath
	}
	if creds.Currency = strings.ToUpper(strings.TrimSpace(creds.Currency)); creds.Currency == "" {
		creds.Currency = entities.DefaultCurrency
	}
	return creds, nil
}

// LiveAPIOption customizes LiveAPIAdapter.
type LiveAPIOption func(*LiveAPIAdapter)

func WithHTTPClient(client *http.Client) LiveAPIOption {
	return func(a *LiveAPIAdapter) {
		if client != nil {
			a.httpClient = client
		}
	}
}

func WithRetryDelay(d time.Duration) LiveAPIOption {
	return func(a *LiveAPIAdapter) {
		if d >= 0 {
			a.retryDelay = d
		}
	}
}

// LiveAPIAdapter quotes against an insurer's real-time rate API.
type LiveAPIAdapter struct {
	insurer    entities.Insurer
	httpClient *http.Client
	retryDelay time.Duration
}

var _ interfaces.IInsurerAdapter = (*LiveAPIAdapter)(nil)

func NewLiveAPIAdapter(insurer entities.Insurer, opts ...LiveAPIOption) *LiveAPIAdapter {
	a := &LiveAPIAdapter{
		insurer:    insurer,
		httpClient: http.DefaultClient,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

type liveQuoteRequest struct {
	ProductType  string         `json:"product_type"`
	CoverageTier string         `json:"coverage_tier"`
	InputData    map[string]any `json:"input_data"`
}

type liveQuoteResponse struct {
	Price      *decimal.Decimal `json:"price"`
	Currency   string           `json:"currency"`
	Coverage   map[string]any   `json:"coverage"`
	Deductible *decimal.Decimal `json:"deductible"`
	Error      string           `json:"error"`
	Code       string           `json:"code"`
}

func (a *LiveAPIAdapter) GetQuote(ctx context.Context, credentials entities.Credentials, req entities.QuoteRequest) (entities.InsurerQuote, error) {
	slug := a.insurer.Slug
	logger := logx.Component("insurers.live_api").With().Str("insurer_slug", slug).Logger()

	creds, err := DecodeLiveAPICredentials(credentials)
	if err != nil {
		return entities.InsurerQuote{}, entities.NewAdapterError(entities.AdapterErrInvalidCredentials, slug, "invalid live api credentials", err)
	}

	body, err := json.Marshal(liveQuoteRequest{
		ProductType:  string(req.ProductType()),
		CoverageTier: string(req.CoverageTier()),
		InputData:    req.InputData(),
	})
	if err != nil {
		return entities.InsurerQuote{}, entities.NewAdapterError(entities.AdapterErrInternal, slug, "encode request", err)
	}

	url := creds.BaseURL + creds.QuotePath
	// Both attempts carry the same key so the insurer can collapse a replay.
	idempotencyKey := uuid.NewString()
	var (
		status  int
		payload []byte
	)
	for attempt := 0; attempt < 2; attempt++ {
		status, payload, err = a.post(ctx, url, creds.APIKey, idempotencyKey, body)
		retry := attempt == 0 && ctx.Err() == nil && (isTransientNetworkError(err) || (err == nil && isTransientStatus(status)))
		if !retry {
			break
		}
		logger.Warn().Err(err).Int("status", status).Msg("transient failure, retrying once")
		if !sleepCtx(ctx, a.retryDelay) {
			break
		}
	}
	if err != nil {
		if isTimeout(ctx, err) {
			return entities.InsurerQuote{}, entities.NewAdapterError(entities.AdapterErrTimeout, slug, "insurer api timed out", err)
		}
		return entities.InsurerQuote{}, entities.NewAdapterError(entities.AdapterErrUpstreamUnavailable, slug, "insurer api unreachable", err)
	}

	var resp liveQuoteResponse
	decodeErr := json.Unmarshal(payload, &resp)

	if adapterErr := classifyStatus(slug, status, resp); adapterErr != nil {
		logger.Info().Int("status", status).Str("error_code", string(adapterErr.Kind)).Msg("insurer api rejected quote")
		return entities.InsurerQuote{}, adapterErr
	}
	if decodeErr != nil {
		return entities.InsurerQuote{}, entities.NewAdapterError(entities.AdapterErrMalformedResponse, slug, "response is not valid json", decodeErr)
	}
	if resp.Price == nil {
		return entities.InsurerQuote{}, entities.NewAdapterError(entities.AdapterErrMalformedResponse, slug, "response has no price", nil)
	}
	if resp.Price.IsNegative() {
		return entities.InsurerQuote{}, entities.NewAdapterError(entities.AdapterErrMalformedResponse, slug, "response has negative price "+resp.Price.String(), nil)
	}

	currency := strings.ToUpper(strings.TrimSpace(resp.Currency))
	if currency == "" {
		currency = creds.Currency
	}
	return entities.InsurerQuote{
		InsurerName: a.insurer.Name,
		InsurerSlug: slug,
		Price:       *resp.Price,
		Currency:    currency,
		Coverage:    resp.Coverage,
		Deductible:  resp.Deductible,
		IsRealtime:  true,
	}, nil
}

func (a *LiveAPIAdapter) post(ctx context.Context, url, apiKey, idempotencyKey string, body []byte) (int, []byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	httpReq.Header.Set(idempotencyKeyHeader, idempotencyKey)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, payload, nil
}

func classifyStatus(slug string, status int, resp liveQuoteResponse) *entities.AdapterError {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return entities.NewAdapterError(entities.AdapterErrAuthentication, slug, fmt.Sprintf("insurer api rejected credentials (status %d)", status), nil)
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return entities.NewAdapterError(entities.AdapterErrTimeout, slug, fmt.Sprintf("insurer api timed out (status %d)", status), nil)
	case status == http.StatusUnprocessableEntity && (resp.Code == unsupportedProductErr || resp.Error == unsupportedProductErr):
		return entities.NewAdapterError(entities.AdapterErrUnsupportedProduct, slug, "insurer does not quote this product", nil)
	default:
		msg := fmt.Sprintf("insurer api returned status %d", status)
		if resp.Error != "" {
			msg += ": " + resp.Error
		}
		return entities.NewAdapterError(entities.AdapterErrUpstreamUnavailable, slug, msg, nil)
	}
}

func isTransientStatus(status int) bool {
	return status == http.StatusBadGateway || status == http.StatusServiceUnavailable
}

// isTransientNetworkError only accepts failures where the request never
// reached the insurer. A reset or EOF may follow a delivered request.
func isTransientNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED)
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
