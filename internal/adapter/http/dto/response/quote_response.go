package response

import (
	"sort"
	"time"

	"broker_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type QuoteLineResponse struct {
	ID           string           `json:"id"`
	ConnectionID string           `json:"connection_id"`
	InsurerName  string           `json:"insurer_name"`
	InsurerSlug  string           `json:"insurer_slug"`
	Status       string           `json:"status"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Currency     string           `json:"currency,omitempty"`
	Coverage     map[string]any   `json:"coverage,omitempty"`
	Deductible   *decimal.Decimal `json:"deductible,omitempty"`
	IsRealtime   bool             `json:"is_realtime"`
	ErrorCode    string           `json:"error_code,omitempty"`
	ErrorMessage string           `json:"error_message,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// RequestQuoteResponse answers a fan-out run. Results holds only available lines.
type RequestQuoteResponse struct {
	QuoteID           string              `json:"quote_id"`
	Status            string              `json:"status"`
	Results           []QuoteLineResponse `json:"results"`
	InsurersQueried   int                 `json:"insurers_queried"`
	InsurersSucceeded int                 `json:"insurers_succeeded"`
}

type QuoteResponse struct {
	ID                string              `json:"id"`
	BrokerID          string              `json:"broker_id"`
	ConversationID    string              `json:"conversation_id,omitempty"`
	ProductType       string              `json:"product_type"`
	CoverageTier      string              `json:"coverage_tier"`
	InputData         map[string]any      `json:"input_data"`
	Status            string              `json:"status"`
	InsurersQueried   int                 `json:"insurers_queried"`
	InsurersSucceeded int                 `json:"insurers_succeeded"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	Lines             []QuoteLineResponse `json:"lines,omitempty"`
}

func FromQuoteLine(l entities.QuoteLineResult) QuoteLineResponse {
	res := QuoteLineResponse{
		ID:           l.ID,
		ConnectionID: l.ConnectionID,
		InsurerName:  l.InsurerName,
		InsurerSlug:  l.InsurerSlug,
		Status:       string(l.Status),
		IsRealtime:   l.IsRealtime,
		ErrorCode:    l.ErrorCode,
		ErrorMessage: l.ErrorMessage,
		CreatedAt:    l.CreatedAt,
	}
	// Pricing fields are meaningless on error lines.
	if l.Available() {
		price := l.Price
		res.Price = &price
		res.Currency = l.Currency
		res.Coverage = l.Coverage
		res.Deductible = l.Deductible
	}
	return res
}

func FromQuoteLines(lines []entities.QuoteLineResult) []QuoteLineResponse {
	out := make([]QuoteLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, FromQuoteLine(l))
	}
	return out
}

func FromRequestQuote(q entities.Quote, results []entities.QuoteLineResult, queried, succeeded int) RequestQuoteResponse {
	return RequestQuoteResponse{
		QuoteID:           q.ID,
		Status:            string(q.Status),
		Results:           FromQuoteLines(results),
		InsurersQueried:   queried,
		InsurersSucceeded: succeeded,
	}
}

func FromQuote(q entities.Quote, lines []entities.QuoteLineResult) QuoteResponse {
	res := QuoteResponse{
		ID:                q.ID,
		BrokerID:          q.BrokerID,
		ConversationID:    q.ConversationID,
		ProductType:       string(q.ProductType),
		CoverageTier:      string(q.CoverageTier),
		InputData:         q.InputData,
		Status:            string(q.Status),
		InsurersQueried:   q.InsurersQueried,
		InsurersSucceeded: q.InsurersSucceeded,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
	if lines != nil {
		res.Lines = FromQuoteLines(lines)
	}
	return res
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q, nil))
	}
	return out
}

// SortByPrice orders available lines by ascending price and keeps error lines
// after them in their original order. Presentation only; nothing is ranked
// or dropped.
func SortByPrice(lines []QuoteLineResponse) {
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i].Price, lines[j].Price
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.LessThan(*b)
		}
	})
}
