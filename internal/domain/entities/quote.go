package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "USD"

// QuoteStatus represents the lifecycle of one aggregation run.
//
// Transitions: pending -> {completed, error, no_insurers}. The three outcome
// states are terminal and no in-progress state is ever persisted.
type QuoteStatus string

const (
	QuoteStatusPending    QuoteStatus = "pending"
	QuoteStatusCompleted  QuoteStatus = "completed"
	QuoteStatusError      QuoteStatus = "error"
	QuoteStatusNoInsurers QuoteStatus = "no_insurers"
)

func (s QuoteStatus) Terminal() bool {
	return s == QuoteStatusCompleted || s == QuoteStatusError || s == QuoteStatusNoInsurers
}

// Quote is the aggregate persisted for one fan-out run.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (broker_id-index): broker_id
//
// Aggregates are created fresh per run and never deleted by this service.
type Quote struct {
	ID                string         `json:"id"`
	BrokerID          string         `json:"broker_id"`
	ConversationID    string         `json:"conversation_id,omitempty"`
	ProductType       ProductType    `json:"product_type"`
	InputData         map[string]any `json:"input_data"`
	CoverageTier      CoverageTier   `json:"coverage_tier"`
	Status            QuoteStatus    `json:"status"`
	InsurersQueried   int            `json:"insurers_queried"`
	InsurersSucceeded int            `json:"insurers_succeeded"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type QuoteLineStatus string

const (
	QuoteLineAvailable QuoteLineStatus = "available"
	QuoteLineError     QuoteLineStatus = "error"
)

// QuoteLineResult is one insurer's outcome inside an aggregate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// Price, Currency, Coverage, Deductible and IsRealtime are only meaningful when
// Status is available; Status is the authoritative success signal.
type QuoteLineResult struct {
	ID           string           `json:"id"`
	QuoteID      string           `json:"quote_id"`
	ConnectionID string           `json:"connection_id"`
	InsurerName  string           `json:"insurer_name"`
	InsurerSlug  string           `json:"insurer_slug"`
	Status       QuoteLineStatus  `json:"status"`
	Price        decimal.Decimal  `json:"price"`
	Currency     string           `json:"currency,omitempty"`
	Coverage     map[string]any   `json:"coverage,omitempty"`
	Deductible   *decimal.Decimal `json:"deductible,omitempty"`
	IsRealtime   bool             `json:"is_realtime"`
	ErrorCode    string           `json:"error_code,omitempty"`
	ErrorMessage string           `json:"error_message,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

func (l QuoteLineResult) Available() bool {
	return l.Status == QuoteLineAvailable
}

// AggregateStatus derives the aggregate status from its line results:
// no lines means no eligible insurers, any available line means completed,
// otherwise every insurer failed.
func AggregateStatus(lines []QuoteLineResult) QuoteStatus {
	if len(lines) == 0 {
		return QuoteStatusNoInsurers
	}
	for _, l := range lines {
		if l.Available() {
			return QuoteStatusCompleted
		}
	}
	return QuoteStatusError
}

// InsurerQuote is the normalized payload an adapter returns on success.
type InsurerQuote struct {
	InsurerName string
	InsurerSlug string
	Price       decimal.Decimal
	Currency    string
	Coverage    map[string]any
	Deductible  *decimal.Decimal
	IsRealtime  bool
}
