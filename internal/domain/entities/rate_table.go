package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTableRow is one operator-uploaded tariff line for an insurer without a live API.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (rate_key-index): rate_key = broker_id#insurer_slug#product_type
//
// Factors are the operator-defined rating factors; a row applies when every
// factor equals the request's input value for that key.
type RateTableRow struct {
	ID           string            `json:"id"`
	BrokerID     string            `json:"broker_id"`
	InsurerSlug  string            `json:"insurer_slug"`
	ProductType  ProductType       `json:"product_type"`
	CoverageTier CoverageTier      `json:"coverage_tier"`
	Factors      map[string]string `json:"factors,omitempty"`
	Price        decimal.Decimal   `json:"price"`
	Currency     string            `json:"currency"`
	Deductible   *decimal.Decimal  `json:"deductible,omitempty"`
	Coverage     map[string]any    `json:"coverage,omitempty"`
	Position     int               `json:"position"`
	CreatedAt    time.Time         `json:"created_at"`
}

func RateKey(brokerID, insurerSlug string, productType ProductType) string {
	return brokerID + "#" + insurerSlug + "#" + string(productType)
}
