package request

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrMissingRowPrice = errors.New("rate table row without price")

type RateTableRowRequest struct {
	CoverageTier string            `json:"coverage_tier"`
	Factors      map[string]string `json:"factors"`
	Price        *decimal.Decimal  `json:"price"`
	Currency     string            `json:"currency"`
	Deductible   *decimal.Decimal  `json:"deductible"`
	Coverage     map[string]any    `json:"coverage"`
}

// RateTableRequest replaces a whole tariff table. Row order is the
// tie-breaker between equally specific rows.
type RateTableRequest struct {
	Rows []RateTableRowRequest `json:"rows"`
}

// Validate checks the rows carry a price; everything else is a domain rule.
func (r RateTableRequest) Validate() error {
	for i, row := range r.Rows {
		if row.Price == nil {
			return fmt.Errorf("%w: row %d", ErrMissingRowPrice, i)
		}
	}
	return nil
}
