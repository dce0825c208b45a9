package response

import (
	"broker_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type RateTableRowResponse struct {
	ID           string            `json:"id"`
	CoverageTier string            `json:"coverage_tier"`
	Factors      map[string]string `json:"factors,omitempty"`
	Price        decimal.Decimal   `json:"price"`
	Currency     string            `json:"currency"`
	Deductible   *decimal.Decimal  `json:"deductible,omitempty"`
	Coverage     map[string]any    `json:"coverage,omitempty"`
	Position     int               `json:"position"`
}

type RateTableResponse struct {
	BrokerID    string                 `json:"broker_id"`
	InsurerSlug string                 `json:"insurer_slug"`
	ProductType string                 `json:"product_type"`
	Rows        []RateTableRowResponse `json:"rows"`
}

func FromRateTable(brokerID, insurerSlug, productType string, rows []entities.RateTableRow) RateTableResponse {
	out := make([]RateTableRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, RateTableRowResponse{
			ID:           r.ID,
			CoverageTier: string(r.CoverageTier),
			Factors:      r.Factors,
			Price:        r.Price,
			Currency:     r.Currency,
			Deductible:   r.Deductible,
			Coverage:     r.Coverage,
			Position:     r.Position,
		})
	}
	return RateTableResponse{
		BrokerID:    brokerID,
		InsurerSlug: insurerSlug,
		ProductType: productType,
		Rows:        out,
	}
}
