package interfaces

import (
	"broker_quotes/internal/domain/entities"
	"context"
)

// IRateTableRepository stores operator-uploaded tariffs, one table per
// broker, insurer and product.

type IRateTableRepository interface {
	ReplaceRows(ctx context.Context, brokerID, insurerSlug string, product entities.ProductType, rows []entities.RateTableRow) error
	ListRows(ctx context.Context, brokerID, insurerSlug string, product entities.ProductType) ([]entities.RateTableRow, error)
}
