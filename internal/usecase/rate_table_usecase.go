package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"broker_quotes/internal/domain/entities"
	"broker_quotes/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidRateRow = errors.New("invalid rate table row")

// RateRowInput is one tariff line as uploaded by an operator.
type RateRowInput struct {
	CoverageTier string
	Factors      map[string]string
	Price        decimal.Decimal
	Currency     string
	Deductible   *decimal.Decimal
	Coverage     map[string]any
}

// IRateTableUseCase manages the tariffs behind insurers without a live API.
//
// Upload replaces the whole table for one insurer and product; an empty
// upload clears it.

type IRateTableUseCase interface {
	Upload(ctx context.Context, brokerID, insurerSlug, productType string, rows []RateRowInput) ([]entities.RateTableRow, error)
	List(ctx context.Context, brokerID, insurerSlug, productType string) ([]entities.RateTableRow, error)
}

type RateTableUseCase struct {
	repo interfaces.IRateTableRepository
}

var _ IRateTableUseCase = (*RateTableUseCase)(nil)

func NewRateTableUseCase(repo interfaces.IRateTableRepository) *RateTableUseCase {
	return &RateTableUseCase{repo: repo}
}

func (u *RateTableUseCase) Upload(ctx context.Context, brokerID, insurerSlug, productType string, rows []RateRowInput) ([]entities.RateTableRow, error) {
	brokerID, slug, product, err := rateTableKey(brokerID, insurerSlug, productType)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	out := make([]entities.RateTableRow, 0, len(rows))
	for i, in := range rows {
		tier, err := entities.ParseCoverageTier(in.CoverageTier)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: coverage_tier %q", ErrInvalidRateRow, i, in.CoverageTier)
		}
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: row %d: negative price", ErrInvalidRateRow, i)
		}
		if in.Deductible != nil && in.Deductible.IsNegative() {
			return nil, fmt.Errorf("%w: row %d: negative deductible", ErrInvalidRateRow, i)
		}

		factors := make(map[string]string, len(in.Factors))
		for k, v := range in.Factors {
			k = strings.TrimSpace(k)
			if k == "" {
				return nil, fmt.Errorf("%w: row %d: empty factor name", ErrInvalidRateRow, i)
			}
			factors[k] = strings.TrimSpace(v)
		}

		currency := strings.ToUpper(strings.TrimSpace(in.Currency))
		if currency == "" {
			currency = entities.DefaultCurrency
		}

		out = append(out, entities.RateTableRow{
			ID:           uuid.NewString(),
			BrokerID:     brokerID,
			InsurerSlug:  slug,
			ProductType:  product,
			CoverageTier: tier,
			Factors:      factors,
			Price:        in.Price,
			Currency:     currency,
			Deductible:   in.Deductible,
			Coverage:     in.Coverage,
			Position:     i,
			CreatedAt:    now,
		})
	}

	if err := u.repo.ReplaceRows(ctx, brokerID, slug, product, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (u *RateTableUseCase) List(ctx context.Context, brokerID, insurerSlug, productType string) ([]entities.RateTableRow, error) {
	brokerID, slug, product, err := rateTableKey(brokerID, insurerSlug, productType)
	if err != nil {
		return nil, err
	}
	return u.repo.ListRows(ctx, brokerID, slug, product)
}

func rateTableKey(brokerID, insurerSlug, productType string) (string, string, entities.ProductType, error) {
	brokerID = strings.TrimSpace(brokerID)
	if brokerID == "" {
		return "", "", "", ErrInvalidBrokerID
	}
	slug := strings.ToLower(strings.TrimSpace(insurerSlug))
	if slug == "" {
		return "", "", "", ErrInvalidInsurerSlug
	}
	product, err := entities.ParseProductType(productType)
	if err != nil {
		return "", "", "", ErrInvalidProductType
	}
	return brokerID, slug, product, nil
}
