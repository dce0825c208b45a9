package insurers

import (
	"context"
	"fmt"
	"strings"

	"broker_quotes/internal/domain/entities"
	"broker_quotes/internal/usecase/interfaces"
	logx "broker_quotes/pkg/logger"
)

// RateTableAdapter quotes from operator-uploaded tariffs for insurers
// without a live API. Its prices are never real-time.
type RateTableAdapter struct {
	brokerID string
	insurer  entities.Insurer
	rates    interfaces.IRateTableRepository
}

var _ interfaces.IInsurerAdapter = (*RateTableAdapter)(nil)

func NewRateTableAdapter(brokerID string, insurer entities.Insurer, rates interfaces.IRateTableRepository) *RateTableAdapter {
	return &RateTableAdapter{brokerID: brokerID, insurer: insurer, rates: rates}
}

func (a *RateTableAdapter) GetQuote(ctx context.Context, _ entities.Credentials, req entities.QuoteRequest) (entities.InsurerQuote, error) {
	slug := a.insurer.Slug
	if a.rates == nil {
		return entities.InsurerQuote{}, entities.NewAdapterError(entities.AdapterErrInternal, slug, "rate table store not configured", nil)
	}

	rows, err := a.rates.ListRows(ctx, a.brokerID, slug, req.ProductType())
	if err != nil {
		if ctx.Err() != nil {
			return entities.InsurerQuote{}, entities.NewAdapterError(entities.AdapterErrTimeout, slug, "rate table lookup timed out", err)
		}
		return entities.InsurerQuote{}, entities.NewAdapterError(entities.AdapterErrUpstreamUnavailable, slug, "rate table lookup failed", err)
	}

	row, ok := matchTariff(rows, req)
	if !ok {
		logger := logx.Component("insurers.rate_table")
		logger.Debug().
			Str("insurer_slug", slug).
			Str("product_type", string(req.ProductType())).
			Str("coverage_tier", string(req.CoverageTier())).
			Int("rows", len(rows)).
			Msg("no tariff row matched")
		return entities.InsurerQuote{}, entities.NewAdapterError(
			entities.AdapterErrNoMatchingTariff, slug,
			fmt.Sprintf("no tariff for product=%s tier=%s", req.ProductType(), req.CoverageTier()), nil)
	}

	currency := strings.ToUpper(strings.TrimSpace(row.Currency))
	if currency == "" {
		currency = entities.DefaultCurrency
	}
	return entities.InsurerQuote{
		InsurerName: a.insurer.Name,
		InsurerSlug: slug,
		Price:       row.Price,
		Currency:    currency,
		Coverage:    row.Coverage,
		Deductible:  row.Deductible,
		IsRealtime:  false,
	}, nil
}

// matchTariff picks the most specific applicable row; ties go to the row
// uploaded first.
func matchTariff(rows []entities.RateTableRow, req entities.QuoteRequest) (entities.RateTableRow, bool) {
	var (
		best  entities.RateTableRow
		found bool
	)
	for _, row := range rows {
		if row.ProductType != req.ProductType() || row.CoverageTier != req.CoverageTier() {
			continue
		}
		if row.Price.IsNegative() || !factorsMatch(row.Factors, req) {
			continue
		}
		if !found ||
			len(row.Factors) > len(best.Factors) ||
			(len(row.Factors) == len(best.Factors) && row.Position < best.Position) {
			best = row
			found = true
		}
	}
	return best, found
}

func factorsMatch(factors map[string]string, req entities.QuoteRequest) bool {
	for key, want := range factors {
		got, ok := req.Input(key)
		if !ok || got == nil {
			return false
		}
		if !strings.EqualFold(strings.TrimSpace(fmt.Sprint(got)), strings.TrimSpace(want)) {
			return false
		}
	}
	return true
}
