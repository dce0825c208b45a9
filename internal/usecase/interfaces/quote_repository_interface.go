package interfaces

import (
	"broker_quotes/internal/domain/entities"
	"context"
)

// IQuoteRepository abstracts persistence for quote aggregates and their line results.
//
// The aggregation engine must be able to:
//   - create the aggregate in pending status before fanning out
//   - write exactly one line result per eligible connection
//   - record the terminal status once every adapter has settled
//
// Lookups return a zero-value Quote (empty ID) when nothing matches.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByBrokerID(ctx context.Context, brokerID string) ([]entities.Quote, error)
	UpdateOutcome(ctx context.Context, id string, status entities.QuoteStatus, queried, succeeded int) (entities.Quote, error)
	CreateLines(ctx context.Context, quoteID string, lines []entities.QuoteLineResult) error
	ListLinesByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteLineResult, error)
}
