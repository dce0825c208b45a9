package interfaces

import (
	"broker_quotes/internal/domain/entities"
	"context"
)

// IInsurerAdapter is implemented by every insurer integration.
//
// GetQuote either returns a normalized quote or fails with an
// *entities.AdapterError; it never signals failure through a zero price.
// Implementations must treat credentials as read-only and retry at most once,
// and only for transient network errors.
type IInsurerAdapter interface {
	GetQuote(ctx context.Context, credentials entities.Credentials, req entities.QuoteRequest) (entities.InsurerQuote, error)
}

// IAdapterRegistry resolves the adapter for a connection. It always returns an
// adapter; unknown adapter types fall back to the manual rate table.
type IAdapterRegistry interface {
	Resolve(conn entities.InsurerConnection) IInsurerAdapter
}
