package interfaces

import (
	"broker_quotes/internal/domain/entities"
	"context"
)

// IInsurerConnectionRepository abstracts persistence for broker-to-insurer links.

type IInsurerConnectionRepository interface {
	Create(ctx context.Context, c entities.InsurerConnection) (entities.InsurerConnection, error)
	GetByID(ctx context.Context, id string) (entities.InsurerConnection, error)
	ListByBrokerID(ctx context.Context, brokerID string) ([]entities.InsurerConnection, error)
	ListActiveByBrokerAndProduct(ctx context.Context, brokerID string, product entities.ProductType) ([]entities.InsurerConnection, error)
	Deactivate(ctx context.Context, id string) (entities.InsurerConnection, error)
}
