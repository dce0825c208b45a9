package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"broker_quotes/internal/domain/entities"
	"broker_quotes/internal/usecase/interfaces"

	"github.com/uptrace/bun"
)

type InsurerConnectionPostgresRepository struct {
	db *bun.DB
}

var _ interfaces.IInsurerConnectionRepository = (*InsurerConnectionPostgresRepository)(nil)

func NewInsurerConnectionPostgresRepository(db *bun.DB) *InsurerConnectionPostgresRepository {
	return &InsurerConnectionPostgresRepository{db: db}
}

func (r *InsurerConnectionPostgresRepository) Create(ctx context.Context, c entities.InsurerConnection) (entities.InsurerConnection, error) {
	m := toInsurerConnectionModel(c)
	if _, err := r.db.NewInsert().Model(&m).Exec(ctx); err != nil {
		return entities.InsurerConnection{}, err
	}
	return c, nil
}

func (r *InsurerConnectionPostgresRepository) GetByID(ctx context.Context, id string) (entities.InsurerConnection, error) {
	var m insurerConnectionModel
	err := r.db.NewSelect().Model(&m).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.InsurerConnection{}, nil
	}
	if err != nil {
		return entities.InsurerConnection{}, err
	}
	return m.toEntity(), nil
}

func (r *InsurerConnectionPostgresRepository) ListByBrokerID(ctx context.Context, brokerID string) ([]entities.InsurerConnection, error) {
	var ms []insurerConnectionModel
	if err := r.brokerQuery(&ms, brokerID).Scan(ctx); err != nil {
		return nil, err
	}
	return connectionsFromModels(ms), nil
}

func (r *InsurerConnectionPostgresRepository) ListActiveByBrokerAndProduct(ctx context.Context, brokerID string, product entities.ProductType) ([]entities.InsurerConnection, error) {
	var ms []insurerConnectionModel
	if err := r.eligibleQuery(&ms, brokerID, product).Scan(ctx); err != nil {
		return nil, err
	}
	return connectionsFromModels(ms), nil
}

func (r *InsurerConnectionPostgresRepository) brokerQuery(dest *[]insurerConnectionModel, brokerID string) *bun.SelectQuery {
	return r.db.NewSelect().Model(dest).Where("broker_id = ?", brokerID).Order("created_at ASC")
}

func (r *InsurerConnectionPostgresRepository) eligibleQuery(dest *[]insurerConnectionModel, brokerID string, product entities.ProductType) *bun.SelectQuery {
	return r.brokerQuery(dest, brokerID).
		Where("active").
		Where("? = ANY(supported_products)", string(product))
}

func (r *InsurerConnectionPostgresRepository) Deactivate(ctx context.Context, id string) (entities.InsurerConnection, error) {
	var m insurerConnectionModel
	err := r.db.NewUpdate().
		Model(&m).
		Set("active = FALSE").
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Returning("*").
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.InsurerConnection{}, nil
	}
	if err != nil {
		return entities.InsurerConnection{}, err
	}
	return m.toEntity(), nil
}

func connectionsFromModels(ms []insurerConnectionModel) []entities.InsurerConnection {
	res := make([]entities.InsurerConnection, 0, len(ms))
	for _, m := range ms {
		res = append(res, m.toEntity())
	}
	return res
}
