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

// QuotePostgresRepository persists quote aggregates and line results with bun.
type QuotePostgresRepository struct {
	db *bun.DB
}

var _ interfaces.IQuoteRepository = (*QuotePostgresRepository)(nil)

func NewQuotePostgresRepository(db *bun.DB) *QuotePostgresRepository {
	return &QuotePostgresRepository{db: db}
}

func (r *QuotePostgresRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	m := toQuoteModel(q)
	if _, err := r.db.NewInsert().Model(&m).Exec(ctx); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuotePostgresRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var m quoteModel
	err := r.db.NewSelect().Model(&m).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return m.toEntity(), nil
}

func (r *QuotePostgresRepository) ListByBrokerID(ctx context.Context, brokerID string) ([]entities.Quote, error) {
	var ms []quoteModel
	if err := r.db.NewSelect().Model(&ms).Where("broker_id = ?", brokerID).Order("created_at DESC").Scan(ctx); err != nil {
		return nil, err
	}
	res := make([]entities.Quote, 0, len(ms))
	for _, m := range ms {
		res = append(res, m.toEntity())
	}
	return res, nil
}

func (r *QuotePostgresRepository) UpdateOutcome(ctx context.Context, id string, status entities.QuoteStatus, queried, succeeded int) (entities.Quote, error) {
	var m quoteModel
	err := r.db.NewUpdate().
		Model(&m).
		Set("status = ?", string(status)).
		Set("insurers_queried = ?", queried).
		Set("insurers_succeeded = ?", succeeded).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Returning("*").
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return m.toEntity(), nil
}

// CreateLines stores every line in one multi-row insert.
func (r *QuotePostgresRepository) CreateLines(ctx context.Context, quoteID string, lines []entities.QuoteLineResult) error {
	if len(lines) == 0 {
		return nil
	}
	ms := make([]quoteLineModel, 0, len(lines))
	for _, l := range lines {
		l.QuoteID = quoteID
		ms = append(ms, toQuoteLineModel(l))
	}
	_, err := r.db.NewInsert().Model(&ms).Exec(ctx)
	return err
}

func (r *QuotePostgresRepository) ListLinesByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteLineResult, error) {
	var ms []quoteLineModel
	if err := r.db.NewSelect().Model(&ms).Where("quote_id = ?", quoteID).Order("insurer_name ASC").Scan(ctx); err != nil {
		return nil, err
	}
	res := make([]entities.QuoteLineResult, 0, len(ms))
	for _, m := range ms {
		res = append(res, m.toEntity())
	}
	return res, nil
}
