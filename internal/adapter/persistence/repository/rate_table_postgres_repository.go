package repository

import (
	"context"
	"database/sql"

	"broker_quotes/internal/domain/entities"
	"broker_quotes/internal/usecase/interfaces"

	"github.com/uptrace/bun"
)

// RateTablePostgresRepository replaces a tariff table inside one transaction.
type RateTablePostgresRepository struct {
	db *bun.DB
}

var _ interfaces.IRateTableRepository = (*RateTablePostgresRepository)(nil)

func NewRateTablePostgresRepository(db *bun.DB) *RateTablePostgresRepository {
	return &RateTablePostgresRepository{db: db}
}

func (r *RateTablePostgresRepository) ReplaceRows(ctx context.Context, brokerID, insurerSlug string, product entities.ProductType, rows []entities.RateTableRow) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*rateTableRowModel)(nil)).
			Where("broker_id = ?", brokerID).
			Where("insurer_slug = ?", insurerSlug).
			Where("product_type = ?", string(product)).
			Exec(ctx)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}

		ms := make([]rateTableRowModel, 0, len(rows))
		for _, row := range rows {
			row.BrokerID, row.InsurerSlug, row.ProductType = brokerID, insurerSlug, product
			ms = append(ms, toRateTableRowModel(row))
		}
		_, err = tx.NewInsert().Model(&ms).Exec(ctx)
		return err
	})
}

func (r *RateTablePostgresRepository) ListRows(ctx context.Context, brokerID, insurerSlug string, product entities.ProductType) ([]entities.RateTableRow, error) {
	var ms []rateTableRowModel
	if err := r.listQuery(&ms, brokerID, insurerSlug, product).Scan(ctx); err != nil {
		return nil, err
	}
	res := make([]entities.RateTableRow, 0, len(ms))
	for _, m := range ms {
		res = append(res, m.toEntity())
	}
	return res, nil
}

func (r *RateTablePostgresRepository) listQuery(dest *[]rateTableRowModel, brokerID, insurerSlug string, product entities.ProductType) *bun.SelectQuery {
	return r.db.NewSelect().
		Model(dest).
		Where("broker_id = ?", brokerID).
		Where("insurer_slug = ?", insurerSlug).
		Where("product_type = ?", string(product)).
		Order("position ASC")
}
