package repository

import (
	"context"
	"time"

	"broker_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type quoteModel struct {
	bun.BaseModel `bun:"table:quotes,alias:q"`

	ID                string         `bun:"id,pk"`
	BrokerID          string         `bun:"broker_id,notnull"`
	ConversationID    string         `bun:"conversation_id,nullzero"`
	ProductType       string         `bun:"product_type,notnull"`
	InputData         map[string]any `bun:"input_data,type:jsonb"`
	CoverageTier      string         `bun:"coverage_tier,notnull"`
	Status            string         `bun:"status,notnull"`
	InsurersQueried   int            `bun:"insurers_queried,notnull,default:0"`
	InsurersSucceeded int            `bun:"insurers_succeeded,notnull,default:0"`
	CreatedAt         time.Time      `bun:"created_at,notnull"`
	UpdatedAt         time.Time      `bun:"updated_at,notnull"`
}

type quoteLineModel struct {
	bun.BaseModel `bun:"table:quote_line_results,alias:ql"`

	ID           string           `bun:"id,pk"`
	QuoteID      string           `bun:"quote_id,notnull"`
	ConnectionID string           `bun:"connection_id,notnull"`
	InsurerName  string           `bun:"insurer_name,notnull"`
	InsurerSlug  string           `bun:"insurer_slug,notnull"`
	Status       string           `bun:"status,notnull"`
	Price        decimal.Decimal  `bun:"price,type:numeric,notnull"`
	Currency     string           `bun:"currency,nullzero"`
	Coverage     map[string]any   `bun:"coverage,type:jsonb"`
	Deductible   *decimal.Decimal `bun:"deductible,type:numeric"`
	IsRealtime   bool             `bun:"is_realtime,notnull"`
	ErrorCode    string           `bun:"error_code,nullzero"`
	ErrorMessage string           `bun:"error_message,nullzero"`
	CreatedAt    time.Time        `bun:"created_at,notnull"`
}

type insurerConnectionModel struct {
	bun.BaseModel `bun:"table:insurer_connections,alias:ic"`

	ID                string         `bun:"id,pk"`
	BrokerID          string         `bun:"broker_id,notnull"`
	InsurerName       string         `bun:"insurer_name,notnull"`
	InsurerSlug       string         `bun:"insurer_slug,notnull"`
	AdapterType       string         `bun:"adapter_type,notnull"`
	SupportedProducts []string       `bun:"supported_products,array"`
	Credentials       map[string]any `bun:"credentials,type:jsonb"`
	Active            bool           `bun:"active,notnull"`
	CreatedAt         time.Time      `bun:"created_at,notnull"`
	UpdatedAt         time.Time      `bun:"updated_at,notnull"`
}

type rateTableRowModel struct {
	bun.BaseModel `bun:"table:rate_table_rows,alias:rt"`

	ID           string            `bun:"id,pk"`
	BrokerID     string            `bun:"broker_id,notnull"`
	InsurerSlug  string            `bun:"insurer_slug,notnull"`
	ProductType  string            `bun:"product_type,notnull"`
	CoverageTier string            `bun:"coverage_tier,notnull"`
	Factors      map[string]string `bun:"factors,type:jsonb"`
	Price        decimal.Decimal   `bun:"price,type:numeric,notnull"`
	Currency     string            `bun:"currency,notnull"`
	Deductible   *decimal.Decimal  `bun:"deductible,type:numeric"`
	Coverage     map[string]any    `bun:"coverage,type:jsonb"`
	Position     int               `bun:"position,notnull"`
	CreatedAt    time.Time         `bun:"created_at,notnull"`
}

// EnsureSchema creates the tables and lookup indexes when missing.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*quoteModel)(nil),
		(*quoteLineModel)(nil),
		(*insurerConnectionModel)(nil),
		(*rateTableRowModel)(nil),
	}
	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}

	indexes := []struct {
		model   any
		name    string
		columns []string
	}{
		{(*quoteModel)(nil), "quotes_broker_id_idx", []string{"broker_id", "created_at"}},
		{(*quoteLineModel)(nil), "quote_line_results_quote_id_idx", []string{"quote_id"}},
		{(*insurerConnectionModel)(nil), "insurer_connections_broker_id_idx", []string{"broker_id"}},
		{(*rateTableRowModel)(nil), "rate_table_rows_key_idx", []string{"broker_id", "insurer_slug", "product_type"}},
	}
	for _, idx := range indexes {
		if _, err := db.NewCreateIndex().Model(idx.model).Index(idx.name).Column(idx.columns...).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func toQuoteModel(q entities.Quote) quoteModel {
	return quoteModel{
		ID:                q.ID,
		BrokerID:          q.BrokerID,
		ConversationID:    q.ConversationID,
		ProductType:       string(q.ProductType),
		InputData:         q.InputData,
		CoverageTier:      string(q.CoverageTier),
		Status:            string(q.Status),
		InsurersQueried:   q.InsurersQueried,
		InsurersSucceeded: q.InsurersSucceeded,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
}

func (m quoteModel) toEntity() entities.Quote {
	return entities.Quote{
		ID:                m.ID,
		BrokerID:          m.BrokerID,
		ConversationID:    m.ConversationID,
		ProductType:       entities.ProductType(m.ProductType),
		InputData:         m.InputData,
		CoverageTier:      entities.CoverageTier(m.CoverageTier),
		Status:            entities.QuoteStatus(m.Status),
		InsurersQueried:   m.InsurersQueried,
		InsurersSucceeded: m.InsurersSucceeded,
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
}

func toQuoteLineModel(l entities.QuoteLineResult) quoteLineModel {
	return quoteLineModel{
		ID:           l.ID,
		QuoteID:      l.QuoteID,
		ConnectionID: l.ConnectionID,
		InsurerName:  l.InsurerName,
		InsurerSlug:  l.InsurerSlug,
		Status:       string(l.Status),
		Price:        l.Price,
		Currency:     l.Currency,
		Coverage:     l.Coverage,
		Deductible:   l.Deductible,
		IsRealtime:   l.IsRealtime,
		ErrorCode:    l.ErrorCode,
		ErrorMessage: l.ErrorMessage,
		CreatedAt:    l.CreatedAt,
	}
}

func (m quoteLineModel) toEntity() entities.QuoteLineResult {
	return entities.QuoteLineResult{
		ID:           m.ID,
		QuoteID:      m.QuoteID,
		ConnectionID: m.ConnectionID,
		InsurerName:  m.InsurerName,
		InsurerSlug:  m.InsurerSlug,
		Status:       entities.QuoteLineStatus(m.Status),
		Price:        m.Price,
		Currency:     m.Currency,
		Coverage:     m.Coverage,
		Deductible:   m.Deductible,
		IsRealtime:   m.IsRealtime,
		ErrorCode:    m.ErrorCode,
		ErrorMessage: m.ErrorMessage,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func toInsurerConnectionModel(c entities.InsurerConnection) insurerConnectionModel {
	products := make([]string, 0, len(c.Insurer.SupportedProducts))
	for _, p := range c.Insurer.SupportedProducts {
		products = append(products, string(p))
	}
	return insurerConnectionModel{
		ID:                c.ID,
		BrokerID:          c.BrokerID,
		InsurerName:       c.Insurer.Name,
		InsurerSlug:       c.Insurer.Slug,
		AdapterType:       c.Insurer.AdapterType,
		SupportedProducts: products,
		Credentials:       c.Credentials,
		Active:            c.Active,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func (m insurerConnectionModel) toEntity() entities.InsurerConnection {
	products := make([]entities.ProductType, 0, len(m.SupportedProducts))
	for _, p := range m.SupportedProducts {
		products = append(products, entities.ProductType(p))
	}
	return entities.InsurerConnection{
		ID:       m.ID,
		BrokerID: m.BrokerID,
		Insurer: entities.Insurer{
			Name:              m.InsurerName,
			Slug:              m.InsurerSlug,
			AdapterType:       m.AdapterType,
			SupportedProducts: products,
		},
		Credentials: entities.Credentials(m.Credentials),
		Active:      m.Active,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func toRateTableRowModel(row entities.RateTableRow) rateTableRowModel {
	return rateTableRowModel{
		ID:           row.ID,
		BrokerID:     row.BrokerID,
		InsurerSlug:  row.InsurerSlug,
		ProductType:  string(row.ProductType),
		CoverageTier: string(row.CoverageTier),
		Factors:      row.Factors,
		Price:        row.Price,
		Currency:     row.Currency,
		Deductible:   row.Deductible,
		Coverage:     row.Coverage,
		Position:     row.Position,
		CreatedAt:    row.CreatedAt,
	}
}

func (m rateTableRowModel) toEntity() entities.RateTableRow {
	return entities.RateTableRow{
		ID:           m.ID,
		BrokerID:     m.BrokerID,
		InsurerSlug:  m.InsurerSlug,
		ProductType:  entities.ProductType(m.ProductType),
		CoverageTier: entities.CoverageTier(m.CoverageTier),
		Factors:      m.Factors,
		Price:        m.Price,
		Currency:     m.Currency,
		Deductible:   m.Deductible,
		Coverage:     m.Coverage,
		Position:     m.Position,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}
