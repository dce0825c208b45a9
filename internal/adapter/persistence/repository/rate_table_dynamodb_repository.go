package repository

import (
	"context"
	"sort"

	"broker_quotes/internal/domain/entities"
	"broker_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRateTablesTableName = "rate_table_rows"
	rateTablesRateKeyIndex     = "rate_key-index"
)

type rateTableRowItem struct {
	ID           string            `dynamodbav:"id"`
	RateKey      string            `dynamodbav:"rate_key"`
	BrokerID     string            `dynamodbav:"broker_id"`
	InsurerSlug  string            `dynamodbav:"insurer_slug"`
	ProductType  string            `dynamodbav:"product_type"`
	CoverageTier string            `dynamodbav:"coverage_tier"`
	Factors      map[string]string `dynamodbav:"factors,omitempty"`
	Price        string            `dynamodbav:"price"`
	Currency     string            `dynamodbav:"currency"`
	Deductible   string            `dynamodbav:"deductible,omitempty"`
	Coverage     map[string]any    `dynamodbav:"coverage,omitempty"`
	Position     int               `dynamodbav:"position"`
	CreatedAt    string            `dynamodbav:"created_at"`
}

// RateTableDynamoRepository persists tariff rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: rate_key-index (rate_key = broker_id#insurer_slug#product_type)
//
// ReplaceRows writes the new rows before deleting the old ones, so a
// concurrent lookup sees either table but never an empty one.

type RateTableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateTableRepository = (*RateTableDynamoRepository)(nil)

func NewRateTableDynamoRepository(ddb *dynamodb.Client) *RateTableDynamoRepository {
	return &RateTableDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATE_TABLES_TABLE", defaultRateTablesTableName),
	}
}

func (r *RateTableDynamoRepository) ReplaceRows(ctx context.Context, brokerID, insurerSlug string, product entities.ProductType, rows []entities.RateTableRow) error {
	existing, err := r.ListRows(ctx, brokerID, insurerSlug, product)
	if err != nil {
		return err
	}

	puts := make([]types.WriteRequest, 0, len(rows))
	keep := make(map[string]bool, len(rows))
	for _, row := range rows {
		row.BrokerID, row.InsurerSlug, row.ProductType = brokerID, insurerSlug, product
		av, err := attributevalue.MarshalMap(toRateTableRowItem(row))
		if err != nil {
			return err
		}
		puts = append(puts, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		keep[row.ID] = true
	}
	if err := batchWrite(ctx, r.ddb, r.tableName, puts); err != nil {
		return err
	}

	deletes := make([]types.WriteRequest, 0, len(existing))
	for _, old := range existing {
		if keep[old.ID] {
			continue
		}
		deletes = append(deletes, types.WriteRequest{DeleteRequest: &types.DeleteRequest{
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: old.ID},
			},
		}})
	}
	return batchWrite(ctx, r.ddb, r.tableName, deletes)
}

// ListRows returns the table in upload order.
func (r *RateTableDynamoRepository) ListRows(ctx context.Context, brokerID, insurerSlug string, product entities.ProductType) ([]entities.RateTableRow, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(rateTablesRateKeyIndex),
		KeyConditionExpression: aws.String("rate_key = :rk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rk": &types.AttributeValueMemberS{Value: entities.RateKey(brokerID, insurerSlug, product)},
		},
	})
	if err != nil {
		return nil, err
	}

	var raw []rateTableRowItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, err
	}
	res := make([]entities.RateTableRow, 0, len(raw))
	for _, it := range raw {
		res = append(res, fromRateTableRowItem(it))
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Position < res[j].Position })
	return res, nil
}

func toRateTableRowItem(row entities.RateTableRow) rateTableRowItem {
	return rateTableRowItem{
		ID:           row.ID,
		RateKey:      entities.RateKey(row.BrokerID, row.InsurerSlug, row.ProductType),
		BrokerID:     row.BrokerID,
		InsurerSlug:  row.InsurerSlug,
		ProductType:  string(row.ProductType),
		CoverageTier: string(row.CoverageTier),
		Factors:      row.Factors,
		Price:        decimalToString(row.Price),
		Currency:     row.Currency,
		Deductible:   optionalDecimalToString(row.Deductible),
		Coverage:     row.Coverage,
		Position:     row.Position,
		CreatedAt:    formatTime(row.CreatedAt),
	}
}

func fromRateTableRowItem(it rateTableRowItem) entities.RateTableRow {
	return entities.RateTableRow{
		ID:           it.ID,
		BrokerID:     it.BrokerID,
		InsurerSlug:  it.InsurerSlug,
		ProductType:  entities.ProductType(it.ProductType),
		CoverageTier: entities.CoverageTier(it.CoverageTier),
		Factors:      it.Factors,
		Price:        decimalFromString(it.Price),
		Currency:     it.Currency,
		Deductible:   optionalDecimalFromString(it.Deductible),
		Coverage:     it.Coverage,
		Position:     it.Position,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
