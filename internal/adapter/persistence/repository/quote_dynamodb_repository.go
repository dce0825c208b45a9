package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"broker_quotes/internal/domain/entities"
	"broker_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName     = "quotes"
	defaultQuoteLinesTableName = "quote_line_results"
	quotesBrokerIDIndex        = "broker_id-index"
	quoteLinesQuoteIDIndex     = "quote_id-index"
)

type quoteItem struct {
	ID                string         `dynamodbav:"id"`
	BrokerID          string         `dynamodbav:"broker_id"`
	ConversationID    string         `dynamodbav:"conversation_id,omitempty"`
	ProductType       string         `dynamodbav:"product_type"`
	InputData         map[string]any `dynamodbav:"input_data,omitempty"`
	CoverageTier      string         `dynamodbav:"coverage_tier"`
	Status            string         `dynamodbav:"status"`
	InsurersQueried   int            `dynamodbav:"insurers_queried"`
	InsurersSucceeded int            `dynamodbav:"insurers_succeeded"`
	CreatedAt         string         `dynamodbav:"created_at"`
	UpdatedAt         string         `dynamodbav:"updated_at"`
}

type quoteLineItem struct {
	ID           string         `dynamodbav:"id"`
	QuoteID      string         `dynamodbav:"quote_id"`
	ConnectionID string         `dynamodbav:"connection_id"`
	InsurerName  string         `dynamodbav:"insurer_name"`
	InsurerSlug  string         `dynamodbav:"insurer_slug"`
	Status       string         `dynamodbav:"status"`
	Price        string         `dynamodbav:"price"`
	Currency     string         `dynamodbav:"currency,omitempty"`
	Coverage     map[string]any `dynamodbav:"coverage,omitempty"`
	Deductible   string         `dynamodbav:"deductible,omitempty"`
	IsRealtime   bool           `dynamodbav:"is_realtime"`
	ErrorCode    string         `dynamodbav:"error_code,omitempty"`
	ErrorMessage string         `dynamodbav:"error_message,omitempty"`
	CreatedAt    string         `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists quote aggregates and their line results in DynamoDB.
//
// Table requirements:
//   - quotes: PK id (string), GSI broker_id-index (broker_id)
//   - quote_line_results: PK id (string), GSI quote_id-index (quote_id)

type QuoteDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	linesTableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		linesTableName: getenvDefault("QUOTE_LINES_TABLE", defaultQuoteLinesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// ListByBrokerID returns the broker's aggregates, newest first.
func (r *QuoteDynamoRepository) ListByBrokerID(ctx context.Context, brokerID string) ([]entities.Quote, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesBrokerIDIndex),
		KeyConditionExpression: aws.String("broker_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: brokerID},
		},
	})
	if err != nil {
		return nil, err
	}

	var raw []quoteItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, err
	}
	res := make([]entities.Quote, 0, len(raw))
	for _, it := range raw {
		res = append(res, fromQuoteItem(it))
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (r *QuoteDynamoRepository) UpdateOutcome(ctx context.Context, id string, status entities.QuoteStatus, queried, succeeded int) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #queried = :queried, #succeeded = :succeeded, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":queried":    &types.AttributeValueMemberN{Value: strconv.Itoa(queried)},
			":succeeded":  &types.AttributeValueMemberN{Value: strconv.Itoa(succeeded)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#queried":    "insurers_queried",
			"#succeeded":  "insurers_succeeded",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) CreateLines(ctx context.Context, quoteID string, lines []entities.QuoteLineResult) error {
	if len(lines) == 0 {
		return nil
	}
	reqs := make([]types.WriteRequest, 0, len(lines))
	for _, l := range lines {
		l.QuoteID = quoteID
		av, err := attributevalue.MarshalMap(toQuoteLineItem(l))
		if err != nil {
			return err
		}
		reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	return batchWrite(ctx, r.ddb, r.linesTableName, reqs)
}

func (r *QuoteDynamoRepository) ListLinesByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteLineResult, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.linesTableName),
		IndexName:              aws.String(quoteLinesQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	var raw []quoteLineItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, err
	}
	res := make([]entities.QuoteLineResult, 0, len(raw))
	for _, it := range raw {
		res = append(res, fromQuoteLineItem(it))
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].InsurerName < res[j].InsurerName })
	return res, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:                q.ID,
		BrokerID:          q.BrokerID,
		ConversationID:    q.ConversationID,
		ProductType:       string(q.ProductType),
		InputData:         q.InputData,
		CoverageTier:      string(q.CoverageTier),
		Status:            string(q.Status),
		InsurersQueried:   q.InsurersQueried,
		InsurersSucceeded: q.InsurersSucceeded,
		CreatedAt:         formatTime(q.CreatedAt),
		UpdatedAt:         formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:                it.ID,
		BrokerID:          it.BrokerID,
		ConversationID:    it.ConversationID,
		ProductType:       entities.ProductType(it.ProductType),
		InputData:         it.InputData,
		CoverageTier:      entities.CoverageTier(it.CoverageTier),
		Status:            entities.QuoteStatus(it.Status),
		InsurersQueried:   it.InsurersQueried,
		InsurersSucceeded: it.InsurersSucceeded,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}

func toQuoteLineItem(l entities.QuoteLineResult) quoteLineItem {
	return quoteLineItem{
		ID:           l.ID,
		QuoteID:      l.QuoteID,
		ConnectionID: l.ConnectionID,
		InsurerName:  l.InsurerName,
		InsurerSlug:  l.InsurerSlug,
		Status:       string(l.Status),
		Price:        decimalToString(l.Price),
		Currency:     l.Currency,
		Coverage:     l.Coverage,
		Deductible:   optionalDecimalToString(l.Deductible),
		IsRealtime:   l.IsRealtime,
		ErrorCode:    l.ErrorCode,
		ErrorMessage: l.ErrorMessage,
		CreatedAt:    formatTime(l.CreatedAt),
	}
}

func fromQuoteLineItem(it quoteLineItem) entities.QuoteLineResult {
	return entities.QuoteLineResult{
		ID:           it.ID,
		QuoteID:      it.QuoteID,
		ConnectionID: it.ConnectionID,
		InsurerName:  it.InsurerName,
		InsurerSlug:  it.InsurerSlug,
		Status:       entities.QuoteLineStatus(it.Status),
		Price:        decimalFromString(it.Price),
		Currency:     it.Currency,
		Coverage:     it.Coverage,
		Deductible:   optionalDecimalFromString(it.Deductible),
		IsRealtime:   it.IsRealtime,
		ErrorCode:    it.ErrorCode,
		ErrorMessage: it.ErrorMessage,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
