package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"broker_quotes/internal/domain/entities"
	"broker_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultConnectionsTableName = "insurer_connections"
	connectionsBrokerIDIndex    = "broker_id-index"
)

type insurerConnectionItem struct {
	ID                string         `dynamodbav:"id"`
	BrokerID          string         `dynamodbav:"broker_id"`
	InsurerName       string         `dynamodbav:"insurer_name"`
	InsurerSlug       string         `dynamodbav:"insurer_slug"`
	AdapterType       string         `dynamodbav:"adapter_type"`
	SupportedProducts []string       `dynamodbav:"supported_products"`
	Credentials       map[string]any `dynamodbav:"credentials,omitempty"`
	Active            bool           `dynamodbav:"active"`
	CreatedAt         string         `dynamodbav:"created_at"`
	UpdatedAt         string         `dynamodbav:"updated_at"`
}

// InsurerConnectionDynamoRepository persists broker-to-insurer links in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: broker_id-index (broker_id)
//
// supported_products is a list attribute so eligibility can be filtered with contains().

type InsurerConnectionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInsurerConnectionRepository = (*InsurerConnectionDynamoRepository)(nil)

func NewInsurerConnectionDynamoRepository(ddb *dynamodb.Client) *InsurerConnectionDynamoRepository {
	return &InsurerConnectionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONNECTIONS_TABLE", defaultConnectionsTableName),
	}
}

func (r *InsurerConnectionDynamoRepository) Create(ctx context.Context, c entities.InsurerConnection) (entities.InsurerConnection, error) {
	av, err := attributevalue.MarshalMap(toInsurerConnectionItem(c))
	if err != nil {
		return entities.InsurerConnection{}, err
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
		return entities.InsurerConnection{}, err
	}
	return c, nil
}

func (r *InsurerConnectionDynamoRepository) GetByID(ctx context.Context, id string) (entities.InsurerConnection, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InsurerConnection{}, err
	}
	if len(out.Item) == 0 {
		return entities.InsurerConnection{}, nil
	}

	var it insurerConnectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InsurerConnection{}, err
	}
	return fromInsurerConnectionItem(it), nil
}

func (r *InsurerConnectionDynamoRepository) ListByBrokerID(ctx context.Context, brokerID string) ([]entities.InsurerConnection, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(connectionsBrokerIDIndex),
		KeyConditionExpression: aws.String("broker_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: brokerID},
		},
	})
}

func (r *InsurerConnectionDynamoRepository) ListActiveByBrokerAndProduct(ctx context.Context, brokerID string, product entities.ProductType) ([]entities.InsurerConnection, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(connectionsBrokerIDIndex),
		KeyConditionExpression: aws.String("broker_id = :bid"),
		FilterExpression:       aws.String("#active = :active AND contains(#products, :product)"),
		ExpressionAttributeNames: map[string]string{
			"#active":   "active",
			"#products": "supported_products",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid":     &types.AttributeValueMemberS{Value: brokerID},
			":active":  &types.AttributeValueMemberBOOL{Value: true},
			":product": &types.AttributeValueMemberS{Value: string(product)},
		},
	})
}

func (r *InsurerConnectionDynamoRepository) Deactivate(ctx context.Context, id string) (entities.InsurerConnection, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #active = :active, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active":     &types.AttributeValueMemberBOOL{Value: false},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#active":     "active",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.InsurerConnection{}, nil
		}
		return entities.InsurerConnection{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.InsurerConnection{}, nil
	}
	var it insurerConnectionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.InsurerConnection{}, err
	}
	return fromInsurerConnectionItem(it), nil
}

func (r *InsurerConnectionDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.InsurerConnection, error) {
	items, err := queryAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}

	var raw []insurerConnectionItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, err
	}
	res := make([]entities.InsurerConnection, 0, len(raw))
	for _, it := range raw {
		res = append(res, fromInsurerConnectionItem(it))
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res, nil
}

func toInsurerConnectionItem(c entities.InsurerConnection) insurerConnectionItem {
	products := make([]string, 0, len(c.Insurer.SupportedProducts))
	for _, p := range c.Insurer.SupportedProducts {
		products = append(products, string(p))
	}
	return insurerConnectionItem{
		ID:                c.ID,
		BrokerID:          c.BrokerID,
		InsurerName:       c.Insurer.Name,
		InsurerSlug:       c.Insurer.Slug,
		AdapterType:       c.Insurer.AdapterType,
		SupportedProducts: products,
		Credentials:       c.Credentials,
		Active:            c.Active,
		CreatedAt:         formatTime(c.CreatedAt),
		UpdatedAt:         formatTime(c.UpdatedAt),
	}
}

func fromInsurerConnectionItem(it insurerConnectionItem) entities.InsurerConnection {
	products := make([]entities.ProductType, 0, len(it.SupportedProducts))
	for _, p := range it.SupportedProducts {
		products = append(products, entities.ProductType(p))
	}
	return entities.InsurerConnection{
		ID:       it.ID,
		BrokerID: it.BrokerID,
		Insurer: entities.Insurer{
			Name:              it.InsurerName,
			Slug:              it.InsurerSlug,
			AdapterType:       it.AdapterType,
			SupportedProducts: products,
		},
		Credentials: entities.Credentials(it.Credentials),
		Active:      it.Active,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
