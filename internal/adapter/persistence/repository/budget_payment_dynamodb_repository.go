package repository

import (
	"context"
	"time"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsBudgetIDIndex    = "budget_id-index"
)

type budgetPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	BudgetID     string                 `dynamodbav:"budget_id"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	Amount       string                 `dynamodbav:"amount"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// BudgetPaymentDynamoRepository persists BudgetPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)

type BudgetPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetPaymentRepository = (*BudgetPaymentDynamoRepository)(nil)

func NewBudgetPaymentDynamoRepository(ddb *dynamodb.Client) *BudgetPaymentDynamoRepository {
	return &BudgetPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *BudgetPaymentDynamoRepository) Create(ctx context.Context, p entities.BudgetPayment) (entities.BudgetPayment, error) {
	it := toBudgetPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BudgetPayment{}, err
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
		return entities.BudgetPayment{}, err
	}
	return p, nil
}

func (r *BudgetPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BudgetPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BudgetPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.BudgetPayment{}, nil
	}

	var it budgetPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BudgetPayment{}, err
	}
	return fromBudgetPaymentItem(it), nil
}

func (r *BudgetPaymentDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BudgetPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsBudgetIDIndex),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: budgetID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BudgetPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it budgetPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBudgetPaymentItem(it))
	}
	return items, nil
}

func toBudgetPaymentItem(p entities.BudgetPayment) budgetPaymentItem {
	return budgetPaymentItem{
		ID:           p.ID,
		BudgetID:     p.BudgetID,
		Date:         p.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(p.Status),
		Amount:       floatToString(p.Amount),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromBudgetPaymentItem(it budgetPaymentItem) entities.BudgetPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.BudgetPayment{
		ID:           it.ID,
		BudgetID:     it.BudgetID,
		Date:         dt,
		Status:       entities.BudgetPaymentStatus(it.Status),
		Amount:       parseFloat(it.Amount),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
