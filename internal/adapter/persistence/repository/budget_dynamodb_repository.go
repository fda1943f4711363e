package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBudgetsTableName = "budgets"

// Scope and calculation are nested documents; they are stored as raw JSON
// strings next to the scalar attributes, so table queries stay simple and the
// document shape can evolve without migrations.
type budgetItem struct {
	ID             string `dynamodbav:"id"`
	ServiceType    string `dynamodbav:"service_type"`
	Status         string `dynamodbav:"status"`
	ClientName     string `dynamodbav:"client_name"`
	ClientEmail    string `dynamodbav:"client_email,omitempty"`
	ClientPhone    string `dynamodbav:"client_phone,omitempty"`
	FinalPrice     string `dynamodbav:"final_price"`
	ScopeRaw       string `dynamodbav:"scope_raw"`
	CalculationRaw string `dynamodbav:"calculation_raw"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it, err := toBudgetItem(b)
	if err != nil {
		return entities.Budget{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

// Update rewrites the whole record. Scope and calculation always change
// together, so a single conditional Put keeps the write all-or-nothing.
func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it, err := toBudgetItem(b)
	if err != nil {
		return entities.Budget{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func toBudgetItem(b entities.Budget) (budgetItem, error) {
	scopeRaw, err := json.Marshal(b.Scope)
	if err != nil {
		return budgetItem{}, err
	}
	calcRaw, err := json.Marshal(b.Calculation)
	if err != nil {
		return budgetItem{}, err
	}
	return budgetItem{
		ID:             b.ID,
		ServiceType:    string(b.ServiceType),
		Status:         string(b.Status),
		ClientName:     b.Client.Name,
		ClientEmail:    b.Client.Email,
		ClientPhone:    b.Client.Phone,
		FinalPrice:     floatToString(b.Calculation.FinalPrice),
		ScopeRaw:       string(scopeRaw),
		CalculationRaw: string(calcRaw),
		CreatedAt:      b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromBudgetItem(it budgetItem) (entities.Budget, error) {
	var scope entities.ScopeParameters
	if err := json.Unmarshal([]byte(it.ScopeRaw), &scope); err != nil {
		return entities.Budget{}, err
	}
	var calc entities.Calculation
	if err := json.Unmarshal([]byte(it.CalculationRaw), &calc); err != nil {
		return entities.Budget{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Budget{
		ID:          it.ID,
		ServiceType: entities.ServiceType(it.ServiceType),
		Scope:       scope,
		Calculation: calc,
		Status:      entities.BudgetStatus(it.Status),
		Client: entities.ClientSnapshot{
			Name:  it.ClientName,
			Email: it.ClientEmail,
			Phone: it.ClientPhone,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
