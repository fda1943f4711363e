package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName = "projects"
	projectsBudgetIDIndex    = "budget_id-index"
)

// The stage snapshot and time-entry list are stored as raw JSON strings: they
// are only ever written as a whole (the engine returns complete project values)
// and reading them back needs no per-attribute access.
type projectItem struct {
	ID             string `dynamodbav:"id"`
	BudgetID       string `dynamodbav:"budget_id"`
	ServiceType    string `dynamodbav:"service_type"`
	Modality       string `dynamodbav:"modality"`
	Status         string `dynamodbav:"status"`
	CurrentStageID string `dynamodbav:"current_stage_id"`
	Value          string `dynamodbav:"value"`
	EstimatedHours string `dynamodbav:"estimated_hours"`
	StagesRaw      string `dynamodbav:"stages_raw"`
	TimeEntriesRaw string `dynamodbav:"time_entries_raw"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	DeliveredAt    string `dynamodbav:"delivered_at,omitempty"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	it, err := toProjectItem(p)
	if err != nil {
		return entities.Project{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it)
}

func (r *ProjectDynamoRepository) GetByBudgetID(ctx context.Context, budgetID string) (entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsBudgetIDIndex),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: budgetID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Items) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it)
}

// Update rewrites the whole record: stage pointer, status and time entries
// always travel together so the transition stays all-or-nothing.
func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	it, err := toProjectItem(p)
	if err != nil {
		return entities.Project{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func toProjectItem(p entities.Project) (projectItem, error) {
	stagesRaw, err := json.Marshal(p.Stages)
	if err != nil {
		return projectItem{}, err
	}
	entriesRaw, err := json.Marshal(p.TimeEntries)
	if err != nil {
		return projectItem{}, err
	}

	it := projectItem{
		ID:             p.ID,
		BudgetID:       p.BudgetID,
		ServiceType:    string(p.ServiceType),
		Modality:       string(p.Modality),
		Status:         string(p.Status),
		CurrentStageID: p.CurrentStageID,
		Value:          floatToString(p.Financials.Value),
		EstimatedHours: floatToString(p.Financials.EstimatedHours),
		StagesRaw:      string(stagesRaw),
		TimeEntriesRaw: string(entriesRaw),
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !p.DeliveredAt.IsZero() {
		it.DeliveredAt = p.DeliveredAt.UTC().Format(time.RFC3339Nano)
	}
	return it, nil
}

func fromProjectItem(it projectItem) (entities.Project, error) {
	var stages []entities.StageDefinition
	if err := json.Unmarshal([]byte(it.StagesRaw), &stages); err != nil {
		return entities.Project{}, err
	}
	var entries []entities.TimeEntry
	if err := json.Unmarshal([]byte(it.TimeEntriesRaw), &entries); err != nil {
		return entities.Project{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	p := entities.Project{
		ID:             it.ID,
		BudgetID:       it.BudgetID,
		ServiceType:    entities.ServiceType(it.ServiceType),
		Modality:       entities.Modality(it.Modality),
		Stages:         stages,
		CurrentStageID: it.CurrentStageID,
		TimeEntries:    entries,
		Status:         entities.ProjectStatus(it.Status),
		Financials: entities.ProjectFinancials{
			Value:          parseFloat(it.Value),
			EstimatedHours: parseFloat(it.EstimatedHours),
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if it.DeliveredAt != "" {
		p.DeliveredAt, _ = time.Parse(time.RFC3339Nano, it.DeliveredAt)
	}
	return p, nil
}
