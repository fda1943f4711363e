package entities

import (
	"encoding/json"
	"time"
)

// StageDefinition is one delivery stage in a service's workflow.
//
// Stage lists come from the catalog keyed by (service type, modality) and are
// snapshotted onto the project at creation time, so later catalog edits never
// alter an in-flight project.
type StageDefinition struct {
	ID         string `json:"id"`
	OrderIndex int    `json:"order_index"`
	Label      string `json:"label"`
	Category   string `json:"category"`
}

// TimeEntry is one block of logged hours against a stage. The list is
// append-only; hours_used is always recomputed from it, never cached.
type TimeEntry struct {
	StageID     string    `json:"stage_id"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

// ProjectStatus represents the delivery lifecycle of a project.
type ProjectStatus string

const (
	ProjectStatusAguardando  ProjectStatus = "aguardando"
	ProjectStatusEmAndamento ProjectStatus = "em_andamento"
	ProjectStatusEntregue    ProjectStatus = "entregue"
	ProjectStatusCancelado   ProjectStatus = "cancelado"
)

// ProjectFinancials is seeded from the approved budget's calculation.
type ProjectFinancials struct {
	Value          float64 `json:"value"`
	EstimatedHours float64 `json:"estimated_hours"`
}

// Project tracks an approved budget through its stage workflow.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (budget_id-index): budget_id
//
// Invariants:
//   - CurrentStageID is always a member of Stages
//   - Status entregue only while CurrentStageID is the last stage
//   - every TimeEntry references a stage in Stages
type Project struct {
	ID             string            `json:"id"`
	BudgetID       string            `json:"budget_id"`
	ServiceType    ServiceType       `json:"service_type"`
	Modality       Modality          `json:"modality"`
	Stages         []StageDefinition `json:"stages"`
	CurrentStageID string            `json:"current_stage_id"`
	TimeEntries    []TimeEntry       `json:"time_entries"`
	Status         ProjectStatus     `json:"status"`
	Financials     ProjectFinancials `json:"financials"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeliveredAt    time.Time         `json:"delivered_at,omitempty"`
}

// BudgetPaymentStatus represents the payment processing outcome.
type BudgetPaymentStatus string

const (
	BudgetPaymentStatusPendente BudgetPaymentStatus = "pendente"
	BudgetPaymentStatusAprovado BudgetPaymentStatus = "aprovado"
	BudgetPaymentStatusNegado   BudgetPaymentStatus = "negado"
)

// BudgetPayment is the entry payment of an approved budget.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (budget_id-index): budget_id
//
// MPPayloadRaw keeps the original provider body (JSON) for traceability;
// MPPayload is an optional parsed representation for querying/debugging.
type BudgetPayment struct {
	ID       string              `json:"id"`
	BudgetID string              `json:"budget_id"`
	Date     time.Time           `json:"date"`
	Status   BudgetPaymentStatus `json:"status"`
	Amount   float64             `json:"amount"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
