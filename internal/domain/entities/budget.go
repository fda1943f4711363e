package entities

import "time"

// ServiceType identifies the commercial service family being priced.
//
// Each service has its own pricing strategy and stage catalog:
//   - decor: room-priced with environment type/size multipliers
//   - producao: flat tiered by room count, always in person
//   - arquitetura_express: area-priced by m² band

type ServiceType string

const (
	ServiceDecor              ServiceType = "decor"
	ServiceProducao           ServiceType = "producao"
	ServiceArquiteturaExpress ServiceType = "arquitetura_express"
)

// Modality is how the service is delivered. It affects the survey fee and which
// stage list the project snapshots at creation.
type Modality string

const (
	ModalityOnline     Modality = "online"
	ModalityPresencial Modality = "presencial"
)

// ProjectKind qualifies area-priced scopes.
type ProjectKind string

const (
	ProjectKindNovo    ProjectKind = "novo"
	ProjectKindReforma ProjectKind = "reforma"
)

// EnvironmentSize buckets a room for the size multiplier table.
type EnvironmentSize string

const (
	SizeS EnvironmentSize = "S"
	SizeM EnvironmentSize = "M"
	SizeL EnvironmentSize = "L"
)

// EnvironmentConfig describes one room in a room-priced scope.
type EnvironmentConfig struct {
	Type string          `json:"type"`
	Size EnvironmentSize `json:"size"`
}

// PaymentMode selects between upfront cash (with a tiered discount) and
// installments (count derived from the price tier).
type PaymentMode string

const (
	PaymentAVista    PaymentMode = "a_vista"
	PaymentParcelado PaymentMode = "parcelado"
)

type PaymentTerms struct {
	Mode            PaymentMode `json:"mode"`
	DiscountPercent float64     `json:"discount_percent,omitempty"`
}

// ManagementAddon is the optional recurring site-management fee. It is validated
// against the configured minimum but never summed into the one-off project price.
type ManagementAddon struct {
	MonthlyFee float64 `json:"monthly_fee"`
}

// ScopeParameters is the full input describing what is being priced.
//
// Area-priced services fill AreaM2/ProjectKind; room-priced services fill
// Environments (individually configured rooms, up to the included threshold) plus
// ExtraEnvironmentCount for rooms beyond it.
type ScopeParameters struct {
	ServiceType           ServiceType         `json:"service_type"`
	AreaM2                float64             `json:"area_m2,omitempty"`
	ProjectKind           ProjectKind         `json:"project_kind,omitempty"`
	Environments          []EnvironmentConfig `json:"environments,omitempty"`
	ExtraEnvironmentCount int                 `json:"extra_environment_count,omitempty"`
	Modality              Modality            `json:"modality"`
	SurveyFee             float64             `json:"survey_fee,omitempty"`
	PaymentTerms          PaymentTerms        `json:"payment_terms"`
	Management            *ManagementAddon    `json:"management,omitempty"`
}

// EnvironmentPricing is the per-room breakdown exposed for decor calculations.
type EnvironmentPricing struct {
	Index              int             `json:"index"`
	Type               string          `json:"type"`
	Size               EnvironmentSize `json:"size"`
	CombinedMultiplier float64         `json:"combined_multiplier"`
}

// Calculation is the immutable pricing output for a given scope.
//
// Two distinct hour figures are exposed on purpose:
//   - EstimatedHours: effort estimate from the pricing tables
//   - ProfitCeilingHours: PriceWithDiscount / hourly rate, the maximum hours the
//     project can absorb while staying profitable (display-only)
//
// Invariants: PriceWithDiscount <= FinalPrice;
// FinalPrice = BasePrice (or MultiplierAdjustedPrice) + ExtrasTotal + SurveyFeeTotal.
type Calculation struct {
	EstimatedHours          float64              `json:"estimated_hours"`
	BasePrice               float64              `json:"base_price"`
	MultiplierAdjustedPrice float64              `json:"multiplier_adjusted_price,omitempty"`
	AvgMultiplier           float64              `json:"avg_multiplier,omitempty"`
	ExtrasTotal             float64              `json:"extras_total"`
	SurveyFeeTotal          float64              `json:"survey_fee_total"`
	FinalPrice              float64              `json:"final_price"`
	Discount                float64              `json:"discount"`
	PriceWithDiscount       float64              `json:"price_with_discount"`
	MaxInstallments         int                  `json:"max_installments,omitempty"`
	ProfitCeilingHours      float64              `json:"profit_ceiling_hours"`
	ManagementMonthlyFee    float64              `json:"management_monthly_fee,omitempty"`
	PerEnvironment          []EnvironmentPricing `json:"per_environment,omitempty"`
}

// BudgetStatus represents the lifecycle of a budget (orçamento).
type BudgetStatus string

const (
	BudgetStatusRascunho  BudgetStatus = "rascunho"
	BudgetStatusEnviado   BudgetStatus = "enviado"
	BudgetStatusAprovado  BudgetStatus = "aprovado"
	BudgetStatusRejeitado BudgetStatus = "rejeitado"
)

// ClientSnapshot is the client data frozen onto the budget when it is created.
type ClientSnapshot struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Budget is the priced proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The Calculation is a value object owned by the budget: it is recomputed whenever
// the scope changes while the budget is still rascunho, never versioned.
type Budget struct {
	ID          string          `json:"id"`
	ServiceType ServiceType     `json:"service_type"`
	Scope       ScopeParameters `json:"scope"`
	Calculation Calculation     `json:"calculation"`
	Status      BudgetStatus    `json:"status"`
	Client      ClientSnapshot  `json:"client"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
