package request

import (
	"strings"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
)

type ClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type EnvironmentRequest struct {
	Type string `json:"type" binding:"required"`
	Size string `json:"size" binding:"required"`
}

type PaymentTermsRequest struct {
	Mode            string  `json:"mode" binding:"required"`
	DiscountPercent float64 `json:"discount_percent"`
}

type ManagementRequest struct {
	MonthlyFee float64 `json:"monthly_fee" binding:"required"`
}

type ScopeRequest struct {
	ServiceType           string               `json:"service_type" binding:"required"`
	AreaM2                float64              `json:"area_m2"`
	ProjectKind           string               `json:"project_kind"`
	Environments          []EnvironmentRequest `json:"environments"`
	ExtraEnvironmentCount int                  `json:"extra_environment_count"`
	Modality              string               `json:"modality" binding:"required"`
	SurveyFee             float64              `json:"survey_fee"`
	PaymentTerms          PaymentTermsRequest  `json:"payment_terms" binding:"required"`
	Management            *ManagementRequest   `json:"management"`
}

// BudgetCreateRequest creates a rascunho budget from a client brief.
type BudgetCreateRequest struct {
	Client ClientRequest `json:"client" binding:"required"`
	Scope  ScopeRequest  `json:"scope" binding:"required"`
}

// BudgetScopeUpdateRequest replaces the scope of a rascunho budget.
type BudgetScopeUpdateRequest struct {
	Scope ScopeRequest `json:"scope" binding:"required"`
}

func (r ClientRequest) ToSnapshot() entities.ClientSnapshot {
	return entities.ClientSnapshot{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		Phone: strings.TrimSpace(r.Phone),
	}
}

// ToScopeParameters normalizes the payload into domain scope parameters.
// Domain-level validation (bands, multipliers, discounts) stays with the
// calculator; this only trims and maps.
func (r ScopeRequest) ToScopeParameters() entities.ScopeParameters {
	envs := make([]entities.EnvironmentConfig, 0, len(r.Environments))
	for _, env := range r.Environments {
		envs = append(envs, entities.EnvironmentConfig{
			Type: strings.ToLower(strings.TrimSpace(env.Type)),
			Size: entities.EnvironmentSize(strings.ToUpper(strings.TrimSpace(env.Size))),
		})
	}

	scope := entities.ScopeParameters{
		ServiceType:           entities.ServiceType(strings.ToLower(strings.TrimSpace(r.ServiceType))),
		AreaM2:                r.AreaM2,
		ProjectKind:           entities.ProjectKind(strings.ToLower(strings.TrimSpace(r.ProjectKind))),
		Environments:          envs,
		ExtraEnvironmentCount: r.ExtraEnvironmentCount,
		Modality:              entities.Modality(strings.ToLower(strings.TrimSpace(r.Modality))),
		SurveyFee:             r.SurveyFee,
		PaymentTerms: entities.PaymentTerms{
			Mode:            entities.PaymentMode(strings.ToLower(strings.TrimSpace(r.PaymentTerms.Mode))),
			DiscountPercent: r.PaymentTerms.DiscountPercent,
		},
	}
	if r.Management != nil {
		scope.Management = &entities.ManagementAddon{MonthlyFee: r.Management.MonthlyFee}
	}
	return scope
}
