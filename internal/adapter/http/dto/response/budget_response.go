package response

import (
	"time"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
)

type BudgetResponse struct {
	ID          string                   `json:"id"`
	ServiceType string                   `json:"service_type"`
	Status      string                   `json:"status"`
	Client      entities.ClientSnapshot  `json:"client"`
	Scope       entities.ScopeParameters `json:"scope"`
	Calculation entities.Calculation     `json:"calculation"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          b.ID,
		ServiceType: string(b.ServiceType),
		Status:      string(b.Status),
		Client:      b.Client,
		Scope:       b.Scope,
		Calculation: b.Calculation,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
