package interfaces

import (
	"context"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
)

// IBudgetPaymentRepository abstracts DynamoDB persistence for BudgetPayment.

type IBudgetPaymentRepository interface {
	Create(ctx context.Context, p entities.BudgetPayment) (entities.BudgetPayment, error)
	GetByID(ctx context.Context, id string) (entities.BudgetPayment, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BudgetPayment, error)
}
