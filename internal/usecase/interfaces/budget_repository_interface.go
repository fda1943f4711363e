package interfaces

import (
	"context"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Update writes the whole record: a budget's scope and calculation always
// change together, so partial updates would only invite drift.

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
}
