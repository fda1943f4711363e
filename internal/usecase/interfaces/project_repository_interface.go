package interfaces

import (
	"context"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// GetByBudgetID backs the 1-project-per-budget rule; Update persists the stage
// pointer and time-entry list in one write so transitions stay all-or-nothing.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetByBudgetID(ctx context.Context, budgetID string) (entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
}
