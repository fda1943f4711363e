package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/finance"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/workflow"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrProjectAlreadyExists = errors.New("project already exists for this budget")
	ErrBudgetNotApproved    = errors.New("budget not approved")
)

// ProjectProgress is the read model for the workflow position of a project.
type ProjectProgress struct {
	StageID    string `json:"stage_id"`
	StageName  string `json:"stage_name"`
	StageIndex int    `json:"stage_index"`
	StageCount int    `json:"stage_count"`
	Percent    int    `json:"percent"`
}

// IProjectUseCase exposes the project workflow operations.
//
//   - CreateFromBudget seeds a project from an approved budget (stage snapshot
//     from the catalog, financials from the calculation)
//   - AdvanceStage / AppendTimeEntry delegate to the workflow engine and persist
//     the whole record in one write
//   - GetFinancialSummary derives profitability on read, never from cached state

type IProjectUseCase interface {
	CreateFromBudget(ctx context.Context, budgetID string) (entities.Project, error)
	AdvanceStage(ctx context.Context, projectID, targetStageID string) (entities.Project, error)
	AppendTimeEntry(ctx context.Context, projectID string, entry entities.TimeEntry) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetProgress(ctx context.Context, id string) (ProjectProgress, error)
	GetFinancialSummary(ctx context.Context, id string) (finance.Summary, error)
}

type ProjectUseCase struct {
	repo       interfaces.IProjectRepository
	budgetRepo interfaces.IBudgetRepository
	catalog    *workflow.Catalog
	hourlyRate float64
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, budgetRepo interfaces.IBudgetRepository, catalog *workflow.Catalog, hourlyRate float64) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, budgetRepo: budgetRepo, catalog: catalog, hourlyRate: hourlyRate}
}

func (u *ProjectUseCase) CreateFromBudget(ctx context.Context, budgetID string) (entities.Project, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.Project{}, ErrInvalidBudgetID
	}

	b, err := u.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		return entities.Project{}, err
	}
	if b.ID == "" {
		return entities.Project{}, ErrBudgetNotFound
	}
	if b.Status != entities.BudgetStatusAprovado {
		return entities.Project{}, ErrBudgetNotApproved
	}

	// Enforce: 1 project per budget.
	if existing, err := u.repo.GetByBudgetID(ctx, budgetID); err != nil {
		return entities.Project{}, err
	} else if existing.ID != "" {
		return entities.Project{}, ErrProjectAlreadyExists
	}

	stages, err := u.catalog.StagesFor(b.ServiceType, b.Scope.Modality)
	if err != nil {
		return entities.Project{}, err
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:             uuid.NewString(),
		BudgetID:       b.ID,
		ServiceType:    b.ServiceType,
		Modality:       b.Scope.Modality,
		Stages:         stages,
		CurrentStageID: stages[0].ID,
		TimeEntries:    []entities.TimeEntry{},
		Status:         entities.ProjectStatusAguardando,
		Financials: entities.ProjectFinancials{
			Value:          b.Calculation.PriceWithDiscount,
			EstimatedHours: b.Calculation.EstimatedHours,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) AdvanceStage(ctx context.Context, projectID, targetStageID string) (entities.Project, error) {
	p, err := u.getExisting(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}

	updated, err := workflow.AdvanceStage(p, strings.TrimSpace(targetStageID), time.Now().UTC())
	if err != nil {
		return entities.Project{}, err
	}
	return u.repo.Update(ctx, updated)
}

func (u *ProjectUseCase) AppendTimeEntry(ctx context.Context, projectID string, entry entities.TimeEntry) (entities.Project, error) {
	p, err := u.getExisting(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}

	entry.StageID = strings.TrimSpace(entry.StageID)
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}

	updated, err := workflow.AppendTimeEntry(p, entry)
	if err != nil {
		return entities.Project{}, err
	}
	updated.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, updated)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	return u.getExisting(ctx, id)
}

func (u *ProjectUseCase) GetProgress(ctx context.Context, id string) (ProjectProgress, error) {
	p, err := u.getExisting(ctx, id)
	if err != nil {
		return ProjectProgress{}, err
	}

	name, err := workflow.CurrentStageName(p)
	if err != nil {
		return ProjectProgress{}, err
	}
	percent, err := workflow.Progress(p)
	if err != nil {
		return ProjectProgress{}, err
	}

	idx := 0
	for i, s := range p.Stages {
		if s.ID == p.CurrentStageID {
			idx = i
			break
		}
	}
	return ProjectProgress{
		StageID:    p.CurrentStageID,
		StageName:  name,
		StageIndex: idx,
		StageCount: len(p.Stages),
		Percent:    percent,
	}, nil
}

func (u *ProjectUseCase) GetFinancialSummary(ctx context.Context, id string) (finance.Summary, error) {
	p, err := u.getExisting(ctx, id)
	if err != nil {
		return finance.Summary{}, err
	}
	return finance.Derive(p.Financials.Value, workflow.HoursUsed(p), u.hourlyRate), nil
}

func (u *ProjectUseCase) getExisting(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}
