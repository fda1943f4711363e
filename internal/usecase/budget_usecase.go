package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/pricing"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound          = errors.New("budget not found")
	ErrInvalidBudgetID         = errors.New("invalid budget id")
	ErrInvalidClientName       = errors.New("invalid client name")
	ErrBudgetNotDraft          = errors.New("budget is not a draft")
	ErrInvalidBudgetTransition = errors.New("invalid budget status transition")
)

// IBudgetUseCase exposes the budget (orçamento) lifecycle.
//
//   - CreateBudget prices the scope and persists a rascunho
//   - UpdateScope reprices while still rascunho
//   - Send/Approve/Reject walk rascunho -> enviado -> aprovado|rejeitado

type IBudgetUseCase interface {
	CreateBudget(ctx context.Context, client entities.ClientSnapshot, scope entities.ScopeParameters) (entities.Budget, error)
	UpdateScope(ctx context.Context, id string, scope entities.ScopeParameters) (entities.Budget, error)
	SendBudget(ctx context.Context, id string) (entities.Budget, error)
	ApproveBudget(ctx context.Context, id string) (entities.Budget, error)
	RejectBudget(ctx context.Context, id string) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
}

type BudgetUseCase struct {
	repo interfaces.IBudgetRepository
	calc *pricing.Calculator
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, calc *pricing.Calculator) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, calc: calc}
}

func (u *BudgetUseCase) CreateBudget(ctx context.Context, client entities.ClientSnapshot, scope entities.ScopeParameters) (entities.Budget, error) {
	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		return entities.Budget{}, ErrInvalidClientName
	}

	calc, err := u.calc.ComputeBudget(scope)
	if err != nil {
		return entities.Budget{}, err
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:          uuid.NewString(),
		ServiceType: scope.ServiceType,
		Scope:       scope,
		Calculation: calc,
		Status:      entities.BudgetStatusRascunho,
		Client:      client,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, b)
}

// UpdateScope replaces the scope and recomputes the calculation. Only rascunho
// budgets may change; anything already enviado is frozen.
func (u *BudgetUseCase) UpdateScope(ctx context.Context, id string, scope entities.ScopeParameters) (entities.Budget, error) {
	b, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status != entities.BudgetStatusRascunho {
		return entities.Budget{}, ErrBudgetNotDraft
	}

	calc, err := u.calc.ComputeBudget(scope)
	if err != nil {
		return entities.Budget{}, err
	}

	b.ServiceType = scope.ServiceType
	b.Scope = scope
	b.Calculation = calc
	b.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, b)
}

func (u *BudgetUseCase) SendBudget(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, entities.BudgetStatusRascunho, entities.BudgetStatusEnviado)
}

func (u *BudgetUseCase) ApproveBudget(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, entities.BudgetStatusEnviado, entities.BudgetStatusAprovado)
}

func (u *BudgetUseCase) RejectBudget(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, entities.BudgetStatusEnviado, entities.BudgetStatusRejeitado)
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	return u.getExisting(ctx, id)
}

func (u *BudgetUseCase) transition(ctx context.Context, id string, from, to entities.BudgetStatus) (entities.Budget, error) {
	b, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status != from {
		return entities.Budget{}, ErrInvalidBudgetTransition
	}

	b.Status = to
	b.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, b)
}

func (u *BudgetUseCase) getExisting(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}
