package handlers

import (
	"context"
	"errors"
	"net/http"

	request "github.com/bernardoxlima/arqOS-mvp-sub004/internal/adapter/http/dto/request"
	response "github.com/bernardoxlima/arqOS-mvp-sub004/internal/adapter/http/dto/response"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/pricing"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/usecase"
	"github.com/bernardoxlima/arqOS-mvp-sub004/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)

// BudgetHandler handles HTTP requests for budgets (orçamentos).

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// CreateBudget prices the scope and persists a rascunho budget.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.BudgetCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.CreateBudget(c.Request.Context(), payload.Client.ToSnapshot(), payload.Scope.ToScopeParameters())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

// UpdateScope replaces the scope of a rascunho budget and reprices it.
func (h *BudgetHandler) UpdateScope(c *gin.Context) {
	var payload request.BudgetScopeUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.UpdateScope(c.Request.Context(), c.Param("id"), payload.Scope.ToScopeParameters())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) SendBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.SendBudget)
}

func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.ApproveBudget)
}

func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.RejectBudget)
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) patchBudgetStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Budget, error),
) {
	budget, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, pricing.ErrUnsupportedServiceType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_SERVICE_TYPE", err.Error(), http.StatusBadRequest)
	case errors.Is(err, pricing.ErrScopeOutOfRange):
		return pkg.NewDomainErrorSimple("SCOPE_OUT_OF_RANGE", err.Error(), http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidScopeParameter):
		return pkg.NewDomainErrorSimple("INVALID_SCOPE_PARAMETER", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidClientName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotDraft):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_DRAFT", "Budget is no longer a draft", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidBudgetTransition):
		return pkg.NewDomainErrorSimple("INVALID_BUDGET_TRANSITION", "Budget status does not allow this action", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
