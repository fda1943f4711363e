package handlers

import (
	"errors"
	"net/http"

	request "github.com/bernardoxlima/arqOS-mvp-sub004/internal/adapter/http/dto/request"
	response "github.com/bernardoxlima/arqOS-mvp-sub004/internal/adapter/http/dto/response"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/workflow"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/usecase"
	"github.com/bernardoxlima/arqOS-mvp-sub004/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)

// ProjectHandler handles HTTP requests for project workflow operations.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// CreateProject seeds a project from an approved budget.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.CreateFromBudget(c.Request.Context(), payload.ResolveBudgetID())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(project))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// AdvanceStage moves the project to another stage of its snapshot. Backward
// moves are legal; the use case rejects stage ids outside the snapshot.
func (h *ProjectHandler) AdvanceStage(c *gin.Context) {
	var payload request.StageAdvanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.AdvanceStage(c.Request.Context(), c.Param("id"), payload.ResolveStageID())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// AppendTimeEntry logs hours against a stage of the project.
func (h *ProjectHandler) AppendTimeEntry(c *gin.Context) {
	var payload request.TimeEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.AppendTimeEntry(c.Request.Context(), c.Param("id"), payload.ToTimeEntry())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) GetProgress(c *gin.Context) {
	progress, err := h.usecase.GetProgress(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProgress(progress))
}

func (h *ProjectHandler) GetFinancialSummary(c *gin.Context) {
	summary, err := h.usecase.GetFinancialSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFinancialSummary(summary))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidBudgetID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, workflow.ErrInvalidStageReference):
		return pkg.NewDomainErrorSimple("INVALID_STAGE_REFERENCE", err.Error(), http.StatusBadRequest)
	case errors.Is(err, workflow.ErrInvalidTimeEntry):
		return pkg.NewDomainErrorSimple("INVALID_TIME_ENTRY", err.Error(), http.StatusBadRequest)
	case errors.Is(err, workflow.ErrStageNotFound):
		return pkg.NewDomainError("STAGE_NOT_FOUND", "Project stage state is corrupt", err, http.StatusInternalServerError)
	case errors.Is(err, workflow.ErrNoStagesConfigured):
		return pkg.NewDomainErrorSimple("NO_STAGES_CONFIGURED", "No stage list for this service/modality", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotApproved):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_APPROVED", "Budget not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrProjectAlreadyExists):
		return pkg.NewDomainErrorSimple("PROJECT_ALREADY_EXISTS", "Project already exists for this budget", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
