package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/adapter/http/handlers/mocks"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/finance"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/workflow"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleProject() entities.Project {
	return entities.Project{
		ID:          "p-1",
		BudgetID:    "b-1",
		ServiceType: entities.ServiceArquiteturaExpress,
		Modality:    entities.ModalityOnline,
		Stages: []entities.StageDefinition{
			{ID: "briefing", OrderIndex: 0, Label: "Briefing"},
			{ID: "entrega", OrderIndex: 1, Label: "Entrega"},
		},
		CurrentStageID: "briefing",
		TimeEntries:    []entities.TimeEntry{{StageID: "briefing", Hours: 4}},
		Status:         entities.ProjectStatusEmAndamento,
		Financials:     entities.ProjectFinancials{Value: 4860, EstimatedHours: 22.5},
	}
}

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("budget not approved maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		uc.EXPECT().CreateFromBudget(gomock.Any(), "b-1").Return(entities.Project{}, usecase.ErrBudgetNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"budget_id":"b-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("duplicate project maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		uc.EXPECT().CreateFromBudget(gomock.Any(), "b-1").Return(entities.Project{}, usecase.ErrProjectAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"budget_id":"b-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		uc.EXPECT().CreateFromBudget(gomock.Any(), "b-1").Return(sampleProject(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"budget_id":" b-1 "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "p-1" || body["hours_used"] != 4.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_AdvanceStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown stage maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/stage", h.AdvanceStage)

		uc.EXPECT().AdvanceStage(gomock.Any(), "p-1", "ghost").Return(entities.Project{}, workflow.ErrInvalidStageReference)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/stage", bytes.NewBufferString(`{"stage_id":"ghost"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/stage", h.AdvanceStage)

		delivered := sampleProject()
		delivered.CurrentStageID = "entrega"
		delivered.Status = entities.ProjectStatusEntregue
		uc.EXPECT().AdvanceStage(gomock.Any(), "p-1", "entrega").Return(delivered, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/stage", bytes.NewBufferString(`{"stage_id":"entrega"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "entregue" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_AppendTimeEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing hours fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/time-entries", h.AppendTimeEntry)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/time-entries", bytes.NewBufferString(`{"stage_id":"briefing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/time-entries", h.AppendTimeEntry)

		uc.EXPECT().AppendTimeEntry(gomock.Any(), "p-1", gomock.AssignableToTypeOf(entities.TimeEntry{})).DoAndReturn(
			func(_ context.Context, _ string, entry entities.TimeEntry) (entities.Project, error) {
				if entry.StageID != "briefing" || entry.Hours != 2.5 {
					t.Fatalf("unexpected entry: %+v", entry)
				}
				return sampleProject(), nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/time-entries", bytes.NewBufferString(`{"stage_id":"briefing","hours":2.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_GetProgress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	r := gin.New()
	r.GET("/v1/projects/:id/progress", h.GetProgress)

	uc.EXPECT().GetProgress(gomock.Any(), "p-1").Return(usecase.ProjectProgress{
		StageID:    "estudo",
		StageName:  "Estudo preliminar",
		StageIndex: 2,
		StageCount: 5,
		Percent:    60,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1/progress", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["percent"] != 60.0 || body["stage_name"] != "Estudo preliminar" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestProjectHandler_GetFinancialSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	r := gin.New()
	r.GET("/v1/projects/:id/financials", h.GetFinancialSummary)

	uc.EXPECT().GetFinancialSummary(gomock.Any(), "p-1").Return(finance.Summary{
		HoursUsed:         30,
		HourlyYield:       162,
		TargetHourlyRate:  150,
		Variance:          12,
		ProfitabilityFlag: finance.FlagOtimo,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1/financials", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["profitability_flag"] != finance.FlagOtimo || body["hourly_yield"] != 162.0 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}
