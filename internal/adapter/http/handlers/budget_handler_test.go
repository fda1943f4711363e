package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/adapter/http/handlers/mocks"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/pricing"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const createBudgetBody = `{
	"client": {"name": "Ana"},
	"scope": {
		"service_type": "decor",
		"environments": [{"type": "sala", "size": "M"}, {"type": "cozinha", "size": "M"}],
		"modality": "online",
		"payment_terms": {"mode": "parcelado"}
	}
}`

func TestBudgetHandler_CreateBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("pricing error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		uc.EXPECT().CreateBudget(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Budget{}, pricing.ErrScopeOutOfRange)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(createBudgetBody))
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
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		uc.EXPECT().CreateBudget(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, client entities.ClientSnapshot, scope entities.ScopeParameters) (entities.Budget, error) {
				if client.Name != "Ana" {
					t.Fatalf("unexpected client: %+v", client)
				}
				if scope.ServiceType != entities.ServiceDecor || len(scope.Environments) != 2 {
					t.Fatalf("unexpected scope: %+v", scope)
				}
				return entities.Budget{ID: "b-1", Status: entities.BudgetStatusRascunho, Client: client, Scope: scope}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(createBudgetBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "b-1" || body["status"] != "rascunho" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestBudgetHandler_StatusTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("send success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/v1/budgets/:id/send", h.SendBudget)

		uc.EXPECT().SendBudget(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusEnviado}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve on wrong status maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/v1/budgets/:id/approve", h.ApproveBudget)

		uc.EXPECT().ApproveBudget(gomock.Any(), "b-1").Return(entities.Budget{}, usecase.ErrInvalidBudgetTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reject unknown budget maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/v1/budgets/:id/reject", h.RejectBudget)

		uc.EXPECT().RejectBudget(gomock.Any(), "nope").Return(entities.Budget{}, usecase.ErrBudgetNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/nope/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_UpdateScope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("frozen budget maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PUT("/v1/budgets/:id/scope", h.UpdateScope)

		uc.EXPECT().UpdateScope(gomock.Any(), "b-1", gomock.Any()).Return(entities.Budget{}, usecase.ErrBudgetNotDraft)

		body := `{"scope": {"service_type": "decor", "environments": [{"type": "sala", "size": "M"}], "modality": "online", "payment_terms": {"mode": "parcelado"}}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/budgets/b-1/scope", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.GET("/v1/budgets/:id", h.GetBudget)

		uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.GET("/v1/budgets/:id", h.GetBudget)

		uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusAprovado}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "aprovado" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
