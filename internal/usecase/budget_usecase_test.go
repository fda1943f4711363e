package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/pricing"
	mock_interfaces "github.com/bernardoxlima/arqOS-mvp-sub004/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func decorScope() entities.ScopeParameters {
	return entities.ScopeParameters{
		ServiceType: entities.ServiceDecor,
		Environments: []entities.EnvironmentConfig{
			{Type: "sala", Size: entities.SizeM},
			{Type: "cozinha", Size: entities.SizeM},
		},
		Modality:     entities.ModalityOnline,
		PaymentTerms: entities.PaymentTerms{Mode: entities.PaymentParcelado},
	}
}

func newBudgetUC(repo *mock_interfaces.MockIBudgetRepository) *BudgetUseCase {
	return NewBudgetUseCase(repo, pricing.NewCalculator(pricing.Default()))
}

func TestBudgetUseCase_CreateBudget(t *testing.T) {
	t.Run("invalid client name", func(t *testing.T) {
		uc := newBudgetUC(nil)
		_, err := uc.CreateBudget(context.Background(), entities.ClientSnapshot{Name: "   "}, decorScope())
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("pricing error propagates", func(t *testing.T) {
		uc := newBudgetUC(nil)
		scope := decorScope()
		scope.Environments = nil
		_, err := uc.CreateBudget(context.Background(), entities.ClientSnapshot{Name: "Ana"}, scope)
		if !errors.Is(err, pricing.ErrInvalidScopeParameter) {
			t.Fatalf("expected pricing error, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := newBudgetUC(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.ID == "" || b.Status != entities.BudgetStatusRascunho {
					t.Fatalf("unexpected budget: %+v", b)
				}
				if b.Client.Name != "Ana" {
					t.Fatalf("expected trimmed client name, got %q", b.Client.Name)
				}
				if b.Calculation.FinalPrice != 4050 {
					t.Fatalf("expected priced calculation, got %+v", b.Calculation)
				}
				if b.CreatedAt.IsZero() || b.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return b, nil
			},
		)

		res, err := uc.CreateBudget(context.Background(), entities.ClientSnapshot{Name: " Ana "}, decorScope())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestBudgetUseCase_UpdateScope(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := newBudgetUC(nil)
		_, err := uc.UpdateScope(context.Background(), "  ", decorScope())
		if !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := newBudgetUC(repo)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

		_, err := uc.UpdateScope(context.Background(), "b-1", decorScope())
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("not a draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := newBudgetUC(repo)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusEnviado}, nil)

		_, err := uc.UpdateScope(context.Background(), "b-1", decorScope())
		if !errors.Is(err, ErrBudgetNotDraft) {
			t.Fatalf("expected ErrBudgetNotDraft, got %v", err)
		}
	})

	t.Run("reprices and updates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := newBudgetUC(repo)

		existing := entities.Budget{
			ID:          "b-1",
			ServiceType: entities.ServiceDecor,
			Status:      entities.BudgetStatusRascunho,
			CreatedAt:   time.Now().Add(-time.Hour).UTC(),
		}
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.ServiceType != entities.ServiceArquiteturaExpress {
					t.Fatalf("expected service type replaced, got %s", b.ServiceType)
				}
				if b.Calculation.BasePrice != 5400 {
					t.Fatalf("expected repriced calculation, got %+v", b.Calculation)
				}
				return b, nil
			},
		)

		newScope := entities.ScopeParameters{
			ServiceType:  entities.ServiceArquiteturaExpress,
			AreaM2:       45,
			ProjectKind:  entities.ProjectKindNovo,
			Modality:     entities.ModalityOnline,
			PaymentTerms: entities.PaymentTerms{Mode: entities.PaymentParcelado},
		}
		if _, err := uc.UpdateScope(context.Background(), "b-1", newScope); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBudgetUseCase_Transitions(t *testing.T) {
	cases := []struct {
		name string
		call func(uc *BudgetUseCase, ctx context.Context, id string) (entities.Budget, error)
		from entities.BudgetStatus
		to   entities.BudgetStatus
	}{
		{name: "send", call: (*BudgetUseCase).SendBudget, from: entities.BudgetStatusRascunho, to: entities.BudgetStatusEnviado},
		{name: "approve", call: (*BudgetUseCase).ApproveBudget, from: entities.BudgetStatusEnviado, to: entities.BudgetStatusAprovado},
		{name: "reject", call: (*BudgetUseCase).RejectBudget, from: entities.BudgetStatusEnviado, to: entities.BudgetStatusRejeitado},
	}

	for _, tc := range cases {
		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
			uc := newBudgetUC(repo)

			repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: tc.from}, nil)
			repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
				func(_ context.Context, b entities.Budget) (entities.Budget, error) {
					if b.Status != tc.to {
						t.Fatalf("expected status %s, got %s", tc.to, b.Status)
					}
					return b, nil
				},
			)

			res, err := tc.call(uc, context.Background(), "b-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.to {
				t.Fatalf("expected %s, got %s", tc.to, res.Status)
			}
		})

		t.Run(tc.name+" wrong source status", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
			uc := newBudgetUC(repo)

			wrong := entities.BudgetStatusRejeitado
			repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: wrong}, nil)

			_, err := tc.call(uc, context.Background(), "b-1")
			if !errors.Is(err, ErrInvalidBudgetTransition) {
				t.Fatalf("expected ErrInvalidBudgetTransition, got %v", err)
			}
		})
	}

	t.Run("approve skipping send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := newBudgetUC(repo)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusRascunho}, nil)

		_, err := uc.ApproveBudget(context.Background(), "b-1")
		if !errors.Is(err, ErrInvalidBudgetTransition) {
			t.Fatalf("expected ErrInvalidBudgetTransition, got %v", err)
		}
	})
}

func TestBudgetUseCase_GetByID(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := newBudgetUC(repo)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "b-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := newBudgetUC(repo)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1"}, nil)

		res, err := uc.GetByID(context.Background(), " b-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "b-1" {
			t.Fatalf("unexpected budget: %+v", res)
		}
	})
}
