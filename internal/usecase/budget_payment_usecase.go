package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/usecase/interfaces"
)

var (
	ErrBudgetPaymentNotFound      = errors.New("budget payment not found")
	ErrInvalidPaymentBudgetID     = errors.New("invalid budget_id")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IBudgetPaymentUseCase collects the entry payment of an approved budget.

type IBudgetPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, budgetID string, mpPayload json.RawMessage) (entities.BudgetPayment, error)
	GetByID(ctx context.Context, id string) (entities.BudgetPayment, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BudgetPayment, error)
}

type BudgetPaymentUseCase struct {
	repo       interfaces.IBudgetPaymentRepository
	budgetRepo interfaces.IBudgetRepository
	gateway    interfaces.IPaymentGateway
}

var _ IBudgetPaymentUseCase = (*BudgetPaymentUseCase)(nil)

func NewBudgetPaymentUseCase(repo interfaces.IBudgetPaymentRepository, budgetRepo interfaces.IBudgetRepository, gateway interfaces.IPaymentGateway) *BudgetPaymentUseCase {
	return &BudgetPaymentUseCase{repo: repo, budgetRepo: budgetRepo, gateway: gateway}
}

func (u *BudgetPaymentUseCase) CreateAndApprove(ctx context.Context, budgetID string, mpPayload json.RawMessage) (entities.BudgetPayment, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.BudgetPayment{}, ErrInvalidPaymentBudgetID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		return entities.BudgetPayment{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		return entities.BudgetPayment{}, errors.New("payment gateway not configured")
	}

	b, err := u.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		return entities.BudgetPayment{}, err
	}
	if b.ID == "" {
		return entities.BudgetPayment{}, ErrBudgetNotFound
	}
	if b.Status != entities.BudgetStatusAprovado {
		return entities.BudgetPayment{}, ErrBudgetNotApproved
	}

	amount := b.Calculation.PriceWithDiscount

	// The source of truth for the amount is the approved calculation; whatever
	// the caller sent is overwritten before the gateway sees it.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil {
		return entities.BudgetPayment{}, ErrInvalidMPPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = budgetID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Orçamento %s", budgetID)
	}
	reqMap["transaction_amount"] = amount
	if enriched, err := json.Marshal(reqMap); err == nil {
		mpPayload = enriched
	}

	log.Printf("[payment][usecase] calling payment gateway budget_id=%s amount=%.2f", budgetID, amount)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed budget_id=%s err=%v", budgetID, err)
		if isGatewayUnauthorized(err) {
			return entities.BudgetPayment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.BudgetPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.BudgetPayment{}, err
	}
	log.Printf("[payment][usecase] payment gateway success budget_id=%s provider_payment_id=%s provider_status=%s", budgetID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed budget_id=%s err=%v", budgetID, err)
	}

	p := entities.BudgetPayment{
		ID:           providerPaymentID,
		BudgetID:     budgetID,
		Date:         time.Now().UTC(),
		Status:       entities.BudgetPaymentStatusAprovado,
		Amount:       amount,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	return u.repo.Create(ctx, p)
}

func (u *BudgetPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BudgetPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetPayment{}, err
	}
	if p.ID == "" {
		return entities.BudgetPayment{}, ErrBudgetPaymentNotFound
	}
	return p, nil
}

func (u *BudgetPaymentUseCase) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BudgetPayment, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidPaymentBudgetID
	}
	return u.repo.ListByBudgetID(ctx, budgetID)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
