package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "github.com/bernardoxlima/arqOS-mvp-sub004/internal/adapter/http/dto/request"
	response "github.com/bernardoxlima/arqOS-mvp-sub004/internal/adapter/http/dto/response"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/usecase"
	"github.com/bernardoxlima/arqOS-mvp-sub004/pkg"

	"github.com/gin-gonic/gin"
)

// BudgetPaymentHandler handles HTTP requests for budget entry payments.

type BudgetPaymentHandler struct {
	usecase usecase.IBudgetPaymentUseCase
}

func NewBudgetPaymentHandler(uc usecase.IBudgetPaymentUseCase) *BudgetPaymentHandler {
	return &BudgetPaymentHandler{usecase: uc}
}

// CreatePaymentByBudgetID creates/approves a payment using budget_id in path.
func (h *BudgetPaymentHandler) CreatePaymentByBudgetID(c *gin.Context) {
	budgetID := c.Param("budget_id")
	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload budget_id=%s err=%v", budgetID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), budgetID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed budget_id=%s err=%v", budgetID, err)
		appErr := mapBudgetPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetPayment(created))
}

// GetPaymentByBudgetID returns the latest payment for a budget.
func (h *BudgetPaymentHandler) GetPaymentByBudgetID(c *gin.Context) {
	budgetID := c.Param("budget_id")

	payments, err := h.usecase.ListByBudgetID(c.Request.Context(), budgetID)
	if err != nil {
		appErr := mapBudgetPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromBudgetPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.BudgetPaymentCreateRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.MPPayload != nil {
		wrapped := strings.TrimSpace(string(envelope.MPPayload))
		if wrapped == "" || wrapped == "null" {
			return nil, errors.New("mp_payload cannot be empty")
		}
		return envelope.MPPayload, nil
	}

	return json.RawMessage(raw), nil
}

func mapBudgetPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentBudgetID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotApproved):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_APPROVED", "Budget not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
