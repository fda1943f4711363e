package response

import (
	"time"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
)

type BudgetPaymentResponse struct {
	ID       string    `json:"id"`
	BudgetID string    `json:"budget_id"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Amount   float64   `json:"amount"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBudgetPayment(p entities.BudgetPayment) BudgetPaymentResponse {
	return BudgetPaymentResponse{
		ID:           p.ID,
		BudgetID:     p.BudgetID,
		Date:         p.Date,
		Status:       string(p.Status),
		Amount:       p.Amount,
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
