package response

import (
	"time"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/finance"
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/usecase"
)

type ProjectResponse struct {
	ID             string                     `json:"id"`
	BudgetID       string                     `json:"budget_id"`
	ServiceType    string                     `json:"service_type"`
	Modality       string                     `json:"modality"`
	Status         string                     `json:"status"`
	Stages         []entities.StageDefinition `json:"stages"`
	CurrentStageID string                     `json:"current_stage_id"`
	TimeEntries    []entities.TimeEntry       `json:"time_entries"`
	HoursUsed      float64                    `json:"hours_used"`
	Financials     entities.ProjectFinancials `json:"financials"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
	DeliveredAt    *time.Time                 `json:"delivered_at,omitempty"`
}

func FromProject(p entities.Project) ProjectResponse {
	hours := 0.0
	for _, e := range p.TimeEntries {
		hours += e.Hours
	}

	resp := ProjectResponse{
		ID:             p.ID,
		BudgetID:       p.BudgetID,
		ServiceType:    string(p.ServiceType),
		Modality:       string(p.Modality),
		Status:         string(p.Status),
		Stages:         p.Stages,
		CurrentStageID: p.CurrentStageID,
		TimeEntries:    p.TimeEntries,
		HoursUsed:      hours,
		Financials:     p.Financials,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if !p.DeliveredAt.IsZero() {
		t := p.DeliveredAt
		resp.DeliveredAt = &t
	}
	return resp
}

type ProjectProgressResponse struct {
	StageID    string `json:"stage_id"`
	StageName  string `json:"stage_name"`
	StageIndex int    `json:"stage_index"`
	StageCount int    `json:"stage_count"`
	Percent    int    `json:"percent"`
}

func FromProgress(p usecase.ProjectProgress) ProjectProgressResponse {
	return ProjectProgressResponse{
		StageID:    p.StageID,
		StageName:  p.StageName,
		StageIndex: p.StageIndex,
		StageCount: p.StageCount,
		Percent:    p.Percent,
	}
}

type FinancialSummaryResponse struct {
	HoursUsed         float64 `json:"hours_used"`
	HourlyYield       float64 `json:"hourly_yield"`
	TargetHourlyRate  float64 `json:"target_hourly_rate"`
	Variance          float64 `json:"variance"`
	ProfitabilityFlag string  `json:"profitability_flag"`
}

func FromFinancialSummary(s finance.Summary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		HoursUsed:         s.HoursUsed,
		HourlyYield:       s.HourlyYield,
		TargetHourlyRate:  s.TargetHourlyRate,
		Variance:          s.Variance,
		ProfitabilityFlag: s.ProfitabilityFlag,
	}
}
