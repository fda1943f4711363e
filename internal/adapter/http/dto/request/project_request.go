package request

import (
	"strings"
	"time"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
)

// ProjectCreateRequest seeds a project from an approved budget.
type ProjectCreateRequest struct {
	BudgetID string `json:"budget_id" binding:"required"`
}

func (r ProjectCreateRequest) ResolveBudgetID() string {
	return strings.TrimSpace(r.BudgetID)
}

// StageAdvanceRequest moves the project to another stage of its snapshot.
type StageAdvanceRequest struct {
	StageID string `json:"stage_id" binding:"required"`
}

func (r StageAdvanceRequest) ResolveStageID() string {
	return strings.TrimSpace(r.StageID)
}

// TimeEntryRequest logs hours against a stage.
type TimeEntryRequest struct {
	StageID     string    `json:"stage_id" binding:"required"`
	Hours       float64   `json:"hours" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func (r TimeEntryRequest) ToTimeEntry() entities.TimeEntry {
	return entities.TimeEntry{
		StageID:     strings.TrimSpace(r.StageID),
		Hours:       r.Hours,
		Description: strings.TrimSpace(r.Description),
		Date:        r.Date,
	}
}
