package routes

import (
	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets  = "/budgets"
	PathProjects = "/projects"
	PathPayments = "/payments"
)

func addArqosRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler, projectHandler *handlers.ProjectHandler, paymentHandler *handlers.BudgetPaymentHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.PUT("/:id/scope", budgetHandler.UpdateScope)
		budgets.PATCH("/:id/send", budgetHandler.SendBudget)
		budgets.PATCH("/:id/approve", budgetHandler.ApproveBudget)
		budgets.PATCH("/:id/reject", budgetHandler.RejectBudget)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PATCH("/:id/stage", projectHandler.AdvanceStage)
		projects.POST("/:id/time-entries", projectHandler.AppendTimeEntry)
		projects.GET("/:id/progress", projectHandler.GetProgress)
		projects.GET("/:id/financials", projectHandler.GetFinancialSummary)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:budget_id", paymentHandler.CreatePaymentByBudgetID)
		payments.GET("/:budget_id", paymentHandler.GetPaymentByBudgetID)
	}
}
