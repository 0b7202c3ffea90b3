package service

import (
	"github.com/flowi-app/flowi-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Category    *CategoryService
	Budget      *BudgetService
	Goal        *GoalService
	Profile     *ProfileService
	Report      *ReportService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		Category:    NewCategoryService(store),
		Budget:      NewBudgetService(store),
		Goal:        NewGoalService(store),
		Profile:     NewProfileService(store),
		Report:      NewReportService(store),
	}
}
