package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/flowi-app/flowi-server/internal/storage"
	"github.com/flowi-app/flowi-server/internal/storage/budget"
	"github.com/flowi-app/flowi-server/internal/storage/transaction"
)

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) FindByID(ctx context.Context, id, userID uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionTable) Insert(ctx context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTransactionTable) Update(ctx context.Context, update *transaction.TransactionUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *mockTransactionTable) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionTable) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *mockTransactionTable) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockBudgetTable struct {
	mock.Mock
}

func (m *mockBudgetTable) Upsert(ctx context.Context, upsert *budget.BudgetUpsert) (uuid.UUID, error) {
	args := m.Called(ctx, upsert)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockBudgetTable) UpdateLimit(ctx context.Context, id, userID uuid.UUID, limit decimal.Decimal) error {
	args := m.Called(ctx, id, userID, limit)
	return args.Error(0)
}

func (m *mockBudgetTable) ListForPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*budget.Budget, error) {
	args := m.Called(ctx, userID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*budget.Budget), args.Error(1)
}

func (m *mockBudgetTable) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *mockBudgetTable) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestDeleteAllData_ClearsAllTables(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	txs := new(mockTransactionTable)
	budgets := new(mockBudgetTable)
	goals := new(mockGoalTable)
	txs.On("DeleteAllForUser", mock.Anything, userID).Return(nil)
	budgets.On("DeleteAllForUser", mock.Anything, userID).Return(nil)
	goals.On("DeleteAllForUser", mock.Anything, userID).Return(nil)

	action := &DeleteAllData{UserID: userID}
	err := action.Perform(context.Background(), &storage.Writer{
		Transactions: txs,
		Budgets:      budgets,
		Goals:        goals,
	})
	assert.NoError(t, err)
	txs.AssertExpectations(t)
	budgets.AssertExpectations(t)
	goals.AssertExpectations(t)
}

func TestDeleteAllData_StopsOnFirstError(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	txs := new(mockTransactionTable)
	budgets := new(mockBudgetTable)
	goals := new(mockGoalTable)
	txs.On("DeleteAllForUser", mock.Anything, userID).Return(errors.New("connection lost"))

	action := &DeleteAllData{UserID: userID}
	err := action.Perform(context.Background(), &storage.Writer{
		Transactions: txs,
		Budgets:      budgets,
		Goals:        goals,
	})
	assert.Error(t, err)
	budgets.AssertNotCalled(t, "DeleteAllForUser")
	goals.AssertNotCalled(t, "DeleteAllForUser")
}
