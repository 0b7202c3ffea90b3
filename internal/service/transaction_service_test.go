package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/flowi-app/flowi-server/internal/storage"
	"github.com/flowi-app/flowi-server/internal/storage/category"
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

type mockCategoryTable struct {
	mock.Mock
}

func (m *mockCategoryTable) FindByID(ctx context.Context, id, userID uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryTable) Insert(ctx context.Context, create *category.CategoryCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockCategoryTable) Update(ctx context.Context, update *category.CategoryUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *mockCategoryTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*category.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

func (m *mockCategoryTable) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func namedTx(description, amount string) *transaction.Transaction {
	return &transaction.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Type:        transaction.TypeExpense,
		Amount:      decimal.RequireFromString(amount),
		Date:        time.Now(),
		Description: description,
	}
}

func TestListTransactions_SearchIsCaseInsensitive(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	rows := []*transaction.Transaction{
		namedTx("Supermercado Dia", "20"),
		namedTx("Taxi", "8"),
		namedTx("SUPERMERCADO Coto", "35"),
	}

	table := new(mockTransactionTable)
	table.On("List", mock.Anything, mock.Anything).Return(rows, nil)

	svc := NewTransactionService(&storage.Storage{Transactions: table})
	got, err := svc.ListTransactions(context.Background(), &TransactionListOptions{
		Filter: transaction.TransactionFilter{UserID: userID},
		Search: "supermercado",
	})
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Supermercado Dia", got[0].Description)
	assert.Equal(t, "SUPERMERCADO Coto", got[1].Description)
}

func TestListTransactions_SortByAmount(t *testing.T) {
	rows := []*transaction.Transaction{
		namedTx("a", "10"),
		namedTx("b", "50"),
		namedTx("c", "30"),
	}

	table := new(mockTransactionTable)
	table.On("List", mock.Anything, mock.Anything).Return(rows, nil)

	svc := NewTransactionService(&storage.Storage{Transactions: table})
	got, err := svc.ListTransactions(context.Background(), &TransactionListOptions{
		Filter: transaction.TransactionFilter{UserID: uuid.Must(uuid.NewV4())},
		SortBy: "amount",
	})
	assert.NoError(t, err)
	assert.Equal(t, "b", got[0].Description)
	assert.Equal(t, "c", got[1].Description)
	assert.Equal(t, "a", got[2].Description)
}

func TestListTransactions_DefaultKeepsStoreOrder(t *testing.T) {
	rows := []*transaction.Transaction{
		namedTx("newest", "10"),
		namedTx("older", "50"),
	}

	table := new(mockTransactionTable)
	table.On("List", mock.Anything, mock.Anything).Return(rows, nil)

	svc := NewTransactionService(&storage.Storage{Transactions: table})
	got, err := svc.ListTransactions(context.Background(), &TransactionListOptions{
		Filter: transaction.TransactionFilter{UserID: uuid.Must(uuid.NewV4())},
	})
	assert.NoError(t, err)
	assert.Equal(t, "newest", got[0].Description)
}
