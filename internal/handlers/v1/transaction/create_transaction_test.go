package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/flowi-app/flowi-server/internal/storage/transaction"
)

// mockTransactionService is a mock for transactionCreator.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// newTestAPI registers the handler against a humatest API and returns it.
func newTestAPI(t *testing.T, svc transactionCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

func userHeader(userID uuid.UUID) string {
	return "X-User-ID: " + userID.String()
}

// -- parseCreateTransactionInput unit tests --

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	input := &CreateTransactionInput{
		UserID: userID.String(),
		Body: CreateTransactionBody{
			Type:        "expense",
			Amount:      "123.45",
			CategoryID:  categoryID.String(),
			Date:        "2025-01-15",
			Description: "Supermercado",
			Notes:       "compra semanal",
		},
	}

	create, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, userID, create.UserID)
	assert.Equal(t, transaction.TypeExpense, create.Type)
	assert.True(t, create.Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, categoryID, *create.CategoryID)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), create.Date)
	assert.Equal(t, "Supermercado", create.Description)
	assert.Equal(t, "compra semanal", *create.Notes)
}

func TestParseCreateTransactionInput_DefaultsAndOptionals(t *testing.T) {
	input := &CreateTransactionInput{
		UserID: uuid.Must(uuid.NewV4()).String(),
		Body: CreateTransactionBody{
			Type:        "income",
			Amount:      "50",
			Description: "Venta",
		},
	}

	create, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Nil(t, create.CategoryID)
	assert.Nil(t, create.Notes)
	assert.False(t, create.Date.IsZero())
}

func TestParseCreateTransactionInput_RejectsNegativeAmount(t *testing.T) {
	input := &CreateTransactionInput{
		UserID: uuid.Must(uuid.NewV4()).String(),
		Body: CreateTransactionBody{
			Type:        "expense",
			Amount:      "-10",
			Description: "Reembolso",
		},
	}

	_, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

func TestParseCreateTransactionInput_RejectsMissingUser(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Type:        "expense",
			Amount:      "10",
			Description: "Test",
		},
	}

	_, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(create *transaction.TransactionCreate) bool {
		return create.UserID == userID &&
			create.Type == transaction.TypeExpense &&
			create.Amount.Equal(decimal.RequireFromString("12.50")) &&
			create.Description == "Café"
	})).Return(txID, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", userHeader(userID), CreateTransactionBody{
		Type:        "expense",
		Amount:      "12.50",
		Description: "Café",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingUserHeader(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Type:        "expense",
		Amount:      "10.00",
		Description: "Test",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidType(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma enum validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
		Type:        "transfer",
		Amount:      "10.00",
		Description: "Test",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
		Type:        "expense",
		Amount:      "not-a-decimal",
		Description: "Test",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(uuid.Nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
		Type:        "expense",
		Amount:      "10.00",
		Description: "Test",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
