package goal

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/flowi-app/flowi-server/internal/operator/actions"
)

// mockProcessor is a mock for operator.Processor.
type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newAddFundsTestAPI(t *testing.T, op *mockProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewAddFundsHandler(op).Register(api)
	return api
}

func TestHTTP_AddFunds_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	goalID := uuid.Must(uuid.NewV4())

	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		funds, ok := a.(*actions.AddGoalFunds)
		return ok &&
			funds.GoalID == goalID &&
			funds.UserID == userID &&
			funds.Amount.Equal(decimal.RequireFromString("250"))
	})).Return(nil)

	resp := newAddFundsTestAPI(t, op).Post("/v1/goal/"+goalID.String()+"/funds",
		"X-User-ID: "+userID.String(),
		AddFundsBody{Amount: "250"},
	)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	op.AssertExpectations(t)
}

func TestHTTP_AddFunds_MissingUserHeader(t *testing.T) {
	op := new(mockProcessor)

	resp := newAddFundsTestAPI(t, op).Post("/v1/goal/"+uuid.Must(uuid.NewV4()).String()+"/funds",
		AddFundsBody{Amount: "250"},
	)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	op.AssertNotCalled(t, "Process")
}

func TestHTTP_AddFunds_RejectsNonPositiveAmount(t *testing.T) {
	op := new(mockProcessor)

	resp := newAddFundsTestAPI(t, op).Post("/v1/goal/"+uuid.Must(uuid.NewV4()).String()+"/funds",
		"X-User-ID: "+uuid.Must(uuid.NewV4()).String(),
		AddFundsBody{Amount: "0"},
	)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	op.AssertNotCalled(t, "Process")
}

func TestHTTP_AddFunds_InvalidGoalID(t *testing.T) {
	op := new(mockProcessor)

	resp := newAddFundsTestAPI(t, op).Post("/v1/goal/not-a-uuid/funds",
		"X-User-ID: "+uuid.Must(uuid.NewV4()).String(),
		AddFundsBody{Amount: "10"},
	)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	op.AssertNotCalled(t, "Process")
}
