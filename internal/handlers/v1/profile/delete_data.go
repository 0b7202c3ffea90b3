package profile

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/logging"
	"github.com/flowi-app/flowi-server/internal/operator"
	"github.com/flowi-app/flowi-server/internal/operator/actions"
)

// DeleteDataInput is the Huma input for wiping the user's data.
type DeleteDataInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
}

// DeleteDataOutput is the Huma output for wiping the user's data.
type DeleteDataOutput struct {
	Status int
}

// DeleteDataHandler handles DELETE /v1/profile/data. The wipe runs through
// the operator so all tables clear in one transaction.
type DeleteDataHandler struct {
	Operator operator.Processor
}

// NewDeleteDataHandler creates a new DeleteDataHandler.
func NewDeleteDataHandler(op operator.Processor) *DeleteDataHandler {
	return &DeleteDataHandler{Operator: op}
}

// Register registers the delete data endpoint with the Huma API.
func (h *DeleteDataHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-all-data",
		Method:      http.MethodDelete,
		Path:        "/v1/profile/data",
		Summary:     "Delete all data",
		Description: "Removes the calling user's transactions, budgets, and goals. Categories and the profile remain.",
		Tags:        []string{"Profile"},
	}, h.handle)
}

func (h *DeleteDataHandler) handle(ctx context.Context, input *DeleteDataInput) (*DeleteDataOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteAllDataMs")
	}
	err = h.Operator.Process(ctx, &actions.DeleteAllData{UserID: userID})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete data", err)
	}

	return &DeleteDataOutput{Status: http.StatusNoContent}, nil
}
