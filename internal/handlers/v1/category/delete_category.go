package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	ID     string `path:"id" doc:"Category UUID"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Status int
}

// categoryDeleter is the interface for deleting categories.
type categoryDeleter interface {
	DeleteCategory(ctx context.Context, id, userID uuid.UUID) error
}

// DeleteCategoryHandler handles DELETE /v1/category/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/category/{id}",
		Summary:     "Delete category",
		Description: "Removes a category. Transactions keep their rows and show as uncategorized.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}

	if err := h.CategoryService.DeleteCategory(ctx, id, userID); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete category", err)
	}

	return &DeleteCategoryOutput{Status: http.StatusNoContent}, nil
}
