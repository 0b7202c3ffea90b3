package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/storage/category"
)

// UpdateCategoryBody is the request body for updating a category.
type UpdateCategoryBody struct {
	Name  string `json:"name" required:"true" minLength:"1" doc:"Category name"`
	Icon  string `json:"icon" doc:"Icon identifier"`
	Color string `json:"color" doc:"Display color (hex)"`
	Type  string `json:"type" required:"true" enum:"income,expense,both" doc:"Category type"`
}

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	ID     string `path:"id" doc:"Category UUID"`
	Body   UpdateCategoryBody
}

// UpdateCategoryOutput is the Huma output for updating a category.
type UpdateCategoryOutput struct {
	Status int
}

// categoryUpdater is the interface for updating categories.
type categoryUpdater interface {
	UpdateCategory(ctx context.Context, update *category.CategoryUpdate) error
}

// UpdateCategoryHandler handles PUT /v1/category/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/v1/category/{id}",
		Summary:     "Update category",
		Description: "Replaces the fields of an existing category.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}

	err = h.CategoryService.UpdateCategory(ctx, &category.CategoryUpdate{
		ID:     id,
		UserID: userID,
		Name:   input.Body.Name,
		Icon:   input.Body.Icon,
		Color:  input.Body.Color,
		Type:   category.Type(input.Body.Type),
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update category", err)
	}

	return &UpdateCategoryOutput{Status: http.StatusNoContent}, nil
}
