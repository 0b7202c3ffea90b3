package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/storage/category"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name  string `json:"name" required:"true" minLength:"1" doc:"Category name"`
	Icon  string `json:"icon" doc:"Icon identifier"`
	Color string `json:"color" doc:"Display color (hex)"`
	Type  string `json:"type" required:"true" enum:"income,expense,both" doc:"Category type"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
	Body   CreateCategoryBody
}

// CreateCategoryResponse is the response body for creating a category.
type CreateCategoryResponse struct {
	ID string `json:"id" doc:"Created category UUID"`
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   CreateCategoryResponse
}

// categoryCreator is the interface for creating categories.
type categoryCreator interface {
	CreateCategory(ctx context.Context, create *category.CategoryCreate) (uuid.UUID, error)
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/v1/category",
		Summary:     "Create category",
		Description: "Creates a new transaction category for the calling user.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := h.CategoryService.CreateCategory(ctx, &category.CategoryCreate{
		UserID: userID,
		Name:   input.Body.Name,
		Icon:   input.Body.Icon,
		Color:  input.Body.Color,
		Type:   category.Type(input.Body.Type),
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create category", err)
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   CreateCategoryResponse{ID: id.String()},
	}, nil
}
