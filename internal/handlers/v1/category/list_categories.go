package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/session"
	"github.com/flowi-app/flowi-server/internal/storage/category"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user UUID set by the auth proxy"`
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"All categories of the user, name ascending"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// categoryLister is the interface for listing categories.
type categoryLister interface {
	ListCategories(ctx context.Context, userID uuid.UUID) ([]*category.Category, error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Lists all categories of the calling user.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	userID, err := session.UserID(input.UserID)
	if err != nil {
		return nil, err
	}

	rows, err := h.CategoryService.ListCategories(ctx, userID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list categories", err)
	}

	out := make([]Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, toAPI(row))
	}

	return &ListCategoriesOutput{
		Body: ListCategoriesResponseBody{Categories: out},
	}, nil
}
