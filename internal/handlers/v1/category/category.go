package category

import (
	"github.com/flowi-app/flowi-server/internal/storage/category"
)

// Category is the API response model for a category.
type Category struct {
	ID    string `json:"id" doc:"Category UUID"`
	Name  string `json:"name" doc:"Category name"`
	Icon  string `json:"icon" doc:"Icon identifier"`
	Color string `json:"color" doc:"Display color (hex)"`
	Type  string `json:"type" doc:"Category type: income, expense, or both"`
}

func toAPI(cat *category.Category) Category {
	return Category{
		ID:    cat.ID.String(),
		Name:  cat.Name,
		Icon:  cat.Icon,
		Color: cat.Color,
		Type:  string(cat.Type),
	}
}
