package models

import (
	"strings"

	"github.com/envelope-zero/expenses/pkg/entity"
)

// DefaultColor is the color of categories that do not specify one.
const DefaultColor = "#cccccc"

// Category groups expenses.
type Category struct {
	ID    string `json:"id" example:"cat_1"`                                             // ID of the category
	Name  string `json:"name" example:"Food & Dining"`                                   // Name of the category
	Color string `json:"color,omitempty" binding:"omitempty,hexcolor" example:"#FF6384"` // Color used to display the category
}

func (c Category) GetID() string {
	return c.ID
}

func (c Category) WithID(id string) Category {
	c.ID = id
	return c
}

// Validate checks the category and fills in the default color.
func (c Category) Validate() (Category, error) {
	if strings.TrimSpace(c.Name) == "" {
		return c, ErrCategoryNameEmpty
	}

	if c.Color == "" {
		c.Color = DefaultColor
	}

	return c, nil
}

// CategoryEditable is the request body for creating a category.
type CategoryEditable struct {
	Name  *string `json:"name" binding:"required" example:"Food & Dining"`                           // Name of the category
	Color string  `json:"color" binding:"omitempty,hexcolor" example:"#FF6384" default:"#cccccc"` // Color used to display the category
}

// Model returns a validated category for the editable fields.
func (e CategoryEditable) Model() (Category, error) {
	if e.Name == nil {
		return Category{}, ErrCategoryNameEmpty
	}

	return Category{Name: *e.Name, Color: e.Color}.Validate()
}

// CategoryConfig returns the entity configuration for categories.
func CategoryConfig() entity.Config[Category] {
	return entity.Config[Category]{
		Name:      "category",
		IndexName: "categories",
		Default:   Category{Color: DefaultColor},
		Seed:      SeedCategories,
	}
}

// SeedCategories returns the categories a new store starts with.
func SeedCategories() []Category {
	return []Category{
		{ID: "cat_1", Name: "Food & Dining", Color: "#FF6384"},
		{ID: "cat_2", Name: "Transportation", Color: "#36A2EB"},
		{ID: "cat_3", Name: "Housing", Color: "#FFCE56"},
		{ID: "cat_4", Name: "Entertainment", Color: "#4BC0C0"},
		{ID: "cat_5", Name: "Shopping", Color: "#9966FF"},
		{ID: "cat_6", Name: "Utilities", Color: "#FF9F40"},
	}
}
