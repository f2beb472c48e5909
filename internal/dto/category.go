package dto

import "time"

// CategoryRequest is the request body for creating or updating a category
type CategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Emoji string `json:"emoji" validate:"required,max=10"`
	Color string `json:"color" validate:"required,max=30"`
}

// CategoryResponse represents an expense category in API responses
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListCategoriesResponse is the response for listing categories
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
