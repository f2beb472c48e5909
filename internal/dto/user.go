package dto

import "time"

// UserRequest is the request body for creating a household member
type UserRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"required,max=30"`
}

// UserResponse represents a household member in API responses
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListUsersResponse is the response for listing household members
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}
