// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"time"

	"github.com/atluixx/lynkt/internal/user/domain"
)

// UserResponse is the public projection of an account.
// It never carries the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserEnvelope wraps a single projection as {"user": ...}.
type UserEnvelope struct {
	User UserResponse `json:"user"`
}

// ListUsersResponse represents a page of profiles.
type ListUsersResponse struct {
	Data []UserResponse `json:"data"`
}

// SlugAvailabilityResponse answers a slug availability check.
type SlugAvailabilityResponse struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
}

// MapUserToResponse converts a domain user to its public projection.
func MapUserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Slug:      user.Slug,
		Email:     user.Email,
		Bio:       user.Bio,
		Country:   user.Country,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// MapUserToEnvelope converts a domain user to {"user": projection}.
func MapUserToEnvelope(user *domain.User) UserEnvelope {
	return UserEnvelope{User: MapUserToResponse(user)}
}

// MapUsersToListResponse converts a slice of domain users to a list response.
func MapUsersToListResponse(users []*domain.User) ListUsersResponse {
	data := make([]UserResponse, 0, len(users))
	for _, user := range users {
		data = append(data, MapUserToResponse(user))
	}
	return ListUsersResponse{Data: data}
}
