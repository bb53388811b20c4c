// Package dto provides data transfer objects for the auth HTTP layer.
package dto

import (
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/atluixx/lynkt/internal/auth/usecase"
	appValidation "github.com/atluixx/lynkt/internal/validation"
)

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Email    string  `json:"email"`
	Password string  `json:"password"` //nolint:gosec // plaintext only until hashed
	Country  string  `json:"country"`
	Bio      *string `json:"bio"`
}

// Validate trims the free-text fields in place, then checks the format, length
// and strength constraints of a registration against the trimmed values.
func (r *RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Country = strings.TrimSpace(r.Country)
	r.Email = strings.TrimSpace(r.Email)

	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.RuneLength(4, 100).Error("name must be between 4 and 100 characters"),
		),
		validation.Field(&r.Slug,
			validation.Required.Error("slug is required"),
			validation.RuneLength(4, 50).Error("slug must be between 4 and 50 characters"),
			appValidation.Slug,
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			validation.RuneLength(3, 255).Error("email must be at most 255 characters"),
			appValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.RuneLength(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.StrongPassword,
		),
		validation.Field(&r.Country,
			validation.Required.Error("country is required"),
			appValidation.NotBlank,
			validation.RuneLength(2, 100).Error("country must be between 2 and 100 characters"),
		),
		validation.Field(&r.Bio,
			validation.NilOrNotEmpty.Error("bio must not be empty"),
			validation.RuneLength(20, 1000).Error("bio must be between 20 and 1000 characters"),
		),
	)
}

// ToRegisterInput converts the request to use case input.
func (r *RegisterRequest) ToRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Name:     r.Name,
		Slug:     r.Slug,
		Email:    r.Email,
		Password: r.Password,
		Country:  r.Country,
		Bio:      r.Bio,
	}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"` //nolint:gosec // plaintext only until verified
}

// Validate checks that both credentials are present.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			appValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.RuneLength(1, 128).Error("password must be at most 128 characters"),
		),
	)
}

// ToLoginInput converts the request to use case input.
func (r *LoginRequest) ToLoginInput() usecase.LoginInput {
	return usecase.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}
