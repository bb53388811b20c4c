package dto

import (
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/atluixx/lynkt/internal/user/usecase"
	appValidation "github.com/atluixx/lynkt/internal/validation"
)

// UpdateUserRequest is a partial profile update. Omitted fields stay unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	Email    *string `json:"email"`
	Password *string `json:"password"` //nolint:gosec // plaintext only until hashed
	Bio      *string `json:"bio"`
	Country  *string `json:"country"`
}

// Validate applies the registration constraints to every field that is present.
// Name, country and email are trimmed in place first.
func (r *UpdateUserRequest) Validate() error {
	trimInPlace(r.Name, r.Country, r.Email)

	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name must not be empty"),
			appValidation.NotBlank,
			validation.RuneLength(4, 100).Error("name must be between 4 and 100 characters"),
		),
		validation.Field(&r.Slug,
			validation.NilOrNotEmpty.Error("slug must not be empty"),
			validation.RuneLength(4, 50).Error("slug must be between 4 and 50 characters"),
			appValidation.Slug,
		),
		validation.Field(&r.Email,
			validation.NilOrNotEmpty.Error("email must not be empty"),
			validation.RuneLength(3, 255).Error("email must be at most 255 characters"),
			appValidation.Email,
		),
		validation.Field(&r.Password,
			validation.NilOrNotEmpty.Error("password must not be empty"),
			validation.RuneLength(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.StrongPassword,
		),
		validation.Field(&r.Bio,
			validation.NilOrNotEmpty.Error("bio must not be empty"),
			validation.RuneLength(20, 1000).Error("bio must be between 20 and 1000 characters"),
		),
		validation.Field(&r.Country,
			validation.NilOrNotEmpty.Error("country must not be empty"),
			appValidation.NotBlank,
			validation.RuneLength(2, 100).Error("country must be between 2 and 100 characters"),
		),
	)
}

// ToUpdateUserInput converts the request to use case input.
func (r *UpdateUserRequest) ToUpdateUserInput() usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		Name:     r.Name,
		Slug:     r.Slug,
		Email:    r.Email,
		Password: r.Password,
		Bio:      r.Bio,
		Country:  r.Country,
	}
}

func trimInPlace(fields ...*string) {
	for _, field := range fields {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
}
