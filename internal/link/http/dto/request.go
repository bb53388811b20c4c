// Package dto provides data transfer objects for the link HTTP layer.
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/atluixx/lynkt/internal/link/usecase"
	appValidation "github.com/atluixx/lynkt/internal/validation"
)

const maxURLLength = 2048

// CreateLinkRequest is the payload for a new link.
type CreateLinkRequest struct {
	URL         string     `json:"url"`
	Label       string     `json:"label"`
	Icon        *string    `json:"icon"`
	GroupID     *uuid.UUID `json:"group_id"`
	OrderIndex  *int       `json:"order_index"`
	IsActive    *bool      `json:"is_active"`
	MaxClicks   *int       `json:"max_clicks"`
	ActiveUntil *time.Time `json:"active_until"`
}

// Validate checks the link payload. is_active must be sent explicitly.
func (r *CreateLinkRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.URL,
			validation.Required.Error("url is required"),
			validation.RuneLength(1, maxURLLength).Error("url is too long"),
			appValidation.HTTPURL,
		),
		validation.Field(&r.Label,
			validation.Required.Error("label is required"),
			appValidation.NotBlank,
			validation.RuneLength(1, 255).Error("label must be between 1 and 255 characters"),
		),
		validation.Field(&r.Icon,
			validation.NilOrNotEmpty.Error("icon must not be empty"),
			validation.RuneLength(1, maxURLLength).Error("icon is too long"),
		),
		validation.Field(&r.IsActive, validation.NotNil.Error("is_active is required")),
		validation.Field(&r.OrderIndex, validation.Min(0).Error("order_index must not be negative")),
		validation.Field(&r.MaxClicks, validation.Min(0).Error("max_clicks must not be negative")),
	)
}

// ToCreateLinkInput converts the request to use case input.
func (r *CreateLinkRequest) ToCreateLinkInput() usecase.CreateLinkInput {
	input := usecase.CreateLinkInput{
		URL:         strings.TrimSpace(r.URL),
		Label:       strings.TrimSpace(r.Label),
		Icon:        r.Icon,
		GroupID:     r.GroupID,
		ActiveUntil: utcPtr(r.ActiveUntil),
	}
	if r.IsActive != nil {
		input.IsActive = *r.IsActive
	}
	if r.OrderIndex != nil {
		input.OrderIndex = *r.OrderIndex
	}
	if r.MaxClicks != nil {
		input.MaxClicks = *r.MaxClicks
	}
	return input
}

// UpdateLinkRequest is a partial link update. Omitted fields stay unchanged.
type UpdateLinkRequest struct {
	URL         *string    `json:"url"`
	Label       *string    `json:"label"`
	Icon        *string    `json:"icon"`
	GroupID     *uuid.UUID `json:"group_id"`
	OrderIndex  *int       `json:"order_index"`
	IsActive    *bool      `json:"is_active"`
	MaxClicks   *int       `json:"max_clicks"`
	ActiveUntil *time.Time `json:"active_until"`
}

// Validate applies the creation constraints to every field that is present.
func (r *UpdateLinkRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.URL,
			validation.NilOrNotEmpty.Error("url must not be empty"),
			validation.RuneLength(1, maxURLLength).Error("url is too long"),
			appValidation.HTTPURL,
		),
		validation.Field(&r.Label,
			validation.NilOrNotEmpty.Error("label must not be empty"),
			appValidation.NotBlank,
			validation.RuneLength(1, 255).Error("label must be between 1 and 255 characters"),
		),
		validation.Field(&r.Icon,
			validation.NilOrNotEmpty.Error("icon must not be empty"),
			validation.RuneLength(1, maxURLLength).Error("icon is too long"),
		),
		validation.Field(&r.OrderIndex, validation.Min(0).Error("order_index must not be negative")),
		validation.Field(&r.MaxClicks, validation.Min(0).Error("max_clicks must not be negative")),
	)
}

// ToUpdateLinkInput converts the request to use case input.
func (r *UpdateLinkRequest) ToUpdateLinkInput() usecase.UpdateLinkInput {
	return usecase.UpdateLinkInput{
		URL:         trimmedPtr(r.URL),
		Label:       trimmedPtr(r.Label),
		Icon:        r.Icon,
		GroupID:     r.GroupID,
		OrderIndex:  r.OrderIndex,
		IsActive:    r.IsActive,
		MaxClicks:   r.MaxClicks,
		ActiveUntil: utcPtr(r.ActiveUntil),
	}
}

// GroupRequest is the payload for creating or renaming a collection.
type GroupRequest struct {
	Title string `json:"title"`
}

// Validate checks the collection title.
func (r *GroupRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.RuneLength(1, 255).Error("title must be between 1 and 255 characters"),
		),
	)
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
