package domain

import (
	"github.com/atluixx/lynkt/internal/errors"
)

// Domain-specific errors for links and collections.
var (
	// ErrLinkNotFound indicates the link does not exist on the profile.
	ErrLinkNotFound = errors.Wrap(errors.ErrNotFound, "link not found")

	// ErrLinkUnavailable indicates the link exists but is inactive, expired or out of clicks.
	ErrLinkUnavailable = errors.Wrap(errors.ErrNotFound, "link unavailable")

	// ErrGroupNotFound indicates the collection does not exist on the profile.
	ErrGroupNotFound = errors.Wrap(errors.ErrNotFound, "group not found")

	// ErrForeignGroup indicates a link was pointed at a collection of another profile.
	ErrForeignGroup = errors.Wrap(errors.ErrInvalidInput, "group does not belong to this profile")
)
