package dto

import (
	"time"

	"github.com/atluixx/lynkt/internal/link/domain"
)

// LinkResponse represents a link in API responses.
type LinkResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	GroupID       *string    `json:"group_id"`
	URL           string     `json:"url"`
	Label         string     `json:"label"`
	Icon          *string    `json:"icon"`
	OrderIndex    int        `json:"order_index"`
	IsActive      bool       `json:"is_active"`
	MaxClicks     int        `json:"max_clicks"`
	CurrentClicks int        `json:"current_clicks"`
	ActiveUntil   *time.Time `json:"active_until"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// LinkEnvelope wraps a single link as {"link": ...}.
type LinkEnvelope struct {
	Link LinkResponse `json:"link"`
}

// ListLinksResponse wraps links as {"links": [...]}.
type ListLinksResponse struct {
	Links []LinkResponse `json:"links"`
}

// ClickResponse carries the target of a counted click.
type ClickResponse struct {
	URL string `json:"url"`
}

// GroupResponse represents a collection in API responses.
type GroupResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GroupEnvelope wraps a single collection as {"group": ...}.
type GroupEnvelope struct {
	Group GroupResponse `json:"group"`
}

// ListGroupsResponse wraps collections as {"groups": [...]}.
type ListGroupsResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// MapLinkToResponse converts a domain link to its API representation.
func MapLinkToResponse(link *domain.Link) LinkResponse {
	resp := LinkResponse{
		ID:            link.ID.String(),
		UserID:        link.UserID.String(),
		URL:           link.URL,
		Label:         link.Label,
		Icon:          link.Icon,
		OrderIndex:    link.OrderIndex,
		IsActive:      link.IsActive,
		MaxClicks:     link.MaxClicks,
		CurrentClicks: link.CurrentClicks,
		ActiveUntil:   link.ActiveUntil,
		CreatedAt:     link.CreatedAt,
		UpdatedAt:     link.UpdatedAt,
	}
	if link.GroupID != nil {
		groupID := link.GroupID.String()
		resp.GroupID = &groupID
	}
	return resp
}

// MapLinkToEnvelope converts a domain link to {"link": ...}.
func MapLinkToEnvelope(link *domain.Link) LinkEnvelope {
	return LinkEnvelope{Link: MapLinkToResponse(link)}
}

// MapLinksToListResponse converts domain links to {"links": [...]}.
func MapLinksToListResponse(links []*domain.Link) ListLinksResponse {
	out := make([]LinkResponse, 0, len(links))
	for _, link := range links {
		out = append(out, MapLinkToResponse(link))
	}
	return ListLinksResponse{Links: out}
}

// MapGroupToResponse converts a domain group to its API representation.
func MapGroupToResponse(group *domain.Group) GroupResponse {
	return GroupResponse{
		ID:        group.ID.String(),
		UserID:    group.UserID.String(),
		Title:     group.Title,
		CreatedAt: group.CreatedAt,
		UpdatedAt: group.UpdatedAt,
	}
}

// MapGroupToEnvelope converts a domain group to {"group": ...}.
func MapGroupToEnvelope(group *domain.Group) GroupEnvelope {
	return GroupEnvelope{Group: MapGroupToResponse(group)}
}

// MapGroupsToListResponse converts domain groups to {"groups": [...]}.
func MapGroupsToListResponse(groups []*domain.Group) ListGroupsResponse {
	out := make([]GroupResponse, 0, len(groups))
	for _, group := range groups {
		out = append(out, MapGroupToResponse(group))
	}
	return ListGroupsResponse{Groups: out}
}
