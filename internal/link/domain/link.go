// Package domain defines the shareable links shown on a profile and the
// collections that group them.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Link is one shareable URL on a profile.
type Link struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	GroupID       *uuid.UUID // Collection, nil when ungrouped
	URL           string
	Label         string
	Icon          *string
	OrderIndex    int
	IsActive      bool
	MaxClicks     int // 0 means unlimited
	CurrentClicks int
	ActiveUntil   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsVisible reports whether the link may be shown and followed at now.
func (l *Link) IsVisible(now time.Time) bool {
	if !l.IsActive {
		return false
	}
	if l.ActiveUntil != nil && !now.Before(*l.ActiveUntil) {
		return false
	}
	return l.MaxClicks == 0 || l.CurrentClicks < l.MaxClicks
}

// Group is a titled collection of links owned by one profile.
type Group struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
