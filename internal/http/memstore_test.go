package http

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	linkDomain "github.com/atluixx/lynkt/internal/link/domain"
	userDomain "github.com/atluixx/lynkt/internal/user/domain"
)

// memStore is an in-memory stand-in for the SQL repositories used by the router tests.
// It implements the user, link and group repository interfaces with the same
// not-found, conflict and cascade behavior as the database schema.
type memStore struct {
	mu     sync.Mutex
	users  map[uuid.UUID]*userDomain.User
	links  map[uuid.UUID]*linkDomain.Link
	groups map[uuid.UUID]*linkDomain.Group
}

func newMemStore() *memStore {
	return &memStore{
		users:  map[uuid.UUID]*userDomain.User{},
		links:  map[uuid.UUID]*linkDomain.Link{},
		groups: map[uuid.UUID]*linkDomain.Group{},
	}
}

// memTxManager runs the callback directly; memStore serializes its own access.
type memTxManager struct{}

func (memTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *memStore) Create(ctx context.Context, user *userDomain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Slug == user.Slug {
			return userDomain.ErrUserAlreadyExists
		}
	}
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, userDomain.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (s *memStore) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	return s.findUser(func(u *userDomain.User) bool { return u.Email == email })
}

func (s *memStore) GetBySlug(ctx context.Context, slug string) (*userDomain.User, error) {
	return s.findUser(func(u *userDomain.User) bool { return u.Slug == slug })
}

func (s *memStore) findUser(match func(*userDomain.User) bool) (*userDomain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if match(user) {
			found := *user
			return &found, nil
		}
	}
	return nil, userDomain.ErrUserNotFound
}

func (s *memStore) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]*userDomain.User, 0, len(s.users))
	for _, user := range s.users {
		found := *user
		all = append(all, &found)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	if offset >= len(all) {
		return []*userDomain.User{}, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (s *memStore) Update(ctx context.Context, user *userDomain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return userDomain.ErrUserNotFound
	}
	for id, existing := range s.users {
		if id != user.ID && (existing.Email == user.Email || existing.Slug == user.Slug) {
			return userDomain.ErrUserAlreadyExists
		}
	}
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *memStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return userDomain.ErrUserNotFound
	}
	delete(s.users, id)
	for linkID, link := range s.links {
		if link.UserID == id {
			delete(s.links, linkID)
		}
	}
	for groupID, group := range s.groups {
		if group.UserID == id {
			delete(s.groups, groupID)
		}
	}
	return nil
}

func (s *memStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	_, err := s.GetBySlug(ctx, slug)
	return err == nil, nil
}

// memLinks exposes the link half of memStore.
type memLinks struct{ *memStore }

func (s memLinks) Create(ctx context.Context, link *linkDomain.Link) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *link
	s.links[link.ID] = &stored
	return nil
}

func (s memLinks) GetByID(ctx context.Context, userID, id uuid.UUID) (*linkDomain.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	link, ok := s.links[id]
	if !ok || link.UserID != userID {
		return nil, linkDomain.ErrLinkNotFound
	}
	found := *link
	return &found, nil
}

func (s memLinks) ListByUser(ctx context.Context, userID uuid.UUID) ([]*linkDomain.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	links := []*linkDomain.Link{}
	for _, link := range s.links {
		if link.UserID == userID {
			found := *link
			links = append(links, &found)
		}
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].OrderIndex != links[j].OrderIndex {
			return links[i].OrderIndex < links[j].OrderIndex
		}
		return links[i].CreatedAt.Before(links[j].CreatedAt)
	})
	return links, nil
}

func (s memLinks) Update(ctx context.Context, link *linkDomain.Link) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.links[link.ID]
	if !ok || current.UserID != link.UserID {
		return linkDomain.ErrLinkNotFound
	}
	stored := *link
	s.links[link.ID] = &stored
	return nil
}

func (s memLinks) Delete(ctx context.Context, userID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	link, ok := s.links[id]
	if !ok || link.UserID != userID {
		return linkDomain.ErrLinkNotFound
	}
	delete(s.links, id)
	return nil
}

func (s memLinks) RegisterClick(ctx context.Context, userID, id uuid.UUID, now time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	link, ok := s.links[id]
	if !ok || link.UserID != userID || !link.IsVisible(now) {
		return "", linkDomain.ErrLinkUnavailable
	}
	link.CurrentClicks++
	link.UpdatedAt = now
	return link.URL, nil
}

// memGroups exposes the collection half of memStore.
type memGroups struct{ *memStore }

func (s memGroups) Create(ctx context.Context, group *linkDomain.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *group
	s.groups[group.ID] = &stored
	return nil
}

func (s memGroups) GetByID(ctx context.Context, userID, id uuid.UUID) (*linkDomain.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	group, ok := s.groups[id]
	if !ok || group.UserID != userID {
		return nil, linkDomain.ErrGroupNotFound
	}
	found := *group
	return &found, nil
}

func (s memGroups) ListByUser(ctx context.Context, userID uuid.UUID) ([]*linkDomain.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	groups := []*linkDomain.Group{}
	for _, group := range s.groups {
		if group.UserID == userID {
			found := *group
			groups = append(groups, &found)
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].CreatedAt.Before(groups[j].CreatedAt) })
	return groups, nil
}

func (s memGroups) Update(ctx context.Context, group *linkDomain.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.groups[group.ID]
	if !ok || current.UserID != group.UserID {
		return linkDomain.ErrGroupNotFound
	}
	stored := *group
	s.groups[group.ID] = &stored
	return nil
}

func (s memGroups) Delete(ctx context.Context, userID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	group, ok := s.groups[id]
	if !ok || group.UserID != userID {
		return linkDomain.ErrGroupNotFound
	}
	delete(s.groups, id)
	for _, link := range s.links {
		if link.GroupID != nil && *link.GroupID == id {
			link.GroupID = nil
		}
	}
	return nil
}
