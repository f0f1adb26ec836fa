package store

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"carelink-api/internal/model"
)

func (s *Store) AddUser(ctx context.Context, u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return model.User{}, ErrDuplicateEmail
		}
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now().UTC()
	}
	s.users = append(s.users, u)
	s.persist(ctx, KeyUsers, s.users)
	return u, nil
}

func (s *Store) FindUserByID(id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

func (s *Store) FindUserByEmail(email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

func (s *Store) AllUsers() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...)
}

// Providers lists every doctor in directory order.
func (s *Store) Providers() []model.Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Provider
	for i := range s.users {
		if p, ok := s.users[i].Provider(); ok {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) FindProvider(id string) (model.Provider, error) {
	u, err := s.FindUserByID(id)
	if err != nil {
		return model.Provider{}, err
	}
	p, ok := u.Provider()
	if !ok {
		return model.Provider{}, ErrNotFound
	}
	return p, nil
}
