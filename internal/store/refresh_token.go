package store

import (
	"time"

	"github.com/google/uuid"
)

type RefreshToken struct {
	ID         string
	UserID     string
	TokenHash  string
	ExpiresAt  time.Time
	Revoked    bool
	ReplacedBy *string
	CreatedAt  time.Time
}

// Refresh tokens live only in memory; a restart logs everyone out.
func (s *Store) CreateRefreshToken(userID, tokenHash string, expiresAt time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneRefreshTokens()
	id := uuid.New().String()
	s.refresh[id] = &RefreshToken{
		ID:        id,
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: s.now(),
	}
	return id
}

func (s *Store) GetRefreshTokenByHash(tokenHash string) (RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rt := range s.refresh {
		if rt.TokenHash == tokenHash {
			return *rt, nil
		}
	}
	return RefreshToken{}, ErrNotFound
}

// rotate: revoke old token, create new one, link them
func (s *Store) RotateRefreshToken(oldID, userID, newHash string, newExpiry time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.refresh[oldID]
	if !ok {
		return "", ErrNotFound
	}
	s.pruneRefreshTokens()
	newID := uuid.New().String()
	old.Revoked = true
	old.ReplacedBy = &newID
	s.refresh[newID] = &RefreshToken{
		ID:        newID,
		UserID:    userID,
		TokenHash: newHash,
		ExpiresAt: newExpiry,
		CreatedAt: s.now(),
	}
	return newID, nil
}

// revoke all tokens for a user (on logout or suspected theft)
func (s *Store) RevokeAllRefreshTokens(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rt := range s.refresh {
		if rt.UserID == userID {
			rt.Revoked = true
		}
	}
}

// pruneRefreshTokens drops expired tokens. Revoked ones are kept until they
// expire so that reuse of a rotated token is still detected. Callers hold mu.
func (s *Store) pruneRefreshTokens() {
	now := s.now()
	for id, rt := range s.refresh {
		if now.After(rt.ExpiresAt) {
			delete(s.refresh, id)
		}
	}
}
