package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"techmart-backend/models"
)

// SessionStore persists sessions, one slot per session id (the value
// of the session cookie). A login failure never reaches this store:
// SetAuth is only called with a complete identity plus token pair, so
// no partial session can be established.
type SessionStore struct {
	region Region
	mu     sync.Mutex
}

func NewSessionStore(region Region) *SessionStore {
	return &SessionStore{region: region}
}

func sessionSlot(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Get returns the stored session, or an empty (unauthenticated) one.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.region.Read(ctx, sessionSlot(sessionID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return &models.Session{}, nil
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SetAuth establishes the session atomically: user and both tokens in
// a single write.
func (s *SessionStore) SetAuth(ctx context.Context, sessionID string, user models.SessionUser, accessToken, refreshToken string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &models.Session{}
	session.SetAuth(user, accessToken, refreshToken)
	if err := s.save(ctx, sessionID, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateTokens rotates the access token; the refresh token is kept
// when the new one is empty.
func (s *SessionStore) UpdateTokens(ctx context.Context, sessionID, accessToken, refreshToken string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.region.Read(ctx, sessionSlot(sessionID))
	if err != nil {
		return nil, err
	}
	session := &models.Session{}
	if data != nil {
		if err := json.Unmarshal(data, session); err != nil {
			return nil, err
		}
	}
	session.UpdateTokens(accessToken, refreshToken)
	if err := s.save(ctx, sessionID, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout clears the session slot entirely.
func (s *SessionStore) Logout(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.region.Delete(ctx, sessionSlot(sessionID))
}

func (s *SessionStore) save(ctx context.Context, sessionID string, session *models.Session) error {
	session.UpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.region.Write(ctx, sessionSlot(sessionID), data)
}
