package models

import "time"

// User roles
const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

// SessionUser is the identity half of a session.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session is the persisted client session: the identified user plus
// the access/refresh token pair. Invariant: User is present iff
// AccessToken is present; both are set together and cleared together.
type Session struct {
	User         *SessionUser `json:"user,omitempty"`
	AccessToken  string       `json:"access_token,omitempty"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// SetAuth establishes the session in one mutation.
func (s *Session) SetAuth(user SessionUser, accessToken, refreshToken string) {
	s.User = &user
	s.AccessToken = accessToken
	s.RefreshToken = refreshToken
}

// UpdateTokens rotates the access token. The refresh token is left
// unchanged when the new one is empty.
func (s *Session) UpdateTokens(accessToken, refreshToken string) {
	s.AccessToken = accessToken
	if refreshToken != "" {
		s.RefreshToken = refreshToken
	}
}

// Logout clears all three fields atomically.
func (s *Session) Logout() {
	s.User = nil
	s.AccessToken = ""
	s.RefreshToken = ""
}

// IsAuthenticated is true iff both user and access token are present.
func (s *Session) IsAuthenticated() bool {
	return s.User != nil && s.AccessToken != ""
}

// IsAdmin is true iff a user is present and carries the admin role.
// A stale role string without a user never counts.
func (s *Session) IsAdmin() bool {
	return s.User != nil && s.User.Role == RoleAdmin
}
