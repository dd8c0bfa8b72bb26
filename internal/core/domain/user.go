package domain

import (
	"sync/atomic"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "cliente"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"rol"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session is the authenticated context handed to an API client. It is
// created on login or register and invalidated on logout; an invalidated
// session never yields its token again.
type Session struct {
	ID          string
	User        User
	token       string
	invalidated atomic.Bool
}

func NewSession(id string, user User, token string) *Session {
	return &Session{ID: id, User: user, token: token}
}

// Token returns the bearer token, or "" once the session is invalidated.
func (s *Session) Token() string {
	if s == nil || s.invalidated.Load() {
		return ""
	}

	return s.token
}

func (s *Session) Valid() bool {
	return s.Token() != ""
}

func (s *Session) Invalidate() {
	if s != nil {
		s.invalidated.Store(true)
	}
}

// SessionRecord is what survives between requests in the session store.
type SessionRecord struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (s *Session) Record() SessionRecord {
	return SessionRecord{Token: s.Token(), User: s.User}
}
