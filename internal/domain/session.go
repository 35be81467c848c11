package domain

import "time"

// SessionUser is the identity carried by an issued session.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the mock credential record persisted to local storage.
// It carries no signature; possession of the stored record is the only
// trust boundary.
type Session struct {
	User    SessionUser `json:"user"`
	Expires time.Time   `json:"expires"`
}

// Expired reports whether the session expiry has passed.
func (s Session) Expired(now time.Time) bool {
	return !s.Expires.After(now)
}
