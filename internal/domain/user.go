package domain

import "time"

// UserRole enumerates panel roles for end-users.
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleUser      UserRole = "user"
	UserRoleModerator UserRole = "moderator"
)

// UserStatus represents lifecycle states for a user account.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User is a managed account record.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	Avatar    string     `json:"avatar,omitempty"`
}

// RecordID returns the collection identifier.
func (u User) RecordID() string { return u.ID }

// Stamped returns a copy with identity and creation time assigned.
func (u User) Stamped(id string, createdAt time.Time) User {
	u.ID = id
	u.CreatedAt = createdAt
	return u
}
