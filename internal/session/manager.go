// Package session implements the panel's mock authentication: one fixed
// credential pair and an unsigned session record in local storage. There is
// no hashing and no server-side verification; the storage read itself is the
// trust boundary.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/spec-kit/admin-panel-service/internal/domain"
)

var (
	// ErrInvalidCredentials signals a failed credential match. No further
	// detail is exposed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoSession signals that no live session record exists.
	ErrNoSession = errors.New("no active session")
)

// Credential is the single accepted email/password pair.
type Credential struct {
	Email    string
	Password string
}

// Manager issues and validates the mock session.
type Manager struct {
	cred    Credential
	ttl     time.Duration
	storage Storage
	now     func() time.Time
}

// NewManager builds a manager around the given storage.
func NewManager(cred Credential, ttl time.Duration, storage Storage) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{cred: cred, ttl: ttl, storage: storage, now: time.Now}
}

// Create checks the credentials and, on an exact match, persists a fresh
// session expiring ttl from now and returns it. A mismatch persists nothing.
func (m *Manager) Create(email, password string) (*domain.Session, error) {
	if email != m.cred.Email || password != m.cred.Password {
		return nil, ErrInvalidCredentials
	}

	sess := &domain.Session{
		User: domain.SessionUser{
			ID:    "1",
			Name:  "Admin User",
			Email: m.cred.Email,
			Role:  string(domain.UserRoleAdmin),
		},
		Expires: m.now().UTC().Add(m.ttl),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	if err := m.storage.Write(data); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get reads the persisted session. An expired or unreadable record is
// discarded and reported as absent.
func (m *Manager) Get() (*domain.Session, error) {
	data, err := m.storage.Read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		_ = m.storage.Remove()
		return nil, ErrNoSession
	}
	if sess.Expired(m.now()) {
		if err := m.storage.Remove(); err != nil {
			return nil, err
		}
		return nil, ErrNoSession
	}
	return &sess, nil
}

// Destroy unconditionally discards the persisted session.
func (m *Manager) Destroy() error {
	return m.storage.Remove()
}
