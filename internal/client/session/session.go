// Package session models the logged-in user and the role-based permission
// gate consulted before mutating UI actions. The gate is advisory at this
// layer; the server enforces the same capability table on its write routes.
package session

import (
	"fmt"

	"github.com/hms/hms/internal/access"
)

// Role and Capability alias the shared access-control types so callers of
// this package do not need a second import.
type (
	Role       = access.Role
	Capability = access.Capability
)

const (
	RoleAdministrator = access.RoleAdministrator
	RolePhysician     = access.RolePhysician
	RoleViewer        = access.RoleViewer
	RolePatient       = access.RolePatient
)

// User is one entry of the demo user registry.
type User struct {
	UserID      string
	Username    string
	Password    string
	Role        Role
	Name        string
	Email       string
	PhysicianID *int
	PatientID   *int
}

// Session is the explicit per-login context object: created at login,
// replaced on role switch, discarded at logout. It replaces the process-wide
// current-user variable this design grew out of.
type Session struct {
	User User
}

// Login checks credentials against the registry and opens a session.
func Login(users []User, username, password string) (*Session, error) {
	for _, u := range users {
		if u.Username == username && u.Password == password {
			return &Session{User: u}, nil
		}
	}
	return nil, fmt.Errorf("invalid username or password")
}

// Has reports whether the session's role grants the capability.
func (s *Session) Has(cap Capability) bool {
	if s == nil {
		return false
	}
	return access.Allowed(s.User.Role, cap)
}

// CanEditPatientData is the derived rule: only administrators and physicians
// may edit patient demographic data.
func (s *Session) CanEditPatientData() bool {
	if s == nil {
		return false
	}
	return s.User.Role == RoleAdministrator || s.User.Role == RolePhysician
}
