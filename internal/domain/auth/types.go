// Package auth contains domain-level types for identity and sessions.
// It is pure and free of framework/adapter concerns.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleOrganizer Role = "organizer"
	RoleGuest     Role = "guest"
)

// Valid reports whether the role is one of the recognized tiers.
// Anything else (including empty) is treated as invalid.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOrganizer, RoleGuest:
		return true
	default:
		return false
	}
}

// Identity is the signed-in user's public profile as cached locally.
// It never carries the credential secret.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// WellFormed reports whether a persisted record satisfies the session
// invariant: both email and a recognized role are present. Any other
// shape must be treated as absent and purged by the caller.
func (i Identity) WellFormed() bool {
	return i.Email != "" && i.Role.Valid()
}

// IsGuest returns true if the identity role is guest.
func (i Identity) IsGuest() bool { return i.Role == RoleGuest }

// CanManageEvents returns true for roles allowed to create and edit events.
func (i Identity) CanManageEvents() bool {
	return i.Role == RoleAdmin || i.Role == RoleOrganizer
}

// CanManageUsers returns true for roles allowed to administer accounts.
func (i Identity) CanManageUsers() bool { return i.Role == RoleAdmin }

// HashSecret returns the SHA-256 digest of the plaintext secret in
// lowercase hex. It is a pure function of its input and is used both
// at registration/login and whenever a credential is changed.
func HashSecret(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
