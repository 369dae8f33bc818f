//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"github.com/target/eventshell/internal/domain/auth"
)

// User is a backend account record. Password holds the SHA-256 digest
// of the secret, never the plaintext.
type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password,omitempty"`
	Role     auth.Role `json:"role"`
}

// Identity strips the credential digest, leaving the public profile
// that is safe to cache locally.
func (u User) Identity() auth.Identity {
	return auth.Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// UserPatch captures a partial account update. Nil fields are left
// untouched by the backend.
type UserPatch struct {
	Name     *string    `json:"name,omitempty"`
	Email    *string    `json:"email,omitempty"`
	Password *string    `json:"password,omitempty"`
	Role     *auth.Role `json:"role,omitempty"`
}
