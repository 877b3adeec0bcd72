package domain

import "time"

// Role is the closed set of portal roles. It is an attribute of a user, not
// a session state: role-based routing is decided once, right after login.
type Role string

const (
	RoleAdmin Role = "admin" // complaint triage and assignment
	RoleJeng  Role = "jeng"  // junior engineer
	RoleUser  Role = "user"  // regular submitter
)

// ParseRole maps a raw form value to a Role. Anything outside the closed set
// is rejected so that typo'd roles never reach the store.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleJeng, RoleUser:
		return Role(s), true
	default:
		return "", false
	}
}

// LandingPath returns the post-login redirect target for the role. It is a
// pure function of the role and nothing else.
func (r Role) LandingPath() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleJeng:
		return "/jeng"
	default:
		return "/"
	}
}

// User models an account in the portal. Username and email are globally
// unique; PasswordHash is a bcrypt hash and never the plaintext.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
