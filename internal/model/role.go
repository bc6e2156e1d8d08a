package model

import "strings"

// Role is the platform role a user signs in with.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleManager   Role = "Manager"
	RoleCandidate Role = "Candidate"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCandidate:
		return true
	}
	return false
}

// Lower returns the role as the lower-case identifier used by the client views.
func (r Role) Lower() string {
	return strings.ToLower(string(r))
}
