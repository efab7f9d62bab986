package auth

import "strings"

// Role is the access level carried in a token.
type Role string

const (
	// RoleAdmin can use the management API.
	RoleAdmin Role = "admin"
	// RoleClient is an end user of the rental app; no management access.
	RoleClient Role = "client"
)

var roleRank = map[Role]int{
	RoleClient: 1,
	RoleAdmin:  2,
}

// NormalizeRole lowercases and validates a role string.
func NormalizeRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	_, ok := roleRank[role]
	return role, ok
}

// RoleAtLeast reports whether a role meets the required level.
func RoleAtLeast(role, required Role) bool {
	return roleRank[role] >= roleRank[required]
}
