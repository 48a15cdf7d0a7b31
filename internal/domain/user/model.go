package user

import "strings"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleJury    Role = "jury"
	RoleStudent Role = "student"
)

// ParseRole maps a claim value to a Role. Unknown values map to RoleStudent,
// which carries no scoring or publishing rights.
func ParseRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleJury:
		return RoleJury
	default:
		return RoleStudent
	}
}

// HighestRole picks the strongest role from a list of claim values.
func HighestRole(raw []string) Role {
	best := RoleStudent
	for _, r := range raw {
		switch ParseRole(r) {
		case RoleAdmin:
			return RoleAdmin
		case RoleJury:
			best = RoleJury
		}
	}
	return best
}

// Principal is the authenticated caller.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

func (p Principal) Has(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
