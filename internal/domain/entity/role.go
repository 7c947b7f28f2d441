package entity

// Role is the authorization role carried in a user's session claims.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the roles the users table accepts.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// RoleFromString parses a stored or claimed role. Unknown values become RoleUser
// so a tampered or legacy value never grants more than the default.
func RoleFromString(s string) Role {
	if role := Role(s); role.IsValid() {
		return role
	}

	return RoleUser
}
