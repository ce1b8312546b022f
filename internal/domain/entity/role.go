package entity

// Role names as stored in the user_roles table and carried in JWT claims.
const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// HasRole reports whether roles contains the wanted role.
func HasRole(roles []string, want string) bool {
	for _, role := range roles {
		if role == want {
			return true
		}
	}

	return false
}

// HasAnyRole reports whether roles contains at least one of the wanted roles.
func HasAnyRole(roles []string, want ...string) bool {
	for _, w := range want {
		if HasRole(roles, w) {
			return true
		}
	}

	return false
}
