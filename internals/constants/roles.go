package constants

// Roles recognized across the API. A user's role is fixed at creation.
const (
	RoleAdmin    = "admin"
	RoleResident = "resident"
	RoleSecurity = "security"
)

var AllowedRoles = []string{RoleAdmin, RoleResident, RoleSecurity}
