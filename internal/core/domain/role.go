package domain

// Role is the fixed set of platform roles.
type Role string

const (
	RolePlatformAdmin Role = "platform_admin" // god mode
	RoleOperator      Role = "operator"
	RoleClientOwner   Role = "client_owner"
	RoleClientStaff   Role = "client_staff"
	RoleReadOnly      Role = "read_only"
)

// PermissionWildcard grants every permission.
const PermissionWildcard = "admin:*"

// rolePermissions is process-wide, read-only configuration. There are no
// per-tenant overrides.
var rolePermissions = map[Role][]string{
	RolePlatformAdmin: {
		PermissionWildcard,
		"client:suspend",
		"client:terminate",
		"program:override",
		"risk:override",
		"kyb:approve",
		"revenue:view",
		"audit:view",
		"automation:pause",
	},
	RoleOperator: {
		"client:view",
		"client:create",
		"program:view",
		"revenue:view",
	},
	RoleClientOwner: {
		"program:view_own",
		"orders:create",
		"orders:view_own",
		"reports:view_own",
		"staff:manage",
	},
	RoleClientStaff: {
		"program:view_own",
		"orders:view_own",
		"reports:view_own",
	},
	RoleReadOnly: {
		"program:view_own",
		"reports:view_own",
	},
}

// Permissions returns a copy of the role's permission set, in declared order.
func (r Role) Permissions() []string {
	perms := rolePermissions[r]
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether the role holds the permission, with the
// wildcard short-circuiting to true.
func (r Role) HasPermission(permission string) bool {
	for _, p := range rolePermissions[r] {
		if p == PermissionWildcard || p == permission {
			return true
		}
	}
	return false
}

// RequiresStepUp reports whether the role mandates step-up authentication.
// Platform admins always require it and can never have it disabled.
func (r Role) RequiresStepUp() bool {
	return r == RolePlatformAdmin
}

// AllRoles lists every role, for exhaustive checks.
func AllRoles() []Role {
	return []Role{RolePlatformAdmin, RoleOperator, RoleClientOwner, RoleClientStaff, RoleReadOnly}
}
