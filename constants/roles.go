package constants

// UserRole is the static role taxonomy. Permission checks are a fixed
// lookup, not a database concern.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// Permission names used by the API layer.
const (
	PermSubmissionView  = "submission:view"
	PermSubmissionGrade = "submission:grade"
	PermTestView        = "test:view"
	PermTestManage      = "test:manage"
)

var rolePermissions = map[UserRole]map[string]struct{}{
	RoleAdmin: {
		PermSubmissionView: {}, PermSubmissionGrade: {}, PermTestView: {}, PermTestManage: {},
	},
	RoleTeacher: {
		PermSubmissionView: {}, PermSubmissionGrade: {}, PermTestView: {}, PermTestManage: {},
	},
	RoleStudent: {},
}

// Can reports whether the role holds the named permission.
func Can(role UserRole, permission string) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, ok = perms[permission]
	return ok
}

var UserRoles = []string{string(RoleAdmin), string(RoleTeacher), string(RoleStudent)}
