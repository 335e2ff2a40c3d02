package models

// User represents a user of the application.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Name         string `db:"name"`
	RoleID       string `db:"role_id"`
	AuditFields
}

// Role is a named set of permissions.
type Role struct {
	RoleID      string `db:"role_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

// RolePermission grants one action on one resource to a role.
type RolePermission struct {
	RoleID   string `db:"role_id"`
	Resource string `db:"resource"`
	Action   string `db:"action"`
}
