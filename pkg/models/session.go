package models

// Role values carried in the session token. Editors get admin-capable UI
// gating; viewers are read-only.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// User is the authenticated identity reconstructed from the token payload.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name"`
	Role   string `json:"role" validate:"required,oneof=admin editor viewer"`
	Avatar string `json:"avatar,omitempty"`
}

// HasElevatedAccess reports whether the role is treated as admin-capable.
// Editors are intentionally conflated with admins for gating purposes.
func (u *User) HasElevatedAccess() bool {
	return u.Role == RoleAdmin || u.Role == RoleEditor
}

// AuthSnapshot is the persisted session shape, schema version 2. Setting a
// token never populates User by itself; the login and restoration flows derive
// User from the decoded token payload before writing this record.
type AuthSnapshot struct {
	Version         int    `json:"version"`
	User            *User  `json:"user"`
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"is_authenticated"`
}

const AuthSchemaVersion = 2

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
