package model

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User is the platform account as the backend returns it. Password is only
// ever populated on the way out (register/login payloads), never decoded.
type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password,omitempty"`
	Name     string   `json:"name"`
	Bio      string   `json:"bio,omitempty"`
	Role     UserRole `json:"role,omitempty"`
}

// Session is the persisted login state: the authenticated user plus the
// bearer token the backend issued for them.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
