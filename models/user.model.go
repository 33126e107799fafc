package models

// User roles
const (
	RoleAdmin      = "Admin"
	RoleInstructor = "Instructor"
	RoleStudent    = "Student"
)

// User represents a platform account. Email is the identity key.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
	Password string `json:"password,omitempty"`
}

// Sanitized returns a copy safe to hand back to clients
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
