package domain

import "time"

// Role labels used for logging, metrics, and API payloads. The privilege
// model itself is two-tier and lives in the Admin flag on User.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User models a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Admin        bool       `json:"admin"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Role returns the label for the user's privilege tier.
func (u *User) Role() string {
	if u.Admin {
		return RoleAdmin
	}
	return RoleMember
}
