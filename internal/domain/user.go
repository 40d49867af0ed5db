package domain

import "time"

// Role tags an authenticated principal.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleLaborer  Role = "laborer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleLaborer, RoleAdmin:
		return true
	}
	return false
}

// Actor is the authenticated principal attempting an operation. It is
// passed explicitly into every engine and service call; identity is never
// read from ambient state.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// User is a role-tagged account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenPair is an issued access/refresh token set.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
