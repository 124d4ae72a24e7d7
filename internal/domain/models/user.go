package models

type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// Identity is the authenticated user as the dashboards see it.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}
