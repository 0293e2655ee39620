package domain

import "time"

// Role is a named permission label, compared by string equality.
type Role string

const (
	RoleSuperAdmin Role = "Super Admin"
	RoleAdmin      Role = "Admin"
)

// IdentityStatusRegistered is the status given to a newly registered identity.
const IdentityStatusRegistered = "registered"

// Identity is the registered identity of an account.
type Identity struct {
	Account    string
	Identifier string
	Status     string
	Verified   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Profile holds opaque metadata attached to an account.
type Profile struct {
	Account   string
	Metadata  map[string]string
	UpdatedAt time.Time
}
