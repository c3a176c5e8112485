package entity

import (
	"encoding/json"
	"strings"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStartup  Role = "startup"
	RoleInvestor Role = "investisseur"
	RoleVisitor  Role = "visiteur"
)

// Roles lists every role in display order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleStartup, RoleInvestor, RoleVisitor}
}

// ParseRole maps a wire value to a Role. Unknown values are rejected.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleStartup:
		return RoleStartup, true
	case RoleInvestor:
		return RoleInvestor, true
	case RoleVisitor:
		return RoleVisitor, true
	}
	return "", false
}

// UnmarshalJSON decodes unknown or missing roles as RoleVisitor so that a
// foreign record never gains privileges.
func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, ok := ParseRole(s)
	if !ok {
		parsed = RoleVisitor
	}
	*r = parsed
	return nil
}

// CanCreateStartup reports whether the role may list a new startup.
func (r Role) CanCreateStartup() bool {
	switch r {
	case RoleAdmin, RoleStartup:
		return true
	case RoleInvestor, RoleVisitor:
		return false
	}
	return false
}

// CanCreateEvent reports whether the role may publish an event.
func (r Role) CanCreateEvent() bool {
	switch r {
	case RoleAdmin, RoleStartup, RoleInvestor:
		return true
	case RoleVisitor:
		return false
	}
	return false
}

// CanDeleteEvent reports whether the role may delete any event.
func (r Role) CanDeleteEvent() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleStartup, RoleInvestor, RoleVisitor:
		return false
	}
	return false
}

// CanViewDashboard reports whether the role may read platform statistics.
func (r Role) CanViewDashboard() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleStartup, RoleInvestor, RoleVisitor:
		return false
	}
	return false
}

// Account is a registered user. Email doubles as a natural key for login
// lookup and ownership checks.
type Account struct {
	ID       ID     `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
}

func (a Account) EntityID() ID { return a.ID }

// WithoutSecret returns a copy with the password cleared.
func (a Account) WithoutSecret() Account {
	a.Password = ""
	return a
}
