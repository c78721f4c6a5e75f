package entities

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleFarmer           Role = "farmer"
	RoleBuyer            Role = "buyer"
	RoleAdmin            Role = "admin"
	RolePaymentProcessor Role = "payment_processor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleBuyer, RoleAdmin, RolePaymentProcessor:
		return true
	}
	return false
}

// Caller is the resolved identity of whoever issued the request.
type Caller struct {
	ID   uuid.UUID
	Role Role
}

func (c Caller) Is(roles ...Role) bool {
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}

type Account struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      Role
	Contact   string
	FarmName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Account) Caller() Caller {
	return Caller{ID: a.ID, Role: a.Role}
}

func (a Account) Summary() AccountSummary {
	return AccountSummary{ID: a.ID, Name: a.Name, Email: a.Email}
}

type AccountSummary struct {
	ID    uuid.UUID
	Name  string
	Email string
}
