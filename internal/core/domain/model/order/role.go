package order

import (
	"fmt"

	"flowershop/internal/pkg/errs"
)

// Role classifies the actor performing an operation on an order.
type Role string

const (
	// RoleCustomer is the person who placed the order.
	RoleCustomer Role = "customer"
	// RoleFlorist is a store worker assembling orders.
	RoleFlorist Role = "florist"
	// RoleOwner is the store owner. Owners may do everything a florist may.
	RoleOwner Role = "owner"
)

// getValidRoles returns the set of valid Role values to support validation.
func getValidRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleCustomer: {},
		RoleFlorist:  {},
		RoleOwner:    {},
	}
}

// ParseRole converts a wire string into a Role.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks if the Role value is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getValidRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// String returns the wire form of the role.
func (r Role) String() string {
	return string(r)
}

// PermittedFor reports whether the role may perform the action.
// Florist actions require florist or owner. Cancel is additionally open to
// the customer; whether the customer owns the order is checked by the caller.
func (a Action) PermittedFor(r Role) bool {
	switch r {
	case RoleFlorist, RoleOwner:
		return true
	case RoleCustomer:
		return a == ActionCancel
	default:
		return false
	}
}
