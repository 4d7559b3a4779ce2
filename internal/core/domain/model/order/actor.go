package order

import (
	"errors"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/pkg/errs"
	"flowershop/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor constructor")

// Actor identifies who is performing an operation: a verified identity and
// role supplied by the upstream gateway, never by the request body.
type Actor struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	role  Role
	name  string
	guard guard.ConstructorGuard
}

// NewActor creates an Actor from a verified identity.
// The name is optional; it is only used for human-facing notifications.
func NewActor(id kernel.UUID, role Role, name string) (Actor, error) {
	actor := Actor{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(actor.setID(id), actor.setRole(role)); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// Validate checks if the Actor was properly constructed.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// Name returns the actor's display name, possibly empty.
func (a Actor) Name() string {
	return a.name
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
