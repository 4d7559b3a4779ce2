// Package order provides domain entities and business logic for order
// lifecycle management in the flower-shop system. It implements the Order
// aggregate root with a pure action-driven state machine.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status and Action: A state machine that enforces valid lifecycle transitions
//   - Role: Permission gating of actions by the acting party
//   - Recipient, Totals, DeliveryType: Supporting value objects
//
// Key business rules:
//   - Orders start pending and advance through the action table:
//     accept, confirm_payment, start_assembly, mark_ready, start_delivery, complete
//   - Reject and cancel lead to the terminal cancelled status
//   - A florist is assigned exactly when the order is past the claim point
//   - Completed and cancelled are terminal: no action applies to them
//
// Status.ApplyAction is a pure function; the concurrency resolution of
// competing claims is external to this package (see the perform-action
// command handler).
package order
