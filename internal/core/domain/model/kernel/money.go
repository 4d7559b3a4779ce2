package kernel

import (
	"fmt"

	"flowershop/internal/pkg/errs"
	"flowershop/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using the NewMoney or Zero constructors to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or Zero constructors")

// Money represents a non-negative amount stored in kopecks.
// Money is an immutable value object; all arithmetic returns new instances.
// The zero value of Money is invalid and will fail validation - use constructors
// to create instances.
//
// Example:
//
//	price, err := kernel.NewMoney(123450) // 1234.50
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Price: %s", price) // Output: 1234.50
type Money struct { //nolint:recvcheck //using for validation
	kopecks int64
	guard   guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in kopecks.
// The amount must not be negative.
//
// Example:
//
//	fee, err := NewMoney(30000) // 300.00
//	if err != nil {
//	    log.Fatal("Invalid amount:", err)
//	}
func NewMoney(kopecks int64) (Money, error) {
	if kopecks < 0 {
		return Money{}, errs.NewValueIsInvalidError(
			fmt.Sprintf("kopecks must not be negative, got %d", kopecks))
	}

	return Money{
		kopecks: kopecks,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Zero returns a valid Money representing a zero amount.
func Zero() Money {
	return Money{
		kopecks: 0,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Kopecks returns the amount in kopecks.
func (m Money) Kopecks() int64 {
	return m.kopecks
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.kopecks == 0
}

// Add returns the sum of two amounts as a new Money value.
// Both operands must be properly constructed.
//
// Example:
//
//	subtotal, _ := NewMoney(500000)
//	fee, _ := NewMoney(30000)
//	total, err := subtotal.Add(fee)
//	// total = 5300.00, err = nil
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.kopecks + other.kopecks)
}

// Sub returns the difference of two amounts as a new Money value.
// Returns an error if the result would be negative.
//
// Example:
//
//	subtotal, _ := NewMoney(500000)
//	discount, _ := NewMoney(50000)
//	due, err := subtotal.Sub(discount)
//	// due = 4500.00, err = nil
func (m Money) Sub(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.kopecks - other.kopecks)
}

// GreaterOrEqual reports whether the amount is greater than or equal to other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.kopecks >= other.kopecks
}

// IsEqual compares two amounts for equality.
// Both amounts must be properly constructed for the comparison to succeed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return m.kopecks == other.kopecks, nil
}

// String returns a human-readable decimal representation, e.g. "1234.50".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.kopecks/100, m.kopecks%100)
}
