package order_test

import (
	"fmt"
	"testing"

	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.StatusPending,
		order.StatusAwaitingPayment,
		order.StatusPaid,
		order.StatusInProgress,
		order.StatusReady,
		order.StatusDelivering,
		order.StatusCompleted,
		order.StatusCancelled,
	}
}

func allActions() []order.Action {
	return []order.Action{
		order.ActionAccept,
		order.ActionReject,
		order.ActionConfirmPayment,
		order.ActionStartAssembly,
		order.ActionMarkReady,
		order.ActionStartDelivery,
		order.ActionComplete,
		order.ActionCancel,
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all defined statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			"",
			"Pending",
			"shipped",
			"awaiting payment",
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status %q", string(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire form", func(t *testing.T) {
		assert.Equal(t, "pending", order.StatusPending.String())
		assert.Equal(t, "awaiting_payment", order.StatusAwaitingPayment.String())
		assert.Equal(t, "in_progress", order.StatusInProgress.String())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should mark completed and cancelled terminal", func(t *testing.T) {
		assert.True(t, order.StatusCompleted.IsTerminal())
		assert.True(t, order.StatusCancelled.IsTerminal())
	})

	t.Run("should mark all other statuses non-terminal", func(t *testing.T) {
		for _, status := range allStatuses() {
			if status == order.StatusCompleted || status == order.StatusCancelled {
				continue
			}
			assert.False(t, status.IsTerminal(), "status %s", status)
		}
	})
}

func TestStatus_ValidateCanHaveFlorist(t *testing.T) {
	t.Run("pending must not have a florist", func(t *testing.T) {
		require.NoError(t, order.StatusPending.ValidateCanHaveFlorist(false))
		require.Error(t, order.StatusPending.ValidateCanHaveFlorist(true))
	})

	t.Run("statuses past the claim point require a florist", func(t *testing.T) {
		claimed := []order.Status{
			order.StatusAwaitingPayment,
			order.StatusPaid,
			order.StatusInProgress,
			order.StatusReady,
			order.StatusDelivering,
			order.StatusCompleted,
		}

		for _, status := range claimed {
			require.NoError(t, status.ValidateCanHaveFlorist(true), "status %s", status)
			require.Error(t, status.ValidateCanHaveFlorist(false), "status %s", status)
		}
	})

	t.Run("cancelled admits either", func(t *testing.T) {
		require.NoError(t, order.StatusCancelled.ValidateCanHaveFlorist(true))
		require.NoError(t, order.StatusCancelled.ValidateCanHaveFlorist(false))
	})
}

func TestParseAction(t *testing.T) {
	t.Run("should parse all defined actions", func(t *testing.T) {
		for _, action := range allActions() {
			parsed, err := order.ParseAction(action.String())

			require.NoError(t, err)
			assert.Equal(t, action, parsed)
		}
	})

	t.Run("should reject unknown actions", func(t *testing.T) {
		for _, input := range []string{"", "Accept", "ship", "confirm payment"} {
			_, err := order.ParseAction(input)

			require.Error(t, err, "input %q", input)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestAction_TargetStatus(t *testing.T) {
	t.Run("should name the status each action produces", func(t *testing.T) {
		expected := map[order.Action]order.Status{
			order.ActionAccept:         order.StatusAwaitingPayment,
			order.ActionReject:         order.StatusCancelled,
			order.ActionConfirmPayment: order.StatusPaid,
			order.ActionStartAssembly:  order.StatusInProgress,
			order.ActionMarkReady:      order.StatusReady,
			order.ActionStartDelivery:  order.StatusDelivering,
			order.ActionComplete:       order.StatusCompleted,
			order.ActionCancel:         order.StatusCancelled,
		}

		for action, want := range expected {
			target, err := action.TargetStatus()

			require.NoError(t, err, "action %s", action)
			assert.Equal(t, want, target, "action %s", action)
		}
	})

	t.Run("should reject unknown actions", func(t *testing.T) {
		_, err := order.Action("ship").TargetStatus()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestStatus_ApplyAction(t *testing.T) {
	t.Run("should follow the action table", func(t *testing.T) {
		testCases := []struct {
			from   order.Status
			action order.Action
			to     order.Status
		}{
			{order.StatusPending, order.ActionAccept, order.StatusAwaitingPayment},
			{order.StatusPending, order.ActionReject, order.StatusCancelled},
			{order.StatusPending, order.ActionCancel, order.StatusCancelled},
			{order.StatusAwaitingPayment, order.ActionConfirmPayment, order.StatusPaid},
			{order.StatusAwaitingPayment, order.ActionCancel, order.StatusCancelled},
			{order.StatusPaid, order.ActionStartAssembly, order.StatusInProgress},
			{order.StatusInProgress, order.ActionMarkReady, order.StatusReady},
			{order.StatusReady, order.ActionStartDelivery, order.StatusDelivering},
			{order.StatusReady, order.ActionComplete, order.StatusCompleted},
			{order.StatusDelivering, order.ActionComplete, order.StatusCompleted},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s + %s -> %s", tc.from, tc.action, tc.to), func(t *testing.T) {
				next, err := tc.from.ApplyAction(tc.action)

				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
			})
		}
	})

	t.Run("should be total over all status and action pairs", func(t *testing.T) {
		legal := map[string]order.Status{
			"pending+accept":                   order.StatusAwaitingPayment,
			"pending+reject":                   order.StatusCancelled,
			"pending+cancel":                   order.StatusCancelled,
			"awaiting_payment+confirm_payment": order.StatusPaid,
			"awaiting_payment+cancel":          order.StatusCancelled,
			"paid+start_assembly":              order.StatusInProgress,
			"in_progress+mark_ready":           order.StatusReady,
			"ready+start_delivery":             order.StatusDelivering,
			"ready+complete":                   order.StatusCompleted,
			"delivering+complete":              order.StatusCompleted,
		}

		for _, status := range allStatuses() {
			for _, action := range allActions() {
				key := fmt.Sprintf("%s+%s", status, action)
				next, err := status.ApplyAction(action)

				if expected, ok := legal[key]; ok {
					require.NoError(t, err, "pair %s", key)
					assert.Equal(t, expected, next, "pair %s", key)
					continue
				}

				require.Error(t, err, "pair %s", key)
				require.ErrorIs(t, err, order.ErrInvalidTransition, "pair %s", key)

				var transitionErr *order.InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr, "pair %s", key)
				assert.Equal(t, action, transitionErr.Action)
				assert.Equal(t, status, transitionErr.Current)
				assert.NotEmpty(t, transitionErr.Expected)
			}
		}
	})

	t.Run("should not move terminal statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusCompleted, order.StatusCancelled} {
			for _, action := range allActions() {
				_, err := status.ApplyAction(action)
				require.ErrorIs(t, err, order.ErrInvalidTransition,
					"status %s action %s", status, action)
			}
		}
	})

	t.Run("should report expected statuses in the error", func(t *testing.T) {
		_, err := order.StatusPaid.ApplyAction(order.ActionComplete)

		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.ElementsMatch(t,
			[]order.Status{order.StatusReady, order.StatusDelivering},
			transitionErr.Expected)
		assert.Contains(t, err.Error(), "ready or delivering")
		assert.Contains(t, err.Error(), "paid")
	})

	t.Run("should reject unknown actions", func(t *testing.T) {
		_, err := order.StatusPending.ApplyAction(order.Action("ship"))

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestAction_PermittedFor(t *testing.T) {
	t.Run("florist and owner may perform every action", func(t *testing.T) {
		for _, role := range []order.Role{order.RoleFlorist, order.RoleOwner} {
			for _, action := range allActions() {
				assert.True(t, action.PermittedFor(role), "role %s action %s", role, action)
			}
		}
	})

	t.Run("customer may only cancel", func(t *testing.T) {
		for _, action := range allActions() {
			permitted := action.PermittedFor(order.RoleCustomer)
			if action == order.ActionCancel {
				assert.True(t, permitted)
			} else {
				assert.False(t, permitted, "action %s", action)
			}
		}
	})

	t.Run("unknown role may do nothing", func(t *testing.T) {
		for _, action := range allActions() {
			assert.False(t, action.PermittedFor(order.Role("admin")))
		}
	})
}

func TestParseRole(t *testing.T) {
	t.Run("should parse defined roles", func(t *testing.T) {
		for _, s := range []string{"customer", "florist", "owner"} {
			role, err := order.ParseRole(s)

			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		_, err := order.ParseRole("admin")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}
