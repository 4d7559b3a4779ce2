package order_test

import (
	"testing"
	"time"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecipient(t *testing.T) order.Recipient {
	t.Helper()
	recipient, err := order.NewRecipient("Anna", "+79990001122", "Tverskaya 1")
	require.NoError(t, err)
	return recipient
}

func testTotals(t *testing.T) order.Totals {
	t.Helper()
	subtotal, err := kernel.NewMoney(500000)
	require.NoError(t, err)
	fee, err := kernel.NewMoney(30000)
	require.NoError(t, err)
	totals, err := order.NewTotals(subtotal, kernel.Zero(), fee)
	require.NoError(t, err)
	return totals
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.DeliveryTypeCity,
		testRecipient(t),
		"Happy birthday!",
		testTotals(t),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a pending unclaimed order", func(t *testing.T) {
		o := testOrder(t)

		assert.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.Florist())
		assert.False(t, o.IsPaid())
		assert.Empty(t, o.PaymentURL())
		assert.Equal(t, "Happy birthday!", o.CardText())
		assert.Equal(t, int64(530000), o.Totals().Total().Kopecks())
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := order.NewOrder(zeroID, kernel.NewUUID(), kernel.NewUUID(),
			order.DeliveryTypeCity, testRecipient(t), "", testTotals(t))

		require.Error(t, err)
	})

	t.Run("should require an address for courier delivery", func(t *testing.T) {
		recipient, err := order.NewRecipient("Anna", "+79990001122", "")
		require.NoError(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.DeliveryTypeCity, recipient, "", testTotals(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "recipient address")
	})

	t.Run("should allow pickup without an address", func(t *testing.T) {
		recipient, err := order.NewRecipient("Anna", "+79990001122", "")
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.DeliveryTypePickup, recipient, "", testTotals(t))

		require.NoError(t, err)
		assert.Equal(t, order.DeliveryTypePickup, o.DeliveryType())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		require.Error(t, o.Validate())
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("should claim the order and record the payment link", func(t *testing.T) {
		o := testOrder(t)
		floristID := kernel.NewUUID()

		err := o.Accept(floristID, "https://pay.example.com/order/x?amount=5300.00")

		require.NoError(t, err)
		assert.Equal(t, order.StatusAwaitingPayment, o.Status())
		require.NotNil(t, o.Florist())
		assert.True(t, floristID.IsEqual(*o.Florist()))
		assert.Equal(t, "https://pay.example.com/order/x?amount=5300.00", o.PaymentURL())
	})

	t.Run("should fail on an already accepted order", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Accept(kernel.NewUUID(), "link"))

		err := o.Accept(kernel.NewUUID(), "other-link")

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusAwaitingPayment, o.Status())
	})

	t.Run("should fail on a rejected order", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Reject("out of roses"))

		err := o.Accept(kernel.NewUUID(), "link")

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Nil(t, o.Florist())
	})

	t.Run("should require a florist id", func(t *testing.T) {
		o := testOrder(t)

		err := o.Apply(order.ActionAccept, order.ActionParams{PaymentURL: "link"})

		require.Error(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_Reject(t *testing.T) {
	t.Run("should cancel the order with a reason", func(t *testing.T) {
		o := testOrder(t)

		err := o.Reject("out of roses")

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, "out of roses", o.Comment())
		assert.Nil(t, o.Florist())
	})
}

func TestOrder_ConfirmPayment(t *testing.T) {
	t.Run("should set the paid flag", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Accept(kernel.NewUUID(), "link"))

		err := o.ConfirmPayment()

		require.NoError(t, err)
		assert.Equal(t, order.StatusPaid, o.Status())
		assert.True(t, o.IsPaid())
	})

	t.Run("should fail before the order is accepted", func(t *testing.T) {
		o := testOrder(t)

		err := o.ConfirmPayment()

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.False(t, o.IsPaid())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should run the full courier delivery lifecycle", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.Accept(kernel.NewUUID(), "link"))
		require.NoError(t, o.ConfirmPayment())
		require.NoError(t, o.StartAssembly())
		require.NoError(t, o.MarkReady())
		require.NoError(t, o.StartDelivery())
		require.NoError(t, o.Complete())

		assert.Equal(t, order.StatusCompleted, o.Status())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("should complete a pickup order straight from ready", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.Accept(kernel.NewUUID(), "link"))
		require.NoError(t, o.ConfirmPayment())
		require.NoError(t, o.StartAssembly())
		require.NoError(t, o.MarkReady())
		require.NoError(t, o.Complete())

		assert.Equal(t, order.StatusCompleted, o.Status())
	})

	t.Run("should allow cancel while awaiting payment", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Accept(kernel.NewUUID(), "link"))

		err := o.Cancel("changed my mind")

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, "changed my mind", o.Comment())
	})

	t.Run("should forbid cancel after payment", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Accept(kernel.NewUUID(), "link"))
		require.NoError(t, o.ConfirmPayment())

		err := o.Cancel("too late")

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusPaid, o.Status())
	})

	t.Run("should advance updatedAt on each transition", func(t *testing.T) {
		o := testOrder(t)
		before := o.UpdatedAt()

		require.NoError(t, o.Accept(kernel.NewUUID(), "link"))

		assert.False(t, o.UpdatedAt().Before(before))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore a claimed order", func(t *testing.T) {
		floristID := kernel.NewUUID()
		now := time.Now().UTC()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&floristID, order.StatusPaid, order.DeliveryTypeCity,
			testRecipient(t), "card", testTotals(t),
			"https://pay.example.com/order/x", true, "",
			now.Add(-time.Hour), now,
		)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPaid, o.Status())
		require.NotNil(t, o.Florist())
		assert.True(t, floristID.IsEqual(*o.Florist()))
		assert.True(t, o.IsPaid())
	})

	t.Run("should reject a claimed status without a florist", func(t *testing.T) {
		now := time.Now().UTC()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, order.StatusPaid, order.DeliveryTypeCity,
			testRecipient(t), "", testTotals(t),
			"", false, "", now, now,
		)

		require.Error(t, err)
	})

	t.Run("should reject a pending order with a florist", func(t *testing.T) {
		floristID := kernel.NewUUID()
		now := time.Now().UTC()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&floristID, order.StatusPending, order.DeliveryTypeCity,
			testRecipient(t), "", testTotals(t),
			"", false, "", now, now,
		)

		require.Error(t, err)
	})
}

func TestNewTotals(t *testing.T) {
	t.Run("should compute the total", func(t *testing.T) {
		subtotal, _ := kernel.NewMoney(500000)
		discount, _ := kernel.NewMoney(50000)
		fee, _ := kernel.NewMoney(30000)

		totals, err := order.NewTotals(subtotal, discount, fee)

		require.NoError(t, err)
		assert.Equal(t, int64(480000), totals.Total().Kopecks())
		assert.Equal(t, int64(500000), totals.Subtotal().Kopecks())
		assert.Equal(t, int64(50000), totals.Discount().Kopecks())
		assert.Equal(t, int64(30000), totals.DeliveryFee().Kopecks())
	})

	t.Run("should reject a discount exceeding the subtotal", func(t *testing.T) {
		subtotal, _ := kernel.NewMoney(100)
		discount, _ := kernel.NewMoney(200)

		_, err := order.NewTotals(subtotal, discount, kernel.Zero())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds subtotal")
	})

	t.Run("should reject unconstructed parts", func(t *testing.T) {
		var bad kernel.Money
		subtotal, _ := kernel.NewMoney(100)

		_, err := order.NewTotals(subtotal, bad, kernel.Zero())

		require.Error(t, err)
	})
}

func TestNewActor(t *testing.T) {
	t.Run("should create an actor", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := order.NewActor(id, order.RoleFlorist, "Maria")

		require.NoError(t, err)
		assert.NoError(t, actor.Validate())
		assert.True(t, id.IsEqual(actor.ID()))
		assert.Equal(t, order.RoleFlorist, actor.Role())
		assert.Equal(t, "Maria", actor.Name())
	})

	t.Run("should reject an invalid role", func(t *testing.T) {
		_, err := order.NewActor(kernel.NewUUID(), order.Role("admin"), "")

		require.Error(t, err)
	})

	t.Run("should reject zero value actor", func(t *testing.T) {
		var actor order.Actor

		require.Error(t, actor.Validate())
	})
}
