package commands_test

import (
	"testing"

	"flowershop/internal/core/application/usecases/commands"
	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActor(t *testing.T, role order.Role) order.Actor {
	t.Helper()
	actor, err := order.NewActor(kernel.NewUUID(), role, "Maria")
	require.NoError(t, err)
	return actor
}

func TestNewPerformActionCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		actor := testActor(t, order.RoleFlorist)

		cmd, err := commands.NewPerformActionCommand(orderID, order.ActionAccept, actor, "")

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, orderID.IsEqual(cmd.OrderID()))
		assert.Equal(t, order.ActionAccept, cmd.Action())
		assert.Equal(t, order.RoleFlorist, cmd.Actor().Role())
	})

	t.Run("should keep the reason", func(t *testing.T) {
		cmd, err := commands.NewPerformActionCommand(
			kernel.NewUUID(), order.ActionReject, testActor(t, order.RoleFlorist), "out of roses")

		require.NoError(t, err)
		assert.Equal(t, "out of roses", cmd.Reason())
	})

	t.Run("should reject a zero order id", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := commands.NewPerformActionCommand(
			zeroID, order.ActionAccept, testActor(t, order.RoleFlorist), "")

		require.Error(t, err)
	})

	t.Run("should reject an unknown action", func(t *testing.T) {
		_, err := commands.NewPerformActionCommand(
			kernel.NewUUID(), order.Action("ship"), testActor(t, order.RoleFlorist), "")

		require.Error(t, err)
	})

	t.Run("should reject an unconstructed actor", func(t *testing.T) {
		var actor order.Actor

		_, err := commands.NewPerformActionCommand(
			kernel.NewUUID(), order.ActionAccept, actor, "")

		require.Error(t, err)
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		var cmd commands.PerformActionCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrPerformActionCommandIsNotConstructed, err)
	})
}
