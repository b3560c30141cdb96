package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddItemCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAddItemCommand("  Deluxe, large  ", decimal.RequireFromString("14.99"))
	require.NoError(t, err)
	assert.Equal(t, "Deluxe, large", cmd.Name())
	assert.Equal(t, "14.99", cmd.Price().String())
	require.NoError(t, cmd.Validate())
}

func TestNewAddItemCommand_FreeItem(t *testing.T) {
	_, err := commands.NewAddItemCommand("Water", decimal.Zero)
	require.NoError(t, err)
}

func TestNewAddItemCommand_BlankName(t *testing.T) {
	_, err := commands.NewAddItemCommand("   ", decimal.RequireFromString("1.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAddItemCommand_NegativePrice(t *testing.T) {
	_, err := commands.NewAddItemCommand("Deluxe", decimal.RequireFromString("-0.01"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewAddItemCommand_ReportsEveryField(t *testing.T) {
	_, err := commands.NewAddItemCommand("", decimal.RequireFromString("-1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAddItemCommand_ZeroValue(t *testing.T) {
	cmd := commands.AddItemCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrAddItemCommandIsNotConstructed)
}
