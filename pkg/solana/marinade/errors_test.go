package marinade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/solana-program-clients/pkg/solana"
)

func TestErrors(t *testing.T) {
	assert.Equal(t, 27, Errors.Len())

	e := Errors.Lookup(6000)
	assert.Equal(t, "WrongReserveOwner", e.Name)
	assert.EqualValues(t, 6020, ErrTicketNotDue)
	assert.Equal(t, "TicketNotDue", Errors.Lookup(uint32(ErrTicketNotDue)).Name)
	assert.Equal(t, "InsufficientLiquidity", Errors.Lookup(6026).Name)

	assert.True(t, Errors.Lookup(6027).Unknown())
	assert.True(t, Errors.Lookup(1).Unknown())
}

func TestResolveProgramError(t *testing.T) {
	txErr, err := solana.ParseTransactionError([]byte(`{"InstructionError":[0,{"Custom":6021}]}`))
	require.NoError(t, err)

	programErr, ok := solana.ResolveProgramError(txErr.InstructionError(), PROGRAM_ID, Errors)
	require.True(t, ok)
	assert.Equal(t, "TicketNotReady", programErr.Name)
}
