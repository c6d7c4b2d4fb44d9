package marginfi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/solana-program-clients/pkg/solana"
)

func TestErrors(t *testing.T) {
	assert.Equal(t, 83, Errors.Len())

	e := Errors.Lookup(6000)
	assert.False(t, e.Unknown())
	assert.Equal(t, "InternalLogicError", e.Name)
	assert.EqualValues(t, 6000, ErrInternalLogicError)

	e = Errors.Lookup(uint32(ErrAccountAlreadyMigrated))
	assert.EqualValues(t, 6082, e.Code)
	assert.Equal(t, "AccountAlreadyMigrated", e.Name)

	assert.True(t, Errors.Lookup(6083).Unknown())
	assert.True(t, Errors.Lookup(0).Unknown())

	_, err := Errors.LookupStrict(9999)
	assert.ErrorIs(t, err, solana.ErrUnknownErrorCode)

	assert.Contains(t, ErrBankNotFound.Error(), "BankNotFound (6001)")
}

func TestResolveProgramError(t *testing.T) {
	txErr, err := solana.ParseTransactionError([]byte(`{"InstructionError":[1,{"Custom":6001}]}`))
	require.NoError(t, err)

	programErr, ok := solana.ResolveProgramError(txErr.InstructionError(), PROGRAM_ID, Errors)
	require.True(t, ok)
	assert.Equal(t, "BankNotFound", programErr.Name)
}
