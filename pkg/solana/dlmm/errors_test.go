package dlmm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/solana-program-clients/pkg/solana"
)

func TestErrors(t *testing.T) {
	assert.Equal(t, 59, Errors.Len())

	assert.EqualValues(t, 6000, ErrInvalidStartBinIndex)
	assert.EqualValues(t, 6004, ErrExceededBinSlippageTolerance)
	assert.EqualValues(t, 6058, ErrInvalidActivationType)
	assert.Equal(t, "InvalidActivationType", Errors.Lookup(6058).Name)
	assert.Equal(t, "ExceededBinSlippageTolerance (6004): Exceeded bin slippage tolerance", ErrExceededBinSlippageTolerance.Error())

	assert.True(t, Errors.Lookup(6059).Unknown())
	assert.True(t, Errors.Lookup(0).Unknown())

	_, err := Errors.LookupStrict(7000)
	assert.ErrorIs(t, err, solana.ErrUnknownErrorCode)
}

func TestResolveProgramError(t *testing.T) {
	txErr, err := solana.ParseTransactionError([]byte(`{"InstructionError":[2,{"Custom":6004}]}`))
	require.NoError(t, err)

	programErr, ok := solana.ResolveProgramError(txErr.InstructionError(), PROGRAM_ID, Errors)
	require.True(t, ok)
	assert.Equal(t, "ExceededBinSlippageTolerance", programErr.Name)
	assert.False(t, programErr.Unknown())
}
