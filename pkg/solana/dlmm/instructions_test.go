package dlmm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

func TestInstructionDiscriminators(t *testing.T) {
	for name, disc := range map[string]binary.Discriminator{
		"initialize_position":         InitializePositionInstructionDiscriminator,
		"swap":                        SwapInstructionDiscriminator,
		"claim_fee":                   ClaimFeeInstructionDiscriminator,
		"close_position":              ClosePositionInstructionDiscriminator,
		"initialize_preset_parameter": InitializePresetParameterInstructionDiscriminator,
		"remove_liquidity_by_range":   RemoveLiquidityByRangeInstructionDiscriminator,
	} {
		assert.Equal(t, binary.InstructionDiscriminator(name), disc, name)
	}
}

func TestInitializePositionInstruction(t *testing.T) {
	ix, err := NewInitializePositionInstruction(
		&InitializePositionInstructionAccounts{
			Payer:    testKey(1),
			Position: testKey(2),
			LbPair:   testKey(3),
			Owner:    testKey(4),
		},
		&InitializePositionInstructionArgs{LowerBinId: -35, Width: 70},
	)
	require.NoError(t, err)

	assert.EqualValues(t, PROGRAM_ID, ix.Program)
	assert.Equal(t, []byte{
		219, 192, 234, 71, 190, 191, 102, 80,
		0xdd, 0xff, 0xff, 0xff,
		70, 0, 0, 0,
	}, ix.Data)
	assert.Equal(t, []solana.AccountMeta{
		solana.NewWritableSignerAccountMeta(testKey(1)),
		solana.NewWritableSignerAccountMeta(testKey(2)),
		solana.NewReadonlyAccountMeta(testKey(3)),
		solana.NewReadonlySignerAccountMeta(testKey(4)),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID),
		solana.NewReadonlyAccountMeta(SYSVAR_RENT_PUBKEY),
		solana.NewReadonlyAccountMeta(EVENT_AUTHORITY),
		solana.NewReadonlyAccountMeta(PROGRAM_ID),
	}, ix.Accounts)

	accounts, args, err := DecompileInitializePositionInstruction(ix)
	require.NoError(t, err)
	assert.EqualValues(t, -35, args.LowerBinId)
	assert.EqualValues(t, 70, args.Width)
	assert.EqualValues(t, testKey(4), accounts.Owner)
}

func TestSwapInstruction(t *testing.T) {
	binArrays := []solana.AccountMeta{
		solana.NewWritableAccountMeta(testKey(20)),
		solana.NewWritableAccountMeta(testKey(21)),
	}

	ix, err := NewSwapInstruction(
		&SwapInstructionAccounts{
			LbPair:            testKey(1),
			ReserveX:          testKey(2),
			ReserveY:          testKey(3),
			UserTokenIn:       testKey(4),
			UserTokenOut:      testKey(5),
			TokenXMint:        testKey(6),
			TokenYMint:        testKey(7),
			Oracle:            testKey(8),
			User:              testKey(9),
			TokenYProgram:     TOKEN_2022_PROGRAM_ID,
			RemainingAccounts: binArrays,
		},
		&SwapInstructionArgs{AmountIn: 1_000, MinAmountOut: 990},
	)
	require.NoError(t, err)

	require.Len(t, ix.Accounts, 17)
	assert.Len(t, ix.Data, 8+16)

	// absent optional accounts are filled with the program id
	assert.Equal(t, solana.NewReadonlyAccountMeta(PROGRAM_ID), ix.Accounts[1])
	assert.Equal(t, solana.NewWritableAccountMeta(PROGRAM_ID), ix.Accounts[9])
	assert.Equal(t, solana.NewReadonlySignerAccountMeta(testKey(9)), ix.Accounts[10])
	assert.Equal(t, solana.NewReadonlyAccountMeta(SPL_TOKEN_PROGRAM_ID), ix.Accounts[11])
	assert.Equal(t, solana.NewReadonlyAccountMeta(TOKEN_2022_PROGRAM_ID), ix.Accounts[12])
	assert.Equal(t, solana.NewReadonlyAccountMeta(EVENT_AUTHORITY), ix.Accounts[13])
	assert.Equal(t, solana.NewReadonlyAccountMeta(PROGRAM_ID), ix.Accounts[14])
	assert.Equal(t, binArrays, ix.Accounts[15:])

	accounts, args, err := DecompileSwapInstruction(ix)
	require.NoError(t, err)
	assert.EqualValues(t, 1_000, args.AmountIn)
	assert.EqualValues(t, 990, args.MinAmountOut)
	assert.EqualValues(t, testKey(8), accounts.Oracle)
	assert.EqualValues(t, PROGRAM_ID, accounts.HostFeeIn)
	assert.Equal(t, binArrays, accounts.RemainingAccounts)

	ix.Accounts = ix.Accounts[:14]
	_, _, err = DecompileSwapInstruction(ix)
	assert.ErrorIs(t, err, ErrInvalidInstructionData)
}

func TestClaimFeeAndClosePositionInstructions(t *testing.T) {
	claimIx, err := NewClaimFeeInstruction(&ClaimFeeInstructionAccounts{
		LbPair:        testKey(1),
		Position:      testKey(2),
		BinArrayLower: testKey(3),
		BinArrayUpper: testKey(4),
		Sender:        testKey(5),
		ReserveX:      testKey(6),
		ReserveY:      testKey(7),
		UserTokenX:    testKey(8),
		UserTokenY:    testKey(9),
		TokenXMint:    testKey(10),
		TokenYMint:    testKey(11),
	})
	require.NoError(t, err)
	assert.Equal(t, ClaimFeeInstructionDiscriminator[:], claimIx.Data)
	require.Len(t, claimIx.Accounts, 14)
	assert.Equal(t, solana.NewReadonlySignerAccountMeta(testKey(5)), claimIx.Accounts[4])
	assert.Equal(t, solana.NewReadonlyAccountMeta(SPL_TOKEN_PROGRAM_ID), claimIx.Accounts[11])

	claimAccounts, err := DecompileClaimFeeInstruction(claimIx)
	require.NoError(t, err)
	assert.EqualValues(t, testKey(9), claimAccounts.UserTokenY)

	closeIx, err := NewClosePositionInstruction(&ClosePositionInstructionAccounts{
		Position:      testKey(2),
		LbPair:        testKey(1),
		BinArrayLower: testKey(3),
		BinArrayUpper: testKey(4),
		Sender:        testKey(5),
		RentReceiver:  testKey(5),
	})
	require.NoError(t, err)
	require.Len(t, closeIx.Accounts, 8)
	assert.Equal(t, solana.NewWritableAccountMeta(testKey(5)), closeIx.Accounts[5])

	// a claim_fee payload does not decompile as close_position
	closeIx.Data = claimIx.Data
	_, err = DecompileClosePositionInstruction(closeIx)
	assert.ErrorIs(t, err, binary.ErrSchemaMismatch)
}

func TestInitializePresetParameterInstruction(t *testing.T) {
	args := &InitializePresetParameterInstructionArgs{
		Ix: InitPresetParametersIx{
			Index:                    3,
			BinStep:                  100,
			BaseFactor:               8_000,
			FilterPeriod:             300,
			DecayPeriod:              1_200,
			ReductionFactor:          5_000,
			VariableFeeControl:       7_500,
			MaxVolatilityAccumulator: 150_000,
			ProtocolShare:            2_000,
			BaseFeePowerFactor:       1,
			FunctionType:             0,
		},
	}

	presetParameter, _, err := GetPresetParameter2Address(args.Ix.Index)
	require.NoError(t, err)

	ix, err := NewInitializePresetParameterInstruction(
		&InitializePresetParameterInstructionAccounts{
			PresetParameter: presetParameter,
			Admin:           testKey(1),
		},
		args,
	)
	require.NoError(t, err)
	require.Len(t, ix.Data, 8+InitPresetParametersIxSize)
	assert.Equal(t, []byte{3, 0, 100, 0}, ix.Data[8:12])

	accounts, decoded, err := DecompileInitializePresetParameterInstruction(ix)
	require.NoError(t, err)
	assert.Equal(t, args, decoded)
	assert.EqualValues(t, presetParameter, accounts.PresetParameter)

	// the older 22 byte layout is not accepted
	_, err = InitializePresetParameterInstructionArgsFromBinary(ix.Data[:len(ix.Data)-2])
	assert.ErrorIs(t, err, binary.ErrOutOfBounds)
}

func TestRemoveLiquidityByRangeInstruction(t *testing.T) {
	ix, err := NewRemoveLiquidityByRangeInstruction(
		&RemoveLiquidityByRangeInstructionAccounts{
			Position:      testKey(1),
			LbPair:        testKey(2),
			UserTokenX:    testKey(3),
			UserTokenY:    testKey(4),
			ReserveX:      testKey(5),
			ReserveY:      testKey(6),
			TokenXMint:    testKey(7),
			TokenYMint:    testKey(8),
			BinArrayLower: testKey(9),
			BinArrayUpper: testKey(10),
			Sender:        testKey(11),
		},
		&RemoveLiquidityByRangeInstructionArgs{FromBinId: 2425, ToBinId: 2436, BpsToRemove: BasisPointMax},
	)
	require.NoError(t, err)

	assert.Equal(t, []byte{
		26, 82, 102, 152, 240, 74, 105, 26,
		0x79, 0x09, 0, 0,
		0x84, 0x09, 0, 0,
		0x10, 0x27,
	}, ix.Data)
	require.Len(t, ix.Accounts, 16)
	assert.Equal(t, solana.NewWritableAccountMeta(PROGRAM_ID), ix.Accounts[2])
	assert.Equal(t, solana.NewReadonlySignerAccountMeta(testKey(11)), ix.Accounts[11])
	assert.Equal(t, solana.NewReadonlyAccountMeta(PROGRAM_ID), ix.Accounts[15])

	accounts, args, err := DecompileRemoveLiquidityByRangeInstruction(ix)
	require.NoError(t, err)
	assert.EqualValues(t, 2425, args.FromBinId)
	assert.EqualValues(t, 2436, args.ToBinId)
	assert.EqualValues(t, testKey(10), accounts.BinArrayUpper)

	ix.Program = testKey(1)
	_, _, err = DecompileRemoveLiquidityByRangeInstruction(ix)
	assert.ErrorIs(t, err, ErrInvalidProgram)
}
