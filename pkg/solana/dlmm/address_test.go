package dlmm

import (
	"encoding/binary"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireSameAddress(t *testing.T, seeds [][]byte, actual []byte, bump uint8) {
	expected, expectedBump, err := solanago.FindProgramAddress(seeds, solanago.PublicKeyFromBytes(PROGRAM_ID))
	require.NoError(t, err)
	assert.Equal(t, expected.Bytes(), actual)
	assert.Equal(t, expectedBump, bump)
}

func u16(v uint16) []byte {
	return binary.LittleEndian.AppendUint16(nil, v)
}

func TestGetEventAuthorityAddress(t *testing.T) {
	address, bump, err := GetEventAuthorityAddress()
	require.NoError(t, err)
	assert.EqualValues(t, EVENT_AUTHORITY, address)
	requireSameAddress(t, [][]byte{[]byte("__event_authority")}, address, bump)
}

func TestGetLbPairAddress(t *testing.T) {
	args := &GetLbPairAddressArgs{
		TokenXMint: testKey(9),
		TokenYMint: testKey(3),
		BinStep:    25,
		BaseFactor: 10_000,
	}

	address, bump, err := GetLbPairAddress(args)
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{testKey(3), testKey(9), u16(25), u16(10_000)}, address, bump)

	args.TokenXMint, args.TokenYMint = args.TokenYMint, args.TokenXMint
	swapped, _, err := GetLbPairAddress(args)
	require.NoError(t, err)
	assert.Equal(t, address, swapped)
}

func TestGetPairVariantAddresses(t *testing.T) {
	address, bump, err := GetPermissionLbPairAddress(&GetPermissionLbPairAddressArgs{
		Base:       testKey(1),
		TokenXMint: testKey(5),
		TokenYMint: testKey(4),
		BinStep:    100,
	})
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{testKey(1), testKey(4), testKey(5), u16(100)}, address, bump)

	address, bump, err = GetCustomizablePermissionlessLbPairAddress(testKey(5), testKey(4))
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{ILM_BASE_KEY, testKey(4), testKey(5)}, address, bump)
}

func TestGetPositionAddress(t *testing.T) {
	address, bump, err := GetPositionAddress(&GetPositionAddressArgs{
		LbPair:     testKey(1),
		Base:       testKey(2),
		LowerBinId: -35,
		Width:      70,
	})
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{
		[]byte("position"),
		testKey(1),
		testKey(2),
		binary.LittleEndian.AppendUint32(nil, uint32(0xffffffdd)),
		binary.LittleEndian.AppendUint32(nil, 70),
	}, address, bump)
}

func TestPairAddresses(t *testing.T) {
	lbPair := testKey(7)

	address, bump, err := GetOracleAddress(lbPair)
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{[]byte("oracle"), lbPair}, address, bump)

	address, bump, err = GetBinArrayBitmapExtensionAddress(lbPair)
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{[]byte("bitmap"), lbPair}, address, bump)

	address, bump, err = GetReserveAddress(lbPair, testKey(8))
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{lbPair, testKey(8)}, address, bump)

	address, bump, err = GetRewardVaultAddress(lbPair, 1)
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{lbPair, binary.LittleEndian.AppendUint64(nil, 1)}, address, bump)

	address, bump, err = GetBinArrayAddress(lbPair, -1)
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{[]byte("bin_array"), lbPair, binary.LittleEndian.AppendUint64(nil, ^uint64(0))}, address, bump)
}

func TestGetBinArrayAddresses(t *testing.T) {
	lbPair := testKey(7)

	addresses, err := GetBinArrayAddresses(lbPair, -1, 70)
	require.NoError(t, err)
	require.Len(t, addresses, 3)

	for i, index := range []int64{-1, 0, 1} {
		expected, _, err := GetBinArrayAddress(lbPair, index)
		require.NoError(t, err)
		assert.Equal(t, expected, addresses[i])
	}
}

func TestPresetParameterAddresses(t *testing.T) {
	address, bump, err := GetPresetParameterAddress(25, 10_000)
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{[]byte("preset_parameter"), u16(25), u16(10_000)}, address, bump)

	address, bump, err = GetPresetParameter2Address(3)
	require.NoError(t, err)
	requireSameAddress(t, [][]byte{[]byte("preset_parameter2"), u16(3)}, address, bump)
}
