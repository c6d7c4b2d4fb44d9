package decoder

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
	"github.com/code-payments/solana-program-clients/pkg/solana/dlmm"
	"github.com/code-payments/solana-program-clients/pkg/solana/marinade"
)

func testKey(b byte) ed25519.PublicKey {
	return bytes.Repeat([]byte{b}, ed25519.PublicKeySize)
}

func encodeTicket(t *testing.T, lamports uint64) []byte {
	data, err := binary.Encode(&marinade.TicketAccountData{
		StateAddress:   testKey(1),
		Beneficiary:    testKey(2),
		LamportsAmount: lamports,
		CreatedEpoch:   600,
	})
	require.NoError(t, err)
	return data
}

func encodePresetParameter(t *testing.T, binStep uint16) []byte {
	data, err := binary.Encode(&dlmm.PresetParameter2{
		BinStep:    binStep,
		BaseFactor: 10_000,
		Index:      3,
	})
	require.NoError(t, err)
	return data
}

func TestDefaultRegistry_Decode(t *testing.T) {
	r := DefaultRegistry()

	decoded, err := r.Decode(marinade.PROGRAM_ID, encodeTicket(t, 1_000_000))
	require.NoError(t, err)
	assert.Equal(t, "marinade.TicketAccountData", decoded.Name)
	assert.EqualValues(t, marinade.PROGRAM_ID, decoded.Program)

	ticket, ok := decoded.Value.(*marinade.TicketAccountData)
	require.True(t, ok)
	assert.EqualValues(t, 1_000_000, ticket.LamportsAmount)
	assert.EqualValues(t, testKey(2), ticket.Beneficiary)

	decoded, err = r.Decode(dlmm.PROGRAM_ID, encodePresetParameter(t, 25))
	require.NoError(t, err)
	assert.Equal(t, "dlmm.PresetParameter2", decoded.Name)

	preset, ok := decoded.Value.(*dlmm.PresetParameter2)
	require.True(t, ok)
	assert.EqualValues(t, 25, preset.BinStep)
	assert.EqualValues(t, 3, preset.Index)
}

func TestDefaultRegistry_Names(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{"marinade.State", "marinade.TicketAccountData"}, r.Names(marinade.PROGRAM_ID))
	assert.Equal(t, []string{"dlmm.BinArray", "dlmm.LbPair", "dlmm.PositionV2", "dlmm.PresetParameter2"}, r.Names(dlmm.PROGRAM_ID))
	assert.Empty(t, r.Names(testKey(9)))
}

func TestRegistry_UnknownAccount(t *testing.T) {
	r := DefaultRegistry()

	// Right discriminator, wrong owner.
	_, err := r.Decode(dlmm.PROGRAM_ID, encodeTicket(t, 1))
	assert.True(t, errors.Is(err, ErrUnknownAccount))

	// Known owner, unknown discriminator.
	_, err = r.Decode(marinade.PROGRAM_ID, make([]byte, marinade.TicketAccountDataSize))
	assert.True(t, errors.Is(err, ErrUnknownAccount))

	_, err = r.Decode(marinade.PROGRAM_ID, []byte{1, 2, 3})
	assert.True(t, errors.Is(err, ErrUnknownAccount))
}

func TestRegistry_DecodeError(t *testing.T) {
	r := DefaultRegistry()

	data := encodeTicket(t, 1)
	_, err := r.Decode(marinade.PROGRAM_ID, data[:len(data)-1])
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnknownAccount))
	assert.True(t, errors.Is(err, binary.ErrOutOfBounds))
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	program := testKey(7)
	disc := binary.AccountDiscriminator("Widget")

	decode := func(data []byte) (interface{}, error) {
		return len(data), nil
	}
	require.NoError(t, r.Register(program, disc, "Widget", decode))

	err := r.Register(program, disc, "Gadget", decode)
	assert.True(t, errors.Is(err, ErrAlreadyRegistered))

	// The same discriminator under another program is a different type.
	require.NoError(t, r.Register(testKey(8), disc, "Widget", decode))

	decoded, err := r.Decode(program, append(disc[:], 1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, "Widget", decoded.Name)
	assert.Equal(t, 11, decoded.Value)
}
