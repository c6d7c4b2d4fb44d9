package binary

import (
	"bytes"
	"crypto/ed25519"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

type testEntry struct {
	Key    ed25519.PublicKey
	Amount uint64
}

const testEntrySize = 32 + 8

func (obj *testEntry) Size() int {
	return testEntrySize
}

func (obj *testEntry) MarshalBinaryTo(e *Encoder) error {
	if err := e.WriteKey(obj.Key); err != nil {
		return err
	}
	return e.WriteUint64(obj.Amount)
}

func (obj *testEntry) UnmarshalBinaryFrom(d *Decoder) (err error) {
	if obj.Key, err = d.ReadKey(); err != nil {
		return err
	}
	obj.Amount, err = d.ReadUint64()
	return err
}

func TestPrimitives_RoundTrip(t *testing.T) {
	buf := make([]byte, 1+1+2+4+8+8+16+32)

	key := bytes.Repeat([]byte{7}, 32)
	u128 := uint128.New(math.MaxUint64, 3)

	e := NewEncoder(buf)
	require.NoError(t, e.WriteUint8(0xab))
	require.NoError(t, e.WriteBool(true))
	require.NoError(t, e.WriteInt16(-2))
	require.NoError(t, e.WriteInt32(-70))
	require.NoError(t, e.WriteInt64(math.MinInt64))
	require.NoError(t, e.WriteFloat64(-0.25))
	require.NoError(t, e.WriteUint128(u128))
	require.NoError(t, e.WriteKey(key))
	assert.Equal(t, len(buf), e.Offset())

	d := NewDecoder(buf)

	u8, err := d.ReadUint8()
	require.NoError(t, err)
	assert.EqualValues(t, 0xab, u8)

	b, err := d.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)

	i16, err := d.ReadInt16()
	require.NoError(t, err)
	assert.EqualValues(t, -2, i16)

	i32, err := d.ReadInt32()
	require.NoError(t, err)
	assert.EqualValues(t, -70, i32)

	i64, err := d.ReadInt64()
	require.NoError(t, err)
	assert.EqualValues(t, int64(math.MinInt64), i64)

	f64, err := d.ReadFloat64()
	require.NoError(t, err)
	assert.Equal(t, -0.25, f64)

	actualU128, err := d.ReadUint128()
	require.NoError(t, err)
	assert.Equal(t, u128, actualU128)

	actualKey, err := d.ReadKey()
	require.NoError(t, err)
	assert.EqualValues(t, key, actualKey)

	assert.Equal(t, 0, d.Remaining())
}

func TestPrimitives_NegativeOneIsAllOnes(t *testing.T) {
	buf := make([]byte, 8)
	require.NoError(t, NewEncoder(buf).WriteInt64(-1))
	assert.Equal(t, bytes.Repeat([]byte{0xff}, 8), buf)
}

func TestPrimitives_OutOfBounds(t *testing.T) {
	buf := make([]byte, 8)

	d := NewDecoderAt(buf, 4)
	_, err := d.ReadUint64()
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, 4, d.Offset())

	v, err := d.ReadUint32()
	require.NoError(t, err)
	assert.EqualValues(t, 0, v)

	d = NewDecoderAt(buf, 9)
	_, err = d.ReadUint8()
	assert.ErrorIs(t, err, ErrOutOfBounds)

	e := NewEncoderAt(buf, 1)
	assert.ErrorIs(t, e.WriteUint64(math.MaxUint64), ErrOutOfBounds)
	assert.Equal(t, make([]byte, 8), buf)
	assert.Equal(t, 1, e.Offset())

	_, err = NewDecoder(make([]byte, 31)).ReadKey()
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestPrimitives_StrictBool(t *testing.T) {
	d := NewDecoder([]byte{2})
	_, err := d.ReadBool()
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Equal(t, 0, d.Offset())
}

func TestWriteKey_InvalidLength(t *testing.T) {
	buf := make([]byte, 32)
	assert.ErrorIs(t, NewEncoder(buf).WriteKey(make([]byte, 31)), ErrSchemaMismatch)

	require.NoError(t, NewEncoder(buf).WriteKey(nil))
	assert.Equal(t, make([]byte, 32), buf)
}

func TestOption(t *testing.T) {
	v := uint64(42)

	buf := make([]byte, OptionSize(&v, 8))
	require.Len(t, buf, 9)
	require.NoError(t, WriteOption(NewEncoder(buf), &v, (*Encoder).WriteUint64))
	assert.Equal(t, []byte{1, 42, 0, 0, 0, 0, 0, 0, 0}, buf)

	actual, err := ReadOption(NewDecoder(buf), (*Decoder).ReadUint64)
	require.NoError(t, err)
	require.NotNil(t, actual)
	assert.EqualValues(t, 42, *actual)

	var none *uint64
	buf = make([]byte, OptionSize(none, 8))
	require.Len(t, buf, 1)
	require.NoError(t, WriteOption(NewEncoder(buf), none, (*Encoder).WriteUint64))
	assert.Equal(t, []byte{0}, buf)

	// Absent options consume exactly the tag, whatever follows
	d := NewDecoder([]byte{0, 0xff, 0xff})
	actual, err = ReadOption(d, (*Decoder).ReadUint64)
	require.NoError(t, err)
	assert.Nil(t, actual)
	assert.Equal(t, 1, d.Offset())
}

func TestOption_InvalidTag(t *testing.T) {
	d := NewDecoder([]byte{2, 42, 0, 0, 0, 0, 0, 0, 0})
	_, err := ReadOption(d, (*Decoder).ReadUint64)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Equal(t, 0, d.Offset())
}

func TestOption_TruncatedPayload(t *testing.T) {
	d := NewDecoder([]byte{1, 42, 0})
	_, err := ReadOption(d, (*Decoder).ReadUint64)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, 0, d.Offset())
}

func TestArray(t *testing.T) {
	buf := make([]byte, 3*4)
	require.NoError(t, WriteArray(NewEncoder(buf), []uint32{1, 2, 3}, 3, (*Encoder).WriteUint32))
	assert.Equal(t, []byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0}, buf)

	actual, err := ReadArray(NewDecoder(buf), 3, 4, (*Decoder).ReadUint32)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2, 3}, actual)

	var fixed [3]uint32
	require.NoError(t, ReadArrayInto(NewDecoder(buf), fixed[:], 4, (*Decoder).ReadUint32))
	assert.Equal(t, [3]uint32{1, 2, 3}, fixed)

	err = WriteArray(NewEncoder(buf), []uint32{1, 2}, 3, (*Encoder).WriteUint32)
	assert.ErrorIs(t, err, ErrArrayLength)

	d := NewDecoder(buf[:11])
	_, err = ReadArray(d, 3, 4, (*Decoder).ReadUint32)
	assert.ErrorIs(t, err, ErrTruncatedBuffer)
	assert.Equal(t, 0, d.Offset())
}

func TestArray_VariableLengthTruncated(t *testing.T) {
	// two options, the second claiming a payload that isn't there
	buf := []byte{1, 7, 0, 0, 0, 1, 8}

	var dst [2]*uint32
	d := NewDecoder(buf)
	err := ReadArrayInto(d, dst[:], 0, func(d *Decoder) (*uint32, error) {
		return ReadOption(d, (*Decoder).ReadUint32)
	})
	assert.ErrorIs(t, err, ErrTruncatedBuffer)
	assert.Equal(t, 0, d.Offset())
}

func TestVector(t *testing.T) {
	entries := []testEntry{
		{Key: bytes.Repeat([]byte{1}, 32), Amount: 1},
		{Key: bytes.Repeat([]byte{2}, 32), Amount: 2},
	}

	buf := make([]byte, VectorSize(len(entries), testEntrySize))
	require.Len(t, buf, 84)

	e := NewEncoder(buf)
	require.NoError(t, WriteVector(e, entries, WriteRecord[testEntry]))
	assert.Equal(t, 84, e.Offset())
	assert.Equal(t, []byte{2, 0, 0, 0}, buf[:4])

	actual, err := ReadVector(NewDecoder(buf), testEntrySize, ReadRecord[testEntry])
	require.NoError(t, err)
	require.Len(t, actual, 2)
	for i := range entries {
		assert.EqualValues(t, entries[i].Key, actual[i].Key)
		assert.Equal(t, entries[i].Amount, actual[i].Amount)
	}

	empty := make([]byte, 4)
	actual, err = ReadVector(NewDecoder(empty), testEntrySize, ReadRecord[testEntry])
	require.NoError(t, err)
	assert.Empty(t, actual)
}

func TestVector_CountExceedsBuffer(t *testing.T) {
	buf := []byte{0xff, 0xff, 0xff, 0xff, 0, 0}

	d := NewDecoder(buf)
	_, err := ReadVector(d, 8, (*Decoder).ReadUint64)
	assert.ErrorIs(t, err, ErrTruncatedBuffer)
	assert.Equal(t, 0, d.Offset())

	_, err = ReadVector(NewDecoder(buf), 0, (*Decoder).ReadUint64)
	assert.ErrorIs(t, err, ErrTruncatedBuffer)

	// Variable length elements that run out mid vector
	_, err = ReadVector(NewDecoder([]byte{1, 0, 0, 0, 1, 5, 0}), 0, func(d *Decoder) (*uint32, error) {
		return ReadOption(d, (*Decoder).ReadUint32)
	})
	assert.ErrorIs(t, err, ErrTruncatedBuffer)
}

func TestRecord_EncodeDecode(t *testing.T) {
	expected := &testEntry{Key: bytes.Repeat([]byte{9}, 32), Amount: 1234}

	buf, err := Encode(expected)
	require.NoError(t, err)
	assert.Len(t, buf, expected.Size())

	var actual testEntry
	n, err := Decode(buf, 0, &actual)
	require.NoError(t, err)
	assert.Equal(t, expected.Size(), n)
	assert.Equal(t, expected.Amount, actual.Amount)

	padded := make([]byte, 4+testEntrySize)
	n, err = EncodeAt(padded, 4, expected)
	require.NoError(t, err)
	assert.Equal(t, testEntrySize, n)
	assert.Equal(t, buf, padded[4:])

	_, err = Decode(buf[:testEntrySize-1], 0, &actual)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestDiscriminator(t *testing.T) {
	assert.Equal(t, Discriminator{67, 178, 130, 109, 126, 114, 28, 42}, AccountDiscriminator("MarginfiAccount"))
	assert.Equal(t, Discriminator{171, 94, 235, 103, 82, 64, 212, 140}, InstructionDiscriminator("lending_account_deposit"))

	disc := AccountDiscriminator("Sample")
	buf := append(disc[:], 1, 2, 3)
	assert.True(t, HasDiscriminator(buf, disc))
	assert.False(t, HasDiscriminator(buf[:7], disc))

	d := NewDecoder(buf)
	require.NoError(t, d.ReadDiscriminator(disc))
	assert.Equal(t, DiscriminatorSize, d.Offset())

	d = NewDecoder(buf)
	err := d.ReadDiscriminator(AccountDiscriminator("Other"))
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Equal(t, 0, d.Offset())
}

func TestInstructionData(t *testing.T) {
	disc := InstructionDiscriminator("sample")
	args := &testEntry{Key: bytes.Repeat([]byte{3}, 32), Amount: 99}

	data, err := EncodeInstruction(disc, args)
	require.NoError(t, err)
	require.Len(t, data, DiscriminatorSize+testEntrySize)
	assert.Equal(t, disc[:], data[:DiscriminatorSize])

	var actual testEntry
	require.NoError(t, DecodeInstruction(data, disc, &actual))
	assert.Equal(t, args.Amount, actual.Amount)
	assert.EqualValues(t, args.Key, actual.Key)

	assert.ErrorIs(t, DecodeInstruction(data, InstructionDiscriminator("other"), &actual), ErrSchemaMismatch)
	assert.ErrorIs(t, DecodeInstruction(append(data, 0), disc, &actual), ErrSchemaMismatch)
	assert.ErrorIs(t, DecodeInstruction(data[:20], disc, &actual), ErrOutOfBounds)

	data, err = EncodeInstruction(disc, nil)
	require.NoError(t, err)
	assert.Equal(t, disc[:], data)
	require.NoError(t, DecodeInstruction(data, disc, nil))
}

func TestReadEnum(t *testing.T) {
	d := NewDecoder([]byte{1, 3})

	v, err := d.ReadEnum(2, "state")
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)

	_, err = d.ReadEnum(2, "state")
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Equal(t, 1, d.Offset())
}
