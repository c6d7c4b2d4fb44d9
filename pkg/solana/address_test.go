package solana

import (
	"crypto/ed25519"
	"crypto/sha256"
	"hash"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProgramAddress(t *testing.T) {
	exceededSeed := make([]byte, maxSeedLength+1)
	maxSeed := make([]byte, maxSeedLength)

	// The typo here was taken directly from the Solana test case,
	// which was used to derive the expected outputs.
	publicKey, err := base58.Decode("SeedPubey1111111111111111111111111111111111")
	require.NoError(t, err)
	programID, err := base58.Decode("BPFLoader1111111111111111111111111111111111")
	require.NoError(t, err)

	_, err = CreateProgramAddress(programID, exceededSeed)
	assert.Equal(t, ErrMaxSeedLengthExceeded, err)
	_, err = CreateProgramAddress(programID, []byte("short seed"), exceededSeed)
	assert.Equal(t, ErrMaxSeedLengthExceeded, err)

	_, err = CreateProgramAddress(programID, maxSeed)
	assert.NoError(t, err)

	cases := []struct {
		expected string
		input    [][]byte
	}{
		{
			expected: "3gF2KMe9KiC6FNVBmfg9i267aMPvK37FewCip4eGBFcT",
			input:    [][]byte{{}, {1}},
		},
		{
			expected: "7ytmC1nT1xY4RfxCV2ZgyA7UakC93do5ZdyhdF3EtPj7",
			input:    [][]byte{[]byte("☉")},
		},
		{
			expected: "HwRVBufQ4haG5XSgpspwKtNd3PC9GM9m1196uJW36vds",
			input:    [][]byte{[]byte("Talking"), []byte("Squirrels")},
		},
		{
			expected: "GUs5qLUfsEHkcMB9T38vjr18ypEhRuNWiePW2LoK4E3K",
			input:    [][]byte{publicKey},
		},
	}

	for _, tc := range cases {
		key, err := CreateProgramAddress(programID, tc.input...)
		assert.NoError(t, err)
		assert.Equal(t, tc.expected, base58.Encode(key))
	}

	a, err := CreateProgramAddress(programID, []byte("Talking"))
	assert.NoError(t, err)
	b, err := CreateProgramAddress(programID, []byte("Talking"), []byte("Squirrels"))
	assert.NoError(t, err)

	assert.NotEqual(t, a, b)
}

type testCtor struct {
	sumResult []byte
}

func (t *testCtor) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func (t *testCtor) Sum(b []byte) []byte {
	return t.sumResult
}

func (t *testCtor) Reset() {
}

func (t *testCtor) Size() int {
	return sha256.New().Size()
}

func (t *testCtor) BlockSize() int {
	return sha256.New().BlockSize()
}

func TestCreateProgramAddress_Invalid(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	programHashCtor = func() hash.Hash {
		return &testCtor{
			sumResult: pub,
		}
	}
	defer func() {
		programHashCtor = sha256.New
	}()

	programID, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	_, err = CreateProgramAddress(programID, []byte("Lil'"), []byte("Bits"))
	assert.Equal(t, ErrInvalidPublicKey, err)
}

func TestFindProgramAddress_RandomPrograms(t *testing.T) {
	for i := 0; i < 200; i++ {
		programID, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)

		_, err = FindProgramAddress(programID, []byte("Lil'"), []byte("Bits"))
		assert.NoError(t, err)
	}
}

func TestFindProgramAddress_ReferenceVectors(t *testing.T) {
	// Derived with seeds "Lil'" and "Bits".
	references := []struct {
		programID string
		expected  string
	}{
		{programID: "4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofM", expected: "Bn9pAWUXWc5Kd849xTkQcHqiCbHUEizLFn4r5Cf8XYnd"},
		{programID: "LX3EUdRUBUa3TbsYXLEUdj9J3prXkWXvLYSWyYyc2Jj", expected: "9CqF6oTZtW5zSeoLnZRoQmj3s2tXGPqifM1W8Z8LVE1z"},
		{programID: "c8fpTXm3XTRgE5maYQ24Li4L65wMYvAFomzXknxVEx7", expected: "6brHYNpseuh39WW3Md5WxTyw12kqumR4tTyZqzkyPWZP"},
		{programID: "skJQSS6csSHJzZfcZToe3gyN8M2BMKnbH1YYY2wNTbV", expected: "Cw2qpvCaoPGxEJypW7rW5obTKSTLpCDRN7TgrrVugkfC"},
		{programID: "29MvzRLSCDR8wm3ZeaXbDkftQAc719jQvkF6ZKGvFgEs", expected: "8habU8xKFCDeJNg9No6prtCY1Lq2px5bqWEyudy1SScW"},
	}

	for _, r := range references {
		programID, err := base58.Decode(r.programID)
		require.NoError(t, err)
		expected, err := base58.Decode(r.expected)
		require.NoError(t, err)

		actual, err := FindProgramAddress(programID, []byte("Lil'"), []byte("Bits"))
		assert.NoError(t, err)
		assert.EqualValues(t, expected, actual)
	}
}

func TestFindProgramAddressAndBump_MatchesSolanaGo(t *testing.T) {
	program := solanago.MustPublicKeyFromBase58("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo")
	lbPair := solanago.MustPublicKeyFromBase58("mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So")

	seedSets := [][][]byte{
		{[]byte("oracle"), lbPair[:]},
		{[]byte("bin_array"), lbPair[:], Int64Seed(-1)},
		{[]byte("bin_array"), lbPair[:], Int64Seed(245)},
		{[]byte("__event_authority")},
		{[]byte("preset_parameter"), Uint16Seed(10), Uint16Seed(10000)},
	}

	for _, seeds := range seedSets {
		expected, expectedBump, err := solanago.FindProgramAddress(seeds, program)
		require.NoError(t, err)

		actual, actualBump, err := FindProgramAddressAndBump(program[:], seeds...)
		require.NoError(t, err)

		assert.EqualValues(t, expected[:], actual)
		assert.Equal(t, expectedBump, actualBump)
	}
}

func TestFindProgramAddressAndBump_TooManySeeds(t *testing.T) {
	programID, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	seeds := make([][]byte, maxSeeds)
	_, _, err = FindProgramAddressAndBump(programID, seeds...)
	assert.Equal(t, ErrTooManySeeds, err)
}

func TestSeeds(t *testing.T) {
	assert.Equal(t, []byte{0x10, 0x27}, Uint16Seed(10000))
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, Int32Seed(-1))
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, Uint64Seed(1))
	assert.Equal(t, []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, Int64Seed(-2))
}
