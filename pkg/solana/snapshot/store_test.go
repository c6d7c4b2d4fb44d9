package snapshot

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/solana-program-clients/pkg/solana"
)

func testKey(b byte) ed25519.PublicKey {
	return bytes.Repeat([]byte{b}, ed25519.PublicKeySize)
}

func newTestStore(t *testing.T) *Store {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func newTestEntry(program ed25519.PublicKey, address byte, slot uint64) *Entry {
	return &Entry{
		Program: program,
		Address: testKey(address),
		Slot:    slot,
		Account: solana.AccountInfo{
			Data:     []byte{address, 1, 2, 3},
			Owner:    program,
			Lamports: uint64(address) * 1000,
		},
	}
}

func TestStore_PutGet(t *testing.T) {
	store := newTestStore(t)
	program := testKey(1)

	_, err := store.Get(program, testKey(2))
	assert.Equal(t, ErrNotFound, err)

	expected := newTestEntry(program, 2, 100)
	require.NoError(t, store.Put(expected))

	actual, err := store.Get(program, testKey(2))
	require.NoError(t, err)
	assert.Equal(t, expected, actual)

	// Later observations replace earlier ones.
	updated := newTestEntry(program, 2, 101)
	updated.Account.Data = nil
	updated.Account.Executable = true
	require.NoError(t, store.Put(updated))

	actual, err = store.Get(program, testKey(2))
	require.NoError(t, err)
	assert.EqualValues(t, 101, actual.Slot)
	assert.True(t, actual.Account.Executable)
	assert.Empty(t, actual.Account.Data)

	require.NoError(t, store.Delete(program, testKey(2)))
	_, err = store.Get(program, testKey(2))
	assert.Equal(t, ErrNotFound, err)
	require.NoError(t, store.Delete(program, testKey(2)))
}

func TestStore_Iterate(t *testing.T) {
	store := newTestStore(t)
	program := testKey(1)
	other := testKey(9)

	var entries []*Entry
	for i := byte(10); i < 15; i++ {
		entries = append(entries, newTestEntry(program, i, 50))
	}
	entries = append(entries, newTestEntry(other, 20, 50))
	require.NoError(t, store.PutAll(entries...))

	var seen []*Entry
	require.NoError(t, store.Iterate(program, func(entry *Entry) error {
		seen = append(seen, entry)
		return nil
	}))
	require.Len(t, seen, 5)
	for _, entry := range seen {
		assert.EqualValues(t, program, entry.Program)
		assert.EqualValues(t, entry.Address[0], entry.Account.Data[0])
		assert.Equal(t, entry.Address, entry.KeyedAccount().PublicKey)
	}

	count, err := store.Count(other)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = store.Count(testKey(3))
	require.NoError(t, err)
	assert.Zero(t, count)

	var visited int
	require.NoError(t, store.Iterate(program, func(*Entry) error {
		visited++
		return ErrStopIterate
	}))
	assert.Equal(t, 1, visited)

	callbackErr := errors.New("callback failed")
	err = store.Iterate(program, func(*Entry) error {
		return callbackErr
	})
	assert.Equal(t, callbackErr, err)
}

func TestStore_InvalidEntry(t *testing.T) {
	store := newTestStore(t)

	err := store.Put(&Entry{Program: testKey(1)})
	assert.True(t, errors.Is(err, ErrInvalidEntry))

	entry := newTestEntry(testKey(1), 2, 1)
	entry.Account.Owner = testKey(3)
	err = store.Put(entry)
	assert.True(t, errors.Is(err, ErrInvalidEntry))

	assert.NoError(t, store.PutAll())
}

func TestPrefixUpperBound(t *testing.T) {
	assert.Equal(t, []byte("ab0"), prefixUpperBound([]byte("ab/")))
	assert.Equal(t, []byte{0x02}, prefixUpperBound([]byte{0x01, 0xff}))
	assert.Nil(t, prefixUpperBound([]byte{0xff, 0xff}))
}
