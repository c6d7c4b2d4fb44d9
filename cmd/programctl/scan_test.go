package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
	"github.com/code-payments/solana-program-clients/pkg/solana/decoder"
	"github.com/code-payments/solana-program-clients/pkg/solana/dlmm"
	"github.com/code-payments/solana-program-clients/pkg/solana/snapshot"
)

func TestSaveSnapshot_UsesScanSlot(t *testing.T) {
	store, err := snapshot.Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	data, err := binary.Encode(&dlmm.PresetParameter2{BinStep: 10, BaseFactor: 10000, Index: 3})
	require.NoError(t, err)

	decoded := solana.AccountInfo{Owner: dlmm.PROGRAM_ID, Data: data, Lamports: 1}
	broken := solana.AccountInfo{Owner: dlmm.PROGRAM_ID, Data: []byte{1, 2, 3}, Lamports: 1}

	res := &decoder.ScanResult{
		Accounts: []*decoder.Account{{Address: testKey(1), Info: decoded}},
		Failures: []*decoder.Failure{{Address: testKey(2), Info: broken, Err: decoder.ErrUnknownAccount}},
		Slot:     100,
	}
	require.NoError(t, saveSnapshot(store, res))

	for _, address := range []byte{1, 2} {
		entry, err := store.Get(dlmm.PROGRAM_ID, testKey(address))
		require.NoError(t, err)
		assert.EqualValues(t, 100, entry.Slot)
	}

	p, err := lookupProgram("dlmm")
	require.NoError(t, err)

	replayed, err := replaySnapshot(context.Background(), store, p)
	require.NoError(t, err)
	assert.EqualValues(t, 100, replayed.Slot)
	require.Len(t, replayed.Accounts, 1)
	require.Len(t, replayed.Failures, 1)
	assert.Equal(t, "dlmm.PresetParameter2", replayed.Accounts[0].Decoded.Name)
}
