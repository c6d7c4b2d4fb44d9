package solana

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Matches(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5}

	assert.True(t, DataSizeFilter(6).Matches(data))
	assert.False(t, DataSizeFilter(5).Matches(data))

	assert.True(t, MustMemcmpFilter(2, []byte{2, 3}).Matches(data))
	assert.False(t, MustMemcmpFilter(2, []byte{3, 3}).Matches(data))
	assert.False(t, MustMemcmpFilter(5, []byte{5, 6}).Matches(data))
	assert.False(t, MustMemcmpFilter(7, []byte{1}).Matches(data))

	// Filters built by hand, e.g. read from configuration
	manual := Filter{Memcmp: &MemcmpValue{Offset: 4, Bytes: base58.Encode([]byte{4, 5})}}
	assert.True(t, manual.Matches(data))

	assert.True(t, MatchesAll(data, DataSizeFilter(6), MustMemcmpFilter(0, []byte{0})))
	assert.False(t, MatchesAll(data, DataSizeFilter(6), MustMemcmpFilter(0, []byte{1})))
	assert.False(t, Filter{}.Matches(data))
}

func TestFilter_TooLarge(t *testing.T) {
	_, err := MemcmpFilter(0, make([]byte, maxMemcmpBytes+1))
	assert.Equal(t, ErrFilterTooLarge, err)

	f, err := MemcmpFilter(0, make([]byte, maxMemcmpBytes))
	require.NoError(t, err)
	assert.NotNil(t, f.Memcmp)
}

func TestEnvironmentFromName(t *testing.T) {
	env, err := EnvironmentFromName("devnet")
	require.NoError(t, err)
	assert.Equal(t, EnvironmentDev, env)

	env, err = EnvironmentFromName("")
	require.NoError(t, err)
	assert.Equal(t, EnvironmentProd, env)

	env, err = EnvironmentFromName("http://localhost:8899")
	require.NoError(t, err)
	assert.Equal(t, Environment("http://localhost:8899"), env)

	_, err = EnvironmentFromName("moon")
	assert.Error(t, err)
}
