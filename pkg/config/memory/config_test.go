package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/solana-program-clients/pkg/config"
)

func TestConfig(t *testing.T) {
	ctx := context.Background()

	c := NewConfig(nil)
	_, err := c.Get(ctx)
	assert.Equal(t, config.ErrNoValue, err)

	c.SetValue(uint64(100))
	val, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), val)

	c.ClearValue()
	_, err = c.Get(ctx)
	assert.Equal(t, config.ErrNoValue, err)

	unavailable := errors.New("unavailable")
	c.SetValue(uint64(8))
	c.SetError(unavailable)
	_, err = c.Get(ctx)
	assert.Equal(t, unavailable, err)

	c.SetError(nil)
	val, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), val)

	c.Shutdown()
	_, err = c.Get(ctx)
	assert.Equal(t, config.ErrShutdown, err)
}
