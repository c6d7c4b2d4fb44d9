package binary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestI80F48(t *testing.T) {
	one := NewI80F48FromInt64(1)
	assert.Equal(t, I80F48{6: 1}, one)
	assert.True(t, one.Decimal().Equal(decimal.NewFromInt(1)))

	for _, tc := range []string{"0", "1.5", "-2.25", "1000000.125", "-0.000003814697265625"} {
		expected := decimal.RequireFromString(tc)

		v, err := NewI80F48FromDecimal(expected)
		require.NoError(t, err)
		assert.True(t, v.Decimal().Equal(expected), "%s != %s", v.Decimal(), expected)
	}

	minusOne := NewI80F48FromInt64(-1)
	assert.Equal(t, byte(0xff), minusOne[15])
	assert.Equal(t, "-1", minusOne.String())

	assert.True(t, I80F48{}.IsZero())
	assert.False(t, one.IsZero())

	_, err := NewI80F48FromDecimal(decimal.New(1, 30))
	assert.Error(t, err)
}

func TestQ64x64ToDecimal(t *testing.T) {
	half := uint128.New(1<<63, 0)
	assert.True(t, Q64x64ToDecimal(half).Equal(decimal.RequireFromString("0.5")))

	two := uint128.New(0, 2)
	assert.True(t, Q64x64ToDecimal(two).Equal(decimal.NewFromInt(2)))
}
