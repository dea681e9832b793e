package mathx_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtime/internal/mathx"
	"github.com/stretchr/testify/assert"
)

func TestFloorDivMod(t *testing.T) {
	cases := []struct {
		a, b, q, m int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{-86400, 86400, -1, 0},
		{-1, 86400, -1, 86399},
		{0, 5, 0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.q, mathx.FloorDiv(c.a, c.b), "FloorDiv(%d,%d)", c.a, c.b)
		assert.Equal(t, c.m, mathx.FloorMod(c.a, c.b), "FloorMod(%d,%d)", c.a, c.b)
		// identity a == b*q + m
		assert.Equal(t, c.a, c.b*c.q+c.m)
	}
}

func TestOverflowHelpers(t *testing.T) {
	_, o := mathx.Add64(math.MaxInt64, 1)
	assert.True(t, o)
	_, o = mathx.Add64(math.MinInt64, -1)
	assert.True(t, o)
	s, o := mathx.Add64(-5, 3)
	assert.False(t, o)
	assert.Equal(t, int64(-2), s)

	_, o = mathx.Sub64(math.MinInt64, 1)
	assert.True(t, o)
	_, o = mathx.Sub64(0, math.MinInt64)
	assert.True(t, o)

	_, o = mathx.Mul64(math.MinInt64, -1)
	assert.True(t, o)
	_, o = mathx.Mul64(1<<32, 1<<32)
	assert.True(t, o)
	p, o := mathx.Mul64(-3, 7)
	assert.False(t, o)
	assert.Equal(t, int64(-21), p)

	assert.Equal(t, int64(math.MaxInt64), mathx.SaturatingAdd64(math.MaxInt64-1, 5))
	assert.Equal(t, int64(math.MinInt64), mathx.SaturatingAdd64(math.MinInt64+1, -5))
	assert.Equal(t, int64(math.MinInt64), mathx.SaturatingMul64(1<<40, -(1<<40)))
	assert.Equal(t, int64(math.MaxInt64), mathx.SaturatingMul64(-(1<<40), -(1<<40)))
}

func TestClampAbs(t *testing.T) {
	assert.Equal(t, 5, mathx.Clamp(9, 0, 5))
	assert.Equal(t, 0, mathx.Clamp(-9, 0, 5))
	assert.Equal(t, 3, mathx.Clamp(3, 0, 5))
	assert.Equal(t, int32(4), mathx.Abs(int32(-4)))
}
