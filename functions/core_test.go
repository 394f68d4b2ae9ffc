package functions

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/materials-algorithms/common"
)

func TestSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, Sigmoid(0))
	assert.InDelta(t, 0.7310585786, Sigmoid(1), 1e-10)
	assert.InDelta(t, 1-Sigmoid(2.5), Sigmoid(-2.5), 1e-15)
	assert.Equal(t, 0.0, Sigmoid(-1000))
	assert.Equal(t, 1.0, Sigmoid(1000))
}

func TestFactorial(t *testing.T) {
	for n, want := range []float64{1, 1, 2, 6, 24, 120, 720} {
		got, err := Factorial(n)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := Factorial(-1)
	assert.True(t, errors.Is(err, common.ErrorDomain))
}

func TestNCombK(t *testing.T) {
	for _, tc := range []struct {
		n, k int
		want float64
	}{
		{5, 0, 1},
		{5, 5, 1},
		{5, 2, 10},
		{10, 3, 120},
		{52, 5, 2598960},
		{60, 30, 118264581564861424},
	} {
		got, err := NCombK(tc.n, tc.k)
		require.NoError(t, err)
		assert.InEpsilon(t, tc.want, got, 1e-12, "%d comb %d", tc.n, tc.k)
	}

	// symmetry
	a, _ := NCombK(20, 7)
	b, _ := NCombK(20, 13)
	assert.Equal(t, a, b)

	for _, tc := range [][2]int{{-1, 0}, {3, -1}, {3, 4}} {
		got, err := NCombK(tc[0], tc[1])
		assert.True(t, errors.Is(err, common.ErrorDomain))
		assert.True(t, math.IsNaN(got))
	}
}
