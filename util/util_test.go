package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"major": 1, "dorian": 2, "lydian": 3}
	assert.Equal(t, []string{"dorian", "lydian", "major"}, GetKeysSorted(m))
}

func TestMinMaxSum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Min(7, 3, 9))
	assert.Equal(9, Max(7, 3, 9))
	assert.Equal(19, Sum([]int{7, 3, 9}))
	assert.InDelta(1.0, Sum([]float64{0.25, 0.75}), 1e-12)
}

func TestMap(t *testing.T) {
	assert.Equal(t, []int{2, 4}, Map([]int{1, 2}, func(v int) int { return v * 2 }))
}
