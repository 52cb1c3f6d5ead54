package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 5, 6}, 5))
	require.Equal(t, -1, FindIndex([]int{4, 5, 6}, 7))
	require.Equal(t, -1, FindIndex(nil, 7))
}

func TestWithout(t *testing.T) {
	in := []int{1, 2, 3, 2, 4}

	require.Equal(t, []int{1, 3, 4}, Without(in, 2))
	require.Equal(t, []int{1, 2, 3, 2, 4}, in, "Input should not be modified")
	require.Empty(t, Without(in, 1, 2, 3, 4))
}
