package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice_NilYieldsEmpty(t *testing.T) {
	out := MapSlice[int, string](nil, strconv.Itoa)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestMapSliceWithError(t *testing.T) {
	out, err := MapSliceWithError([]string{"1", "2"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, out)

	_, err = MapSliceWithError([]string{"1", "x"}, func(s string) (int, error) {
		if s == "x" {
			return 0, errors.New("bad")
		}
		return strconv.Atoi(s)
	})
	assert.Error(t, err)
}
