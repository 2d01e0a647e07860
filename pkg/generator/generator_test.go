package generator

import (
	"testing"

	"github.com/lintang-b-s/algotrace/pkg"
	"github.com/lintang-b-s/algotrace/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomArray(t *testing.T) {
	testCases := []struct {
		name     string
		n        int
		min, max int
		wantErr  error
	}{
		{name: "default", n: pkg.DEFAULT_ARRAY_SIZE, min: pkg.DEFAULT_ARRAY_MIN, max: pkg.DEFAULT_ARRAY_MAX},
		{name: "empty", n: 0, min: 1, max: 2},
		{name: "single value range", n: 10, min: 7, max: 7},
		{name: "negative range", n: 25, min: -20, max: -5},
		{name: "negative size", n: -1, min: 0, max: 1, wantErr: ErrInvalidSize},
		{name: "inverted range", n: 3, min: 9, max: 1, wantErr: ErrInvalidRange},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			values, err := RandomArray(tt.n, tt.min, tt.max, 2024)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, util.ErrBadParamInput)
				return
			}
			require.NoError(t, err)
			assert.Len(t, values, tt.n)
			for _, v := range values {
				assert.GreaterOrEqual(t, v, tt.min)
				assert.LessOrEqual(t, v, tt.max)
			}
		})
	}
}

func TestRandomArrayIsSeeded(t *testing.T) {
	first, err := RandomArray(100, 0, 1000, 5)
	require.NoError(t, err)
	second, err := RandomArray(100, 0, 1000, 5)
	require.NoError(t, err)
	other, err := RandomArray(100, 0, 1000, 6)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}
