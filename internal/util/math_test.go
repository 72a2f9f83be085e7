package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		v    int
		want int
	}{
		{"below", -3, 0},
		{"at low", 0, 0},
		{"inside", 4, 4},
		{"at high", 10, 10},
		{"above", 11, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.v, 0, 10))
		})
	}
}

func TestClamp_NaNSaturatesHigh(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(math.NaN(), -1.0, 1.0))
}

func TestClamp_Infinities(t *testing.T) {
	assert.Equal(t, -1.0, Clamp(math.Inf(-1), -1.0, 1.0))
	assert.Equal(t, 1.0, Clamp(math.Inf(1), -1.0, 1.0))
}
