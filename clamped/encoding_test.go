package clamped

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type stats struct {
	HP    Value[int, zeroHundred] `yaml:"hp" json:"hp"`
	Ratio Value[float64, unit]    `yaml:"ratio" json:"ratio"`
}

func TestYAML_DecodeClamps(t *testing.T) {
	var s stats
	require.NoError(t, yaml.Unmarshal([]byte("hp: 150\nratio: -2\n"), &s))

	assert.Equal(t, 100, s.HP.Get())
	assert.Equal(t, 0.0, s.Ratio.Get())
}

func TestYAML_MissingFieldIsZeroValue(t *testing.T) {
	var s struct {
		Level Value[int, fiveTen] `yaml:"level"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("{}"), &s))

	assert.Equal(t, 5, s.Level.Get())
}

func TestYAML_DecodeRejectsNonNumber(t *testing.T) {
	var s stats
	err := yaml.Unmarshal([]byte("hp: lots\n"), &s)
	require.Error(t, err)
}

func TestYAML_Encode(t *testing.T) {
	s := stats{HP: Must[int, zeroHundred](42), Ratio: Must[float64, unit](0.5)}

	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "hp: 42\nratio: 0.5\n", string(out))
}

func TestJSON_DecodeClamps(t *testing.T) {
	var s stats
	require.NoError(t, json.Unmarshal([]byte(`{"hp": -3, "ratio": 7.5}`), &s))

	assert.Equal(t, 0, s.HP.Get())
	assert.Equal(t, 1.0, s.Ratio.Get())
}

func TestJSON_Encode(t *testing.T) {
	var s stats
	s.HP.Set(64)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hp": 64, "ratio": 0}`, string(out))
}
