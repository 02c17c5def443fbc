package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffnet-ml/ffnet/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
layers:
  - activation: tanh
    inputs: 2
    outputs: 8
  - activation: sigmoid
    inputs: 8
    outputs: 1
epochs: 50
batch_size: 16
learning_rate: 0.05
seed: 99
shuffle: true
log_every: 5
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Len(t, cfg.Layers, 2)
	assert.Equal(t, "tanh", cfg.Layers[0].Activation)
	assert.Equal(t, 50, cfg.Epochs)
	assert.Equal(t, 16, cfg.BatchSize)
	assert.InDelta(t, 0.05, cfg.LearningRate, 1e-6)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 5, cfg.LogEvery)
}

func TestLoadRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"unknown activation", `
layers:
  - activation: softmax
    inputs: 2
    outputs: 1
`},
		{"non-composing chain", `
layers:
  - activation: relu
    inputs: 2
    outputs: 4
  - activation: sigmoid
    inputs: 5
    outputs: 1
`},
		{"zero epochs", `
layers:
  - activation: sigmoid
    inputs: 2
    outputs: 1
epochs: 0
`},
		{"negative batch size", `
layers:
  - activation: sigmoid
    inputs: 2
    outputs: 1
batch_size: -4
`},
		{"not yaml", "{{{"},
	}

	for _, tc := range cases {
		_, err := config.Load(writeConfig(t, tc.body))
		assert.Error(t, err, tc.name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.ApplyOverrides(config.Overrides{Epochs: 5, LearningRate: 0.2})

	assert.Equal(t, 5, cfg.Epochs)
	assert.InDelta(t, 0.2, cfg.LearningRate, 1e-6)
	assert.Equal(t, 32, cfg.BatchSize, "untouched fields keep defaults")
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestBuildNetwork(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	net := cfg.BuildNetwork()
	assert.Equal(t, 2, net.InputSize())
	assert.Equal(t, 1, net.OutputSize())
	assert.Equal(t, len(cfg.Layers), net.NumLayers())

	// Same seed, same weights.
	a := cfg.BuildNetwork().Predict([]float32{0.3, -0.3})
	b := cfg.BuildNetwork().Predict([]float32{0.3, -0.3})
	assert.Equal(t, a, b)
}
