// SPDX-License-Identifier: EPL-2.0

package fixture

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/wavforge/internal/wavetest"
)

// quickConfig keeps run tests fast: 400 frames per fixture, enough to cover
// the NaN and Inf windows of the float edge case.
func quickConfig(t *testing.T) Config {
	t.Helper()

	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()
	cfg.SampleRate = 8000
	cfg.Duration = 0.05
	return cfg
}

func TestRun_FullSet(t *testing.T) {
	t.Parallel()

	cfg := quickConfig(t)
	res, err := Run(cfg)
	require.NoError(t, err)

	assert.Len(t, res.Written, 22+24, "22 well-formed plus 24 malformed")
	assert.Empty(t, res.Failed)
	assert.Len(t, res.Manifest, 22, "malformed files stay out of the manifest")

	for _, name := range res.Written {
		info, err := os.Stat(filepath.Join(cfg.OutputDir, name))
		require.NoError(t, err, name)
		if name != "evil_empty_file.wav" {
			assert.Positive(t, info.Size(), name)
		}
	}

	// The persisted manifest matches the returned one.
	persisted, err := ReadManifest(filepath.Join(cfg.OutputDir, ManifestName))
	require.NoError(t, err)
	assert.Equal(t, res.Manifest, persisted)

	_, hasEvil := persisted["evil_small_riff.wav"]
	assert.False(t, hasEvil)
}

func TestRun_Verify(t *testing.T) {
	t.Parallel()

	cfg := quickConfig(t)
	cfg.Verify = true
	cfg.SkipEvil = true

	res, err := Run(cfg)
	require.NoError(t, err)
	assert.Len(t, res.Written, 22)
}

func TestRun_SkipEvil(t *testing.T) {
	t.Parallel()

	cfg := quickConfig(t)
	cfg.SkipEvil = true

	res, err := Run(cfg)
	require.NoError(t, err)

	for _, name := range res.Written {
		assert.NotContains(t, name, "evil", name)
	}
}

func TestRun_FilterAppliesToEvil(t *testing.T) {
	t.Parallel()

	cfg := quickConfig(t)
	cfg.Only = "truncated"

	res, err := Run(cfg)
	require.NoError(t, err)

	require.Len(t, res.Written, 1)
	assert.Equal(t, "evil_truncated.wav", res.Written[0])
	assert.Empty(t, res.Manifest)
}

func TestRun_CompandedFixtures(t *testing.T) {
	t.Parallel()

	cfg := quickConfig(t)
	cfg.SkipEvil = true
	cfg.Verify = true

	res, err := Run(cfg)
	require.NoError(t, err)

	alaw := res.Manifest["sine_alaw_8bit_le_mono.wav"]
	assert.Equal(t, 6, alaw.FormatTag)
	assert.Equal(t, 8, alaw.BitsPerSample)

	ulaw := res.Manifest["sine_ulaw_8bit_le_stereo.wav"]
	assert.Equal(t, 7, ulaw.FormatTag)
	assert.Equal(t, 2, ulaw.Channels)

	// One compressed byte per sample.
	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "sine_ulaw_8bit_le_stereo.wav"))
	require.NoError(t, err)
	assert.Len(t, wavetest.Chunk(t, data, binary.LittleEndian, "data"), 400*2)
}

// TestRun_NaNInfBytes confirms the float edge-case fixture carries real NaN
// and +Inf bit patterns at its documented frame windows.
func TestRun_NaNInfBytes(t *testing.T) {
	t.Parallel()

	cfg := quickConfig(t)
	cfg.SkipEvil = true
	cfg.Only = "nan_inf"

	res, err := Run(cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"exotic_float32_nan_inf.wav"}, res.Written)

	file, err := os.ReadFile(filepath.Join(cfg.OutputDir, "exotic_float32_nan_inf.wav"))
	require.NoError(t, err)

	data := wavetest.Chunk(t, file, binary.LittleEndian, "data")
	sample := func(frame int) float64 {
		bits := binary.LittleEndian.Uint32(data[frame*4:])
		return float64(math.Float32frombits(bits))
	}

	assert.Zero(t, sample(99))
	for frame := 100; frame < 110; frame++ {
		assert.True(t, math.IsNaN(sample(frame)), "frame %d", frame)
	}
	assert.Zero(t, sample(110))
	for frame := 200; frame < 210; frame++ {
		assert.True(t, math.IsInf(sample(frame), 1), "frame %d", frame)
	}
	assert.Zero(t, sample(210))
}

func TestRun_BadOutputDir(t *testing.T) {
	t.Parallel()

	cfg := quickConfig(t)

	// A regular file where the output directory should be.
	blocked := filepath.Join(cfg.OutputDir, "occupied")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))
	cfg.OutputDir = blocked

	_, err := Run(cfg)
	assert.Error(t, err)
}
