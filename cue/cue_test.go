package cue

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain reads s until it ends or limit samples were produced
func drain(s beep.Streamer, limit int) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, w := range []WaveType{WaveSine, WaveTriangle, WaveSquare} {
		osc := NewOscillator(440, 100*time.Millisecond, w, rate)
		n, peak := drain(osc, 1<<20)
		assert.Equal(t, rate.N(100*time.Millisecond), n, "wave %d", w)
		assert.LessOrEqual(t, peak, 1.0)
		assert.Greater(t, peak, 0.5)
		assert.NoError(t, osc.Err())
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, 44100)
	samples := make([][2]float64, 64)
	n, ok := osc.Stream(samples)
	require.True(t, ok)
	for i := 0; i < n; i++ {
		v := samples[i][0]
		assert.True(t, v == 1 || v == -1, "sample %d = %f", i, v)
		assert.Equal(t, v, samples[i][1])
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	dur := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, dur, WaveSquare, rate), dur, 10*time.Millisecond, 20*time.Millisecond, rate)

	// Zero frequency square holds at +1, exposing the envelope directly
	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	require.Equal(t, 100, n)

	assert.Equal(t, 0.0, samples[0][0])
	assert.InDelta(t, 0.5, samples[5][0], 1e-9)
	assert.Equal(t, 1.0, samples[50][0])
	assert.Less(t, samples[95][0], samples[85][0])
	assert.Greater(t, samples[99][0], 0.0)
}

func TestEnvelopeClampsOversizedPhases(t *testing.T) {
	rate := beep.SampleRate(1000)
	dur := 10 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, dur, WaveSquare, rate), dur, time.Second, time.Second, rate)

	n, peak := drain(env, 1000)
	assert.Equal(t, 10, n)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestPitchRisesWithIndex(t *testing.T) {
	assert.Equal(t, DefaultBaseFreq, Pitch(DefaultBaseFreq, 0))
	assert.Equal(t, DefaultBaseFreq, Pitch(DefaultBaseFreq, -3))
	assert.InDelta(t, DefaultBaseFreq*2, Pitch(DefaultBaseFreq, 5), 1e-9)

	for i := 1; i < 12; i++ {
		assert.Greater(t, Pitch(440, i), Pitch(440, i-1))
	}
}

func TestChimeAudibleAndBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 8000

	_, peak := drain(Chime(cfg, 2), cfg.SampleRate/10)
	assert.Greater(t, peak, 0.0)
	assert.LessOrEqual(t, peak, cfg.Volume+1e-9)
}

func TestChimeSilentAtZeroVolume(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 8000
	cfg.Volume = 0

	_, peak := drain(Chime(cfg, 0), cfg.SampleRate/10)
	assert.Equal(t, 0.0, peak)
}

func TestConfigNormalized(t *testing.T) {
	c := Config{Volume: 4}.Normalized()
	assert.Equal(t, DefaultSampleRate, c.SampleRate)
	assert.Equal(t, DefaultBaseFreq, c.BaseFreq)
	assert.Equal(t, DefaultDuration, c.Duration)
	assert.Equal(t, 1.0, c.Volume)
}
