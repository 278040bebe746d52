package audio

import (
	"math"
	"sync"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/status"
	"github.com/lixenwraith/hitscan/vmath"
)

// fakeOutput captures the attached streamer instead of opening a device
type fakeOutput struct {
	mu       sync.Mutex
	attached beep.Streamer
	inits    int
	closed   bool
}

func (f *fakeOutput) Init(beep.SampleRate, int) error {
	f.inits++
	return nil
}

func (f *fakeOutput) Play(s beep.Streamer) { f.attached = s }
func (f *fakeOutput) Lock() { f.mu.Lock() }
func (f *fakeOutput) Unlock() { f.mu.Unlock() }
func (f *fakeOutput) Close() { f.closed = true }

// drain pulls a streamer to exhaustion and returns the peak amplitude and sample count
func drain(t *testing.T, s beep.Streamer, limit int) (peak float64, total int) {
	t.Helper()
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
				peak = math.Max(peak, math.Abs(v))
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return peak, total
}

func TestAttenuation(t *testing.T) {
	assert.Equal(t, 1.0, Attenuation(0, 500, 20000))
	assert.Equal(t, 1.0, Attenuation(500, 500, 20000))
	assert.InDelta(t, 0.5, Attenuation(1000, 500, 20000), 1e-12)
	assert.Zero(t, Attenuation(20001, 500, 20000))
	assert.Equal(t, 1.0, Attenuation(1e9, 0, 0))
}

func TestListenerPan(t *testing.T) {
	l := Listener{Right: vmath.AxisX}
	assert.InDelta(t, 1, l.Pan(vmath.Vec3F{X: 10}), 1e-12)
	assert.InDelta(t, -1, l.Pan(vmath.Vec3F{X: -10}), 1e-12)
	assert.InDelta(t, 0, l.Pan(vmath.Vec3F{Y: 10}), 1e-12)
	assert.Zero(t, l.Pan(vmath.Vec3F{}))
}

func TestCueStreamersTerminate(t *testing.T) {
	rate := beep.SampleRate(44100)
	for cue := core.SoundType(0); cue < core.SoundTypeCount; cue++ {
		s := CueStreamer(cue, rate, 1)
		require.NotNil(t, s, cue.String())

		peak, total := drain(t, s, rate.N(5e9))
		assert.Greater(t, peak, 0.0, cue.String())
		assert.Less(t, total, rate.N(5e8), "%s should be a short cue", cue)
	}
	assert.Nil(t, CueStreamer(core.SoundTypeCount, rate, 1))
}

func TestCuePlayerDropsWhenStopped(t *testing.T) {
	reg := status.NewRegistry()
	p := NewCuePlayer(DefaultConfig(), &fakeOutput{}, reg)

	p.PlayAt(core.SoundFire, vmath.Vec3F{})
	played, dropped := p.Stats()
	assert.Zero(t, played)
	assert.Equal(t, int64(1), dropped)
}

func TestCuePlayerMixesCues(t *testing.T) {
	out := &fakeOutput{}
	p := NewCuePlayer(DefaultConfig(), out, nil)
	require.NoError(t, p.Start())
	assert.Error(t, p.Start())
	require.NotNil(t, out.attached)

	p.PlayAt(core.SoundFire, vmath.Vec3F{Y: 10})
	p.PlayAt(core.SoundMiss, vmath.Vec3F{Y: 1e6}) // Out of hearing range
	p.PlayAt(core.SoundDryFire, vmath.Vec3F{X: -100})

	played, dropped := p.Stats()
	assert.Equal(t, int64(2), played)
	assert.Equal(t, int64(1), dropped)
	assert.Equal(t, 2, p.mixer.Len())

	peak, _ := drain(t, out.attached, 4096)
	assert.Greater(t, peak, 0.0)

	p.Stop()
	assert.True(t, out.closed)
	assert.Zero(t, p.mixer.Len())
}

func TestCuePlayerMute(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	p := NewCuePlayer(cfg, &fakeOutput{}, nil)
	require.NoError(t, p.Start())
	assert.True(t, p.IsMuted())

	p.PlayAt(core.SoundFire, vmath.Vec3F{})
	assert.Zero(t, p.mixer.Len())

	assert.True(t, p.ToggleMute())
	p.PlayAt(core.SoundFire, vmath.Vec3F{})
	assert.Equal(t, 1, p.mixer.Len())
}

func TestPrepareSilentVolume(t *testing.T) {
	p := NewCuePlayer(DefaultConfig(), &fakeOutput{}, nil)
	p.SetVolume(0)

	_, ok := p.Prepare(core.SoundFire, vmath.Vec3F{})
	assert.False(t, ok)

	p.SetVolume(2)
	_, ok = p.Prepare(core.SoundFire, vmath.Vec3F{})
	assert.True(t, ok)
	assert.Equal(t, 1.0, p.config.MasterVolume)
}
