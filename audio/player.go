package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/parameter"
	"github.com/lixenwraith/hitscan/status"
	"github.com/lixenwraith/hitscan/vmath"
)

// Output is the device a mixer drains into
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// speakerOutput plays through the system speaker
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock() { speaker.Lock() }
func (speakerOutput) Unlock() { speaker.Unlock() }
func (speakerOutput) Close() { speaker.Close() }

// SpeakerOutput returns the system speaker output
func SpeakerOutput() Output {
	return speakerOutput{}
}

// CuePlayer synthesizes weapon cues and mixes them into an output
// Implements weapon.AudioCue; PlayAt is safe from any goroutine
type CuePlayer struct {
	mu       sync.Mutex
	config   *Config
	output   Output
	mixer    *beep.Mixer
	rate     beep.SampleRate
	listener Listener
	seed     int64

	running atomic.Bool
	muted   atomic.Bool

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
}

// NewCuePlayer creates a player; out nil selects the system speaker
func NewCuePlayer(cfg *Config, out Output, reg *status.Registry) *CuePlayer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if out == nil {
		out = SpeakerOutput()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	p := &CuePlayer{
		config:      cfg,
		output:      out,
		mixer:       &beep.Mixer{},
		rate:        beep.SampleRate(cfg.SampleRate),
		listener:    Listener{Right: vmath.AxisX},
		seed:        time.Now().UnixNano(),
		statPlayed:  reg.Ints.Get("audio.played"),
		statDropped: reg.Ints.Get("audio.dropped"),
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the output and attaches the mixer
func (p *CuePlayer) Start() error {
	if p.running.Load() {
		return fmt.Errorf("cue player already running")
	}
	if err := p.output.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio output init: %w", err)
	}
	p.output.Play(p.mixer)
	p.running.Store(true)
	return nil
}

// Stop clears pending cues and closes the output
func (p *CuePlayer) Stop() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	p.output.Lock()
	p.mixer.Clear()
	p.output.Unlock()
	p.output.Close()
}

// SetListener moves the ear used for attenuation and panning
func (p *CuePlayer) SetListener(l Listener) {
	p.mu.Lock()
	p.listener = l
	p.mu.Unlock()
}

// PlayAt implements weapon.AudioCue
// Cues are dropped while stopped, muted, or out of hearing range
func (p *CuePlayer) PlayAt(cue core.SoundType, location vmath.Vec3F) {
	if !p.running.Load() || p.muted.Load() {
		p.statDropped.Add(1)
		return
	}
	s, ok := p.Prepare(cue, location)
	if !ok {
		p.statDropped.Add(1)
		return
	}

	p.output.Lock()
	p.mixer.Add(s)
	p.output.Unlock()
	p.statPlayed.Add(1)
}

// Prepare builds the attenuated, panned streamer for a cue without playing it
func (p *CuePlayer) Prepare(cue core.SoundType, location vmath.Vec3F) (beep.Streamer, bool) {
	if cue < 0 || cue >= core.SoundTypeCount {
		return nil, false
	}

	p.mu.Lock()
	listener := p.listener
	gain := listener.Gain(location, p.config, p.config.CueVolumes[cue])
	p.seed++
	seed := p.seed
	p.mu.Unlock()

	if gain <= 0 {
		return nil, false
	}
	s := CueStreamer(cue, p.rate, seed)
	if s == nil {
		return nil, false
	}
	return &effects.Pan{Streamer: newVolume(s, gain), Pan: listener.Pan(location)}, true
}

// ToggleMute flips mute state, returns true if now audible
func (p *CuePlayer) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return !muted
}

// IsMuted returns current mute state
func (p *CuePlayer) IsMuted() bool {
	return p.muted.Load()
}

// SetVolume updates master volume (0.0-1.0)
func (p *CuePlayer) SetVolume(vol float64) {
	p.mu.Lock()
	p.config.MasterVolume = clampVolume(vol)
	p.mu.Unlock()
}

// Stats returns played and dropped cue counts
func (p *CuePlayer) Stats() (played, dropped int64) {
	return p.statPlayed.Load(), p.statDropped.Load()
}
