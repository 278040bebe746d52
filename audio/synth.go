package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/parameter"
)

// noise is a finite white noise burst
type noise struct {
	rng      *rand.Rand
	position int
	duration int
}

func newNoise(duration time.Duration, rate beep.SampleRate, seed int64) beep.Streamer {
	return &noise{
		rng:      rand.New(rand.NewSource(seed)),
		duration: rate.N(duration),
	}
}

func (o *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := o.rng.Float64()*2 - 1
		samples[i][0] = val
		samples[i][1] = val
		o.position++
	}
	return len(samples), true
}

func (o *noise) Err() error { return nil }

// sweep is a sine glide between two frequencies, exponential in pitch
type sweep struct {
	from, to float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

func newSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.duration)
		freq := s.from * math.Pow(s.to/s.from, progress)

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies linear attack and release over a fixed length
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with linear gain; zero gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// createFireSound is a noise crack over a low thump
func createFireSound(rate beep.SampleRate, seed int64) beep.Streamer {
	d := parameter.FireSoundDuration
	crack := newEnvelope(newNoise(d, rate, seed), d, parameter.FireSoundAttack, d-parameter.FireSoundAttack, rate)

	parts := []beep.Streamer{newVolume(crack, 0.8)}
	if thump, err := generators.SineTone(rate, 90); err == nil {
		shaped := newEnvelope(beep.Take(rate.N(d), thump), d, parameter.FireSoundAttack, d/2, rate)
		parts = append(parts, newVolume(shaped, 0.5))
	}
	return beep.Mix(parts...)
}

// createDryFireSound is a short square click
func createDryFireSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.DryFireSoundDuration
	tone, err := generators.SquareTone(rate, parameter.DryFireSoundFreq)
	if err != nil {
		return nil
	}
	return newEnvelope(beep.Take(rate.N(d), tone), d, time.Millisecond, d/2, rate)
}

// createMissSound is a falling whiz for rounds that hit nothing
func createMissSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.MissSoundDuration
	glide := newSweep(parameter.MissSoundFreqStart, parameter.MissSoundFreqEnd, d, rate)
	return newEnvelope(glide, d, d/6, d/2, rate)
}

// CueStreamer builds a unity-gain streamer for a cue, nil for unknown cues
func CueStreamer(cue core.SoundType, rate beep.SampleRate, seed int64) beep.Streamer {
	switch cue {
	case core.SoundFire:
		return createFireSound(rate, seed)
	case core.SoundDryFire:
		return createDryFireSound(rate)
	case core.SoundMiss:
		return createMissSound(rate)
	default:
		return nil
	}
}
