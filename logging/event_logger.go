package logging

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hitscan/event"
	"github.com/lixenwraith/hitscan/vmath"
)

// EventLogger writes weapon events as structured log records
// Implements event.Sink
type EventLogger struct {
	logger   zerolog.Logger
	rejected zerolog.Logger
}

// NewEventLogger wraps logger; rejection records are burst-sampled
// since a held trigger produces one per tick
func NewEventLogger(logger zerolog.Logger) *EventLogger {
	return &EventLogger{
		logger: logger,
		rejected: logger.Sample(&zerolog.BurstSampler{
			Burst:       5,
			Period:      time.Second,
			NextSampler: &zerolog.BasicSampler{N: 50},
		}),
	}
}

func vec(e *zerolog.Event, key string, v vmath.Vec3F) *zerolog.Event {
	return e.Floats64(key, []float64{v.X, v.Y, v.Z})
}

// Emit implements event.Sink
func (l *EventLogger) Emit(ev event.GameEvent) {
	var e *zerolog.Event

	switch p := ev.Payload.(type) {
	case *event.FireRejectedPayload:
		e = l.rejected.Debug().
			Str("reason", p.Reason.String()).
			Int("ammo", p.Ammo).
			Float64("last_fire", p.LastFireTime).
			Float64("tbs", p.TimeBetweenShots).
			Float64("delta", ev.Time-p.LastFireTime)

	case *event.WeaponFiredPayload:
		e = l.logger.Info().
			Str("shot", p.ShotID.String()).
			Int("ammo", p.AmmoLeft).
			Float64("cone_radius", p.ConeRadius)
		e = vec(e, "origin", p.Origin)
		e = vec(e, "direction", p.Direction)

	case *event.ShotHitPayload:
		e = l.logger.Info().
			Str("shot", p.ShotID.String()).
			Uint64("actor", uint64(p.Actor)).
			Float64("distance", p.Distance).
			Float64("damage", p.Damage)
		e = vec(e, "location", p.Location)

	case *event.ShotMissedPayload:
		e = l.logger.Info().Str("shot", p.ShotID.String())
		e = vec(e, "end", p.End)

	case *event.DamageUnattributedPayload:
		e = l.logger.Error().
			Err(p.Err).
			Str("shot", p.ShotID.String()).
			Uint64("actor", uint64(p.Actor))

	case *event.AimFallbackPayload:
		e = l.logger.Warn().Str("shot", p.ShotID.String())

	case *event.AimPayload:
		e = l.logger.Debug().Float64("radius", p.Radius)

	case *event.ReloadPayload:
		e = l.logger.Info().Int("added", p.Added).Int("ammo", p.Ammo)

	default:
		e = l.logger.Debug()
	}

	e.Str("weapon", ev.Weapon).
		Float64("time", ev.Time).
		Msg(ev.Type.String())
}
