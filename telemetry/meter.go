package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/hitscan/event"
)

const instrumentationName = "github.com/lixenwraith/hitscan/telemetry"

// Meter translates weapon events into OpenTelemetry instruments
// Implements event.Sink
type Meter struct {
	fired        metric.Int64Counter
	rejected     metric.Int64Counter
	hit          metric.Int64Counter
	miss         metric.Int64Counter
	unattributed metric.Int64Counter
	fallback     metric.Int64Counter
	damage       metric.Float64Counter
	radius       metric.Float64Histogram
	distance     metric.Float64Histogram
}

// New registers instruments on provider; nil uses the global provider
func New(provider metric.MeterProvider) (*Meter, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	mt := provider.Meter(instrumentationName)

	m := &Meter{}
	var err error

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&m.fired, "hitscan.shots.fired", "Accepted discharges"},
		{&m.rejected, "hitscan.shots.rejected", "Trigger pulls refused by fire control"},
		{&m.hit, "hitscan.shots.hit", "Rays that struck a surface"},
		{&m.miss, "hitscan.shots.miss", "Rays that reached max range"},
		{&m.unattributed, "hitscan.damage.unattributed", "Hits whose damage had no instigator"},
		{&m.fallback, "hitscan.aim.fallback", "Degenerate aim vectors replaced by muzzle forward"},
	}
	for _, c := range counters {
		*c.dst, err = mt.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit("{shot}"))
		if err != nil {
			return nil, fmt.Errorf("failed to create %s counter: %w", c.name, err)
		}
	}

	m.damage, err = mt.Float64Counter(
		"hitscan.damage.applied",
		metric.WithDescription("Damage delivered to actors"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create damage counter: %w", err)
	}

	m.radius, err = mt.Float64Histogram(
		"hitscan.cone.radius",
		metric.WithDescription("Cone base radius at discharge"),
		metric.WithExplicitBucketBoundaries(0, 50, 100, 150, 200, 250, 300, 400, 600),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cone radius histogram: %w", err)
	}

	m.distance, err = mt.Float64Histogram(
		"hitscan.hit.distance",
		metric.WithDescription("Distance from muzzle to struck surface"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create hit distance histogram: %w", err)
	}

	return m, nil
}

// Emit implements event.Sink
func (m *Meter) Emit(ev event.GameEvent) {
	ctx := context.Background()
	weaponAttr := attribute.String("weapon", ev.Weapon)
	attrs := metric.WithAttributes(weaponAttr)

	switch ev.Type {
	case event.EventWeaponFired:
		m.fired.Add(ctx, 1, attrs)
		if p, ok := ev.Payload.(*event.WeaponFiredPayload); ok {
			m.radius.Record(ctx, p.ConeRadius, attrs)
		}

	case event.EventFireRejected:
		if p, ok := ev.Payload.(*event.FireRejectedPayload); ok {
			m.rejected.Add(ctx, 1, metric.WithAttributes(weaponAttr, attribute.String("reason", p.Reason.String())))
		}

	case event.EventShotHit:
		m.hit.Add(ctx, 1, attrs)
		if p, ok := ev.Payload.(*event.ShotHitPayload); ok {
			m.distance.Record(ctx, p.Distance, attrs)
			if p.Damage > 0 {
				m.damage.Add(ctx, p.Damage, attrs)
			}
		}

	case event.EventShotMissed:
		m.miss.Add(ctx, 1, attrs)

	case event.EventDamageUnattributed:
		m.unattributed.Add(ctx, 1, attrs)

	case event.EventAimFallback:
		m.fallback.Add(ctx, 1, attrs)
	}
}
