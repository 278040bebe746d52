package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/event"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func sumInt(t *testing.T, m metricdata.Metrics) int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "%s is not an int64 sum", m.Name)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestMeterCountsEvents(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := New(provider)
	require.NoError(t, err)

	emit := func(typ event.EventType, payload any) {
		m.Emit(event.GameEvent{Type: typ, Weapon: "rifle", Payload: payload})
	}
	emit(event.EventWeaponFired, &event.WeaponFiredPayload{ConeRadius: 250})
	emit(event.EventWeaponFired, &event.WeaponFiredPayload{ConeRadius: 205})
	emit(event.EventShotHit, &event.ShotHitPayload{Distance: 300, Damage: 10})
	emit(event.EventShotMissed, &event.ShotMissedPayload{})
	emit(event.EventFireRejected, &event.FireRejectedPayload{Reason: core.RejectRateLimited})
	emit(event.EventFireRejected, &event.FireRejectedPayload{Reason: core.RejectRateLimited})
	emit(event.EventFireRejected, &event.FireRejectedPayload{Reason: core.RejectOutOfAmmo})
	emit(event.EventDamageUnattributed, &event.DamageUnattributedPayload{})
	emit(event.EventAimFallback, &event.AimFallbackPayload{})
	emit(event.EventAimStarted, &event.AimPayload{})

	got := collect(t, reader)
	assert.Equal(t, int64(2), sumInt(t, got["hitscan.shots.fired"]))
	assert.Equal(t, int64(1), sumInt(t, got["hitscan.shots.hit"]))
	assert.Equal(t, int64(1), sumInt(t, got["hitscan.shots.miss"]))
	assert.Equal(t, int64(3), sumInt(t, got["hitscan.shots.rejected"]))
	assert.Equal(t, int64(1), sumInt(t, got["hitscan.damage.unattributed"]))
	assert.Equal(t, int64(1), sumInt(t, got["hitscan.aim.fallback"]))

	rejected := got["hitscan.shots.rejected"].Data.(metricdata.Sum[int64])
	byReason := make(map[string]int64)
	for _, dp := range rejected.DataPoints {
		reason, ok := dp.Attributes.Value(attribute.Key("reason"))
		require.True(t, ok)
		byReason[reason.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{"rate_limited": 2, "out_of_ammo": 1}, byReason)

	hist, ok := got["hitscan.cone.radius"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)
	assert.InDelta(t, 455, hist.DataPoints[0].Sum, 1e-9)

	dmg, ok := got["hitscan.damage.applied"].Data.(metricdata.Sum[float64])
	require.True(t, ok)
	require.Len(t, dmg.DataPoints, 1)
	assert.Equal(t, 10.0, dmg.DataPoints[0].Value)
}

func TestMeterIgnoresMalformedPayload(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := New(provider)
	require.NoError(t, err)

	m.Emit(event.GameEvent{Type: event.EventFireRejected, Weapon: "rifle"})
	m.Emit(event.GameEvent{Type: event.EventWeaponFired, Weapon: "rifle"})

	got := collect(t, reader)
	_, hasRejected := got["hitscan.shots.rejected"]
	assert.False(t, hasRejected)
	assert.Equal(t, int64(1), sumInt(t, got["hitscan.shots.fired"]))
}

func TestTotals(t *testing.T) {
	provider, reader := NewManualProvider()
	m, err := New(provider)
	require.NoError(t, err)

	m.Emit(event.GameEvent{Type: event.EventShotHit, Weapon: "rifle", Payload: &event.ShotHitPayload{Damage: 10, Distance: 100}})
	m.Emit(event.GameEvent{Type: event.EventShotHit, Weapon: "pistol", Payload: &event.ShotHitPayload{Damage: 25, Distance: 50}})
	m.Emit(event.GameEvent{Type: event.EventWeaponFired, Weapon: "rifle", Payload: &event.WeaponFiredPayload{ConeRadius: 300}})

	totals, err := Totals(context.Background(), reader)
	require.NoError(t, err)
	assert.Equal(t, 2.0, totals["hitscan.shots.hit"], "summed across weapon attributes")
	assert.Equal(t, 35.0, totals["hitscan.damage.applied"])
	assert.Equal(t, 2.0, totals["hitscan.hit.distance"])
	assert.Equal(t, 1.0, totals["hitscan.cone.radius"])
}
