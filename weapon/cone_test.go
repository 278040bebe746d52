package weapon_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/hitscan/weapon"
	"github.com/lixenwraith/hitscan/weapon/mocks"
)

func newTestCone(t *testing.T, cfg weapon.Config, indicator weapon.ConeIndicator) (*weapon.State, *weapon.Cone) {
	t.Helper()
	cfg, err := cfg.Normalize()
	require.NoError(t, err)
	state := weapon.NewState(cfg)
	return state, weapon.NewCone(state, indicator, rand.New(rand.NewSource(42)), cfg.Sampling)
}

func TestStartAimingResetsRadius(t *testing.T) {
	state, cone := newTestCone(t, weapon.DefaultConfig(), nil)

	cone.StartAiming()
	cone.AdvanceCone(2.0)
	require.Less(t, state.CurrentBaseRadius, state.BaseRadius)

	cone.StopAiming()
	cone.StartAiming()
	assert.True(t, state.IsAiming)
	assert.Equal(t, state.BaseRadius, state.CurrentBaseRadius)
}

func TestAdvanceConeIdleWhenNotAiming(t *testing.T) {
	state, cone := newTestCone(t, weapon.DefaultConfig(), nil)

	cone.AdvanceCone(1.0)
	assert.Equal(t, state.BaseRadius, state.CurrentBaseRadius)
}

func TestAdvanceConeScenario(t *testing.T) {
	cfg := weapon.DefaultConfig()
	cfg.BaseRadius, cfg.MinBaseRadius, cfg.ShrinkSpeed = 310, 200, 5
	state, cone := newTestCone(t, cfg, nil)

	cone.StartAiming()
	cone.AdvanceCone(1.0)

	want := 200 + 110*math.Exp(-5)
	assert.InDelta(t, want, state.CurrentBaseRadius, 1e-9)
	assert.Less(t, state.CurrentBaseRadius, 310.0)
	assert.Greater(t, state.CurrentBaseRadius, 200.0)
}

func TestAdvanceConeStepGranularity(t *testing.T) {
	steps := []struct {
		name string
		dts  []float64
	}{
		{"single", []float64{1.0}},
		{"halves", []float64{0.5, 0.5}},
		{"60fps", repeat(1.0/60, 60)},
		{"240fps", repeat(1.0/240, 240)},
		{"ragged", []float64{0.01, 0.3, 0.09, 0.25, 0.35}},
	}

	var ref float64
	for i, tc := range steps {
		state, cone := newTestCone(t, weapon.DefaultConfig(), nil)
		cone.StartAiming()
		for _, dt := range tc.dts {
			cone.AdvanceCone(dt)
		}
		if i == 0 {
			ref = state.CurrentBaseRadius
			continue
		}
		assert.InDelta(t, ref, state.CurrentBaseRadius, 1e-9, tc.name)
	}
}

func TestAdvanceConeStaysInBounds(t *testing.T) {
	state, cone := newTestCone(t, weapon.DefaultConfig(), nil)
	cone.StartAiming()

	prev := state.CurrentBaseRadius
	for _, dt := range []float64{0.016, 0.5, 3, 100, 1e6, 0.016} {
		cone.AdvanceCone(dt)
		r := state.CurrentBaseRadius
		assert.GreaterOrEqual(t, r, state.MinBaseRadius)
		assert.LessOrEqual(t, r, state.BaseRadius)
		assert.LessOrEqual(t, r, prev)
		prev = r
	}
	assert.Equal(t, state.MinBaseRadius, state.CurrentBaseRadius)
}

func TestAdvanceConeIgnoresInvalidStep(t *testing.T) {
	state, cone := newTestCone(t, weapon.DefaultConfig(), nil)
	cone.StartAiming()

	cone.AdvanceCone(-1)
	cone.AdvanceCone(math.NaN())
	cone.AdvanceCone(0)
	assert.Equal(t, state.BaseRadius, state.CurrentBaseRadius)
}

func TestMinRadiusAboveBaseIsClamped(t *testing.T) {
	cfg := weapon.DefaultConfig()
	cfg.BaseRadius, cfg.MinBaseRadius = 100, 250
	state, cone := newTestCone(t, cfg, nil)

	assert.Equal(t, 100.0, state.MinBaseRadius)
	cone.StartAiming()
	cone.AdvanceCone(10)
	assert.Equal(t, 100.0, state.CurrentBaseRadius)
}

func TestSampleConeOffsetInsideDisk(t *testing.T) {
	for _, policy := range []weapon.SamplingPolicy{weapon.SamplingCenterBiased, weapon.SamplingUniformArea} {
		t.Run(policy.String(), func(t *testing.T) {
			cfg := weapon.DefaultConfig()
			cfg.Sampling = policy
			state, cone := newTestCone(t, cfg, nil)
			cone.StartAiming()
			cone.AdvanceCone(0.3)

			r := state.CurrentBaseRadius
			for i := 0; i < 10000; i++ {
				x, z := cone.SampleConeOffset()
				if x*x+z*z > r*r*(1+1e-12) {
					t.Fatalf("sample %d outside disk: (%v, %v) radius %v", i, x, z, r)
				}
			}
		})
	}
}

func TestSampleConeOffsetCenterBias(t *testing.T) {
	// Radius drawn uniformly puts half the shots inside R/2; area-uniform puts a quarter there
	count := func(policy weapon.SamplingPolicy) int {
		cfg := weapon.DefaultConfig()
		cfg.Sampling = policy
		state, cone := newTestCone(t, cfg, nil)
		half := state.CurrentBaseRadius / 2
		inner := 0
		for i := 0; i < 20000; i++ {
			x, z := cone.SampleConeOffset()
			if math.Hypot(x, z) < half {
				inner++
			}
		}
		return inner
	}

	assert.InDelta(t, 10000, count(weapon.SamplingCenterBiased), 600)
	assert.InDelta(t, 5000, count(weapon.SamplingUniformArea), 600)
}

func TestSampleConeOffsetZeroRadius(t *testing.T) {
	cfg := weapon.DefaultConfig()
	cfg.BaseRadius, cfg.MinBaseRadius = 0, 0
	_, cone := newTestCone(t, cfg, nil)

	x, z := cone.SampleConeOffset()
	assert.Zero(t, x)
	assert.Zero(t, z)
}

func TestConeIndicatorLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	indicator := mocks.NewMockConeIndicator(ctrl)

	gomock.InOrder(
		indicator.EXPECT().SetVisible(false),
		indicator.EXPECT().SetVisible(true),
		indicator.EXPECT().SetScale(310.0/200, 1000.0/100, 310.0/200),
		indicator.EXPECT().SetScale(gomock.Any(), 1000.0/100, gomock.Any()),
		indicator.EXPECT().SetVisible(false),
	)

	_, cone := newTestCone(t, weapon.DefaultConfig(), indicator)
	cone.StartAiming()
	cone.AdvanceCone(0.1)
	cone.StopAiming()
	// Not aiming: no further scale updates
	cone.AdvanceCone(0.1)
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
