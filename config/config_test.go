package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hitscan/parameter"
	"github.com/lixenwraith/hitscan/weapon"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	wc, err := cfg.WeaponConfig()
	require.NoError(t, err)
	assert.Equal(t, weapon.DefaultConfig(), wc)

	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, parameter.AudioSampleRate, cfg.Audio.SampleRate)
	assert.False(t, cfg.Journal.Enabled)
	assert.False(t, cfg.Log.Debug)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, parameter.SandboxTPS, cfg.Sandbox.TPS)
}

func TestDefaultMatchesLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, cfg, Default())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "hitscan.toml", `
[weapon]
name = "rifle"
ammo = 30
fireRate = 4
sampling = "uniform_area"

[journal]
enabled = true
path = "shots.db"

[log]
debug = true
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	wc, err := cfg.WeaponConfig()
	require.NoError(t, err)
	assert.Equal(t, "rifle", wc.Name)
	assert.Equal(t, 30, wc.Ammo)
	assert.Equal(t, 4.0, wc.FireRate)
	assert.Equal(t, weapon.SamplingUniformArea, wc.Sampling)
	assert.Equal(t, parameter.WeaponDefaultDamage, wc.Damage, "unset keys keep defaults")

	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "shots.db", cfg.Journal.Path)

	lc := cfg.LogConfig()
	assert.True(t, lc.Debug)
	assert.Equal(t, "debug", lc.Level)
}

func TestLoadJSONClampsMinRadius(t *testing.T) {
	path := writeFile(t, "hitscan.json", `{"weapon": {"baseRadius": 150, "minBaseRadius": 400}}`)
	cfg, err := Load(path)
	require.NoError(t, err)

	wc, err := cfg.WeaponConfig()
	require.NoError(t, err)
	assert.Equal(t, 150.0, wc.BaseRadius)
	assert.Equal(t, 150.0, wc.MinBaseRadius)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HITSCAN_WEAPON_FIRERATE", "2.5")
	t.Setenv("HITSCAN_AUDIO_ENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Weapon.FireRate)
	assert.False(t, cfg.Audio.Enabled)
	assert.False(t, cfg.AudioConfig().Enabled)
}

func TestLoadRejectsInvalidWeapon(t *testing.T) {
	path := writeFile(t, "bad.yaml", "weapon:\n  fireRate: 0\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, weapon.ErrInvalidFireRate)

	path = writeFile(t, "bad_policy.yaml", "weapon:\n  sampling: gaussian\n")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestLoadOptionalFallsBackOnMissingFile(t *testing.T) {
	t.Setenv("HITSCAN_WEAPON_AMMO", "42")

	cfg, missing, err := LoadOptional(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.True(t, missing)
	assert.Equal(t, 42, cfg.Weapon.Ammo)
	assert.Equal(t, Default().Weapon.Damage, cfg.Weapon.Damage)
}

func TestLoadOptionalKeepsParseErrors(t *testing.T) {
	path := writeFile(t, "broken.toml", "[weapon\nammo = ")

	_, missing, err := LoadOptional(path)
	require.Error(t, err)
	assert.False(t, missing)
	assert.False(t, IsNotFound(err))
}

func TestAudioConfigKeepsCueVolumes(t *testing.T) {
	cfg := Default()
	cfg.Audio.Volume = 0.25
	cfg.Audio.SampleRate = 0

	ac := cfg.AudioConfig()
	assert.Equal(t, 0.25, ac.MasterVolume)
	assert.Equal(t, parameter.AudioSampleRate, ac.SampleRate)
	assert.Equal(t, 1.0, ac.CueVolumes[0])
}
