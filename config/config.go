package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/hitscan/audio"
	"github.com/lixenwraith/hitscan/logging"
	"github.com/lixenwraith/hitscan/parameter"
	"github.com/lixenwraith/hitscan/weapon"
)

// EnvPrefix namespaces environment overrides: HITSCAN_WEAPON_FIRERATE
const EnvPrefix = "HITSCAN"

// WeaponSection mirrors weapon.Config with file-friendly types
type WeaponSection struct {
	Name          string  `mapstructure:"name"`
	Ammo          int     `mapstructure:"ammo"`
	Damage        float64 `mapstructure:"damage"`
	FireRate      float64 `mapstructure:"fireRate"`
	MaxRange      float64 `mapstructure:"maxRange"`
	Recoil        float64 `mapstructure:"recoil"`
	BaseRadius    float64 `mapstructure:"baseRadius"`
	MinBaseRadius float64 `mapstructure:"minBaseRadius"`
	ConeHeight    float64 `mapstructure:"coneHeight"`
	ShrinkSpeed   float64 `mapstructure:"shrinkSpeed"`
	Sampling      string  `mapstructure:"sampling"`
}

type AudioSection struct {
	Enabled    bool    `mapstructure:"enabled"`
	Volume     float64 `mapstructure:"volume"`
	SampleRate int     `mapstructure:"sampleRate"`
}

type JournalSection struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"` // Empty keeps the journal in memory
}

type LogSection struct {
	Debug bool   `mapstructure:"debug"`
	Dir   string `mapstructure:"dir"`
	Level string `mapstructure:"level"`
}

type SandboxSection struct {
	TPS     int     `mapstructure:"tps"`
	Targets int     `mapstructure:"targets"`
	Depth   float64 `mapstructure:"depth"` // Range length shown on screen
}

// Config is the full application configuration
type Config struct {
	Weapon  WeaponSection  `mapstructure:"weapon"`
	Audio   AudioSection   `mapstructure:"audio"`
	Journal JournalSection `mapstructure:"journal"`
	Log     LogSection     `mapstructure:"log"`
	Sandbox SandboxSection `mapstructure:"sandbox"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("weapon.name", parameter.WeaponDefaultName)
	v.SetDefault("weapon.ammo", parameter.WeaponDefaultAmmo)
	v.SetDefault("weapon.damage", parameter.WeaponDefaultDamage)
	v.SetDefault("weapon.fireRate", parameter.WeaponDefaultFireRate)
	v.SetDefault("weapon.maxRange", parameter.WeaponDefaultMaxRange)
	v.SetDefault("weapon.recoil", parameter.WeaponDefaultRecoil)
	v.SetDefault("weapon.baseRadius", parameter.ConeDefaultBaseRadius)
	v.SetDefault("weapon.minBaseRadius", parameter.ConeDefaultMinBaseRadius)
	v.SetDefault("weapon.coneHeight", parameter.ConeDefaultHeight)
	v.SetDefault("weapon.shrinkSpeed", parameter.ConeDefaultShrinkSpeed)
	v.SetDefault("weapon.sampling", weapon.SamplingCenterBiased.String())

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.AudioMasterVolume)
	v.SetDefault("audio.sampleRate", parameter.AudioSampleRate)

	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", "logs/shots.db")

	v.SetDefault("log.debug", false)
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.level", "info")

	v.SetDefault("sandbox.tps", parameter.SandboxTPS)
	v.SetDefault("sandbox.targets", parameter.SandboxTargets)
	v.SetDefault("sandbox.depth", parameter.SandboxDepth)
}

// Load reads path (any viper format by extension) over the defaults and applies
// HITSCAN_ environment overrides; empty path uses defaults and environment only
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if _, err := cfg.WeaponConfig(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOptional loads path like Load, but a missing file falls back to defaults and environment
// missing reports whether the fallback was taken
func LoadOptional(path string) (cfg *Config, missing bool, err error) {
	cfg, err = Load(path)
	if err == nil || !IsNotFound(err) {
		return cfg, false, err
	}
	cfg, err = Load("")
	return cfg, true, err
}

// Default returns the configuration with no file and no environment
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// WeaponConfig converts the weapon section into a validated weapon.Config
func (c *Config) WeaponConfig() (weapon.Config, error) {
	policy, err := weapon.ParseSamplingPolicy(c.Weapon.Sampling)
	if err != nil {
		return weapon.Config{}, fmt.Errorf("weapon.sampling: %w", err)
	}

	wc := weapon.Config{
		Name:          c.Weapon.Name,
		Ammo:          c.Weapon.Ammo,
		Damage:        c.Weapon.Damage,
		FireRate:      c.Weapon.FireRate,
		MaxRange:      c.Weapon.MaxRange,
		Recoil:        c.Weapon.Recoil,
		BaseRadius:    c.Weapon.BaseRadius,
		MinBaseRadius: c.Weapon.MinBaseRadius,
		ConeHeight:    c.Weapon.ConeHeight,
		ShrinkSpeed:   c.Weapon.ShrinkSpeed,
		Sampling:      policy,
	}

	wc, err = wc.Normalize()
	if err != nil {
		return weapon.Config{}, fmt.Errorf("weapon: %w", err)
	}
	return wc, nil
}

// AudioConfig converts the audio section, keeping per-cue defaults
func (c *Config) AudioConfig() *audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	if c.Audio.SampleRate > 0 {
		ac.SampleRate = c.Audio.SampleRate
	}
	return ac
}

// LogConfig converts the log section
func (c *Config) LogConfig() logging.Config {
	return logging.Config{
		Debug: c.Log.Debug,
		Dir:   c.Log.Dir,
		Level: c.Log.Level,
	}
}

// IsNotFound reports whether err came from a missing config file
func IsNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}
