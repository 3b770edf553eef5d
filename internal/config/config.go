package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 60.0
	DefaultTheta    = 0.2
	DefaultGamma    = 0.9
	DefaultQuality  = 2.0
	DefaultDrive    = 2.0 / 3.0
	DefaultSpeed    = 30.0
	DefaultAngle    = 0.785398 // 45 degrees
	DefaultRadius   = 1.0
)

type Config struct {
	Model      string           `yaml:"model"`
	Integrator string           `yaml:"integrator"`
	Dt         float64          `yaml:"dt"`
	Duration   float64          `yaml:"duration"`
	Seed       int64            `yaml:"seed"`
	InitState  InitStateConfig  `yaml:"init_state"`
	Pendulum   PendulumConfig   `yaml:"pendulum"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Orbit      OrbitConfig      `yaml:"orbit"`
}

type InitStateConfig struct {
	Theta float64 `yaml:"theta"`
	Omega float64 `yaml:"omega"`
}

type PendulumConfig struct {
	Omega0    float64 `yaml:"omega0"`
	Quality   float64 `yaml:"quality"`
	Gamma     float64 `yaml:"gamma"`
	DriveFreq float64 `yaml:"drive_freq"`
}

type ProjectileConfig struct {
	Speed float64 `yaml:"speed"`
	Angle float64 `yaml:"angle"`
	Drag  float64 `yaml:"drag"`
	Mass  float64 `yaml:"mass"`
}

type OrbitConfig struct {
	Mu     float64 `yaml:"mu"`
	Radius float64 `yaml:"radius"`
	Ecc    float64 `yaml:"ecc"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      "driven_pendulum",
		Integrator: "rk4",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		InitState:  InitStateConfig{Theta: DefaultTheta},
		Pendulum: PendulumConfig{
			Omega0:    1.0,
			Quality:   DefaultQuality,
			Gamma:     DefaultGamma,
			DriveFreq: DefaultDrive,
		},
		Projectile: ProjectileConfig{
			Speed: DefaultSpeed,
			Angle: DefaultAngle,
			Mass:  1.0,
		},
		Orbit: OrbitConfig{Mu: 1.0, Radius: DefaultRadius},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetInitState builds the initial state vector for the configured model.
func (c *Config) GetInitState() []float64 {
	switch c.Model {
	case "projectile":
		// Position and velocity filled in by the model's launch helper;
		// config carries speed/angle separately.
		return nil
	case "twobody":
		return nil
	default:
		return []float64{c.InitState.Theta, c.InitState.Omega}
	}
}
