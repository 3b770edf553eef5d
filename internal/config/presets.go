package config

var Presets = map[string]map[string]*Config{
	"driven_pendulum": {
		"periodic": {
			Model: "driven_pendulum", Integrator: "rk4", Dt: 0.01, Duration: 120.0,
			InitState: InitStateConfig{Theta: 0.2},
			Pendulum:  PendulumConfig{Omega0: 1.0, Quality: 2.0, Gamma: 0.9, DriveFreq: 2.0 / 3.0},
		},
		"doubled": {
			Model: "driven_pendulum", Integrator: "rk4", Dt: 0.01, Duration: 240.0,
			InitState: InitStateConfig{Theta: 0.2},
			Pendulum:  PendulumConfig{Omega0: 1.0, Quality: 2.0, Gamma: 1.07, DriveFreq: 2.0 / 3.0},
		},
		"chaotic": {
			Model: "driven_pendulum", Integrator: "rk4", Dt: 0.005, Duration: 300.0,
			InitState: InitStateConfig{Theta: 0.2},
			Pendulum:  PendulumConfig{Omega0: 1.0, Quality: 2.0, Gamma: 1.5, DriveFreq: 2.0 / 3.0},
		},
	},
	"projectile": {
		"ideal": {
			Model: "projectile", Integrator: "rk4", Dt: 0.001, Duration: 10.0,
			Projectile: ProjectileConfig{Speed: 30.0, Angle: 0.785398, Drag: 0, Mass: 1.0},
		},
		"drag": {
			Model: "projectile", Integrator: "rk4", Dt: 0.001, Duration: 10.0,
			Projectile: ProjectileConfig{Speed: 30.0, Angle: 0.785398, Drag: 0.02, Mass: 1.0},
		},
	},
	"twobody": {
		"circular": {
			Model: "twobody", Integrator: "leapfrog", Dt: 0.001, Duration: 20.0,
			Orbit: OrbitConfig{Mu: 1.0, Radius: 1.0},
		},
		"elliptic": {
			Model: "twobody", Integrator: "leapfrog", Dt: 0.001, Duration: 40.0,
			Orbit: OrbitConfig{Mu: 1.0, Radius: 1.0, Ecc: 0.6},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
