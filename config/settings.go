package config

// SettingsConfig contains the title screen volume options.
type SettingsConfig struct {
	VolumeSteps []float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}

// NextVolume returns the step after v, wrapping to silence after the
// loudest. A value between steps moves to the next step above it.
func NextVolume(v float64) float64 {
	steps := Settings.VolumeSteps
	for _, s := range steps {
		if s > v+1e-9 {
			return s
		}
	}
	return steps[0]
}
