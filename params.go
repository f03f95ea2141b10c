package rebound

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// IntegrationParameters configure the integration step of a body set.
//
// The sleep thresholds follow the Box2D tolerances: a body whose linear and
// angular speeds stay below them for TimeUntilSleep seconds is put to sleep.
type IntegrationParameters struct {
	// Dt is the timestep length in seconds.
	Dt float64 `yaml:"dt"`

	// SleepLinearThreshold is the linear speed, in m/s, below which a body
	// is considered idle.
	SleepLinearThreshold float64 `yaml:"sleep_linear_threshold"`

	// SleepAngularThreshold is the angular speed, in rad/s, below which a
	// body is considered idle.
	SleepAngularThreshold float64 `yaml:"sleep_angular_threshold"`

	// TimeUntilSleep is the idle time, in seconds, after which a body
	// falls asleep.
	TimeUntilSleep float64 `yaml:"time_until_sleep"`
}

// DefaultIntegrationParameters returns the parameters used when nothing
// else is configured: a 60 Hz timestep and the Box2D sleep tolerances.
func DefaultIntegrationParameters() IntegrationParameters {
	return IntegrationParameters{
		Dt:                    1.0 / 60.0,
		SleepLinearThreshold:  0.01,
		SleepAngularThreshold: 2.0 / 180.0 * math.Pi,
		TimeUntilSleep:        0.5,
	}
}

// Validate checks the parameters for values the integrator can not work with.
func (p IntegrationParameters) Validate() error {
	if !(p.Dt > 0) {
		return fmt.Errorf("rebound: timestep must be positive, got %v", p.Dt)
	}

	if p.SleepLinearThreshold < 0 || p.SleepAngularThreshold < 0 {
		return fmt.Errorf("rebound: sleep thresholds must not be negative")
	}

	if p.TimeUntilSleep < 0 {
		return fmt.Errorf("rebound: time until sleep must not be negative")
	}

	return nil
}

// LoadIntegrationParameters reads a yaml file and overlays it over the
// default parameters. Keys missing from the file keep their defaults.
func LoadIntegrationParameters(path string) (IntegrationParameters, error) {
	params := DefaultIntegrationParameters()

	buf, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("read integration parameters: %w", err)
	}

	if err := yaml.Unmarshal(buf, &params); err != nil {
		return params, fmt.Errorf("parse integration parameters: %w", err)
	}

	if err := params.Validate(); err != nil {
		return params, err
	}

	return params, nil
}
