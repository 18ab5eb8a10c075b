package config

import (
	"fmt"

	"github.com/chrissnell/modeltime/pkg/modeltime"
	"github.com/chrissnell/modeltime/pkg/schedule"
	"github.com/chrissnell/modeltime/pkg/startmoment"
)

// ConfigProvider defines the interface for simulation time configuration sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get the stress periods only
	GetPeriods() ([]PeriodData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the temporal setup of one simulation
type ConfigData struct {
	Name          string       `json:"name,omitempty"`
	TimeUnits     string       `json:"time_units,omitempty"`
	StartDateTime string       `json:"start_datetime,omitempty"`
	SteadyState   *bool        `json:"steady_state,omitempty"`
	Namefile      string       `json:"namefile,omitempty"`
	ReferenceFile string       `json:"reference_file,omitempty"`
	Periods       []PeriodData `json:"periods"`
}

// PeriodData holds the settings of a single stress period
type PeriodData struct {
	Perlen      float64 `json:"perlen"`
	Nstp        int     `json:"nstp"`
	Tsmult      float64 `json:"tsmult"`
	SteadyState *bool   `json:"steady_state,omitempty"`
}

// Schedule converts the per-period rows into the parallel sequences used by
// the schedule package.
func (c *ConfigData) Schedule() schedule.PeriodData {
	pd := schedule.PeriodData{
		Perlen: make([]float64, len(c.Periods)),
		Nstp:   make([]int, len(c.Periods)),
		Tsmult: make([]float64, len(c.Periods)),
	}
	for i, p := range c.Periods {
		pd.Perlen[i] = p.Perlen
		pd.Nstp[i] = p.Nstp
		pd.Tsmult[i] = p.Tsmult
	}
	return pd
}

// steadyState resolves the simulation-wide flag and the per-period flags. If
// any period carries its own flag, every period must.
func (c *ConfigData) steadyState() (modeltime.SteadyState, error) {
	flags := make([]bool, 0, len(c.Periods))
	for i, p := range c.Periods {
		if p.SteadyState == nil {
			if len(flags) > 0 {
				return modeltime.SteadyState{}, fmt.Errorf("period %d has no steady_state flag but earlier periods do", i)
			}
			continue
		}
		if len(flags) != i {
			return modeltime.SteadyState{}, fmt.Errorf("period %d has a steady_state flag but earlier periods do not", i)
		}
		flags = append(flags, *p.SteadyState)
	}

	if len(flags) > 0 {
		return modeltime.PerPeriodSteadyState(flags), nil
	}
	if c.SteadyState != nil {
		return modeltime.UniformSteadyState(*c.SteadyState), nil
	}
	return modeltime.SteadyState{}, nil
}

// ModelTime builds a ModelTime from the configuration. The start moment is
// kept in text form.
func (c *ConfigData) ModelTime() (*modeltime.ModelTime, error) {
	ss, err := c.steadyState()
	if err != nil {
		return nil, err
	}

	opts := []modeltime.Option{modeltime.WithSteadyState(ss)}
	if c.TimeUnits != "" {
		opts = append(opts, modeltime.WithTimeUnits(c.TimeUnits))
	}
	if c.StartDateTime != "" {
		opts = append(opts, modeltime.WithStart(startmoment.Text(c.StartDateTime)))
	}

	mt, err := modeltime.New(c.Schedule(), opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration %q: %w", c.Name, err)
	}
	return mt, nil
}
