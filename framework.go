/*
Copyright © 2020 the SoilPR authors.
This file is part of SoilPR.

SoilPR is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SoilPR is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SoilPR.  If not, see <http://www.gnu.org/licenses/>.
*/

package soilpr

import (
	"fmt"
	"math"
)

// DefaultDt is the sub-daily integration time step used when none is
// specified, as a fraction of one day.
const DefaultDt = 1. / 48.

// DomainManipulator is a class of functions that operate on the model
// as a whole once per simulated day.
type DomainManipulator func(m *Model) error

// FluxManipulator is a class of functions that apply one term of the
// water balance to the model state over the integration substep Δt,
// where Δt is a fraction of one day.
type FluxManipulator func(m *Model, Δt float64)

// OutputNames are the names of the simulated output variables, in the
// column order of the published results.
var OutputNames = []string{"Rain", "s", "ET", "Lk", "Q", "PR"}

// DayRecord holds the simulated water balance components and the soil
// penetration resistance of a single day. The depth components are
// totals over the day in the unit of the rainfall forcing; S is the
// daily mean relative soil water content.
type DayRecord struct {
	Rain float64 // rainfall [cm]
	S    float64 // relative soil water content [-]
	ET   float64 // evapotranspiration [cm]
	Lk   float64 // deep leakage [cm]
	Q    float64 // surface runoff [cm]
	PR   float64 // penetration resistance [MPa]
}

// balance accumulates the components of the day currently being
// integrated.
type balance struct {
	rain  float64 // rainfall depth not yet infiltrated [cm]
	sSum  float64 // sum of s over the substeps, for the daily mean
	sMean float64 // daily mean s, unrounded
	et    float64 // evapotranspiration total [cm]
	lk    float64 // leakage total [cm]
	q     float64 // runoff total [cm]
}

// Model holds the current state of the simulation.
type Model struct {
	InitFuncs    []DomainManipulator
	RunFuncs     []DomainManipulator
	CleanupFuncs []DomainManipulator

	Soil *Soil
	Rain []float64 // daily rainfall forcing [cm]
	Dt   float64   // integration time step [fraction of one day]

	// Si and Sf are the relative soil water contents at the beginning
	// and end of the current integration substep. The flux terms read
	// Si and update Sf.
	Si, Sf float64

	Day  int  // index of the day currently being simulated
	Done bool // flag whether the simulation is finished

	Records []DayRecord // one record per simulated day

	bal balance
}

// Init initializes the model, running the InitFuncs in order.
func (m *Model) Init() error {
	if m.Soil == nil {
		return fmt.Errorf("soilpr: model is missing soil parameters")
	}
	if err := m.Soil.Check(); err != nil {
		return err
	}
	if m.Dt == 0 {
		m.Dt = DefaultDt
	}
	if m.Dt < 0 || m.Dt > 1 {
		return fmt.Errorf("soilpr: time step dt=%g must be within (0, 1] days", m.Dt)
	}
	for _, f := range m.InitFuncs {
		if err := f(m); err != nil {
			return err
		}
	}
	// A water content of zero is below the hygroscopic point of any
	// valid soil, so zero means the initial condition was never set.
	if m.Sf == 0 {
		m.Sf = m.Soil.DefaultInitialCondition()
		m.Si = m.Sf
	}
	return nil
}

// Run carries out the simulation, running the RunFuncs in order for
// each day until the model is flagged as finished.
func (m *Model) Run() error {
	if len(m.Rain) == 0 {
		return fmt.Errorf("soilpr: there is no rainfall series to simulate")
	}
	for !m.Done {
		for _, f := range m.RunFuncs {
			if err := f(m); err != nil {
				return err
			}
		}
	}
	return nil
}

// Cleanup runs the CleanupFuncs to finish the simulation.
func (m *Model) Cleanup() error {
	for _, f := range m.CleanupFuncs {
		if err := f(m); err != nil {
			return err
		}
	}
	return nil
}

// InitialCondition returns a function that sets the relative soil
// water content at the start of the simulation. A negative s0 selects
// the soil's default initial condition.
func InitialCondition(s0 float64) DomainManipulator {
	return func(m *Model) error {
		if s0 < 0 {
			s0 = m.Soil.DefaultInitialCondition()
		}
		if s0 > 1 {
			return fmt.Errorf("soilpr: initial soil moisture s0=%g must not exceed saturation", s0)
		}
		m.Si, m.Sf = s0, s0
		return nil
	}
}

// Calculations returns a function that advances the model by one day,
// running the given flux terms over each integration substep and
// accumulating the daily water balance components.
func Calculations(fluxes ...FluxManipulator) DomainManipulator {
	return func(m *Model) error {
		if m.Day >= len(m.Rain) {
			return fmt.Errorf("soilpr: day %d is beyond the %d-day rainfall series",
				m.Day, len(m.Rain))
		}
		nsub := int(math.Round(1 / m.Dt))
		if nsub < 1 {
			nsub = 1
		}
		m.bal = balance{rain: m.Rain[m.Day]}
		for i := 0; i < nsub; i++ {
			m.Si = m.Sf
			for _, f := range fluxes {
				f(m, m.Dt)
			}
			m.bal.sSum += m.Sf
		}
		m.bal.sMean = m.bal.sSum / float64(nsub)
		m.Records = append(m.Records, DayRecord{
			Rain: m.Rain[m.Day],
			S:    round(m.bal.sMean, 4),
			ET:   round(m.bal.et, 4),
			Lk:   round(m.bal.lk, 4),
			Q:    round(m.bal.q, 4),
		})
		return nil
	}
}

// SeriesEndCheck returns a function that advances the simulation to
// the next day and flags the simulation as finished once the rainfall
// series is exhausted.
func SeriesEndCheck() DomainManipulator {
	return func(m *Model) error {
		m.Day++
		if m.Day >= len(m.Rain) {
			m.Done = true
		}
		return nil
	}
}

// ToArray returns the simulated daily values of the named output
// variable as a regular array.
func (m *Model) ToArray(varName string) ([]float64, error) {
	o := make([]float64, len(m.Records))
	for i, r := range m.Records {
		switch varName {
		case "Rain":
			o[i] = r.Rain
		case "s":
			o[i] = r.S
		case "ET":
			o[i] = r.ET
		case "Lk":
			o[i] = r.Lk
		case "Q":
			o[i] = r.Q
		case "PR":
			o[i] = r.PR
		default:
			return nil, fmt.Errorf("soilpr: unknown output variable %q", varName)
		}
	}
	return o, nil
}

// Totals returns the water balance components summed over the whole
// simulated period. The S and PR fields hold period means rather than
// sums.
func (m *Model) Totals() DayRecord {
	var t DayRecord
	for _, r := range m.Records {
		t.Rain += r.Rain
		t.S += r.S
		t.ET += r.ET
		t.Lk += r.Lk
		t.Q += r.Q
		t.PR += r.PR
	}
	if n := float64(len(m.Records)); n > 0 {
		t.S /= n
		t.PR /= n
	}
	return t
}

// round rounds x to n decimal places, matching the precision of the
// published simulation output.
func round(x float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(x*p) / p
}
