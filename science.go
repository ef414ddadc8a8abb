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
	"errors"
	"math"
)

var errNoSimulatedDay = errors.New("soilpr: penetration resistance requires a simulated day")

// Evapotranspiration returns the evapotranspiration rate [cm/day] at
// relative soil water content s, following the piecewise-linear model
// of Laio et al. (2001): bare-soil evaporation ramps up from zero at
// the hygroscopic point to Ew at the wilting point, transpiration adds
// linearly up to Emax at s*, and above s* the rate is the unstressed
// maximum Emax.
func (p *Soil) Evapotranspiration(s float64) float64 {
	switch {
	case s <= p.Sh:
		return 0
	case s <= p.Sw:
		return p.Ew * (s - p.Sh) / (p.Sw - p.Sh)
	case s <= p.Sstar:
		return p.Ew + (p.Emax-p.Ew)*(s-p.Sw)/(p.Sstar-p.Sw)
	default:
		return p.Emax
	}
}

// Leakage returns the deep drainage rate [cm/day] at relative soil
// water content s, from the power-law form of the unsaturated
// hydraulic conductivity, Ks·s^(2φ+3).
func (p *Soil) Leakage(s float64) float64 {
	return p.Ks * math.Pow(s, 2*p.Phi+3)
}

// PenetrationResistance returns the soil penetration resistance [MPa]
// at relative soil water content s, using the exponential model of
// Jakobsen and Dexter (1987) with the regression coefficients A, B,
// and C: PR = exp(a + b·bd + c·θ), where θ = s·n is the volumetric
// water content.
func (p *Soil) PenetrationResistance(s float64) float64 {
	return math.Exp(p.A + p.B*p.Bd + p.C*s*p.N)
}

// Infiltration returns a function that adds the day's rainfall to the
// soil column on the first integration substep. Water in excess of
// saturation leaves the column as surface runoff.
func Infiltration() FluxManipulator {
	return func(m *Model, Δt float64) {
		if m.bal.rain == 0 {
			return
		}
		swsc := m.Soil.WaterStorageCapacity()
		m.Sf += m.bal.rain / swsc
		m.bal.rain = 0
		if m.Sf > 1 {
			m.bal.q += (m.Sf - 1) * swsc
			m.Sf = 1
		}
	}
}

// Evapotranspiration returns a function that removes the
// evapotranspiration loss of one substep from the soil column. The
// rate is evaluated at the water content at the beginning of the
// substep.
func Evapotranspiration() FluxManipulator {
	return func(m *Model, Δt float64) {
		e := m.Soil.Evapotranspiration(m.Si) * Δt
		m.Sf -= e / m.Soil.WaterStorageCapacity()
		m.bal.et += e
	}
}

// Leakage returns a function that removes the deep drainage loss of
// one substep from the soil column. The rate is evaluated at the
// water content at the beginning of the substep.
func Leakage() FluxManipulator {
	return func(m *Model, Δt float64) {
		l := m.Soil.Leakage(m.Si) * Δt
		m.Sf -= l / m.Soil.WaterStorageCapacity()
		m.bal.lk += l
	}
}

// PenetrationResistance returns a function that derives the day's soil
// penetration resistance from the daily mean water content and stores
// it in the day's record. It must run after Calculations.
func PenetrationResistance() DomainManipulator {
	return func(m *Model) error {
		if len(m.Records) == 0 {
			return errNoSimulatedDay
		}
		m.Records[len(m.Records)-1].PR = round(m.Soil.PenetrationResistance(m.bal.sMean), 4)
		return nil
	}
}
