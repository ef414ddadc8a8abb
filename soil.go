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

import "fmt"

// Soil holds the physical and empirical parameters of one soil.
// All moisture values are relative soil water contents (saturation
// fractions), and all depths of water are in the same unit as the
// rainfall forcing (typically cm).
type Soil struct {
	Name string // Label of the parameter set, used in output file names.

	Sh    float64 `desc:"Soil moisture at the hygroscopic point" units:"-"`
	Sw    float64 `desc:"Soil moisture at the wilting point" units:"-"`
	Sstar float64 `desc:"Soil moisture below which plants reduce transpiration (s*)" units:"-"`
	Sfc   float64 `desc:"Soil moisture at field capacity" units:"-"`
	Ks    float64 `desc:"Saturated hydraulic conductivity" units:"cm/day"`
	Phi   float64 `desc:"Exponent of the soil water retention curve" units:"-"`
	Zr    float64 `desc:"Root zone depth" units:"cm"`
	N     float64 `desc:"Porosity" units:"-"`
	Emax  float64 `desc:"Maximum evapotranspiration rate" units:"cm/day"`
	Ew    float64 `desc:"Soil evaporation rate at the wilting point" units:"cm/day"`
	A     float64 `desc:"Intercept of the penetration resistance model" units:"-"`
	B     float64 `desc:"Bulk density coefficient of the penetration resistance model" units:"cm³/g"`
	C     float64 `desc:"Water content coefficient of the penetration resistance model" units:"-"`
	Bd    float64 `desc:"Soil bulk density" units:"g/cm³"`
}

// Check returns an error if the parameter set is not physically valid.
func (p *Soil) Check() error {
	if !(0 < p.Sh && p.Sh < p.Sw && p.Sw < p.Sstar && p.Sstar < p.Sfc && p.Sfc <= 1) {
		return fmt.Errorf("soilpr: moisture breakpoints must satisfy 0 < sh < sw < sstar < sfc <= 1; "+
			"have sh=%g sw=%g sstar=%g sfc=%g", p.Sh, p.Sw, p.Sstar, p.Sfc)
	}
	if p.N <= 0 || p.N > 1 {
		return fmt.Errorf("soilpr: porosity n=%g must be within (0, 1]", p.N)
	}
	if p.Zr <= 0 {
		return fmt.Errorf("soilpr: root zone depth zr=%g must be positive", p.Zr)
	}
	if p.Ks < 0 {
		return fmt.Errorf("soilpr: hydraulic conductivity ks=%g must not be negative", p.Ks)
	}
	if p.Ew < 0 || p.Emax < p.Ew {
		return fmt.Errorf("soilpr: evapotranspiration rates must satisfy 0 <= ew <= emax; "+
			"have ew=%g emax=%g", p.Ew, p.Emax)
	}
	if p.Bd <= 0 {
		return fmt.Errorf("soilpr: bulk density bd=%g must be positive", p.Bd)
	}
	return nil
}

// WaterStorageCapacity returns the active soil water storage n·Zr,
// which converts between rainfall depths and relative water contents.
func (p *Soil) WaterStorageCapacity() float64 {
	return p.N * p.Zr
}

// DefaultInitialCondition returns the relative soil water content used
// to start a simulation when no initial condition is given. It lies
// between the hygroscopic point and the wilting point.
func (p *Soil) DefaultInitialCondition() float64 {
	return (0.75*p.Sh + 1.25*p.Sw) / 2
}
