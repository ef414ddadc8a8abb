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

// DrynessTimes holds the times [days] for the soil to dry down to the
// characteristic moisture levels under zero rainfall.
type DrynessTimes struct {
	FieldCapacity float64 // time to reach field capacity
	Sstar         float64 // time to reach s*
	WiltingPoint  float64 // time to reach the wilting point
}

// DrynessTime returns the closed-form times for the soil to dry down
// from the initial relative water content s0 to field capacity, s*,
// and the wilting point in the absence of rainfall, following the
// analytical solution of Laio et al. (2001). The time to field
// capacity is zero when s0 is already at or below field capacity.
func (p *Soil) DrynessTime(s0 float64) (DrynessTimes, error) {
	if err := p.Check(); err != nil {
		return DrynessTimes{}, err
	}
	if s0 <= 0 || s0 > 1 {
		return DrynessTimes{}, fmt.Errorf("soilpr: initial soil moisture s0=%g must be within (0, 1]", s0)
	}
	if p.Ew <= 0 || p.Emax <= p.Ew {
		return DrynessTimes{}, fmt.Errorf("soilpr: dryness times require 0 < ew < emax; "+
			"have ew=%g emax=%g", p.Ew, p.Emax)
	}

	swsc := p.WaterStorageCapacity()
	beta := 2*p.Phi + 4
	// Normalized leakage and evapotranspiration rates [1/day].
	mLk := p.Ks / (swsc * (math.Exp(beta*(1-p.Sfc)) - 1))
	eta := p.Emax / swsc
	etaW := p.Ew / swsc

	var tfc float64
	if s0 > p.Sfc {
		tfc = 1 / (beta * (mLk - eta)) *
			(beta*(p.Sfc-s0) + math.Log((eta-mLk+mLk*math.Exp(beta*(s0-p.Sfc)))/eta))
	}
	tss := (p.Sfc-p.Sstar)/eta + tfc
	tsw := (p.Sstar-p.Sw)/(eta-etaW)*math.Log(eta/etaW) + tss

	return DrynessTimes{
		FieldCapacity: round(tfc, 3),
		Sstar:         round(tss, 3),
		WiltingPoint:  round(tsw, 3),
	}, nil
}
