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

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// RainGenerator generates synthetic daily rainfall series as a marked
// Poisson process at the daily scale: storms arrive with frequency
// Lambda [1/day] and carry exponentially distributed depths with mean
// Alpha [cm] (Rodríguez-Iturbe et al., 1999). It is used to force the
// water balance when no observed rainfall record is available.
type RainGenerator struct {
	Lambda float64 // storm arrival frequency [1/day]
	Alpha  float64 // mean storm depth [cm]

	occurrence distuv.Bernoulli
	depth      distuv.Exponential
}

// NewRainGenerator creates a rainfall generator with storm frequency
// lambda [1/day], mean storm depth alpha [cm], and the given random
// seed.
func NewRainGenerator(lambda, alpha float64, seed uint64) (*RainGenerator, error) {
	if lambda < 0 || lambda > 1 {
		return nil, fmt.Errorf("soilpr: storm frequency lambda=%g must be within [0, 1] at the daily scale", lambda)
	}
	if alpha <= 0 {
		return nil, fmt.Errorf("soilpr: mean storm depth alpha=%g must be positive", alpha)
	}
	src := rand.NewSource(seed)
	return &RainGenerator{
		Lambda:     lambda,
		Alpha:      alpha,
		occurrence: distuv.Bernoulli{P: lambda, Src: src},
		depth:      distuv.Exponential{Rate: 1 / alpha, Src: src},
	}, nil
}

// Series returns a synthetic daily rainfall series of n days.
func (g *RainGenerator) Series(n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		if g.occurrence.Rand() == 1 {
			r[i] = g.depth.Rand()
		}
	}
	return r
}
