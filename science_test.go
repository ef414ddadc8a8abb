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
	"math"
	"testing"
)

// testSoil returns the parameter set of the CXve soil from the
// published simulations.
func testSoil() *Soil {
	return &Soil{
		Name: "cxve",
		Sh:   0.11, Sw: 0.15, Sstar: 0.28, Sfc: 0.30,
		Ks: 201, Phi: 4.05, Zr: 40, N: 0.37,
		Emax: 0.50, Ew: 0.05,
		A: -5.76, B: 5.63, C: -15.32, Bd: 1.68,
	}
}

func different(a, b, tolerance float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	if a == b {
		return false
	}
	return 2*math.Abs(a-b)/math.Abs(a+b) > tolerance
}

func absDifferent(a, b, tolerance float64) bool {
	return math.Abs(a-b) > tolerance
}

func TestEvapotranspiration(t *testing.T) {
	const testTolerance = 1.e-8
	p := testSoil()

	tests := []struct {
		s, want float64
	}{
		{0, 0},
		{p.Sh, 0},
		{(p.Sh + p.Sw) / 2, p.Ew / 2},
		{p.Sw, p.Ew},
		{(p.Sw + p.Sstar) / 2, p.Ew + (p.Emax-p.Ew)/2},
		{p.Sstar, p.Emax},
		{(p.Sstar + 1) / 2, p.Emax},
		{1, p.Emax},
	}
	for _, tt := range tests {
		if got := p.Evapotranspiration(tt.s); absDifferent(got, tt.want, testTolerance) {
			t.Errorf("ET(%g) = %g, want %g", tt.s, got, tt.want)
		}
	}

	// The rate must be continuous across the breakpoints.
	const eps = 1.e-10
	for _, s := range []float64{p.Sh, p.Sw, p.Sstar} {
		lo, hi := p.Evapotranspiration(s-eps), p.Evapotranspiration(s+eps)
		if absDifferent(lo, hi, 1.e-6) {
			t.Errorf("ET is discontinuous at s=%g: %g vs %g", s, lo, hi)
		}
	}
}

func TestLeakage(t *testing.T) {
	const testTolerance = 1.e-8
	p := testSoil()

	if got := p.Leakage(0); got != 0 {
		t.Errorf("Lk(0) = %g, want 0", got)
	}
	if got := p.Leakage(1); different(got, p.Ks, testTolerance) {
		t.Errorf("Lk(1) = %g, want Ks=%g", got, p.Ks)
	}
	prev := 0.
	for s := 0.05; s <= 1; s += 0.05 {
		lk := p.Leakage(s)
		if lk < prev {
			t.Errorf("leakage is not nondecreasing at s=%g: %g < %g", s, lk, prev)
		}
		prev = lk
	}
}

// Penetration resistance must decrease monotonically with water
// content for a fixed bulk density.
func TestPenetrationResistanceMonotone(t *testing.T) {
	p := testSoil()
	prev := math.Inf(1)
	for s := 0.; s <= 1.0001; s += 0.01 {
		pr := p.PenetrationResistance(s)
		if pr >= prev {
			t.Errorf("PR is not strictly decreasing at s=%g: %g >= %g", s, pr, prev)
		}
		if pr <= 0 {
			t.Errorf("PR(%g) = %g is not positive", s, pr)
		}
		prev = pr
	}
	// A drier soil resists penetration more strongly.
	if p.PenetrationResistance(p.Sw) <= p.PenetrationResistance(p.Sfc) {
		t.Error("PR at the wilting point should exceed PR at field capacity")
	}
}

// The water balance of every simulated day must close: rainfall
// equals the change in storage plus evapotranspiration, leakage, and
// runoff.
func TestWaterBalance(t *testing.T) {
	const testTolerance = 1.e-3 // cm; allows for output rounding

	p := testSoil()
	rain := []float64{0, 2.5, 0, 0, 8, 0.3, 0, 12, 0, 0}
	m := &Model{Soil: p, Rain: rain}
	if err := m.Init(); err != nil {
		t.Fatal(err)
	}

	calc := Calculations(Infiltration(), Evapotranspiration(), Leakage())
	pr := PenetrationResistance()
	end := SeriesEndCheck()
	swsc := p.WaterStorageCapacity()

	for !m.Done {
		sPrev := m.Sf
		for _, f := range []DomainManipulator{calc, pr, end} {
			if err := f(m); err != nil {
				t.Fatal(err)
			}
		}
		r := m.Records[len(m.Records)-1]
		bal := r.Rain - r.ET - r.Lk - r.Q - swsc*(m.Sf-sPrev)
		if math.Abs(bal) > testTolerance {
			t.Errorf("day %d: water balance does not close: %g cm", len(m.Records), bal)
		}
	}

	// The 12 cm storm must saturate the column and produce runoff.
	if m.Records[7].Q <= 0 {
		t.Errorf("the day-8 storm should produce runoff; Q = %g", m.Records[7].Q)
	}
	// Rain-free days produce none.
	for _, i := range []int{0, 2, 3, 6, 8, 9} {
		if m.Records[i].Q != 0 {
			t.Errorf("day %d: runoff %g without rainfall", i+1, m.Records[i].Q)
		}
	}
}
