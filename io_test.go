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
	"bytes"
	"strings"
	"testing"
)

const testParamCSV = `name,sh,sw,sstar,sfc,ks,phi,zr,n,emax,ew,a,b,c,bd
cxve,0.11,0.15,0.28,0.30,201,4.05,40,0.37,0.50,0.05,-5.76,5.63,-15.32,1.68
`

func TestReadSoilParams(t *testing.T) {
	p, err := ReadSoilParams(strings.NewReader(testParamCSV))
	if err != nil {
		t.Fatal(err)
	}
	want := testSoil()
	if *p != *want {
		t.Errorf("read %+v, want %+v", p, want)
	}
}

func TestReadSoilParamsErrors(t *testing.T) {
	tests := []struct {
		name, csv string
	}{
		{"empty", ""},
		{"header only", "name,sh,sw\n"},
		{"missing column", "sh,sw,sstar\n0.11,0.15,0.28\n"},
		{"bad number", strings.Replace(testParamCSV, "4.05", "x", 1)},
		{"invalid ordering", strings.Replace(testParamCSV, "0.28", "0.12", 1)},
	}
	for _, tt := range tests {
		if _, err := ReadSoilParams(strings.NewReader(tt.csv)); err == nil {
			t.Errorf("%s: reading should fail", tt.name)
		}
	}
}

func TestReadRain(t *testing.T) {
	in := "date,rain\n2019-01-01,0\n2019-01-02,1.25\n2019-01-03,0.4\n"
	rain, err := ReadRain(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 1.25, 0.4}
	if len(rain) != len(want) {
		t.Fatalf("read %d values, want %d", len(rain), len(want))
	}
	for i, v := range rain {
		if v != want[i] {
			t.Errorf("rain[%d] = %g, want %g", i, v, want[i])
		}
	}
}

func TestReadRainErrors(t *testing.T) {
	tests := []struct {
		name, csv string
	}{
		{"empty", ""},
		{"no rain column", "date,depth\n2019-01-01,1\n"},
		{"no data", "rain\n"},
		{"bad number", "rain\nabc\n"},
		{"negative rainfall", "rain\n-1\n"},
	}
	for _, tt := range tests {
		if _, err := ReadRain(strings.NewReader(tt.csv)); err == nil {
			t.Errorf("%s: reading should fail", tt.name)
		}
	}
}

// Writing and re-reading the output CSV must reproduce the simulated
// trajectories exactly.
func TestResultsRoundTrip(t *testing.T) {
	p := testSoil()
	rain := []float64{0, 3.2, 0, 0.7, 9, 0}
	m := newTestModel(p, rain, -1)
	if err := m.Init(); err != nil {
		t.Fatal(err)
	}
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := m.WriteResults(&buf); err != nil {
		t.Fatal(err)
	}
	records, err := ReadResults(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != len(m.Records) {
		t.Fatalf("read %d records, want %d", len(records), len(m.Records))
	}
	for i, r := range records {
		if r != m.Records[i] {
			t.Errorf("day %d: read %+v, want %+v", i+1, r, m.Records[i])
		}
	}
}

func TestReadResultsErrors(t *testing.T) {
	tests := []struct {
		name, csv string
	}{
		{"empty", ""},
		{"wrong header", "day,Rain,s,ET\n1,0,0.1,0\n"},
		{"bad number", "day,Rain,s,ET,Lk,Q,PR\n1,0,x,0,0,0,1\n"},
	}
	for _, tt := range tests {
		if _, err := ReadResults(strings.NewReader(tt.csv)); err == nil {
			t.Errorf("%s: reading should fail", tt.name)
		}
	}
}
