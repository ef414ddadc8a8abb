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
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// soilParamColumns are the column names required in the soil parameter
// table, matching the published parameter files.
var soilParamColumns = []string{"sh", "sw", "sstar", "sfc", "ks", "phi",
	"zr", "n", "emax", "ew", "a", "b", "c", "bd"}

// ReadSoilParams reads a one-row CSV soil parameter table with named
// header columns. Column names are matched case-insensitively; columns
// beyond the required set are ignored, and a "name" column, if
// present, labels the parameter set.
func ReadSoilParams(r io.Reader) (*Soil, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("soilpr: reading soil parameter table: %v", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("soilpr: the soil parameter table needs a header row and a data row")
	}
	index := make(map[string]int)
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	row := rows[1]
	p := new(Soil)
	fields := map[string]*float64{
		"sh": &p.Sh, "sw": &p.Sw, "sstar": &p.Sstar, "sfc": &p.Sfc,
		"ks": &p.Ks, "phi": &p.Phi, "zr": &p.Zr, "n": &p.N,
		"emax": &p.Emax, "ew": &p.Ew,
		"a": &p.A, "b": &p.B, "c": &p.C, "bd": &p.Bd,
	}
	for _, name := range soilParamColumns {
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("soilpr: the soil parameter table is missing column %q", name)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("soilpr: parsing soil parameter %q: %v", name, err)
		}
		*fields[name] = v
	}
	if i, ok := index["name"]; ok {
		p.Name = strings.TrimSpace(row[i])
	}
	if err := p.Check(); err != nil {
		return nil, err
	}
	return p, nil
}

// ReadRain reads a daily rainfall series from a CSV file with a "rain"
// column. Rainfall must not be negative.
func ReadRain(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("soilpr: reading rainfall file: %v", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("soilpr: the rainfall file is empty")
	}
	col := -1
	for i, h := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(h), "rain") {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf(`soilpr: the rainfall file is missing a "rain" column`)
	}
	rain := make([]float64, 0, len(rows)-1)
	for j, row := range rows[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		if err != nil {
			return nil, fmt.Errorf("soilpr: parsing rainfall on line %d: %v", j+2, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("soilpr: negative rainfall %g on line %d", v, j+2)
		}
		rain = append(rain, v)
	}
	if len(rain) == 0 {
		return nil, fmt.Errorf("soilpr: the rainfall file holds no data rows")
	}
	return rain, nil
}

// WriteResults writes the simulated daily records to w in CSV form,
// one row per day with the day number in the first column.
func (m *Model) WriteResults(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"day"}, OutputNames...)); err != nil {
		return fmt.Errorf("soilpr: writing results header: %v", err)
	}
	for i, r := range m.Records {
		row := []string{
			strconv.Itoa(i + 1),
			fmtFloat(r.Rain), fmtFloat(r.S), fmtFloat(r.ET),
			fmtFloat(r.Lk), fmtFloat(r.Q), fmtFloat(r.PR),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("soilpr: writing results row %d: %v", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadResults reads back a simulation results file written by
// WriteResults.
func ReadResults(r io.Reader) ([]DayRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("soilpr: reading results file: %v", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("soilpr: the results file is empty")
	}
	want := append([]string{"day"}, OutputNames...)
	if len(rows[0]) != len(want) {
		return nil, fmt.Errorf("soilpr: unexpected results header %v", rows[0])
	}
	for i, h := range rows[0] {
		if !strings.EqualFold(strings.TrimSpace(h), want[i]) {
			return nil, fmt.Errorf("soilpr: unexpected results header %v", rows[0])
		}
	}
	records := make([]DayRecord, 0, len(rows)-1)
	for j, row := range rows[1:] {
		vals := make([]float64, len(OutputNames))
		for i := range OutputNames {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[i+1]), 64)
			if err != nil {
				return nil, fmt.Errorf("soilpr: parsing results on line %d: %v", j+2, err)
			}
			vals[i] = v
		}
		records = append(records, DayRecord{
			Rain: vals[0], S: vals[1], ET: vals[2],
			Lk: vals[3], Q: vals[4], PR: vals[5],
		})
	}
	return records, nil
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
