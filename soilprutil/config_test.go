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

package soilprutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandName(t *testing.T) {
	tests := []struct {
		path, name, want string
	}{
		{"results/SWB_PR_simulation_[name].csv", "cxve", "results/SWB_PR_simulation_cxve.csv"},
		{"results/SWB_PR_simulation_[name].csv", "", "results/SWB_PR_simulation_soil.csv"},
		{"results/out.csv", "cxve", "results/out.csv"},
	}
	for _, tt := range tests {
		if got := expandName(tt.path, tt.name); got != tt.want {
			t.Errorf("expandName(%q, %q) = %q, want %q", tt.path, tt.name, got, tt.want)
		}
	}
}

func TestCheckLogFile(t *testing.T) {
	if got := checkLogFile("", "results/out.csv"); got != "results/out.log" {
		t.Errorf("default logfile = %q, want results/out.log", got)
	}
	if got := checkLogFile("run.log", "results/out.csv"); got != "run.log" {
		t.Errorf("explicit logfile = %q, want run.log", got)
	}
}

func TestCheckOutputFile(t *testing.T) {
	dir := t.TempDir()
	o := filepath.Join(dir, "a", "b", "out.csv")
	if _, err := checkOutputFile(o); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a", "b")); err != nil {
		t.Errorf("the output directory was not created: %v", err)
	}
}
