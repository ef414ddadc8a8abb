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
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// expandName replaces the '[name]' placeholder in path templates with
// the name of the soil parameter set.
func expandName(path, name string) string {
	if name == "" {
		name = "soil"
	}
	return strings.ReplaceAll(path, "[name]", name)
}

// checkOutputFile makes sure that the directory that the output file
// is to be saved in exists, creating it if necessary.
func checkOutputFile(o string) (string, error) {
	if o == "" {
		return o, nil
	}
	outdir := filepath.Dir(o)
	if err := os.MkdirAll(outdir, os.ModePerm); err != nil {
		return o, fmt.Errorf("soilpr: problem creating output directory: %v", err)
	}
	return o, nil
}

// checkLogFile fills in a default logfile path next to the output file
// if none is specified.
func checkLogFile(logFile, outputFile string) string {
	if logFile == "" {
		logFile = strings.TrimSuffix(outputFile, filepath.Ext(outputFile)) + ".log"
	}
	return logFile
}
