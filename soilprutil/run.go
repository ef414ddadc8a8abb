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
	"io"
	"os"
	"time"

	"github.com/soilmodel/soilpr"
	"github.com/spf13/cobra"
)

// DefaultFluxFuncs are the water balance terms that are run in typical
// simulations.
var DefaultFluxFuncs = []soilpr.FluxManipulator{
	soilpr.Infiltration(),
	soilpr.Evapotranspiration(),
	soilpr.Leakage(),
}

// Run mode converts the rainfall forcing into daily trajectories of
// soil moisture, the water balance components, and penetration
// resistance, and writes the results to outputFile. If generate is
// true, the rainfall series is drawn from the marked Poisson generator
// instead of being read from rainData.
//
// fluxFuncs is a list of functions that will be used to calculate the
// water balance terms of each integration substep. addInit, addRun and
// addCleanup allow adding additional initialization, run, and cleanup
// functions to the model.
func Run(cmd *cobra.Command, logFile, outputFile, figureFile, soilParams, rainData string,
	dt, s0 float64, generate bool, days int, lambda, alpha float64, seed uint64,
	fluxFuncs []soilpr.FluxManipulator, addInit, addRun, addCleanup []soilpr.DomainManipulator) error {

	startTime := time.Now()

	soil, err := readSoil(soilParams)
	if err != nil {
		return err
	}

	outputFile, err = checkOutputFile(expandName(outputFile, soil.Name))
	if err != nil {
		return err
	}
	figureFile, err = checkOutputFile(expandName(figureFile, soil.Name))
	if err != nil {
		return err
	}
	logFile, err = checkOutputFile(checkLogFile(expandName(logFile, soil.Name), outputFile))
	if err != nil {
		return err
	}
	logfile, err := os.Create(logFile)
	if err != nil {
		return fmt.Errorf("soilpr: problem creating log file: %v", err)
	}
	defer logfile.Close()
	logger.SetOutput(io.MultiWriter(cmd.OutOrStderr(), logfile))
	defer logger.SetOutput(os.Stderr)

	var rain []float64
	if generate {
		g, err := soilpr.NewRainGenerator(lambda, alpha, seed)
		if err != nil {
			return err
		}
		rain = g.Series(days)
		logger.Infof("Generated a %d-day rainfall series (lambda=%g/day, alpha=%g cm)",
			days, lambda, alpha)
	} else {
		f, err := os.Open(rainData)
		if err != nil {
			return fmt.Errorf("soilpr: problem opening rainfall file: %v", err)
		}
		rain, err = soilpr.ReadRain(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	m := &soilpr.Model{
		Soil: soil,
		Rain: rain,
		Dt:   dt,
		InitFuncs: append([]soilpr.DomainManipulator{
			soilpr.InitialCondition(s0),
		}, addInit...),
		RunFuncs: append([]soilpr.DomainManipulator{
			soilpr.Calculations(fluxFuncs...),
			soilpr.PenetrationResistance(),
			soilpr.Log(logfile),
			soilpr.SeriesEndCheck(),
		}, addRun...),
		CleanupFuncs: append([]soilpr.DomainManipulator{
			writeOutput(outputFile),
			writeFigure(figureFile),
		}, addCleanup...),
	}

	logger.Info("Initializing the soil water balance model...")
	if err := m.Init(); err != nil {
		return fmt.Errorf("soilpr: problem initializing model: %v", err)
	}
	logger.Infof("Simulating %d days for soil %q...", len(rain), soil.Name)
	if err := m.Run(); err != nil {
		return fmt.Errorf("soilpr: problem running simulation: %v", err)
	}
	if err := m.Cleanup(); err != nil {
		return err
	}

	tot := m.Totals()
	logger.Infof("Water balance totals: rain=%.2f cm  ET=%.2f cm  Lk=%.2f cm  Q=%.2f cm",
		tot.Rain, tot.ET, tot.Lk, tot.Q)
	logger.Infof("Period means: s=%.3f  PR=%.2f MPa", tot.S, tot.PR)
	logger.Infof("SoilPR finished in %v", time.Since(startTime))
	return nil
}

// Dryness mode computes the closed-form times for the soil to dry down
// from the initial moisture s0 to field capacity, s*, and the wilting
// point, and prints them to the command output.
func Dryness(cmd *cobra.Command, soilParams string, s0 float64) error {
	soil, err := readSoil(soilParams)
	if err != nil {
		return err
	}
	dt, err := soil.DrynessTime(s0)
	if err != nil {
		return err
	}
	cmd.Printf("Drydown of soil %q starting from s0=%.2f:\n", soil.Name, s0)
	cmd.Printf("  time to field capacity: %8.3f days\n", dt.FieldCapacity)
	cmd.Printf("  time to s*:             %8.3f days\n", dt.Sstar)
	cmd.Printf("  time to wilting point:  %8.3f days\n", dt.WiltingPoint)
	return nil
}

func readSoil(soilParams string) (*soilpr.Soil, error) {
	f, err := os.Open(soilParams)
	if err != nil {
		return nil, fmt.Errorf("soilpr: problem opening soil parameter table: %v", err)
	}
	defer f.Close()
	return soilpr.ReadSoilParams(f)
}

// writeOutput returns a function that saves the simulated daily
// trajectories to a CSV file.
func writeOutput(outputFile string) soilpr.DomainManipulator {
	return func(m *soilpr.Model) error {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("soilpr: problem creating output file: %v", err)
		}
		defer f.Close()
		if err := m.WriteResults(f); err != nil {
			return err
		}
		logger.Infof("Wrote daily trajectories to %s", outputFile)
		return nil
	}
}
