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
	"time"

	"github.com/sirupsen/logrus"
	"github.com/soilmodel/soilpr"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	})

	Cfg = viper.New()
	Cfg.SetEnvPrefix("SOILPR")
	Cfg.AutomaticEnv()

	// Options are the configuration options available to SoilPR.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "RainData",
			usage: `
              RainData is the path to the CSV file holding the daily
              rainfall series. The file needs a column named 'rain'.`,
			defaultVal: "data/data_rain.csv",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "SoilParams",
			usage: `
              SoilParams is the path to the CSV soil parameter table.`,
			defaultVal: "data/parameters.csv",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), drynessCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where the simulated daily
              trajectories are written. '[name]' is replaced by the
              name of the soil parameter set.`,
			defaultVal: "results/SWB_PR_simulation_[name].csv",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "FigureFile",
			usage: `
              FigureFile is the path where the sample figure is
              written, or empty to skip the figure. '[name]' is
              replaced by the name of the soil parameter set.`,
			defaultVal: "results/Figure_sample_sim_[name].png",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "LogFile",
			usage: `
              LogFile is the path to the desired logfile location. If LogFile is
              left blank, the logfile will be saved in the same location as the
              OutputFile.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Dt",
			usage: `
              Dt specifies the sub-daily integration time step as a
              fraction of one day.`,
			defaultVal: soilpr.DefaultDt,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "InitialMoisture",
			usage: `
              InitialMoisture specifies the relative soil water content at the
              start of the simulation. A negative value selects the soil's
              default initial condition.`,
			shorthand:  "s",
			defaultVal: -1.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "generate",
			usage: `
              generate specifies whether to force the model with a synthetic
              rainfall series instead of reading RainData.`,
			shorthand:  "g",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Generator.Days",
			usage: `
              Generator.Days specifies the length of the generated rainfall
              series in days.`,
			defaultVal: 365,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Generator.Lambda",
			usage: `
              Generator.Lambda specifies the storm arrival frequency of the
              rainfall generator [1/day].`,
			defaultVal: 0.25,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Generator.Alpha",
			usage: `
              Generator.Alpha specifies the mean storm depth of the rainfall
              generator [cm].`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Generator.Seed",
			usage: `
              Generator.Seed seeds the rainfall generator.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "s0",
			usage: `
              s0 specifies the relative soil water content the drydown
              starts from.`,
			defaultVal: 0.5,
			flagsets:   []*pflag.FlagSet{drynessCmd.Flags()},
		},
	}

	for _, option := range options {
		for _, set := range option.flagsets {
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(drynessCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("soilpr: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "soilpr",
	Short: "A soil water balance and penetration resistance model.",
	Long: `SoilPR simulates the daily soil water balance in water-controlled
environments and the resulting soil penetration resistance
(Souza et al., 2021). Use the subcommands specified below to access the
model functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'SOILPR_var' where 'var' is
the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of SoilPR.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("SoilPR v%s\n", soilpr.Version)
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation.",
	Long: `run simulates the soil water balance and penetration resistance for
the daily rainfall series and the soil parameter table named in the
configuration, and writes the daily trajectories and a sample figure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := cast.ToUint64E(Cfg.Get("Generator.Seed"))
		if err != nil {
			return fmt.Errorf("soilpr: reading 'Generator.Seed': %v", err)
		}
		return Run(
			cmd,
			os.ExpandEnv(Cfg.GetString("LogFile")),
			os.ExpandEnv(Cfg.GetString("OutputFile")),
			os.ExpandEnv(Cfg.GetString("FigureFile")),
			os.ExpandEnv(Cfg.GetString("SoilParams")),
			os.ExpandEnv(Cfg.GetString("RainData")),
			Cfg.GetFloat64("Dt"),
			Cfg.GetFloat64("InitialMoisture"),
			Cfg.GetBool("generate"),
			Cfg.GetInt("Generator.Days"),
			Cfg.GetFloat64("Generator.Lambda"),
			Cfg.GetFloat64("Generator.Alpha"),
			seed,
			DefaultFluxFuncs, nil, nil, nil)
	},
	DisableAutoGenTag: true,
}

// drynessCmd reports the closed-form drydown times of the soil.
var drynessCmd = &cobra.Command{
	Use:   "dryness",
	Short: "Compute closed-form drydown times.",
	Long: `dryness reports the time in days for the soil to dry down from the
initial moisture s0 to field capacity, s*, and the wilting point in the
absence of rainfall.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Dryness(cmd,
			os.ExpandEnv(Cfg.GetString("SoilParams")),
			Cfg.GetFloat64("s0"))
	},
	DisableAutoGenTag: true,
}
