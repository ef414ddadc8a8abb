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

	"github.com/soilmodel/soilpr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// maxFigureDays limits the sample figure to one year, as in the
// published plots.
const maxFigureDays = 365

// writeFigure returns a function that saves the sample figure to a PNG
// file, or does nothing if figureFile is empty.
func writeFigure(figureFile string) soilpr.DomainManipulator {
	return func(m *soilpr.Model) error {
		if figureFile == "" {
			return nil
		}
		img, err := Figure(m, maxFigureDays)
		if err != nil {
			return err
		}
		w, err := os.Create(figureFile)
		if err != nil {
			return fmt.Errorf("soilpr: problem creating figure file: %v", err)
		}
		defer w.Close()
		png := vgimg.PngCanvas{Canvas: img}
		if _, err := png.WriteTo(w); err != nil {
			return fmt.Errorf("soilpr: problem writing figure: %v", err)
		}
		logger.Infof("Wrote sample figure to %s", figureFile)
		return nil
	}
}

// Figure draws the simulated trajectories as a four-panel figure:
// daily rainfall, relative soil water content, evapotranspiration and
// leakage, and penetration resistance. At most maxDays days are drawn.
func Figure(m *soilpr.Model, maxDays int) (*vgimg.Canvas, error) {
	n := len(m.Records)
	if n == 0 {
		return nil, fmt.Errorf("soilpr: there are no simulated days to plot")
	}
	if n > maxDays {
		n = maxDays
	}

	series := make(map[string][]float64)
	for _, name := range soilpr.OutputNames {
		v, err := m.ToArray(name)
		if err != nil {
			return nil, err
		}
		series[name] = v[:n]
	}

	const rows, cols = 4, 1
	plots := make([][]*plot.Plot, rows)
	for i := range plots {
		plots[i] = make([]*plot.Plot, cols)
	}

	// Rainfall forcing.
	p := plot.New()
	p.Y.Label.Text = "Rain (cm)"
	bars, err := plotter.NewBarChart(plotter.Values(series["Rain"]), vg.Points(1.5))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = 0
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	plots[0][0] = p

	// Relative soil water content.
	p = plot.New()
	p.Y.Label.Text = "s (-)"
	p.Y.Min, p.Y.Max = 0, 1
	l, err := plotter.NewLine(seriesXY(series["s"]))
	if err != nil {
		return nil, err
	}
	l.Color = plotutil.Color(1)
	p.Add(l)
	plots[1][0] = p

	// Evapotranspiration and leakage losses.
	p = plot.New()
	p.Y.Label.Text = "ET or Lk (cm)"
	et, err := plotter.NewLine(seriesXY(series["ET"]))
	if err != nil {
		return nil, err
	}
	et.Color = plotutil.Color(2)
	lk, err := plotter.NewLine(seriesXY(series["Lk"]))
	if err != nil {
		return nil, err
	}
	lk.Color = plotutil.Color(3)
	lk.Dashes = plotutil.Dashes(1)
	p.Add(et, lk)
	p.Legend.Add("ET", et)
	p.Legend.Add("Lk", lk)
	p.Legend.Top = true
	plots[2][0] = p

	// Penetration resistance.
	p = plot.New()
	p.X.Label.Text = "Days"
	p.Y.Label.Text = "PR (MPa)"
	pr, err := plotter.NewLine(seriesXY(series["PR"]))
	if err != nil {
		return nil, err
	}
	pr.Color = plotutil.Color(4)
	p.Add(pr)
	plots[3][0] = p

	img := vgimg.NewWith(vgimg.UseWH(25*vg.Centimeter, 16*vg.Centimeter))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: 2 * vg.Millimeter, PadBottom: 2 * vg.Millimeter,
		PadLeft: 2 * vg.Millimeter, PadRight: 2 * vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}
	return img, nil
}

// seriesXY pairs the daily values with their day numbers.
func seriesXY(v []float64) plotter.XYs {
	xy := make(plotter.XYs, len(v))
	for i, y := range v {
		xy[i].X = float64(i + 1)
		xy[i].Y = y
	}
	return xy
}
