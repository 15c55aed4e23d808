/*
 * plot.go, part of orbfield.
 *
 * Copyright 2026 The orbfield developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package orbplot renders 2D presentations of orbital fields: heat maps of
//plane slices and radial probability-density curves. It sits on top of the
//field package the way a lightweight report generator would; interactive
//rendering is out of its scope.
package orbplot

import (
	"fmt"
	"math"

	orbital "github.com/orbsim/orbfield"
	"github.com/orbsim/orbfield/field"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Channel names one scalar channel of a PlaneSample.
type Channel string

const (
	Probability Channel = "probability"
	Cumulative  Channel = "cumulative"
	Amplitude   Channel = "amplitude"
	Phase       Channel = "phase"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//SliceHeatMap renders one channel of a plane sample as a heat map and saves
//it as plotname.png. The sample must come from field.SamplePlane, i.e. hold
//a square lattice of points. It panics on nil input.
func SliceHeatMap(ps *field.PlaneSample, channel Channel, title, plotname string) error {
	if ps == nil {
		panic("orbplot: given nil plane sample")
	}
	res := int(math.Round(math.Sqrt(float64(len(ps.Points)))))
	if res*res != len(ps.Points) || res < 2 {
		return fmt.Errorf("orbplot: plane sample is not a square lattice: %d points", len(ps.Points))
	}
	values, err := channelValues(ps, channel)
	if err != nil {
		return err
	}
	g := &planeGrid{sample: ps, values: values, res: res}
	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(g, pal)
	p := basicPlot(title, "u (Å)", "v (Å)")
	p.Add(hm)
	return p.Save(14*vg.Centimeter, 14*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}

//RadialProbability renders the radial probability density r^2*R_nl^2 from 0
//to rMax Bohr radii and saves it as plotname.png. The quantum numbers are
//normalized first.
func RadialProbability(n, l int, rMax float64, plotname string) error {
	st := orbital.Normalize(n, l, 0)
	if rMax <= 0 {
		rMax = 10 * float64(st.N)
	}
	const samples = 400
	pts := make(plotter.XYs, samples)
	for i := range pts {
		r := rMax * float64(i) / float64(samples-1)
		rad := orbital.RadialAt(st.N, st.L, r)
		pts[i].X = r
		pts[i].Y = r * r * rad * rad
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p := basicPlot(fmt.Sprintf("Radial probability density %d%s", st.N, subshell(st.L)), "r (Bohr)", "r²R²")
	p.Add(line)
	return p.Save(14*vg.Centimeter, 10*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}

func subshell(l int) string {
	labels := []string{"s", "p", "d", "f"}
	if l >= 0 && l < len(labels) {
		return labels[l]
	}
	return fmt.Sprintf("l%d", l)
}

func channelValues(ps *field.PlaneSample, channel Channel) ([]float64, error) {
	switch channel {
	case Probability, "":
		return ps.Probability, nil
	case Cumulative:
		return ps.Cumulative, nil
	case Amplitude:
		return ps.Amplitude, nil
	case Phase:
		return ps.Phase, nil
	}
	return nil, fmt.Errorf("orbplot: unknown channel %q", channel)
}

//planeGrid adapts a square PlaneSample lattice to plotter.GridXYZ. The axes
//are in-plane distances from the lattice corner, so the plot keeps real
//length units whatever the slicing orientation.
type planeGrid struct {
	sample *field.PlaneSample
	values []float64
	res    int
}

func (g *planeGrid) Dims() (c, r int) { return g.res, g.res }

func (g *planeGrid) Z(c, r int) float64 { return g.values[r*g.res+c] }

func (g *planeGrid) X(c int) float64 {
	return r3.Norm(r3.Sub(g.sample.Points[c], g.sample.Points[0]))
}

func (g *planeGrid) Y(r int) float64 {
	return r3.Norm(r3.Sub(g.sample.Points[r*g.res], g.sample.Points[0]))
}
