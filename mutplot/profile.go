/*
 * profile.go, part of mutamore.
 *
 * Copyright 2024 The mutamore authors
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

package mutplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/mutamore/mutamore"
)

//Profile plots, for each position of M, the lowest and the mean similarity
//over its substitutions. Mutations in S are marked, if S is a top-N
//selection. The format is taken from the extension of fname: png, jpg,
//svg or pdf.
func Profile(M *mutamore.Matrix, S *mutamore.Selection, fname string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: effect of single point mutations", M.ID)
	p.X.Label.Text = "Position"
	p.Y.Label.Text = "Structure similarity"
	p.X.Min = 1
	p.X.Max = float64(M.Len())
	p.Y.Min = 0
	p.Y.Max = 1
	p.Add(plotter.NewGrid())

	lmin, err := plotter.NewLine(positionXYs(M.PositionMin()))
	if err != nil {
		return fmt.Errorf("mutplot.Profile: %w", err)
	}
	lmin.LineStyle.Color = color.RGBA{R: 200, A: 255}
	lmin.LineStyle.Width = vg.Points(1)
	lmean, err := plotter.NewLine(positionXYs(M.PositionMean()))
	if err != nil {
		return fmt.Errorf("mutplot.Profile: %w", err)
	}
	lmean.LineStyle.Color = color.RGBA{B: 160, A: 255}
	lmean.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(lmin, lmean)
	p.Legend.Add("minimum", lmin)
	p.Legend.Add("mean", lmean)

	if S != nil && S.TopN() > 0 {
		muts := S.Mutations()
		pts := make(plotter.XYs, len(muts))
		for i, m := range muts {
			pts[i].X = float64(m.Pos + 1)
			pts[i].Y = M.Score(m)
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("mutplot.Profile: %w", err)
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Color = color.Black
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("top %d", S.TopN()), s)
	}
	p.Legend.Top = false
	p.Legend.Left = true

	width := 6 * vg.Inch
	if w := vg.Length(M.Len()) * vg.Points(3); w > width {
		width = w
	}
	if err := p.Save(width, 3*vg.Inch, fname); err != nil {
		return fmt.Errorf("mutplot.Profile: %w", err)
	}
	return nil
}

func positionXYs(v []float64) plotter.XYs {
	ret := make(plotter.XYs, len(v))
	for i, y := range v {
		ret[i].X = float64(i + 1)
		ret[i].Y = y
	}
	return ret
}
