/*
 * legend.go, part of mutamore.
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
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//Legend draws a vertical color bar for cm, w x h pixels, with ticks at
//both ends, "0%" at the darkest color and "100%" at the lightest, and a
//"structure similarity" axis label.
func Legend(cm palette.ColorMap, w, h int, fontSize float64) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("mutplot: invalid legend size %dx%d", w, h)
	}
	p := plot.New()
	p.HideX()
	p.BackgroundColor = color.White
	p.Y.Label.Text = "structure similarity"
	p.Y.Label.TextStyle.Font.Size = vg.Points(fontSize)
	p.Y.Label.Position = draw.PosCenter
	p.Y.Tick.Label.Font.Size = vg.Points(fontSize)
	p.Y.Tick.Marker = plot.ConstantTicks(legendTicks(cm))
	p.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true})
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(w), vg.Length(h)),
		vgimg.UseDPI(72),
		vgimg.UseBackgroundColor(color.White),
	)
	p.Draw(draw.New(c))
	return c.Image(), nil
}

//legendTicks labels the ends of the color bar. The labels refer to the
//gradient, not to the scores, so they don't change with the color range.
func legendTicks(cm palette.ColorMap) []plot.Tick {
	return []plot.Tick{
		{Value: cm.Min(), Label: "0%"},
		{Value: cm.Max(), Label: "100%"},
	}
}
