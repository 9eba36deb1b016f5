/*
 * gradient.go, part of mutamore.
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

//Package gradient maps scalars to colors by linear interpolation over an ordered
//set of control colors. The Map type satisfies gonum/plot's palette.ColorMap, so
//color bars drawn with gonum/plot use the same mapping as the frames.
package gradient

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

//Default is the default palette: black, red, orange, white.
var Default = []color.RGBA{
	{0, 0, 0, 255},
	{255, 0, 0, 255},
	{255, 165, 0, 255},
	{255, 255, 255, 255},
}

//RGB returns the color of val in the [minval,maxval] range, interpolated over
//pal (Default if no palette is given). The range is divided in len(pal)-1
//equal segments. Values out of range are clamped. A degenerate range is
//taken to be 1 wide.
func RGB(minval, maxval, val float64, pal ...color.RGBA) color.RGBA {
	if len(pal) == 0 {
		pal = Default
	}
	if len(pal) == 1 {
		return pal[0]
	}
	maxindex := len(pal) - 1
	delta := maxval - minval
	if delta == 0 {
		delta = 1
	}
	if math.IsNaN(val) || val < minval {
		val = minval
	}
	if val > maxval {
		val = maxval
	}
	v := (val - minval) / delta * float64(maxindex)
	i1 := int(v)
	if i1 >= maxindex {
		i1 = maxindex - 1
	}
	if i1 < 0 {
		i1 = 0
	}
	f := v - float64(i1)
	c1, c2 := pal[i1], pal[i1+1]
	return color.RGBA{
		R: channel(c1.R, c2.R, f),
		G: channel(c1.G, c2.G, f),
		B: channel(c1.B, c2.B, f),
		A: channel(c1.A, c2.A, f),
	}
}

func channel(a, b uint8, f float64) uint8 {
	v := math.Round(float64(a) + f*(float64(b)-float64(a)))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

//Map is a gradient over a fixed range. It implements palette.ColorMap.
type Map struct {
	min, max float64
	alpha    float64
	colors   []color.RGBA
}

//New returns a gradient map over [min,max] with the colors in pal,
//or with the default palette if none is given.
func New(min, max float64, pal ...color.RGBA) *Map {
	if len(pal) == 0 {
		pal = Default
	}
	return &Map{min: min, max: max, alpha: 1, colors: append([]color.RGBA(nil), pal...)}
}

//At returns the color for v. It returns palette.ErrUnderflow or
//palette.ErrOverflow, together with the color at the nearest end, when v
//is out of range, and palette.ErrNaN for NaN.
func (M *Map) At(v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return nil, palette.ErrNaN
	}
	c := M.RGBA(v)
	if v < M.min {
		return c, palette.ErrUnderflow
	}
	if v > M.max {
		return c, palette.ErrOverflow
	}
	return c, nil
}

//RGBA is like At, but clamps out of range values and never fails.
func (M *Map) RGBA(v float64) color.RGBA {
	c := RGB(M.min, M.max, v, M.colors...)
	if M.alpha < 1 {
		//premultiplied, as color.RGBA requires
		c.R = uint8(math.Round(float64(c.R) * M.alpha))
		c.G = uint8(math.Round(float64(c.G) * M.alpha))
		c.B = uint8(math.Round(float64(c.B) * M.alpha))
		c.A = uint8(math.Round(float64(c.A) * M.alpha))
	}
	return c
}

func (M *Map) Max() float64       { return M.max }
func (M *Map) Min() float64       { return M.min }
func (M *Map) SetMax(v float64)   { M.max = v }
func (M *Map) SetMin(v float64)   { M.min = v }
func (M *Map) Alpha() float64     { return M.alpha }
func (M *Map) SetAlpha(a float64) { M.alpha = math.Max(0, math.Min(1, a)) }

//Palette returns n colors evenly spaced over the range of the map.
func (M *Map) Palette(n int) palette.Palette {
	cs := make([]color.Color, n)
	if n == 1 {
		cs[0] = M.RGBA(M.min)
		return colors(cs)
	}
	step := (M.max - M.min) / float64(n-1)
	for i := range cs {
		cs[i] = M.RGBA(M.min + float64(i)*step)
	}
	return colors(cs)
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }
