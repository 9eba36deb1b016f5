/*
 * layout.go, part of mutamore.
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

package movie

import (
	"github.com/mutamore/mutamore"
	"github.com/mutamore/mutamore/gradient"
	"github.com/mutamore/mutamore/mutplot"
)

//Layout is the geometry of the movie frames: the 3D structure on the left,
//the mutation matrix on the right. Lengths are scaled from a 360 pixel
//high reference.
type Layout struct {
	Width, Height  int
	Scale          float64
	MatrixWidth    int
	MarginH        int
	MarginV        int
	StructureWidth int
}

//NewLayout returns the layout for width x height frames.
func NewLayout(width, height int) Layout {
	scale := float64(height) / 360
	L := Layout{Width: width, Height: height, Scale: scale}
	L.MatrixWidth = int(200 * scale)
	L.MarginH = int(5 * scale)
	L.MarginV = int(10 * scale)
	L.StructureWidth = width - L.MatrixWidth
	return L
}

//Style returns the matrix frame style for the layout, with scores in
//[colorMin, 1] spread over the whole gradient.
func (L Layout) Style(colorMin float64) mutplot.Style {
	st := mutplot.DefaultStyle(L.MatrixWidth, L.Height)
	st.MarginH = L.MarginH
	st.MarginV = L.MarginV
	st.Colors = gradient.New(colorMin, 1)
	return st
}

//MinHeight returns the lowest frame height that fits the matrix of a
//protein with length residues.
func (L Layout) MinHeight(length int) int {
	return length + 2*L.MarginV
}

//CheckResolution returns a *mutamore.ResolutionError if the matrix of any
//protein in recs doesn't fit the layout.
func CheckResolution(recs []mutamore.Record, L Layout) error {
	var rerr *mutamore.ResolutionError
	required := 0
	for _, r := range recs {
		need := L.MinHeight(len(r.Seq))
		required = max(required, need)
		if need <= L.Height {
			continue
		}
		if rerr == nil {
			rerr = &mutamore.ResolutionError{Height: L.Height, PerRecord: make(map[string]int)}
		}
		rerr.PerRecord[r.ID] = need
		rerr.Order = append(rerr.Order, r.ID)
	}
	if rerr == nil {
		return nil
	}
	rerr.Required = required
	return rerr
}
