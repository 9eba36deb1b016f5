/*
 * matrix.go, part of mutamore.
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
	"math"

	"git.sr.ht/~sbinet/gg"

	"github.com/mutamore/mutamore"
	"github.com/mutamore/mutamore/gradient"
)

//Style sets the geometry of the mutation matrix frames. All lengths are in pixels.
type Style struct {
	Width, Height int //of the whole frame
	MarginH       int //left margin, also the right margin of the legend
	MarginV       int //top and bottom margins
	CellWidth     int
	FontSize      float64 //position ticks and legend
	LabelSize     float64 //amino acid labels on top of the matrix
	Ticks         int     //a position tick every Ticks residues (and at the first one)
	LegendWidth   int
	LegendHeight  int
	Colors        *gradient.Map //maps scores to cell colors
}

//DefaultStyle returns the style for frames of the given height, all lengths
//scaled from a 360 pixel high reference.
func DefaultStyle(width, height int) Style {
	scale := float64(height) / 360
	return Style{
		Width:        width,
		Height:       height,
		MarginH:      int(5 * scale),
		MarginV:      int(10 * scale),
		CellWidth:    max(1, int(5*scale)),
		FontSize:     6 * scale,
		LabelSize:    3.5 * scale,
		Ticks:        10,
		LegendWidth:  max(30, int(40*scale)),
		LegendHeight: max(60, int(110*scale)),
		Colors:       gradient.New(0.3, 1),
	}
}

//CellHeight returns the height of a matrix row for a sequence of length
//residues. It is zero if the frame is too short.
func (S Style) CellHeight(length int) int {
	if length <= 0 {
		return 0
	}
	return (S.Height - 2*S.MarginV) / length
}

//MatrixRenderer draws the mutation matrix frames of one protein. The parts
//common to all frames are drawn once, by NewMatrixRenderer.
type MatrixRenderer struct {
	style      Style
	M          *mutamore.Matrix
	cellHeight int
	offsetY    int
	background *image.RGBA
}

//NewMatrixRenderer prepares the frames for M. It returns a
//*mutamore.ResolutionError if the frame is too short for the sequence.
func NewMatrixRenderer(M *mutamore.Matrix, style Style) (*MatrixRenderer, error) {
	R := &MatrixRenderer{style: style, M: M}
	R.cellHeight = style.CellHeight(M.Len())
	if R.cellHeight == 0 {
		need := M.Len() + 2*style.MarginV
		return nil, &mutamore.ResolutionError{
			Height:    style.Height,
			Required:  need,
			PerRecord: map[string]int{M.ID: need},
			Order:     []string{M.ID},
		}
	}
	if style.Colors == nil {
		R.style.Colors = gradient.New(0, 1)
	}
	if R.style.Ticks <= 0 {
		R.style.Ticks = 10
	}
	//center the matrix vertically
	matrixHeight := M.Len()*R.cellHeight + 1
	R.offsetY = style.Height/2 - matrixHeight/2
	if err := R.drawBackground(); err != nil {
		return nil, err
	}
	return R, nil
}

//cell returns the top-left corner of the cell for row aa and position pos.
func (R *MatrixRenderer) cell(aa, pos int) (float64, float64) {
	x := R.style.MarginH + aa*R.style.CellWidth
	y := R.offsetY + pos*R.cellHeight
	return float64(x), float64(y)
}

func (R *MatrixRenderer) drawBackground() error {
	st := R.style
	dc := gg.NewContext(st.Width, st.Height)
	dc.SetColor(color.White)
	dc.Clear()
	cw, ch := float64(st.CellWidth), float64(R.cellHeight)
	for pos := 0; pos < R.M.Len(); pos++ {
		for aa := 0; aa < mutamore.NAminoAcids; aa++ {
			x, y := R.cell(aa, pos)
			dc.SetColor(st.Colors.RGBA(R.M.At(mutamore.Alphabet[aa], pos)))
			dc.DrawRectangle(x, y, cw, ch)
			dc.Fill()
		}
	}
	face, err := Face(st.FontSize)
	if err != nil {
		return fmt.Errorf("mutplot: loading font: %w", err)
	}
	dc.SetFontFace(face)
	dc.SetColor(color.Black)
	xticks := float64(st.MarginH+mutamore.NAminoAcids*st.CellWidth) + 1
	for pos := 0; pos < R.M.Len(); pos++ {
		if pos+1 == 1 || (pos+1)%st.Ticks == 0 {
			_, y := R.cell(0, pos)
			dc.DrawStringAnchored(fmt.Sprintf("-%d", pos+1), xticks, y+ch/2, 0, 0.5)
		}
	}
	//outline for the whole matrix
	x0, y0 := float64(st.MarginH)-0.5, float64(R.offsetY)-0.5
	dc.SetLineWidth(1)
	dc.DrawRectangle(x0, y0, float64(mutamore.NAminoAcids*st.CellWidth)+1, float64(R.M.Len()*R.cellHeight)+1)
	dc.Stroke()
	//amino acid labels
	lface, err := Face(st.LabelSize)
	if err != nil {
		return fmt.Errorf("mutplot: loading font: %w", err)
	}
	dc.SetFontFace(lface)
	for aa := 0; aa < mutamore.NAminoAcids; aa++ {
		x, _ := R.cell(aa, 0)
		dc.DrawStringAnchored(string(mutamore.Alphabet[aa]), x+cw/2, y0-2, 0.5, 0)
	}
	//left boundary line
	dc.SetColor(color.RGBA{100, 100, 100, 255})
	dc.DrawLine(0.5, 0, 0.5, float64(st.Height))
	dc.Stroke()
	legend, err := Legend(st.Colors, st.LegendWidth, st.LegendHeight, st.FontSize)
	if err != nil {
		return err
	}
	dc.DrawImage(legend, st.Width-st.MarginH-st.LegendWidth, st.Height/2-st.LegendHeight/2)
	bg, ok := dc.Image().(*image.RGBA)
	if !ok {
		return fmt.Errorf("mutplot: unexpected image type %T", dc.Image())
	}
	R.background = bg
	return nil
}

//Frame returns the frame for the mutation m: the matrix with the cell for
//m outlined.
func (R *MatrixRenderer) Frame(m mutamore.Mutation) image.Image {
	img := image.NewRGBA(R.background.Bounds())
	copy(img.Pix, R.background.Pix)
	dc := gg.NewContextForRGBA(img)
	x, y := R.cell(m.Row(), m.Pos)
	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x+0.5, y+0.5, math.Max(float64(R.style.CellWidth)-1, 0), math.Max(float64(R.cellHeight)-1, 0))
	dc.Stroke()
	return img
}

//WriteFrame writes the frame for m to fname as PNG.
func (R *MatrixRenderer) WriteFrame(fname string, m mutamore.Mutation) error {
	if err := gg.SavePNG(fname, R.Frame(m)); err != nil {
		return fmt.Errorf("mutplot: writing %s: %w", fname, err)
	}
	return nil
}
