/*
 * mutplot_test.go, part of mutamore.
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
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.sr.ht/~sbinet/gg"

	"github.com/mutamore/mutamore"
	"github.com/mutamore/mutamore/gradient"
)

func testMatrix() *mutamore.Matrix {
	M := mutamore.NewMatrix("P1", "MKTAYIAKQR")
	for i, m := range M.Mutations() {
		M.Set(m, float64(i%10)/10)
	}
	return M
}

func sameColor(a color.Color, b color.RGBA) bool {
	r, g, bl, _ := a.RGBA()
	return uint8(r>>8) == b.R && uint8(g>>8) == b.G && uint8(bl>>8) == b.B
}

func TestMatrixFrame(Te *testing.T) {
	M := testMatrix()
	st := DefaultStyle(400, 720)
	R, err := NewMatrixRenderer(M, st)
	if err != nil {
		Te.Fatal(err)
	}
	ch := st.CellHeight(M.Len())
	if ch <= 0 {
		Te.Fatalf("expected a positive row height, got %d", ch)
	}
	m := mutamore.Mutation{Pos: 3, From: 'A', To: 'W'}
	img := R.Frame(m)
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 720 {
		Te.Fatalf("unexpected frame size %v", b)
	}
	//the center of a cell has the gradient color of its score
	other := mutamore.Mutation{Pos: 5, From: 'I', To: 'C'}
	x, y := R.cell(other.Row(), other.Pos)
	cx, cy := int(x)+st.CellWidth/2, int(y)+ch/2
	want := st.Colors.RGBA(M.Score(other))
	if got := img.At(cx, cy); !sameColor(got, want) {
		Te.Errorf("cell color %v, expected %v", got, want)
	}
	//the cell of the current mutation is outlined in black
	x, y = R.cell(m.Row(), m.Pos)
	if got := img.At(int(x), int(y)+ch/2); !sameColor(got, color.RGBA{0, 0, 0, 255}) {
		Te.Errorf("expected a black outline, got %v", got)
	}
	//the top right corner is background
	if got := img.At(st.Width-1, 0); !sameColor(got, color.RGBA{255, 255, 255, 255}) {
		Te.Errorf("expected white at the corner, got %v", got)
	}
	fname := filepath.Join(Te.TempDir(), mutamore.MatrixPNG("", "P1", m))
	if err := R.WriteFrame(fname, m); err != nil {
		Te.Fatal(err)
	}
	back, err := gg.LoadPNG(fname)
	if err != nil {
		Te.Fatal(err)
	}
	if back.Bounds().Dx() != 400 {
		Te.Errorf("unexpected width %d", back.Bounds().Dx())
	}
}

func TestMatrixTooLong(Te *testing.T) {
	M := mutamore.NewMatrix("long", strings.Repeat("A", 400))
	st := DefaultStyle(200, 360)
	_, err := NewMatrixRenderer(M, st)
	var re *mutamore.ResolutionError
	if !errors.As(err, &re) {
		Te.Fatalf("expected a ResolutionError, got %v", err)
	}
	if re.Required != 400+2*st.MarginV {
		Te.Errorf("unexpected required height %d", re.Required)
	}
}

func TestLegend(Te *testing.T) {
	img, err := Legend(gradient.New(0.3, 1), 80, 220, 12)
	if err != nil {
		Te.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 220 {
		Te.Errorf("unexpected legend size %v", b)
	}
	if _, err := Legend(gradient.New(0, 1), 0, 10, 12); err == nil {
		Te.Errorf("expected an error for an empty legend")
	}
}

func TestLegendTicks(Te *testing.T) {
	ticks := legendTicks(gradient.New(0.3, 1))
	if len(ticks) != 2 {
		Te.Fatalf("expected 2 ticks, got %v", ticks)
	}
	if ticks[0].Value != 0.3 || ticks[0].Label != "0%" {
		Te.Errorf("unexpected lower tick %+v", ticks[0])
	}
	if ticks[1].Value != 1 || ticks[1].Label != "100%" {
		Te.Errorf("unexpected upper tick %+v", ticks[1])
	}
}

func TestProfile(Te *testing.T) {
	M := testMatrix()
	fname := filepath.Join(Te.TempDir(), "P1_profile.png")
	if err := Profile(M, M.TopN(5), fname); err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(fname); err != nil || fi.Size() == 0 {
		Te.Errorf("profile plot not written: %v", err)
	}
	svg := filepath.Join(Te.TempDir(), "P1_profile.svg")
	if err := Profile(M, M.All(), svg); err != nil {
		Te.Fatal(err)
	}
	b, err := os.ReadFile(svg)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(string(b), "<svg") {
		Te.Errorf("not an SVG file")
	}
	if err := Profile(M, nil, filepath.Join(Te.TempDir(), "P1_profile.xyz")); err == nil {
		Te.Errorf("expected an error for an unknown format")
	}
}

func TestFace(Te *testing.T) {
	f, err := Face(12)
	if err != nil {
		Te.Fatal(err)
	}
	if f.Metrics().Height <= 0 {
		Te.Errorf("unexpected metrics %+v", f.Metrics())
	}
}
