/*
 * frames.go, part of mutamore.
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

//Package frames composes the final movie frames from the 3D structure images
//and the mutation matrix images.
package frames

import (
	"fmt"
	"image"
	"image/color"

	"git.sr.ht/~sbinet/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
)

//Annotate writes text in the top-left corner of the PNG image in fname,
//overwriting the file.
func Annotate(fname, text string, face font.Face) error {
	img, err := gg.LoadPNG(fname)
	if err != nil {
		return fmt.Errorf("frames: reading %s: %w", fname, err)
	}
	dc := gg.NewContextForImage(img)
	if face != nil {
		dc.SetFontFace(face)
	}
	dc.SetColor(color.Black)
	_, h := dc.MeasureString(text)
	dc.DrawStringAnchored(text, h/2, h/2, 0, 1)
	if err := dc.SavePNG(fname); err != nil {
		return fmt.Errorf("frames: writing %s: %w", fname, err)
	}
	return nil
}

//Compositor puts together frames of Width x Height pixels, the 3D image on
//the left and the matrix image, MatrixWidth pixels wide, on the right.
type Compositor struct {
	Width, Height int
	MatrixWidth   int
}

//StructureSize returns the size the 3D images should have.
func (C *Compositor) StructureSize() (int, int) {
	return C.Width - C.MatrixWidth, C.Height
}

//Compose returns the frame made of the structure and matrix images.
//The structure image is scaled if its size doesn't match StructureSize.
func (C *Compositor) Compose(structure, matrix image.Image) (image.Image, error) {
	if C.MatrixWidth <= 0 || C.MatrixWidth >= C.Width || C.Height <= 0 {
		return nil, fmt.Errorf("frames: invalid layout %dx%d with a %d pixel matrix", C.Width, C.Height, C.MatrixWidth)
	}
	dc := gg.NewContext(C.Width, C.Height)
	dc.SetColor(color.White)
	dc.Clear()
	w, h := C.StructureSize()
	if structure != nil {
		b := structure.Bounds()
		if b.Dx() != w || b.Dy() != h {
			scaled := image.NewRGBA(image.Rect(0, 0, w, h))
			xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), structure, b, xdraw.Over, nil)
			structure = scaled
		}
		dc.DrawImage(structure, 0, 0)
	}
	if matrix != nil {
		dc.DrawImage(matrix, C.Width-C.MatrixWidth, 0)
	}
	return dc.Image(), nil
}

//ComposeFiles composes the frame from the PNG files structure and matrix and
//writes it to out. A missing structure image is left blank.
func (C *Compositor) ComposeFiles(structure, matrix, out string) error {
	var simg image.Image
	var err error
	if structure != "" {
		simg, err = gg.LoadPNG(structure)
		if err != nil {
			return fmt.Errorf("frames: reading %s: %w", structure, err)
		}
	}
	mimg, err := gg.LoadPNG(matrix)
	if err != nil {
		return fmt.Errorf("frames: reading %s: %w", matrix, err)
	}
	frame, err := C.Compose(simg, mimg)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(out, frame); err != nil {
		return fmt.Errorf("frames: writing %s: %w", out, err)
	}
	return nil
}
