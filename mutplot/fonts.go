/*
 * fonts.go, part of mutamore.
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
	"sync"

	"github.com/go-fonts/liberation/liberationsansregular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

var (
	sansOnce sync.Once
	sans     *opentype.Font
	sansErr  error
)

//Face returns a Liberation Sans face of the given size in pixels.
func Face(size float64) (font.Face, error) {
	sansOnce.Do(func() {
		sans, sansErr = opentype.Parse(liberationsansregular.TTF)
	})
	if sansErr != nil {
		return nil, sansErr
	}
	if size < 1 {
		size = 1
	}
	return opentype.NewFace(sans, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}
