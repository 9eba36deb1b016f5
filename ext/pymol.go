/*
 * pymol.go, part of mutamore.
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

package ext

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/mutamore/mutamore"
)

//Coloring of the cartoons by B-factor (pLDDT for most predictors).
const (
	SpectrumPalette = "red red red orange yellow cyan blue"
	SpectrumMin     = 0
	SpectrumMax     = 100
)

//Render is one image to be rendered by PyMOL: the mutant structure in
//Structure, with the residue mutated by Mutation, saved to PNG.
type Render struct {
	Mutation  mutamore.Mutation
	Structure string
	PNG       string
}

//PyMOLHandle renders cartoon images of mutant structures, superimposed on
//the wild type.
type PyMOLHandle struct {
	command       string
	inputname     string
	zoom          float64
	width, height int
}

func NewPyMOLHandle() *PyMOLHandle {
	P := new(PyMOLHandle)
	P.SetDefaults()
	return P
}

func (O *PyMOLHandle) SetDefaults() {
	O.command = "pymol"
	O.inputname = "render"
	O.width = 1080
	O.height = 720
}

//SetName sets the base name for the script, name.pml, and the log, name.log.
func (O *PyMOLHandle) SetName(name string) {
	O.inputname = name
}

func (O *PyMOLHandle) SetCommand(name string) {
	O.command = name
}

//SetZoom sets the buffer, in A, around the wild type when zooming. 0 keeps
//PyMOL's view.
func (O *PyMOLHandle) SetZoom(z float64) {
	O.zoom = z
}

//SetSize sets the size of the images in pixels.
func (O *PyMOLHandle) SetSize(width, height int) {
	O.width = width
	O.height = height
}

//Script returns the name of the script written by BuildInput.
func (O *PyMOLHandle) Script() string {
	return O.inputname + ".pml"
}

//BuildInput writes a script that renders every job whose PNG doesn't exist
//yet, with wt loaded as the reference for the superposition. It returns the
//number of images the script renders.
func (O *PyMOLHandle) BuildInput(wt string, jobs []Render) (int, error) {
	if O.width <= 0 || O.height <= 0 {
		return 0, Error{ErrBadConfig, PyMOL, O.inputname, fmt.Sprintf("invalid image size %dx%d", O.width, O.height), []string{"BuildInput"}, true}
	}
	fout, err := os.Create(O.Script())
	if err != nil {
		return 0, Error{ErrNoInput, PyMOL, O.Script(), err.Error(), []string{"os.Create", "BuildInput"}, true}
	}
	defer fout.Close()
	out := bufio.NewWriter(fout)
	fmt.Fprintf(out, "load %s, wt\n", wt)
	fmt.Fprintf(out, "bg_color white\n")
	fmt.Fprintf(out, "set ray_opaque_background, 1\n")
	fmt.Fprintf(out, "hide everything\n")
	n := 0
	for _, j := range jobs {
		if _, err := os.Stat(j.PNG); err == nil {
			continue
		}
		n++
		fmt.Fprintf(out, "load %s, mut\n", j.Structure)
		fmt.Fprintf(out, "align mut, wt\n")
		fmt.Fprintf(out, "reset\n")
		if O.zoom != 0 {
			fmt.Fprintf(out, "zoom wt, %s\n", strconv.FormatFloat(O.zoom, 'f', -1, 64))
		}
		fmt.Fprintf(out, "disable all\n")
		fmt.Fprintf(out, "enable mut\n")
		fmt.Fprintf(out, "hide everything, mut\n")
		fmt.Fprintf(out, "show cartoon, mut\n")
		fmt.Fprintf(out, "spectrum b, %s, mut, minimum=%d, maximum=%d\n", SpectrumPalette, SpectrumMin, SpectrumMax)
		fmt.Fprintf(out, "color black, mut and resi %d\n", j.Mutation.Pos+1)
		fmt.Fprintf(out, "png %s, width=%d, height=%d, dpi=72, ray=1\n", j.PNG, O.width, O.height)
		fmt.Fprintf(out, "delete mut\n")
	}
	fmt.Fprintf(out, "quit\n")
	if err := out.Flush(); err != nil {
		return 0, Error{ErrNoInput, PyMOL, O.Script(), err.Error(), []string{"Flush", "BuildInput"}, true}
	}
	return n, nil
}

//Run runs PyMOL in batch mode on the script, waiting or not for the images
//depending on wait.
func (O *PyMOLHandle) Run(wait bool) error {
	return run(PyMOL, O.inputname+".log", O.command, []string{"-cq", O.Script()}, wait)
}
