/*
 * config.go, part of mutamore.
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

//Package movie puts together the whole process: predicting the mutant
//structures, scoring them against the wild type and rendering one movie
//per protein.
package movie

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mutamore/mutamore"
)

//Config holds the settings for a run.
type Config struct {
	Input           string //FASTA file with the wild type sequences
	OutputDir       string
	Width, Height   int //movie resolution in pixels
	TempDir         string
	PredictionDir   string
	ExperimentalDir string //structures named like A12C.pdb, used instead of predictions
	PredictorScript string //template for the predictor, see ext.PredictorHandle
	Zoom            float64
	Top             int //render only the Top most disruptive mutations, if > 0
	OnlyPredict     bool
	OnlyRender      bool
	Chain           byte
	ColorMin        float64 //score mapped to the darkest color of the matrix
	KeepTemp        bool
	ProfileFormat   string //png, svg or pdf
	Workers         int    //structures scored concurrently
	Shell           string //runs the predictor script
	CRF             int    //ffmpeg constant rate factor, 0 to 51
	PyMOL           string
	FFmpeg          string
}

//NewConfig returns a Config with the defaults set.
func NewConfig() *Config {
	C := new(Config)
	C.SetDefaults()
	return C
}

//SetDefaults sets every setting except Input to its default value.
func (C *Config) SetDefaults() {
	C.OutputDir = "."
	C.Width = 1280
	C.Height = 720
	C.TempDir = "./tmp"
	C.PredictionDir = "./tmp/predictions"
	C.Chain = 'A'
	C.ColorMin = 0.3
	C.Workers = 4
	C.ProfileFormat = "png"
	C.Shell = "bash"
	C.CRF = 25
	C.PyMOL = "pymol"
	C.FFmpeg = "ffmpeg"
}

//Predict returns whether the run includes the prediction phase.
func (C *Config) Predict() bool { return !C.OnlyRender }

//Render returns whether the run includes the rendering phase.
func (C *Config) Render() bool { return !C.OnlyPredict }

//Validate checks the settings for contradictions and missing values.
func (C *Config) Validate() error {
	switch {
	case C.Input == "":
		return fmt.Errorf("movie: no input FASTA file given")
	case C.OnlyPredict && C.OnlyRender:
		return fmt.Errorf("movie: only-predict and only-render can't be used together")
	case C.Predict() && C.PredictorScript == "":
		return fmt.Errorf("movie: a predictor script is needed to predict structures (or use only-render)")
	case C.Width <= 0 || C.Height <= 0:
		return fmt.Errorf("movie: invalid resolution %dx%d", C.Width, C.Height)
	case C.ColorMin < 0 || C.ColorMin >= 1:
		return fmt.Errorf("movie: the color range minimum must be in [0,1), got %g", C.ColorMin)
	case C.ProfileFormat != "png" && C.ProfileFormat != "svg" && C.ProfileFormat != "pdf":
		return fmt.Errorf("movie: unknown format for the profile plot %q", C.ProfileFormat)
	case C.CRF < 0 || C.CRF > 51:
		return fmt.Errorf("movie: the constant rate factor must be in [0,51], got %d", C.CRF)
	case C.Top < 0:
		return fmt.Errorf("movie: negative number of top mutations %d", C.Top)
	}
	if C.Workers <= 0 {
		C.Workers = 1
	}
	return nil
}

//ProteinTempDir returns the temporary directory for the protein id. It is
//removed after rendering, so it is an error for it to hold the prediction
//or output directories.
func (C *Config) ProteinTempDir(id string) (string, error) {
	if !mutamore.ValidID(id) {
		return "", fmt.Errorf("movie: identifier %q can't name a directory", id)
	}
	dir := filepath.Join(C.TempDir, id)
	for _, keep := range []string{C.PredictionDir, C.OutputDir} {
		if keep == "" {
			continue
		}
		if within(dir, keep) {
			return "", fmt.Errorf("movie: the temporary directory for %s, %s, would hold %s. Rename the protein or move the directory", id, dir, keep)
		}
	}
	return dir, nil
}

//within returns true if path is dir or is inside it.
func within(dir, path string) bool {
	adir, err1 := filepath.Abs(dir)
	apath, err2 := filepath.Abs(path)
	if err1 != nil || err2 != nil {
		adir, apath = filepath.Clean(dir), filepath.Clean(path)
	}
	rel, err := filepath.Rel(adir, apath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
