/*
 * main.go, part of mutamore.
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

//mutamore renders a movie of the predicted structural effect of every
//single point mutation of the proteins in a FASTA file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/mutamore/mutamore"
	"github.com/mutamore/mutamore/movie"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

//parseFlags returns the run settings from the command line arguments.
func parseFlags(args []string, stderr io.Writer) (*movie.Config, error) {
	C := movie.NewConfig()
	var chain string
	fs := flag.NewFlagSet("mutamore", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&C.Input, "input_fasta", "", "FASTA file with the wild type sequences (required)")
	fs.StringVar(&C.Input, "i", "", "FASTA file with the wild type sequences (required)")
	fs.StringVar(&C.OutputDir, "output_dir", C.OutputDir, "Directory for the movies and the other results")
	fs.StringVar(&C.OutputDir, "o", C.OutputDir, "Directory for the movies and the other results")
	fs.IntVar(&C.Width, "width", C.Width, "Movie width in pixels")
	fs.IntVar(&C.Height, "height", C.Height, "Movie height in pixels")
	fs.StringVar(&C.TempDir, "temp_dir", C.TempDir, "Directory for temporary files")
	fs.StringVar(&C.TempDir, "t", C.TempDir, "Directory for temporary files")
	fs.StringVar(&C.PredictionDir, "prediction_dir", C.PredictionDir, "Directory for the predicted structures")
	fs.StringVar(&C.PredictionDir, "p", C.PredictionDir, "Directory for the predicted structures")
	fs.StringVar(&C.ExperimentalDir, "experimental_dir", "", "Directory with experimental structures named like A12C.pdb, used instead of predictions")
	fs.StringVar(&C.PredictorScript, "predictor_script", "", "Predictor script template, with MUTAMORE_INPUT and MUTAMORE_OUTPUT placeholders")
	fs.StringVar(&C.PredictorScript, "s", "", "Predictor script template, with MUTAMORE_INPUT and MUTAMORE_OUTPUT placeholders")
	fs.Float64Var(&C.Zoom, "zoom_factor", 0, "Buffer in A around the wild type when zooming the 3D view (0 keeps PyMOL's view)")
	fs.Float64Var(&C.Zoom, "z", 0, "Buffer in A around the wild type when zooming the 3D view (0 keeps PyMOL's view)")
	fs.IntVar(&C.Top, "top", 0, "Render only the N most disruptive mutations")
	fs.BoolVar(&C.OnlyPredict, "only-predict", false, "Only predict the structures")
	fs.BoolVar(&C.OnlyRender, "only-render", false, "Only render, with structures predicted before")
	fs.StringVar(&chain, "chain", "A", "Chain of the predicted structures to compare")
	fs.Float64Var(&C.ColorMin, "color_min", C.ColorMin, "Similarity mapped to the darkest color of the mutation matrix")
	fs.BoolVar(&C.KeepTemp, "keep_temp", false, "Keep the temporary files")
	fs.StringVar(&C.ProfileFormat, "profile_format", C.ProfileFormat, "Format of the similarity profile plot: png, svg or pdf")
	fs.IntVar(&C.Workers, "workers", C.Workers, "Structures read and scored concurrently")
	fs.StringVar(&C.PyMOL, "pymol", C.PyMOL, "PyMOL executable")
	fs.StringVar(&C.FFmpeg, "ffmpeg", C.FFmpeg, "ffmpeg executable")
	fs.IntVar(&C.CRF, "crf", C.CRF, "Constant rate factor for the movie encoding, 0 to 51 (lower is better)")
	fs.StringVar(&C.Shell, "shell", C.Shell, "Shell that runs the predictor script, in interactive mode")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if len(chain) != 1 {
		return nil, fmt.Errorf("the chain must be a single character, got %q", chain)
	}
	C.Chain = chain[0]
	if err := C.Validate(); err != nil {
		return nil, err
	}
	return C, nil
}

func run(args []string, stderr io.Writer) int {
	C, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = movie.Run(ctx, C)
	var rerr *mutamore.ResolutionError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &rerr):
		fmt.Fprintln(stderr, rerr)
	default:
		log.Printf("mutamore finished with errors:\n%v", err)
	}
	return 1
}
