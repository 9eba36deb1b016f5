/*
 * movie.go, part of mutamore.
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
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mutamore/mutamore"
	"github.com/mutamore/mutamore/ext"
	"github.com/mutamore/mutamore/frames"
	"github.com/mutamore/mutamore/histo"
	"github.com/mutamore/mutamore/mutplot"
)

//Temporary subdirectories for each protein.
const (
	structureDir = "png"
	matrixDir    = "mut_matrices_png"
	compositeDir = "composite_png"
)

//Run predicts and renders as set in C. Errors for a protein don't stop the
//others; the returned error joins all of them. Problems that affect every
//protein, such as a resolution too low for the longest sequence, are
//returned before anything is done.
func Run(ctx context.Context, C *Config) error {
	if err := C.Validate(); err != nil {
		return err
	}
	recs, err := mutamore.FASTAFileRead(C.Input)
	if err != nil {
		return err
	}
	layout := NewLayout(C.Width, C.Height)
	if C.Render() {
		if err := CheckResolution(recs, layout); err != nil {
			return err
		}
		for _, r := range recs {
			if _, err := C.ProteinTempDir(r.ID); err != nil {
				return err
			}
		}
	}
	exp, err := ExperimentalStructures(C.ExperimentalDir)
	if err != nil {
		return err
	}
	for _, dir := range []string{C.TempDir, C.PredictionDir, C.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("movie: %w", err)
		}
	}
	if C.Predict() {
		P, err := PredictionInput(C, recs, exp)
		if err != nil {
			return err
		}
		log.Printf("Predicting structures with %s", P.Script())
		if err := P.Run(true); err != nil {
			return err
		}
	}
	if !C.Render() {
		return nil
	}
	var errs []error
	for _, r := range recs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		log.Printf("Rendering %s (%d residues)", r.ID, len(r.Seq))
		if err := RenderProtein(ctx, C, layout, r, exp); err != nil {
			log.Printf("Could not render %s: %v", r.ID, err)
			errs = append(errs, fmt.Errorf("%s: %w", r.ID, err))
		}
		if dir, err := C.ProteinTempDir(r.ID); err == nil && !C.KeepTemp {
			os.RemoveAll(dir)
		}
	}
	return errors.Join(errs...)
}

//PredictionInput writes every mutant sequence without an experimental
//structure to a FASTA file in the temporary directory and returns the
//predictor, ready to run.
func PredictionInput(C *Config, recs []mutamore.Record, exp map[string]string) (*ext.PredictorHandle, error) {
	fasta := filepath.Join(C.TempDir, "mutants.fasta")
	skip := func(id string, m mutamore.Mutation) bool {
		_, ok := exp[m.String()]
		return ok
	}
	n, err := mutamore.MutantFASTAFileWrite(fasta, recs, skip)
	if err != nil {
		return nil, err
	}
	log.Printf("%d sequences to predict written to %s", n, fasta)
	P := ext.NewPredictorHandle()
	P.SetName(filepath.Join(C.TempDir, "predict"))
	P.SetCommand(C.Shell)
	P.SetTemplate(C.PredictorScript)
	if err := P.BuildInput(fasta, C.PredictionDir); err != nil {
		return nil, err
	}
	return P, nil
}

//RenderProtein scores the mutants of rec and renders its movie to the
//output directory, along with the mutation matrix and the similarity
//profile.
func RenderProtein(ctx context.Context, C *Config, layout Layout, rec mutamore.Record, exp map[string]string) error {
	dir, err := C.ProteinTempDir(rec.ID)
	if err != nil {
		return err
	}
	pngs := filepath.Join(dir, structureDir)
	mats := filepath.Join(dir, matrixDir)
	comps := filepath.Join(dir, compositeDir)
	for _, d := range []string{pngs, mats, comps} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("movie: %w", err)
		}
	}
	S := NewScorer(C, exp)
	M, err := S.ScoreMutations(rec)
	if err != nil {
		return err
	}
	sel := M.All()
	if C.Top > 0 {
		sel = M.TopN(C.Top)
	}
	muts := sel.Mutations()
	log.Printf("%d of %d mutations of %s selected for rendering", sel.Count(), len(M.Mutations()), rec.ID)
	if err := mutamore.MatrixFileWrite(filepath.Join(C.OutputDir, rec.ID+"_matrix.json.gz"), M, sel); err != nil {
		return err
	}
	scores := make([]float64, 0, len(M.Mutations()))
	for _, m := range M.Mutations() {
		scores = append(scores, M.Score(m))
	}
	H := histo.NewData(histo.ScoreDividers(10), scores)
	log.Printf("Similarity distribution for the mutations of %s:\n%s", rec.ID, H)
	if err := H.FileWrite(filepath.Join(C.OutputDir, rec.ID+"_histogram.json")); err != nil {
		return err
	}
	if err := mutplot.Profile(M, sel, filepath.Join(C.OutputDir, rec.ID+"_profile."+C.ProfileFormat)); err != nil {
		return err
	}
	if len(muts) == 0 {
		return nil
	}
	style := layout.Style(C.ColorMin)
	if err := renderStructures(C, layout, style, S, rec, muts, pngs); err != nil {
		return err
	}
	R, err := mutplot.NewMatrixRenderer(M, style)
	if err != nil {
		return err
	}
	comp := &frames.Compositor{Width: layout.Width, Height: layout.Height, MatrixWidth: layout.MatrixWidth}
	prog := newProgress("Composing frames of "+rec.ID, len(muts))
	for k, m := range muts {
		if err := ctx.Err(); err != nil {
			return err
		}
		mpng := mutamore.MatrixPNG(mats, rec.ID, m)
		if err := R.WriteFrame(mpng, m); err != nil {
			return err
		}
		spng := mutamore.StructurePNG(pngs, rec.ID, m)
		if _, err := os.Stat(spng); err != nil {
			log.Printf("WARNING: no 3D image for mutation %s of %s, the frame will only show the matrix", m, rec.ID)
			spng = ""
		}
		if err := comp.ComposeFiles(spng, mpng, mutamore.CompositePNG(comps, k)); err != nil {
			return err
		}
		prog.step()
	}
	F := ext.NewFFmpegHandle()
	F.SetCommand(C.FFmpeg)
	F.SetCRF(C.CRF)
	F.SetName(filepath.Join(dir, "ffmpeg"))
	out := filepath.Join(C.OutputDir, rec.ID+".mp4")
	if err := F.BuildInput(mutamore.CompositePattern(comps), sel.FrameRate(), out); err != nil {
		return err
	}
	if err := F.Run(true); err != nil {
		return err
	}
	log.Printf("Movie for %s written to %s", rec.ID, out)
	return nil
}

//renderStructures renders, with PyMOL, the 3D images not yet in pngs
//and writes the mutation name on each of them.
func renderStructures(C *Config, layout Layout, style mutplot.Style, S *Scorer, rec mutamore.Record, muts []mutamore.Mutation, pngs string) error {
	jobs := make([]ext.Render, 0, len(muts))
	for _, m := range muts {
		png := mutamore.StructurePNG(pngs, rec.ID, m)
		if _, err := os.Stat(png); err == nil {
			continue
		}
		jobs = append(jobs, ext.Render{Mutation: m, Structure: S.StructurePath(rec.ID, m), PNG: png})
	}
	if len(jobs) == 0 {
		return nil
	}
	P := ext.NewPyMOLHandle()
	P.SetCommand(C.PyMOL)
	P.SetName(filepath.Join(filepath.Dir(pngs), "render"))
	P.SetSize(layout.StructureWidth, layout.Height)
	P.SetZoom(C.Zoom)
	if _, err := P.BuildInput(S.WildTypePath(rec.ID), jobs); err != nil {
		return err
	}
	log.Printf("Rendering %d structures of %s", len(jobs), rec.ID)
	if err := P.Run(true); err != nil {
		return err
	}
	face, err := mutplot.Face(2 * style.FontSize)
	if err != nil {
		return err
	}
	for _, j := range jobs {
		if _, err := os.Stat(j.PNG); err != nil {
			continue
		}
		if err := frames.Annotate(j.PNG, j.Mutation.String(), face); err != nil {
			return err
		}
	}
	return nil
}
