/*
 * score.go, part of mutamore.
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
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/mutamore/mutamore"
	"github.com/mutamore/mutamore/lddt"
)

//ExperimentalStructures returns the structures in dir named after a
//mutation (A12C.pdb and the like), by mutation name. An empty dir gives an
//empty map.
func ExperimentalStructures(dir string) (map[string]string, error) {
	ret := make(map[string]string)
	if dir == "" {
		return ret, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("movie: reading experimental structures: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".pdb") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".pdb")
		m, err := mutamore.ParseMutation(name)
		if err != nil {
			log.Printf("WARNING: ignoring %s in the experimental structure directory: %v", e.Name(), err)
			continue
		}
		ret[m.String()] = filepath.Join(dir, e.Name())
	}
	return ret, nil
}

//Scorer fills mutation matrices with the similarity between each mutant
//structure and the wild type.
type Scorer struct {
	Predictions  string            //directory with the predicted structures
	Experimental map[string]string //structures to use instead of the predictions, by mutation
	Chain        byte
	Workers      int
	Options      *lddt.Options
}

//NewScorer returns a Scorer for the settings in C.
func NewScorer(C *Config, experimental map[string]string) *Scorer {
	return &Scorer{
		Predictions:  C.PredictionDir,
		Experimental: experimental,
		Chain:        C.Chain,
		Workers:      C.Workers,
		Options:      lddt.NewOptions(),
	}
}

//StructurePath returns the structure file for the mutant m of protein id.
func (S *Scorer) StructurePath(id string, m mutamore.Mutation) string {
	if p, ok := S.Experimental[m.String()]; ok {
		return p
	}
	return mutamore.MutantPath(S.Predictions, id, m)
}

//WildTypePath returns the structure file for the wild type of protein id.
func (S *Scorer) WildTypePath(id string) string {
	return mutamore.WildTypePath(S.Predictions, id)
}

//ScoreMutations returns the mutation matrix for rec. Mutants whose
//structure has a different length than the sequence get a score of 0.
//A missing structure gives a *mutamore.MissingPredictionError.
func (S *Scorer) ScoreMutations(rec mutamore.Record) (*mutamore.Matrix, error) {
	L := len(rec.Seq)
	wt, err := mutamore.StructureRead(S.WildTypePath(rec.ID), S.Chain, L, rec.ID, "")
	if err != nil {
		return nil, err
	}
	ref := wt.DistanceMap()
	M := mutamore.NewMatrix(rec.ID, rec.Seq)
	muts := M.Mutations()
	workers := max(1, S.Workers)
	jobs := make(chan mutamore.Mutation)
	prog := newProgress("Scoring "+rec.ID, len(muts))
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		first  error
		failed bool
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if first == nil {
			first = err
		}
		failed = true
	}
	stopped := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return failed
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range jobs {
				if stopped() {
					continue
				}
				v, err := S.score(ref, rec, m)
				if err != nil {
					fail(err)
					continue
				}
				//each mutation has its own cell, so no locking is needed.
				M.Set(m, v)
				prog.step()
			}
		}()
	}
	for _, m := range muts {
		jobs <- m
	}
	close(jobs)
	wg.Wait()
	if first != nil {
		return nil, first
	}
	return M, nil
}

//score returns the similarity of the structure for the mutant m to ref.
func (S *Scorer) score(ref mat.Symmetric, rec mutamore.Record, m mutamore.Mutation) (float64, error) {
	fname := S.StructurePath(rec.ID, m)
	C, err := mutamore.StructureRead(fname, S.Chain, len(rec.Seq), rec.ID, m.String())
	var lerr *mutamore.LengthMismatchError
	if errors.As(err, &lerr) {
		log.Printf("WARNING: %v. Mutation %s of %s gets no similarity.", err, m, rec.ID)
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return S.Options.Score(ref, C.DistanceMap())
}

//progress logs the advance of a long task every 10%.
type progress struct {
	mu    sync.Mutex
	what  string
	total int
	done  int
	next  int //next tenth to be reported
}

func newProgress(what string, total int) *progress {
	return &progress{what: what, total: total, next: 1}
}

func (p *progress) step() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if p.total <= 0 {
		return
	}
	if tenth := p.done * 10 / p.total; tenth >= p.next {
		log.Printf("%s: %d%% (%d/%d)", p.what, tenth*10, p.done, p.total)
		p.next = tenth + 1
	}
}
