/*
 * lddt.go, part of mutamore.
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

//Package lddt compares distance maps with a local distance difference test.
//Two maps describing the same residues are compared pair by pair, only over the
//pairs that are in contact in the reference map, and the agreement is summarized
//into a per-residue and a global score in [0,1].
package lddt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	//DefaultCutoff is the maximum reference distance (A) for a pair to be scored.
	DefaultCutoff = 15.0
	//DefaultEpsilon stabilizes the per-residue ratio for residues without contacts.
	DefaultEpsilon = 1e-10
)

//DefaultThresholds are the deviation tolerances (A) of the test.
var DefaultThresholds = []float64{0.5, 1.0, 2.0, 4.0}

//Options control the test. The zero value is not usable, use NewOptions.
type Options struct {
	Cutoff     float64
	Thresholds []float64
	Epsilon    float64
}

//NewOptions returns the default options.
func NewOptions() *Options {
	O := new(Options)
	O.SetDefaults()
	return O
}

func (O *Options) SetDefaults() {
	O.Cutoff = DefaultCutoff
	O.Thresholds = append([]float64(nil), DefaultThresholds...)
	O.Epsilon = DefaultEpsilon
}

//Score returns the global score of cand against ref with the default options.
func Score(ref, cand mat.Symmetric) (float64, error) {
	return NewOptions().Score(ref, cand)
}

//Score returns the mean of the per-residue scores of cand against ref.
func (O *Options) Score(ref, cand mat.Symmetric) (float64, error) {
	res, err := O.PerResidue(ref, cand)
	if err != nil {
		return 0, err
	}
	return stat.Mean(res, nil), nil
}

//PerResidue returns, for each residue, the mean pair score over its local
//partners. A pair (i,j) is local if ref(i,j) < Cutoff and i != j.
//Each local pair scores the fraction of thresholds its deviation is under.
//Residues with no local partners score (eps+0)/(eps+0)=1.
func (O *Options) PerResidue(ref, cand mat.Symmetric) ([]float64, error) {
	if ref == nil || cand == nil {
		return nil, fmt.Errorf("lddt: nil distance map")
	}
	if len(O.Thresholds) == 0 {
		return nil, fmt.Errorf("lddt: no thresholds given")
	}
	n := ref.SymmetricDim()
	if m := cand.SymmetricDim(); m != n {
		return nil, fmt.Errorf("lddt: distance maps of different size: %d and %d", n, m)
	}
	if n == 0 {
		return nil, fmt.Errorf("lddt: empty distance maps")
	}
	nthres := float64(len(O.Thresholds))
	ret := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum, count float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			r := ref.At(i, j)
			if !(r < O.Cutoff) {
				continue
			}
			count++
			dev := math.Abs(r - cand.At(i, j))
			var under float64
			for _, t := range O.Thresholds {
				if dev < t {
					under++
				}
			}
			sum += under / nthres
		}
		if count == 0 {
			ret[i] = (O.Epsilon + sum) / (O.Epsilon + count)
			continue
		}
		ret[i] = sum / count
	}
	return ret, nil
}

//Mask returns the local contact mask of ref: element (i,j) is 1 if the
//pair is scored, 0 otherwise.
func (O *Options) Mask(ref mat.Symmetric) *mat.SymDense {
	n := ref.SymmetricDim()
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if ref.At(i, j) < O.Cutoff {
				m.SetSym(i, j, 1)
			}
		}
	}
	return m
}
