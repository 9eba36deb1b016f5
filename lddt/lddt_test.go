/*
 * lddt_test.go, part of mutamore.
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

package lddt

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	v3 "github.com/mutamore/mutamore/v3"
)

//constMap returns an n x n distance map with all off-diagonal elements equal to d.
func constMap(n int, d float64) *mat.SymDense {
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.SetSym(i, j, d)
		}
	}
	return m
}

func helix(n int, rng *rand.Rand, noise float64) *v3.Matrix {
	data := make([]float64, 0, 3*n)
	for i := 0; i < n; i++ {
		t := float64(i) * 100 * math.Pi / 180
		data = append(data,
			2.3*math.Cos(t)+noise*rng.NormFloat64(),
			2.3*math.Sin(t)+noise*rng.NormFloat64(),
			1.5*float64(i)+noise*rng.NormFloat64())
	}
	M, err := v3.NewMatrix(data)
	if err != nil {
		panic(err)
	}
	return M
}

func permuted(M *v3.Matrix, perm []int) *v3.Matrix {
	d := mat.NewDense(len(perm), 3, nil)
	for k, v := range perm {
		d.SetRow(k, M.RawRowView(v))
	}
	return &v3.Matrix{Dense: d}
}

func TestIdentical(Te *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ref := v3.DistanceMap(helix(30, rng, 0))
	s, err := Score(ref, ref)
	if err != nil {
		Te.Fatal(err)
	}
	if s != 1.0 {
		Te.Errorf("identical maps should score exactly 1, got %v", s)
	}
}

//The three residue wild type used as smallest end to end case.
func TestMKT(Te *testing.T) {
	seq := "MKT"
	ref := constMap(len(seq), 10)
	cand := constMap(len(seq), 10)
	s, err := Score(ref, cand)
	if err != nil {
		Te.Fatal(err)
	}
	if s != 1.0 {
		Te.Errorf("expected 1.0 got %v", s)
	}
}

func TestAllDeviated(Te *testing.T) {
	ref := constMap(4, 10)
	for _, d := range []float64{14, 20, 2} {
		cand := constMap(4, d)
		s, err := Score(ref, cand)
		if err != nil {
			Te.Fatal(err)
		}
		if s != 0.0 {
			Te.Errorf("deviation %v: expected 0.0 got %v", math.Abs(d-10), s)
		}
	}
}

func TestPartialDeviation(Te *testing.T) {
	ref := constMap(3, 10)
	//deviation 0.75 is under 1, 2 and 4 but not under 0.5
	cand := constMap(3, 10.75)
	s, err := Score(ref, cand)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(s-0.75) > 1e-12 {
		Te.Errorf("expected 0.75 got %v", s)
	}
}

func TestCutoff(Te *testing.T) {
	//residue 2 is far from everything, so only the 0-1 pair is local.
	ref := mat.NewSymDense(3, []float64{
		0, 5, 30,
		5, 0, 30,
		30, 30, 0,
	})
	cand := mat.NewSymDense(3, []float64{
		0, 5, 3,
		5, 0, 3,
		3, 3, 0,
	})
	res, err := NewOptions().PerResidue(ref, cand)
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range res {
		if v != 1.0 {
			Te.Errorf("residue %d: expected 1.0, got %v", i, v)
		}
	}
	mask := NewOptions().Mask(ref)
	if mask.At(0, 1) != 1 || mask.At(0, 2) != 0 || mask.At(1, 1) != 0 {
		Te.Errorf("wrong mask %v", mat.Formatted(mask))
	}
}

func TestPermutation(Te *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 25
	refc := helix(n, rng, 0)
	candc := helix(n, rng, 0.8)
	perm := rng.Perm(n)
	s, err := Score(v3.DistanceMap(refc), v3.DistanceMap(candc))
	if err != nil {
		Te.Fatal(err)
	}
	sp, err := Score(v3.DistanceMap(permuted(refc, perm)), v3.DistanceMap(permuted(candc, perm)))
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(s-sp) > 1e-12 {
		Te.Errorf("relabeling both structures changed the score: %v vs %v", s, sp)
	}
	//Swapping the two termini of only one of the structures is a positional change.
	swap := make([]int, n)
	for i := range swap {
		swap[i] = i
	}
	swap[0], swap[n-1] = n-1, 0
	so, err := Score(v3.DistanceMap(refc), v3.DistanceMap(permuted(candc, swap)))
	if err != nil {
		Te.Fatal(err)
	}
	if so >= s {
		Te.Errorf("permuting only one structure should lower the score: %v vs %v", so, s)
	}
}

func TestErrors(Te *testing.T) {
	if _, err := Score(constMap(3, 1), constMap(4, 1)); err == nil {
		Te.Errorf("expected an error for maps of different size")
	}
	O := NewOptions()
	O.Thresholds = nil
	if _, err := O.Score(constMap(3, 1), constMap(3, 1)); err == nil {
		Te.Errorf("expected an error for empty thresholds")
	}
}
