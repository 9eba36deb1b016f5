/*
 * matrix_test.go, part of mutamore.
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

package mutamore

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"
)

//scoredMatrix returns a matrix for seq with a different score for each mutation.
func scoredMatrix(seq string, seed int64) *Matrix {
	M := NewMatrix("test", seq)
	rng := rand.New(rand.NewSource(seed))
	for _, m := range M.Mutations() {
		M.Set(m, rng.Float64())
	}
	return M
}

func TestNewMatrix(Te *testing.T) {
	M := NewMatrix("P1", "MKT")
	r, c := M.Dims()
	if r != 20 || c != 3 {
		Te.Fatalf("expected 20x3, got %dx%d", r, c)
	}
	if M.At('M', 0) != 1 || M.At('A', 2) != 1 {
		Te.Errorf("cells should start at 1")
	}
	m := Mutation{Pos: 1, From: 'K', To: 'W'}
	M.Set(m, 0.25)
	if M.Score(m) != 0.25 || M.At('W', 1) != 0.25 {
		Te.Errorf("Set/Score mismatch")
	}
	defer func() {
		if recover() == nil {
			Te.Errorf("setting a mutation that doesn't match the sequence should panic")
		}
	}()
	M.Set(Mutation{Pos: 1, From: 'M', To: 'W'}, 0)
}

func TestTopNExact(Te *testing.T) {
	M := scoredMatrix("MKTAYIAKQR", 3)
	for _, n := range []int{1, 5, 17, 100} {
		S := M.TopN(n)
		if S.Count() != n {
			Te.Errorf("n=%d: expected %d selected, got %d", n, n, S.Count())
		}
		//the selected ones must be the n lowest scores
		var all []float64
		for _, m := range M.Mutations() {
			all = append(all, M.Score(m))
		}
		sort.Float64s(all)
		for _, m := range S.Mutations() {
			if M.Score(m) > all[n-1] {
				Te.Errorf("n=%d: %s with score %v is over the threshold %v", n, m, M.Score(m), all[n-1])
			}
		}
	}
}

func TestTopNTies(Te *testing.T) {
	M := scoredMatrix("MKTAYIAKQR", 5)
	muts := M.Mutations()
	//four mutations share the lowest score
	for _, i := range []int{3, 40, 77, 150} {
		M.Set(muts[i], 0)
	}
	S := M.TopN(2)
	if S.Count() != 4 {
		Te.Errorf("ties should be included, expected 4 got %d", S.Count())
	}
	for _, i := range []int{3, 40, 77, 150} {
		if !S.Selected(muts[i]) {
			Te.Errorf("%s should be selected", muts[i])
		}
	}
}

func TestTopNAll(Te *testing.T) {
	M := scoredMatrix("MKT", 1)
	for _, n := range []int{0, -1, 57, 1000} {
		S := M.TopN(n)
		if S.Count() != 57 {
			Te.Errorf("n=%d: expected every mutation, got %d", n, S.Count())
		}
	}
	//identity cells are never selected
	if M.All().Selected(Mutation{Pos: 0, From: 'M', To: 'M'}) {
		Te.Errorf("identity cell selected")
	}
}

func TestFrameRate(Te *testing.T) {
	cases := []struct {
		selected int
		topN     bool
		want     float64
	}{
		{3, true, 2},
		{10, true, 2},
		{20, true, 4},
		{95, true, 19},
		{500, true, 19},
		{500, false, 19},
		{3, false, 19},
	}
	for _, c := range cases {
		if got := FrameRate(c.selected, c.topN); got != c.want {
			Te.Errorf("FrameRate(%d,%v)=%v, expected %v", c.selected, c.topN, got, c.want)
		}
	}
	M := scoredMatrix("MKTAYIAKQR", 9)
	if fr := M.TopN(30).FrameRate(); fr != 6 {
		Te.Errorf("expected 6 frames per second for 30 selected mutations, got %v", fr)
	}
	if fr := M.All().FrameRate(); fr != 19 {
		Te.Errorf("expected 19 frames per second without top-N, got %v", fr)
	}
}

func TestNthSmallest(Te *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(200)
		v := make([]float64, n)
		for i := range v {
			v[i] = float64(rng.Intn(10)) //plenty of repeats
		}
		sorted := append([]float64(nil), v...)
		sort.Float64s(sorted)
		k := rng.Intn(n)
		if got := nthSmallest(v, k); got != sorted[k] {
			Te.Errorf("trial %d: k=%d expected %v got %v", trial, k, sorted[k], got)
		}
	}
}

func TestPositionSummaries(Te *testing.T) {
	M := NewMatrix("P", "MK")
	M.Set(Mutation{Pos: 0, From: 'M', To: 'A'}, 0.1)
	M.Set(Mutation{Pos: 1, From: 'K', To: 'A'}, 0.62)
	min := M.PositionMin()
	if min[0] != 0.1 || min[1] != 0.62 {
		Te.Errorf("unexpected minima %v", min)
	}
	mean := M.PositionMean()
	want := (0.1 + 18) / 19
	if d := mean[0] - want; d > 1e-12 || d < -1e-12 {
		Te.Errorf("expected mean %v got %v", want, mean[0])
	}
	fmt.Println("minima", min, "means", mean)
}
