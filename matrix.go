/*
 * matrix.go, part of mutamore.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//Matrix is a mutation matrix: the similarity scores of every single
//substitution of a sequence, one row per amino acid (in Alphabet order)
//and one column per position. Cells for the wild type residue are 1.
type Matrix struct {
	ID  string
	seq string
	d   *mat.Dense
}

//NewMatrix returns a mutation matrix for seq with all cells set to 1.
func NewMatrix(id, seq string) *Matrix {
	if len(seq) == 0 {
		panic("mutamore.NewMatrix: empty sequence")
	}
	data := make([]float64, NAminoAcids*len(seq))
	for i := range data {
		data[i] = 1
	}
	return &Matrix{ID: id, seq: seq, d: mat.NewDense(NAminoAcids, len(seq), data)}
}

func (M *Matrix) Dims() (int, int) { return M.d.Dims() }

//Seq returns the wild type sequence.
func (M *Matrix) Seq() string { return M.seq }

//Len returns the length of the wild type sequence.
func (M *Matrix) Len() int { return len(M.seq) }

//Dense returns the underlying 20xL matrix. Changes to it are
//reflected in M.
func (M *Matrix) Dense() *mat.Dense { return M.d }

//At returns the score for residue aa at the 0-based position pos.
func (M *Matrix) At(aa byte, pos int) float64 {
	r := AlphabetIndex(aa)
	if r < 0 {
		panic(fmt.Sprintf("mutamore.Matrix.At: %c is not a standard amino acid", aa))
	}
	return M.d.At(r, pos)
}

//Score returns the score of the mutation m.
func (M *Matrix) Score(m Mutation) float64 {
	return M.d.At(m.Row(), m.Pos)
}

//Set sets the score of the mutation m.
func (M *Matrix) Set(m Mutation, v float64) {
	if m.Pos >= len(M.seq) || M.seq[m.Pos] != m.From {
		panic(fmt.Sprintf("mutamore.Matrix.Set: mutation %s doesn't match the sequence", m))
	}
	M.d.Set(m.Row(), m.Pos, v)
}

//Mutations returns all the mutations in the matrix, see Mutations.
func (M *Matrix) Mutations() []Mutation { return Mutations(M.seq) }

//PositionMin returns, for each position, the lowest score over its
//substitutions.
func (M *Matrix) PositionMin() []float64 {
	ret := make([]float64, len(M.seq))
	col := make([]float64, 0, NAminoAcids)
	for i := range ret {
		ret[i] = floats.Min(M.substitutions(i, col))
	}
	return ret
}

//PositionMean returns, for each position, the mean score over its
//substitutions.
func (M *Matrix) PositionMean() []float64 {
	ret := make([]float64, len(M.seq))
	col := make([]float64, 0, NAminoAcids)
	for i := range ret {
		ret[i] = stat.Mean(M.substitutions(i, col), nil)
	}
	return ret
}

//substitutions puts in dst the scores of the non-identity cells of column pos.
func (M *Matrix) substitutions(pos int, dst []float64) []float64 {
	dst = dst[:0]
	for r := 0; r < NAminoAcids; r++ {
		if Alphabet[r] == M.seq[pos] {
			continue
		}
		dst = append(dst, M.d.At(r, pos))
	}
	return dst
}

//Selection marks which cells of a mutation matrix are to be rendered.
type Selection struct {
	seq  string
	mask []bool //row-major, NAminoAcids x len(seq)
	n    int
	topN int //0 when every mutation is selected
}

//All returns a selection with every mutation of M.
func (M *Matrix) All() *Selection {
	S := &Selection{seq: M.seq, mask: make([]bool, NAminoAcids*len(M.seq))}
	for _, m := range M.Mutations() {
		S.mark(m)
	}
	return S
}

//TopN selects the n mutations with the lowest scores, i.e. the most
//disruptive ones. The n-th smallest score is taken as a threshold and
//every mutation scoring at or under it is selected, so ties can make the
//selection larger than n. If n<=0 or n is not smaller than the number of
//mutations, every mutation is selected.
func (M *Matrix) TopN(n int) *Selection {
	muts := M.Mutations()
	if n <= 0 || n >= len(muts) {
		S := M.All()
		if n > 0 {
			S.topN = n
		}
		return S
	}
	vals := make([]float64, len(muts))
	for i, m := range muts {
		vals[i] = M.Score(m)
	}
	threshold := nthSmallest(vals, n-1)
	S := &Selection{seq: M.seq, mask: make([]bool, NAminoAcids*len(M.seq)), topN: n}
	for _, m := range muts {
		if M.Score(m) <= threshold {
			S.mark(m)
		}
	}
	return S
}

func (S *Selection) mark(m Mutation) {
	i := m.Row()*len(S.seq) + m.Pos
	if !S.mask[i] {
		S.mask[i] = true
		S.n++
	}
}

//Selected returns true if m is in the selection.
func (S *Selection) Selected(m Mutation) bool {
	r := m.Row()
	if r < 0 || m.Pos < 0 || m.Pos >= len(S.seq) {
		return false
	}
	return S.mask[r*len(S.seq)+m.Pos]
}

//Count returns the number of selected mutations.
func (S *Selection) Count() int { return S.n }

//TopN returns the n requested from Matrix.TopN, or 0.
func (S *Selection) TopN() int { return S.topN }

//Mutations returns the selected mutations, ordered by position and then
//by alphabet order. This is the order of the frames in a movie.
func (S *Selection) Mutations() []Mutation {
	ret := make([]Mutation, 0, S.n)
	for _, m := range Mutations(S.seq) {
		if S.Selected(m) {
			ret = append(ret, m)
		}
	}
	return ret
}

//FrameRate returns the frame rate for a movie of the selection.
func (S *Selection) FrameRate() float64 {
	return FrameRate(S.n, S.topN > 0)
}

const (
	MaxFrameRate = 19.0
	MinFrameRate = 2.0
)

//FrameRate returns the frames per second for a movie with selected frames.
//Top-N movies get selected/5 frames per second, kept within
//[MinFrameRate, MaxFrameRate]; full movies play at MaxFrameRate.
func FrameRate(selected int, topN bool) float64 {
	if !topN {
		return MaxFrameRate
	}
	f := float64(selected) / 5
	if f < MinFrameRate {
		f = MinFrameRate
	}
	if f > MaxFrameRate {
		f = MaxFrameRate
	}
	return f
}

//nthSmallest returns the value that would be at index k if v were
//sorted. v is reordered. It uses a three-way quickselect partition, which
//keeps runs of equal scores (several structures with score 0, for
//instance) from degrading it.
func nthSmallest(v []float64, k int) float64 {
	if k < 0 || k >= len(v) {
		panic("mutamore: nthSmallest index out of range")
	}
	lo, hi := 0, len(v)
	for hi-lo > 1 {
		pivot := median3(v[lo], v[lo+(hi-lo)/2], v[hi-1])
		lt, i, gt := lo, lo, hi
		for i < gt {
			switch {
			case v[i] < pivot:
				v[lt], v[i] = v[i], v[lt]
				lt++
				i++
			case v[i] > pivot:
				gt--
				v[i], v[gt] = v[gt], v[i]
			default:
				i++
			}
		}
		switch {
		case k < lt:
			hi = lt
		case k >= gt:
			lo = gt
		default:
			return pivot
		}
	}
	return v[lo]
}

func median3(a, b, c float64) float64 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		return a
	}
	return b
}
