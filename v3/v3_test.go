/*
 * v3_test.go, part of mutamore.
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

package v3

import (
	"fmt"
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vecs, got %d", A.NVecs())
	}
	if d := A.VecDistance(0, 2); math.Abs(d-math.Sqrt(108)) > 1e-12 {
		Te.Errorf("expected a distance of %f, got %f", math.Sqrt(108), d)
	}
	fmt.Println(A)
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Errorf("expected an error for a slice not divisible by 3")
	}
}

func TestDistanceMap(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0, 3, 4, 0, 0, 0, 12})
	if err != nil {
		Te.Fatal(err)
	}
	D := DistanceMap(A)
	if D.SymmetricDim() != 3 {
		Te.Fatalf("expected a 3x3 map, got %d", D.SymmetricDim())
	}
	expected := [][]float64{
		{0, 5, 12},
		{5, 0, 13},
		{12, 13, 0},
	}
	for i := range expected {
		for j := range expected[i] {
			if math.Abs(D.At(i, j)-expected[i][j]) > 1e-12 {
				Te.Errorf("d(%d,%d)=%f, expected %f", i, j, D.At(i, j), expected[i][j])
			}
		}
	}
}
