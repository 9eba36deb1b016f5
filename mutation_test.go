/*
 * mutation_test.go, part of mutamore.
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
	"path/filepath"
	"testing"
)

func TestMutations(Te *testing.T) {
	seq := "MKT"
	muts := Mutations(seq)
	if len(muts) != 3*19 {
		Te.Fatalf("expected %d mutations, got %d", 3*19, len(muts))
	}
	if muts[0].String() != "M1A" || muts[len(muts)-1].String() != "T3Y" {
		Te.Errorf("unexpected order, first %s last %s", muts[0], muts[len(muts)-1])
	}
	for _, m := range muts {
		if m.From == m.To {
			Te.Errorf("identity substitution %s", m)
		}
	}
	if got := muts[0].Apply(seq); got != "AKT" {
		Te.Errorf("expected AKT got %s", got)
	}
	if seq != "MKT" {
		Te.Errorf("Apply modified the wild type")
	}
}

func TestParseMutation(Te *testing.T) {
	m, err := ParseMutation("A12C")
	if err != nil {
		Te.Fatal(err)
	}
	if m.Pos != 11 || m.From != 'A' || m.To != 'C' {
		Te.Errorf("unexpected mutation %+v", m)
	}
	for _, bad := range []string{"A", "A0C", "AxC", "A12Z"} {
		if _, err := ParseMutation(bad); err == nil {
			Te.Errorf("expected an error for %s", bad)
		}
	}
}

func TestNaming(Te *testing.T) {
	m := Mutation{Pos: 0, From: 'M', To: 'A'}
	cases := [][2]string{
		{WildTypePath("pred", "P1"), filepath.Join("pred", "P1.pdb")},
		{MutantPath("pred", "P1", m), filepath.Join("pred", "P1_M1A.pdb")},
		{ExperimentalPath("exp", m), filepath.Join("exp", "M1A.pdb")},
		{StructurePNG("png", "P1", m), filepath.Join("png", "P1_M1A.png")},
		{MatrixPNG("mm", "P1", m), filepath.Join("mm", "P1_matrix_M1A.png")},
		{CompositePNG("c", 7), filepath.Join("c", "7.png")},
		{CompositePattern("c"), filepath.Join("c", "%d.png")},
	}
	for _, c := range cases {
		if got, want := c[0], c[1]; got != want {
			Te.Errorf("expected %s got %s", want, got)
		}
	}
}
