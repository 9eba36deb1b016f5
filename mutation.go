/*
 * mutation.go, part of mutamore.
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
	"path/filepath"
	"strconv"
)

//Mutation is a single point substitution in a sequence.
type Mutation struct {
	Pos  int  //0-based position in the sequence
	From byte //wild type residue
	To   byte //substituted residue
}

//String returns the usual name for the mutation, with a 1-based
//position, i.e. A12C.
func (m Mutation) String() string {
	return fmt.Sprintf("%c%d%c", m.From, m.Pos+1, m.To)
}

//Row returns the mutation matrix row for the mutation.
func (m Mutation) Row() int {
	return AlphabetIndex(m.To)
}

//Apply returns the mutated version of seq.
func (m Mutation) Apply(seq string) string {
	b := []byte(seq)
	b[m.Pos] = m.To
	return string(b)
}

//ParseMutation parses names like A12C.
func ParseMutation(s string) (Mutation, error) {
	if len(s) < 3 {
		return Mutation{}, Error{fmt.Sprintf("Invalid mutation name %q", s), "", []string{"ParseMutation"}, false}
	}
	pos, err := strconv.Atoi(s[1 : len(s)-1])
	if err != nil || pos < 1 {
		return Mutation{}, Error{fmt.Sprintf("Invalid position in mutation name %q", s), "", []string{"ParseMutation"}, false}
	}
	m := Mutation{Pos: pos - 1, From: s[0], To: s[len(s)-1]}
	if AlphabetIndex(m.To) < 0 {
		return Mutation{}, Error{fmt.Sprintf("Invalid substituted residue in mutation name %q", s), "", []string{"ParseMutation"}, false}
	}
	return m, nil
}

//Mutations returns every single substitution of seq to one of the 20
//standard amino acids, ordered by position and then by alphabet order.
//There are 19 per position when the wild type residue is standard.
func Mutations(seq string) []Mutation {
	ret := make([]Mutation, 0, len(seq)*(NAminoAcids-1))
	for i := 0; i < len(seq); i++ {
		for j := 0; j < NAminoAcids; j++ {
			aa := Alphabet[j]
			if aa == seq[i] {
				continue
			}
			ret = append(ret, Mutation{Pos: i, From: seq[i], To: aa})
		}
	}
	return ret
}

//File naming conventions shared by the predictor scripts and the renderers.

//WildTypePath is the structure of the wild type protein id in dir.
func WildTypePath(dir, id string) string {
	return filepath.Join(dir, id+".pdb")
}

//MutantID is the sequence identifier given to the mutant m of protein id.
func MutantID(id string, m Mutation) string {
	return id + "_" + m.String()
}

//MutantPath is the predicted structure for the mutant m of protein id.
func MutantPath(dir, id string, m Mutation) string {
	return filepath.Join(dir, MutantID(id, m)+".pdb")
}

//ExperimentalPath is the experimental structure for m, if there is one.
func ExperimentalPath(dir string, m Mutation) string {
	return filepath.Join(dir, m.String()+".pdb")
}

//StructurePNG is the rendered 3D frame for the mutant m of protein id.
func StructurePNG(dir, id string, m Mutation) string {
	return filepath.Join(dir, MutantID(id, m)+".png")
}

//MatrixPNG is the rendered mutation matrix frame for the mutant m of protein id.
func MatrixPNG(dir, id string, m Mutation) string {
	return filepath.Join(dir, fmt.Sprintf("%s_matrix_%s.png", id, m))
}

//CompositePNG is the nth frame of the movie.
func CompositePNG(dir string, n int) string {
	return filepath.Join(dir, strconv.Itoa(n)+".png")
}

//CompositePattern is the ffmpeg input pattern matching CompositePNG.
func CompositePattern(dir string) string {
	return filepath.Join(dir, "%d.png")
}
