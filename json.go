/*
 * json.go, part of mutamore.
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
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type matrixJSON struct {
	ID       string      `json:"id"`
	Sequence string      `json:"sequence"`
	Alphabet string      `json:"alphabet"`
	Scores   [][]float64 `json:"scores"` //one row per amino acid
	TopN     int         `json:"top_n,omitempty"`
	Selected []string    `json:"selected,omitempty"`
}

func (M *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(M.toJSON(nil))
}

func (M *Matrix) toJSON(S *Selection) matrixJSON {
	r, _ := M.d.Dims()
	j := matrixJSON{ID: M.ID, Sequence: M.seq, Alphabet: Alphabet, Scores: make([][]float64, r)}
	for i := range j.Scores {
		j.Scores[i] = mat.Row(nil, i, M.d)
	}
	if S != nil {
		j.TopN = S.TopN()
		for _, m := range S.Mutations() {
			j.Selected = append(j.Selected, m.String())
		}
	}
	return j
}

func (M *Matrix) UnmarshalJSON(b []byte) error {
	var j matrixJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	_, err := M.fromJSON(j)
	return err
}

func (M *Matrix) fromJSON(j matrixJSON) ([]Mutation, error) {
	if j.Alphabet != "" && j.Alphabet != Alphabet {
		return nil, Error{fmt.Sprintf("Unsupported alphabet %s", j.Alphabet), "", []string{"fromJSON"}, true}
	}
	if len(j.Sequence) == 0 || len(j.Scores) != NAminoAcids {
		return nil, Error{"Ill-formed mutation matrix", "", []string{"fromJSON"}, true}
	}
	data := make([]float64, 0, NAminoAcids*len(j.Sequence))
	for i, row := range j.Scores {
		if len(row) != len(j.Sequence) {
			return nil, Error{fmt.Sprintf("Row %d has %d columns, the sequence has %d residues", i, len(row), len(j.Sequence)), "", []string{"fromJSON"}, true}
		}
		data = append(data, row...)
	}
	M.ID = j.ID
	M.seq = j.Sequence
	M.d = mat.NewDense(NAminoAcids, len(j.Sequence), data)
	sel := make([]Mutation, 0, len(j.Selected))
	for _, s := range j.Selected {
		m, err := ParseMutation(s)
		if err != nil {
			return nil, errDecorate(err, "fromJSON")
		}
		sel = append(sel, m)
	}
	return sel, nil
}

//MatrixFileWrite writes M and, if not nil, the selection S to fname as
//JSON. Names ending in .gz are compressed.
func MatrixFileWrite(fname string, M *Matrix, S *Selection) error {
	f, err := createWrite(fname)
	if err != nil {
		return errDecorate(err, "MatrixFileWrite")
	}
	enc := json.NewEncoder(f)
	err = enc.Encode(M.toJSON(S))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Error{err.Error(), fname, []string{"json.Encode", "MatrixFileWrite"}, true}
	}
	return nil
}

//MatrixFileRead reads a matrix written by MatrixFileWrite, and the
//selected mutations, if any were written.
func MatrixFileRead(fname string) (*Matrix, []Mutation, error) {
	f, err := openRead(fname)
	if err != nil {
		return nil, nil, Error{err.Error(), fname, []string{"openRead", "MatrixFileRead"}, true}
	}
	defer f.Close()
	var j matrixJSON
	if err := json.NewDecoder(f).Decode(&j); err != nil {
		return nil, nil, Error{err.Error(), fname, []string{"json.Decode", "MatrixFileRead"}, true}
	}
	M := new(Matrix)
	sel, err := M.fromJSON(j)
	if err != nil {
		return nil, nil, errDecorate(err, "MatrixFileRead")
	}
	return M, sel, nil
}
