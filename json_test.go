/*
 * json_test.go, part of mutamore.
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
	"path/filepath"
	"testing"
)

func TestMatrixFile(Te *testing.T) {
	M := scoredMatrix("MKTAY", 2)
	S := M.TopN(4)
	name := filepath.Join(Te.TempDir(), "P1_matrix.json.gz")
	if err := MatrixFileWrite(name, M, S); err != nil {
		Te.Fatal(err)
	}
	back, sel, err := MatrixFileRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if back.Seq() != "MKTAY" || back.ID != "test" {
		Te.Errorf("unexpected matrix %s %s", back.ID, back.Seq())
	}
	for _, m := range M.Mutations() {
		if back.Score(m) != M.Score(m) {
			Te.Errorf("%s: %v vs %v", m, back.Score(m), M.Score(m))
		}
	}
	if len(sel) != 4 {
		Te.Fatalf("expected 4 selected mutations, got %d", len(sel))
	}
	for _, m := range sel {
		if !S.Selected(m) {
			Te.Errorf("%s was not selected", m)
		}
	}
}

func TestMatrixUnmarshalErrors(Te *testing.T) {
	M := new(Matrix)
	if err := json.Unmarshal([]byte(`{"sequence":"MK","scores":[[1,1]]}`), M); err == nil {
		Te.Errorf("expected an error for a matrix with one row")
	}
	if err := json.Unmarshal([]byte(`{"sequence":"MK","alphabet":"ACGT","scores":[]}`), M); err == nil {
		Te.Errorf("expected an error for a foreign alphabet")
	}
}
