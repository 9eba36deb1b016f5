/*
 * pdb.go, part of mutamore.
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	v3 "github.com/mutamore/mutamore/v3"
)

//Residue identifies one residue of a chain.
type Residue struct {
	Name  string //3-letter name
	Num   int    //residue number in the file
	ICode byte   //insertion code
}

//Chain holds the alpha carbons of one chain in a structure file, in file order.
type Chain struct {
	ID       byte
	Residues []Residue
	Coords   *v3.Matrix //one row per residue
	Bfactors []float64  //the CA b-factor of each residue (pLDDT for most predictors)
}

//Len returns the number of residues in the chain.
func (C *Chain) Len() int { return len(C.Residues) }

//Sequence returns the 1-letter sequence of the chain, with X for
//unknown residues.
func (C *Chain) Sequence() string {
	b := make([]byte, len(C.Residues))
	for i, r := range C.Residues {
		b[i] = Three2One(r.Name)
	}
	return string(b)
}

//DistanceMap returns the CA distance map of the chain.
func (C *Chain) DistanceMap() *mat.SymDense {
	return v3.DistanceMap(C.Coords)
}

type caRecord struct {
	res   Residue
	coord [3]float64
	bfac  float64
}

//PDBRead reads the alpha carbons of chain from the first model in r.
//If chain is not in the file, but there is only one chain, that chain
//is read instead, so predictors that leave the chain blank still work.
func PDBRead(r io.Reader, chain byte) (*Chain, error) {
	chains := make(map[byte][]caRecord)
	var order []byte
	br := bufio.NewReader(r)
	lineno := 0
	for {
		line, err := br.ReadString('\n')
		if line == "" && err != nil {
			if err == io.EOF {
				break
			}
			return nil, Error{err.Error(), "", []string{"bufio.ReadString", "PDBRead"}, true}
		}
		lineno++
		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(line, "ENDMDL") {
			break
		}
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		if len(line) < 54 {
			return nil, Error{fmt.Sprintf("Line %d is too short for an atom record", lineno), "", []string{"PDBRead"}, true}
		}
		if strings.TrimSpace(line[12:16]) != "CA" {
			continue
		}
		//calcium ions are also called CA
		if strings.HasPrefix(line, "HETATM") && Three2One(line[17:20]) == 'X' {
			continue
		}
		alt := line[16]
		rec, err := parseCA(line)
		if err != nil {
			return nil, Error{fmt.Sprintf("Line %d: %s", lineno, err.Error()), "", []string{"parseCA", "PDBRead"}, true}
		}
		id := line[21]
		cur := chains[id]
		if n := len(cur); n > 0 && cur[n-1].res.Num == rec.res.Num && cur[n-1].res.ICode == rec.res.ICode {
			//Only the first alternate location is kept.
			continue
		}
		if alt != ' ' && alt != 'A' && alt != '1' {
			continue
		}
		if _, ok := chains[id]; !ok {
			order = append(order, id)
		}
		chains[id] = append(cur, rec)
	}
	recs, ok := chains[chain]
	if !ok {
		if len(order) != 1 {
			return nil, Error{fmt.Sprintf("Chain %c not found, the file has %d chains", chain, len(order)), "", []string{"PDBRead"}, true}
		}
		chain = order[0]
		recs = chains[chain]
	}
	C := &Chain{ID: chain, Residues: make([]Residue, len(recs)), Bfactors: make([]float64, len(recs))}
	data := make([]float64, 0, 3*len(recs))
	for i, v := range recs {
		C.Residues[i] = v.res
		C.Bfactors[i] = v.bfac
		data = append(data, v.coord[:]...)
	}
	var err error
	C.Coords, err = v3.NewMatrix(data)
	if err != nil {
		return nil, Error{err.Error(), "", []string{"v3.NewMatrix", "PDBRead"}, true}
	}
	return C, nil
}

func parseCA(line string) (caRecord, error) {
	var rec caRecord
	var err error
	rec.res.Name = strings.TrimSpace(line[17:20])
	rec.res.Num, err = strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return rec, fmt.Errorf("invalid residue number %q", line[22:26])
	}
	rec.res.ICode = line[26]
	for i, span := range [3][2]int{{30, 38}, {38, 46}, {46, 54}} {
		rec.coord[i], err = strconv.ParseFloat(strings.TrimSpace(line[span[0]:span[1]]), 64)
		if err != nil {
			return rec, fmt.Errorf("invalid coordinate %q", line[span[0]:span[1]])
		}
	}
	if len(line) >= 66 {
		//b-factors are optional, a bad one is just ignored.
		if b, err := strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64); err == nil {
			rec.bfac = b
		}
	}
	return rec, nil
}

//PDBFileRead reads the alpha carbons of chain from the (possibly gzipped)
//PDB file fname. If the file doesn't exist, the returned error wraps
//fs.ErrNotExist.
func PDBFileRead(fname string, chain byte) (*Chain, error) {
	f, err := openRead(fname)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("mutamore: PDBFileRead: %w", err)
		}
		return nil, Error{err.Error(), fname, []string{"openRead", "PDBFileRead"}, true}
	}
	defer f.Close()
	C, err := PDBRead(f, chain)
	if err != nil {
		if e, ok := err.(Error); ok {
			e.filename = fname
			err = e
		}
		return nil, errDecorate(err, "PDBFileRead")
	}
	return C, nil
}

//StructureRead reads the alpha carbons of chain from fname and checks
//that the chain has want residues. A missing file gives a
//*MissingPredictionError, a chain of the wrong length a
//*LengthMismatchError.
func StructureRead(fname string, chain byte, want int, id, mutation string) (*Chain, error) {
	C, err := PDBFileRead(fname, chain)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingPredictionError{ID: id, Mutation: mutation, Path: fname, Err: err}
		}
		return nil, err
	}
	if C.Len() != want {
		return nil, &LengthMismatchError{Path: fname, Chain: C.ID, Got: C.Len(), Want: want}
	}
	return C, nil
}

//PDBWrite writes the alpha carbons of C as a PDB file with one ATOM
//record per residue.
func PDBWrite(w io.Writer, C *Chain) error {
	bw := bufio.NewWriter(w)
	for i, r := range C.Residues {
		icode := r.ICode
		if icode == 0 {
			icode = ' '
		}
		_, err := fmt.Fprintf(bw, "ATOM  %5d  CA  %-3s %c%4d%c   %8.3f%8.3f%8.3f%6.2f%6.2f           C\n",
			i+1, r.Name, C.ID, r.Num, icode, C.Coords.At(i, 0), C.Coords.At(i, 1), C.Coords.At(i, 2), 1.0, C.Bfactors[i])
		if err != nil {
			return Error{err.Error(), "", []string{"fmt.Fprintf", "PDBWrite"}, true}
		}
	}
	if _, err := bw.WriteString("TER\nEND\n"); err != nil {
		return Error{err.Error(), "", []string{"WriteString", "PDBWrite"}, true}
	}
	if err := bw.Flush(); err != nil {
		return Error{err.Error(), "", []string{"bufio.Flush", "PDBWrite"}, true}
	}
	return nil
}

//PDBFileWrite writes C to fname, compressed if the name ends in .gz.
func PDBFileWrite(fname string, C *Chain) error {
	f, err := createWrite(fname)
	if err != nil {
		return errDecorate(err, "PDBFileWrite")
	}
	err = PDBWrite(f, C)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = Error{cerr.Error(), fname, []string{"Close", "PDBFileWrite"}, true}
	}
	if err != nil {
		return errDecorate(err, "PDBFileWrite")
	}
	return nil
}

//NewChain builds a chain of id from a sequence and its CA coordinates,
//numbering residues from 1. Bfactors may be nil.
func NewChain(id byte, seq string, coords *v3.Matrix, bfactors []float64) (*Chain, error) {
	if coords.NVecs() != len(seq) {
		return nil, Error{fmt.Sprintf("%d coordinates for a sequence of %d residues", coords.NVecs(), len(seq)), "", []string{"NewChain"}, true}
	}
	if bfactors == nil {
		bfactors = make([]float64, len(seq))
	}
	C := &Chain{ID: id, Residues: make([]Residue, len(seq)), Coords: coords, Bfactors: bfactors}
	for i := range seq {
		C.Residues[i] = Residue{Name: one2Three(seq[i]), Num: i + 1, ICode: ' '}
	}
	return C, nil
}
