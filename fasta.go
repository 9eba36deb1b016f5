/*
 * fasta.go, part of mutamore.
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
	"fmt"
	"io"
	"strings"
	"unicode"
)

//Record is one sequence read from a FASTA file.
type Record struct {
	ID          string //first word of the header
	Description string //the whole header, without '>'
	Seq         string //upper case, without whitespace or a terminal '*'
}

//FASTARead reads all the records in r. Records need a non-empty ID, a
//non-empty sequence and IDs must be unique, as they are used to name files.
func FASTARead(r io.Reader) ([]Record, error) {
	var recs []Record
	var cur *Record
	var seq strings.Builder
	seen := make(map[string]bool)
	finish := func() error {
		if cur == nil {
			return nil
		}
		cur.Seq = strings.TrimSuffix(seq.String(), "*")
		seq.Reset()
		if cur.Seq == "" {
			return Error{fmt.Sprintf("Record %s has an empty sequence", cur.ID), "", []string{"FASTARead"}, true}
		}
		recs = append(recs, *cur)
		return nil
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := finish(); err != nil {
				return nil, err
			}
			desc := strings.TrimSpace(line[1:])
			fields := strings.Fields(desc)
			if len(fields) == 0 {
				return nil, Error{fmt.Sprintf("Empty header in line %d", lineno), "", []string{"FASTARead"}, true}
			}
			if !ValidID(fields[0]) {
				return nil, Error{fmt.Sprintf("Identifier %s in line %d can't be used as a file name", fields[0], lineno), "", []string{"FASTARead"}, true}
			}
			if seen[fields[0]] {
				return nil, Error{fmt.Sprintf("Duplicated identifier %s in line %d", fields[0], lineno), "", []string{"FASTARead"}, true}
			}
			seen[fields[0]] = true
			cur = &Record{ID: fields[0], Description: desc}
			continue
		}
		if cur == nil {
			return nil, Error{fmt.Sprintf("Sequence data before the first header in line %d", lineno), "", []string{"FASTARead"}, true}
		}
		for _, c := range line {
			if unicode.IsSpace(c) {
				continue
			}
			seq.WriteRune(unicode.ToUpper(c))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, Error{err.Error(), "", []string{"bufio.Scanner", "FASTARead"}, true}
	}
	if err := finish(); err != nil {
		return nil, err
	}
	return recs, nil
}

//ValidID returns true if id can name the files and directories of a
//protein: it is not "." or ".." and has no path separators.
func ValidID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}

//FASTAFileRead reads the records in the (possibly gzipped) file fname.
func FASTAFileRead(fname string) ([]Record, error) {
	f, err := openRead(fname)
	if err != nil {
		return nil, Error{err.Error(), fname, []string{"openRead", "FASTAFileRead"}, true}
	}
	defer f.Close()
	recs, err := FASTARead(f)
	if err != nil {
		if e, ok := err.(Error); ok {
			e.filename = fname
			err = e
		}
		return nil, errDecorate(err, "FASTAFileRead")
	}
	return recs, nil
}

//MutantFASTAWrite writes, for each record, the wild type sequence followed
//by every single point mutant, named with MutantID. Mutants for which skip
//returns true are left out. It returns the number of sequences written.
func MutantFASTAWrite(w io.Writer, recs []Record, skip func(id string, m Mutation) bool) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for _, r := range recs {
		if _, err := fmt.Fprintf(bw, ">%s\n%s\n", r.ID, r.Seq); err != nil {
			return n, Error{err.Error(), "", []string{"fmt.Fprintf", "MutantFASTAWrite"}, true}
		}
		n++
		for _, m := range Mutations(r.Seq) {
			if skip != nil && skip(r.ID, m) {
				continue
			}
			if _, err := fmt.Fprintf(bw, ">%s\n%s\n", MutantID(r.ID, m), m.Apply(r.Seq)); err != nil {
				return n, Error{err.Error(), "", []string{"fmt.Fprintf", "MutantFASTAWrite"}, true}
			}
			n++
		}
	}
	if err := bw.Flush(); err != nil {
		return n, Error{err.Error(), "", []string{"bufio.Flush", "MutantFASTAWrite"}, true}
	}
	return n, nil
}

//MutantFASTAFileWrite is MutantFASTAWrite to the file fname.
func MutantFASTAFileWrite(fname string, recs []Record, skip func(id string, m Mutation) bool) (int, error) {
	f, err := createWrite(fname)
	if err != nil {
		return 0, errDecorate(err, "MutantFASTAFileWrite")
	}
	n, err := MutantFASTAWrite(f, recs, skip)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = Error{cerr.Error(), fname, []string{"Close", "MutantFASTAFileWrite"}, true}
	}
	if err != nil {
		return n, errDecorate(err, "MutantFASTAFileWrite")
	}
	return n, nil
}
