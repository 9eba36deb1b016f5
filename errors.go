/*
 * errors.go, part of mutamore.
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
	"strings"
)

//Error is the general error type for the package. It carries the file
//involved, if any, and a decoration slice with the chain of callers.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("mutamore: %s", err.message)
	}
	return fmt.Sprintf("mutamore: %s (%s)", err.message, err.filename)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	err.deco = append(err.deco, dec)
	return err.deco
}

//Trail returns the callers the error went through, innermost first.
func (err Error) Trail() string { return strings.Join(err.deco, " < ") }

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//errDecorate adds caller to the trail of err if err is an Error.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	e.deco = e.Decorate(caller)
	return e
}

//MissingPredictionError is returned when the structure file for a mutation
//(or for the wild type) is not there.
type MissingPredictionError struct {
	ID       string
	Mutation string //empty for the wild type
	Path     string
	Err      error
}

func (err *MissingPredictionError) Error() string {
	what := "wild type"
	if err.Mutation != "" {
		what = "mutation " + err.Mutation
	}
	return fmt.Sprintf("mutamore: missing predicted structure for %s of %s: %s", what, err.ID, err.Path)
}

func (err *MissingPredictionError) Unwrap() error { return err.Err }

//Critical is false for mutants: a run can go on with the other proteins.
func (err *MissingPredictionError) Critical() bool { return err.Mutation == "" }

//LengthMismatchError is returned when a structure's chain doesn't have
//as many residues as the wild type sequence.
type LengthMismatchError struct {
	Path  string
	Chain byte
	Got   int
	Want  int
}

func (err *LengthMismatchError) Error() string {
	return fmt.Sprintf("mutamore: chain %c of %s has %d residues, the sequence has %d", err.Chain, err.Path, err.Got, err.Want)
}

func (err *LengthMismatchError) Critical() bool { return false }

//ResolutionError is returned when the requested movie height can't
//fit the mutation matrix of one or more proteins. Its message tells
//the user what resolution to ask for instead.
type ResolutionError struct {
	Height    int
	Required  int            //minimum height for all the proteins
	PerRecord map[string]int //minimum height for each protein that doesn't fit
	Order     []string       //IDs in PerRecord, in input order
}

func (err *ResolutionError) Error() string {
	var b strings.Builder
	b.WriteString("Can not render mutation matrices: your proteins are too long for the requested movie resolution.\n")
	for _, id := range err.Order {
		fmt.Fprintf(&b, "You will need a vertical resolution of at least %d to render the protein with identifier %s\n", err.PerRecord[id], id)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "To render all sequences in your input file, you would need a vertical resolution of at least %d.\n", err.Required)
	switch {
	case err.Required <= 1080:
		b.WriteString("Consider rendering in Full-HD by passing the command line arguments: --width 1920 --height 1080")
	case err.Required <= 2160:
		b.WriteString("Consider rendering in 4K resolution by passing the command line arguments: --width 3840 --height 2160\n")
		b.WriteString("This will take a while and use a lot of disk space. Instead, consider removing the longest sequences from your input file.")
	default:
		b.WriteString("You seem to have particularly long proteins in your input file! You can try setting a movie resolution as indicated above, but rendering times and disk space requirements will be massive.\n")
		b.WriteString("Consider removing particularly long sequences from your input file.")
	}
	return b.String()
}

func (err *ResolutionError) Critical() bool { return true }
