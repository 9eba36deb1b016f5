/*
 * predictor.go, part of mutamore.
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

package ext

import (
	"os"
	"strings"
)

//Placeholders in predictor templates.
const (
	InputPlaceholder  = "MUTAMORE_INPUT"
	OutputPlaceholder = "MUTAMORE_OUTPUT"
)

//PredictorHandle runs a structure predictor through a user supplied shell
//script template. The template gets the placeholders replaced by the
//FASTA file with the sequences to predict and the directory where one PDB
//file per sequence is expected.
type PredictorHandle struct {
	command   string
	inputname string
	template  string
}

func NewPredictorHandle() *PredictorHandle {
	P := new(PredictorHandle)
	P.SetDefaults()
	return P
}

func (O *PredictorHandle) SetDefaults() {
	O.command = "bash"
	O.inputname = "predict"
}

//SetName sets the base name of the script and log files. The script is
//written to name.sh and the program output to name.log.
func (O *PredictorHandle) SetName(name string) {
	O.inputname = name
}

func (O *PredictorHandle) SetCommand(name string) {
	O.command = name
}

//SetTemplate sets the file with the script template.
func (O *PredictorHandle) SetTemplate(fname string) {
	O.template = fname
}

//Script returns the name of the script written by BuildInput.
func (O *PredictorHandle) Script() string {
	return O.inputname + ".sh"
}

//BuildInput writes the executable prediction script for the sequences in
//fasta, to be written to outdir.
func (O *PredictorHandle) BuildInput(fasta, outdir string) error {
	if O.template == "" {
		return Error{ErrBadConfig, Predictor, O.inputname, "no script template given", []string{"BuildInput"}, true}
	}
	tmpl, err := os.ReadFile(O.template)
	if err != nil {
		return Error{ErrNoInput, Predictor, O.template, err.Error(), []string{"os.ReadFile", "BuildInput"}, true}
	}
	script := strings.NewReplacer(InputPlaceholder, fasta, OutputPlaceholder, outdir).Replace(string(tmpl))
	if err := os.WriteFile(O.Script(), []byte(script), 0o755); err != nil {
		return Error{ErrNoInput, Predictor, O.Script(), err.Error(), []string{"os.WriteFile", "BuildInput"}, true}
	}
	//WriteFile doesn't change the permissions of an existing file.
	if err := os.Chmod(O.Script(), 0o755); err != nil {
		return Error{ErrNoInput, Predictor, O.Script(), err.Error(), []string{"os.Chmod", "BuildInput"}, true}
	}
	return nil
}

//Run runs the script in an interactive shell, so the user's environment
//(conda and the like) is available. It waits or not for the predictions
//depending on wait.
func (O *PredictorHandle) Run(wait bool) error {
	return run(Predictor, O.inputname+".log", O.command, []string{"-i", O.Script()}, wait)
}
