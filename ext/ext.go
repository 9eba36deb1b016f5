/*
 * ext.go, part of mutamore.
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

//Package ext contains handles for the external programs used to predict
//and render mutant structures.
//All handles have the same shape: they are created with their defaults set,
//configured with SetName, SetCommand and friends, get their input files
//written with BuildInput and are run with Run.
package ext

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
)

//Program names, used in errors.
const (
	Predictor = "predictor"
	PyMOL     = "PyMOL"
	FFmpeg    = "ffmpeg"
)

//Error messages
const (
	ErrNotRunning = "Program not running"
	ErrNoInput    = "Input could not be built"
	ErrBadConfig  = "Invalid settings"
)

//Error is the error type for external program handles.
type Error struct {
	message    string
	code       string //the name of the program
	inputname  string //the input or output file related to the error
	additional string
	deco       []string
	critical   bool
}

func (err Error) Error() string {
	s := fmt.Sprintf("%s (%s): %s", err.code, err.inputname, err.message)
	if err.additional != "" {
		s += ": " + err.additional
	}
	if len(err.deco) > 0 {
		s += " [" + strings.Join(err.deco, " < ") + "]"
	}
	return s
}

//Code returns the name of the program related to the error.
func (err Error) Code() string { return err.code }

//InputName returns the name of the file related to the error.
func (err Error) InputName() string { return err.inputname }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//run executes command with args, sending its standard output and error to
//logname. If wait is false, it returns as soon as the program has started.
func run(program, logname, command string, args []string, wait bool) error {
	flog, err := os.Create(logname)
	if err != nil {
		return Error{ErrNotRunning, program, logname, err.Error(), []string{"os.Create", "run"}, true}
	}
	cmd := exec.Command(command, args...)
	cmd.Stdout = flog
	cmd.Stderr = flog
	log.Printf("%s %s > %s", command, strings.Join(args, " "), logname)
	if wait {
		err = cmd.Run()
		flog.Close()
		if err != nil {
			return Error{ErrNotRunning, program, logname, err.Error(), []string{"exec.Run", "run"}, true}
		}
		return nil
	}
	if err = cmd.Start(); err != nil {
		flog.Close()
		return Error{ErrNotRunning, program, logname, err.Error(), []string{"exec.Start", "run"}, true}
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("WARNING: %s finished with error: %v. See %s", program, err, logname)
		}
		flog.Close()
	}()
	return nil
}
