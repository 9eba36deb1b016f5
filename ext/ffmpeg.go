/*
 * ffmpeg.go, part of mutamore.
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
	"strconv"
)

//FFmpegHandle encodes a numbered PNG sequence into an H.264 movie.
type FFmpegHandle struct {
	command   string
	inputname string //base name of the log file
	pattern   string
	out       string
	frameRate float64
	crf       int
}

func NewFFmpegHandle() *FFmpegHandle {
	F := new(FFmpegHandle)
	F.SetDefaults()
	return F
}

func (O *FFmpegHandle) SetDefaults() {
	O.command = "ffmpeg"
	O.inputname = "ffmpeg"
	O.crf = 25
}

//SetName sets the base name of the log file, name.log.
func (O *FFmpegHandle) SetName(name string) {
	O.inputname = name
}

func (O *FFmpegHandle) SetCommand(name string) {
	O.command = name
}

//SetCRF sets the constant rate factor of the encoding. Lower is better.
func (O *FFmpegHandle) SetCRF(crf int) {
	O.crf = crf
}

//BuildInput sets the frames to encode, given as a printf-style pattern
//such as dir/%d.png, the frame rate and the output movie.
func (O *FFmpegHandle) BuildInput(pattern string, frameRate float64, out string) error {
	if frameRate <= 0 {
		return Error{ErrBadConfig, FFmpeg, out, "frame rate must be positive: " + strconv.FormatFloat(frameRate, 'g', -1, 64), []string{"BuildInput"}, true}
	}
	if pattern == "" || out == "" {
		return Error{ErrBadConfig, FFmpeg, out, "missing frames or output file", []string{"BuildInput"}, true}
	}
	O.pattern = pattern
	O.frameRate = frameRate
	O.out = out
	return nil
}

//Args returns the command line arguments for ffmpeg.
func (O *FFmpegHandle) Args() []string {
	return []string{
		"-y",
		"-f", "image2",
		"-framerate", strconv.FormatFloat(O.frameRate, 'f', -1, 64),
		"-i", O.pattern,
		"-vcodec", "libx264",
		"-crf", strconv.Itoa(O.crf),
		"-pix_fmt", "yuv420p",
		O.out,
	}
}

//Run encodes the movie, waiting or not for ffmpeg depending on wait.
func (O *FFmpegHandle) Run(wait bool) error {
	if O.out == "" {
		return Error{ErrBadConfig, FFmpeg, O.inputname, "BuildInput was not called", []string{"Run"}, true}
	}
	return run(FFmpeg, O.inputname+".log", O.command, O.Args(), wait)
}
