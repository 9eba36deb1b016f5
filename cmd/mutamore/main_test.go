/*
 * main_test.go, part of mutamore.
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFlags(Te *testing.T) {
	var stderr bytes.Buffer
	C, err := parseFlags([]string{"-i", "in.fasta", "--only-render", "--chain", "B", "--top", "50", "-z", "4.5", "--height", "1080"}, &stderr)
	if err != nil {
		Te.Fatal(err)
	}
	if C.Input != "in.fasta" || !C.OnlyRender || C.Chain != 'B' || C.Top != 50 || C.Zoom != 4.5 || C.Height != 1080 {
		Te.Errorf("unexpected config %+v", C)
	}
	if C.Width != 1280 || C.ColorMin != 0.3 || C.TempDir != "./tmp" || C.CRF != 25 || C.Shell != "bash" {
		Te.Errorf("defaults not set: %+v", C)
	}
	C, err = parseFlags([]string{"-i", "in.fasta", "--only-render", "--crf", "18", "--shell", "zsh"}, &stderr)
	if err != nil {
		Te.Fatal(err)
	}
	if C.CRF != 18 || C.Shell != "zsh" {
		Te.Errorf("unexpected encoding settings %d, %s", C.CRF, C.Shell)
	}
	for _, args := range [][]string{
		{"--only-render"},
		{"-i", "in.fasta", "--only-render", "--only-predict"},
		{"-i", "in.fasta"},
		{"-i", "in.fasta", "--only-render", "--chain", "AB"},
		{"-i", "in.fasta", "--only-render", "extra"},
		{"-i", "in.fasta", "--only-render", "--crf", "60"},
	} {
		if _, err := parseFlags(args, &stderr); err == nil {
			Te.Errorf("expected an error for %v", args)
		}
	}
}

func TestRunResolution(Te *testing.T) {
	dir := Te.TempDir()
	fasta := filepath.Join(dir, "in.fasta")
	if err := writeFile(fasta, ">long\n"+strings.Repeat("A", 1000)+"\n"); err != nil {
		Te.Fatal(err)
	}
	var stderr bytes.Buffer
	code := run([]string{"-i", fasta, "--only-render", "-t", filepath.Join(dir, "tmp"), "-p", filepath.Join(dir, "pred"), "-o", dir}, &stderr)
	if code != 1 {
		Te.Errorf("expected exit status 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "--width 1920 --height 1080") {
		Te.Errorf("expected resolution advice, got:\n%s", stderr.String())
	}
}

func writeFile(fname, content string) error {
	return os.WriteFile(fname, []byte(content), 0o644)
}
