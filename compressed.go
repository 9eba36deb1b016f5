/*
 * compressed.go, part of mutamore.
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
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//multiCloser closes all its closers, in order, and returns the first error.
type multiCloser struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

//openRead opens fname for reading. Files with the .gz extension, or
//starting with the gzip magic number, are decompressed on the fly.
func openRead(fname string) (io.ReadCloser, error) {
	fh, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(fh)
	sig, _ := br.Peek(2)
	if strings.HasSuffix(strings.ToLower(fname), ".gz") || (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) {
		gr, err := gzip.NewReader(br)
		if err != nil {
			fh.Close()
			return nil, Error{"Couldn't start gzip decompression: " + err.Error(), fname, []string{"gzip.NewReader", "openRead"}, true}
		}
		return &multiCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return &multiCloser{Reader: br, closers: []io.Closer{fh}}, nil
}

//createWrite creates fname for writing. Files with the .gz extension are
//gzip-compressed.
func createWrite(fname string) (io.WriteCloser, error) {
	fh, err := os.Create(fname)
	if err != nil {
		return nil, Error{err.Error(), fname, []string{"os.Create", "createWrite"}, true}
	}
	if strings.HasSuffix(strings.ToLower(fname), ".gz") {
		gw, err := gzip.NewWriterLevel(fh, gzip.BestCompression)
		if err != nil {
			fh.Close()
			return nil, Error{err.Error(), fname, []string{"gzip.NewWriterLevel", "createWrite"}, true}
		}
		return &multiCloser{Writer: gw, closers: []io.Closer{gw, fh}}, nil
	}
	return fh, nil
}
