/*
 * aminoacids.go, part of mutamore.
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

import "strings"

//Alphabet contains the 20 standard amino acids in the order used for the
//rows of a mutation matrix.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

//NAminoAcids is the number of rows in a mutation matrix.
const NAminoAcids = len(Alphabet)

//AlphabetIndex returns the row of the amino acid aa, or -1 if aa is not
//one of the 20 standard amino acids.
func AlphabetIndex(aa byte) int {
	return strings.IndexByte(Alphabet, aa)
}

//three2OneLetter maps 3-letter residue names to 1-letter ones.
var three2OneLetter = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O', "MSE": 'M',
	"HID": 'H', "HIE": 'H', "HIP": 'H', "HSD": 'H', "HSE": 'H', "HSP": 'H',
	"CYX": 'C', "ASH": 'D', "GLH": 'E', "LYN": 'K',
}

//Three2One returns the 1-letter code for a 3-letter residue name, 'X'
//if the residue is not known.
func Three2One(name string) byte {
	if b, ok := three2OneLetter[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return b
	}
	return 'X'
}

var one2ThreeLetter = map[byte]string{
	'A': "ALA", 'R': "ARG", 'N': "ASN", 'D': "ASP", 'C': "CYS",
	'E': "GLU", 'Q': "GLN", 'G': "GLY", 'H': "HIS", 'I': "ILE",
	'L': "LEU", 'K': "LYS", 'M': "MET", 'F': "PHE", 'P': "PRO",
	'S': "SER", 'T': "THR", 'W': "TRP", 'Y': "TYR", 'V': "VAL",
	'U': "SEC", 'O': "PYL",
}

func one2Three(aa byte) string {
	if s, ok := one2ThreeLetter[aa]; ok {
		return s
	}
	return "UNK"
}
