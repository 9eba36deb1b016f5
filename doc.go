/*
 * doc.go, part of mutamore.
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

/*Package mutamore is the main package of the mutamore tool, which renders movies of the
predicted structural effect of every single point mutation of a protein.

It provides the amino acid alphabet, mutations and the file naming conventions shared with
the structure predictors and renderers, the mutation matrix (one similarity score per
substitution and position) with its top-N selection, and readers for FASTA sequences and
for the alpha carbons of PDB structures.

The similarity scores themselves are computed by the lddt package from the distance maps of
the v3 package. Rendering lives in mutplot and frames, the external programs (structure
predictor, PyMOL, ffmpeg) are driven from ext, and movie ties everything together.
*/
package mutamore
