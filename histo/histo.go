/*
 * histo.go, part of mutamore.
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

//Package histo builds histograms of similarity scores, to summarize how
//disruptive the mutations of a protein are.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Data is a histogram. Bin i holds the values in [dividers[i], dividers[i+1]).
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//ScoreDividers returns the dividers for bins equal bins over [0,1]. The
//last bin also includes 1.
func ScoreDividers(bins int) []float64 {
	if bins < 1 {
		bins = 1
	}
	d := floats.Span(make([]float64, bins+1), 0, 1)
	d[bins] = math.Nextafter(1, 2)
	return d
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil, in which case an empty histogram is created.
//Values outside the dividers are omitted.
func NewData(dividers []float64, rawdata []float64) *Data {
	if len(dividers) < 2 {
		panic("mutamore/histo: fewer than two dividers")
	}
	d := new(Data)
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(rawdata)
	}
	return d
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(dataJSON{
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a dataJSON
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) != len(a.Histo)+1 {
		return fmt.Errorf("mutamore/histo: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

type dataJSON struct {
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

//String prints a -hopefully- pretty string representation of
//the histogram, one line per bin.
func (D *Data) String() string {
	lines := make([]string, 0, len(D.histo)+1)
	lines = append(lines, fmt.Sprintf("Normalized: %v, TotalData: %d", D.normalized, D.total))
	for i, v := range D.histo {
		hi := math.Min(D.dividers[i+1], 1)
		lines = append(lines, fmt.Sprintf("%4.2f-%4.2f %9.3f", D.dividers[i], hi, v))
	}
	return strings.Join(lines, "\n")
}

//AddData adds the given data point(s) to the histogram
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	for _, v := range point {
		//values outside the dividers are just omitted.
		j := sort.SearchFloat64s(D.dividers, v)
		if j < len(D.dividers) && D.dividers[j] == v {
			j++
		}
		if j == 0 || j == len(D.dividers) {
			continue
		}
		D.histo[j-1]++
		D.total++
	}
	if norma {
		D.Normalize()
	}
}

//Normalized returns true if the histogram is normalized
func (D *Data) Normalized() bool { return D.normalized }

//Total returns the number of values in the histogram.
func (D *Data) Total() int { return D.total }

//Normalize normalizes the histogram
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	if normalize {
		n = 1 / n
	}
	D.normalized = normalize
	floats.Scale(n, D.histo)
}

//Dividers returns a copy of the dividers of the histogram.
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

//Counts returns a copy of the bins of the histogram.
func (D *Data) Counts() []float64 {
	return append([]float64(nil), D.histo...)
}

//Sum returns the sum of all bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//ReHisto replaces the contents of the histogram with rawdata, which is
//not modified.
func (D *Data) ReHisto(rawdata []float64) {
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	//stat.Histogram panics instead of omitting the values that are off
	//limits, so we remove them before the call.
	maxi := sort.SearchFloat64s(data, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(data, D.dividers[0])
	data = data[mini:maxi]
	D.total = len(data)
	D.normalized = false
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
}

//FileWrite writes the histogram as JSON to fname.
func (D *Data) FileWrite(fname string) error {
	b, err := json.MarshalIndent(D, "", "  ")
	if err != nil {
		return fmt.Errorf("mutamore/histo: %w", err)
	}
	if err := os.WriteFile(fname, b, 0o644); err != nil {
		return fmt.Errorf("mutamore/histo: %w", err)
	}
	return nil
}
