/* Copyright (C) 2020 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package metabcc

/* -------------------------------------------------------------------------- */

import "fmt"

/* -------------------------------------------------------------------------- */

type FeatureVector []float64

func (obj FeatureVector) Sum() float64 {
  s := 0.0
  for _, x := range obj {
    s += x
  }
  return s
}

// Divide all entries by the number of k-mers (at least one) and drop
// entries below epsilon.
func (obj FeatureVector) normalize(total int, epsilon float64) {
  z := float64(iMax(1, total))
  for i := 0; i < len(obj); i++ {
    obj[i] /= z
    if obj[i] < epsilon {
      obj[i] = 0
    }
  }
}

/* -------------------------------------------------------------------------- */

// FeatureBuilder computes the feature vector of a single read. Every call
// returns a new vector.
type FeatureBuilder interface {
  Build(sequence []byte) FeatureVector
  Length() int
}

/* composition profile
 * -------------------------------------------------------------------------- */

// CompositionProfile counts the frequencies of canonical k-mers of small
// size, e.g. 32 canonical trimers.
type CompositionProfile struct {
  index   KmerIndex
  epsilon float64
}

func NewCompositionProfile(k int, epsilon float64) (CompositionProfile, error) {
  if index, err := NewKmerIndex(k); err != nil {
    return CompositionProfile{}, err
  } else {
    return CompositionProfile{index: index, epsilon: epsilon}, nil
  }
}

func (obj CompositionProfile) Length() int {
  return obj.index.Length()
}

func (obj CompositionProfile) Index() KmerIndex {
  return obj.index
}

func (obj CompositionProfile) Build(sequence []byte) FeatureVector {
  r := make(FeatureVector, obj.index.Length())
  n := obj.index.Codec().Scan(sequence, func(code uint64) {
    r[obj.index.Index(code)]++
  })
  r.normalize(n, obj.epsilon)
  return r
}

/* abundance profile
 * -------------------------------------------------------------------------- */

// AbundanceProfile is a histogram of global k-mer counts over all k-mers
// of a read. The first bin collects k-mers occurring at most binWidth
// times, the last bin all highly abundant k-mers.
type AbundanceProfile struct {
  table    *CountingTable
  binWidth  int
  bins      int
  epsilon   float64
}

func NewAbundanceProfile(table *CountingTable, binWidth, bins int, epsilon float64) (AbundanceProfile, error) {
  if table == nil {
    return AbundanceProfile{}, fmt.Errorf("NewAbundanceProfile(): no counting table given")
  }
  if binWidth < 1 {
    return AbundanceProfile{}, fmt.Errorf("NewAbundanceProfile(): invalid bin width `%d'", binWidth)
  }
  if bins < 1 {
    return AbundanceProfile{}, fmt.Errorf("NewAbundanceProfile(): invalid number of bins `%d'", bins)
  }
  return AbundanceProfile{table: table, binWidth: binWidth, bins: bins, epsilon: epsilon}, nil
}

func (obj AbundanceProfile) Length() int {
  return obj.bins
}

func (obj AbundanceProfile) Bucket(count uint32) int {
  w := uint64(obj.binWidth)
  c := uint64(count)
  if c <= w {
    return 0
  }
  if b := c/w - 1; b < uint64(obj.bins-1) {
    return int(b)
  }
  return obj.bins-1
}

func (obj AbundanceProfile) Build(sequence []byte) FeatureVector {
  r := make(FeatureVector, obj.bins)
  n := obj.table.Codec().Scan(sequence, func(code uint64) {
    r[obj.Bucket(obj.table.Lookup(code))]++
  })
  r.normalize(n, obj.epsilon)
  return r
}
