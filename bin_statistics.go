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
import "io"
import "math"

/* -------------------------------------------------------------------------- */

// running mean and sum of squared deviations (Welford)
type vectorMoments struct {
  mean FeatureVector
  m2   FeatureVector
}

func newVectorMoments(n int) vectorMoments {
  return vectorMoments{mean: make(FeatureVector, n), m2: make(FeatureVector, n)}
}

func (obj vectorMoments) add(n int, x FeatureVector) {
  for i := 0; i < len(x); i++ {
    d := x[i] - obj.mean[i]
    obj.mean[i] += d/float64(n)
    obj.m2  [i] += d*(x[i] - obj.mean[i])
  }
}

// population standard deviation
func (obj vectorMoments) std(n int) FeatureVector {
  r := make(FeatureVector, len(obj.m2))
  for i := 0; i < len(r); i++ {
    r[i] = math.Sqrt(obj.m2[i]/float64(n))
  }
  return r
}

/* -------------------------------------------------------------------------- */

type binMoments struct {
  n     int
  short vectorMoments
  long  vectorMoments
}

// BinStatistics collects labeled profiles and estimates the Gaussian
// parameters of every bin.
type BinStatistics struct {
  shortDim int
  longDim  int
  labels []string
  bins     map[string]*binMoments
}

/* -------------------------------------------------------------------------- */

func NewBinStatistics(shortDim, longDim int) *BinStatistics {
  return &BinStatistics{
    shortDim: shortDim,
    longDim : longDim,
    bins    : make(map[string]*binMoments) }
}

/* -------------------------------------------------------------------------- */

// Add a labeled pair of profiles. Empty labels and the unbinned label are
// ignored.
func (obj *BinStatistics) Add(label string, short, long FeatureVector) error {
  if label == "" || label == UnbinnedName {
    return nil
  }
  if len(short) != obj.shortDim {
    return fmt.Errorf("Add(): composition profile has length %d, expected %d", len(short), obj.shortDim)
  }
  if len(long) != obj.longDim {
    return fmt.Errorf("Add(): abundance profile has length %d, expected %d", len(long), obj.longDim)
  }
  m, ok := obj.bins[label]
  if !ok {
    m = &binMoments{
      short: newVectorMoments(obj.shortDim),
      long : newVectorMoments(obj.longDim) }
    obj.bins[label] = m
    obj.labels      = append(obj.labels, label)
  }
  m.n++
  m.short.add(m.n, short)
  m.long .add(m.n, long)
  return nil
}

// Number of reads collected for a label.
func (obj *BinStatistics) Count(label string) int {
  if m, ok := obj.bins[label]; ok {
    return m.n
  }
  return 0
}

// Bins returns one bin per label in order of first appearance.
func (obj *BinStatistics) Bins() BinSet {
  r := make(BinSet, len(obj.labels))
  for i, label := range obj.labels {
    m := obj.bins[label]
    r[i] = Bin{
      Name     : label,
      LongMean : append(FeatureVector{}, m.long .mean...),
      ShortMean: append(FeatureVector{}, m.short.mean...),
      LongStd  : m.long .std(m.n),
      ShortStd : m.short.std(m.n) }
  }
  return r
}

/* -------------------------------------------------------------------------- */

// CollectBinStatistics reads profiles and labels in lockstep. Dimensions
// are taken from the first pair of profiles.
func CollectBinStatistics(profiles RecordReader[VectorPair], labels io.Reader) (*BinStatistics, error) {
  var r *BinStatistics
  labelReader := NewLabelReader(labels)
  for i := 1; ; i++ {
    pair,  err1 := profiles.Read()
    label, err2 := labelReader.Read()
    if err1 == io.EOF && err2 == io.EOF {
      break
    }
    if err1 != nil && err1 != io.EOF {
      return nil, err1
    }
    if err2 != nil && err2 != io.EOF {
      return nil, err2
    }
    if err1 == io.EOF || err2 == io.EOF {
      return nil, fmt.Errorf("CollectBinStatistics(): number of profiles and labels differ (line %d)", i)
    }
    if r == nil {
      r = NewBinStatistics(len(pair.Short), len(pair.Long))
    }
    if err := r.Add(label, pair.Short, pair.Long); err != nil {
      return nil, fmt.Errorf("CollectBinStatistics(): line %d: %v", i, err)
    }
  }
  if r == nil {
    return NewBinStatistics(0, 0), nil
  }
  return r, nil
}
