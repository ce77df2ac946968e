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

// Dense index of all canonical k-mers. Every code in [0, 4^k) maps to the
// position of its canonical k-mer, positions are assigned in ascending
// order of canonical codes.
type KmerIndex struct {
  codec     KmerCodec
  indices []int      // code -> position
  codes   []uint64   // position -> canonical code
}

/* -------------------------------------------------------------------------- */

func NewKmerIndex(k int) (KmerIndex, error) {
  if k < 1 || k > 12 {
    return KmerIndex{}, fmt.Errorf("NewKmerIndex(): k-mer size `%d' out of range [1, 12]", k)
  }
  r := KmerIndex{codec: NewKmerCodec(k)}
  n := int(r.codec.Size())
  r.indices = make([]int, n)
  r.codes   = []uint64{}
  for i := 0; i < n; i++ {
    c := r.codec.Canonical(uint64(i))
    if c != uint64(i) {
      // canonical code is smaller and therefore already known
      r.indices[i] = r.indices[c]
    } else {
      r.indices[i] = len(r.codes)
      r.codes      = append(r.codes, c)
    }
  }
  return r, nil
}

/* -------------------------------------------------------------------------- */

func (obj KmerIndex) Codec() KmerCodec {
  return obj.codec
}

// Number of canonical k-mers.
func (obj KmerIndex) Length() int {
  return len(obj.codes)
}

func (obj KmerIndex) Index(code uint64) int {
  return obj.indices[code]
}

func (obj KmerIndex) Code(i int) uint64 {
  return obj.codes[i]
}

// Name of the i-th canonical k-mer in the form `kmer|revcomp'. Palindromic
// k-mers are shown only once.
func (obj KmerIndex) KmerName(i int) string {
  c1 := obj.codes[i]
  c2 := obj.codec.RevComp(c1)
  if c1 == c2 {
    return obj.codec.Decode(c1)
  }
  return fmt.Sprintf("%s|%s", obj.codec.Decode(c1), obj.codec.Decode(c2))
}
