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

const MaxKmerSize = 32

/* -------------------------------------------------------------------------- */

// Rolling state of a k-mer window. The zero value is an empty window.
type KmerWindow struct {
  value  uint64
  length int
}

func (obj *KmerWindow) Reset() {
  obj.value  = 0
  obj.length = 0
}

/* -------------------------------------------------------------------------- */

// KmerCodec packs windows of k nucleotides into integer codes with two
// bits per base.
type KmerCodec struct {
  k    int
  mask uint64
}

/* -------------------------------------------------------------------------- */

func NewKmerCodec(k int) KmerCodec {
  if k < 1 || k > MaxKmerSize {
    panic(fmt.Sprintf("NewKmerCodec(): invalid k-mer size `%d'", k))
  }
  return KmerCodec{k: k, mask: kmerMask(k)}
}

/* -------------------------------------------------------------------------- */

func (obj KmerCodec) K() int {
  return obj.k
}

// Number of distinct codes, i.e. 4^k.
func (obj KmerCodec) Size() uint64 {
  return 1 << uint(2*obj.k)
}

/* -------------------------------------------------------------------------- */

// Step feeds the next character into the window. A code is returned as
// soon as k consecutive valid bases have been seen, after which every
// further valid base yields the next overlapping k-mer. Characters
// outside of the alphabet reset the window.
func (obj KmerCodec) Step(window *KmerWindow, c byte) (uint64, bool) {
  b := nucleotideCodes[c]
  if b == 0xFF {
    window.Reset()
    return 0, false
  }
  window.value   = ((window.value << 2) & obj.mask) + uint64(b)
  window.length += 1
  if window.length == obj.k {
    window.length -= 1
    return window.value, true
  }
  return 0, false
}

// Scan calls f for every k-mer of the sequence and returns the number
// of k-mers found.
func (obj KmerCodec) Scan(sequence []byte, f func(code uint64)) int {
  n := 0
  w := KmerWindow{}
  for i := 0; i < len(sequence); i++ {
    if code, ok := obj.Step(&w, sequence[i]); ok {
      f(code); n++
    }
  }
  return n
}

/* -------------------------------------------------------------------------- */

func (obj KmerCodec) RevComp(code uint64) uint64 {
  return RevComp(code, obj.k)
}

func (obj KmerCodec) Canonical(code uint64) uint64 {
  return Canonical(code, obj.k)
}

/* -------------------------------------------------------------------------- */

func (obj KmerCodec) Encode(kmer string) (uint64, error) {
  if len(kmer) != obj.k {
    return 0, fmt.Errorf("Encode(): k-mer `%s' has invalid length", kmer)
  }
  code := uint64(0)
  for i := 0; i < len(kmer); i++ {
    b := nucleotideCodes[kmer[i]]
    if b == 0xFF {
      return 0, fmt.Errorf("Encode(): k-mer `%s' contains invalid character `%c'", kmer, kmer[i])
    }
    code = code << 2 | uint64(b)
  }
  return code, nil
}

func (obj KmerCodec) Decode(code uint64) string {
  al := NucleotideAlphabet{}
  r  := make([]byte, obj.k)
  for i := obj.k-1; i >= 0; i-- {
    r[i], _ = al.Decode(byte(code & 3))
    code >>= 2
  }
  return string(r)
}

/* -------------------------------------------------------------------------- */

// RevComp computes the reverse complement of a k-mer code. The two bit
// groups are reversed within the full 64 bit word, complemented and
// shifted back into the lowest 2k bits.
func RevComp(code uint64, k int) uint64 {
  r := code
  r = (r >>  2 & 0x3333333333333333) | (r & 0x3333333333333333) <<  2
  r = (r >>  4 & 0x0F0F0F0F0F0F0F0F) | (r & 0x0F0F0F0F0F0F0F0F) <<  4
  r = (r >>  8 & 0x00FF00FF00FF00FF) | (r & 0x00FF00FF00FF00FF) <<  8
  r = (r >> 16 & 0x0000FFFF0000FFFF) | (r & 0x0000FFFF0000FFFF) << 16
  r = (r >> 32 & 0x00000000FFFFFFFF) | (r & 0x00000000FFFFFFFF) << 32
  r = r ^ 0xAAAAAAAAAAAAAAAA
  return r >> uint(2*(MaxKmerSize-k))
}

func Canonical(code uint64, k int) uint64 {
  if rc := RevComp(code, k); rc < code {
    return rc
  }
  return code
}

/* -------------------------------------------------------------------------- */

func kmerMask(k int) uint64 {
  if k >= MaxKmerSize {
    return ^uint64(0)
  }
  return (uint64(1) << uint(2*k)) - 1
}
