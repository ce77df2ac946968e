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

import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestKmerIndex1(test *testing.T) {
  // number of canonical k-mers
  for k, n := range map[int]int{1: 2, 2: 10, 3: 32, 4: 136} {
    index, err := NewKmerIndex(k)
    require.NoError(test, err)
    assert.Equal(test, n, index.Length(), "k=%d", k)
  }
  _, err := NewKmerIndex(0)
  assert.Error(test, err)
  _, err  = NewKmerIndex(13)
  assert.Error(test, err)
}

func TestKmerIndex2(test *testing.T) {
  index, err := NewKmerIndex(3)
  require.NoError(test, err)

  codec := index.Codec()
  for i := 1; i < index.Length(); i++ {
    assert.Less(test, index.Code(i-1), index.Code(i))
  }
  for code := uint64(0); code < codec.Size(); code++ {
    i := index.Index(code)
    assert.Equal(test, i, index.Index(codec.RevComp(code)))
    assert.Equal(test, codec.Canonical(code), index.Code(i))
  }
  assert.Equal(test, "AAA|TTT", index.KmerName(0))
}

func TestKmerIndex3(test *testing.T) {
  index, err := NewKmerIndex(2)
  require.NoError(test, err)

  code, _ := index.Codec().Encode("AT")
  // palindromes are named once
  assert.Equal(test, "AT", index.KmerName(index.Index(code)))
}
