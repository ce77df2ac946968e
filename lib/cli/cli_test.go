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


package cli

/* -------------------------------------------------------------------------- */

import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

import . "github.com/anuradhawick/MetaBCC-LR"

/* -------------------------------------------------------------------------- */

func TestOptions1(test *testing.T) {
  options := New()
  optK    := options.IntLong("k", 0, 0, "k-mer size")

  args := options.Parse([]string{"tool", "--threads=3", "-v", "--k=11", "reads.fa", "out.txt"}, 2, 2)
  assert.Equal(test, []string{"reads.fa", "out.txt"}, args)

  config := options.Config()
  SetInt(&config.LongK, *optK)
  assert.Equal(test, 3,     config.Threads)
  assert.Equal(test, 1,     config.Verbose)
  assert.Equal(test, 11,    config.LongK)
  // options not given keep their defaults
  assert.Equal(test, 10000, config.BatchSize)
}

func TestSetters(test *testing.T) {
  x := 5
  SetInt(&x, 0)
  assert.Equal(test, 5, x)
  SetInt(&x, 7)
  assert.Equal(test, 7, x)

  y := 0.5
  require.NoError(test, SetFloat(&y, ""))
  assert.Equal(test, 0.5, y)
  require.NoError(test, SetFloat(&y, "1e-3"))
  assert.Equal(test, 1e-3, y)
  assert.Error(test, SetFloat(&y, "x"))

  p := DualIncrement
  require.NoError(test, SetPolicy(&p, "canonical"))
  assert.Equal(test, CanonicalMerge, p)
  assert.Error(test, SetPolicy(&p, "none"))
}
