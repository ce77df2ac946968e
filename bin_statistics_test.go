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

import   "strings"
import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestBinStatistics1(test *testing.T) {
  stats := NewBinStatistics(1, 2)
  require.NoError(test, stats.Add("b", FeatureVector{1}, FeatureVector{0, 4}))
  require.NoError(test, stats.Add("a", FeatureVector{2}, FeatureVector{1, 1}))
  require.NoError(test, stats.Add("b", FeatureVector{3}, FeatureVector{0, 2}))
  require.NoError(test, stats.Add(UnbinnedName, FeatureVector{9}, FeatureVector{9, 9}))
  require.NoError(test, stats.Add("", FeatureVector{9}, FeatureVector{9, 9}))

  assert.Error(test, stats.Add("a", FeatureVector{1, 2}, FeatureVector{0, 4}))
  assert.Error(test, stats.Add("a", FeatureVector{1}, FeatureVector{0}))

  assert.Equal(test, 2, stats.Count("b"))
  assert.Equal(test, 1, stats.Count("a"))
  assert.Equal(test, 0, stats.Count(UnbinnedName))

  bins := stats.Bins()
  require.Equal(test, []string{"b", "a"}, bins.Names())
  assert.InDeltaSlice(test, FeatureVector{2},    bins[0].ShortMean, 1e-12)
  assert.InDeltaSlice(test, FeatureVector{1},    bins[0].ShortStd,  1e-12)
  assert.InDeltaSlice(test, FeatureVector{0, 3}, bins[0].LongMean,  1e-12)
  assert.InDeltaSlice(test, FeatureVector{0, 1}, bins[0].LongStd,   1e-12)
  assert.InDeltaSlice(test, FeatureVector{0, 0}, bins[1].LongStd,   1e-12)
}

func TestCollectBinStatistics(test *testing.T) {
  reader := NewVectorPairReader(
    strings.NewReader("0.5 0.5\n0.1 0.9\n0.3 0.7\n"),
    strings.NewReader("1 0\n0 1\n1 0\n"))
  stats, err := CollectBinStatistics(reader, strings.NewReader("bin1\nUnBinned\nbin1\n"))
  require.NoError(test, err)

  bins := stats.Bins()
  require.Equal(test, 1, len(bins))
  assert.Equal(test, "bin1", bins[0].Name)
  assert.InDeltaSlice(test, FeatureVector{0.4, 0.6}, bins[0].ShortMean, 1e-12)
  assert.InDeltaSlice(test, FeatureVector{0.1, 0.1}, bins[0].ShortStd,  1e-12)
  assert.InDeltaSlice(test, FeatureVector{1.0, 0.0}, bins[0].LongMean,  1e-12)

  assert.InDeltaSlice(test, FeatureVector{0.0, 0.0}, bins[0].LongStd,   1e-12)

  reader = NewVectorPairReader(
    strings.NewReader("0.5 0.5\n0.1 0.9\n"),
    strings.NewReader("1 0\n0 1\n"))
  _, err  = CollectBinStatistics(reader, strings.NewReader("bin1\n"))
  assert.Error(test, err)

  stats, err = CollectBinStatistics(NewVectorPairReader(strings.NewReader(""), strings.NewReader("")), strings.NewReader(""))
  require.NoError(test, err)
  assert.Equal(test, 0, len(stats.Bins()))
}
