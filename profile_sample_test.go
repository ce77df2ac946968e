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

import   "fmt"
import   "math/rand"
import   "os"
import   "path/filepath"
import   "strings"
import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

// profiles and labels where record i is recognizable in every column
func newTestProfiles(n int) (string, string, string) {
  short  := strings.Builder{}
  long   := strings.Builder{}
  labels := strings.Builder{}
  for i := 0; i < n; i++ {
    fmt.Fprintf(&short,  "%d 0.5\n", i)
    fmt.Fprintf(&long,   "1 0 %d\n", i)
    fmt.Fprintf(&labels, "bin%d\n",  i)
  }
  return short.String(), long.String(), labels.String()
}

/* -------------------------------------------------------------------------- */

func TestSampleProfiles1(test *testing.T) {
  short, long, labels := newTestProfiles(1000)

  reader := NewVectorPairReader(strings.NewReader(short), strings.NewReader(long))
  sample, err := SampleProfiles(reader, strings.NewReader(labels), 10, rand.New(rand.NewSource(1)))
  require.NoError(test, err)

  assert.Equal(test, 1000, sample.Total)
  require.Equal(test, 10, sample.Len())
  require.Equal(test, 10, len(sample.Pairs))
  require.Equal(test, 10, len(sample.Labels))
  for i := 0; i < sample.Len(); i++ {
    // records stay paired and in input order
    j := sample.Index[i]
    assert.Equal(test, FeatureVector{float64(j), 0.5}, sample.Pairs[i].Short)
    assert.Equal(test, FeatureVector{1, 0, float64(j)}, sample.Pairs[i].Long)
    assert.Equal(test, fmt.Sprintf("bin%d", j), sample.Labels[i])
    if i > 0 {
      assert.Less(test, sample.Index[i-1], j)
    }
  }
}

func TestSampleProfiles2(test *testing.T) {
  short, long, _ := newTestProfiles(5)

  // small inputs are kept completely
  reader := NewVectorPairReader(strings.NewReader(short), strings.NewReader(long))
  sample, err := SampleProfiles(reader, nil, 10, rand.New(rand.NewSource(1)))
  require.NoError(test, err)
  assert.Equal(test, []int{0, 1, 2, 3, 4}, sample.Index)
  assert.Equal(test, 0, len(sample.Labels))

  reader = NewVectorPairReader(strings.NewReader(short), strings.NewReader(long))
  _, err  = SampleProfiles(reader, strings.NewReader("bin0\nbin1\n"), 2, rand.New(rand.NewSource(1)))
  assert.Error(test, err)

  reader = NewVectorPairReader(strings.NewReader(short), strings.NewReader(long))
  _, err  = SampleProfiles(reader, nil, 0, rand.New(rand.NewSource(1)))
  assert.Error(test, err)

  reader = NewVectorPairReader(strings.NewReader(short), strings.NewReader(long))
  n, err := CountProfiles(reader)
  require.NoError(test, err)
  assert.Equal(test, 5, n)
}

func TestSampleProfilesUniform(test *testing.T) {
  short, long, _ := newTestProfiles(20)

  // every record is drawn with probability n/total
  hits := make([]int, 20)
  rng  := rand.New(rand.NewSource(42))
  for k := 0; k < 2000; k++ {
    reader := NewVectorPairReader(strings.NewReader(short), strings.NewReader(long))
    sample, err := SampleProfiles(reader, nil, 5, rng)
    require.NoError(test, err)
    require.Equal(test, 5, sample.Len())
    for _, j := range sample.Index {
      hits[j]++
    }
  }
  for j := range hits {
    assert.InDelta(test, 500, hits[j], 100, "record %d", j)
  }
}

func TestExportSample(test *testing.T) {
  short, long, labels := newTestProfiles(50)

  reader := NewVectorPairReader(strings.NewReader(short), strings.NewReader(long))
  sample, err := SampleProfiles(reader, strings.NewReader(labels), 7, rand.New(rand.NewSource(3)))
  require.NoError(test, err)

  dir := test.TempDir()
  f1  := filepath.Join(dir, "short.txt")
  f2  := filepath.Join(dir, "long.txt")
  f3  := filepath.Join(dir, "labels.txt")
  require.NoError(test, sample.ExportSample(f1, f2, f3))

  // the exported sample reads back as paired profiles and labels
  r, err := OpenVectorPairReader(f1, f2)
  require.NoError(test, err)
  defer r.Close()
  l, err := os.Open(f3)
  require.NoError(test, err)
  defer l.Close()

  stats, err := CollectBinStatistics(r, l)
  require.NoError(test, err)
  assert.Equal(test, 7, len(stats.Bins()))
  for i, j := range sample.Index {
    bin := stats.Bins()[i]
    assert.Equal(test, fmt.Sprintf("bin%d", j), bin.Name)
    assert.Equal(test, FeatureVector{float64(j), 0.5}, bin.ShortMean)
  }
}
