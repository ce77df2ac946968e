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

import   "bytes"
import   "os"
import   "path/filepath"
import   "strings"
import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestFilterReads(test *testing.T) {
  var buffer bytes.Buffer
  kept, total, err := FilterReads(NewSequenceSliceReader("ACGT", "ACGTACGT", "ACGTA"), &buffer, 5)
  require.NoError(test, err)
  assert.Equal(test, 2, kept)
  assert.Equal(test, 3, total)
  assert.Equal(test, ">read2\nACGTACGT\n>read3\nACGTA\n", buffer.String())
}

func TestSplitReads(test *testing.T) {
  dir    := filepath.Join(test.TempDir(), "bins")
  reader := NewSequenceSliceReader("AAAA", "CCCC", "GGGG")
  counts, err := SplitReads(reader, strings.NewReader("bin1\nbin2\nbin1\n"), dir)
  require.NoError(test, err)
  assert.Equal(test, map[string]int{"bin1": 2, "bin2": 1}, counts)

  b, err := os.ReadFile(filepath.Join(dir, "bin1.fasta"))
  require.NoError(test, err)
  assert.Equal(test, ">read1\nAAAA\n>read3\nGGGG\n", string(b))
  b, err  = os.ReadFile(filepath.Join(dir, "bin2.fasta"))
  require.NoError(test, err)
  assert.Equal(test, ">read2\nCCCC\n", string(b))
}

func TestSplitReadsInvalid(test *testing.T) {
  dir := test.TempDir()
  _, err := SplitReads(NewSequenceSliceReader("AAAA", "CCCC"), strings.NewReader("bin1\n"), dir)
  assert.Error(test, err)
  _, err  = SplitReads(NewSequenceSliceReader("AAAA"), strings.NewReader("../bin1\n"), dir)
  assert.Error(test, err)
  _, err  = SplitReads(NewSequenceSliceReader("AAAA"), strings.NewReader("\n"), dir)
  assert.Error(test, err)
}

/* -------------------------------------------------------------------------- */

func TestFastxReader(test *testing.T) {
  dir := test.TempDir()

  fasta := filepath.Join(dir, "reads.fa")
  require.NoError(test, os.WriteFile(fasta, []byte(">r1\nACGT\nNNAC\n>r2\nGGGG\n"), 0644))

  reader, err := NewFastxReader(fasta)
  require.NoError(test, err)
  defer reader.Close()

  r, err := reader.ReadRecord()
  require.NoError(test, err)
  assert.Equal(test, "r1", r.Name)
  assert.Equal(test, "ACGTNNAC", string(r.Sequence))
  s, err := reader.Read()
  require.NoError(test, err)
  assert.Equal(test, "GGGG", string(s))

  fastq := filepath.Join(dir, "reads.fq")
  require.NoError(test, os.WriteFile(fastq, []byte("@q1\nACGTACGT\n+\nIIIIIIII\n"), 0644))

  table, err := NewCountingTable(3, DualIncrement)
  require.NoError(test, err)
  reader2, err := NewFastxReader(fastq)
  require.NoError(test, err)
  defer reader2.Close()
  require.NoError(test, CountKmers(NewPipeline[[]byte](testConfig(), nil), reader2, table))
  assert.Equal(test, uint64(12), table.Sum())

  _, err = NewFastxReader(filepath.Join(dir, "missing.fa"))
  assert.Error(test, err)
}
