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

import   "bufio"
import   "bytes"
import   "fmt"
import   "io"
import   "strconv"
import   "strings"
import   "sync"
import   "sync/atomic"
import   "testing"
import   "time"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func testConfig() Config {
  config := DefaultConfig()
  config.Threads   = 4
  config.BatchSize = 7
  config.HighWater = 3
  return config
}

/* -------------------------------------------------------------------------- */

type intReader struct {
  i, n int
  // return an error at this position if positive
  fail int
}

func (obj *intReader) Read() (int, error) {
  if obj.fail > 0 && obj.i == obj.fail {
    return 0, fmt.Errorf("read error")
  }
  if obj.i >= obj.n {
    return 0, io.EOF
  }
  obj.i++
  return obj.i-1, nil
}

/* -------------------------------------------------------------------------- */

func TestPipelineOrder(test *testing.T) {
  n := 1000
  var buffer bytes.Buffer
  writer   := bufio.NewWriter(&buffer)
  pipeline := NewPipeline[int](testConfig(), NewLogger(0, io.Discard))

  assert.Equal(test, 4, pipeline.NumberOfThreads())

  err := pipeline.Run(&intReader{n: n}, func(threadId int, i int) ([]byte, error) {
    if threadId < 0 || threadId >= 4 {
      return nil, fmt.Errorf("invalid thread id %d", threadId)
    }
    // odd records produce no output
    if i % 2 == 1 {
      return nil, nil
    }
    return []byte(strconv.Itoa(i)), nil
  }, writer)
  require.NoError(test, err)

  // every batch is flushed
  lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
  require.Equal(test, n/2, len(lines))
  for i, line := range lines {
    assert.Equal(test, strconv.Itoa(2*i), line)
  }
}

type countingReader struct {
  intReader
  reads atomic.Int64
}

func (obj *countingReader) Read() (int, error) {
  i, err := obj.intReader.Read()
  if err == nil {
    obj.reads.Add(1)
  }
  return i, err
}

func TestPipelineBackpressure(test *testing.T) {
  config := DefaultConfig()
  config.Threads   = 2
  config.BatchSize = 5
  config.HighWater = 10

  n        := 1000
  reader   := &countingReader{intReader: intReader{n: n}}
  started  := make(chan struct{})
  release  := make(chan struct{})
  once     := sync.Once{}
  pipeline := NewPipeline[int](config, nil)

  var buffer bytes.Buffer
  result := make(chan error, 1)
  go func() {
    result <- pipeline.Run(reader, func(threadId int, i int) ([]byte, error) {
      once.Do(func() { close(started) })
      <-release
      return []byte(strconv.Itoa(i)), nil
    }, &buffer)
  }()
  <-started

  // the queue fills up while the consumer is blocked
  limit := int64(config.HighWater + config.BatchSize + 1)
  assert.Eventually(test, func() bool {
    return reader.reads.Load() >= int64(config.HighWater)
  }, 5*time.Second, time.Millisecond)
  time.Sleep(50*time.Millisecond)
  assert.LessOrEqual(test, reader.reads.Load(), limit)

  close(release)
  require.NoError(test, <-result)
  assert.Equal(test, int64(n), reader.reads.Load())

  lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
  require.Equal(test, n, len(lines))
  for i, line := range lines {
    assert.Equal(test, strconv.Itoa(i), line)
  }
}

func TestPipelineEmpty(test *testing.T) {
  var buffer bytes.Buffer
  pipeline := NewPipeline[int](testConfig(), nil)
  err := pipeline.Run(&intReader{}, func(threadId int, i int) ([]byte, error) {
    return []byte("x"), nil
  }, &buffer)
  assert.NoError(test, err)
  assert.Equal(test, 0, buffer.Len())
}

func TestPipelineProcessError(test *testing.T) {
  var buffer bytes.Buffer
  pipeline := NewPipeline[int](testConfig(), nil)
  err := pipeline.Run(&intReader{n: 10000}, func(threadId int, i int) ([]byte, error) {
    if i == 500 {
      return nil, fmt.Errorf("invalid record %d", i)
    }
    return []byte(strconv.Itoa(i)), nil
  }, &buffer)
  assert.Error(test, err)
  // the failing batch is not written
  assert.NotContains(test, buffer.String(), "\n500\n")
}

func TestPipelineReadError(test *testing.T) {
  pipeline := NewPipeline[int](testConfig(), nil)
  err := pipeline.Run(&intReader{n: 100, fail: 42}, func(threadId int, i int) ([]byte, error) {
    return nil, nil
  }, nil)
  assert.EqualError(test, err, "read error")
}

/* -------------------------------------------------------------------------- */

func TestCountKmers(test *testing.T) {
  table, err := NewCountingTable(3, DualIncrement)
  require.NoError(test, err)

  reads := []string{}
  for i := 0; i < 100; i++ {
    reads = append(reads, "AAAA", "CCCNCCC")
  }
  pipeline := NewPipeline[[]byte](testConfig(), nil)
  require.NoError(test, CountKmers(pipeline, NewSequenceSliceReader(reads...), table))

  codec := table.Codec()
  assert.Equal(test, uint32(200), table.Get(encode(test, codec, "AAA")))
  assert.Equal(test, uint32(200), table.Get(encode(test, codec, "TTT")))
  assert.Equal(test, uint32(200), table.Get(encode(test, codec, "CCC")))
  assert.Equal(test, uint32(200), table.Get(encode(test, codec, "GGG")))
  assert.Equal(test, uint64(800), table.Sum())
}

func TestWriteProfiles(test *testing.T) {
  builder, err := NewCompositionProfile(1, 0.0)
  require.NoError(test, err)

  var buffer bytes.Buffer
  pipeline := NewPipeline[[]byte](testConfig(), nil)
  reader   := NewSequenceSliceReader("ACGT", "AAAC", "NN")
  require.NoError(test, WriteProfiles(pipeline, reader, builder, &buffer))
  assert.Equal(test, "0.500000 0.500000\n0.750000 0.250000\n0.000000 0.000000\n", buffer.String())
}

func TestAssignBins(test *testing.T) {
  bins := BinSet{
    newTestBin(test, "BinA", FeatureVector{1, 0}, FeatureVector{0.5}),
    newTestBin(test, "BinB", FeatureVector{0, 1}, FeatureVector{0.5}) }
  short := strings.Repeat("0.5\n", 3)
  long  := "1 0\n0 1\n1 0\n"

  var buffer bytes.Buffer
  pipeline := NewPipeline[VectorPair](testConfig(), nil)
  reader   := NewVectorPairReader(strings.NewReader(short), strings.NewReader(long))
  require.NoError(test, AssignBins(pipeline, reader, bins, &buffer))
  assert.Equal(test, "BinA\nBinB\nBinA\n", buffer.String())

  // profiles of the wrong dimension are rejected
  reader = NewVectorPairReader(strings.NewReader("0.5\n"), strings.NewReader("1 0 0\n"))
  assert.Error(test, AssignBins(pipeline, reader, bins, &buffer))
}
