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
import   "io"

import   "github.com/dustin/go-humanize"
import   "github.com/pbenner/threadpool"
import   "github.com/sirupsen/logrus"

import   "github.com/anuradhawick/MetaBCC-LR/lib/progress"

/* -------------------------------------------------------------------------- */

// RecordProcessor computes the output line of a single record. A nil
// result produces no output. The thread id is in [0, NumberOfThreads())
// and may be used to select per-thread scratch space.
type RecordProcessor[T any] func(threadId int, record T) ([]byte, error)

/* -------------------------------------------------------------------------- */

// Pipeline decouples reading records from processing them. A single
// reader fills a bounded queue, batches are taken from the queue and
// processed in parallel, and results are written in input order.
type Pipeline[T any] struct {
  config   Config
  pool     threadpool.ThreadPool
  logger   logrus.FieldLogger
  // optional counter of loaded records
  Progress *progress.Counter
}

/* -------------------------------------------------------------------------- */

func NewPipeline[T any](config Config, logger logrus.FieldLogger) *Pipeline[T] {
  return &Pipeline[T]{
    config: config,
    pool  : threadpool.New(config.Threads, 100*config.Threads),
    logger: loggerOrDefault(logger) }
}

/* -------------------------------------------------------------------------- */

func (obj *Pipeline[T]) NumberOfThreads() int {
  return obj.pool.NumberOfThreads()
}

/* -------------------------------------------------------------------------- */

// Run processes all records of the reader. Outputs of each batch are
// appended to the writer (which may be nil) in record order. If the
// writer has a Flush method it is called after every batch.
func (obj *Pipeline[T]) Run(reader RecordReader[T], process RecordProcessor[T], writer io.Writer) error {
  queue  := make(chan T, obj.config.HighWater)
  done   := make(chan struct{})
  result := make(chan error, 1)

  go func() {
    result <- obj.ingest(reader, queue, done)
  }()
  err := obj.consume(queue, process, writer)
  // stop the reader if consuming failed
  close(done)
  if e := <-result; err == nil {
    err = e
  }
  return err
}

/* -------------------------------------------------------------------------- */

func (obj *Pipeline[T]) ingest(reader RecordReader[T], queue chan<- T, done <-chan struct{}) error {
  // closing the queue signals that no more input follows
  defer close(queue)
  n := 0
  for {
    record, err := reader.Read()
    if err == io.EOF {
      break
    }
    if err != nil {
      return err
    }
    // blocks while the queue is full
    select {
    case queue <- record:
    case <-done:
      return nil
    }
    n++
    if obj.Progress != nil {
      obj.Progress.Increment()
    }
  }
  if obj.Progress != nil {
    obj.Progress.Done()
  }
  obj.logger.Infof("loaded %s records", humanize.Comma(int64(n)))
  return nil
}

func (obj *Pipeline[T]) consume(queue <-chan T, process RecordProcessor[T], writer io.Writer) error {
  batch := make([]T, 0, obj.config.BatchSize)
  n     := 0
  for {
    // wait for at least one record, exit once the queue is closed and
    // drained
    record, ok := <-queue
    if !ok {
      return nil
    }
    batch = append(batch, record)
  fill:
    for len(batch) < obj.config.BatchSize {
      select {
      case record, ok := <-queue:
        if !ok {
          break fill
        }
        batch = append(batch, record)
      default:
        break fill
      }
    }
    if err := obj.processBatch(batch, process, writer); err != nil {
      return err
    }
    n += len(batch)
    obj.logger.Debugf("processed batch of %s records (%s in total)", humanize.Comma(int64(len(batch))), humanize.Comma(int64(n)))
    // drop references to processed records
    clear(batch)
    batch = batch[:0]
  }
}

func (obj *Pipeline[T]) processBatch(batch []T, process RecordProcessor[T], writer io.Writer) error {
  results := make([][]byte, len(batch))
  jg      := obj.pool.NewJobGroup()

  if err := obj.pool.AddRangeJob(0, len(batch), jg, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if erf() != nil {
      return nil
    }
    if r, err := process(pool.GetThreadId(), batch[i]); err != nil {
      return err
    } else {
      results[i] = r
    }
    return nil
  }); err != nil {
    return err
  }
  if err := obj.pool.Wait(jg); err != nil {
    return err
  }
  if writer == nil {
    return nil
  }
  // assemble output in record order
  var buffer bytes.Buffer
  for i := 0; i < len(results); i++ {
    if results[i] == nil {
      continue
    }
    buffer.Write(results[i])
    buffer.WriteByte('\n')
  }
  if _, err := writer.Write(buffer.Bytes()); err != nil {
    return err
  }
  if f, ok := writer.(interface{ Flush() error }); ok {
    return f.Flush()
  }
  return nil
}
