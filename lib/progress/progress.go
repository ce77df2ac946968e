/* Copyright (C) 2016 Philipp Benner
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

package progress

/* -------------------------------------------------------------------------- */

import   "bytes"
import   "bufio"
import   "fmt"
import   "io"
import   "os"

import   "github.com/dustin/go-humanize"

/* -------------------------------------------------------------------------- */

type Progress struct {
  N, K, LineWidth int
}

/* -------------------------------------------------------------------------- */

func New(n, k int) Progress {
  progress := Progress{n, n/k, 40}
  if k > n || progress.K < 1 {
    progress.K = 1
  }
  return progress
}

/* -------------------------------------------------------------------------- */

const __line_del__ = "\033[2K\r"

func (progress Progress) Exec(i int) string {
  var buffer bytes.Buffer
  writer := bufio.NewWriter(&buffer)

  p := float64(i)/float64(progress.N)
  // carriage return
  fmt.Fprintf(writer, "%s|", __line_del__)

  for i := 1; i < progress.LineWidth-1; i++ {
    if float64(i)/float64(progress.LineWidth) < p {
      fmt.Fprintf(writer, ">")
    } else {
      fmt.Fprintf(writer, " ")
    }
  }
  fmt.Fprintf(writer, "| %6.2f%%", p*100)
  // add newline if finished
  if p == 1.0 {
    fmt.Fprintf(writer, "\n")
  }
  writer.Flush()

  return buffer.String()
}

func (progress Progress) Print(w io.Writer, i int) {
  if i == 0 || i == progress.N || (i % progress.K == 0) {
    fmt.Fprint(w, progress.Exec(i))
  }
}

func (progress Progress) PrintStderr(i int) {
  progress.Print(os.Stderr, i)
}

/* Counter for streams of unknown length
 * -------------------------------------------------------------------------- */

type Counter struct {
  Label  string
  N, K   int
  Writer io.Writer
}

func NewCounter(label string, k int) *Counter {
  if k < 1 {
    k = 1
  }
  return &Counter{Label: label, K: k, Writer: os.Stderr}
}

func (counter *Counter) Exec() string {
  return fmt.Sprintf("%s%s %s", __line_del__, counter.Label, humanize.Comma(int64(counter.N)))
}

// Increment the counter and print the current state every K steps.
func (counter *Counter) Increment() {
  counter.N++
  if counter.N % counter.K == 0 {
    fmt.Fprint(counter.Writer, counter.Exec())
  }
}

// Print the final state and terminate the line.
func (counter *Counter) Done() {
  fmt.Fprintf(counter.Writer, "%s\n", counter.Exec())
}
