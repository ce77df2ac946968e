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


package main

/* -------------------------------------------------------------------------- */

import   "io"
import   "math/rand"
import   "os"
import   "time"

import   "github.com/dustin/go-humanize"
import   "github.com/sirupsen/logrus"

import . "github.com/anuradhawick/MetaBCC-LR"
import   "github.com/anuradhawick/MetaBCC-LR/lib/cli"

/* -------------------------------------------------------------------------- */

type Options struct {
  Count        int
  Seed         int64
  Labels       string
  LabelsOutput string
}

/* -------------------------------------------------------------------------- */

func openProfiles(logger *logrus.Logger, filenameShort, filenameLong string) *VectorPairReader {
  reader, err := OpenVectorPairReader(filenameShort, filenameLong)
  if err != nil {
    logger.Fatal(err)
  }
  return reader
}

func sampleSize(logger *logrus.Logger, opts Options, filenameShort, filenameLong string) int {
  if opts.Count > 0 {
    return opts.Count
  }
  reader := openProfiles(logger, filenameShort, filenameLong)
  defer reader.Close()

  n, err := CountProfiles(reader)
  if err != nil {
    logger.Fatal(err)
  }
  // one percent of all reads
  return iMax(1, n/100)
}

func iMax(a, b int) int {
  if a > b {
    return a
  }
  return b
}

/* -------------------------------------------------------------------------- */

func sampleProfiles(config Config, logger *logrus.Logger, opts Options, filenameShort, filenameLong, filenameShortOut, filenameLongOut string) {
  n := sampleSize(logger, opts, filenameShort, filenameLong)
  logger.Infof("sampling %s profiles (seed: %d)", humanize.Comma(int64(n)), opts.Seed)

  reader := openProfiles(logger, filenameShort, filenameLong)
  defer reader.Close()

  var labels io.Reader
  if opts.Labels != "" {
    f, err := os.Open(opts.Labels)
    if err != nil {
      logger.Fatal(err)
    }
    defer f.Close()
    labels = f
  }
  sample, err := SampleProfiles(reader, labels, n, rand.New(rand.NewSource(opts.Seed)))
  if err != nil {
    logger.Fatal(err)
  }
  if err := sample.ExportSample(filenameShortOut, filenameLongOut, opts.LabelsOutput); err != nil {
    logger.Fatal(err)
  }
  logger.Infof("wrote %s of %s profiles to `%s' and `%s'",
    humanize.Comma(int64(sample.Len())), humanize.Comma(int64(sample.Total)), filenameShortOut, filenameLongOut)
}

/* -------------------------------------------------------------------------- */

func main() {
  options := cli.New()
  opts    := Options{}

  optCount        := options.   IntLong("count",         0, 0,  "number of sampled reads [default: 1% of all reads]")
  optSeed         := options.   IntLong("seed",          0, 0,  "seed of the random number generator [default: current time]")
  optLabels       := options.StringLong("labels",        0, "", "file with one ground truth label per read")
  optLabelsOutput := options.StringLong("labels-output", 0, "", "write the labels of sampled reads to the given file (requires --labels)")

  options.SetParameters("<COMPOSITION-PROFILES> <ABUNDANCE-PROFILES> <COMPOSITION-OUTPUT> <ABUNDANCE-OUTPUT>")
  args := options.Parse(os.Args, 4, 4)

  config := options.Config()
  logger := options.Logger(config)

  opts.Count        = *optCount
  opts.Seed         = int64(*optSeed)
  opts.Labels       = *optLabels
  opts.LabelsOutput = *optLabelsOutput
  if opts.Seed == 0 {
    opts.Seed = time.Now().UnixNano()
  }
  if opts.LabelsOutput != "" && opts.Labels == "" {
    logger.Fatal("option `--labels-output' requires `--labels'")
  }
  sampleProfiles(config, logger, opts, args[0], args[1], args[2], args[3])
}
