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

import   "bufio"
import   "fmt"
import   "os"

import   "github.com/sirupsen/logrus"

import . "github.com/anuradhawick/MetaBCC-LR"
import   "github.com/anuradhawick/MetaBCC-LR/lib/cli"
import   "github.com/anuradhawick/MetaBCC-LR/lib/progress"

/* -------------------------------------------------------------------------- */

func compositionProfiles(config Config, logger *logrus.Logger, header bool, filenameReads, filenameOut string) {
  builder, err := NewCompositionProfile(config.ShortK, config.Epsilon)
  if err != nil {
    logger.Fatal(err)
  }
  reader, err := NewFastxReader(filenameReads)
  if err != nil {
    logger.Fatal(err)
  }
  defer reader.Close()

  // truncate output, batches are appended below
  f, err := os.Create(filenameOut)
  if err != nil {
    logger.Fatal(err)
  }
  defer f.Close()
  writer := bufio.NewWriter(f)

  if header {
    for i := 0; i < builder.Length(); i++ {
      fmt.Fprintf(writer, "# %s\n", builder.Index().KmerName(i))
    }
  }
  pipeline := NewPipeline[[]byte](config, logger)
  if config.Verbose > 0 {
    pipeline.Progress = progress.NewCounter("Loaded reads", 1000)
  }
  logger.Infof("computing %d-mer composition profiles of length %d", config.ShortK, builder.Length())
  if err := WriteProfiles(pipeline, reader, builder, writer); err != nil {
    logger.Fatal(err)
  }
  if err := writer.Flush(); err != nil {
    logger.Fatal(err)
  }
  logger.Infof("wrote composition profiles to `%s'", filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {
  options := cli.New()

  optK       := options.   IntLong("k",       0, 0,  "k-mer size [default: 3]")
  optEpsilon := options.StringLong("epsilon", 0, "", "frequencies below epsilon are set to zero [default: 1e-4]")
  optHeader  := options.  BoolLong("header",  0,     "print k-mer names as comment lines (not readable by assignBins)")

  options.SetParameters("<READS.fasta|fastq> <OUTPUT>")
  args := options.Parse(os.Args, 2, 2)

  config := options.Config()
  cli.SetInt(&config.ShortK, *optK)
  if err := cli.SetFloat(&config.Epsilon, *optEpsilon); err != nil {
    options.Usage()
  }
  logger := options.Logger(config)

  compositionProfiles(config, logger, *optHeader, args[0], args[1])
}
