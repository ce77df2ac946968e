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

import   "os"

import   "github.com/dustin/go-humanize"
import   "github.com/sirupsen/logrus"

import . "github.com/anuradhawick/MetaBCC-LR"
import   "github.com/anuradhawick/MetaBCC-LR/lib/cli"
import   "github.com/anuradhawick/MetaBCC-LR/lib/progress"

/* -------------------------------------------------------------------------- */

func countKmers(config Config, logger *logrus.Logger, filenameReads, filenameTable string) {
  table, err := NewCountingTable(config.LongK, config.Policy)
  if err != nil {
    logger.Fatal(err)
  }
  logger.Infof("allocated counting table for %d-mers with %s slots (%s, policy: %v)",
    table.K(), humanize.Comma(int64(table.Len())), humanize.IBytes(uint64(4*table.Len())), table.Policy())

  reader, err := NewFastxReader(filenameReads)
  if err != nil {
    logger.Fatal(err)
  }
  defer reader.Close()

  pipeline := NewPipeline[[]byte](config, logger)
  if config.Verbose > 0 {
    pipeline.Progress = progress.NewCounter("Loaded reads", 1000)
  }
  logger.Infof("counting k-mers in `%s' using %d threads", filenameReads, pipeline.NumberOfThreads())
  if err := CountKmers(pipeline, reader, table); err != nil {
    logger.Fatal(err)
  }
  logger.Infof("writing counting table to `%s'", filenameTable)
  if err := table.ExportTable(filenameTable); err != nil {
    logger.Fatal(err)
  }
  logger.Infof("counted %s distinct k-mers", humanize.Comma(int64(table.Distinct())))
}

/* -------------------------------------------------------------------------- */

func main() {
  options := cli.New()

  optK      := options.   IntLong("k",      0, 0,  "k-mer size [default: 15]")
  optPolicy := options.StringLong("policy", 0, "", "counting policy: dual or canonical [default: dual]")

  options.SetParameters("<READS.fasta|fastq> <TABLE>")
  args := options.Parse(os.Args, 2, 2)

  config := options.Config()
  cli.SetInt(&config.LongK, *optK)
  if err := cli.SetPolicy(&config.Policy, *optPolicy); err != nil {
    options.Usage()
  }
  logger := options.Logger(config)

  countKmers(config, logger, args[0], args[1])
}
