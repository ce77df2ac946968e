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
import   "os"

import   "github.com/dustin/go-humanize"
import   "github.com/sirupsen/logrus"

import . "github.com/anuradhawick/MetaBCC-LR"
import   "github.com/anuradhawick/MetaBCC-LR/lib/cli"
import   "github.com/anuradhawick/MetaBCC-LR/lib/progress"

/* -------------------------------------------------------------------------- */

type Options struct {
  Table     string
  Dsk       string
  SaveTable string
  Mmap      bool
}

/* -------------------------------------------------------------------------- */

func newPipeline(config Config, logger *logrus.Logger) *Pipeline[[]byte] {
  pipeline := NewPipeline[[]byte](config, logger)
  if config.Verbose > 0 {
    pipeline.Progress = progress.NewCounter("Loaded reads", 1000)
  }
  return pipeline
}

func openReads(logger *logrus.Logger, filename string) *FastxReader {
  reader, err := NewFastxReader(filename)
  if err != nil {
    logger.Fatal(err)
  }
  return reader
}

/* -------------------------------------------------------------------------- */

func loadTable(config Config, logger *logrus.Logger, opts Options, filenameReads string) *CountingTable {
  switch {
  case opts.Table != "" && opts.Mmap:
    logger.Infof("mapping counting table `%s'", opts.Table)
    if table, err := MapCountingTable(opts.Table, config.Policy); err != nil {
      logger.Fatal(err)
    } else {
      return table
    }
  case opts.Table != "":
    logger.Infof("reading counting table `%s'", opts.Table)
    if table, err := ImportCountingTable(opts.Table, config.Policy); err != nil {
      logger.Fatal(err)
    } else {
      return table
    }
  }
  table, err := NewCountingTable(config.LongK, config.Policy)
  if err != nil {
    logger.Fatal(err)
  }
  logger.Infof("allocated counting table for %d-mers (%s)", table.K(), humanize.IBytes(uint64(4*table.Len())))
  if opts.Dsk != "" {
    logger.Infof("reading DSK counts from `%s'", opts.Dsk)
    if n, err := table.ImportDsk(opts.Dsk); err != nil {
      logger.Fatal(err)
    } else {
      logger.Infof("imported %s k-mer counts", humanize.Comma(int64(n)))
    }
  } else {
    reader := openReads(logger, filenameReads)
    defer reader.Close()
    logger.Infof("counting k-mers in `%s'", filenameReads)
    if err := CountKmers(newPipeline(config, logger), reader, table); err != nil {
      logger.Fatal(err)
    }
  }
  if opts.SaveTable != "" {
    logger.Infof("writing counting table to `%s'", opts.SaveTable)
    if err := table.ExportTable(opts.SaveTable); err != nil {
      logger.Fatal(err)
    }
  }
  return table
}

/* -------------------------------------------------------------------------- */

func abundanceProfiles(config Config, logger *logrus.Logger, opts Options, filenameReads, filenameOut string) {
  table := loadTable(config, logger, opts, filenameReads)
  defer table.Close()

  builder, err := NewAbundanceProfile(table, config.BinWidth, config.Bins, config.Epsilon)
  if err != nil {
    logger.Fatal(err)
  }
  reader := openReads(logger, filenameReads)
  defer reader.Close()

  // truncate output, batches are appended below
  f, err := os.Create(filenameOut)
  if err != nil {
    logger.Fatal(err)
  }
  defer f.Close()
  writer := bufio.NewWriter(f)

  logger.Infof("computing %d-mer abundance profiles (bin width: %d, bins: %d)", table.K(), config.BinWidth, config.Bins)
  if err := WriteProfiles(newPipeline(config, logger), reader, builder, writer); err != nil {
    logger.Fatal(err)
  }
  if err := writer.Flush(); err != nil {
    logger.Fatal(err)
  }
  logger.Infof("wrote abundance profiles to `%s'", filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {
  options := cli.New()
  opts    := Options{}

  optK         := options.   IntLong("k",          0, 0,  "k-mer size [default: 15]")
  optPolicy    := options.StringLong("policy",     0, "", "counting policy: dual or canonical [default: dual]")
  optBinWidth  := options.   IntLong("bin-width",  0, 0,  "width of histogram bins [default: 10]")
  optBins      := options.   IntLong("bins",       0, 0,  "number of histogram bins [default: 32]")
  optEpsilon   := options.StringLong("epsilon",    0, "", "frequencies below epsilon are set to zero [default: 1e-4]")
  optTable     := options.StringLong("table",      0, "", "use an existing counting table instead of counting k-mers")
  optDsk       := options.StringLong("dsk",        0, "", "import k-mer counts from a DSK text table")
  optSaveTable := options.StringLong("save-table", 0, "", "save the counting table to the given file")
  optMmap      := options.  BoolLong("mmap",       0,     "map the counting table into memory (requires --table)")

  options.SetParameters("<READS.fasta|fastq> <OUTPUT>")
  args := options.Parse(os.Args, 2, 2)

  config := options.Config()
  cli.SetInt(&config.LongK,    *optK)
  cli.SetInt(&config.BinWidth, *optBinWidth)
  cli.SetInt(&config.Bins,     *optBins)
  if err := cli.SetPolicy(&config.Policy, *optPolicy); err != nil {
    options.Usage()
  }
  if err := cli.SetFloat(&config.Epsilon, *optEpsilon); err != nil {
    options.Usage()
  }
  logger := options.Logger(config)

  opts.Table     = *optTable
  opts.Dsk       = *optDsk
  opts.SaveTable = *optSaveTable
  opts.Mmap      = *optMmap
  if opts.Mmap && opts.Table == "" {
    logger.Fatal("option `--mmap' requires `--table'")
  }
  if opts.Table != "" && opts.Dsk != "" {
    logger.Fatal("options `--table' and `--dsk' are incompatible")
  }
  abundanceProfiles(config, logger, opts, args[0], args[1])
}
