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

/* -------------------------------------------------------------------------- */

func filterReads(config Config, logger *logrus.Logger, filenameReads, filenameOut string) {
  reader, err := NewFastxReader(filenameReads)
  if err != nil {
    logger.Fatal(err)
  }
  defer reader.Close()

  var f *os.File
  if filenameOut == "" {
    f = os.Stdout
  } else {
    var err error
    if f, err = os.Create(filenameOut); err != nil {
      logger.Fatal(err)
    }
    defer f.Close()
  }
  writer := bufio.NewWriter(f)
  kept, total, err := FilterReads(reader, writer, config.MinLength)
  if err != nil {
    logger.Fatal(err)
  }
  if err := writer.Flush(); err != nil {
    logger.Fatal(err)
  }
  logger.Infof("kept %s of %s reads with at least %d bases",
    humanize.Comma(int64(kept)), humanize.Comma(int64(total)), config.MinLength)
}

/* -------------------------------------------------------------------------- */

func main() {
  options := cli.New()

  optMinLength := options.IntLong("min-length", 0, 0, "minimum read length [default: 1000]")

  options.SetParameters("<READS.fasta|fastq> [<OUTPUT.fasta>]")
  args := options.Parse(os.Args, 1, 2)

  config := options.Config()
  cli.SetInt(&config.MinLength, *optMinLength)
  logger := options.Logger(config)

  filenameOut := ""
  if len(args) == 2 {
    filenameOut = args[1]
  }
  filterReads(config, logger, args[0], filenameOut)
}
