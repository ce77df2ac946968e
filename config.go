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
import   "io"
import   "os"

import   "github.com/pelletier/go-toml/v2"
import   "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

type Config struct {
  // number of worker threads
  Threads   int            `toml:"threads"`
  // number of records processed per batch
  BatchSize int            `toml:"batch-size"`
  // maximum number of records waiting in the queue
  HighWater int            `toml:"high-water"`
  // k-mer size of abundance profiles and the counting table
  LongK     int            `toml:"long-k"`
  // k-mer size of composition profiles
  ShortK    int            `toml:"short-k"`
  Policy    CountingPolicy `toml:"policy"`
  // width and number of abundance histogram bins
  BinWidth  int            `toml:"bin-width"`
  Bins      int            `toml:"bins"`
  Epsilon   float64        `toml:"epsilon"`
  // minimum read length for filtering
  MinLength int            `toml:"min-length"`
  Verbose   int            `toml:"verbose"`
}

/* -------------------------------------------------------------------------- */

func DefaultConfig() Config {
  return Config{
    Threads  : 8,
    BatchSize: 10000,
    HighWater: 50000,
    LongK    : 15,
    ShortK   : 3,
    Policy   : DualIncrement,
    BinWidth : 10,
    Bins     : 32,
    Epsilon  : 1e-4,
    MinLength: 1000 }
}

/* -------------------------------------------------------------------------- */

func (config Config) Validate() error {
  if config.Threads < 1 {
    return fmt.Errorf("invalid number of threads `%d'", config.Threads)
  }
  if config.BatchSize < 1 {
    return fmt.Errorf("invalid batch size `%d'", config.BatchSize)
  }
  if config.HighWater < 1 {
    return fmt.Errorf("invalid high-water mark `%d'", config.HighWater)
  }
  if config.LongK < 1 || config.LongK > MaxCountingTableKmerSize {
    return fmt.Errorf("long k-mer size `%d' out of range [1, %d]", config.LongK, MaxCountingTableKmerSize)
  }
  if config.ShortK < 1 || config.ShortK > 12 {
    return fmt.Errorf("short k-mer size `%d' out of range [1, 12]", config.ShortK)
  }
  if config.Policy != DualIncrement && config.Policy != CanonicalMerge {
    return fmt.Errorf("invalid counting policy `%v'", config.Policy)
  }
  if config.BinWidth < 1 {
    return fmt.Errorf("invalid bin width `%d'", config.BinWidth)
  }
  if config.Bins < 1 {
    return fmt.Errorf("invalid number of bins `%d'", config.Bins)
  }
  if config.Epsilon < 0 {
    return fmt.Errorf("invalid epsilon `%g'", config.Epsilon)
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// ReadConfig reads a TOML configuration. Missing keys keep their values
// from config.
func (config *Config) ReadConfig(reader io.Reader) error {
  decoder := toml.NewDecoder(reader)
  decoder.DisallowUnknownFields()
  if err := decoder.Decode(config); err != nil {
    return errors.Wrap(err, "parsing configuration")
  }
  return nil
}

func (config *Config) ImportConfig(filename string) error {
  f, err := os.Open(filename)
  if err != nil {
    return errors.Wrap(err, "importing configuration")
  }
  defer f.Close()

  return errors.Wrapf(config.ReadConfig(f), "importing configuration `%s'", filename)
}

func (config Config) WriteConfig(writer io.Writer) error {
  return toml.NewEncoder(writer).Encode(config)
}
