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

package metabcc

/* -------------------------------------------------------------------------- */

import "fmt"

/* -------------------------------------------------------------------------- */

// Two bit nucleotide alphabet where the code of a base is given by
// (ascii >> 1) & 3, i.e. A=0, C=1, T=2, G=3. Complementing a code
// flips the high bit. Only upper case letters are part of the alphabet.
type NucleotideAlphabet struct {
}

func (NucleotideAlphabet) Code(i byte) (byte, error) {
  switch i {
  case 'A': return 0, nil
  case 'C': return 1, nil
  case 'T': return 2, nil
  case 'G': return 3, nil
  default:  return 0xFF, fmt.Errorf("Code(): `%c' is not part of the alphabet", i)
  }
}

func (NucleotideAlphabet) Decode(i byte) (byte, error) {
  switch i {
  case 0:  return 'A', nil
  case 1:  return 'C', nil
  case 2:  return 'T', nil
  case 3:  return 'G', nil
  default: return 0xFF, fmt.Errorf("Decode(): `%d' is not a code of the alphabet", int(i))
  }
}

func (NucleotideAlphabet) ComplementCoded(i byte) (byte, error) {
  if i > 3 {
    return 0xFF, fmt.Errorf("ComplementCoded(): `%d' is not a code of the alphabet", int(i))
  }
  return i ^ 2, nil
}

func (NucleotideAlphabet) Complement(i byte) (byte, error) {
  switch i {
  case 'A': return 'T', nil
  case 'C': return 'G', nil
  case 'G': return 'C', nil
  case 'T': return 'A', nil
  default:  return 0xFF, fmt.Errorf("Complement(): `%c' is not part of the alphabet", i)
  }
}

func (NucleotideAlphabet) Length() int {
  return 4
}

func (NucleotideAlphabet) String() string {
  return "nucleotide alphabet"
}

/* -------------------------------------------------------------------------- */

// lookup table for the hot path, 0xFF marks characters outside of the
// alphabet
var nucleotideCodes [256]byte

func init() {
  al := NucleotideAlphabet{}
  for i := 0; i < 256; i++ {
    if c, err := al.Code(byte(i)); err != nil {
      nucleotideCodes[i] = 0xFF
    } else {
      nucleotideCodes[i] = c
    }
  }
}
