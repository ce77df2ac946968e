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

import "math"

/* -------------------------------------------------------------------------- */

// ClassifyIndex returns the position of the best bin or -1 if no bin
// could be selected. The abundance (long) score decides, the composition
// (short) score only breaks ties among bins with the maximal long score.
// Bins with NaN scores are never selected.
func (obj BinSet) ClassifyIndex(short, long FeatureVector) (int, error) {
  best     := -1
  maxLong  := math.Inf(-1)
  maxShort := math.Inf(-1)
  for i, bin := range obj {
    pLong, err := bin.LogLikelihoodLong(long)
    if err != nil {
      return -1, err
    }
    pShort, err := bin.LogLikelihoodShort(short)
    if err != nil {
      return -1, err
    }
    if pLong > maxLong {
      maxLong  = pLong
      // short scores of bins below the new maximum no longer count
      maxShort = math.Inf(-1)
    }
    if pLong == maxLong && pShort > maxShort {
      best     = i
      maxShort = pShort
    }
  }
  return best, nil
}

// Classify returns the name of the best bin, or UnbinnedName.
func (obj BinSet) Classify(short, long FeatureVector) (string, error) {
  if i, err := obj.ClassifyIndex(short, long); err != nil {
    return "", err
  } else
  if i < 0 {
    return UnbinnedName, nil
  } else {
    return obj[i].Name, nil
  }
}
