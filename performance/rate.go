// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package performance

// CalcRate calculates the number of instructions executed per second along
// with an accuracy value as compared to the requested rate. The accuracy is
// meaningless if the emulation was uncapped.
func CalcRate(hertz float64, numInstructions uint64, duration float64) (rate float64, accuracy float64) {
	if duration <= 0 || hertz <= 0 {
		return 0, 0
	}
	rate = float64(numInstructions) / duration
	accuracy = 100 * rate / hertz
	return rate, accuracy
}
