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

// Package scheduler coordinates the execution of the VM with the host.
//
// Each call to Iterate() measures the time since the previous call, capped
// at MaxDelta, and advances the 60Hz timers by that amount. This means the
// timers run at the correct rate regardless of the instruction rate. The
// host is then polled for input, exactly one instruction is executed and the
// frame buffer is presented.
//
// The iterations are paced by a limiter. The rate defaults to the
// hardware.hertz preference and can be changed with the WithHertz() option.
package scheduler
