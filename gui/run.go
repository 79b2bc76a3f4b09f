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

package gui

// MainLoop is implemented by hosts that must run their own event loop on the
// main thread.
type MainLoop interface {
	// RunMainLoop blocks until the event loop has ended. After it returns the
	// host's Poll() function must return false.
	RunMainLoop() error

	// EndMainLoop causes RunMainLoop() to return.
	EndMainLoop()
}

// Run calls the emulate function. If the host implements the MainLoop
// interface then the host's event loop runs on the calling goroutine and the
// emulation runs in a new goroutine. Otherwise the emulation runs on the
// calling goroutine.
//
// The calling goroutine should be the main goroutine, locked to the main OS
// thread.
func Run(host Host, emulate func() error) error {
	ml, ok := host.(MainLoop)
	if !ok {
		return emulate()
	}

	done := make(chan error, 1)
	go func() {
		err := emulate()
		ml.EndMainLoop()
		done <- err
	}()

	loopErr := ml.RunMainLoop()

	// the emulation will end soon after the event loop has ended because
	// Poll() returns false
	if err := <-done; err != nil {
		return err
	}
	return loopErr
}
