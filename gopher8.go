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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sound"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/macro"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/scheduler"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// CommandLineError is returned by the mode functions when the problem is
// with the command line rather than with the emulation.
const CommandLineError = "command line: %v"

// exit values
const (
	exitCommandLine = 10
	exitMode        = 20
)

// #mainthread
//
// SDL and Ebitengine require that window and event handling happen on the
// main thread. the main goroutine is locked to the main thread. for SDL the
// emulation runs in the main goroutine. Ebitengine runs its own event loop so
// gui.Run() moves the emulation to another goroutine.
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the exit
// value for the program.
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitCommandLine
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		if curated.Is(err, CommandLineError) {
			return exitCommandLine
		}
		return exitMode
	}

	return 0
}

// parse the flags for the mode. returns false if the mode should end without
// error. for example, if the help message has been printed
func parse(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, curated.Errorf(CommandLineError, err)
	}
	return true, nil
}

// the ROM filename from the remaining arguments
func romArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", curated.Errorf(CommandLineError, fmt.Errorf("ROM file required for %s mode", md))
	case 1:
		return md.GetArg(0), nil
	}
	return "", curated.Errorf(CommandLineError, fmt.Errorf("too many arguments for %s mode", md))
}

// create the VM and load the ROM. the preferences file is used if possible
func newVM(rom string) (*hardware.VM, error) {
	p, err := preferences.NewPreferences()
	if err != nil {
		logger.Logf(logger.Allow, "prefs", "using default preferences: %v", err)
		p = preferences.NewDefaultPreferences()
	}

	vm := hardware.NewVM(environment.MainEmulation, p)
	err = vm.LoadROMFile(rom)
	if err != nil {
		return nil, err
	}

	return vm, nil
}

// the backend name and host configuration common to the RUN and PERFORMANCE
// modes
type hostFlags struct {
	library *string
	width   *int
	height  *int
	beep    *string
	keymap  *string
}

func addHostFlags(md *modalflag.Modes, defaultBackend string) hostFlags {
	cfg := gui.NewConfig()
	return hostFlags{
		library: md.AddString("library", defaultBackend, fmt.Sprintf("host library: %s", strings.Join(gui.Backends, ", ")), "l"),
		width:   md.AddInt("width", cfg.Width, "window width", "w"),
		height:  md.AddInt("height", cfg.Height, "window height", "h"),
		beep:    md.AddString("beep", "", "WAV or MP3 file to use for the beeper (default square wave)"),
		keymap:  md.AddString("keymap", "", "changes to the keymap. for example: \"p=5; o=a\""),
	}
}

func (f hostFlags) config() (string, gui.Config, error) {
	backend, err := gui.NormaliseBackend(*f.library)
	if err != nil {
		return "", gui.Config{}, curated.Errorf(CommandLineError, err)
	}

	cfg := gui.NewConfig()
	cfg.Width = *f.width
	cfg.Height = *f.height
	cfg.BeepFile = *f.beep

	if *f.keymap != "" {
		err = cfg.Keymap.Remap(*f.keymap)
		if err != nil {
			return "", gui.Config{}, curated.Errorf(CommandLineError, err)
		}
	}

	err = cfg.Validate()
	if err != nil {
		return "", gui.Config{}, curated.Errorf(CommandLineError, err)
	}

	return backend, cfg, nil
}

// whether the named flag, or one of its aliases, was set on the command line
func flagSet(md *modalflag.Modes, names ...string) bool {
	var set bool
	md.Visit(func(flg string) {
		for _, n := range names {
			if flg == n {
				set = true
			}
		}
	})
	return set
}

func run(md *modalflag.Modes) (rerr error) {
	md.NewMode()

	debug := md.AddBool("debug", false, "trace every instruction to the log", "d")
	hertz := md.AddFloat64("hertz", preferences.DefaultHertz, "instructions per second (default from preferences)", "H")
	host := addHostFlags(md, gui.DefaultBackend)
	wav := md.AddString("wav", "", "record beeper to wav file. a directory gets a generated filename")
	macroFile := md.AddString("macro", "", "lua script to run")
	printDigest := md.AddBool("digest", false, "print digest of video and audio output on exit")
	memvizFile := md.AddString("memviz", "", "write DOT graph of the VM to file on exit")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available=%v)", statsview.Available()))
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsOverride := md.AddString("prefs", "", "preferences to override. for example: \"hardware.stackLimit::32\"")

	ok, err := parse(md)
	if !ok {
		return err
	}

	// set debugging log echo
	if *log || *debug {
		logger.SetEcho(logger.NewColorizer(os.Stdout), true)
	} else {
		logger.SetEcho(nil, false)
	}

	rom, err := romArg(md)
	if err != nil {
		return err
	}

	backend, cfg, err := host.config()
	if err != nil {
		return err
	}

	prefs.PushCommandLineStack(*prefsOverride)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}()

	if *stats {
		statsview.Launch(md.Output)
	}

	vm, err := newVM(rom)
	if err != nil {
		return err
	}

	var opts []scheduler.Option
	opts = append(opts, scheduler.WithDebug(*debug))
	if flagSet(md, "hertz", "H") {
		opts = append(opts, scheduler.WithHertz(*hertz))
	}

	hst, err := newHost(backend, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := hst.Destroy(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	// the host before any decoration. some hosts have their own event loop
	base := hst

	var dv *digest.Video
	var da *digest.Audio
	if *printDigest {
		dv = digest.NewVideo(hst)
		da = digest.NewAudio()
		hst = dv
		opts = append(opts, scheduler.WithRecorder(da))
	}

	if *wav != "" {
		src, err := sound.NewSource(cfg.BeepFile)
		if err != nil {
			return err
		}
		fn := *wav
		if fi, err := os.Stat(fn); err == nil && fi.IsDir() {
			fn = filepath.Join(fn, fmt.Sprintf("%s.wav", paths.UniqueFilename("beeper", rom)))
		}
		aw, err := wavwriter.New(fn, src)
		if err != nil {
			return err
		}
		opts = append(opts, scheduler.WithRecorder(aw))
		defer func() {
			if err := aw.End(); err != nil && rerr == nil {
				rerr = err
			}
		}()
	}

	if *macroFile != "" {
		mcr, err := macro.NewMacro(*macroFile, hst, cfg.Keymap)
		if err != nil {
			return err
		}
		hst = mcr
		opts = append(opts, scheduler.WithRecorder(mcr))
		mcr.Run()
		defer mcr.Quit()
	}

	sch, err := scheduler.NewScheduler(vm, hst, opts...)
	if err != nil {
		return curated.Errorf(CommandLineError, err)
	}

	// #ctrlc ends the emulation cleanly
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	err = gui.Run(base, func() error {
		return sch.RunWithCheck(func() (bool, error) {
			select {
			case <-intChan:
				return false, nil
			default:
			}
			return true, nil
		})
	})
	if err != nil {
		return err
	}

	if *printDigest {
		fmt.Fprintf(md.Output, "video: %s (%d frames)\n", dv.Hash(), dv.Frames())
		fmt.Fprintf(md.Output, "audio: %s\n", da.Hash())
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, vm)
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	flow := md.AddBool("flow", false, "include flow information in disassembly")
	grep := md.AddString("grep", "", "only show lines containing the string")

	ok, err := parse(md)
	if !ok {
		return err
	}

	rom, err := romArg(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromFile(rom)
	if err != nil {
		return err
	}

	if *grep != "" {
		_, err = dsm.Grep(md.Output, disassembly.GrepAll, *grep, false)
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
		FlowInfo: *flow,
	}

	return dsm.Write(md.Output, attr)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	hertz := md.AddFloat64("hertz", preferences.DefaultHertz, "instructions per second", "H")
	uncapped := md.AddBool("uncapped", false, "run as fast as possible")
	host := addHostFlags(md, gui.BackendHeadless)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	ok, err := parse(md)
	if !ok {
		return err
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), true)
	} else {
		logger.SetEcho(nil, false)
	}

	rom, err := romArg(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return curated.Errorf(CommandLineError, err)
	}

	backend, cfg, err := host.config()
	if err != nil {
		return err
	}

	vm, err := newVM(rom)
	if err != nil {
		return err
	}

	hst, err := newHost(backend, cfg)
	if err != nil {
		return err
	}
	defer hst.Destroy()

	return gui.Run(hst, func() error {
		return performance.Check(md.Output, prf, vm, hst, *hertz, *uncapped, *duration)
	})
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	ok, err := parse(md)
	if !ok {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(md.Output, "%s %s (%s)\n", version.ApplicationName, v, r)
	} else {
		fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	}

	return nil
}
