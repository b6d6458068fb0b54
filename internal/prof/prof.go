// Package prof wires the runtime CPU, heap and execution-trace profilers to
// files on an afero filesystem.
package prof

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/spf13/afero"
)

// Options names the output files. Empty paths disable that profiler.
type Options struct {
	CPU   string
	Mem   string
	Trace string
}

// Session is a set of running profilers. Stop finishes all of them.
type Session struct {
	fs      afero.Fs
	memPath string
	cpu     afero.File
	trace   afero.File
	stopped bool
}

// Start enables the profilers requested in opts. On error nothing is left
// running.
func Start(fsys afero.Fs, opts Options) (*Session, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	s := &Session{fs: fsys, memPath: opts.Mem}

	if opts.CPU != "" {
		f, err := fsys.Create(opts.CPU)
		if err != nil {
			return nil, fmt.Errorf("cpu profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("cpu profile: %w", err)
		}
		s.cpu = f
	}
	if opts.Trace != "" {
		f, err := fsys.Create(opts.Trace)
		if err == nil {
			if err = trace.Start(f); err != nil {
				_ = f.Close()
			}
		}
		if err != nil {
			// cpu-профиль не должен остаться запущенным
			_ = s.Stop()
			return nil, fmt.Errorf("runtime trace: %w", err)
		}
		s.trace = f
	}
	return s, nil
}

// Stop ends the trace and CPU profile and writes the heap profile. It is safe
// to call more than once and on a nil Session.
func (s *Session) Stop() error {
	if s == nil || s.stopped {
		return nil
	}
	s.stopped = true

	var errs []error
	if s.trace != nil {
		trace.Stop()
		errs = append(errs, s.trace.Close())
	}
	if s.cpu != nil {
		pprof.StopCPUProfile()
		errs = append(errs, s.cpu.Close())
	}
	if s.memPath != "" {
		errs = append(errs, s.writeMem())
	}
	return errors.Join(errs...)
}

func (s *Session) writeMem() (err error) {
	f, err := s.fs.Create(s.memPath)
	if err != nil {
		return fmt.Errorf("heap profile: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("heap profile: %w", err)
	}
	return nil
}
