package prof

import (
	"testing"

	"github.com/spf13/afero"
)

func TestSessionWritesProfiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s, err := Start(fsys, Options{CPU: "/cpu.out", Mem: "/mem.out", Trace: "/trace.out"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
	for _, p := range []string{"/cpu.out", "/mem.out", "/trace.out"} {
		info, err := fsys.Stat(p)
		if err != nil {
			t.Fatalf("stat %s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}

func TestSessionDisabled(t *testing.T) {
	s, err := Start(afero.NewMemMapFs(), Options{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	var nilSession *Session
	if err := nilSession.Stop(); err != nil {
		t.Fatalf("nil Stop: %v", err)
	}
}
