package main

import (
	"os"
	"testing"

	"github.com/alnah/go-pdfer/internal/pdfdoc"
)

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()
	if env.Stdin != os.Stdin || env.Stdout != os.Stdout || env.Stderr != os.Stderr {
		t.Error("DefaultEnv() should use the process standard streams")
	}
	if env.Now == nil || env.IsTerminal == nil {
		t.Error("DefaultEnv() left a function nil")
	}
	if env.Config == nil || env.Config.Merge.Output != "merged.pdf" {
		t.Errorf("Config = %+v, want defaults", env.Config)
	}
	if _, ok := env.accessor(nil).(*pdfdoc.Accessor); !ok {
		t.Error("accessor() should default to the pdfcpu accessor")
	}
}

func TestEnvironment_Interactive(t *testing.T) {
	t.Parallel()

	if (&Environment{}).interactive() {
		t.Error("nil IsTerminal should not be interactive")
	}
	env, _, _ := testEnv("", true)
	if !env.interactive() {
		t.Error("IsTerminal returning true should be interactive")
	}
}
