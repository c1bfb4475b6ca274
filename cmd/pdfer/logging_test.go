package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags commonFlags
		want  logrus.Level
	}{
		{"default", commonFlags{}, logrus.WarnLevel},
		{"quiet", commonFlags{quiet: true}, logrus.ErrorLevel},
		{"verbose", commonFlags{verbose: true}, logrus.DebugLevel},
		{"verbose wins over quiet", commonFlags{quiet: true, verbose: true}, logrus.DebugLevel},
	}

	for _, tt := range tests {
		if got := newLogger(&bytes.Buffer{}, tt.flags).GetLevel(); got != tt.want {
			t.Errorf("%s: level = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNewLogger_Output(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, commonFlags{verbose: true})
	log.WithField("path", "a.pdf").Debug("loaded input")

	out := buf.String()
	if !strings.Contains(out, "level=debug") || !strings.Contains(out, "path=a.pdf") {
		t.Errorf("log output = %q", out)
	}
	if strings.Contains(out, "time=") {
		t.Errorf("timestamps should be disabled: %q", out)
	}
}
