package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-pdfer"
	"github.com/alnah/go-pdfer/internal/config"
)

// ---------------------------------------------------------------------------
// TestPromptDecider - Terminal answers
// ---------------------------------------------------------------------------

func TestPromptDecider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  pdfer.Choice
	}{
		{"y\n", pdfer.ChoiceOverwrite},
		{"YES\n", pdfer.ChoiceOverwrite},
		{"  r  \n", pdfer.ChoiceRename},
		{"rename\n", pdfer.ChoiceRename},
		{"n\n", pdfer.ChoiceAbort},
		{"No\n", pdfer.ChoiceAbort},
		{"\n", pdfer.ChoiceAbort},
		{"overwrite\n", pdfer.ChoiceAbort},
		{"y", pdfer.ChoiceOverwrite}, // no trailing newline
		{"", pdfer.ChoiceAbort},      // end of input
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			d := newPromptDecider(strings.NewReader(tt.input), &out)
			got, err := d.Decide("out.pdf")
			if err != nil {
				t.Fatalf("Decide() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decide(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "Output 'out.pdf' already exists") {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestPromptDecider_SuccessiveQuestions(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	d := newPromptDecider(strings.NewReader("r\ny\n"), &out)

	first, _ := d.Decide("a.pdf")
	second, _ := d.Decide("b.pdf")
	third, _ := d.Decide("c.pdf")

	if first != pdfer.ChoiceRename || second != pdfer.ChoiceOverwrite || third != pdfer.ChoiceAbort {
		t.Errorf("choices = %v, %v, %v; want rename, overwrite, abort", first, second, third)
	}
}

func TestPromptDecider_InvalidAnswerMessage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	d := newPromptDecider(strings.NewReader("perhaps\n"), &out)
	if _, err := d.Decide("out.pdf"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Invalid choice. Aborted.") {
		t.Errorf("output = %q, want invalid choice message", out.String())
	}
}

// ---------------------------------------------------------------------------
// TestNewDecider - Policy to decider
// ---------------------------------------------------------------------------

func TestNewDecider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		policy      string
		interactive bool
		stdin       string
		want        pdfer.Choice
		wantErr     error
	}{
		{config.OnConflictOverwrite, false, "", pdfer.ChoiceOverwrite, nil},
		{config.OnConflictRename, false, "", pdfer.ChoiceRename, nil},
		{config.OnConflictAbort, true, "y\n", pdfer.ChoiceAbort, nil},
		{config.OnConflictPrompt, true, "r\n", pdfer.ChoiceRename, nil},
		{config.OnConflictPrompt, false, "y\n", pdfer.ChoiceAbort, pdfer.ErrAbortedByUser},
	}

	for _, tt := range tests {
		env, _, _ := testEnv(tt.stdin, tt.interactive)
		got, err := newDecider(tt.policy, env).Decide("out.pdf")
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("newDecider(%q, interactive=%v) error = %v, want %v", tt.policy, tt.interactive, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("newDecider(%q, interactive=%v) = %v, want %v", tt.policy, tt.interactive, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestResolvePolicy - Flag and config precedence
// ---------------------------------------------------------------------------

func TestResolvePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		flags      conflictFlags
		configured string
		want       string
		wantErr    error
	}{
		{name: "config", configured: "rename", want: "rename"},
		{name: "empty config", configured: "", want: "prompt"},
		{name: "flag wins", flags: conflictFlags{onConflict: "ABORT"}, configured: "rename", want: "abort"},
		{name: "force", flags: conflictFlags{force: true}, configured: "abort", want: "overwrite"},
		{name: "force with overwrite", flags: conflictFlags{force: true, onConflict: "overwrite"}, want: "overwrite"},
		{name: "force with rename", flags: conflictFlags{force: true, onConflict: "rename"}, wantErr: ErrInvalidFlags},
		{name: "unknown", flags: conflictFlags{onConflict: "later"}, wantErr: config.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			cfg.Output.OnConflict = tt.configured
			got, err := resolvePolicy(tt.flags, cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("resolvePolicy() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolvePolicy() = %q, want %q", got, tt.want)
			}
		})
	}
}
