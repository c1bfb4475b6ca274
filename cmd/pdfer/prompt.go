package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-pdfer"
	"github.com/alnah/go-pdfer/internal/config"
	"github.com/alnah/go-pdfer/internal/hints"
)

// promptDecider asks on a terminal what to do with an existing output.
// Invalid answers and end of input abort.
type promptDecider struct {
	in  *bufio.Reader
	out io.Writer
}

func newPromptDecider(in io.Reader, out io.Writer) *promptDecider {
	return &promptDecider{in: bufio.NewReader(in), out: out}
}

// Decide implements pdfer.ConflictDecider.
func (p *promptDecider) Decide(path string) (pdfer.Choice, error) {
	fmt.Fprintf(p.out, "Output '%s' already exists. Action? (Y=overwrite, R=rename, N=abort): ", path)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return pdfer.ChoiceAbort, nil
	}

	choice, ok := parseAnswer(line)
	if !ok {
		fmt.Fprintln(p.out, "Invalid choice. Aborted.")
	}
	return choice, nil
}

// parseAnswer maps a prompt answer to a choice. Unknown answers abort.
func parseAnswer(line string) (pdfer.Choice, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return pdfer.ChoiceOverwrite, true
	case "r", "rename":
		return pdfer.ChoiceRename, true
	case "n", "no":
		return pdfer.ChoiceAbort, true
	default:
		return pdfer.ChoiceAbort, false
	}
}

// nonInteractive refuses every conflict when nobody can be asked.
func nonInteractive(path string) (pdfer.Choice, error) {
	return pdfer.ChoiceAbort, fmt.Errorf("%w: %s exists and stdin is not a terminal%s",
		pdfer.ErrAbortedByUser, path, hints.ForNonInteractive())
}

// resolvePolicy picks the conflict policy: --force, then --on-conflict,
// then the configured one.
func resolvePolicy(f conflictFlags, cfg *config.Config) (string, error) {
	policy := cfg.Output.OnConflict
	if f.onConflict != "" {
		p, err := config.ParseOnConflict(f.onConflict)
		if err != nil {
			return "", fmt.Errorf("--on-conflict: %w", err)
		}
		policy = p
	}
	if f.force {
		if f.onConflict != "" && policy != config.OnConflictOverwrite {
			return "", fmt.Errorf("%w: --force conflicts with --on-conflict %s", ErrInvalidFlags, policy)
		}
		policy = config.OnConflictOverwrite
	}
	if policy == "" {
		policy = config.OnConflictPrompt
	}
	return policy, nil
}

// newDecider returns the conflict decider for policy.
func newDecider(policy string, env *Environment) pdfer.ConflictDecider {
	switch policy {
	case config.OnConflictOverwrite:
		return pdfer.ChoicePolicy(pdfer.ChoiceOverwrite)
	case config.OnConflictRename:
		return pdfer.ChoicePolicy(pdfer.ChoiceRename)
	case config.OnConflictAbort:
		return pdfer.ChoicePolicy(pdfer.ChoiceAbort)
	}
	if !env.interactive() {
		return pdfer.DeciderFunc(nonInteractive)
	}
	return newPromptDecider(env.Stdin, env.Stderr)
}
