package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFlags   = errors.New("invalid flags")
	ErrMissingInput   = errors.New("missing input")
	ErrTooManyInputs  = errors.New("too many inputs")
)

// runMain dispatches args[1:] and returns the process exit code.
// The first argument selects a command; anything else is a path for info.
func runMain(args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr)

	err := dispatch(context.Background(), args[1:], env)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}
	return exitCodeFor(err)
}

func dispatch(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: no command or file given", ErrMissingInput)
	}

	switch args[0] {
	case "info":
		return runInfoCmd(args[1:], env)
	case "merge", "m":
		return runMergeCmd(ctx, args[1:], env)
	case "split", "s":
		return runSplitCmd(ctx, args[1:], env)
	case "config":
		return runConfigCmd(args[1:], env)
	case "completion":
		return runCompletion(args[1:], env)
	case "version", "--version":
		return runVersion(env)
	case "help", "-h", "--help":
		return runHelp(args[1:], env)
	default:
		return runInfoCmd(args, env)
	}
}
