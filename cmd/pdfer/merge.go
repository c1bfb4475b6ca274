package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-pdfer"
)

// runMergeCmd merges the input files in argument order.
func runMergeCmd(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseMergeFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		printMergeUsage(env.Stderr)
		return fmt.Errorf("%w: merge needs at least one input PDF", ErrMissingInput)
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	policy, err := resolvePolicy(flags.conflict, cfg)
	if err != nil {
		return err
	}

	log := newLogger(env.Stderr, flags.common)
	acc := env.accessor(log)

	if flags.info {
		// Load failures surface with context from Merge below.
		for _, in := range inputs {
			if info, err := pdfer.Inspect(acc, in); err == nil {
				printInfo(env.Stdout, info)
				fmt.Fprintln(env.Stdout)
			}
		}
	}

	output := flags.output
	if output == "" {
		output = cfg.Merge.Output
	}

	if !flags.common.quiet {
		if len(inputs) == 1 {
			fmt.Fprintln(env.Stdout, "Note: only one input file; the output is a rewritten copy.")
		}
		fmt.Fprintf(env.Stdout, "Merging %d PDF(s)...\n", len(inputs))
	}

	merger := pdfer.NewMerger(acc,
		pdfer.WithLogger(log),
		pdfer.WithConflictDecider(newDecider(policy, env)),
		pdfer.WithFileMode(cfg.Perm()),
	)
	res, err := merger.Merge(ctx, pdfer.MergeRequest{Inputs: inputs, Output: output})
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s (%d pages)\n", res.Target.Path, res.PageCount)
	}
	return nil
}
