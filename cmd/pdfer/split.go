package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-pdfer"
	"github.com/alnah/go-pdfer/internal/fileutil"
	"github.com/alnah/go-pdfer/internal/hints"
)

// runSplitCmd splits one input into a file per page or per page token.
func runSplitCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseSplitFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	input, pages, err := splitArgs(positional)
	if err != nil {
		if errors.Is(err, ErrMissingInput) {
			printSplitUsage(env.Stderr)
		}
		return err
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

	doc, err := acc.Load(input)
	if err != nil {
		if !errors.Is(err, pdfer.ErrInvalidPDFFile) {
			err = fmt.Errorf("%w: %s: %v", pdfer.ErrInvalidPDFFile, input, err)
		}
		return err
	}
	if flags.info {
		if info, err := pdfer.Describe(doc); err == nil {
			printInfo(env.Stdout, info)
			fmt.Fprintln(env.Stdout)
		}
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "PDF has %d pages.\n", doc.PageCount())
	}

	outDir := flags.output
	if outDir == "" {
		outDir = cfg.Split.OutputDir
	}

	splitter := pdfer.NewSplitter(acc,
		pdfer.WithLogger(log),
		pdfer.WithConflictDecider(newDecider(policy, env)),
		pdfer.WithFileMode(cfg.Perm()),
		pdfer.WithPagePadding(cfg.Split.PagePadding),
		pdfer.WithStopOnError(flags.stopOnError || cfg.Split.StopOnError),
	)
	res, err := splitter.Split(ctx, pdfer.SplitRequest{
		Input:     input,
		Source:    doc,
		Pages:     pages,
		OutputDir: outDir,
	})
	if res != nil {
		printSplitResult(res, flags.common.quiet, env)
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, pdfer.ErrInvalidPageSpec):
		return fmt.Errorf("%w%s", err, hints.ForPageSpec())
	case errors.Is(err, pdfer.ErrPageOutOfRange):
		return fmt.Errorf("%w%s", err, hints.ForPageOutOfRange(doc.PageCount()))
	case res != nil && len(res.Written) == 0 && len(res.Failed) == 0 && errors.Is(err, pdfer.ErrWriteFailure):
		return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
	default:
		return err
	}
}

// splitArgs separates the input file from the optional page specification.
// Anything after those two is rejected; a second PDF name counts as extra.
func splitArgs(positional []string) (string, *string, error) {
	if len(positional) == 0 {
		return "", nil, fmt.Errorf("%w: split needs one input PDF", ErrMissingInput)
	}

	input, rest := positional[0], positional[1:]
	var pages *string
	if len(rest) > 0 && !fileutil.HasPDFExt(rest[0]) {
		spec := rest[0]
		if _, err := pdfer.ParsePageSpec(spec); err != nil {
			return "", nil, fmt.Errorf("%w%s", err, hints.ForPageSpec())
		}
		pages, rest = &spec, rest[1:]
	}

	if len(rest) > 0 {
		return "", nil, fmt.Errorf("%w: split accepts only one input PDF, found extra arguments: %s%s",
			ErrTooManyInputs, strings.Join(rest, ", "), hints.ForExtraArgs(rest))
	}
	return input, pages, nil
}

// printSplitResult reports written and failed targets.
func printSplitResult(res *pdfer.SplitResult, quiet bool, env *Environment) {
	for _, t := range res.Failed {
		fmt.Fprintf(env.Stderr, "FAILED %s (pages %s)\n", t.Path, t.Pages)
	}
	if quiet {
		return
	}
	for _, t := range res.Written {
		fmt.Fprintf(env.Stdout, "Created %s\n", t.Path)
	}
	if len(res.Plan.Targets) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d written, %d failed\n", len(res.Written), len(res.Failed))
	}
}
