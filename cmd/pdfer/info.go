package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-pdfer"
	"github.com/alnah/go-pdfer/internal/discover"
	"github.com/alnah/go-pdfer/internal/hints"
)

// totalRule separates the per-file blocks from the total line.
var totalRule = strings.Repeat("━", 34)

// runInfoCmd prints details of every PDF named by args.
func runInfoCmd(args []string, env *Environment) error {
	flags, paths, err := parseInfoFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		printInfoUsage(env.Stderr)
		return fmt.Errorf("%w: no PDF file, directory, or pattern given", ErrMissingInput)
	}
	// Info reads no setting, but a broken config or env override still fails.
	if _, err := loadConfig(flags.common.config, env); err != nil {
		return err
	}

	log := newLogger(env.Stderr, flags.common)
	files, err := discover.Collect(paths, discover.Options{Recursive: flags.recursive, Log: log})
	if err != nil {
		if errors.Is(err, discover.ErrIsDirectory) {
			return fmt.Errorf("%w%s", err, hints.ForDirectory())
		}
		return err
	}

	return printInfos(env.accessor(log), files, env)
}

// printInfos prints one block per file and, for several files, a total.
// A file that cannot be read is reported and skipped; the returned error
// joins every such failure.
func printInfos(acc pdfer.Accessor, files []string, env *Environment) error {
	var failures []error
	total := 0

	for _, file := range files {
		info, err := pdfer.Inspect(acc, file)
		if err != nil {
			fmt.Fprintf(env.Stderr, "error reading %s: %v\n", file, err)
			failures = append(failures, err)
		} else {
			total += info.PageCount
			printInfo(env.Stdout, info)
		}
		if len(files) > 1 {
			fmt.Fprintln(env.Stdout)
		}
	}

	if len(files) > 1 {
		fmt.Fprintln(env.Stdout, totalRule)
		fmt.Fprintf(env.Stdout, "Total: %d PDF(s), %d page(s)\n", len(files), total)
	}
	return errors.Join(failures...)
}

// printInfo writes the details block of one file.
func printInfo(w io.Writer, info *pdfer.Info) {
	fmt.Fprintln(w, info.Path)
	fmt.Fprintf(w, "   Pages: %d\n", info.PageCount)
	fmt.Fprintf(w, "   Version: %s\n", info.Version)
	fmt.Fprintf(w, "   Size: %s\n", info.HumanSize())
	if m := info.Metadata; m != nil {
		if m.Title != "" {
			fmt.Fprintf(w, "   Title: %s\n", m.Title)
		}
		if m.Author != "" {
			fmt.Fprintf(w, "   Author: %s\n", m.Author)
		}
		if m.Subject != "" {
			fmt.Fprintf(w, "   Subject: %s\n", m.Subject)
		}
	}
	if nums := info.PageNumbers(); nums != "" {
		fmt.Fprintf(w, "   Page numbers: %s\n", nums)
	}
}
