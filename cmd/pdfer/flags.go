package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// conflictFlags holds output conflict flags for writing commands.
type conflictFlags struct {
	onConflict string
	force      bool
}

// infoFlags holds flags for the info command.
type infoFlags struct {
	common    commonFlags
	recursive bool
}

// mergeFlags holds flags for the merge command.
type mergeFlags struct {
	common   commonFlags
	conflict conflictFlags
	output   string
	info     bool
}

// splitFlags holds flags for the split command.
type splitFlags struct {
	common      commonFlags
	conflict    conflictFlags
	output      string
	info        bool
	stopOnError bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug details")
}

func addConflictFlags(fs *flag.FlagSet, f *conflictFlags) {
	fs.StringVar(&f.onConflict, "on-conflict", "", "existing output: prompt, overwrite, rename, abort")
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite existing outputs (same as --on-conflict overwrite)")
}

func newInfoFlagSet(f *infoFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.BoolVarP(&f.recursive, "recursive", "r", false, "search directories recursively")
	addCommonFlags(fs, &f.common)
	return fs
}

func newMergeFlagSet(f *mergeFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: merged.pdf)")
	fs.BoolVarP(&f.info, "info", "i", false, "show input details before merging")
	addConflictFlags(fs, &f.conflict)
	addCommonFlags(fs, &f.common)
	return fs
}

func newSplitFlagSet(f *splitFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: <name>_pages)")
	fs.BoolVarP(&f.info, "info", "i", false, "show input details before splitting")
	fs.BoolVar(&f.stopOnError, "stop-on-error", false, "stop at the first failed output")
	addConflictFlags(fs, &f.conflict)
	addCommonFlags(fs, &f.common)
	return fs
}

func parseInfoFlags(args []string, usage io.Writer) (*infoFlags, []string, error) {
	f := &infoFlags{}
	fs := newInfoFlagSet(f)
	fs.Usage = func() { printInfoUsage(usage) }
	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseMergeFlags(args []string, usage io.Writer) (*mergeFlags, []string, error) {
	f := &mergeFlags{}
	fs := newMergeFlagSet(f)
	fs.Usage = func() { printMergeUsage(usage) }
	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseSplitFlags(args []string, usage io.Writer) (*splitFlags, []string, error) {
	f := &splitFlags{}
	fs := newSplitFlagSet(f)
	fs.Usage = func() { printSplitUsage(usage) }
	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parse runs fs and tags flag syntax errors as usage errors.
// flag.ErrHelp is returned unchanged so callers can exit cleanly.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
}
