package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdfer <file.pdf | dir | glob>... [flags]")
	fmt.Fprintln(w, "       pdfer <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command, pdfer shows details of the given PDF files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  info          Show pages, version and metadata of PDF files")
	fmt.Fprintln(w, "  merge, m      Merge PDF files into one")
	fmt.Fprintln(w, "  split, s      Split a PDF file into page subsets")
	fmt.Fprintln(w, "  config        Print the effective configuration")
	fmt.Fprintln(w, "  completion    Generate shell completion script")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pdfer help <command>' for details on a specific command.")
}

// printInfoUsage prints usage for the info command.
func printInfoUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdfer [info] <file.pdf | dir | glob>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show page count, PDF version, size and metadata of each file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -r, --recursive           Search directories recursively")
	printCommonUsage(w)
}

// printMergeUsage prints usage for the merge command.
func printMergeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdfer merge <in1.pdf> <in2.pdf>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Merge PDF files into one, in argument order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: merged.pdf)")
	fmt.Fprintln(w, "  -i, --info                Show input details first")
	printConflictUsage(w)
	printCommonUsage(w)
}

// printSplitUsage prints usage for the split command.
func printSplitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdfer split <file.pdf> [PAGES] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Split a PDF file. Without PAGES, every page goes to its own file.")
	fmt.Fprintln(w, "With PAGES, each comma-separated item becomes one file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pages:")
	fmt.Fprintln(w, "  3                         Page 3 (page_003.pdf)")
	fmt.Fprintln(w, "  2-5                       Pages 2 to 5 (pages_002-005.pdf)")
	fmt.Fprintln(w, "  7-                        Page 7 to the last page")
	fmt.Fprintln(w, "  1,3,5-7                   Three files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: <name>_pages)")
	fmt.Fprintln(w, "  -i, --info                Show input details first")
	fmt.Fprintln(w, "      --stop-on-error       Stop at the first failed output")
	printConflictUsage(w)
	printCommonUsage(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdfer config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration in effect after applying the config file")
	fmt.Fprintln(w, "and PDFER_* environment variables.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	printCommonUsage(w)
}

func printConflictUsage(w io.Writer) {
	fmt.Fprintln(w, "      --on-conflict <s>     Existing output: prompt, overwrite, rename, abort")
	fmt.Fprintln(w, "  -f, --force               Overwrite existing outputs")
}

func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug details")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "info":
		printInfoUsage(env.Stdout)
	case "merge", "m":
		printMergeUsage(env.Stdout)
	case "split", "s":
		printSplitUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: pdfer version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: pdfer help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
