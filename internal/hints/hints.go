// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strconv"
	"strings"
)

// ForPageSpec returns the page-range syntax reminder.
func ForPageSpec() string {
	return format("pages are 1-based: 3, 2-5, 7- (to last page), comma separated: 1,3,5-7")
}

// ForPageOutOfRange reminds the user of the document's real page count.
func ForPageOutOfRange(pageCount int) string {
	if pageCount <= 0 {
		return ""
	}
	return format("the document has " + strconv.Itoa(pageCount) + " page(s); run 'pdfer <file.pdf>' to inspect it")
}

// ForExtraArgs explains why split received more than one input.
// Filenames with spaces are the usual cause.
func ForExtraArgs(extra []string) string {
	var hints []string
	for _, a := range extra {
		if strings.HasSuffix(strings.ToLower(a), ".pdf") {
			hints = append(hints, "split accepts one PDF; run it once per file")
			break
		}
	}
	hints = append(hints, "wrap filenames with spaces in quotes: pdfer split \"my file.pdf\"")
	return formatHints(hints)
}

// ForDirectory suggests recursive mode for a directory argument.
func ForDirectory() string {
	return format("use -r/--recursive to search subdirectories")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/pdfer/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/pdfer") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForNonInteractive explains how to resolve conflicts without a terminal.
func ForNonInteractive() string {
	return format("pass --on-conflict overwrite|rename|abort or --force when stdin is not a terminal")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
