package main

import (
	"fmt"
	"runtime/debug"
)

// runVersion prints the version set at build time, or the module version
// or VCS revision recorded by the Go toolchain for a "dev" build.
func runVersion(env *Environment) error {
	fmt.Fprintf(env.Stdout, "pdfer %s\n", resolveVersion(Version, debug.ReadBuildInfo))
	return nil
}

func resolveVersion(set string, read func() (*debug.BuildInfo, bool)) string {
	if set != "dev" {
		return set
	}
	info, ok := read()
	if !ok {
		return set
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return set
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if dirty {
		rev += "+dirty"
	}
	return set + " (" + rev + ")"
}
