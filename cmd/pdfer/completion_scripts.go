package main

import (
	"fmt"
	"io"
	"strings"
)

// generateBash writes a bash completion script.
func generateBash(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	var names []string
	for _, c := range cmds {
		names = append(names, c.names()...)
	}

	b.WriteString("# bash completion for pdfer\n\n")
	b.WriteString("_pdfer_pdf_files() {\n")
	b.WriteString("    COMPREPLY+=( $(compgen -f -X '!*.[pP][dD][fF]' -- \"$1\") $(compgen -d -- \"$1\") )\n")
	b.WriteString("}\n\n")
	b.WriteString("_pdfer_completions() {\n")
	b.WriteString("    local cur prev cmd flags\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(names, " "))
	b.WriteString("        _pdfer_pdf_files \"$cur\"\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "        %s)\n", strings.Join(c.names(), "|"))
		if len(c.Flags) > 0 {
			b.WriteString("            case \"$prev\" in\n")
			for _, f := range c.Flags {
				if action := bashValueAction(f); action != "" {
					fmt.Fprintf(&b, "                %s) %s; return ;;\n", bashFlagPattern(f), action)
				}
			}
			b.WriteString("            esac\n")
		}
		fmt.Fprintf(&b, "            flags=%q\n", strings.Join(bashFlagWords(c.Flags), " "))
		if c.Name == "help" {
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %q -- \"$cur\") ); return\n", strings.Join(names, " "))
		}
		if c.Name == "completion" {
			b.WriteString("            COMPREPLY=( $(compgen -W \"bash zsh fish powershell\" -- \"$cur\") ); return\n")
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("        *)\n")
	fmt.Fprintf(&b, "            flags=%q\n", strings.Join(bashFlagWords(cmds[0].Flags), " "))
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n\n")
	b.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
	b.WriteString("        COMPREPLY=( $(compgen -W \"$flags\" -- \"$cur\") )\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("    _pdfer_pdf_files \"$cur\"\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _pdfer_completions pdfer\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func bashFlagPattern(f flagDef) string {
	if f.Short != "" {
		return "-" + f.Short + "|--" + f.Long
	}
	return "--" + f.Long
}

func bashFlagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// bashValueAction returns the COMPREPLY assignment for a flag value, or ""
// for flags without a value to complete.
func bashValueAction(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return fmt.Sprintf("COMPREPLY=( $(compgen -W %q -- \"$cur\") )", strings.Join(f.Values, " "))
	case flagFile:
		var parts []string
		for _, g := range strings.Split(f.FileGlob, ",") {
			parts = append(parts, fmt.Sprintf("$(compgen -f -X '!%s' -- \"$cur\")", g))
		}
		parts = append(parts, "$(compgen -d -- \"$cur\")")
		return "COMPREPLY=( " + strings.Join(parts, " ") + " )"
	case flagDir:
		return "COMPREPLY=( $(compgen -d -- \"$cur\") )"
	default:
		return ""
	}
}

// generateZsh writes a zsh completion script.
func generateZsh(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("#compdef pdfer\n\n")
	b.WriteString("_pdfer() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		for _, n := range c.names() {
			fmt.Fprintf(&b, "        '%s:%s'\n", n, zshEscape(c.Desc))
		}
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        _files -g '*.(pdf|PDF)'\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=$words[2]\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case $cmd in\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        %s)\n", strings.Join(c.names(), "|"))
		switch c.Name {
		case "help":
			b.WriteString("            _describe 'command' commands\n")
		case "completion":
			b.WriteString("            _values 'shell' bash zsh fish powershell\n")
		default:
			writeZshArguments(&b, c.Flags, c.TakesFiles)
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("        *)\n")
	writeZshArguments(&b, cmds[0].Flags, true)
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_pdfer \"$@\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeZshArguments(b *strings.Builder, flags []flagDef, takesFiles bool) {
	if len(flags) == 0 && !takesFiles {
		return
	}
	b.WriteString("            _arguments")
	for _, f := range flags {
		desc := zshEscape(f.Desc)
		action := zshValueAction(f)
		if f.Short != "" {
			fmt.Fprintf(b, " \\\n                '(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
		} else {
			fmt.Fprintf(b, " \\\n                '--%s[%s]%s'", f.Long, desc, action)
		}
	}
	if takesFiles {
		b.WriteString(" \\\n                '*:PDF file:_files -g \"*.(pdf|PDF)\"'")
	}
	b.WriteString("\n")
}

func zshValueAction(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagEnum:
		return ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		globs := strings.Split(f.FileGlob, ",")
		for i, g := range globs {
			globs[i] = strings.TrimPrefix(g, "*.")
		}
		return ":file:_files -g \"*.(" + strings.Join(globs, "|") + ")\""
	case flagDir:
		return ":directory:_files -/"
	default:
		return ":" + f.Long + ":"
	}
}

// zshEscape makes s safe inside a single-quoted _arguments description.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

// generateFish writes a fish completion script.
func generateFish(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# fish completion for pdfer\n\n")
	b.WriteString("function __fish_pdfer_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_pdfer_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and contains -- $cmd[2] $argv\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c pdfer -f\n")
	b.WriteString("complete -c pdfer -n __fish_pdfer_needs_command -k -a '(__fish_complete_suffix .pdf)'\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c pdfer -n __fish_pdfer_needs_command -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("'__fish_pdfer_using_command %s'", strings.Join(c.names(), " "))
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c pdfer -n %s", cond)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			fmt.Fprintf(&b, " -l %s%s -d '%s'\n", f.Long, fishValueAction(f), fishEscape(f.Desc))
		}
		if c.TakesFiles {
			fmt.Fprintf(&b, "complete -c pdfer -n %s -k -a '(__fish_complete_suffix .pdf)'\n", cond)
		}
		switch c.Name {
		case "help":
			var names []string
			for _, other := range cmds {
				names = append(names, other.Name)
			}
			fmt.Fprintf(&b, "complete -c pdfer -n %s -a '%s'\n", cond, strings.Join(names, " "))
		case "completion":
			fmt.Fprintf(&b, "complete -c pdfer -n %s -a 'bash zsh fish powershell'\n", cond)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func fishValueAction(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagEnum:
		return " -x -a '" + strings.Join(f.Values, " ") + "'"
	case flagFile:
		return " -r -F"
	case flagDir:
		return " -x -a '(__fish_complete_directories)'"
	default:
		return " -x"
	}
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}

// generatePowerShell writes a PowerShell completion script.
func generatePowerShell(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# PowerShell completion for pdfer\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName pdfer -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $commands = [ordered]@{\n")
	for _, c := range cmds {
		for _, n := range c.names() {
			fmt.Fprintf(&b, "        '%s' = '%s'\n", n, psEscape(c.Desc))
		}
	}
	b.WriteString("    }\n\n")
	b.WriteString("    $flags = @{\n")
	for _, c := range cmds {
		words := bashFlagWords(c.Flags)
		for i, word := range words {
			words[i] = "'" + word + "'"
		}
		for _, n := range c.names() {
			fmt.Fprintf(&b, "        '%s' = @(%s)\n", n, strings.Join(words, ", "))
		}
	}
	b.WriteString("    }\n\n")
	b.WriteString("    $elements = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    $cmd = if ($elements.Count -gt 1) { $elements[1] } else { '' }\n\n")
	b.WriteString("    if ($elements.Count -le 2 -and -not $wordToComplete.StartsWith('-')) {\n")
	b.WriteString("        $commands.Keys | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $commands[$_])\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")
	b.WriteString("    if ($wordToComplete.StartsWith('-')) {\n")
	b.WriteString("        $candidates = if ($flags.ContainsKey($cmd)) { $flags[$cmd] } else { $flags['info'] }\n")
	b.WriteString("        $candidates | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")
	b.WriteString("    Get-ChildItem -Path \"$wordToComplete*\" -ErrorAction SilentlyContinue |\n")
	b.WriteString("        Where-Object { $_.PSIsContainer -or $_.Extension -eq '.pdf' } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ProviderItem', $_.FullName)\n")
	b.WriteString("        }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func psEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
