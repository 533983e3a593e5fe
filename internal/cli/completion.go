package cli

import (
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/fibspiral/internal/errors"
)

// FlagCompletion is one row of the completion registry. Every generator
// below works from these rows, so a new flag needs exactly one new entry.
type FlagCompletion struct {
	Long      string   // long name without the leading "--"
	Short     string   // short name without the leading "-"
	Help      string   // one-line description shown by the shell
	Values    []string // static value suggestions; nil for booleans
	ValueName string   // zsh label for the value ("index", "duration", ...)
	IsFile    bool     // the value is a path, complete from the filesystem
}

// spellings returns the dashed forms of the flag, long form first.
func (f FlagCompletion) spellings() []string {
	var s []string
	if f.Long != "" {
		s = append(s, "--"+f.Long)
	}
	if f.Short != "" {
		s = append(s, "-"+f.Short)
	}
	return s
}

// flagRegistry lists every flag in the order the scripts present them.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Short: "n", Help: "Fibonacci index to evaluate (0..40)", ValueName: "index"},
	{Long: "max-bar", Help: "Chart width in cells", Values: []string{"20", "40", "60", "80"}, ValueName: "cells"},
	{Long: "chart", Help: "Include the bar chart in one-shot output"},
	{Long: "spiral", Help: "Include the spiral description in one-shot output"},
	{Long: "seq", Help: "Include the full sequence in one-shot output"},
	{Long: "repl", Help: "Start the interactive read-eval-print loop"},
	{Long: "quiet", Short: "q", Help: "Print only the result line"},
	{Long: "output", Short: "o", Help: "Write a report file for the evaluation", IsFile: true, ValueName: "file"},
	{Long: "theme", Help: "Color scheme", Values: []string{"golden", "light", "none"}, ValueName: "theme"},
	{Long: "no-color", Help: "Disable all color output"},
	{Long: "log-level", Help: "Log level for stderr diagnostics", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level"},
	{Long: "metrics-addr", Help: "Serve Prometheus metrics on this address", ValueName: "address"},
	{Long: "timeout", Help: "Time limit for non-interactive runs", Values: []string{"5s", "10s", "30s", "1m"}, ValueName: "duration"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// flagsNamed returns the registry rows for the given names in the order
// asked, skipping names the registry does not know. A name matches its long
// form, or a short-only flag like -n.
func flagsNamed(names ...string) []FlagCompletion {
	var rows []FlagCompletion
	for _, name := range names {
		for _, f := range flagRegistry {
			if f.Long == name || (f.Long == "" && f.Short == name) {
				rows = append(rows, f)
				break
			}
		}
	}
	return rows
}

// GenerateCompletion writes a completion script for the named shell: bash,
// zsh, fish, or powershell ("ps" is accepted as an alias).
func GenerateCompletion(out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out)
	case "zsh":
		return generateZshCompletion(out)
	case "fish":
		return generateFishCompletion(out)
	case "powershell", "ps":
		return generatePowerShellCompletion(out)
	default:
		return fmt.Errorf("unsupported shell %q (accepted: bash, zsh, fish, powershell)", shell)
	}
}

// writeScript delivers a generated script, naming the shell on write failure.
func writeScript(out io.Writer, script, shell string) error {
	if _, err := io.WriteString(out, script); err != nil {
		return apperrors.WrapError(err, "write %s completion", shell)
	}
	return nil
}

func generateBashCompletion(out io.Writer) error {
	var opts []string
	for _, f := range flagRegistry {
		opts = append(opts, f.spellings()...)
	}

	// One case arm per flag with a static value list, in registry order,
	// then a single shared arm completing paths for the file flags.
	type caseArm struct {
		patterns []string
		body     string
	}
	var arms []caseArm
	var fileFlags []string
	for _, f := range flagRegistry {
		switch {
		case f.IsFile:
			fileFlags = append(fileFlags, f.spellings()...)
		case len(f.Values) > 0:
			arms = append(arms, caseArm{
				patterns: []string{"--" + f.Long},
				body:     fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " ")),
			})
		}
	}
	if len(fileFlags) > 0 {
		arms = append(arms, caseArm{
			patterns: fileFlags,
			body: `# Complete filesystem paths
            COMPREPLY=( $(compgen -f -- "${cur}") )`,
		})
	}

	var caseBody strings.Builder
	for _, arm := range arms {
		fmt.Fprintf(&caseBody, "        %s)\n            %s\n            return 0\n            ;;\n",
			strings.Join(arm.patterns, "|"), arm.body)
	}

	script := fmt.Sprintf(`# Bash completion script for fibspiral
# Add this to your ~/.bashrc or ~/.bash_completion

_fibspiral_completions() {
    local cur prev opts
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    COMPREPLY=()

    # Every flag, long and short forms
    opts="%s"

    case "${prev}" in
%s    esac

    # Flag-name completion
    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    fi
    return 0
}

complete -F _fibspiral_completions fibspiral
`, strings.Join(opts, " "), caseBody.String())

	return writeScript(out, script, "bash")
}

func generateZshCompletion(out io.Writer) error {
	entries := make([]string, len(flagRegistry))
	for i, f := range flagRegistry {
		entries[i] = zshArgEntry(f)
	}

	script := fmt.Sprintf(`#compdef fibspiral

# Zsh completion script for fibspiral
# Add this to your ~/.zshrc or place in $fpath

_fibspiral() {
    _arguments -s \
%s
}

_fibspiral "$@"
`, strings.Join(entries, " \\\n"))

	return writeScript(out, script, "zsh")
}

// zshArgEntry formats one registry row as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		// Takes a value but offers no suggestions, like -n.
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	switch {
	case f.Long != "" && f.Short != "":
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	case f.Long != "":
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
	default:
		return fmt.Sprintf("        '-%s[%s]%s'", f.Short, f.Help, valueSuffix)
	}
}

func generateFishCompletion(out io.Writer) error {
	lines := []string{
		"# Fish completion script for fibspiral",
		"# Add this to ~/.config/fish/completions/fibspiral.fish",
		"",
		"# Disable file completion by default",
		"complete -c fibspiral -f",
		"",
	}

	sections := []struct {
		comment string
		flags   []FlagCompletion
	}{
		{"# Help and version", flagsNamed("help", "version")},
		{"# Evaluation", flagsNamed("n", "max-bar", "timeout")},
		{"# Panels", flagsNamed("chart", "spiral", "seq")},
		{"# Modes", flagsNamed("repl", "completion")},
		{"# Output options", flagsNamed("quiet", "output")},
		{"# Appearance and diagnostics", flagsNamed("theme", "no-color", "log-level", "metrics-addr")},
	}

	for _, sec := range sections {
		lines = append(lines, sec.comment)
		for _, f := range sec.flags {
			lines = append(lines, fishCompleteLine(f))
		}
		lines = append(lines, "")
	}

	return writeScript(out, strings.Join(lines, "\n"), "fish")
}

// fishCompleteLine formats one registry row as a fish complete command.
func fishCompleteLine(f FlagCompletion) string {
	parts := []string{"complete -c fibspiral"}

	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	if f.Long != "" {
		parts = append(parts, "-l "+f.Long)
	}

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		// Takes a value but offers no suggestions, like -n.
		parts = append(parts, "-x")
	}

	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))
	return strings.Join(parts, " ")
}

func generatePowerShellCompletion(out io.Writer) error {
	var options []string
	for _, f := range flagRegistry {
		for _, name := range f.spellings() {
			options = append(options, fmt.Sprintf(
				"        @{Name = '%s'; Description = '%s' }", name, f.Help))
		}
	}

	// One switch arm per flag with a static value list.
	var valueArms []string
	for _, f := range flagRegistry {
		if f.IsFile || len(f.Values) == 0 {
			continue
		}
		quoted := make([]string, len(f.Values))
		for i, v := range f.Values {
			quoted[i] = "'" + v + "'"
		}
		valueArms = append(valueArms, fmt.Sprintf(`        '--%s' {
            foreach ($v in @(%s)) {
                if ($v -like "$wordToComplete*") {
                    [System.Management.Automation.CompletionResult]::new($v, $v, 'ParameterValue', $v)
                }
            }
            return
        }`, f.Long, strings.Join(quoted, ", ")))
	}

	script := fmt.Sprintf(`# PowerShell completion script for fibspiral
# Add this to your $PROFILE

Register-ArgumentCompleter -CommandName 'fibspiral' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $flags = @(
%s
    )

    $words = $commandAst.CommandElements
    $prev = if ($words.Count -gt 2) { $words[-2].ToString() } else { '' }

    # Value suggestions for the flag being filled in
    switch ($prev) {
%s
    }

    # Otherwise match flag names
    $flags | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, strings.Join(options, "\n"), strings.Join(valueArms, "\n"))

	return writeScript(out, script, "powershell")
}
