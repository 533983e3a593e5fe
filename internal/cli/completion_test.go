package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion_Bash(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, "bash"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	output := buf.String()
	for _, want := range []string{
		"_fibspiral_completions",
		"complete -F _fibspiral_completions fibspiral",
		"--theme",
		"--metrics-addr",
		`compgen -W "golden light none"`,
		`compgen -W "bash zsh fish powershell"`,
		"--output|-o)",
		"compgen -f",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Bash script should contain %q, got:\n%s", want, output)
		}
	}
}

func TestGenerateCompletion_Zsh(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, "zsh"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	output := buf.String()
	for _, want := range []string{
		"#compdef fibspiral",
		"_arguments -s",
		"'(-q --quiet)'{-q,--quiet}",
		":file:_files",
		":shell:(bash zsh fish powershell)",
		"'-n[Fibonacci index to evaluate (0..40)]:index:'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Zsh script should contain %q, got:\n%s", want, output)
		}
	}
}

func TestGenerateCompletion_Fish(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, "fish"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	output := buf.String()
	for _, want := range []string{
		"complete -c fibspiral -f",
		"-l theme",
		"-xa 'golden light none'",
		"-l output",
		"-rF",
		"-s n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Fish script should contain %q, got:\n%s", want, output)
		}
	}
}

func TestGenerateCompletion_PowerShell(t *testing.T) {
	t.Parallel()
	for _, shell := range []string{"powershell", "ps"} {
		var buf bytes.Buffer
		if err := GenerateCompletion(&buf, shell); err != nil {
			t.Fatalf("Unexpected error for %q: %v", shell, err)
		}
		output := buf.String()
		for _, want := range []string{
			"Register-ArgumentCompleter -CommandName 'fibspiral'",
			"'--log-level'",
			"'debug', 'info', 'warn', 'error'",
			"'--completion'",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("PowerShell script should contain %q, got:\n%s", want, output)
			}
		}
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := GenerateCompletion(&buf, "tcsh")
	if err == nil {
		t.Fatal("Expected an error for an unsupported shell")
	}
	if !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("Error should name the problem, got: %v", err)
	}
}

func TestFlagsNamed(t *testing.T) {
	t.Parallel()

	flags := flagsNamed("n", "theme", "does-not-exist")
	if len(flags) != 2 {
		t.Fatalf("Expected 2 flags, got %d", len(flags))
	}
	if flags[0].Short != "n" || flags[0].Long != "" {
		t.Errorf("First match should be the short-only -n flag, got %+v", flags[0])
	}
	if flags[1].Long != "theme" {
		t.Errorf("Second match should be --theme, got %+v", flags[1])
	}
}

func TestFlagRegistry_RoundTripsAllShells(t *testing.T) {
	t.Parallel()

	// Every long flag must surface in every generated script.
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		var buf bytes.Buffer
		if err := GenerateCompletion(&buf, shell); err != nil {
			t.Fatalf("%s: %v", shell, err)
		}
		output := buf.String()
		for _, f := range flagRegistry {
			if f.Long == "" {
				continue
			}
			if !strings.Contains(output, "--"+f.Long) && !strings.Contains(output, "-l "+f.Long) {
				t.Errorf("%s script is missing flag %q", shell, f.Long)
			}
		}
	}
}
